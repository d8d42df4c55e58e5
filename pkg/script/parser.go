package script

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// maxLineSize 单行最大字节数（bufio.Scanner 默认 64KB）
const maxLineSize = 1024 * 1024

// Parse 从 reader 解析剧本
//
// 返回：
//   - *Table: 对话表（场景 -> 有序台词）
//   - []Notice: 宽容解析产生的提示（不影响结果）
//   - error: 仅在读取失败时返回
//
// 解析规则：
//   - 空行忽略
//   - [Name] 开启场景 Name；[End] 结束当前场景
//   - 以 "[" 开头但不以 "]" 结尾的行按普通台词处理（NoticeMalformedMarker）
//   - 没有打开的场景时出现的台词被丢弃（NoticeOrphanLine）
//
// 输入开头的 BOM 会被去除，文本统一为 NFC 形式。
func Parse(r io.Reader) (*Table, []Notice, error) {
	table := NewTable()
	var notices []Notice

	scanner := bufio.NewScanner(transform.NewReader(r, unicode.BOMOverride(transform.Nop)))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var current *Scene
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := norm.NFC.String(strings.TrimSpace(scanner.Text()))

		// 跳过空行
		if line == "" {
			continue
		}

		if id, ok := markerID(line); ok {
			if id == EndMarker {
				if current == nil {
					notices = append(notices, Notice{Line: lineNo, Kind: NoticeStrayEnd, Text: line})
					continue
				}
				current.Closed = true
				current = nil
				continue
			}

			scene, duplicate := table.openScene(id)
			if duplicate {
				notices = append(notices, Notice{Line: lineNo, Kind: NoticeDuplicateScene, Text: line})
			}
			current = scene
			continue
		}

		if strings.HasPrefix(line, "[") {
			notices = append(notices, Notice{Line: lineNo, Kind: NoticeMalformedMarker, Text: line})
		}

		if current == nil {
			notices = append(notices, Notice{Line: lineNo, Kind: NoticeOrphanLine, Text: line})
			continue
		}
		current.append(line, lineNo)
	}

	if err := scanner.Err(); err != nil {
		return nil, notices, fmt.Errorf("failed to read script at line %d: %w", lineNo+1, err)
	}

	return table, notices, nil
}

// ParseString 解析剧本文本
func ParseString(text string) (*Table, []Notice, error) {
	return Parse(strings.NewReader(text))
}

// markerID 判断一行是否为场景标记 [identifier]，返回标识符
// 标识符内部的首尾空白会被去除，空标识符不视为标记
func markerID(line string) (string, bool) {
	if len(line) < 2 || !strings.HasPrefix(line, "[") || !strings.HasSuffix(line, "]") {
		return "", false
	}
	id := strings.TrimSpace(line[1 : len(line)-1])
	if id == "" {
		return "", false
	}
	return id, true
}
