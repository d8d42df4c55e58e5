package script

import (
	"fmt"
	"log"

	"github.com/decker502/vnovel/pkg/embedded"
)

// Load 从嵌入资源加载剧本
// 参数：
//   - filePath: 剧本路径（通常为 "assets/dialogue/dialogue.txt"）
//
// 返回：
//   - *Table: 对话表
//   - []Notice: 宽容解析提示（同时写入日志）
//   - error: 如果文件打开或读取失败
func Load(filePath string) (*Table, []Notice, error) {
	file, err := embedded.Open(filePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open script file %s: %w", filePath, err)
	}
	defer file.Close()

	table, notices, err := Parse(file)
	if err != nil {
		return nil, notices, fmt.Errorf("failed to parse script file %s: %w", filePath, err)
	}

	for _, n := range notices {
		log.Printf("[ScriptParser] Warning: %s: %s", filePath, n)
	}
	log.Printf("[ScriptParser] 加载剧本 %s: %d 个场景, %d 句台词",
		filePath, len(table.Scenes()), table.LineCount())

	return table, notices, nil
}
