package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// MeasureFunc 测量文本宽度（像素）
type MeasureFunc func(s string) float64

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本
//   - font: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
//
// 换行规则:
//   - 优先在空格处断行
//   - 如果单词太长超过最大宽度，强制断行
func WrapText(textStr string, font text.Face, maxWidth float64) []string {
	if textStr == "" || font == nil || maxWidth <= 0 {
		return []string{textStr}
	}
	return WrapMeasured(textStr, func(s string) float64 {
		width, _ := text.Measure(s, font, 0)
		return width
	}, maxWidth)
}

// WrapMeasured 使用给定的测量函数换行
// 与字体无关，便于测试
func WrapMeasured(textStr string, measure MeasureFunc, maxWidth float64) []string {
	if measure == nil || maxWidth <= 0 || measure(textStr) <= maxWidth {
		return []string{textStr}
	}

	var lines []string
	current := ""

	for _, word := range strings.Fields(textStr) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if measure(candidate) <= maxWidth {
			current = candidate
			continue
		}

		// 当前行放不下这个单词：先结束当前行
		if current != "" {
			lines = append(lines, current)
			current = ""
		}

		// 单词本身超过一行：按字符强制断开
		for measure(word) > maxWidth {
			head := splitToWidth(word, measure, maxWidth)
			lines = append(lines, head)
			word = word[len(head):]
		}
		current = word
	}

	if current != "" {
		lines = append(lines, current)
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

// splitToWidth 返回 word 不超过 maxWidth 的最长前缀（至少一个字符）
func splitToWidth(word string, measure MeasureFunc, maxWidth float64) string {
	end := 0
	for end < len(word) {
		_, size := utf8.DecodeRuneInString(word[end:])
		if end > 0 && measure(word[:end+size]) > maxWidth {
			break
		}
		end += size
	}
	return word[:end]
}
