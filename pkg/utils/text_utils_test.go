package utils

import (
	"bytes"
	"reflect"
	"testing"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// runeWidth 每个字符宽 10 像素的测量函数
func runeWidth(s string) float64 {
	return float64(utf8.RuneCountInString(s)) * 10
}

func TestWrapMeasured(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxWidth float64
		want     []string
	}{
		{"短文本不换行", "Hallo Welt", 200, []string{"Hallo Welt"}},
		{"按空格断行", "eins zwei drei vier", 90, []string{"eins zwei", "drei vier"}},
		{"长单词强制断行", "Donaudampfschiff", 60, []string{"Donaud", "ampfsc", "hiff"}},
		{"多字节字符按 rune 计算", "Grüße aus Köln", 50, []string{"Grüße", "aus", "Köln"}},
		{"非法宽度", "Hallo", 0, []string{"Hallo"}},
		{"只有空白", "      ", 30, []string{""}},
		{"宽度小于单个字符", "abc", 5, []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapMeasured(tt.text, runeWidth, tt.maxWidth)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("WrapMeasured(%q, %.0f) = %q, want %q", tt.text, tt.maxWidth, got, tt.want)
			}
		})
	}
}

// TestWrapText 使用真实字体测试换行
func TestWrapText(t *testing.T) {
	faceSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		t.Skipf("无法创建字体源: %v", err)
	}
	font := &text.GoTextFace{Source: faceSource, Size: 22}

	short := WrapText("Kurz.", font, 1000)
	if len(short) != 1 {
		t.Errorf("短文本期望 1 行，实际得到 %d 行", len(short))
	}

	long := WrapText("Die Laternen warfen lange Schatten auf das nasse Pflaster.", font, 200)
	if len(long) < 2 {
		t.Errorf("长文本期望至少 2 行，实际得到 %d 行", len(long))
	}
	for i, line := range long {
		if w, _ := text.Measure(line, font, 0); w > 200 {
			t.Errorf("第 %d 行 %q 宽度 %.1f 超过 200", i+1, line, w)
		}
	}
}

// TestWrapTextEdgeCases 测试边界情况
func TestWrapTextEdgeCases(t *testing.T) {
	if lines := WrapText("Test", nil, 100); len(lines) != 1 {
		t.Errorf("nil font: 期望 1 行，实际得到 %d 行", len(lines))
	}
	if lines := WrapText("Test", &text.GoTextFace{Size: 22}, 0); len(lines) != 1 {
		t.Errorf("zero maxWidth: 期望 1 行，实际得到 %d 行", len(lines))
	}
}
