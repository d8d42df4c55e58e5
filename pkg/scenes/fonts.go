package scenes

import (
	"bytes"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontSourceOnce sync.Once
	fontSource     *text.GoTextFaceSource
)

// loadFace 返回指定字号的字体
// 使用内置的 Go Regular 字体（支持德语变音字符），加载失败时返回 nil
func loadFace(size float64) *text.GoTextFace {
	fontSourceOnce.Do(func() {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			log.Printf("[Fonts] 字体加载失败: %v", err)
			return
		}
		fontSource = src
	})

	if fontSource == nil {
		return nil
	}
	return &text.GoTextFace{Source: fontSource, Size: size}
}
