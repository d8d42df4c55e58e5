package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/vnovel/pkg/config"
	"github.com/decker502/vnovel/pkg/utils"
)

// 画面颜色
var (
	backgroundColor  = color.RGBA{R: 24, G: 20, B: 36, A: 255}
	dialogueBoxColor = color.RGBA{R: 0, G: 0, B: 0, A: 190}
	dialogueBoxFrame = color.RGBA{R: 220, G: 210, B: 180, A: 255}
	textColor        = color.RGBA{R: 245, G: 240, B: 225, A: 255}
	hintColor        = color.RGBA{R: 160, G: 150, B: 130, A: 255}
)

// drawText 在 (x, y) 绘制文本（左上角对齐）
// 字体不可用时退回到调试字体
func drawText(screen *ebiten.Image, str string, size float64, x, y float64, clr color.Color) {
	face := loadFace(size)
	if face == nil {
		ebitenutil.DebugPrintAt(screen, str, int(x), int(y))
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// drawCenteredText 水平居中绘制文本
func drawCenteredText(screen *ebiten.Image, str string, size float64, y float64, clr color.Color) {
	x := float64(config.GameWindowWidth) / 2
	if face := loadFace(size); face != nil {
		w, _ := text.Measure(str, face, 0)
		x -= w / 2
	}
	drawText(screen, str, size, x, y, clr)
}

// drawDialogueBox 绘制对话框及其中的文本
// 文本按对话框宽度自动换行，超出高度的行被截断
func drawDialogueBox(screen *ebiten.Image, body string, title string) {
	x, y, w, h := config.GetDialogueBoxBounds()

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), dialogueBoxColor, true)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 2, dialogueBoxFrame, true)

	if title != "" {
		drawText(screen, title, config.TitleFontSize, config.SceneTitleX, config.SceneTitleY, dialogueBoxFrame)
	}

	var lines []string
	if face := loadFace(config.DialogueFontSize); face != nil {
		lines = utils.WrapText(body, face, config.DialogueTextWidth())
	} else {
		lines = []string{body}
	}

	textX := x + config.DialogueTextPadding
	textY := y + config.DialogueTextPadding
	for i, line := range lines {
		if i >= config.DialogueMaxLines() {
			break
		}
		drawText(screen, line, config.DialogueFontSize, textX, textY+float64(i)*config.DialogueLineHeight, textColor)
	}
}
