// Package utils 提供通用工具函数
package utils

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ParseKey 将按键名称解析为 ebiten.Key
// 名称使用 ebiten.Key 的文本形式（如 "Space"、"Enter"、"ArrowRight"），大小写不敏感
//
// 返回：
//   - ebiten.Key: 解析后的按键
//   - error: 名称为空或无法识别时返回错误
func ParseKey(name string) (ebiten.Key, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("key name is empty")
	}

	var key ebiten.Key
	if err := key.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("unknown key name %q: %w", name, err)
	}
	return key, nil
}

// AdvanceInput 推进对话的输入绑定
// 对话只由一个离散的输入事件推进（默认空格键）
type AdvanceInput struct {
	Key        ebiten.Key // 推进按键
	AllowClick bool       // 是否允许鼠标点击/触摸推进
}

// NewAdvanceInput 根据按键名称创建输入绑定
// 名称无效时回退到 fallback 按键，并返回错误供调用方记录
func NewAdvanceInput(keyName string, fallback ebiten.Key, allowClick bool) (AdvanceInput, error) {
	key, err := ParseKey(keyName)
	if err != nil {
		return AdvanceInput{Key: fallback, AllowClick: allowClick}, err
	}
	return AdvanceInput{Key: key, AllowClick: allowClick}, nil
}

// JustTriggered 检查本帧是否触发了推进
// 每次按下只触发一次（按住不会连续推进）
func (a AdvanceInput) JustTriggered() bool {
	if inpututil.IsKeyJustPressed(a.Key) {
		return true
	}
	if a.AllowClick {
		clicked, _, _ := IsJustTouchedOrClicked()
		return clicked
	}
	return false
}

// String 返回便于显示的按键名称
func (a AdvanceInput) String() string {
	return a.Key.String()
}

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置
func IsJustTouchedOrClicked() (bool, int, int) {
	// 检查触摸
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	// 检查鼠标
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// IsBackJustPressed 检查是否刚刚按下返回键（Escape，或 Android 返回键）
func IsBackJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyBackspace)
}
