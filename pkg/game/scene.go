package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a screen of the application (e.g., title menu, story playback).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Enterable 是一个可选接口，场景被 SceneManager 激活时调用 OnEnter()
//
// 用于在切换画面时同步对话引擎的状态（例如重新读取当前台词）
type Enterable interface {
	OnEnter()
}
