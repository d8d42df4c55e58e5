// Package scenes 实现应用的各个画面：标题菜单和剧情播放
package scenes

import (
	"github.com/decker502/vnovel/pkg/game"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene
