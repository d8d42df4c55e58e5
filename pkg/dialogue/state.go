// Package dialogue 实现线性视觉小说的对话/场景推进状态机
//
// 状态机：
//
//	Uninitialized → Playing(scene, cursor) → [SceneExhausted] → Playing(next, 0) ... → Finished
//
// Engine 只在 SetScene 与 Advance 中修改状态，不包含内部锁，
// 必须由单一的输入处理上下文驱动。
package dialogue

import (
	"fmt"

	"github.com/decker502/vnovel/pkg/script"
)

// State 对话引擎状态
type State int

const (
	// StateUninitialized 尚未进入任何场景
	StateUninitialized State = iota

	// StatePlaying 正在播放某个场景的台词
	StatePlaying

	// StateSceneExhausted 进入了没有台词的场景，下一次 Advance 会立即切换
	StateSceneExhausted

	// StateFinished 最后一个场景播放完毕（终止状态）
	StateFinished
)

// String 返回 State 的字符串表示
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "Uninitialized"
	case StatePlaying:
		return "Playing"
	case StateSceneExhausted:
		return "SceneExhausted"
	case StateFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// Transition 场景切换事件
// Terminal 为 true 时表示没有后继场景（To 为空），对话结束
type Transition struct {
	From     string
	To       string
	Terminal bool
}

// String 返回便于日志输出的表示
func (t Transition) String() string {
	if t.Terminal {
		return fmt.Sprintf("%s → (end)", t.From)
	}
	return fmt.Sprintf("%s → %s", t.From, t.To)
}

// Result SetScene / Advance 的结果
type Result struct {
	// Line 当前台词，仅在 HasLine 为 true 时有效
	Line    script.Line
	HasLine bool

	// Exhausted 当前场景没有可显示的台词（空场景或已结束）
	Exhausted bool

	// Transition 本次调用触发的场景切换，未切换时为 nil
	Transition *Transition

	// State 调用后的引擎状态
	State State
}

// TransitionHandler 场景切换回调
type TransitionHandler func(Transition)

// LineHandler 新台词显示回调
type LineHandler func(script.Line)
