package dialogue

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownScene 目标场景不在对话表中
	ErrUnknownScene = errors.New("unknown scene")

	// ErrNoActiveScene 在 SetScene 之前调用了 Advance / CurrentLine
	ErrNoActiveScene = errors.New("no active scene")

	// ErrNoMoreDialogue 当前场景没有更多台词
	ErrNoMoreDialogue = errors.New("no more dialogue")
)

// UnknownSceneError 携带未知场景ID的错误
// errors.Is(err, ErrUnknownScene) 对其成立
type UnknownSceneError struct {
	SceneID string
}

func (e *UnknownSceneError) Error() string {
	return fmt.Sprintf("unknown scene %q", e.SceneID)
}

// Unwrap 支持 errors.Is(err, ErrUnknownScene)
func (e *UnknownSceneError) Unwrap() error {
	return ErrUnknownScene
}
