package scenes

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/vnovel/pkg/config"
	"github.com/decker502/vnovel/pkg/dialogue"
	"github.com/decker502/vnovel/pkg/game"
	"github.com/decker502/vnovel/pkg/utils"
)

// StoryScene 剧情播放画面
// 每个剧本场景对应一个 StoryScene 实例，由 SceneManager 的工厂函数创建
//
// 画面本身不保存对话进度：进度只存在于对话引擎中，
// 画面在 OnEnter 时读取引擎当前台词，推进时调用 engine.Advance()。
// 场景切换由 App 注册的 OnSceneTransition 回调通过 SceneManager 完成。
type StoryScene struct {
	engine       *dialogue.Engine
	sceneManager *game.SceneManager
	story        *config.StoryConfig
	settings     *game.SettingsManager
	input        utils.AdvanceInput

	sceneID string

	text     string // 当前显示的文本
	finished bool   // 对话已结束，显示结束语
	fallback bool   // 对话不可用，显示备用文本且禁用推进
}

// NewStoryScene 创建剧情播放画面
func NewStoryScene(engine *dialogue.Engine, sm *game.SceneManager, story *config.StoryConfig,
	settings *game.SettingsManager, input utils.AdvanceInput, sceneID string) *StoryScene {
	return &StoryScene{
		engine:       engine,
		sceneManager: sm,
		story:        story,
		settings:     settings,
		input:        input,
		sceneID:      sceneID,
	}
}

// OnEnter 画面激活时与对话引擎同步
func (s *StoryScene) OnEnter() {
	s.finished = false
	s.fallback = false

	switch {
	case s.engine.State() == dialogue.StateUninitialized:
		// 剧本未加载或起始场景不存在
		s.enterFallback(dialogue.ErrNoActiveScene)
		return
	case s.engine.State() == dialogue.StateFinished:
		s.showEnd()
		return
	case s.engine.SceneID() != s.sceneID:
		log.Printf("[StoryScene] Warning: 画面 %s 与引擎场景 %s 不一致", s.sceneID, s.engine.SceneID())
	}

	line, err := s.engine.CurrentLine()
	if err != nil {
		// 空场景：等待下一次推进
		s.text = ""
		return
	}
	s.text = line.Text
	log.Printf("[StoryScene] 进入画面 %s: %s", s.sceneID, line)
}

// HandleAdvance 处理一次推进输入
//
// 返回：
//   - error: 引擎返回的错误（例如后继场景不存在），画面保持当前文本
func (s *StoryScene) HandleAdvance() error {
	if s.fallback {
		return nil
	}

	res, err := s.engine.Advance()
	if err != nil {
		log.Printf("[StoryScene] 推进失败: %v", err)
		if errors.Is(err, dialogue.ErrNoActiveScene) {
			s.enterFallback(err)
		}
		return fmt.Errorf("advance in %s: %w", s.sceneID, err)
	}

	if res.Transition != nil && res.Transition.Terminal {
		s.showEnd()
		return nil
	}

	// 切换到其它场景时由新画面显示台词，这里同步文本避免切换前的空帧
	if res.HasLine {
		s.text = res.Line.Text
	} else {
		s.text = ""
	}
	return nil
}

// HandleBack 返回标题菜单并重置对话引擎
func (s *StoryScene) HandleBack() {
	log.Printf("[StoryScene] 返回标题菜单")
	s.engine.Reset()
	s.sceneManager.RequestMenu()
}

// Update 处理输入
func (s *StoryScene) Update(deltaTime float64) {
	if utils.IsBackJustPressed() {
		s.HandleBack()
		return
	}
	if s.input.JustTriggered() {
		_ = s.HandleAdvance()
	}
}

// Draw 绘制背景、对话框和当前文本
func (s *StoryScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	title := ""
	if s.settings == nil || s.settings.GetSettings().ShowSceneTitles {
		title = s.story.SceneTitle(s.sceneID)
	}
	drawDialogueBox(screen, s.text, title)

	drawText(screen, s.hint(), config.TitleFontSize, 12, config.GameWindowHeight-30, hintColor)
}

// hint 返回底部的操作提示
func (s *StoryScene) hint() string {
	if utils.IsMobile() {
		if s.fallback || s.finished {
			return ""
		}
		return "Tippen zum Weiterlesen"
	}
	if s.fallback || s.finished {
		return "[Esc] Menü"
	}
	return fmt.Sprintf("[%s] weiter   [Esc] Menü", s.input)
}

// Text 返回当前显示的文本
func (s *StoryScene) Text() string {
	return s.text
}

// SceneID 返回画面对应的场景ID
func (s *StoryScene) SceneID() string {
	return s.sceneID
}

// IsFinished 返回对话是否已结束
func (s *StoryScene) IsFinished() bool {
	return s.finished
}

// IsFallback 返回是否处于备用模式（推进被禁用）
func (s *StoryScene) IsFallback() bool {
	return s.fallback
}

func (s *StoryScene) showEnd() {
	s.finished = true
	s.text = s.story.EndMessage
	log.Printf("[StoryScene] 对话结束")
}

func (s *StoryScene) enterFallback(cause error) {
	s.fallback = true
	s.text = s.story.FallbackMessage
	log.Printf("[StoryScene] 对话不可用 (%v)，显示备用文本", cause)
}
