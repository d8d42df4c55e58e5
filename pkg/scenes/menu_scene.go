package scenes

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/vnovel/pkg/config"
	"github.com/decker502/vnovel/pkg/dialogue"
	"github.com/decker502/vnovel/pkg/game"
	"github.com/decker502/vnovel/pkg/utils"
)

// MenuScene 标题菜单
// 推进输入开始故事，Escape 退出应用
type MenuScene struct {
	engine       *dialogue.Engine
	sceneManager *game.SceneManager
	story        *config.StoryConfig
	input        utils.AdvanceInput

	// onQuit 退出回调（移动端为 nil，不支持退出）
	onQuit func()
}

// NewMenuScene 创建标题菜单
func NewMenuScene(engine *dialogue.Engine, sm *game.SceneManager, story *config.StoryConfig,
	input utils.AdvanceInput, onQuit func()) *MenuScene {
	return &MenuScene{
		engine:       engine,
		sceneManager: sm,
		story:        story,
		input:        input,
		onQuit:       onQuit,
	}
}

// HandleStart 从起始场景开始故事
//
// 即使起始场景不可用也会进入剧情画面，由画面显示备用文本
func (m *MenuScene) HandleStart() {
	start := m.story.StartScene
	if _, err := m.engine.SetScene(start); err != nil {
		log.Printf("[MenuScene] 无法进入起始场景 %s: %v", start, err)
	}
	m.sceneManager.RequestScene(start)
}

// HandleQuit 请求退出应用
func (m *MenuScene) HandleQuit() {
	if m.onQuit == nil {
		return
	}
	log.Printf("[MenuScene] 退出")
	m.onQuit()
}

// Update 处理输入
func (m *MenuScene) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		m.HandleQuit()
		return
	}
	if m.input.JustTriggered() {
		m.HandleStart()
	}
}

// Draw 绘制标题和提示
func (m *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	drawCenteredText(screen, m.story.Title, config.MenuTitleFontSize, config.GameWindowHeight/3, textColor)

	hint := fmt.Sprintf("[%s] Start", m.input)
	if utils.IsMobile() {
		hint = "Tippen zum Starten"
	} else if m.onQuit != nil {
		hint += "   [Esc] Beenden"
	}
	drawCenteredText(screen, hint, config.TitleFontSize, config.GameWindowHeight/2, hintColor)
}
