// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/vnovel/pkg/config"
	"github.com/decker502/vnovel/pkg/dialogue"
	"github.com/decker502/vnovel/pkg/embedded"
	"github.com/decker502/vnovel/pkg/game"
	"github.com/decker502/vnovel/pkg/scenes"
	"github.com/decker502/vnovel/pkg/script"
	"github.com/decker502/vnovel/pkg/utils"
)

// AppName 应用名称，决定设置的存储目录
const AppName = "vnovel"

// DefaultStoryConfigPath 默认的故事配置路径（嵌入资源）
const DefaultStoryConfigPath = "data/story.yaml"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// LogFile 日志文件路径（可选，带滚动）
	LogFile string
	// StoryConfig 故事配置路径，为空时使用 data/story.yaml
	StoryConfig string
	// StartScene 直接进入指定场景，跳过标题菜单（调试用）
	StartScene string
	// AllowQuit 是否允许在标题菜单按 Escape 退出（移动端为 false）
	AllowQuit bool
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	engine       *dialogue.Engine
	story        *config.StoryConfig
	settings     *game.SettingsManager
	logCloser    io.Closer

	verbose       bool
	quitRequested bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
// 故事配置加载失败是致命错误；剧本加载失败不是，此时显示备用文本。
func NewApp(cfg Config) (*App, error) {
	logCloser := configureLogging(cfg.Verbose, cfg.LogFile)

	storyPath := cfg.StoryConfig
	if storyPath == "" {
		storyPath = DefaultStoryConfigPath
	}

	data, err := embedded.ReadFile(storyPath)
	if err != nil {
		return nil, fmt.Errorf("故事配置读取失败: %w", err)
	}
	story, err := config.ParseStoryConfig(data, storyPath)
	if err != nil {
		return nil, fmt.Errorf("故事配置加载失败: %w", err)
	}
	log.Printf("[Config] 加载故事配置 %s: %d 个场景", storyPath, len(story.SceneOrder))

	order, err := dialogue.NewSceneOrder(story.SceneOrder...)
	if err != nil {
		return nil, fmt.Errorf("场景顺序无效: %w", err)
	}

	engine := dialogue.NewEngine(order)
	if table, _, err := script.Load(story.Script); err != nil {
		log.Printf("[App] 剧本加载失败: %v (显示备用文本)", err)
	} else {
		engine.SetTable(table)
		for _, id := range order.Missing(table) {
			log.Printf("[App] Warning: 场景 %s 在顺序表中但剧本中没有", id)
		}
	}

	settings, err := game.NewSettingsManager(game.OpenStorage(AppName))
	if err != nil {
		return nil, fmt.Errorf("设置初始化失败: %w", err)
	}

	keyName := settings.ResolveAdvanceKey(story.AdvanceKey)
	input, err := utils.NewAdvanceInput(keyName, ebiten.KeySpace, story.ClickAdvanceEnabled())
	if err != nil {
		log.Printf("[App] Warning: %v (使用 %s)", err, input)
	}

	a := &App{
		engine:    engine,
		story:     story,
		settings:  settings,
		logCloser: logCloser,
		verbose:   cfg.Verbose,
	}

	var onQuit func()
	if cfg.AllowQuit {
		onQuit = a.requestQuit
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func(sceneID string) game.Scene {
		if sceneID == game.MenuSceneID {
			return scenes.NewMenuScene(engine, sceneManager, story, input, onQuit)
		}
		return scenes.NewStoryScene(engine, sceneManager, story, settings, input, sceneID)
	})
	a.sceneManager = sceneManager

	// 场景切换通知在输入处理中同步发出，画面替换延迟到下一帧
	engine.OnSceneTransition(func(tr dialogue.Transition) {
		if tr.Terminal {
			log.Printf("[App] 对话结束于场景 %s", tr.From)
			return
		}
		sceneManager.RequestScene(tr.To)
	})

	if cfg.StartScene != "" {
		log.Printf("[App] StartScene=%s, 跳过标题菜单", cfg.StartScene)
		if _, err := engine.SetScene(cfg.StartScene); err != nil {
			log.Printf("[App] 无法进入场景 %s: %v", cfg.StartScene, err)
		}
		sceneManager.RequestScene(cfg.StartScene)
	} else {
		sceneManager.RequestMenu()
	}

	return a, nil
}

// ApplyWindowSettings 应用窗口标题、尺寸和保存的全屏设置
// 仅桌面端在 RunGame 之前调用
func (a *App) ApplyWindowSettings() {
	ebiten.SetWindowTitle(a.story.Title)
	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if a.settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}
}

// Update 更新应用逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if a.quitRequested {
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// toggleFullscreen 切换全屏并保存设置
func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		a.settings.SetFullscreen(false)
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
		a.settings.SetFullscreen(true)
	}

	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Close 关闭日志文件
// 在 RunGame 返回后调用
func (a *App) Close() error {
	if a.logCloser == nil {
		return nil
	}
	return a.logCloser.Close()
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// GetEngine 返回对话引擎
func (a *App) GetEngine() *dialogue.Engine {
	return a.engine
}

// GetStoryConfig 返回故事配置
func (a *App) GetStoryConfig() *config.StoryConfig {
	return a.story
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

func (a *App) requestQuit() {
	a.quitRequested = true
}
