package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// MenuSceneID 标题菜单的场景ID
const MenuSceneID = "__menu__"

// SceneFactory 场景工厂函数类型
// 用于创建指定ID的画面，避免 game 包依赖 scenes 包
// sceneID 为 MenuSceneID 时应返回标题菜单
type SceneFactory func(sceneID string) Scene

// SceneManager manages the application's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
//
// 画面切换请求（RequestScene / RequestMenu）不会立即生效，
// 而是在下一次 Update 开始时应用。对话引擎在输入处理中同步发出切换通知，
// 延迟应用保证当前画面的 Update 执行完毕后才被替换。
type SceneManager struct {
	currentScene   Scene
	currentSceneID string
	sceneFactory   SceneFactory // 场景工厂函数，用于创建新画面

	pendingSceneID string // 待切换的画面ID
	hasPending     bool
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo or RequestScene to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene immediately.
// The new scene's Update and Draw methods will be called on subsequent game loop iterations.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
	if e, ok := scene.(Enterable); ok {
		e.OnEnter()
	}
}

// GetCurrentScene 返回当前活动的画面
//
// 返回：
//   - Scene: 当前画面，如果没有活动画面则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentSceneID 返回当前画面对应的场景ID（通过 SwitchTo 直接设置时为空）
func (sm *SceneManager) CurrentSceneID() string {
	return sm.currentSceneID
}

// RequestScene 请求在下一次 Update 时切换到指定场景的画面
// 同一帧内多次请求时以最后一次为准
func (sm *SceneManager) RequestScene(sceneID string) {
	if sm.hasPending && sm.pendingSceneID != sceneID {
		log.Printf("[SceneManager] 覆盖未处理的切换请求: %s -> %s", sm.pendingSceneID, sceneID)
	}
	sm.pendingSceneID = sceneID
	sm.hasPending = true
}

// RequestMenu 请求在下一次 Update 时返回标题菜单
func (sm *SceneManager) RequestMenu() {
	sm.RequestScene(MenuSceneID)
}

// Pending 返回待处理的切换请求
func (sm *SceneManager) Pending() (string, bool) {
	return sm.pendingSceneID, sm.hasPending
}

// LoadScene 立即创建并切换到指定场景的画面
// sceneID: 场景ID，如 "FirstScene"，或 MenuSceneID
//
// 返回：
//   - bool: 切换是否成功
func (sm *SceneManager) LoadScene(sceneID string) bool {
	log.Printf("[SceneManager] 加载画面: %s", sceneID)

	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return false
	}

	newScene := sm.sceneFactory(sceneID)
	if newScene == nil {
		log.Printf("[SceneManager] 错误: 无法创建画面: %s", sceneID)
		return false
	}

	sm.SwitchTo(newScene)
	sm.currentSceneID = sceneID
	log.Printf("[SceneManager] 成功切换到画面: %s", sceneID)
	return true
}

// ApplyPending 应用待处理的切换请求（每个请求只应用一次）
// Update 开始时自动调用
func (sm *SceneManager) ApplyPending() {
	if !sm.hasPending {
		return
	}
	sceneID := sm.pendingSceneID
	sm.pendingSceneID = ""
	sm.hasPending = false
	sm.LoadScene(sceneID)
}

// Update applies a pending scene request and then updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	sm.ApplyPending()
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
