package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestStorage 在临时 HOME 下创建 gdata manager
func openTestStorage(t *testing.T, appName string) *gdata.Manager {
	t.Helper()

	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	gdataManager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return gdataManager
}

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings == nil {
		t.Fatal("DefaultSettings() returned nil")
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
	if !settings.ShowSceneTitles {
		t.Error("ShowSceneTitles: got false, want true")
	}
	if settings.AdvanceKey != "" {
		t.Errorf("AdvanceKey: got %q, want empty", settings.AdvanceKey)
	}
}

// TestNewSettingsManager 测试正常初始化 SettingsManager
func TestNewSettingsManager(t *testing.T) {
	gdataManager := openTestStorage(t, "test_vn_settings")

	sm, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}
	if !sm.IsPersistent() {
		t.Error("IsPersistent() should be true with gdata manager")
	}
	if sm.GetSettings().Fullscreen {
		t.Error("Initial Fullscreen: got true, want false")
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}
	if sm.IsPersistent() {
		t.Error("IsPersistent() should be false in degraded mode")
	}
	if sm.GetSettings() == nil {
		t.Fatal("GetSettings() returned nil in degraded mode")
	}

	// 降级模式下 Save() 不报错
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should return nil, got: %v", err)
	}

	// 降级模式下 Load() 恢复默认值
	sm.SetFullscreen(true)
	if err := sm.Load(); err != nil {
		t.Errorf("Load() in degraded mode should return nil, got: %v", err)
	}
	if sm.GetSettings().Fullscreen {
		t.Error("After Load() in degraded mode, Fullscreen should be reset")
	}
}

// TestSettingsLoadSave 测试 Load() 和 Save() 功能
func TestSettingsLoadSave(t *testing.T) {
	gdataManager := openTestStorage(t, "test_vn_settings_load_save")

	sm1, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}

	sm1.SetFullscreen(true)
	sm1.SetShowSceneTitles(false)
	sm1.SetAdvanceKey(" Enter ")

	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	sm2, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error on reload: %v", err)
	}

	settings := sm2.GetSettings()
	if !settings.Fullscreen {
		t.Error("Loaded Fullscreen: got false, want true")
	}
	if settings.ShowSceneTitles {
		t.Error("Loaded ShowSceneTitles: got true, want false")
	}
	if settings.AdvanceKey != "Enter" {
		t.Errorf("Loaded AdvanceKey: got %q, want Enter", settings.AdvanceKey)
	}
}

// TestSettingsLoadCorrupted 测试损坏的设置文件回退到默认值
func TestSettingsLoadCorrupted(t *testing.T) {
	gdataManager := openTestStorage(t, "test_vn_settings_corrupted")

	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("fullscreen: [unclosed")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	sm, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}
	if sm.GetSettings().Fullscreen || !sm.GetSettings().ShowSceneTitles {
		t.Errorf("corrupted settings should fall back to defaults, got %+v", sm.GetSettings())
	}
	if err := sm.Load(); err == nil {
		t.Error("Load() should report unmarshal error")
	}
}

// TestResolveAdvanceKey 测试按键名称的优先级
func TestResolveAdvanceKey(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	if got := sm.ResolveAdvanceKey("Space"); got != "Space" {
		t.Errorf("ResolveAdvanceKey() = %q, want Space", got)
	}

	sm.SetAdvanceKey("Enter")
	if got := sm.ResolveAdvanceKey("Space"); got != "Enter" {
		t.Errorf("ResolveAdvanceKey() = %q, want Enter", got)
	}

	sm.SetAdvanceKey("   ")
	if got := sm.ResolveAdvanceKey("Space"); got != "Space" {
		t.Errorf("ResolveAdvanceKey() after clearing = %q, want Space", got)
	}
}
