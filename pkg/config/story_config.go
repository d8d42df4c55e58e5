package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// 默认值
const (
	DefaultScriptPath      = "assets/dialogue/dialogue.txt"
	DefaultEndMessage      = "Ende des Dialogs."
	DefaultFallbackMessage = "Dialog konnte nicht geladen werden."
	DefaultAdvanceKey      = "Space"
	DefaultTitle           = "Visual Novel"
)

// StoryConfig 故事配置数据结构
// 定义剧本文件、场景播放顺序以及对话界面的文本
type StoryConfig struct {
	Title           string            `yaml:"title"`           // 窗口标题
	Script          string            `yaml:"script"`          // 剧本路径，默认 assets/dialogue/dialogue.txt
	StartScene      string            `yaml:"startScene"`      // 起始场景，默认为 sceneOrder 的第一个
	SceneOrder      []string          `yaml:"sceneOrder"`      // 场景播放顺序（必填）
	EndMessage      string            `yaml:"endMessage"`      // 对话结束后显示的文本
	FallbackMessage string            `yaml:"fallbackMessage"` // 剧本加载失败时显示的文本
	AdvanceKey      string            `yaml:"advanceKey"`      // 推进对话的按键名称（ebiten.Key 名称），默认 Space
	SceneTitles     map[string]string `yaml:"sceneTitles"`     // 可选：场景ID -> 显示标题

	// AllowClickAdvance 是否允许鼠标点击/触摸推进对话，默认 true
	// 使用指针以区分"未配置"和"显式关闭"
	AllowClickAdvance *bool `yaml:"allowClickAdvance"`
}

// LoadStoryConfig 从YAML文件加载故事配置
// 参数：
//
//	filepath - 配置文件路径（相对或绝对路径）
//
// 返回：
//
//	*StoryConfig - 解析后的配置
//	error - 如果文件读取、解析或验证失败
func LoadStoryConfig(filepath string) (*StoryConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read story config file %s: %w", filepath, err)
	}
	return ParseStoryConfig(data, filepath)
}

// ParseStoryConfig 解析YAML格式的故事配置
// source 仅用于错误信息（通常是文件路径）
func ParseStoryConfig(data []byte, source string) (*StoryConfig, error) {
	var storyConfig StoryConfig
	if err := yaml.Unmarshal(data, &storyConfig); err != nil {
		return nil, fmt.Errorf("failed to parse story config YAML from %s: %w", source, err)
	}

	applyStoryDefaults(&storyConfig)

	if err := validateStoryConfig(&storyConfig); err != nil {
		return nil, fmt.Errorf("invalid story config in %s: %w", source, err)
	}

	return &storyConfig, nil
}

// ClickAdvanceEnabled 返回是否允许点击推进
func (c *StoryConfig) ClickAdvanceEnabled() bool {
	return c.AllowClickAdvance == nil || *c.AllowClickAdvance
}

// SceneTitle 返回场景的显示标题，未配置时返回场景ID
func (c *StoryConfig) SceneTitle(sceneID string) string {
	if title, ok := c.SceneTitles[sceneID]; ok && title != "" {
		return title
	}
	return sceneID
}

// applyStoryDefaults 为缺失的可选字段设置默认值
func applyStoryDefaults(config *StoryConfig) {
	if config.Title == "" {
		config.Title = DefaultTitle
	}
	if config.Script == "" {
		config.Script = DefaultScriptPath
	}
	if config.StartScene == "" && len(config.SceneOrder) > 0 {
		config.StartScene = config.SceneOrder[0]
	}
	if config.EndMessage == "" {
		config.EndMessage = DefaultEndMessage
	}
	if config.FallbackMessage == "" {
		config.FallbackMessage = DefaultFallbackMessage
	}
	if config.AdvanceKey == "" {
		config.AdvanceKey = DefaultAdvanceKey
	}
}

// validateStoryConfig 验证故事配置的完整性
func validateStoryConfig(config *StoryConfig) error {
	if len(config.SceneOrder) == 0 {
		return fmt.Errorf("sceneOrder must contain at least one scene")
	}

	seen := make(map[string]bool, len(config.SceneOrder))
	for i, id := range config.SceneOrder {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("sceneOrder[%d]: scene id is empty", i)
		}
		if seen[id] {
			return fmt.Errorf("sceneOrder[%d]: duplicate scene id %q", i, id)
		}
		seen[id] = true
	}

	if !seen[config.StartScene] {
		return fmt.Errorf("startScene %q is not listed in sceneOrder", config.StartScene)
	}

	return nil
}
