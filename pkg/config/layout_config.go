package config

// 布局配置常量
// 本文件定义了画面的逻辑尺寸和对话框位置

// 逻辑屏幕尺寸
// Ebitengine 会自动把逻辑画面缩放到实际窗口大小
const (
	// GameWindowWidth 逻辑屏幕宽度（像素）
	GameWindowWidth = 1280

	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 720
)

// 对话框配置
// 原始布局基于 1920x1080 画面：对话文本区域位于 (225, 629)，尺寸 1120x207
// 这里按比例换算到逻辑屏幕
const (
	// ReferenceWidth 原始布局的参考宽度
	ReferenceWidth = 1920.0

	// LayoutScale 参考布局到逻辑屏幕的缩放比例（1280/1920）
	LayoutScale = float64(GameWindowWidth) / ReferenceWidth

	// DialogueBoxX 对话框左上角X坐标
	DialogueBoxX = 225.0 * LayoutScale // 150

	// DialogueBoxY 对话框左上角Y坐标
	DialogueBoxY = 629.0 * LayoutScale // ≈419.3

	// DialogueBoxWidth 对话框宽度
	DialogueBoxWidth = 1120.0 * LayoutScale // ≈746.7

	// DialogueBoxHeight 对话框高度
	DialogueBoxHeight = 207.0 * LayoutScale // 138

	// DialogueTextPadding 文本距离对话框边缘的内边距
	DialogueTextPadding = 16.0

	// DialogueFontSize 对话文本字号
	DialogueFontSize = 22.0

	// DialogueLineHeight 对话文本行高
	DialogueLineHeight = 30.0

	// TitleFontSize 场景标题与提示文本字号
	TitleFontSize = 18.0

	// MenuTitleFontSize 标题菜单的标题字号
	MenuTitleFontSize = 48.0

	// SceneTitleX 场景标题的位置（对话框上方）
	SceneTitleX = DialogueBoxX
	SceneTitleY = DialogueBoxY - 28.0
)

// GetDialogueBoxBounds 返回对话框的边界
// 返回值：x, y, width, height
func GetDialogueBoxBounds() (float64, float64, float64, float64) {
	return DialogueBoxX, DialogueBoxY, DialogueBoxWidth, DialogueBoxHeight
}

// DialogueTextWidth 返回对话框内文本的最大宽度
func DialogueTextWidth() float64 {
	return DialogueBoxWidth - 2*DialogueTextPadding
}

// DialogueMaxLines 返回对话框内最多可显示的行数
func DialogueMaxLines() int {
	height := DialogueBoxHeight - 2*DialogueTextPadding
	n := int(height / DialogueLineHeight)
	if n < 1 {
		return 1
	}
	return n
}
