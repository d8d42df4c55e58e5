package script

import "fmt"

// NoticeKind 解析宽容提示的类型
type NoticeKind int

const (
	// NoticeOrphanLine 台词出现在任何场景标记之前（或 [End] 之后），已丢弃
	NoticeOrphanLine NoticeKind = iota

	// NoticeMalformedMarker 以 "[" 开头但格式不完整的行，按普通台词处理
	NoticeMalformedMarker

	// NoticeStrayEnd 没有打开的场景时遇到 [End]，已忽略
	NoticeStrayEnd

	// NoticeDuplicateScene 同名场景再次出现，后续台词追加到原场景
	NoticeDuplicateScene
)

// String 返回 NoticeKind 的字符串表示
func (k NoticeKind) String() string {
	switch k {
	case NoticeOrphanLine:
		return "OrphanLine"
	case NoticeMalformedMarker:
		return "MalformedMarker"
	case NoticeStrayEnd:
		return "StrayEnd"
	case NoticeDuplicateScene:
		return "DuplicateScene"
	default:
		return "Unknown"
	}
}

// Notice 非致命的解析提示
// 解析器对剧本保持宽容，这些提示只用于日志和校验工具
type Notice struct {
	Line int        // 物理行号（从 1 开始）
	Kind NoticeKind // 提示类型
	Text string     // 原始行内容（已去除首尾空白）
}

// String 返回便于日志输出的表示
func (n Notice) String() string {
	return fmt.Sprintf("line %d: %s: %q", n.Line, n.Kind, n.Text)
}
