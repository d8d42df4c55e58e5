// Package script 解析视觉小说剧本文本
//
// 剧本格式（逐行，去除首尾空白后判断）：
//
//	[FirstScene]
//	第一句台词
//	第二句台词
//	[End]
//	[SecondScene]
//	...
//
// [Name] 开启名为 Name 的场景，[End] 结束当前场景，其余非空行归属当前场景。
package script

import "fmt"

// EndMarker 场景结束标记的标识符
const EndMarker = "End"

// Line 一句台词（不可变）
type Line struct {
	SceneID    string // 所属场景ID
	Index      int    // 在场景内的位置（从 0 开始）
	Text       string // 台词文本
	SourceLine int    // 剧本中的物理行号（从 1 开始，诊断用）
}

// String 返回便于调试的表示
func (l Line) String() string {
	return fmt.Sprintf("%s#%d: %s", l.SceneID, l.Index, l.Text)
}

// Scene 一个场景及其有序台词
type Scene struct {
	ID    string
	Lines []Line
	// Closed 是否遇到过显式的 [End] 标记
	// 文件末尾缺少 [End] 是允许的，此时为 false
	Closed bool
}

// Table 对话表：场景ID -> 有序台词
// 保留场景首次出现的顺序
type Table struct {
	order  []string
	scenes map[string]*Scene
}

// NewTable 创建空对话表
func NewTable() *Table {
	return &Table{
		scenes: make(map[string]*Scene),
	}
}

// Scenes 按首次出现顺序返回所有场景ID
func (t *Table) Scenes() []string {
	ids := make([]string, len(t.order))
	copy(ids, t.order)
	return ids
}

// Scene 返回指定场景
func (t *Table) Scene(id string) (*Scene, bool) {
	s, ok := t.scenes[id]
	return s, ok
}

// Has 检查场景是否存在
func (t *Table) Has(id string) bool {
	_, ok := t.scenes[id]
	return ok
}

// Lines 返回场景的台词列表
func (t *Table) Lines(id string) ([]Line, bool) {
	s, ok := t.scenes[id]
	if !ok {
		return nil, false
	}
	return s.Lines, true
}

// Len 返回场景的台词数量，场景不存在时返回 0
func (t *Table) Len(id string) int {
	if s, ok := t.scenes[id]; ok {
		return len(s.Lines)
	}
	return 0
}

// LineCount 返回全部台词数量
func (t *Table) LineCount() int {
	n := 0
	for _, s := range t.scenes {
		n += len(s.Lines)
	}
	return n
}

// Equal 比较两个对话表是否完全一致（场景顺序、台词、结束标记）
func (t *Table) Equal(other *Table) bool {
	if t == nil || other == nil {
		return t == other
	}
	if len(t.order) != len(other.order) {
		return false
	}
	for i, id := range t.order {
		if other.order[i] != id {
			return false
		}
		a, b := t.scenes[id], other.scenes[id]
		if a.Closed != b.Closed || len(a.Lines) != len(b.Lines) {
			return false
		}
		for j := range a.Lines {
			if a.Lines[j] != b.Lines[j] {
				return false
			}
		}
	}
	return true
}

// openScene 开启（或重新开启）场景，返回是否为重复场景
func (t *Table) openScene(id string) (*Scene, bool) {
	if s, ok := t.scenes[id]; ok {
		s.Closed = false
		return s, true
	}
	s := &Scene{ID: id}
	t.scenes[id] = s
	t.order = append(t.order, id)
	return s, false
}

// append 向场景追加一句台词
func (s *Scene) append(text string, sourceLine int) {
	s.Lines = append(s.Lines, Line{
		SceneID:    s.ID,
		Index:      len(s.Lines),
		Text:       text,
		SourceLine: sourceLine,
	})
}
