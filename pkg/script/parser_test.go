package script

import (
	"errors"
	"strings"
	"testing"
)

// TestParse_Basic 验证基本的场景划分
func TestParse_Basic(t *testing.T) {
	table, notices, err := ParseString("[A]\nHello\nWorld\n[End]\n[B]\nBye\n[End]")
	if err != nil {
		t.Fatalf("ParseString() error: %v", err)
	}
	if len(notices) != 0 {
		t.Errorf("Expected no notices, got %v", notices)
	}

	scenes := table.Scenes()
	if len(scenes) != 2 || scenes[0] != "A" || scenes[1] != "B" {
		t.Fatalf("Scenes() = %v, want [A B]", scenes)
	}

	tests := []struct {
		scene string
		want  []string
	}{
		{"A", []string{"Hello", "World"}},
		{"B", []string{"Bye"}},
	}

	for _, tt := range tests {
		t.Run(tt.scene, func(t *testing.T) {
			lines, ok := table.Lines(tt.scene)
			if !ok {
				t.Fatalf("scene %q not found", tt.scene)
			}
			if len(lines) != len(tt.want) {
				t.Fatalf("len(Lines(%q)) = %d, want %d", tt.scene, len(lines), len(tt.want))
			}
			for i, line := range lines {
				if line.Text != tt.want[i] {
					t.Errorf("Lines(%q)[%d].Text = %q, want %q", tt.scene, i, line.Text, tt.want[i])
				}
				if line.Index != i {
					t.Errorf("Lines(%q)[%d].Index = %d", tt.scene, i, line.Index)
				}
				if line.SceneID != tt.scene {
					t.Errorf("Lines(%q)[%d].SceneID = %q", tt.scene, i, line.SceneID)
				}
			}
			scene, _ := table.Scene(tt.scene)
			if !scene.Closed {
				t.Errorf("scene %q should be closed by [End]", tt.scene)
			}
		})
	}
}

// TestParse_EndMarkerNotStored 验证 [End] 不会作为台词出现
func TestParse_EndMarkerNotStored(t *testing.T) {
	table, _, err := ParseString("[A]\nEins\n[End]\n")
	if err != nil {
		t.Fatalf("ParseString() error: %v", err)
	}
	if table.Has(EndMarker) {
		t.Error("[End] must not open a scene")
	}
	for _, line := range mustLines(t, table, "A") {
		if strings.Contains(line.Text, "End") {
			t.Errorf("unexpected end marker stored as text: %v", line)
		}
	}
}

// TestParse_Whitespace 验证空行与首尾空白处理
func TestParse_Whitespace(t *testing.T) {
	table, _, err := ParseString("\n   [ A ]  \r\n\n\t  Hallo Welt  \r\n\n")
	if err != nil {
		t.Fatalf("ParseString() error: %v", err)
	}
	lines := mustLines(t, table, "A")
	if len(lines) != 1 || lines[0].Text != "Hallo Welt" {
		t.Errorf("Lines(A) = %v, want [Hallo Welt]", lines)
	}
	if lines[0].SourceLine != 4 {
		t.Errorf("SourceLine = %d, want 4", lines[0].SourceLine)
	}
}

// TestParse_MissingEndAtEOF 验证文件末尾缺少 [End] 是允许的
func TestParse_MissingEndAtEOF(t *testing.T) {
	table, notices, err := ParseString("[A]\nEins\nZwei")
	if err != nil {
		t.Fatalf("ParseString() error: %v", err)
	}
	if len(notices) != 0 {
		t.Errorf("Expected no notices, got %v", notices)
	}
	if table.Len("A") != 2 {
		t.Errorf("Len(A) = %d, want 2", table.Len("A"))
	}
	scene, _ := table.Scene("A")
	if scene.Closed {
		t.Error("scene without [End] should not be marked closed")
	}
}

// TestParse_Notices 验证宽容解析策略
func TestParse_Notices(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantKinds []NoticeKind
		wantLines map[string][]string
	}{
		{
			name:      "场景标记之前的台词被丢弃",
			input:     "Prolog\n[A]\nHallo",
			wantKinds: []NoticeKind{NoticeOrphanLine},
			wantLines: map[string][]string{"A": {"Hallo"}},
		},
		{
			name:      "[End] 之后的台词被丢弃",
			input:     "[A]\nHallo\n[End]\nVerloren\n[B]\nTschüss",
			wantKinds: []NoticeKind{NoticeOrphanLine},
			wantLines: map[string][]string{"A": {"Hallo"}, "B": {"Tschüss"}},
		},
		{
			name:      "不完整的标记按台词处理",
			input:     "[A]\n[Kein Ende\nHallo",
			wantKinds: []NoticeKind{NoticeMalformedMarker},
			wantLines: map[string][]string{"A": {"[Kein Ende", "Hallo"}},
		},
		{
			name:      "空标记按台词处理",
			input:     "[A]\n[]",
			wantKinds: []NoticeKind{NoticeMalformedMarker},
			wantLines: map[string][]string{"A": {"[]"}},
		},
		{
			name:      "多余的 [End] 被忽略",
			input:     "[End]\n[A]\nHallo\n[End]\n[End]",
			wantKinds: []NoticeKind{NoticeStrayEnd, NoticeStrayEnd},
			wantLines: map[string][]string{"A": {"Hallo"}},
		},
		{
			name:      "重复场景追加台词",
			input:     "[A]\nEins\n[End]\n[A]\nZwei",
			wantKinds: []NoticeKind{NoticeDuplicateScene},
			wantLines: map[string][]string{"A": {"Eins", "Zwei"}},
		},
		{
			name:      "标记之前的不完整标记同时是孤立行",
			input:     "[Kaputt\n[A]\nHallo",
			wantKinds: []NoticeKind{NoticeMalformedMarker, NoticeOrphanLine},
			wantLines: map[string][]string{"A": {"Hallo"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, notices, err := ParseString(tt.input)
			if err != nil {
				t.Fatalf("ParseString() error: %v", err)
			}

			if len(notices) != len(tt.wantKinds) {
				t.Fatalf("notices = %v, want kinds %v", notices, tt.wantKinds)
			}
			for i, n := range notices {
				if n.Kind != tt.wantKinds[i] {
					t.Errorf("notices[%d].Kind = %v, want %v", i, n.Kind, tt.wantKinds[i])
				}
				if n.Line < 1 {
					t.Errorf("notices[%d].Line = %d, want >= 1", i, n.Line)
				}
			}

			if len(table.Scenes()) != len(tt.wantLines) {
				t.Errorf("Scenes() = %v, want %d scenes", table.Scenes(), len(tt.wantLines))
			}
			for scene, want := range tt.wantLines {
				lines := mustLines(t, table, scene)
				if len(lines) != len(want) {
					t.Fatalf("Lines(%q) = %v, want %v", scene, lines, want)
				}
				for i := range want {
					if lines[i].Text != want[i] {
						t.Errorf("Lines(%q)[%d] = %q, want %q", scene, i, lines[i].Text, want[i])
					}
				}
			}
		})
	}
}

// TestParse_EmptyScene 验证空场景存在于对话表中
func TestParse_EmptyScene(t *testing.T) {
	table, _, err := ParseString("[A]\n[End]")
	if err != nil {
		t.Fatalf("ParseString() error: %v", err)
	}
	if !table.Has("A") {
		t.Fatal("empty scene A should exist")
	}
	if table.Len("A") != 0 {
		t.Errorf("Len(A) = %d, want 0", table.Len("A"))
	}
}

// TestParse_Deterministic 验证两次解析结果一致
func TestParse_Deterministic(t *testing.T) {
	inputs := []string{
		"",
		"[A]\nHello\nWorld\n[End]\n[B]\nBye\n[End]",
		"Prolog\n[A]\n[kaputt\n[End]\n[End]\n[A]\nx",
		"[FirstScene]\nDu wachst auf.\n\n[SecondScene]\nDer Flur ist leer.\n",
	}

	for _, input := range inputs {
		a, na, err := ParseString(input)
		if err != nil {
			t.Fatalf("ParseString() error: %v", err)
		}
		b, nb, err := ParseString(input)
		if err != nil {
			t.Fatalf("ParseString() error: %v", err)
		}
		if !a.Equal(b) {
			t.Errorf("two parses of %q differ", input)
		}
		if len(na) != len(nb) {
			t.Errorf("notices differ for %q: %v vs %v", input, na, nb)
		}
	}
}

// TestParse_BOMAndNormalization 验证 BOM 去除与 NFC 规范化
func TestParse_BOMAndNormalization(t *testing.T) {
	// "Mädchen" 的分解形式：a + U+0308
	decomposed := "Ma\u0308dchen"
	table, notices, err := ParseString("\ufeff[A]\n" + decomposed)
	if err != nil {
		t.Fatalf("ParseString() error: %v", err)
	}
	if len(notices) != 0 {
		t.Errorf("BOM should not produce notices, got %v", notices)
	}
	lines := mustLines(t, table, "A")
	if len(lines) != 1 || lines[0].Text != "M\u00e4dchen" {
		t.Errorf("Lines(A) = %v, want [Mädchen]", lines)
	}
}

// TestParse_ReadError 验证读取错误被包装返回
func TestParse_ReadError(t *testing.T) {
	readErr := errors.New("disk on fire")
	_, _, err := Parse(&failingReader{data: "[A]\nHallo\n", err: readErr})
	if !errors.Is(err, readErr) {
		t.Errorf("Parse() error = %v, want wrapped %v", err, readErr)
	}
}

// TestTable_Equal 验证对话表比较
func TestTable_Equal(t *testing.T) {
	a, _, _ := ParseString("[A]\nEins\n[End]")
	b, _, _ := ParseString("[A]\nEins")
	c, _, _ := ParseString("[A]\nZwei\n[End]")

	if a.Equal(b) {
		t.Error("tables differing in Closed should not be equal")
	}
	if a.Equal(c) {
		t.Error("tables differing in text should not be equal")
	}
	if a.Equal(nil) {
		t.Error("table should not equal nil")
	}
}

// TestNoticeKind_String 测试提示类型的字符串表示
func TestNoticeKind_String(t *testing.T) {
	tests := []struct {
		kind     NoticeKind
		expected string
	}{
		{NoticeOrphanLine, "OrphanLine"},
		{NoticeMalformedMarker, "MalformedMarker"},
		{NoticeStrayEnd, "StrayEnd"},
		{NoticeDuplicateScene, "DuplicateScene"},
		{NoticeKind(99), "Unknown"},
	}

	for _, test := range tests {
		if got := test.kind.String(); got != test.expected {
			t.Errorf("NoticeKind(%d).String() = %s, expected %s", test.kind, got, test.expected)
		}
	}
}

func mustLines(t *testing.T, table *Table, scene string) []Line {
	t.Helper()
	lines, ok := table.Lines(scene)
	if !ok {
		t.Fatalf("scene %q not found, have %v", scene, table.Scenes())
	}
	return lines
}

// failingReader 先返回数据，再返回错误
type failingReader struct {
	data string
	err  error
	done bool
}

func (r *failingReader) Read(p []byte) (int, error) {
	if r.done {
		return 0, r.err
	}
	r.done = true
	return copy(p, r.data), nil
}
