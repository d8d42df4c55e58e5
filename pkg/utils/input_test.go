package utils

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ebiten.Key
		wantErr bool
	}{
		{"空格键", "Space", ebiten.KeySpace, false},
		{"回车键", "Enter", ebiten.KeyEnter, false},
		{"方向键", "ArrowRight", ebiten.KeyArrowRight, false},
		{"大小写不敏感", "space", ebiten.KeySpace, false},
		{"首尾空白", "  Enter ", ebiten.KeyEnter, false},
		{"空名称", "", 0, true},
		{"未知按键", "NoSuchKey", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKey(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKey(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseKey(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewAdvanceInput(t *testing.T) {
	in, err := NewAdvanceInput("Enter", ebiten.KeySpace, false)
	if err != nil {
		t.Fatalf("NewAdvanceInput() error: %v", err)
	}
	if in.Key != ebiten.KeyEnter || in.AllowClick {
		t.Errorf("NewAdvanceInput() = %+v", in)
	}

	// 无效名称回退到默认按键
	in, err = NewAdvanceInput("bogus", ebiten.KeySpace, true)
	if err == nil {
		t.Error("Expected error for invalid key name")
	}
	if in.Key != ebiten.KeySpace || !in.AllowClick {
		t.Errorf("fallback input = %+v, want Space with click", in)
	}
}
