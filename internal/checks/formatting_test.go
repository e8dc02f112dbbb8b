package checks

import (
	"testing"

	"github.com/dshills/codescore/internal/analysis"
	"github.com/dshills/codescore/internal/profile"
)

func TestScanIndentation(t *testing.T) {
	tests := []struct {
		name       string
		src        string
		char       rune
		size       int
		consistent bool
	}{
		{"no indentation", "a\nb\nc", 0, 0, true},
		{"four spaces", "def f():\n    x = 1\n    if x:\n        y = 2\n", ' ', 4, true},
		{"two then four", "a\n  b\n    c\n  d", ' ', 2, true},
		{"three then five", "a\n   b\n     c", ' ', 3, false},
		{"tabs", "a\n\tb\n\t\tc", '\t', 1, true},
		{"blank lines ignored", "a\n   \n    b\n        c", ' ', 4, true},
		{"four then two", "a\n    b\n  c", ' ', 4, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScanIndentation(tt.src)
			if got.Char != tt.char || got.Size != tt.size || got.Consistent != tt.consistent {
				t.Errorf("ScanIndentation() = %+v, want {Char:%q Size:%d Consistent:%v}", got, tt.char, tt.size, tt.consistent)
			}
		})
	}
}

func TestFormattingCheck(t *testing.T) {
	c := NewFormattingCheck(profile.Default())

	good := c.Check("function f() {\n    if (x) {\n        y();\n    }\n}\n", analysis.LanguageJavaScript)
	if good.Value != 15 {
		t.Errorf("consistent file scored %d, want 15", good.Value)
	}
	if len(good.Recommendations) != 0 {
		t.Errorf("consistent file should have no recommendations, got %v", good.Recommendations)
	}

	bad := c.Check("def f():\n   x = 1\n   if x:\n     y = 2\n", analysis.LanguagePython)
	if bad.Value != 5 {
		t.Errorf("inconsistent file scored %d, want 5", bad.Value)
	}
	if len(bad.Recommendations) != 1 || bad.Recommendations[0] != recIndentation {
		t.Errorf("expected the indentation recommendation, got %v", bad.Recommendations)
	}
}
