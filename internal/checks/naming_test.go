package checks

import (
	"strings"
	"testing"

	"github.com/dshills/codescore/internal/analysis"
	"github.com/dshills/codescore/internal/profile"
)

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"calculateTotal", "calculate_total"},
		{"CalculateTotal", "calculate_total"},
		{"HTTPServer", "h_t_t_p_server"},
		{"already_snake", "already_snake"},
		{"x", "x"},
	}
	for _, tt := range tests {
		if got := ToSnakeCase(tt.in); got != tt.want {
			t.Errorf("ToSnakeCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNamingPython(t *testing.T) {
	c := NewNamingCheck(profile.Default())

	s := c.Check("def calculateTotal(): pass", analysis.LanguagePython)
	if s.Value > 8 {
		t.Errorf("score = %d, want <= 8", s.Value)
	}
	found := false
	for _, r := range s.Recommendations {
		if strings.Contains(r, "calculate_total") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a recommendation mentioning calculate_total, got %v", s.Recommendations)
	}

	clean := c.Check("MAX_ITEMS = 10\n\ndef calculate_total(items):\n    running_total = 0\n    return running_total\n", analysis.LanguagePython)
	if clean.Value != 10 || len(clean.Recommendations) != 0 {
		t.Errorf("snake_case file = %d %v, want 10 and no recommendations", clean.Value, clean.Recommendations)
	}

	camelVar := c.Check("totalCount = 0\n", analysis.LanguagePython)
	if camelVar.Value != 8 || len(camelVar.Recommendations) != 1 || !strings.Contains(camelVar.Recommendations[0], "totalCount") {
		t.Errorf("camelCase variable = %d %v", camelVar.Value, camelVar.Recommendations)
	}
}

func TestNamingJavaScript(t *testing.T) {
	c := NewNamingCheck(profile.Default())
	src := "const myValue = 1;\nlet Bad_Name = 2;\nconst MAX_SIZE = 3;\nfunction DoThing() {}\nfunction doThing() {}\n"

	s := c.Check(src, analysis.LanguageJavaScript)
	if s.Value != 6 {
		t.Errorf("score = %d, want 6", s.Value)
	}
	want := []string{
		"Use camelCase for variable 'Bad_Name'",
		"Use camelCase for function 'DoThing'",
	}
	if len(s.Recommendations) != len(want) {
		t.Fatalf("got %v, want %v", s.Recommendations, want)
	}
	for i := range want {
		if s.Recommendations[i] != want[i] {
			t.Errorf("[%d] = %q, want %q", i, s.Recommendations[i], want[i])
		}
	}
}

func TestNamingRepeatedOffendersNotDeduplicated(t *testing.T) {
	c := NewNamingCheck(profile.Default())
	s := c.Check("let Foo = 1;\nlet Foo = 3;\n", analysis.LanguageJavaScript)
	if len(s.Recommendations) != 2 || s.Recommendations[0] != s.Recommendations[1] {
		t.Errorf("expected two identical recommendations, got %v", s.Recommendations)
	}
	if s.Value != 6 {
		t.Errorf("score = %d, want 6", s.Value)
	}
}

func TestNamingFloorsAtZero(t *testing.T) {
	c := NewNamingCheck(profile.Default())
	src := "let A_a = 1; let B_b = 1; let C_c = 1; let D_d = 1; let E_e = 1; let F_f = 1;"
	s := c.Check(src, analysis.LanguageJavaScript)
	if s.Value != 0 {
		t.Errorf("score = %d, want 0", s.Value)
	}
	if len(s.Recommendations) != 6 {
		t.Errorf("expected 6 recommendations, got %d", len(s.Recommendations))
	}
}

func TestNamingLanguageIsolation(t *testing.T) {
	c := NewNamingCheck(profile.Default())
	if s := c.Check("function BadName() {}", analysis.LanguagePython); s.Value != 10 {
		t.Errorf("python run flagged a JavaScript declaration: %v", s.Recommendations)
	}
	if s := c.Check("def BadName(): pass", analysis.LanguageJavaScript); s.Value != 10 {
		t.Errorf("javascript run flagged a Python declaration: %v", s.Recommendations)
	}
}
