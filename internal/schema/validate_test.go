package schema

import (
	"strings"
	"testing"

	"github.com/dshills/codescore/internal/analysis"
	"github.com/dshills/codescore/internal/profile"
)

func validResult() *analysis.Result {
	b := analysis.Breakdown{
		Naming:        8,
		Modularity:    20,
		Comments:      15,
		Formatting:    15,
		Reusability:   11,
		BestPractices: 18,
	}
	content := "def main():\n    pass\n"
	return &analysis.Result{
		OverallScore:    analysis.ComputeScore(b, nil),
		Breakdown:       b,
		Recommendations: []string{"Add a docstring to explain the purpose of the function"},
		FileName:        "main.py",
		FileSize:        len(content),
		FileContent:     content,
		FileType:        analysis.FileTypePy,
	}
}

func hasPath(errs []ValidationError, path string) bool {
	for _, e := range errs {
		if e.Path == path {
			return true
		}
	}
	return false
}

func TestValidateValid(t *testing.T) {
	errs := Validate(validResult(), nil)
	for _, e := range errs {
		t.Errorf("unexpected error: %s", e)
	}
}

func TestValidateViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *analysis.Result)
		path   string
	}{
		{"sub-score above max", func(r *analysis.Result) { r.Breakdown.Naming = 11 }, "breakdown.naming"},
		{"negative sub-score", func(r *analysis.Result) { r.Breakdown.Comments = -1 }, "breakdown.comments"},
		{"overall mismatch", func(r *analysis.Result) { r.OverallScore = 99 }, "overall_score"},
		{"overall out of range", func(r *analysis.Result) { r.OverallScore = 101 }, "overall_score"},
		{"no recommendations", func(r *analysis.Result) { r.Recommendations = nil }, "recommendations"},
		{"too many recommendations", func(r *analysis.Result) {
			r.Recommendations = []string{"a", "b", "c", "d", "e", "f"}
		}, "recommendations"},
		{"empty recommendation", func(r *analysis.Result) { r.Recommendations = []string{""} }, "recommendations[0]"},
		{"missing file name", func(r *analysis.Result) { r.FileName = "" }, "file_name"},
		{"bad file type", func(r *analysis.Result) { r.FileType = "ts" }, "file_type"},
		{"size mismatch", func(r *analysis.Result) { r.FileSize = 3 }, "file_size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validResult()
			tt.mutate(r)
			errs := Validate(r, nil)
			if !hasPath(errs, tt.path) {
				t.Errorf("expected error at %s, got %v", tt.path, errs)
			}
		})
	}
}

func TestValidateUsesProfileLimits(t *testing.T) {
	p := profile.Default()
	p.MaxRecommendations = 1
	r := validResult()
	r.Recommendations = []string{"a", "b"}
	if !hasPath(Validate(r, p), "recommendations") {
		t.Error("expected the profile recommendation limit to apply")
	}
}

func TestValidationErrorString(t *testing.T) {
	e := ValidationError{Path: "file_type", Message: "invalid"}
	if !strings.Contains(e.Error(), "file_type: invalid") {
		t.Errorf("Error() = %q", e.Error())
	}
}
