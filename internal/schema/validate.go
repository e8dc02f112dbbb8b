// Package schema validates analysis results against the wire schema and
// publishes that schema as JSON Schema.
package schema

import (
	"fmt"

	"github.com/dshills/codescore/internal/analysis"
	"github.com/dshills/codescore/internal/profile"
)

// ValidationError describes a single schema violation.
type ValidationError struct {
	Path    string
	Message string
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// Validate checks a Result for structural validity under profile p. A nil
// profile uses the built-in default.
func Validate(r *analysis.Result, p *profile.Profile) []ValidationError {
	if p == nil {
		p = profile.Default()
	}
	var errs []ValidationError

	if r.OverallScore < 0 || r.OverallScore > 100 {
		errs = append(errs, ValidationError{"overall_score", fmt.Sprintf("%d outside [0, 100]", r.OverallScore)})
	}

	for _, c := range analysis.Categories {
		v, max := r.Breakdown.Get(c), p.Max(c)
		if v < 0 || v > max {
			errs = append(errs, ValidationError{"breakdown." + string(c), fmt.Sprintf("%d outside [0, %d]", v, max)})
		}
	}

	// Verify score consistency
	expected := analysis.ComputeScore(r.Breakdown, p.CategoryMaxima())
	if r.OverallScore != expected {
		errs = append(errs, ValidationError{"overall_score", fmt.Sprintf("score %d does not match computed %d", r.OverallScore, expected)})
	}

	switch n := len(r.Recommendations); {
	case n == 0:
		errs = append(errs, ValidationError{"recommendations", "at least one recommendation required"})
	case n > p.MaxRecommendations:
		errs = append(errs, ValidationError{"recommendations", fmt.Sprintf("%d entries exceeds limit %d", n, p.MaxRecommendations)})
	}
	for i, rec := range r.Recommendations {
		if rec == "" {
			errs = append(errs, ValidationError{fmt.Sprintf("recommendations[%d]", i), "required"})
		}
	}

	if r.FileName == "" {
		errs = append(errs, ValidationError{"file_name", "required"})
	}
	if !r.FileType.Valid() {
		errs = append(errs, ValidationError{"file_type", fmt.Sprintf("invalid: %q", r.FileType)})
	}
	if r.FileSize != len(r.FileContent) {
		errs = append(errs, ValidationError{"file_size", fmt.Sprintf("expected %d, got %d", len(r.FileContent), r.FileSize)})
	}

	return errs
}
