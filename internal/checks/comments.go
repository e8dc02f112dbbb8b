package checks

import (
	"regexp"
	"strings"

	"github.com/dshills/codescore/internal/analysis"
	"github.com/dshills/codescore/internal/profile"
)

const (
	recJSDoc     = "Add JSDoc comments for functions to document their purpose and parameters"
	recDocstring = "Add a docstring to explain the purpose of the function"
)

var (
	jsCommentMarkers = []string{"//", "/*", "*/"}
	pyCommentMarkers = []string{"#", `"""`}

	jsFunctionName = regexp.MustCompile(`function\s+([A-Za-z_][A-Za-z0-9_]*)`)
	pyFunctionName = regexp.MustCompile(`def\s+([A-Za-z_][A-Za-z0-9_]*)`)
	jsDocBlock     = regexp.MustCompile(`/\*\*[\s\S]*?\*/`)
	pyDocstring    = regexp.MustCompile(`"""[\s\S]*?"""`)
)

// CommentsCheck scores comment density and the presence of doc comments.
type CommentsCheck struct {
	cfg profile.Comments
	max int
}

func NewCommentsCheck(p *profile.Profile) *CommentsCheck {
	return &CommentsCheck{cfg: p.Comments, max: p.Max(analysis.CategoryComments)}
}

func (c *CommentsCheck) Category() analysis.Category { return analysis.CategoryComments }

func (c *CommentsCheck) Check(src string, lang analysis.Language) Score {
	markers, funcs, docs := jsCommentMarkers, jsFunctionName, jsDocBlock
	docRec := recJSDoc
	if lang == analysis.LanguagePython {
		markers, funcs, docs = pyCommentMarkers, pyFunctionName, pyDocstring
		docRec = recDocstring
	}

	lines := splitLines(src)
	commented := 0
	for _, line := range lines {
		if containsAny(line, markers) {
			commented++
		}
	}
	nonBlank := countNonBlank(lines)
	if nonBlank == 0 {
		nonBlank = 1
	}

	score, rec := c.band(float64(commented) / float64(nonBlank))
	var recs []string
	if rec != "" {
		recs = append(recs, rec)
	}

	if funcs.MatchString(src) && !docs.MatchString(src) {
		recs = append(recs, docRec)
		score -= c.cfg.MissingDocsPenalty
	}

	return Score{Value: analysis.Clamp(score, c.max), Recommendations: recs}
}

// band maps a comment ratio onto the configured bands.
func (c *CommentsCheck) band(ratio float64) (int, string) {
	if ratio == 0 {
		return 0, c.cfg.NoCommentsRecommendation
	}
	score, rec := 0, ""
	for _, b := range c.cfg.Bands {
		if ratio < b.Min {
			break
		}
		score, rec = b.Score, b.Recommendation
	}
	return score, rec
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
