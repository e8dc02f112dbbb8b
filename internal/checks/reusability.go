package checks

import (
	"regexp"
	"strings"

	"github.com/dshills/codescore/internal/analysis"
	"github.com/dshills/codescore/internal/profile"
)

const (
	recHighDuplication = "High code duplication detected—extract repeated logic into functions"
	recSomeDuplication = "Some code duplication detected—consider refactoring"
	recMagicNumbers    = "Replace magic numbers with named constants"
)

// A bare 2-9 or multi-digit literal not touching identifier or quote characters.
var magicNumber = regexp.MustCompile(`[^A-Za-z0-9_'"]([2-9]|[1-9][0-9]+)[^A-Za-z0-9_'"]`)

// ReusabilityCheck scores repeated lines and magic numbers. It is the same
// for every language.
type ReusabilityCheck struct {
	cfg profile.Reusability
	max int
}

func NewReusabilityCheck(p *profile.Profile) *ReusabilityCheck {
	return &ReusabilityCheck{cfg: p.Reusability, max: p.Max(analysis.CategoryReusability)}
}

func (c *ReusabilityCheck) Category() analysis.Category { return analysis.CategoryReusability }

func (c *ReusabilityCheck) Check(src string, _ analysis.Language) Score {
	score := c.max
	var recs []string

	dup := DuplicationRatio(src)
	switch {
	case dup > c.cfg.HighDuplication:
		recs = append(recs, recHighDuplication)
		score -= c.cfg.HighDuplicationPenalty
	case dup > c.cfg.SomeDuplication:
		recs = append(recs, recSomeDuplication)
		score -= c.cfg.SomeDuplicationPenalty
	}

	if MagicNumberCount(src) > c.cfg.MagicNumberLimit {
		recs = append(recs, recMagicNumbers)
		score -= c.cfg.MagicNumberPenalty
	}

	return Score{Value: analysis.Clamp(score, c.max), Recommendations: recs}
}

// DuplicationRatio is 1 - distinct/total over all trimmed lines, blank
// lines included.
func DuplicationRatio(src string) float64 {
	lines := splitLines(src)
	seen := make(map[string]struct{}, len(lines))
	for _, l := range lines {
		seen[strings.TrimSpace(l)] = struct{}{}
	}
	return 1 - float64(len(seen))/float64(len(lines))
}

// MagicNumberCount counts non-overlapping magic number matches.
func MagicNumberCount(src string) int {
	return len(magicNumber.FindAllStringIndex(src, -1))
}
