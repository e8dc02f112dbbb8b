package checks

import (
	"github.com/dshills/codescore/internal/analysis"
	"github.com/dshills/codescore/internal/profile"
)

const recIndentation = "Use consistent indentation throughout your code"

// Indentation describes the indent unit of a file.
type Indentation struct {
	Char       rune // ' ' or '\t'; 0 when no line is indented
	Size       int
	Consistent bool
}

// ScanIndentation fixes the indent unit on the first indented non-blank
// line and stops at the first indented line whose width is not a multiple
// of that unit.
func ScanIndentation(src string) Indentation {
	ind := Indentation{Consistent: true}
	for _, line := range splitLines(src) {
		if isBlank(line) {
			continue
		}
		indent := leadingWhitespace(line)
		if indent == 0 {
			continue
		}
		if ind.Size == 0 {
			ind.Size = indent
			ind.Char = ' '
			if line[0] != ' ' {
				ind.Char = '\t'
			}
			continue
		}
		if indent%ind.Size != 0 {
			ind.Consistent = false
			break
		}
	}
	return ind
}

// FormattingCheck scores indentation consistency.
type FormattingCheck struct {
	cfg profile.Formatting
	max int
}

func NewFormattingCheck(p *profile.Profile) *FormattingCheck {
	return &FormattingCheck{cfg: p.Formatting, max: p.Max(analysis.CategoryFormatting)}
}

func (c *FormattingCheck) Category() analysis.Category { return analysis.CategoryFormatting }

func (c *FormattingCheck) Check(src string, _ analysis.Language) Score {
	if ScanIndentation(src).Consistent {
		return Score{Value: analysis.Clamp(c.cfg.ConsistentScore, c.max)}
	}
	return Score{
		Value:           analysis.Clamp(c.cfg.InconsistentScore, c.max),
		Recommendations: []string{recIndentation},
	}
}
