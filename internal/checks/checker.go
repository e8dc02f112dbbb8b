// Package checks implements the per-category quality checkers. Every checker
// is a pure function of the source text and language: no I/O, no shared
// mutable state, safe for concurrent use.
package checks

import (
	"strings"
	"unicode"

	"github.com/dshills/codescore/internal/analysis"
	"github.com/dshills/codescore/internal/profile"
)

// Score is the outcome of one checker run.
type Score struct {
	Value           int
	Recommendations []string
}

// Checker scores one category of a source file.
type Checker interface {
	Category() analysis.Category
	Check(src string, lang analysis.Language) Score
}

// All returns one checker per category, in evaluation order.
func All(p *profile.Profile) []Checker {
	return []Checker{
		NewNamingCheck(p),
		NewFormattingCheck(p),
		NewCommentsCheck(p),
		NewModularityCheck(p),
		NewReusabilityCheck(p),
		NewBestPracticesCheck(p),
	}
}

func splitLines(src string) []string {
	return strings.Split(src, "\n")
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

func countNonBlank(lines []string) int {
	n := 0
	for _, l := range lines {
		if !isBlank(l) {
			n++
		}
	}
	return n
}

// leadingWhitespace counts the whitespace characters before the first
// non-space character of line.
func leadingWhitespace(line string) int {
	n := 0
	for _, r := range line {
		if !unicode.IsSpace(r) {
			break
		}
		n++
	}
	return n
}
