package checks

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dshills/codescore/internal/analysis"
	"github.com/dshills/codescore/internal/profile"
)

const recNesting = "Reduce nested conditionals and loops for better readability"

var (
	// Matches a named function whose body holds at most one level of
	// nested braces. Deeper bodies are not matched.
	jsFunctionBody   = regexp.MustCompile(`function\s+([A-Za-z_][A-Za-z0-9_]*)\s*\([^)]*\)\s*\{([^{}]*(?:\{[^{}]*\}[^{}]*)*)\}`)
	pyFunctionHeader = regexp.MustCompile(`def\s+([A-Za-z_][A-Za-z0-9_]*)\s*\([^)]*\):`)

	nestedIf   = regexp.MustCompile(`if\s*\([^)]*\)\s*\{[^{}]*if\s*\(`)
	nestedLoop = regexp.MustCompile(`(?:for|while)\s*\([^)]*\)\s*\{[^{}]*(?:for|while)\s*\(`)
)

// Function is a function found in the source with its non-blank body length.
type Function struct {
	Name  string
	Lines int
}

// ModularityCheck scores function length and nesting depth.
type ModularityCheck struct {
	cfg profile.Modularity
	max int
}

func NewModularityCheck(p *profile.Profile) *ModularityCheck {
	return &ModularityCheck{cfg: p.Modularity, max: p.Max(analysis.CategoryModularity)}
}

func (c *ModularityCheck) Category() analysis.Category { return analysis.CategoryModularity }

func (c *ModularityCheck) Check(src string, lang analysis.Language) Score {
	score := c.max
	var recs []string

	for _, fn := range ExtractFunctions(src, lang) {
		switch {
		case fn.Lines > c.cfg.LongFunctionLines:
			recs = append(recs, fmt.Sprintf("Function '%s' is too long (%d lines)—consider refactoring", fn.Name, fn.Lines))
			score -= c.cfg.LongFunctionPenalty
		case fn.Lines > c.cfg.GrowingFunctionLines:
			recs = append(recs, fmt.Sprintf("Function '%s' is getting long—consider breaking it down", fn.Name))
			score -= c.cfg.GrowingFunctionPenalty
		}
	}

	if NestingCount(src) > c.cfg.NestingLimit {
		recs = append(recs, recNesting)
		score -= c.cfg.NestingPenalty
	}

	return Score{Value: analysis.Clamp(score, c.max), Recommendations: recs}
}

// ExtractFunctions returns the named functions of src in source order.
func ExtractFunctions(src string, lang analysis.Language) []Function {
	if lang == analysis.LanguagePython {
		return pythonFunctions(src)
	}
	var fns []Function
	for _, m := range jsFunctionBody.FindAllStringSubmatch(src, -1) {
		fns = append(fns, Function{Name: m[1], Lines: countNonBlank(splitLines(m[2]))})
	}
	return fns
}

// pythonFunctions measures each def body as the run of non-blank lines
// indented deeper than the def line. Matches arrive in source order, so
// line numbers are tracked with a running cursor. Bodies are scanned over
// non-blank lines only, which keeps the work linear in the input size.
func pythonFunctions(src string) []Function {
	lines := splitLines(src)
	indent := make([]int, len(lines))
	var nonBlank []int
	for i, line := range lines {
		indent[i] = leadingWhitespace(line)
		if !isBlank(line) {
			nonBlank = append(nonBlank, i)
		}
	}

	var fns []Function
	cursor, line, next := 0, 0, 0
	for _, loc := range pyFunctionHeader.FindAllStringSubmatchIndex(src, -1) {
		line += strings.Count(src[cursor:loc[0]], "\n")
		start := line
		end := start + strings.Count(src[loc[0]:loc[1]], "\n")
		line, cursor = end, loc[1]
		base := indent[start]

		for next < len(nonBlank) && nonBlank[next] <= end {
			next++
		}
		n := 0
		for _, i := range nonBlank[next:] {
			if indent[i] <= base {
				break
			}
			n++
		}
		fns = append(fns, Function{Name: src[loc[2]:loc[3]], Lines: n})
	}
	return fns
}

// NestingCount counts textual if-in-if and loop-in-loop constructs.
func NestingCount(src string) int {
	return len(nestedIf.FindAllStringIndex(src, -1)) + len(nestedLoop.FindAllStringIndex(src, -1))
}
