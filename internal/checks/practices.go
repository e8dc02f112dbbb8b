package checks

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dshills/codescore/internal/analysis"
	"github.com/dshills/codescore/internal/profile"
)

const (
	recVar           = "Use 'let' and 'const' instead of 'var' for better scoping"
	recConsoleLog    = "Remove or replace console.log statements in production code"
	recAsyncHandling = "Add proper error handling for asynchronous operations"
	recModernSyntax  = "Consider using modern JavaScript features for cleaner code"
	recTryExcept     = "Add exception handling with try/except for robust code"
	recComprehension = "Consider using list comprehensions for more readable code"
)

var (
	jsVarKeyword = regexp.MustCompile(`\bvar\b`)
	jsTryBlock   = regexp.MustCompile(`try\s*\{`)
	jsAsyncLike  = regexp.MustCompile(`async\s+function|function\s*\(\s*\)\s*\{|=>\s*\{`)

	pyForKeyword    = regexp.MustCompile(`\bfor\b`)
	pyComprehension = regexp.MustCompile(`\[\s*[A-Za-z0-9_]+\s+for\s+`)

	jsModernMarkers = []string{"=>", "...", "const"}
	pyBuiltins      = []string{"sum", "id", "type", "list"}
)

// BestPracticesCheck scores language-specific idioms.
type BestPracticesCheck struct {
	cfg profile.BestPractices
	max int
}

func NewBestPracticesCheck(p *profile.Profile) *BestPracticesCheck {
	return &BestPracticesCheck{cfg: p.BestPractices, max: p.Max(analysis.CategoryBestPractices)}
}

func (c *BestPracticesCheck) Category() analysis.Category { return analysis.CategoryBestPractices }

func (c *BestPracticesCheck) Check(src string, lang analysis.Language) Score {
	var penalty int
	var recs []string
	if lang == analysis.LanguagePython {
		penalty, recs = c.python(src)
	} else {
		penalty, recs = c.javascript(src)
	}
	return Score{Value: analysis.Clamp(c.max-penalty, c.max), Recommendations: recs}
}

func (c *BestPracticesCheck) javascript(src string) (int, []string) {
	penalty := 0
	var recs []string

	if jsVarKeyword.MatchString(src) {
		recs = append(recs, recVar)
		penalty += c.cfg.VarPenalty
	}

	if strings.Count(src, "console.log") > c.cfg.ConsoleLogLimit {
		recs = append(recs, recConsoleLog)
		penalty += c.cfg.ConsoleLogPenalty
	}

	if jsAsyncLike.MatchString(src) && !jsTryBlock.MatchString(src) {
		recs = append(recs, recAsyncHandling)
		penalty += c.cfg.ErrorHandlingPenalty
	}

	if !containsAny(src, jsModernMarkers) {
		recs = append(recs, recModernSyntax)
		penalty += c.cfg.ModernSyntaxPenalty
	}

	return penalty, recs
}

func (c *BestPracticesCheck) python(src string) (int, []string) {
	penalty := 0
	var recs []string

	for _, name := range pyBuiltins {
		if strings.Contains(src, name+" =") {
			recs = append(recs, fmt.Sprintf("Avoid using '%s' as a variable name—it's a built-in", name))
			penalty += c.cfg.BuiltinShadowPenalty
			break
		}
	}

	if !strings.Contains(src, "try:") && utf8.RuneCountInString(src) > c.cfg.PythonTryMinLength {
		recs = append(recs, recTryExcept)
		penalty += c.cfg.PythonTryPenalty
	}

	if len(pyForKeyword.FindAllStringIndex(src, -1)) > c.cfg.ForLoopLimit && !pyComprehension.MatchString(src) {
		recs = append(recs, recComprehension)
		penalty += c.cfg.ComprehensionPenalty
	}

	return penalty, recs
}
