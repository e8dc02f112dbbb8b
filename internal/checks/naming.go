package checks

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dshills/codescore/internal/analysis"
	"github.com/dshills/codescore/internal/profile"
)

var (
	jsVarDecl  = regexp.MustCompile(`\b(?:const|let|var)\s+([A-Za-z_][A-Za-z0-9_]*)\b`)
	jsFuncDecl = regexp.MustCompile(`\bfunction\s+([A-Za-z_][A-Za-z0-9_]*)\b`)
	pyFuncDecl = regexp.MustCompile(`\bdef\s+([A-Za-z_][A-Za-z0-9_]*)\b`)
	pyAssign   = regexp.MustCompile(`\b([A-Za-z_][A-Za-z0-9_]*)\s*=`)

	camelCase    = regexp.MustCompile(`^[a-z][A-Za-z0-9]*$`)
	constantCase = regexp.MustCompile(`^[A-Z_]+$`)
	snakeCase    = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)
)

// NamingCheck scores identifier naming conventions. Identifiers are pulled
// out with declaration patterns, so one identifier may be counted more than
// once.
type NamingCheck struct {
	cfg profile.Naming
	max int
}

func NewNamingCheck(p *profile.Profile) *NamingCheck {
	return &NamingCheck{cfg: p.Naming, max: p.Max(analysis.CategoryNaming)}
}

func (c *NamingCheck) Category() analysis.Category { return analysis.CategoryNaming }

func (c *NamingCheck) Check(src string, lang analysis.Language) Score {
	var recs []string
	if lang == analysis.LanguagePython {
		recs = pythonNaming(src)
	} else {
		recs = javascriptNaming(src)
	}
	return Score{
		Value:           analysis.Clamp(c.max-c.cfg.Penalty*len(recs), c.max),
		Recommendations: recs,
	}
}

func javascriptNaming(src string) []string {
	var recs []string
	for _, m := range jsVarDecl.FindAllStringSubmatch(src, -1) {
		name := m[1]
		if !camelCase.MatchString(name) && !constantCase.MatchString(name) {
			recs = append(recs, fmt.Sprintf("Use camelCase for variable '%s'", name))
		}
	}
	for _, m := range jsFuncDecl.FindAllStringSubmatch(src, -1) {
		name := m[1]
		if !camelCase.MatchString(name) {
			recs = append(recs, fmt.Sprintf("Use camelCase for function '%s'", name))
		}
	}
	return recs
}

func pythonNaming(src string) []string {
	var recs []string
	for _, m := range pyFuncDecl.FindAllStringSubmatch(src, -1) {
		name := m[1]
		if !snakeCase.MatchString(name) {
			recs = append(recs, fmt.Sprintf("Use snake_case for function names in Python (should be '%s')", ToSnakeCase(name)))
		}
	}
	for _, m := range pyAssign.FindAllStringSubmatch(src, -1) {
		name := m[1]
		if !snakeCase.MatchString(name) && !constantCase.MatchString(name) {
			recs = append(recs, fmt.Sprintf("Use snake_case for variable '%s' in Python", name))
		}
	}
	return recs
}

// ToSnakeCase prefixes every ASCII capital with an underscore, lowercases
// the result and drops a single leading underscore.
func ToSnakeCase(name string) string {
	var b strings.Builder
	for _, r := range name {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('_')
		}
		b.WriteRune(r)
	}
	return strings.TrimPrefix(strings.ToLower(b.String()), "_")
}
