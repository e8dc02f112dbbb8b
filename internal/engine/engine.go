// Package engine runs every category checker over a source file and
// aggregates the sub-scores into a single analysis result.
package engine

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dshills/codescore/internal/analysis"
	"github.com/dshills/codescore/internal/checks"
	"github.com/dshills/codescore/internal/profile"
	"github.com/dshills/codescore/internal/source"
)

var ErrUnsupportedLanguage = errors.New("unsupported language")

// Engine scores source files against one scoring profile. It holds no
// mutable state beyond the optional cache and is safe for concurrent use.
type Engine struct {
	profile  *profile.Profile
	checkers []checks.Checker
	cache    *Cache
}

// New builds an engine for p. A nil profile uses the built-in default.
func New(p *profile.Profile) *Engine {
	if p == nil {
		p = profile.Default()
	}
	return &Engine{profile: p, checkers: checks.All(p)}
}

// WithCache returns a copy of the engine that memoizes results in c.
func (e *Engine) WithCache(c *Cache) *Engine {
	cp := *e
	cp.cache = c
	return &cp
}

// Profile returns the scoring profile the engine was built with.
func (e *Engine) Profile() *profile.Profile { return e.profile }

// Analyze scores code as lang. The file type is derived from fileName:
// python is always py, javascript is jsx for a .jsx name and js otherwise.
func (e *Engine) Analyze(code, fileName string, lang analysis.Language) (*analysis.Result, error) {
	if !lang.Valid() {
		return nil, fmt.Errorf("engine.Analyze: %q: %w", lang, ErrUnsupportedLanguage)
	}

	var key string
	if e.cache != nil {
		key = CacheKey(code, fileName, lang)
		if r, ok := e.cache.Get(key); ok {
			return r, nil
		}
	}

	r := e.run(code, fileName, lang)

	if e.cache != nil {
		e.cache.Put(key, r)
	}
	return r, nil
}

// AnalyzeFile scores a loaded source file.
func (e *Engine) AnalyzeFile(f *source.File) (*analysis.Result, error) {
	return e.Analyze(f.Raw, f.Name, f.Language)
}

func (e *Engine) run(code, fileName string, lang analysis.Language) *analysis.Result {
	r := analysis.NewResult(fileName, code, fileTypeFor(fileName, lang))

	var recs []string
	for _, ch := range e.checkers {
		c := ch.Category()
		s := ch.Check(code, lang)
		r.Breakdown.Set(c, analysis.Clamp(s.Value, e.profile.Max(c)))
		recs = append(recs, s.Recommendations...)
	}
	if len(recs) == 0 && e.profile.NoIssuesRecommendation != "" {
		recs = []string{e.profile.NoIssuesRecommendation}
	}

	r.Recommendations = analysis.LimitRecommendations(recs, e.profile.MaxRecommendations)
	r.OverallScore = analysis.ComputeScore(r.Breakdown, e.profile.CategoryMaxima())
	return r
}

func fileTypeFor(fileName string, lang analysis.Language) analysis.FileType {
	if lang == analysis.LanguagePython {
		return analysis.FileTypePy
	}
	if strings.EqualFold(filepath.Ext(fileName), ".jsx") {
		return analysis.FileTypeJSX
	}
	return analysis.FileTypeJS
}
