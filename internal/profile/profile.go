// Package profile loads the scoring profile: category maxima, thresholds,
// penalties and limits used by the checkers and the aggregator.
package profile

import (
	"embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/dshills/codescore/internal/analysis"
	"gopkg.in/yaml.v3"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

const DefaultName = "default"

// Profile is the immutable scoring configuration. It is loaded once and
// shared read-only between analyses.
type Profile struct {
	Name                   string         `yaml:"name"`
	Version                int            `yaml:"version"`
	Description            string         `yaml:"description"`
	Maxima                 map[string]int `yaml:"maxima"`
	MaxRecommendations     int            `yaml:"max_recommendations"`
	NoIssuesRecommendation string         `yaml:"no_issues_recommendation"`
	Naming                 Naming         `yaml:"naming"`
	Formatting             Formatting     `yaml:"formatting"`
	Comments               Comments       `yaml:"comments"`
	Modularity             Modularity     `yaml:"modularity"`
	Reusability            Reusability    `yaml:"reusability"`
	BestPractices          BestPractices  `yaml:"best_practices"`
}

type Naming struct {
	Penalty int `yaml:"penalty"`
}

type Formatting struct {
	ConsistentScore   int `yaml:"consistent_score"`
	InconsistentScore int `yaml:"inconsistent_score"`
}

// Comments configures the comment-density bands. A ratio of exactly zero
// always scores 0; otherwise the highest band whose Min is <= ratio applies.
type Comments struct {
	NoCommentsRecommendation string `yaml:"no_comments_recommendation"`
	Bands                    []Band `yaml:"bands"`
	MissingDocsPenalty       int    `yaml:"missing_docs_penalty"`
}

// Band maps a minimum comment ratio to a score.
type Band struct {
	Min            float64 `yaml:"min"`
	Score          int     `yaml:"score"`
	Recommendation string  `yaml:"recommendation,omitempty"`
}

type Modularity struct {
	LongFunctionLines      int `yaml:"long_function_lines"`
	LongFunctionPenalty    int `yaml:"long_function_penalty"`
	GrowingFunctionLines   int `yaml:"growing_function_lines"`
	GrowingFunctionPenalty int `yaml:"growing_function_penalty"`
	NestingLimit           int `yaml:"nesting_limit"`
	NestingPenalty         int `yaml:"nesting_penalty"`
}

type Reusability struct {
	HighDuplication        float64 `yaml:"high_duplication"`
	HighDuplicationPenalty int     `yaml:"high_duplication_penalty"`
	SomeDuplication        float64 `yaml:"some_duplication"`
	SomeDuplicationPenalty int     `yaml:"some_duplication_penalty"`
	MagicNumberLimit       int     `yaml:"magic_number_limit"`
	MagicNumberPenalty     int     `yaml:"magic_number_penalty"`
}

type BestPractices struct {
	VarPenalty           int `yaml:"var_penalty"`
	ConsoleLogLimit      int `yaml:"console_log_limit"`
	ConsoleLogPenalty    int `yaml:"console_log_penalty"`
	ErrorHandlingPenalty int `yaml:"error_handling_penalty"`
	ModernSyntaxPenalty  int `yaml:"modern_syntax_penalty"`
	BuiltinShadowPenalty int `yaml:"builtin_shadow_penalty"`
	PythonTryMinLength   int `yaml:"python_try_min_length"`
	PythonTryPenalty     int `yaml:"python_try_penalty"`
	ForLoopLimit         int `yaml:"for_loop_limit"`
	ComprehensionPenalty int `yaml:"comprehension_penalty"`
}

// Max returns the maximum sub-score of category c.
func (p *Profile) Max(c analysis.Category) int {
	return p.Maxima[string(c)]
}

// CategoryMaxima returns the maxima keyed by category.
func (p *Profile) CategoryMaxima() map[analysis.Category]int {
	m := make(map[analysis.Category]int, len(analysis.Categories))
	for _, c := range analysis.Categories {
		m[c] = p.Max(c)
	}
	return m
}

// Validate reports the first structural problem in the profile.
func (p *Profile) Validate() error {
	for _, c := range analysis.Categories {
		if p.Max(c) <= 0 {
			return fmt.Errorf("maxima.%s must be positive", c)
		}
		if p.Max(c) > analysis.DefaultMaxima[c] {
			return fmt.Errorf("maxima.%s must not exceed %d", c, analysis.DefaultMaxima[c])
		}
	}
	for k := range p.Maxima {
		if !analysis.Category(k).Valid() {
			return fmt.Errorf("maxima.%s: unknown category", k)
		}
	}
	if p.MaxRecommendations < 1 || p.MaxRecommendations > analysis.DefaultMaxRecommendations {
		return fmt.Errorf("max_recommendations must be between 1 and %d", analysis.DefaultMaxRecommendations)
	}
	if len(p.Comments.Bands) == 0 {
		return fmt.Errorf("comments.bands must not be empty")
	}
	if !sort.SliceIsSorted(p.Comments.Bands, func(i, j int) bool {
		return p.Comments.Bands[i].Min < p.Comments.Bands[j].Min
	}) {
		return fmt.Errorf("comments.bands must be sorted by min")
	}
	for i, b := range p.Comments.Bands {
		if b.Score < 0 || b.Score > p.Max(analysis.CategoryComments) {
			return fmt.Errorf("comments.bands[%d].score %d out of range", i, b.Score)
		}
	}
	if p.Formatting.ConsistentScore > p.Max(analysis.CategoryFormatting) {
		return fmt.Errorf("formatting.consistent_score exceeds maxima.formatting")
	}
	if p.Reusability.SomeDuplication > p.Reusability.HighDuplication {
		return fmt.Errorf("reusability.some_duplication must not exceed high_duplication")
	}
	if p.Modularity.GrowingFunctionLines > p.Modularity.LongFunctionLines {
		return fmt.Errorf("modularity.growing_function_lines must not exceed long_function_lines")
	}
	return nil
}

// LoadBuiltin loads a built-in profile by name.
func LoadBuiltin(name string) (*Profile, error) {
	data, err := builtinFS.ReadFile("builtin/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("profile.LoadBuiltin: unknown profile %q: %w", name, err)
	}
	p, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("profile.LoadBuiltin: %q: %w", name, err)
	}
	return p, nil
}

// Load reads a profile from a YAML file on disk.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("profile.Load: %w", err)
	}
	p, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("profile.Load: %s: %w", path, err)
	}
	return p, nil
}

// Default returns the built-in default profile. The embedded file is part
// of the binary, so a failure here is a build defect.
func Default() *Profile {
	p, err := LoadBuiltin(DefaultName)
	if err != nil {
		panic(err)
	}
	return p
}

func parse(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid: %w", err)
	}
	return &p, nil
}

// List returns the names of all available built-in profiles.
func List() ([]string, error) {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		n := e.Name()
		if strings.HasSuffix(n, ".yaml") {
			names = append(names, strings.TrimSuffix(n, ".yaml"))
		}
	}
	return names, nil
}

// Describe renders the profile as a short human-readable summary.
func Describe(p *Profile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Profile: %s (v%d)\n", p.Name, p.Version)
	if p.Description != "" {
		fmt.Fprintf(&b, "%s\n", strings.TrimSpace(p.Description))
	}
	b.WriteString("\nCategory maxima:\n")
	for _, c := range analysis.Categories {
		fmt.Fprintf(&b, "- %s: %d\n", c, p.Max(c))
	}
	fmt.Fprintf(&b, "\nMax recommendations: %d\n", p.MaxRecommendations)
	return b.String()
}
