// Package render produces Markdown and terminal output from analysis results.
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/dshills/codescore/internal/analysis"
	"github.com/dshills/codescore/internal/profile"
)

const (
	barWidth = 10
	// PreviewLines caps the code preview section.
	PreviewLines = 40
)

// Markdown renders a result as a Markdown report. Category maxima come
// from p, or from the built-in default when p is nil.
func Markdown(r *analysis.Result, p *profile.Profile) string {
	if p == nil {
		p = profile.Default()
	}
	var b strings.Builder

	// Summary
	fmt.Fprintf(&b, "# Code Quality Report: %s\n\n", r.FileName)
	fmt.Fprintf(&b, "**Overall Score:** %d / 100 (%s)\n", r.OverallScore, Grade(r.OverallScore))
	fmt.Fprintf(&b, "**File:** %s (%s, %d bytes)\n\n", r.FileName, r.FileType, r.FileSize)

	b.WriteString("## Score Breakdown\n\n")
	b.WriteString("| Category | Score | |\n")
	b.WriteString("|---|---|---|\n")
	for _, c := range analysis.Categories {
		v, max := r.Breakdown.Get(c), p.Max(c)
		fmt.Fprintf(&b, "| %s | %d / %d | %s |\n", c.Title(), v, max, Bar(v, max))
	}
	b.WriteString("\n")

	b.WriteString("## Recommendations\n\n")
	for i, rec := range r.Recommendations {
		fmt.Fprintf(&b, "%d. %s\n", i+1, rec)
	}
	b.WriteString("\n")

	b.WriteString("## Code Preview\n\n")
	renderPreview(&b, r)

	return b.String()
}

// MarkdownAll renders several results separated by horizontal rules.
func MarkdownAll(results []*analysis.Result, p *profile.Profile) string {
	parts := make([]string, len(results))
	for i, r := range results {
		parts[i] = Markdown(r, p)
	}
	return strings.Join(parts, "\n---\n\n")
}

// Grade labels an overall score.
func Grade(score int) string {
	switch {
	case score >= 90:
		return "excellent"
	case score >= 75:
		return "good"
	case score >= 50:
		return "fair"
	default:
		return "needs work"
	}
}

// Bar draws v out of max as a fixed-width bar.
func Bar(v, max int) string {
	filled := 0
	if max > 0 {
		filled = int(math.Round(float64(analysis.Clamp(v, max)) / float64(max) * barWidth))
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

func renderPreview(b *strings.Builder, r *analysis.Result) {
	lines := strings.Split(strings.TrimRight(r.FileContent, "\n"), "\n")
	truncated := len(lines) > PreviewLines
	if truncated {
		lines = lines[:PreviewLines]
	}
	body := strings.Join(lines, "\n")

	fence := "```"
	for strings.Contains(body, fence) {
		fence += "`"
	}
	fmt.Fprintf(b, "%s%s\n%s\n%s\n", fence, fenceLanguage(r.FileType), body, fence)
	if truncated {
		fmt.Fprintf(b, "\n_Preview truncated to %d lines._\n", PreviewLines)
	}
}

func fenceLanguage(ft analysis.FileType) string {
	switch ft {
	case analysis.FileTypePy:
		return "python"
	case analysis.FileTypeJSX:
		return "jsx"
	default:
		return "javascript"
	}
}
