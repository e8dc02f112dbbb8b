package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dshills/codescore/internal/analysis"
	"github.com/dshills/codescore/internal/engine"
	"github.com/dshills/codescore/internal/profile"
	"github.com/dshills/codescore/internal/render"
	"github.com/dshills/codescore/internal/schema"
	"github.com/dshills/codescore/internal/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type analyzeFlags struct {
	format    string
	out       string
	profile   profileFlags
	failUnder int
	maxBytes  int64
	width     int
	verbose   bool
}

func newAnalyzeCmd() *cobra.Command {
	f := &analyzeFlags{}

	cmd := &cobra.Command{
		Use:   "analyze <file>...",
		Short: "Analyze one or more .js, .jsx or .py files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd.Context(), args, f, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.format, "format", "json", "Output format: json, md or term")
	flags.StringVar(&f.out, "out", "", "Output file path (default: stdout)")
	flags.IntVar(&f.failUnder, "fail-under", 0, "Exit 2 if any file scores below this value")
	flags.Int64Var(&f.maxBytes, "max-bytes", source.DefaultMaxBytes, "Maximum file size in bytes")
	flags.IntVar(&f.width, "width", render.DefaultWidth, "Word wrap width for --format term")
	flags.BoolVar(&f.verbose, "verbose", false, "Print processing steps to stderr")
	f.profile.register(cmd)

	return cmd
}

func runAnalyze(ctx context.Context, paths []string, f *analyzeFlags, stdout io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := newCLILogger(f.verbose)

	switch f.format {
	case "json", "md", "term":
	default:
		return exitError(3, "unknown format: %s", f.format)
	}

	// 1. Load profile
	prof, err := f.profile.load()
	if err != nil {
		return err
	}
	logger.Debugf("Using profile: %s", prof.Name)

	// 2. Analyze
	logger.Debugf("Analyzing %d file(s)", len(paths))
	eng := engine.New(prof)
	results, err := eng.AnalyzePaths(ctx, paths, f.maxBytes)
	if err != nil {
		if source.IsInputError(err) || errors.Is(err, engine.ErrUnsupportedLanguage) {
			return exitError(3, "failed to analyze: %v", err)
		}
		return fmt.Errorf("failed to analyze: %w", err)
	}

	// 3. Validate
	for _, r := range results {
		if errs := schema.Validate(r, prof); len(errs) > 0 {
			for _, e := range errs {
				logger.Errorf("%s: %s", r.FileName, e)
			}
			return exitError(5, "analysis result for %s failed schema validation", r.FileName)
		}
		logger.Debugf("%s: score %d", r.FileName, r.OverallScore)
	}

	// 4. Output
	output, err := formatResults(results, f, prof)
	if err != nil {
		return err
	}
	if f.out != "" {
		logger.Debugf("Writing output to %s", f.out)
		if err := os.WriteFile(f.out, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		fmt.Fprint(stdout, output)
	}

	// 5. Exit code based on --fail-under
	if f.failUnder > 0 {
		for _, r := range results {
			if r.OverallScore < f.failUnder {
				return exitError(2, "%s scored %d, below %d", r.FileName, r.OverallScore, f.failUnder)
			}
		}
	}
	return nil
}

func formatResults(results []*analysis.Result, f *analyzeFlags, prof *profile.Profile) (string, error) {
	switch f.format {
	case "md":
		return render.MarkdownAll(results, prof), nil
	case "term":
		return render.Terminal(render.MarkdownAll(results, prof), f.width), nil
	}

	var v any = results
	if len(results) == 1 {
		v = results[0]
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal output: %w", err)
	}
	return string(data) + "\n", nil
}

// newCLILogger logs to stderr; --verbose raises the level to debug.
func newCLILogger(verbose bool) *log.Logger {
	logger := log.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(log.WarnLevel)
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
