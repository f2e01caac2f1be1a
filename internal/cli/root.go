// Package cli implements the psdgrade command line tool.
package cli

import (
	"encoding/json"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"psdgrader/internal/analysis"
	"psdgrader/internal/archive"
	"psdgrader/internal/config"
	"psdgrader/internal/pattern"
	"psdgrader/internal/psd"
	"psdgrader/internal/scoring"
	"psdgrader/internal/service"
)

// env is shared by every subcommand.
type env struct {
	cfg     *config.AppConfig
	decoder psd.Decoder
	verbose bool
}

func (e *env) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if e.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

func (e *env) pipeline(cmd *cobra.Command, workers int) (service.GraderService, error) {
	m, err := pattern.NewMatcher(e.cfg.Grader.PatternCacheSize)
	if err != nil {
		return nil, err
	}
	an := analysis.NewAnalyzer(psd.NewParser(e.decoder, psd.WithTimeout(e.cfg.Grader.DecodeTimeout())))
	x := archive.NewExpander(archive.ZipReader{}, an, e.cfg.Grader.MaxEntryBytes(), archive.WithWorkers(workers))
	return service.NewGraderService(an, x, scoring.NewEngine(m), service.GraderOptions{
		Workers:       workers,
		PassThreshold: e.cfg.Grader.PassThreshold,
		Logger:        e.logger(cmd.ErrOrStderr()),
	}), nil
}

// NewRootCommand builds the psdgrade command tree around cfg.
func NewRootCommand(cfg *config.AppConfig) *cobra.Command {
	return newRootCommand(&env{cfg: cfg, decoder: psd.OOVDecoder{}})
}

func newRootCommand(e *env) *cobra.Command {
	root := &cobra.Command{
		Use:           "psdgrade",
		Short:         "Grade Photoshop documents against instructor criteria",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&e.verbose, "verbose", "v", false, "log per-document progress to stderr")

	root.AddCommand(
		newGradeCommand(e),
		newInspectCommand(e),
		newDecodeNameCommand(),
		newMatchCommand(e),
	)
	return root
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
