package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"psdgrader/internal/config"
	"psdgrader/internal/export"
	"psdgrader/internal/model"
)

type gradeFlags struct {
	criteria string
	preset   string
	presets  string
	format   string
	workers  int
}

func newGradeCommand(e *env) *cobra.Command {
	f := gradeFlags{}
	cmd := &cobra.Command{
		Use:   "grade FILE...",
		Short: "Grade documents and archives, printing a JSON report or CSV",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.format != "json" && f.format != "csv" {
				return fmt.Errorf("unknown format %q (want json or csv)", f.format)
			}
			c, err := f.resolveCriteria()
			if err != nil {
				return err
			}

			uploads := make([]model.Upload, 0, len(args))
			for _, p := range args {
				data, err := os.ReadFile(p)
				if err != nil {
					return err
				}
				uploads = append(uploads, model.Upload{Filename: filepath.Base(p), Data: data})
			}

			g, err := e.pipeline(cmd, f.workers)
			if err != nil {
				return err
			}
			report, err := g.GradeBatch(cmd.Context(), uploads, c)
			if err != nil {
				return err
			}
			if f.format == "csv" {
				return export.WriteCSV(cmd.OutOrStdout(), report.Results)
			}
			return writeJSON(cmd.OutOrStdout(), report)
		},
	}
	cmd.Flags().StringVar(&f.criteria, "criteria", "", "criteria file (YAML or JSON)")
	cmd.Flags().StringVar(&f.preset, "preset", "", "named criteria preset")
	cmd.Flags().StringVar(&f.presets, "presets", e.cfg.Grader.PresetsPath, "presets file")
	cmd.Flags().StringVar(&f.format, "format", "json", "output format: json or csv")
	cmd.Flags().IntVar(&f.workers, "workers", e.cfg.Grader.Workers, "documents graded concurrently")
	cmd.MarkFlagsMutuallyExclusive("criteria", "preset")
	return cmd
}

func (f gradeFlags) resolveCriteria() (model.Criteria, error) {
	switch {
	case f.criteria != "":
		return config.LoadCriteria(f.criteria)
	case f.preset != "":
		presets, err := config.LoadPresets(f.presets)
		if err != nil {
			return model.Criteria{}, err
		}
		c, ok := presets[f.preset]
		if !ok {
			return model.Criteria{}, fmt.Errorf("%w: %q", config.ErrPresetNotFound, f.preset)
		}
		return c, nil
	}
	return model.DefaultCriteria(), nil
}
