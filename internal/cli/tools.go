package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"psdgrader/internal/model"
	"psdgrader/internal/pattern"
	"psdgrader/internal/submission"
)

func newInspectCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "Print the analysis of a document, or of every document in an archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			g, err := e.pipeline(cmd, e.cfg.Grader.Workers)
			if err != nil {
				return err
			}
			files, err := g.Analyze(cmd.Context(), model.Upload{Filename: filepath.Base(args[0]), Data: data})
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), files)
		},
	}
}

type decodedName struct {
	Filename   string                `json:"filename"`
	Recognized bool                  `json:"recognized"`
	Info       *model.SubmissionInfo `json:"info,omitempty"`
}

func newDecodeNameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "decode-name NAME...",
		Short: "Recover student and submission details from LMS export filenames",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := make([]decodedName, 0, len(args))
			for _, name := range args {
				d := decodedName{Filename: name}
				if info, ok := submission.Decode(name); ok {
					d.Recognized = true
					d.Info = &info
				}
				out = append(out, d)
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
}

type matchResult struct {
	Filename string            `json:"filename"`
	Matched  bool              `json:"matched"`
	Captures map[string]string `json:"captures,omitempty"`
}

func newMatchCommand(e *env) *cobra.Command {
	var (
		pat           string
		typ           string
		caseSensitive bool
	)
	cmd := &cobra.Command{
		Use:   "match NAME...",
		Short: "Test filenames against a filename pattern",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := pattern.NewMatcher(e.cfg.Grader.PatternCacheSize)
			if err != nil {
				return err
			}
			o := pattern.Options{Pattern: pat, Type: pattern.NormalizeType(model.PatternType(typ)), CaseSensitive: caseSensitive}
			if err := m.Validate(o); err != nil {
				return err
			}
			out := make([]matchResult, 0, len(args))
			for _, name := range args {
				caps, ok := m.Captures(name, o)
				out = append(out, matchResult{Filename: name, Matched: ok, Captures: caps})
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVarP(&pat, "pattern", "p", "", "pattern to match")
	cmd.Flags().StringVarP(&typ, "type", "t", string(model.PatternTemplate), "exact, contains, regex or template")
	cmd.Flags().BoolVar(&caseSensitive, "case-sensitive", false, "compare case-sensitively")
	_ = cmd.MarkFlagRequired("pattern")
	return cmd
}
