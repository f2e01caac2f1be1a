// Package export renders batch reports for download.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"psdgrader/internal/model"
)

var baseHeader = []string{
	"Filename", "Student", "User ID", "Late", "Score", "Max Score", "Percentage",
	"Width", "Height", "Color Mode", "Resolution", "Layers", "Fonts", "Error",
}

// WriteCSV writes one row per result. Every rule evaluated for at least one result gets a
// column, in first-seen order, holding PASS or FAIL with the points awarded.
func WriteCSV(w io.Writer, results []model.GradingResult) error {
	rules := ruleColumns(results)
	cw := csv.NewWriter(w)
	if err := cw.Write(append(append([]string{}, baseHeader...), rules...)); err != nil {
		return err
	}
	for _, r := range results {
		if err := cw.Write(row(r, rules)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func ruleColumns(results []model.GradingResult) []string {
	seen := make(map[string]bool)
	var cols []string
	for _, r := range results {
		for _, c := range r.Checks {
			if !seen[c.RuleName] {
				seen[c.RuleName] = true
				cols = append(cols, c.RuleName)
			}
		}
	}
	return cols
}

func row(r model.GradingResult, rules []string) []string {
	var student, userID, late string
	if s := r.Submission; s != nil {
		student = strings.TrimSpace(s.FirstNameGuess + " " + s.LastNameGuess)
		userID = s.UserID
		late = strconv.FormatBool(s.IsLate)
	}

	var width, height, mode, dpi, layers, fonts string
	if a := r.Analysis; a != nil {
		width = strconv.Itoa(a.Dimensions.Width)
		height = strconv.Itoa(a.Dimensions.Height)
		mode = a.ColorMode
		dpi = num(a.Resolution)
		layers = strconv.Itoa(a.LayerCount())
		fonts = strings.Join(a.Fonts(), "; ")
	}

	out := []string{
		r.Filename, student, userID, late,
		num(r.Score), num(r.MaxScore), strconv.Itoa(r.Percentage),
		width, height, mode, dpi, layers, fonts, r.Error,
	}
	byRule := make(map[string]model.CriterionCheck, len(r.Checks))
	for _, c := range r.Checks {
		byRule[c.RuleName] = c
	}
	for _, name := range rules {
		c, ok := byRule[name]
		if !ok {
			out = append(out, "")
			continue
		}
		status := "FAIL"
		if c.Passed {
			status = "PASS"
		}
		out = append(out, fmt.Sprintf("%s (%s/%s)", status, num(c.PointsAwarded), num(c.PointsPossible)))
	}
	return out
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
