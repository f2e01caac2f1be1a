// Package scoring evaluates analyzed documents against instructor criteria and folds the
// results of a batch into summary statistics.
package scoring

import (
	"math"
	"path"

	"psdgrader/internal/model"
	"psdgrader/internal/pattern"
	"psdgrader/internal/submission"
)

// FilenameMatcher is the part of the pattern matcher the engine depends on.
type FilenameMatcher interface {
	Match(name string, o pattern.Options) bool
}

// Engine scores documents. It holds no per-document state and is safe for concurrent use.
type Engine struct {
	matcher FilenameMatcher
}

// NewEngine constructs an Engine.
func NewEngine(m FilenameMatcher) *Engine {
	return &Engine{matcher: m}
}

// Score evaluates every enabled and configured rule, in rule order. Rules that are disabled
// or unconfigured contribute to neither score nor maxScore.
func (e *Engine) Score(filename string, a *model.AnalysisResult, c model.Criteria) model.GradingResult {
	res := model.GradingResult{Filename: filename, Analysis: a, Checks: []model.CriterionCheck{}}
	in := input{name: filename, uploaded: filename, analysis: a, criteria: c, matcher: e.matcher}
	if info, ok := submission.Decode(filename); ok {
		res.Submission = &info
		if info.OriginalFilename != "" {
			in.name = info.OriginalFilename + path.Ext(filename)
		}
	}

	for _, r := range rules {
		if !r.applies(c) {
			continue
		}
		possible := r.points(c)
		check := r.check(in, possible)
		check.RuleName = r.name
		check.PointsPossible = possible
		res.Checks = append(res.Checks, check)
		res.Score += check.PointsAwarded
		res.MaxScore += possible
	}
	res.Percentage = Percentage(res.Score, res.MaxScore)
	return res
}

// Failed returns the result recorded for a document that could not be analyzed: score 0,
// the maxScore the criteria would have offered, and the error message.
func (e *Engine) Failed(filename string, c model.Criteria, err error) model.GradingResult {
	res := model.GradingResult{
		Filename: filename,
		MaxScore: MaxScore(c),
		Checks:   []model.CriterionCheck{},
		Error:    err.Error(),
	}
	if info, ok := submission.Decode(filename); ok {
		res.Submission = &info
	}
	return res
}

// MaxScore is the sum of possible points over the enabled and configured rules.
func MaxScore(c model.Criteria) float64 {
	var total float64
	for _, r := range rules {
		if r.applies(c) {
			total += r.points(c)
		}
	}
	return total
}

// Percentage is round(100 * score / maxScore), or 0 when maxScore is 0.
func Percentage(score, maxScore float64) int {
	if maxScore <= 0 {
		return 0
	}
	return int(math.Round(100 * score / maxScore))
}
