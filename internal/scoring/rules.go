package scoring

import (
	"fmt"
	"strconv"
	"strings"

	"psdgrader/internal/model"
	"psdgrader/internal/pattern"
)

// Rule names, in evaluation order.
const (
	RuleFilename       = "filename"
	RuleWidth          = "width"
	RuleHeight         = "height"
	RuleColorMode      = "colorMode"
	RuleMinLayers      = "minLayers"
	RuleRequiredLayers = "requiredLayers"
	RuleResolution     = "resolution"
	RuleFonts          = "fonts"
)

// input is everything a rule may inspect for one document.
type input struct {
	name     string
	uploaded string
	analysis *model.AnalysisResult
	criteria model.Criteria
	matcher  FilenameMatcher
}

// rule is one scoring rule. applies reports whether it is enabled and configured; check
// fills Expected, Actual, Passed and PointsAwarded.
type rule struct {
	name    string
	applies func(c model.Criteria) bool
	points  func(c model.Criteria) float64
	check   func(in input, possible float64) model.CriterionCheck
}

var rules = []rule{
	{RuleFilename, filenameApplies, filenamePoints, checkFilename},
	{RuleWidth, func(c model.Criteria) bool { return c.Technical.Enabled && c.Technical.Width > 0 }, technicalPoints, checkWidth},
	{RuleHeight, func(c model.Criteria) bool { return c.Technical.Enabled && c.Technical.Height > 0 }, technicalPoints, checkHeight},
	{RuleColorMode, func(c model.Criteria) bool { return c.Technical.Enabled && c.Technical.ColorMode != "" }, technicalPoints, checkColorMode},
	{RuleMinLayers, func(c model.Criteria) bool { return c.Technical.Enabled && c.Technical.MinLayers > 0 }, technicalPoints, checkMinLayers},
	{RuleRequiredLayers, func(c model.Criteria) bool { return c.Technical.Enabled && len(requiredNames(c)) > 0 }, technicalPoints, checkRequiredLayers},
	{RuleResolution, func(c model.Criteria) bool { return c.Technical.Enabled && c.Technical.Resolution > 0 }, technicalPoints, checkResolution},
	{RuleFonts, fontsApplies, func(c model.Criteria) float64 { return c.Fonts.PointsPerCriterion }, checkFonts},
}

func filenameApplies(c model.Criteria) bool {
	return c.Filename.Enabled && strings.TrimSpace(c.Filename.Pattern) != ""
}

func filenamePoints(c model.Criteria) float64 { return c.Filename.Points }

func technicalPoints(c model.Criteria) float64 { return c.Technical.PointsPerCriterion }

func fontsApplies(c model.Criteria) bool {
	return c.Fonts.Enabled && (len(nonBlank(c.Fonts.ApprovedFonts)) > 0 || len(nonBlank(c.Fonts.RequiredFonts)) > 0)
}

func requiredNames(c model.Criteria) []string {
	return nonBlank(c.Technical.RequiredLayers)
}

func nonBlank(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func awarded(passed bool, possible float64) float64 {
	if passed {
		return possible
	}
	return 0
}

// checkFilename matches the student's original name first and the uploaded name second;
// either one satisfying the pattern passes.
func checkFilename(in input, possible float64) model.CriterionCheck {
	o := pattern.FromCriteria(in.criteria.Filename)
	name := in.name
	ok := in.matcher.Match(name, o)
	if !ok && in.uploaded != "" && in.uploaded != name && in.matcher.Match(in.uploaded, o) {
		name, ok = in.uploaded, true
	}
	return model.CriterionCheck{
		Expected:      fmt.Sprintf("%s pattern %q", o.Type, o.Pattern),
		Actual:        name,
		Passed:        ok,
		PointsAwarded: awarded(ok, possible),
	}
}

func checkWidth(in input, possible float64) model.CriterionCheck {
	return compareInt(in.criteria.Technical.Width, in.analysis.Dimensions.Width, possible, "px")
}

func checkHeight(in input, possible float64) model.CriterionCheck {
	return compareInt(in.criteria.Technical.Height, in.analysis.Dimensions.Height, possible, "px")
}

func compareInt(want, got int, possible float64, unit string) model.CriterionCheck {
	ok := want == got
	return model.CriterionCheck{
		Expected:      strconv.Itoa(want) + unit,
		Actual:        strconv.Itoa(got) + unit,
		Passed:        ok,
		PointsAwarded: awarded(ok, possible),
	}
}

func checkColorMode(in input, possible float64) model.CriterionCheck {
	want := in.criteria.Technical.ColorMode
	ok := want == in.analysis.ColorMode
	return model.CriterionCheck{
		Expected:      want,
		Actual:        in.analysis.ColorMode,
		Passed:        ok,
		PointsAwarded: awarded(ok, possible),
	}
}

func checkMinLayers(in input, possible float64) model.CriterionCheck {
	want, got := in.criteria.Technical.MinLayers, in.analysis.LayerCount()
	ok := got >= want
	return model.CriterionCheck{
		Expected:      fmt.Sprintf(">= %d layers", want),
		Actual:        fmt.Sprintf("%d layers", got),
		Passed:        ok,
		PointsAwarded: awarded(ok, possible),
	}
}

func checkRequiredLayers(in input, possible float64) model.CriterionCheck {
	required := requiredNames(in.criteria)
	var names []string
	for _, l := range in.analysis.AllLayers() {
		names = append(names, l.Name)
	}

	items := make([]model.CheckItem, 0, len(required))
	found := 0
	for _, req := range required {
		item := model.CheckItem{Name: req}
		if match, ok := findSubstring(names, req); ok {
			item.Found = true
			item.Match = match
			found++
		} else {
			item.Hint = nearest(req, names)
		}
		items = append(items, item)
	}

	ok := found == len(required)
	points := awarded(ok, possible)
	if in.criteria.Technical.RequiredLayersPartialCredit {
		points = possible * float64(found) / float64(len(required))
	}
	return model.CriterionCheck{
		Expected:      strings.Join(required, ", "),
		Actual:        fmt.Sprintf("%d of %d found", found, len(required)),
		Passed:        ok,
		PointsAwarded: points,
		Items:         items,
	}
}

func checkResolution(in input, possible float64) model.CriterionCheck {
	want, got := in.criteria.Technical.Resolution, in.analysis.Resolution
	ok := got >= want
	return model.CriterionCheck{
		Expected:      fmt.Sprintf(">= %s DPI", formatFloat(want)),
		Actual:        formatFloat(got) + " DPI",
		Passed:        ok,
		PointsAwarded: awarded(ok, possible),
	}
}

func checkFonts(in input, possible float64) model.CriterionCheck {
	approved := nonBlank(in.criteria.Fonts.ApprovedFonts)
	required := nonBlank(in.criteria.Fonts.RequiredFonts)
	used := in.analysis.Fonts()

	expected := describeFonts(approved, required)
	if len(used) == 0 {
		return model.CriterionCheck{
			Expected:      expected,
			Actual:        "no fonts",
			Passed:        true,
			PointsAwarded: possible,
		}
	}

	var (
		items      []model.CheckItem
		violations []string
	)
	for _, font := range used {
		item := model.CheckItem{Name: font, Found: true}
		if len(approved) > 0 {
			if match, ok := findContained(font, approved); ok {
				item.Match = match
			} else {
				item.Found = false
				item.Hint = nearest(font, approved)
				violations = append(violations, "font not approved: "+font)
			}
		}
		items = append(items, item)
	}
	for _, req := range required {
		if _, ok := findSubstring(used, req); !ok {
			violations = append(violations, "required font missing: "+req)
		}
	}

	ok := len(violations) == 0
	return model.CriterionCheck{
		Expected:      expected,
		Actual:        strings.Join(used, ", "),
		Passed:        ok,
		PointsAwarded: awarded(ok, possible),
		Items:         items,
		Violations:    violations,
	}
}

func describeFonts(approved, required []string) string {
	var parts []string
	if len(approved) > 0 {
		parts = append(parts, "approved: "+strings.Join(approved, ", "))
	}
	if len(required) > 0 {
		parts = append(parts, "required: "+strings.Join(required, ", "))
	}
	return strings.Join(parts, "; ")
}

// findSubstring returns the first candidate containing needle, case-insensitively.
func findSubstring(candidates []string, needle string) (string, bool) {
	n := strings.ToLower(needle)
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c), n) {
			return c, true
		}
	}
	return "", false
}

// findContained returns the first needle contained in s, case-insensitively.
func findContained(s string, needles []string) (string, bool) {
	ls := strings.ToLower(s)
	for _, n := range needles {
		if strings.Contains(ls, strings.ToLower(n)) {
			return n, true
		}
	}
	return "", false
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
