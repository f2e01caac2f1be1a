package handler

import (
	"sort"

	"github.com/gofiber/fiber/v2"

	"psdgrader/internal/model"
	"psdgrader/internal/pattern"
	"psdgrader/internal/submission"
)

// PatternMatcher is the subset of *pattern.Matcher used by the preview endpoint.
type PatternMatcher interface {
	Validate(o pattern.Options) error
	Captures(name string, o pattern.Options) (map[string]string, bool)
}

type previewRequest struct {
	Pattern       string            `json:"pattern"`
	PatternType   model.PatternType `json:"patternType"`
	CaseSensitive bool              `json:"caseSensitive"`
	Filenames     []string          `json:"filenames"`
}

type previewResult struct {
	Filename string            `json:"filename"`
	Matched  bool              `json:"matched"`
	Captures map[string]string `json:"captures"`
}

type previewResponse struct {
	Regex   string          `json:"regex,omitempty"`
	Results []previewResult `json:"results"`
}

// PreviewPattern evaluates a filename pattern against sample names.
//
// @Summary Preview a filename pattern
// @Tags tools
// @Accept json
// @Produce json
// @Param request body previewRequest true "Pattern and sample filenames"
// @Success 200 {object} previewResponse
// @Failure 400 {object} errorPayload
// @Router /patterns/preview [post]
func PreviewPattern(m PatternMatcher) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req previewRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be JSON")
		}
		o := pattern.Options{Pattern: req.Pattern, Type: pattern.NormalizeType(req.PatternType), CaseSensitive: req.CaseSensitive}
		if err := m.Validate(o); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_PATTERN", err.Error())
		}

		res := previewResponse{Results: make([]previewResult, 0, len(req.Filenames))}
		if o.Type == model.PatternTemplate {
			res.Regex = pattern.Compile(o.Pattern, false)
		}
		for _, name := range req.Filenames {
			caps, ok := m.Captures(name, o)
			res.Results = append(res.Results, previewResult{Filename: name, Matched: ok, Captures: caps})
		}
		return c.JSON(res)
	}
}

type decodeRequest struct {
	Filenames []string `json:"filenames"`
}

type decodedName struct {
	Filename   string                `json:"filename"`
	Recognized bool                  `json:"recognized"`
	Info       *model.SubmissionInfo `json:"info,omitempty"`
}

// DecodeSubmissions parses LMS export filenames.
//
// @Summary Decode submission filenames
// @Tags tools
// @Accept json
// @Produce json
// @Param request body decodeRequest true "Filenames"
// @Success 200 {object} map[string][]decodedName
// @Failure 400 {object} errorPayload
// @Router /submissions/decode [post]
func DecodeSubmissions() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req decodeRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be JSON")
		}
		out := make([]decodedName, 0, len(req.Filenames))
		for _, name := range req.Filenames {
			d := decodedName{Filename: name}
			if info, ok := submission.Decode(name); ok {
				d.Recognized = true
				d.Info = &info
			}
			out = append(out, d)
		}
		return c.JSON(fiber.Map{"data": out})
	}
}

type presetEntry struct {
	Name     string         `json:"name"`
	Criteria model.Criteria `json:"criteria"`
}

// ListPresets returns the configured criteria presets sorted by name.
//
// @Summary List criteria presets
// @Tags criteria
// @Produce json
// @Success 200 {object} map[string][]presetEntry
// @Router /criteria/presets [get]
func ListPresets(presets map[string]model.Criteria) fiber.Handler {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]presetEntry, 0, len(names))
	for _, name := range names {
		out = append(out, presetEntry{Name: name, Criteria: presets[name]})
	}
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"data": out})
	}
}

// DefaultCriteria returns the criteria applied when a request names none.
//
// @Summary Default criteria
// @Tags criteria
// @Produce json
// @Success 200 {object} model.Criteria
// @Router /criteria/default [get]
func DefaultCriteria() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(model.DefaultCriteria())
	}
}
