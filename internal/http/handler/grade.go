package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"psdgrader/internal/archive"
	"psdgrader/internal/export"
	"psdgrader/internal/model"
	"psdgrader/internal/pattern"
	"psdgrader/internal/psd"
	"psdgrader/internal/service"
)

// gradeResponse is a graded batch. Archived is true when the report was persisted and can
// be fetched again from /batches/{id}.
type gradeResponse struct {
	*model.BatchReport
	Archived bool `json:"archived"`
}

// GradeBatch grades the uploaded documents. Criteria come from the "criteria" JSON field or a
// named "preset"; neither yields the defaults. batches may be nil.
//
// @Summary Grade a batch of documents
// @Tags grading
// @Accept multipart/form-data
// @Produce json,text/csv
// @Param files formData file true "PSD documents or ZIP archives"
// @Param criteria formData string false "Criteria JSON"
// @Param preset formData string false "Preset name"
// @Param format query string false "json or csv"
// @Success 200 {object} gradeResponse
// @Failure 400 {object} errorPayload
// @Router /grade [post]
func GradeBatch(grader service.GraderService, batches service.BatchService, presets map[string]model.Criteria) fiber.Handler {
	return func(c *fiber.Ctx) error {
		form, err := c.MultipartForm()
		if err != nil || len(form.File["files"]) == 0 {
			return writeError(c, fiber.StatusBadRequest, "FILES_REQUIRED", "at least one file is required")
		}

		criteria, code, msg := criteriaFromForm(form, presets)
		if code != "" {
			return writeError(c, fiber.StatusBadRequest, code, msg)
		}

		uploads := make([]model.Upload, 0, len(form.File["files"]))
		for _, fh := range form.File["files"] {
			u, err := readUpload(fh)
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
			}
			uploads = append(uploads, u)
		}

		report, err := grader.GradeBatch(c.UserContext(), uploads, criteria)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		res := gradeResponse{BatchReport: report}
		if batches != nil {
			if _, err := batches.Save(c.UserContext(), report); err != nil {
				return writeError(c, fiber.StatusInternalServerError, "ARCHIVE_FAILED", "batch graded but could not be archived")
			}
			res.Archived = true
		}

		if c.Query("format") == "csv" {
			return sendCSV(c, report)
		}
		return c.JSON(res)
	}
}

func criteriaFromForm(form *multipart.Form, presets map[string]model.Criteria) (model.Criteria, string, string) {
	if raw := formValue(form, "criteria"); raw != "" {
		c := model.DefaultCriteria()
		if err := json.Unmarshal([]byte(raw), &c); err != nil {
			return c, "INVALID_CRITERIA", "criteria must be valid JSON"
		}
		if err := pattern.ValidateCriteria(c.Filename); err != nil {
			return c, "INVALID_CRITERIA", err.Error()
		}
		return c, "", ""
	}
	if name := formValue(form, "preset"); name != "" {
		c, ok := presets[name]
		if !ok {
			return c, "UNKNOWN_PRESET", fmt.Sprintf("unknown preset %q", name)
		}
		return c, "", ""
	}
	return model.DefaultCriteria(), "", ""
}

func formValue(form *multipart.Form, key string) string {
	if v := form.Value[key]; len(v) > 0 {
		return v[0]
	}
	return ""
}

func readUpload(fh *multipart.FileHeader) (model.Upload, error) {
	f, err := fh.Open()
	if err != nil {
		return model.Upload{}, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return model.Upload{}, err
	}
	return model.Upload{Filename: fh.Filename, Data: data}, nil
}

func sendCSV(c *fiber.Ctx, report *model.BatchReport) error {
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="grades-%s.csv"`, report.ID))
	if err := export.WriteCSV(c.Response().BodyWriter(), report.Results); err != nil {
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
	return nil
}

// AnalyzeDocument returns the analysis of a single upload, or of every document inside an
// archive.
//
// @Summary Analyze a document
// @Tags grading
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PSD document or ZIP archive"
// @Success 200 {object} map[string][]service.AnalyzedFile
// @Failure 400 {object} errorPayload
// @Failure 415 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Router /analyze [post]
func AnalyzeDocument(grader service.GraderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}
		u, err := readUpload(fh)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}

		files, err := grader.Analyze(c.UserContext(), u)
		if err != nil {
			var pe *psd.ParseError
			switch {
			case errors.Is(err, service.ErrUnsupportedUpload):
				return writeError(c, fiber.StatusUnsupportedMediaType, "UNSUPPORTED_FILE", err.Error())
			case errors.As(err, &pe), errors.Is(err, archive.ErrArchive):
				return writeError(c, fiber.StatusUnprocessableEntity, "UNREADABLE_FILE", err.Error())
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"files": files})
	}
}
