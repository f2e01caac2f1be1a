package handler

import (
	"github.com/gofiber/fiber/v2"

	"psdgrader/internal/model"
	"psdgrader/internal/service"
)

// Dependencies are the collaborators of the HTTP routes. DB and Batches are nil when the
// archive is not configured; the batch routes are then not registered.
type Dependencies struct {
	DB      Pinger
	Grader  service.GraderService
	Batches service.BatchService
	Matcher PatternMatcher
	Presets map[string]model.Criteria
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, d Dependencies) {
	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", LivenessProbe())

	app.Post("/grade", GradeBatch(d.Grader, d.Batches, d.Presets))
	app.Post("/analyze", AnalyzeDocument(d.Grader))
	app.Post("/patterns/preview", PreviewPattern(d.Matcher))
	app.Post("/submissions/decode", DecodeSubmissions())
	app.Get("/criteria/presets", ListPresets(d.Presets))
	app.Get("/criteria/default", DefaultCriteria())

	if d.Batches == nil {
		return
	}
	app.Get("/batches", ListBatches(d.Batches))
	app.Get("/batches/:id", GetBatch(d.Batches))
	app.Get("/batches/:id/export.csv", ExportBatchCSV(d.Batches))
	app.Delete("/batches/:id", DeleteBatch(d.Batches))
}
