package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"psdgrader/internal/archive"
	"psdgrader/internal/metrics"
	"psdgrader/internal/model"
	"psdgrader/internal/scoring"
)

var (
	ErrNoUploads         = errors.New("no files uploaded")
	ErrUnsupportedUpload = errors.New("unsupported file type")
)

var tracer = otel.Tracer("psdgrader/internal/service")

// DocumentAnalyzer parses and extracts one document.
type DocumentAnalyzer interface {
	Analyze(ctx context.Context, doc model.RawDocument) (*model.AnalysisResult, error)
}

// ArchiveExpander analyzes every document entry of a container.
type ArchiveExpander interface {
	Expand(ctx context.Context, data []byte) ([]archive.Item, error)
}

// Scorer turns an analysis into a graded result.
type Scorer interface {
	Score(filename string, a *model.AnalysisResult, c model.Criteria) model.GradingResult
	Failed(filename string, c model.Criteria, err error) model.GradingResult
}

// AnalyzedFile is the analysis of one document, or the reason it has none.
type AnalyzedFile struct {
	Filename string                `json:"filename"`
	Analysis *model.AnalysisResult `json:"analysis,omitempty"`
	Error    string                `json:"error,omitempty"`
}

// GraderService grades uploads against criteria.
type GraderService interface {
	// GradeBatch grades every upload and returns one result per document, in upload order
	// with archive entries in place of their archive. Per-document failures become results
	// with Error set; only a cancelled context fails the batch.
	GradeBatch(ctx context.Context, uploads []model.Upload, c model.Criteria) (*model.BatchReport, error)

	// Analyze returns the analysis of a document, or of every document in a container.
	Analyze(ctx context.Context, u model.Upload) ([]AnalyzedFile, error)
}

// GraderOptions tune a grader. Zero values select defaults.
type GraderOptions struct {
	Workers       int
	PassThreshold int
	Logger        *slog.Logger
	Metrics       *metrics.Grading
}

type graderService struct {
	analyzer  DocumentAnalyzer
	expander  ArchiveExpander
	scorer    Scorer
	workers   int
	threshold int
	log       *slog.Logger
	metrics   *metrics.Grading
	now       func() time.Time
}

// NewGraderService constructs a GraderService.
func NewGraderService(a DocumentAnalyzer, x ArchiveExpander, s Scorer, opt GraderOptions) GraderService {
	g := &graderService{
		analyzer:  a,
		expander:  x,
		scorer:    s,
		workers:   opt.Workers,
		threshold: opt.PassThreshold,
		log:       opt.Logger,
		metrics:   opt.Metrics,
		now:       time.Now,
	}
	if g.workers <= 0 {
		g.workers = 1
	}
	if g.threshold <= 0 {
		g.threshold = scoring.DefaultPassThreshold
	}
	if g.log == nil {
		g.log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	g.log = g.log.With("component", "grader")
	return g
}

func (g *graderService) GradeBatch(ctx context.Context, uploads []model.Upload, c model.Criteria) (*model.BatchReport, error) {
	if len(uploads) == 0 {
		return nil, ErrNoUploads
	}
	start := g.now()
	id := uuid.NewString()

	ctx, span := tracer.Start(ctx, "grade_batch")
	defer span.End()
	span.SetAttributes(attribute.String("batch.id", id), attribute.Int("batch.uploads", len(uploads)))

	slots := make([][]model.GradingResult, len(uploads))
	var eg errgroup.Group
	eg.SetLimit(g.workers)
	for i, u := range uploads {
		eg.Go(func() error {
			slots[i] = g.gradeUpload(ctx, u, c)
			return nil
		})
	}
	_ = eg.Wait()

	if err := ctx.Err(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	results := make([]model.GradingResult, 0, len(uploads))
	for _, s := range slots {
		results = append(results, s...)
	}
	report := &model.BatchReport{
		ID:        id,
		CreatedAt: start.UTC(),
		Criteria:  c,
		Results:   results,
		Summary:   scoring.Summarize(results, g.threshold),
	}

	elapsed := g.now().Sub(start)
	g.metrics.ObserveBatch(elapsed)
	span.SetAttributes(attribute.Int("batch.documents", len(results)))
	g.log.Info("batch_graded",
		"batch_id", id,
		"uploads", len(uploads),
		"documents", report.Summary.TotalFiles,
		"passed", report.Summary.PassedCount,
		"average_score", report.Summary.AverageScore,
		"duration_ms", elapsed.Milliseconds(),
	)
	return report, nil
}

// gradeUpload never fails: every problem is recorded on a result.
func (g *graderService) gradeUpload(ctx context.Context, u model.Upload, c model.Criteria) (out []model.GradingResult) {
	defer func() {
		if r := recover(); r != nil {
			out = []model.GradingResult{g.failed(u.Filename, c, fmt.Errorf("internal error: %v", r))}
		}
	}()

	switch {
	case archive.IsContainer(u.Filename):
		items, err := g.expander.Expand(ctx, u.Data)
		if err != nil {
			return []model.GradingResult{g.failed(u.Filename, c, err)}
		}
		out = make([]model.GradingResult, 0, len(items))
		for _, it := range items {
			if it.Err != nil {
				out = append(out, g.failed(it.Filename, c, it.Err))
				continue
			}
			out = append(out, g.score(it.Filename, it.Analysis, c))
		}
		return out
	case archive.IsDocument(u.Filename):
		return []model.GradingResult{g.gradeDocument(ctx, u, c)}
	default:
		return []model.GradingResult{g.failed(u.Filename, c, unsupported(u.Filename))}
	}
}

func (g *graderService) gradeDocument(ctx context.Context, u model.Upload, c model.Criteria) model.GradingResult {
	ctx, span := tracer.Start(ctx, "grade_document", trace.WithAttributes(
		attribute.String("document.filename", u.Filename),
		attribute.Int("document.size", len(u.Data)),
	))
	defer span.End()

	a, err := g.analyzer.Analyze(ctx, model.RawDocument{Filename: u.Filename, Data: u.Data})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "analysis failed")
		return g.failed(u.Filename, c, err)
	}
	span.SetAttributes(attribute.String("document.strategy", a.Strategy), attribute.Bool("document.limited", a.IsLimitedParse))
	return g.score(u.Filename, a, c)
}

func (g *graderService) score(filename string, a *model.AnalysisResult, c model.Criteria) model.GradingResult {
	res := g.scorer.Score(filename, a, c)
	g.metrics.ObserveResult(res)
	g.log.Debug("document_graded",
		"filename", filename,
		"strategy", a.Strategy,
		"limited", a.IsLimitedParse,
		"percentage", res.Percentage,
	)
	return res
}

func (g *graderService) failed(filename string, c model.Criteria, err error) model.GradingResult {
	res := g.scorer.Failed(filename, c, err)
	g.metrics.ObserveResult(res)
	g.log.Warn("document_failed", "filename", filename, "error", err)
	return res
}

func (g *graderService) Analyze(ctx context.Context, u model.Upload) ([]AnalyzedFile, error) {
	switch {
	case archive.IsContainer(u.Filename):
		items, err := g.expander.Expand(ctx, u.Data)
		if err != nil {
			return nil, err
		}
		out := make([]AnalyzedFile, 0, len(items))
		for _, it := range items {
			f := AnalyzedFile{Filename: it.Name, Analysis: it.Analysis}
			if it.Err != nil {
				f.Error = it.Err.Error()
			}
			out = append(out, f)
		}
		return out, nil
	case archive.IsDocument(u.Filename):
		a, err := g.analyzer.Analyze(ctx, model.RawDocument{Filename: u.Filename, Data: u.Data})
		if err != nil {
			return nil, err
		}
		return []AnalyzedFile{{Filename: u.Filename, Analysis: a}}, nil
	}
	return nil, unsupported(u.Filename)
}

func unsupported(filename string) error {
	ext := strings.ToLower(path.Ext(filename))
	if ext == "" {
		ext = "(none)"
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedUpload, ext)
}
