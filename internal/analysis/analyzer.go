package analysis

import (
	"context"

	"psdgrader/internal/model"
	"psdgrader/internal/psd"
)

// Parser produces a parsed layer tree from raw bytes.
type Parser interface {
	Parse(ctx context.Context, doc model.RawDocument) (*psd.ParsedDocument, error)
}

// Analyzer runs parsing and feature extraction for one document.
type Analyzer struct {
	parser Parser
}

// NewAnalyzer constructs an Analyzer.
func NewAnalyzer(p Parser) *Analyzer {
	return &Analyzer{parser: p}
}

// Analyze parses doc in isolation. The error is a *psd.ParseError when nothing could be read.
func (a *Analyzer) Analyze(ctx context.Context, doc model.RawDocument) (*model.AnalysisResult, error) {
	parsed, err := a.parser.Parse(ctx, doc)
	if err != nil {
		return nil, err
	}
	return Extract(parsed, doc.Size()), nil
}
