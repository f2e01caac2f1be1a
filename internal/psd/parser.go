package psd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"psdgrader/internal/model"
)

// ErrDecodeLadderExhausted reports that every full-decode strategy failed.
var ErrDecodeLadderExhausted = errors.New("psd: all decode strategies failed")

// StrategyHeader names the header-only fallback.
const StrategyHeader = "header"

// BackgroundLayerName is the name of the layer synthesized when no layer data is available.
const BackgroundLayerName = "Background"

// DefaultAttemptTimeout bounds a single ladder rung.
const DefaultAttemptTimeout = 10 * time.Second

// Strategy is one rung of the decode ladder. Limited rungs do not yield layer detail.
type Strategy struct {
	Name    string
	Options DecodeOptions
	Limited bool
}

// DefaultLadder retains progressively less auxiliary data.
var DefaultLadder = []Strategy{
	{Name: "full", Options: DecodeOptions{RetainComposite: true, RetainThumbnail: true}},
	{Name: "metadata", Options: DecodeOptions{}},
	{Name: "resources", Options: DecodeOptions{SkipLayers: true}, Limited: true},
}

// ParsedDocument is the outcome of the ladder.
type ParsedDocument struct {
	Tree     *Tree
	Strategy string
	Notes    []string
	Limited  bool
}

// ParseError is returned when neither the ladder nor the header reader could make sense of a
// document. Notes lists every failed attempt in order.
type ParseError struct {
	Notes []string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unable to parse document: %v (%s)", e.Err, strings.Join(e.Notes, "; "))
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parser runs the decode ladder against a Decoder, falling back to the header reader.
// It is safe for concurrent use.
type Parser struct {
	decoder Decoder
	ladder  []Strategy
	timeout time.Duration
}

// Option configures a Parser.
type Option func(*Parser)

// WithTimeout bounds each ladder rung.
func WithTimeout(d time.Duration) Option {
	return func(p *Parser) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// WithLadder replaces the default ladder.
func WithLadder(ladder []Strategy) Option {
	return func(p *Parser) {
		p.ladder = ladder
	}
}

// NewParser constructs a Parser around dec.
func NewParser(dec Decoder, opts ...Option) *Parser {
	p := &Parser{decoder: dec, ladder: DefaultLadder, timeout: DefaultAttemptTimeout}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Parse tries each rung once, in order, and returns the first success. When every rung fails
// the header is read directly and a single background layer is synthesized.
func (p *Parser) Parse(ctx context.Context, doc model.RawDocument) (*ParsedDocument, error) {
	var notes []string
	for _, s := range p.ladder {
		if err := ctx.Err(); err != nil {
			notes = append(notes, fmt.Sprintf("%s: %v", s.Name, err))
			break
		}
		tree, err := p.attempt(ctx, s, doc.Data)
		if err != nil {
			notes = append(notes, fmt.Sprintf("%s: %v", s.Name, err))
			continue
		}
		if tree.Resolution <= 0 {
			tree.Resolution = resolutionOrDefault(doc.Data)
		}
		if len(tree.Nodes) == 0 {
			tree.Nodes = []*Node{backgroundNode()}
		}
		return &ParsedDocument{Tree: tree, Strategy: s.Name, Notes: notes, Limited: s.Limited}, nil
	}

	info, err := ReadHeader(doc.Data)
	if err != nil {
		notes = append(notes, fmt.Sprintf("%s: %v", StrategyHeader, err))
		return nil, &ParseError{Notes: notes, Err: errors.Join(ErrDecodeLadderExhausted, err)}
	}
	notes = append(notes, ErrDecodeLadderExhausted.Error()+"; using header only")
	return &ParsedDocument{
		Tree: &Tree{
			Width:      info.Width,
			Height:     info.Height,
			Depth:      info.BitDepth,
			ColorMode:  info.ColorModeCode,
			Version:    info.Version,
			Resolution: resolutionOrDefault(doc.Data),
			Nodes:      []*Node{backgroundNode()},
		},
		Strategy: StrategyHeader,
		Notes:    notes,
		Limited:  true,
	}, nil
}

// attempt runs one rung with a deadline. A rung that panics or overruns counts as failed;
// an overrunning decoder is abandoned, not interrupted.
func (p *Parser) attempt(ctx context.Context, s Strategy, data []byte) (*Tree, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	type outcome struct {
		tree *Tree
		err  error
	}
	ch := make(chan outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- outcome{err: fmt.Errorf("decoder panic: %v", r)}
			}
		}()
		t, err := p.decoder.Decode(data, s.Options)
		ch <- outcome{tree: t, err: err}
	}()

	select {
	case o := <-ch:
		if o.err == nil && o.tree == nil {
			o.err = errors.New("decoder returned no document")
		}
		return o.tree, o.err
	case <-ctx.Done():
		return nil, fmt.Errorf("attempt abandoned: %w", ctx.Err())
	}
}

func resolutionOrDefault(data []byte) float64 {
	if dpi, ok := ReadResolution(data); ok {
		return dpi
	}
	return DefaultResolution
}

func backgroundNode() *Node {
	return &Node{Name: BackgroundLayerName, Opacity: 255, BlendMode: "norm"}
}
