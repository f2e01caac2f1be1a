// Package analysis turns a parsed layer tree into the normalized AnalysisResult used for
// grading.
package analysis

import (
	"math"
	"strings"

	"psdgrader/internal/model"
	"psdgrader/internal/psd"
)

// Extract walks doc's tree. It never fails: absent optional data leaves fields unset.
func Extract(doc *psd.ParsedDocument, fileSize int64) *model.AnalysisResult {
	t := doc.Tree
	return &model.AnalysisResult{
		Dimensions:     model.Dimensions{Width: t.Width, Height: t.Height},
		ColorMode:      psd.ColorModeName(t.ColorMode),
		BitDepth:       t.Depth,
		Resolution:     t.Resolution,
		Layers:         layers(t.Nodes, 0),
		FileSize:       fileSize,
		ParseNote:      strings.Join(doc.Notes, "; "),
		IsLimitedParse: doc.Limited,
		Strategy:       doc.Strategy,
	}
}

// layers converts top-first nodes into bottom-to-top layers.
func layers(nodes []*psd.Node, depth int) []model.Layer {
	out := make([]model.Layer, 0, len(nodes))
	for i := len(nodes) - 1; i >= 0; i-- {
		if nodes[i] == nil {
			continue
		}
		out = append(out, layer(nodes[i], depth))
	}
	return out
}

func layer(n *psd.Node, depth int) model.Layer {
	l := model.Layer{
		Kind:      classify(n),
		Name:      n.Name,
		Visible:   !n.Hidden,
		Opacity:   int(math.Round(float64(n.Opacity) * 100 / 255)),
		BlendMode: n.BlendMode,
		Depth:     depth,
	}
	switch l.Kind {
	case model.LayerText:
		l.Text = textInfo(n.Text)
	case model.LayerAdjustment:
		l.AdjustmentType = n.Adjustment
	case model.LayerGroup:
		l.Children = layers(n.Children, depth+1)
	}
	return l
}

// classify picks exactly one kind, by priority.
func classify(n *psd.Node) model.LayerKind {
	switch {
	case n.Text != nil:
		return model.LayerText
	case n.Adjustment != "":
		return model.LayerAdjustment
	case n.SmartObject:
		return model.LayerSmartObject
	case n.VectorMask:
		return model.LayerVector
	case n.Group || len(n.Children) > 0:
		return model.LayerGroup
	default:
		return model.LayerRaster
	}
}

func textInfo(td *psd.TextData) *model.TextInfo {
	info := &model.TextInfo{Content: td.Text}
	if style, ok := resolveFont(td); ok {
		info.Font = style.Font
		info.FontSize = style.FontSize
	}
	return info
}
