package model

// LayerKind tags the variant carried by a Layer.
type LayerKind string

const (
	LayerText        LayerKind = "text"
	LayerAdjustment  LayerKind = "adjustment"
	LayerSmartObject LayerKind = "smartObject"
	LayerVector      LayerKind = "vector"
	LayerGroup       LayerKind = "group"
	LayerRaster      LayerKind = "raster"
)

// TextInfo holds the optional text-layer payload. Every field may be empty when the
// document does not carry the corresponding sub-structure.
type TextInfo struct {
	Font     string  `json:"font,omitempty"`
	FontSize float64 `json:"fontSize,omitempty"`
	Content  string  `json:"content,omitempty"`
}

// Layer is a normalized node of the document layer tree.
// Text is set only for LayerText, AdjustmentType only for LayerAdjustment and Children only
// for LayerGroup. A group exclusively owns its children.
type Layer struct {
	Kind           LayerKind `json:"kind"`
	Name           string    `json:"name"`
	Visible        bool      `json:"visible"`
	Opacity        int       `json:"opacity"`
	BlendMode      string    `json:"blendMode"`
	Depth          int       `json:"depth"`
	Text           *TextInfo `json:"text,omitempty"`
	AdjustmentType string    `json:"adjustmentType,omitempty"`
	Children       []Layer   `json:"children,omitempty"`
}

// Dimensions is the canvas size in pixels.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// AnalysisResult is the normalized, analysis-friendly view of a parsed document.
// Layers are listed bottom-to-top (the visual stacking order), recursively.
type AnalysisResult struct {
	Dimensions     Dimensions `json:"dimensions"`
	ColorMode      string     `json:"colorMode"`
	BitDepth       int        `json:"bitDepth"`
	Resolution     float64    `json:"resolution"`
	Layers         []Layer    `json:"layers"`
	FileSize       int64      `json:"fileSize"`
	ParseNote      string     `json:"parseNote,omitempty"`
	IsLimitedParse bool       `json:"isLimitedParse"`
	Strategy       string     `json:"strategy"`
}

// AllLayers returns every layer of the tree, groups included, in depth-first bottom-to-top order.
func (a *AnalysisResult) AllLayers() []Layer {
	var out []Layer
	var walk func(ls []Layer)
	walk = func(ls []Layer) {
		for _, l := range ls {
			out = append(out, l)
			if l.Kind == LayerGroup {
				walk(l.Children)
			}
		}
	}
	walk(a.Layers)
	return out
}

// LayerCount is the number of layers in the tree, groups included.
func (a *AnalysisResult) LayerCount() int {
	return len(a.AllLayers())
}

// Fonts returns the distinct fonts used by text layers, in first-seen order.
func (a *AnalysisResult) Fonts() []string {
	seen := make(map[string]struct{})
	var fonts []string
	for _, l := range a.AllLayers() {
		if l.Kind != LayerText || l.Text == nil || l.Text.Font == "" {
			continue
		}
		if _, ok := seen[l.Text.Font]; ok {
			continue
		}
		seen[l.Text.Font] = struct{}{}
		fonts = append(fonts, l.Text.Font)
	}
	return fonts
}
