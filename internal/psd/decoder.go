package psd

// DecodeOptions selects how much auxiliary data a full decode retains.
type DecodeOptions struct {
	RetainComposite bool
	RetainThumbnail bool
	SkipLayers      bool
}

// Decoder is the full-decode capability. Decode either returns a document tree or fails;
// it may also panic on malformed input, which the Parser treats as a failure.
type Decoder interface {
	Decode(data []byte, opt DecodeOptions) (*Tree, error)
}

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc func(data []byte, opt DecodeOptions) (*Tree, error)

func (f DecoderFunc) Decode(data []byte, opt DecodeOptions) (*Tree, error) {
	return f(data, opt)
}

// Tree is a decoded document. Nodes are listed top-first, the order of the layers panel.
type Tree struct {
	Width      int
	Height     int
	Depth      int
	ColorMode  int
	Version    int
	Resolution float64
	Nodes      []*Node
	Composite  bool
	Thumbnail  []byte
}

// Node is one decoded layer with whatever capabilities the decoder found on it. Several
// capabilities may be present at once; classification picks one.
type Node struct {
	Name        string
	Hidden      bool
	Opacity     uint8
	BlendMode   string
	Text        *TextData
	Adjustment  string
	SmartObject bool
	VectorMask  bool
	Group       bool
	Children    []*Node
}

// TextData is the decoded payload of a type-tool layer. Style is set only when every run
// shares it. RunArray follows the engine-data run array and StyleRuns the layer's
// style-sheet list.
type TextData struct {
	Text      string
	Style     *TextStyle
	RunArray  []TextStyle
	StyleRuns []TextStyle
}

// TextStyle is the subset of a character style needed for grading.
type TextStyle struct {
	Font     string
	FontSize float64
}
