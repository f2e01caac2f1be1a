package analysis

import "psdgrader/internal/psd"

// resolveFont finds the font of a text layer. Sources are probed in order and the first one
// naming a font wins: the layer's common style, the first run of the run array, then the
// first entry of the style-sheet list.
func resolveFont(td *psd.TextData) (psd.TextStyle, bool) {
	if td == nil {
		return psd.TextStyle{}, false
	}
	if td.Style != nil && td.Style.Font != "" {
		return *td.Style, true
	}
	if len(td.RunArray) > 0 && td.RunArray[0].Font != "" {
		return td.RunArray[0], true
	}
	if len(td.StyleRuns) > 0 && td.StyleRuns[0].Font != "" {
		return td.StyleRuns[0], true
	}
	return psd.TextStyle{}, false
}
