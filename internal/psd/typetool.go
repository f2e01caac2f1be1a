package psd

import "fmt"

// ParseTypeTool decodes the payload of a type-tool ('TySh') layer info block. Missing
// engine data is not an error: the returned TextData then only carries what was found.
func ParseTypeTool(data []byte) (*TextData, error) {
	c := &cursor{data: data}
	c.u16()       // version
	c.take(6 * 8) // transform
	c.u16()       // text version
	c.u32()       // descriptor version
	if c.err != nil {
		return nil, fmt.Errorf("type tool header: %w", c.err)
	}
	desc := c.descriptor()
	if c.err != nil {
		return nil, fmt.Errorf("type tool descriptor: %w", c.err)
	}

	td := &TextData{}
	if s, ok := desc.Items["Txt "].(string); ok {
		td.Text = trimTextTerminator(s)
	}
	raw, ok := desc.Items["EngineData"].([]byte)
	if !ok {
		return td, nil
	}
	engine, err := ParseEngineData(raw)
	if err != nil {
		return td, nil
	}
	applyEngineData(td, engine)
	return td, nil
}

func trimTextTerminator(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\r' || s[len(s)-1] == 0) {
		s = s[:len(s)-1]
	}
	return s
}

func applyEngineData(td *TextData, engine map[string]any) {
	resources := mapAt(engine, "ResourceDict")
	if resources == nil {
		resources = mapAt(engine, "DocumentResources")
	}
	fonts := fontNames(listAt(resources, "FontSet"))

	for _, run := range listAt(mapAt(engine, "EngineDict", "StyleRun"), "RunArray") {
		m, _ := run.(map[string]any)
		td.RunArray = append(td.RunArray, styleFrom(mapAt(m, "StyleSheet", "StyleSheetData"), fonts))
	}
	for _, sheet := range listAt(resources, "StyleSheetSet") {
		m, _ := sheet.(map[string]any)
		td.StyleRuns = append(td.StyleRuns, styleFrom(mapAt(m, "StyleSheetData"), fonts))
	}

	if len(td.RunArray) > 0 {
		common := td.RunArray[0]
		for _, s := range td.RunArray[1:] {
			if s.Font != common.Font {
				return
			}
		}
		if common.Font != "" {
			td.Style = &common
		}
	}
}

func styleFrom(data map[string]any, fonts []string) TextStyle {
	var s TextStyle
	if idx, ok := data["Font"].(float64); ok {
		if i := int(idx); i >= 0 && i < len(fonts) {
			s.Font = fonts[i]
		}
	}
	if size, ok := data["FontSize"].(float64); ok {
		s.FontSize = size
	}
	return s
}

func fontNames(set []any) []string {
	names := make([]string, len(set))
	for i, f := range set {
		if m, ok := f.(map[string]any); ok {
			names[i], _ = m["Name"].(string)
		}
	}
	return names
}

func mapAt(m map[string]any, path ...string) map[string]any {
	for _, k := range path {
		if m == nil {
			return nil
		}
		m, _ = m[k].(map[string]any)
	}
	return m
}

func listAt(m map[string]any, key string) []any {
	if m == nil {
		return nil
	}
	l, _ := m[key].([]any)
	return l
}
