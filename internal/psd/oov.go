package psd

import (
	"bytes"
	"fmt"

	oovpsd "github.com/oov/psd"
)

// Additional layer info keys that decide a layer's capabilities.
var (
	adjustmentKeys = map[string]bool{
		"levl": true, "curv": true, "brit": true, "blnc": true, "hue ": true, "hue2": true,
		"selc": true, "mixr": true, "grdm": true, "phfl": true, "expA": true, "vibA": true,
		"thrs": true, "post": true, "nvrt": true, "CgEd": true, "clrL": true, "blwh": true,
	}
	smartObjectKeys = map[string]bool{"SoLd": true, "SoLE": true, "PlLd": true}
	vectorKeys      = map[string]bool{
		"vmsk": true, "vsms": true, "vscg": true, "vogk": true,
		"SoCo": true, "GdFl": true, "PtFl": true,
	}
)

const (
	infoTypeTool        = "TySh"
	thumbnailHeaderSize = 28
)

// OOVDecoder implements Decoder with github.com/oov/psd.
type OOVDecoder struct{}

// Decode runs a full decode, or a configuration-only decode when opt.SkipLayers is set.
func (OOVDecoder) Decode(data []byte, opt DecodeOptions) (*Tree, error) {
	if opt.SkipLayers {
		cfg, _, err := oovpsd.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode config: %w", err)
		}
		return treeFromConfig(cfg, opt), nil
	}

	doc, _, err := oovpsd.Decode(bytes.NewReader(data), &oovpsd.DecodeOptions{
		SkipMergedImage: !opt.RetainComposite,
		SkipLayerImage:  !opt.RetainComposite,
	})
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	t := treeFromConfig(doc.Config, opt)
	t.Composite = opt.RetainComposite
	t.Nodes = nodesFrom(doc.Layer)
	return t, nil
}

func treeFromConfig(cfg oovpsd.Config, opt DecodeOptions) *Tree {
	t := &Tree{
		Width:     cfg.Rect.Dx(),
		Height:    cfg.Rect.Dy(),
		Depth:     int(cfg.Depth),
		ColorMode: int(cfg.ColorMode),
		Version:   int(cfg.Version),
	}
	for id, res := range cfg.Res {
		switch int(id) {
		case resourceResolutionInfo:
			if dpi, ok := resolutionFromResource(res.Data); ok {
				t.Resolution = dpi
			}
		case resourceThumbnail:
			if opt.RetainThumbnail && len(res.Data) > thumbnailHeaderSize {
				t.Thumbnail = res.Data[thumbnailHeaderSize:]
			}
		}
	}
	return t
}

// nodesFrom converts decoded layers, which follow the file order (bottom-most first), into
// top-first nodes.
func nodesFrom(layers []oovpsd.Layer) []*Node {
	nodes := make([]*Node, 0, len(layers))
	for i := len(layers) - 1; i >= 0; i-- {
		nodes = append(nodes, nodeFrom(&layers[i]))
	}
	return nodes
}

func nodeFrom(l *oovpsd.Layer) *Node {
	n := &Node{
		Name:      l.UnicodeName,
		Hidden:    l.Flags&2 != 0,
		Opacity:   uint8(l.Opacity),
		BlendMode: string(l.BlendMode),
		Group:     l.Folder() || len(l.Layer) > 0,
	}
	if n.Name == "" {
		n.Name = l.Name
	}

	for key, info := range l.AdditionalLayerInfo {
		switch k := string(key); {
		case k == infoTypeTool:
			td, err := ParseTypeTool(info)
			if err != nil {
				td = &TextData{}
			}
			n.Text = td
		case adjustmentKeys[k]:
			n.Adjustment = k
		case smartObjectKeys[k]:
			n.SmartObject = true
		case vectorKeys[k]:
			n.VectorMask = true
		}
	}

	if len(l.Layer) > 0 {
		n.Children = nodesFrom(l.Layer)
	}
	return n
}
