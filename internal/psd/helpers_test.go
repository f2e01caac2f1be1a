package psd

import (
	"bytes"
	"encoding/binary"
	"math"
	"unicode/utf16"
)

// header builds a 26-byte file header.
func header(width, height, depth, mode uint32) []byte {
	var b bytes.Buffer
	b.WriteString(Signature)
	binary.Write(&b, binary.BigEndian, uint16(1))
	b.Write(make([]byte, 6))
	binary.Write(&b, binary.BigEndian, uint16(3))
	binary.Write(&b, binary.BigEndian, height)
	binary.Write(&b, binary.BigEndian, width)
	binary.Write(&b, binary.BigEndian, uint16(depth))
	binary.Write(&b, binary.BigEndian, uint16(mode))
	return b.Bytes()
}

// withResolution appends an empty color-mode-data section and a resource section holding a
// ResolutionInfo resource.
func withResolution(hdr []byte, dpi float64) []byte {
	var res bytes.Buffer
	res.WriteString("8BIM")
	binary.Write(&res, binary.BigEndian, uint16(resourceResolutionInfo))
	res.Write([]byte{0, 0}) // empty pascal name, padded
	payload := make([]byte, 16)
	binary.BigEndian.PutUint32(payload[0:4], uint32(dpi*65536))
	binary.BigEndian.PutUint16(payload[4:6], 1)
	binary.Write(&res, binary.BigEndian, uint32(len(payload)))
	res.Write(payload)

	var b bytes.Buffer
	b.Write(hdr)
	binary.Write(&b, binary.BigEndian, uint32(0))
	binary.Write(&b, binary.BigEndian, uint32(res.Len()))
	b.Write(res.Bytes())
	return b.Bytes()
}

// testLayer is one layer record in file order. divider is the 'lsct' section type: 1 or 2
// opens a group, 3 closes one, 0 writes no divider.
type testLayer struct {
	name    string
	unicode string
	flags   byte
	divider uint32
	infos   []testInfo
}

type testInfo struct {
	key  string
	data []byte
}

// layered builds an 8-bit RGB document with a resolution resource, the given layer records
// (bottom-most first, no channel data) and a raw merged image.
func layered(width, height uint32, dpi float64, layers []testLayer) []byte {
	var recs bytes.Buffer
	binary.Write(&recs, binary.BigEndian, uint16(len(layers)))
	for _, l := range layers {
		recs.Write(make([]byte, 16)) // empty bounds
		binary.Write(&recs, binary.BigEndian, uint16(0))
		recs.WriteString("8BIMnorm")
		recs.Write([]byte{255, 0, l.flags, 0})

		infos := l.infos
		if l.unicode != "" {
			var w descWriter
			w.unicode(l.unicode)
			infos = append(infos, testInfo{key: "luni", data: w.Bytes()})
		}
		if l.divider != 0 {
			d := make([]byte, 4)
			binary.BigEndian.PutUint32(d, l.divider)
			infos = append(infos, testInfo{key: "lsct", data: d})
		}

		var extra bytes.Buffer
		binary.Write(&extra, binary.BigEndian, uint32(0)) // mask
		binary.Write(&extra, binary.BigEndian, uint32(0)) // blending ranges
		name := append([]byte{byte(len(l.name))}, l.name...)
		for len(name)%4 != 0 {
			name = append(name, 0)
		}
		extra.Write(name)
		for _, info := range infos {
			extra.WriteString("8BIM" + info.key)
			binary.Write(&extra, binary.BigEndian, uint32(len(info.data)))
			extra.Write(info.data)
		}
		binary.Write(&recs, binary.BigEndian, uint32(extra.Len()))
		recs.Write(extra.Bytes())
	}

	var b bytes.Buffer
	b.Write(withResolution(header(width, height, 8, 3), dpi))
	binary.Write(&b, binary.BigEndian, uint32(4+recs.Len()+4))
	binary.Write(&b, binary.BigEndian, uint32(recs.Len()))
	b.Write(recs.Bytes())
	binary.Write(&b, binary.BigEndian, uint32(0)) // global layer mask
	binary.Write(&b, binary.BigEndian, uint16(0)) // raw merged image
	b.Write(make([]byte, int(width*height)*3))
	return b.Bytes()
}

// descWriter builds action descriptor payloads.
type descWriter struct {
	bytes.Buffer
}

func (w *descWriter) unicode(s string) {
	units := utf16.Encode([]rune(s))
	binary.Write(w, binary.BigEndian, uint32(len(units)))
	for _, u := range units {
		binary.Write(w, binary.BigEndian, u)
	}
}

func (w *descWriter) id(s string) {
	if len(s) == 4 {
		binary.Write(w, binary.BigEndian, uint32(0))
	} else {
		binary.Write(w, binary.BigEndian, uint32(len(s)))
	}
	w.WriteString(s)
}

func (w *descWriter) begin(class string, items int) {
	w.unicode("")
	w.id(class)
	binary.Write(w, binary.BigEndian, uint32(items))
}

func (w *descWriter) text(key, value string) {
	w.id(key)
	w.WriteString("TEXT")
	w.unicode(value)
}

func (w *descWriter) raw(key string, value []byte) {
	w.id(key)
	w.WriteString("tdta")
	binary.Write(w, binary.BigEndian, uint32(len(value)))
	w.Write(value)
}

func (w *descWriter) double(key string, v float64) {
	w.id(key)
	w.WriteString("doub")
	binary.Write(w, binary.BigEndian, math.Float64bits(v))
}

// typeTool wraps a descriptor into a 'TySh' payload.
func typeTool(desc []byte) []byte {
	var b bytes.Buffer
	binary.Write(&b, binary.BigEndian, uint16(1))
	b.Write(make([]byte, 48))
	binary.Write(&b, binary.BigEndian, uint16(50))
	binary.Write(&b, binary.BigEndian, uint32(16))
	b.Write(desc)
	return b.Bytes()
}

// engineString encodes s as an engine-data UTF-16 string literal.
func engineString(s string) string {
	var b bytes.Buffer
	b.WriteString("(\xfe\xff")
	for _, u := range utf16.Encode([]rune(s)) {
		for _, c := range []byte{byte(u >> 8), byte(u)} {
			if c == '(' || c == ')' || c == '\\' {
				b.WriteByte('\\')
			}
			b.WriteByte(c)
		}
	}
	b.WriteString(")")
	return b.String()
}
