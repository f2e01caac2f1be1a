// Package psd reads Photoshop documents. It holds the fixed-offset header reader, the
// adapter over the full decoder and the decode ladder that ties both together.
package psd

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Signature is the 4-byte magic value at the start of every document.
const Signature = "8BPS"

const (
	// HeaderSize is the length of the fixed file header section.
	HeaderSize = 26

	// MaxDimension is the largest width or height accepted for a document.
	MaxDimension = 30000
)

var (
	ErrTooSmall         = errors.New("psd: buffer smaller than header")
	ErrInvalidSignature = errors.New("psd: invalid signature")
	ErrInvalidHeader    = errors.New("psd: invalid header")
)

// BasicInfo is what the header alone tells about a document.
type BasicInfo struct {
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	BitDepth      int    `json:"bitDepth"`
	ColorMode     string `json:"colorMode"`
	ColorModeCode int    `json:"colorModeCode"`
	Version       int    `json:"version"`
	Channels      int    `json:"channels"`
}

var colorModes = map[int]string{
	0: "Bitmap",
	1: "Grayscale",
	2: "Indexed",
	3: "RGB",
	4: "CMYK",
	7: "Multichannel",
	8: "Duotone",
	9: "Lab",
}

// ColorModeName maps a header color-mode code to its display name.
func ColorModeName(code int) string {
	if name, ok := colorModes[code]; ok {
		return name
	}
	return "Unknown"
}

func validDepth(d int) bool {
	switch d {
	case 1, 8, 16, 32:
		return true
	}
	return false
}

// ReadHeader extracts BasicInfo from the first bytes of data without decoding the rest.
func ReadHeader(data []byte) (BasicInfo, error) {
	b := byteReader{data: data}
	if len(data) < HeaderSize {
		return BasicInfo{}, fmt.Errorf("%w: %d bytes", ErrTooSmall, len(data))
	}
	if sig, _ := b.bytesAt(0, 4); string(sig) != Signature {
		return BasicInfo{}, ErrInvalidSignature
	}

	version, _ := b.uint16At(4)
	channels, _ := b.uint16At(12)
	height, _ := b.uint32At(14)
	width, _ := b.uint32At(18)
	depth, _ := b.uint16At(22)
	mode, _ := b.uint16At(24)

	if width == 0 || width > MaxDimension {
		return BasicInfo{}, fmt.Errorf("%w: width %d", ErrInvalidHeader, width)
	}
	if height == 0 || height > MaxDimension {
		return BasicInfo{}, fmt.Errorf("%w: height %d", ErrInvalidHeader, height)
	}
	if !validDepth(int(depth)) {
		return BasicInfo{}, fmt.Errorf("%w: bit depth %d", ErrInvalidHeader, depth)
	}

	return BasicInfo{
		Width:         int(width),
		Height:        int(height),
		BitDepth:      int(depth),
		ColorMode:     ColorModeName(int(mode)),
		ColorModeCode: int(mode),
		Version:       int(version),
		Channels:      int(channels),
	}, nil
}

// byteReader performs bounds-checked big-endian reads at absolute offsets.
type byteReader struct {
	data []byte
}

func (b byteReader) bytesAt(off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(b.data) || n > len(b.data)-off {
		return nil, false
	}
	return b.data[off : off+n], true
}

func (b byteReader) uint16At(off int) (uint16, bool) {
	p, ok := b.bytesAt(off, 2)
	if !ok {
		return 0, false
	}
	return binary.BigEndian.Uint16(p), true
}

func (b byteReader) uint32At(off int) (uint32, bool) {
	p, ok := b.bytesAt(off, 4)
	if !ok {
		return 0, false
	}
	return binary.BigEndian.Uint32(p), true
}
