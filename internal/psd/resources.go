package psd

import "encoding/binary"

const (
	resourceResolutionInfo = 1005
	resourceThumbnail      = 1036

	// DefaultResolution is reported when a document carries no resolution resource.
	DefaultResolution = 72.0
)

// ReadResolution walks the color-mode-data and image-resource sections to find the
// horizontal resolution in pixels per inch. It reports false when the resource is absent
// or any length field points past the end of data.
func ReadResolution(data []byte) (float64, bool) {
	res, ok := resourceAt(data, resourceResolutionInfo)
	if !ok {
		return 0, false
	}
	return resolutionFromResource(res)
}

// resourceAt returns the payload of the image resource with the given id.
func resourceAt(data []byte, id uint16) ([]byte, bool) {
	b := byteReader{data: data}
	colorLen, ok := b.uint32At(HeaderSize)
	if !ok {
		return nil, false
	}
	off := HeaderSize + 4 + int(colorLen)
	if off > len(data) {
		return nil, false
	}
	sectionLen, ok := b.uint32At(off)
	if !ok {
		return nil, false
	}
	off += 4
	end := off + int(sectionLen)
	if end > len(data) || end < off {
		return nil, false
	}

	for off+12 <= end {
		if sig, _ := b.bytesAt(off, 4); string(sig) != "8BIM" {
			return nil, false
		}
		rid, _ := b.uint16At(off + 4)
		off += 6

		// Pascal name, padded to an even total length.
		nameLen, ok := b.bytesAt(off, 1)
		if !ok {
			return nil, false
		}
		n := 1 + int(nameLen[0])
		if n%2 != 0 {
			n++
		}
		off += n

		size, ok := b.uint32At(off)
		if !ok {
			return nil, false
		}
		off += 4
		payload, ok := b.bytesAt(off, int(size))
		if !ok || off+int(size) > end {
			return nil, false
		}
		if rid == id {
			return payload, true
		}
		off += int(size)
		if size%2 != 0 {
			off++
		}
	}
	return nil, false
}

// resolutionFromResource decodes a ResolutionInfo payload. The horizontal resolution is a
// 16.16 fixed-point value stored in pixels per inch whatever the display unit.
func resolutionFromResource(p []byte) (float64, bool) {
	if len(p) < 4 {
		return 0, false
	}
	dpi := float64(binary.BigEndian.Uint32(p[0:4])) / 65536.0
	if dpi <= 0 {
		return 0, false
	}
	return dpi, true
}
