package psd

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"unicode/utf16"
)

var errShortDescriptor = errors.New("psd: descriptor truncated")

// maxDescriptorItems guards against absurd counts in corrupt descriptors.
const maxDescriptorItems = 1 << 16

// Descriptor is a decoded action descriptor: a class id and its keyed items. Values are
// float64, int64, bool, string, []byte, Descriptor, []any or Enum.
type Descriptor struct {
	Class string
	Items map[string]any
}

// Enum is an enumerated descriptor value.
type Enum struct {
	Type  string
	Value string
}

// cursor is a sequential bounds-checked big-endian reader. The first failure sticks.
type cursor struct {
	data []byte
	off  int
	err  error
}

func (c *cursor) take(n int) []byte {
	if c.err != nil {
		return nil
	}
	if n < 0 || n > len(c.data)-c.off {
		c.err = errShortDescriptor
		return nil
	}
	p := c.data[c.off : c.off+n]
	c.off += n
	return p
}

func (c *cursor) u8() uint8 {
	p := c.take(1)
	if p == nil {
		return 0
	}
	return p[0]
}

func (c *cursor) u16() uint16 {
	p := c.take(2)
	if p == nil {
		return 0
	}
	return binary.BigEndian.Uint16(p)
}

func (c *cursor) u32() uint32 {
	p := c.take(4)
	if p == nil {
		return 0
	}
	return binary.BigEndian.Uint32(p)
}

func (c *cursor) u64() uint64 {
	p := c.take(8)
	if p == nil {
		return 0
	}
	return binary.BigEndian.Uint64(p)
}

func (c *cursor) f64() float64 {
	return math.Float64frombits(c.u64())
}

func (c *cursor) count() int {
	n := c.u32()
	if c.err == nil && n > maxDescriptorItems {
		c.err = fmt.Errorf("psd: descriptor count %d out of range", n)
		return 0
	}
	return int(n)
}

// unicode reads a length-prefixed UTF-16 string, dropping a trailing NUL.
func (c *cursor) unicode() string {
	n := c.count()
	p := c.take(n * 2)
	if p == nil {
		return ""
	}
	units := make([]uint16, n)
	for i := range units {
		units[i] = binary.BigEndian.Uint16(p[i*2:])
	}
	for len(units) > 0 && units[len(units)-1] == 0 {
		units = units[:len(units)-1]
	}
	return string(utf16.Decode(units))
}

// id reads a class or key id: a length, or zero followed by a 4-byte code.
func (c *cursor) id() string {
	n := c.count()
	if n == 0 {
		n = 4
	}
	return string(c.take(n))
}

// ParseDescriptor decodes a descriptor (without its leading version field).
func ParseDescriptor(data []byte) (Descriptor, error) {
	c := &cursor{data: data}
	d := c.descriptor()
	if c.err != nil {
		return Descriptor{}, c.err
	}
	return d, nil
}

func (c *cursor) descriptor() Descriptor {
	c.unicode() // class display name
	d := Descriptor{Class: c.id(), Items: make(map[string]any)}
	n := c.count()
	for i := 0; i < n && c.err == nil; i++ {
		key := c.id()
		d.Items[key] = c.value(string(c.take(4)))
	}
	return d
}

func (c *cursor) value(ostype string) any {
	if c.err != nil {
		return nil
	}
	switch ostype {
	case "Objc", "GlbO":
		return c.descriptor()
	case "VlLs":
		n := c.count()
		list := make([]any, 0, n)
		for i := 0; i < n && c.err == nil; i++ {
			list = append(list, c.value(string(c.take(4))))
		}
		return list
	case "doub":
		return c.f64()
	case "UntF":
		c.take(4) // unit
		return c.f64()
	case "UnFl":
		c.take(4)
		n := c.count()
		vals := make([]any, 0, n)
		for i := 0; i < n && c.err == nil; i++ {
			vals = append(vals, c.f64())
		}
		return vals
	case "TEXT":
		return c.unicode()
	case "enum":
		return Enum{Type: c.id(), Value: c.id()}
	case "long":
		return int64(int32(c.u32()))
	case "comp":
		return int64(c.u64())
	case "bool":
		return c.u8() != 0
	case "type", "GlbC":
		c.unicode()
		return c.id()
	case "alis", "tdta", "Pth ":
		n := c.u32()
		return c.take(int(n))
	case "obj ":
		return c.reference()
	default:
		c.err = fmt.Errorf("psd: unsupported descriptor type %q", ostype)
		return nil
	}
}

// reference reads an 'obj ' value. Only its shape is consumed; the content is not needed.
func (c *cursor) reference() any {
	n := c.count()
	for i := 0; i < n && c.err == nil; i++ {
		switch form := string(c.take(4)); form {
		case "prop":
			c.unicode()
			c.id()
			c.id()
		case "Clss":
			c.unicode()
			c.id()
		case "Enmr":
			c.unicode()
			c.id()
			c.id()
			c.id()
		case "rele":
			c.unicode()
			c.id()
			c.u32()
		case "Idnt", "indx":
			c.u32()
		case "name":
			c.unicode()
			c.id()
			c.unicode()
		default:
			c.err = fmt.Errorf("psd: unsupported reference form %q", form)
		}
	}
	return nil
}
