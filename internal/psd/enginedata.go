package psd

import (
	"errors"
	"strconv"
	"unicode/utf16"
)

var errEngineData = errors.New("psd: malformed engine data")

const maxEngineDepth = 256

// ParseEngineData decodes the PostScript-like engine data of a text layer into nested
// map[string]any / []any values with float64, bool and string leaves.
func ParseEngineData(data []byte) (map[string]any, error) {
	p := &engineParser{data: data}
	p.skipSpace()
	if !p.consume("<<") {
		return nil, errEngineData
	}
	root, err := p.dict(0)
	if err != nil {
		return nil, err
	}
	return root, nil
}

type engineParser struct {
	data []byte
	off  int
}

func (p *engineParser) eof() bool { return p.off >= len(p.data) }

func (p *engineParser) skipSpace() {
	for !p.eof() {
		switch p.data[p.off] {
		case ' ', '\t', '\r', '\n', 0:
			p.off++
		default:
			return
		}
	}
}

func (p *engineParser) consume(tok string) bool {
	if len(p.data)-p.off < len(tok) || string(p.data[p.off:p.off+len(tok)]) != tok {
		return false
	}
	p.off += len(tok)
	return true
}

func (p *engineParser) dict(depth int) (map[string]any, error) {
	if depth > maxEngineDepth {
		return nil, errEngineData
	}
	out := make(map[string]any)
	for {
		p.skipSpace()
		if p.eof() {
			return nil, errEngineData
		}
		if p.consume(">>") {
			return out, nil
		}
		if p.data[p.off] != '/' {
			return nil, errEngineData
		}
		key := p.name()
		v, err := p.value(depth)
		if err != nil {
			return nil, err
		}
		out[key] = v
	}
}

func (p *engineParser) array(depth int) ([]any, error) {
	if depth > maxEngineDepth {
		return nil, errEngineData
	}
	var out []any
	for {
		p.skipSpace()
		if p.eof() {
			return nil, errEngineData
		}
		if p.consume("]") {
			return out, nil
		}
		v, err := p.value(depth)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
}

func (p *engineParser) value(depth int) (any, error) {
	p.skipSpace()
	if p.eof() {
		return nil, errEngineData
	}
	switch c := p.data[p.off]; {
	case p.consume("<<"):
		return p.dict(depth + 1)
	case c == '[':
		p.off++
		return p.array(depth + 1)
	case c == '(':
		return p.str()
	case c == '/':
		return p.name(), nil
	case p.consume("true"):
		return true, nil
	case p.consume("false"):
		return false, nil
	default:
		return p.number()
	}
}

// name reads "/Name" and returns Name.
func (p *engineParser) name() string {
	p.off++
	start := p.off
	for !p.eof() {
		switch p.data[p.off] {
		case ' ', '\t', '\r', '\n', '/', '(', '[', ']', '<', '>':
			return string(p.data[start:p.off])
		}
		p.off++
	}
	return string(p.data[start:p.off])
}

func (p *engineParser) number() (any, error) {
	start := p.off
	for !p.eof() {
		c := p.data[p.off]
		if (c >= '0' && c <= '9') || c == '-' || c == '.' || c == '+' || c == 'e' || c == 'E' {
			p.off++
			continue
		}
		break
	}
	if start == p.off {
		return nil, errEngineData
	}
	f, err := strconv.ParseFloat(string(p.data[start:p.off]), 64)
	if err != nil {
		return nil, errEngineData
	}
	return f, nil
}

// str reads a parenthesized string. Bytes are UTF-16BE when prefixed with a byte-order mark.
func (p *engineParser) str() (any, error) {
	p.off++
	var raw []byte
	for {
		if p.eof() {
			return nil, errEngineData
		}
		c := p.data[p.off]
		p.off++
		if c == '\\' {
			if p.eof() {
				return nil, errEngineData
			}
			raw = append(raw, p.data[p.off])
			p.off++
			continue
		}
		if c == ')' {
			break
		}
		raw = append(raw, c)
	}
	return decodeEngineString(raw), nil
}

func decodeEngineString(raw []byte) string {
	if len(raw) >= 2 && raw[0] == 0xFE && raw[1] == 0xFF {
		raw = raw[2:]
		units := make([]uint16, 0, len(raw)/2)
		for i := 0; i+1 < len(raw); i += 2 {
			units = append(units, uint16(raw[i])<<8|uint16(raw[i+1]))
		}
		for len(units) > 0 && units[len(units)-1] == 0 {
			units = units[:len(units)-1]
		}
		return string(utf16.Decode(units))
	}
	return string(raw)
}
