package pattern

import (
	"regexp"
	"strconv"
	"strings"
)

// Placeholder tokens recognized inside {braces} in a template pattern.
const (
	TokenClass      = "CLASS"
	TokenLastName   = "LASTNAME"
	TokenFirstName  = "FIRSTNAME"
	TokenAssignment = "ASSIGNMENT"
	TokenNumber     = "NUMBER"
	TokenAny        = "ANY"
)

var fragments = map[string]string{
	TokenClass:      `[A-Za-z]{2,5}[ -]?\d{2,4}`,
	TokenLastName:   `[A-Za-z-]+`,
	TokenFirstName:  `[A-Za-z-]+`,
	TokenAssignment: `[A-Za-z]*[ -]?\d+[A-Za-z]?`,
	TokenNumber:     `\d+`,
	TokenAny:        `.+`,
}

// Tokens lists the placeholder names in documentation order.
func Tokens() []string {
	return []string{TokenClass, TokenLastName, TokenFirstName, TokenAssignment, TokenNumber, TokenAny}
}

type segment struct {
	literal string
	token   string
}

// tokenize splits a template into literal runs and placeholders. Braced names that are
// not placeholders stay literal.
func tokenize(tpl string) []segment {
	var (
		segs []segment
		lit  strings.Builder
	)
	for i := 0; i < len(tpl); {
		if tpl[i] == '{' {
			if end := strings.IndexByte(tpl[i:], '}'); end > 0 {
				name := tpl[i+1 : i+end]
				if _, ok := fragments[name]; ok {
					if lit.Len() > 0 {
						segs = append(segs, segment{literal: lit.String()})
						lit.Reset()
					}
					segs = append(segs, segment{token: name})
					i += end + 1
					continue
				}
			}
		}
		lit.WriteByte(tpl[i])
		i++
	}
	if lit.Len() > 0 {
		segs = append(segs, segment{literal: lit.String()})
	}
	return segs
}

// Compile turns a template into an anchored regular expression source. Literal text is
// escaped, placeholders become their fragments. With named set, each placeholder becomes a
// named group; a token used more than once is suffixed _2, _3 and so on.
func Compile(tpl string, named bool) string {
	var b strings.Builder
	b.WriteByte('^')
	seen := make(map[string]int)
	for _, s := range tokenize(tpl) {
		if s.token == "" {
			b.WriteString(regexp.QuoteMeta(s.literal))
			continue
		}
		if !named {
			b.WriteString("(?:" + fragments[s.token] + ")")
			continue
		}
		seen[s.token]++
		group := s.token
		if n := seen[s.token]; n > 1 {
			group += "_" + strconv.Itoa(n)
		}
		b.WriteString("(?P<" + group + ">" + fragments[s.token] + ")")
	}
	b.WriteByte('$')
	return b.String()
}
