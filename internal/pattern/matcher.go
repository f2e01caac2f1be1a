// Package pattern matches uploaded filenames against instructor patterns.
package pattern

import (
	"errors"
	"fmt"
	"path"
	"regexp"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"psdgrader/internal/model"
)

// DefaultCacheSize bounds the number of compiled expressions kept by a Matcher.
const DefaultCacheSize = 256

var ErrUnknownType = errors.New("pattern: unknown pattern type")

// CompileError reports a regex pattern that does not compile. Match and Captures never
// return it; it is surfaced only by Validate.
type CompileError struct {
	Pattern string
	Err     error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("pattern: compile %q: %v", e.Pattern, e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }

// Options selects a pattern and how it is compared.
type Options struct {
	Pattern       string
	Type          model.PatternType
	CaseSensitive bool
}

// NormalizeType folds case and surrounding space out of t. An empty type is a template.
func NormalizeType(t model.PatternType) model.PatternType {
	n := model.PatternType(strings.ToLower(strings.TrimSpace(string(t))))
	if n == "" {
		return model.PatternTemplate
	}
	return n
}

// FromCriteria returns the Options configured by a filename rule group.
func FromCriteria(c model.FilenameCriteria) Options {
	return Options{Pattern: c.Pattern, Type: NormalizeType(c.PatternType), CaseSensitive: c.CaseSensitive}
}

// ValidateCriteria reports whether an enabled filename rule group can be evaluated: its
// pattern type must be known and a regex or template must compile.
func ValidateCriteria(c model.FilenameCriteria) error {
	if !c.Enabled {
		return nil
	}
	o := FromCriteria(c)
	if err := checkType(o.Type); err != nil {
		return err
	}
	if o.Type == model.PatternRegex || o.Type == model.PatternTemplate {
		if _, err := regexp.Compile(source(o, false)); err != nil {
			return &CompileError{Pattern: o.Pattern, Err: err}
		}
	}
	return nil
}

func checkType(t model.PatternType) error {
	switch t {
	case model.PatternExact, model.PatternContains, model.PatternRegex, model.PatternTemplate:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownType, t)
}

type cacheKey struct {
	typ           model.PatternType
	pattern       string
	caseSensitive bool
	named         bool
}

// Matcher evaluates filename patterns. It is safe for concurrent use.
type Matcher struct {
	cache *lru.Cache[cacheKey, *regexp.Regexp]
}

// NewMatcher constructs a Matcher caching up to size compiled expressions.
func NewMatcher(size int) (*Matcher, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[cacheKey, *regexp.Regexp](size)
	if err != nil {
		return nil, err
	}
	return &Matcher{cache: cache}, nil
}

// StripExtension removes the final extension from name.
func StripExtension(name string) string {
	return strings.TrimSuffix(name, path.Ext(name))
}

// Match reports whether the extension-stripped name satisfies o. A regex that does not
// compile never matches.
func (m *Matcher) Match(name string, o Options) bool {
	o.Type = NormalizeType(o.Type)
	candidate := StripExtension(name)
	switch o.Type {
	case model.PatternExact:
		if o.CaseSensitive {
			return candidate == o.Pattern
		}
		return strings.EqualFold(candidate, o.Pattern)
	case model.PatternContains:
		if o.CaseSensitive {
			return strings.Contains(candidate, o.Pattern)
		}
		return strings.Contains(strings.ToLower(candidate), strings.ToLower(o.Pattern))
	case model.PatternRegex, model.PatternTemplate:
		re, err := m.compile(o, false)
		if err != nil {
			return false
		}
		return re.MatchString(candidate)
	}
	return false
}

// Captures matches like Match and additionally returns the substrings recovered by named
// groups, keyed by group name. Exact and contains patterns have no groups.
func (m *Matcher) Captures(name string, o Options) (map[string]string, bool) {
	o.Type = NormalizeType(o.Type)
	if o.Type != model.PatternRegex && o.Type != model.PatternTemplate {
		return map[string]string{}, m.Match(name, o)
	}
	re, err := m.compile(o, true)
	if err != nil {
		return map[string]string{}, false
	}
	sub := re.FindStringSubmatch(StripExtension(name))
	if sub == nil {
		return map[string]string{}, false
	}
	caps := make(map[string]string)
	for i, g := range re.SubexpNames() {
		if g != "" && i < len(sub) {
			caps[g] = sub[i]
		}
	}
	return caps, true
}

// Validate reports whether o can be evaluated, returning a *CompileError for a regex that
// does not compile.
func (m *Matcher) Validate(o Options) error {
	o.Type = NormalizeType(o.Type)
	if err := checkType(o.Type); err != nil {
		return err
	}
	if o.Type == model.PatternRegex || o.Type == model.PatternTemplate {
		_, err := m.compile(o, false)
		return err
	}
	return nil
}

func (m *Matcher) compile(o Options, named bool) (*regexp.Regexp, error) {
	key := cacheKey{typ: o.Type, pattern: o.Pattern, caseSensitive: o.CaseSensitive, named: named}
	if re, ok := m.cache.Get(key); ok {
		return re, nil
	}

	re, err := regexp.Compile(source(o, named))
	if err != nil {
		return nil, &CompileError{Pattern: o.Pattern, Err: err}
	}
	m.cache.Add(key, re)
	return re, nil
}

func source(o Options, named bool) string {
	src := o.Pattern
	if o.Type == model.PatternTemplate {
		src = Compile(o.Pattern, named)
	}
	if !o.CaseSensitive {
		src = "(?i)" + src
	}
	return src
}
