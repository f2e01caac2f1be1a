package pattern

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"psdgrader/internal/model"
)

func newMatcher(t *testing.T) *Matcher {
	t.Helper()
	m, err := NewMatcher(8)
	require.NoError(t, err)
	return m
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name  string
		tpl   string
		named bool
		want  string
	}{
		{"literal is escaped", "a.b(c)", false, `^a\.b\(c\)$`},
		{"number", "hw{NUMBER}", false, `^hw(?:\d+)$`},
		{"unknown braces stay literal", "{FOO}_{NUMBER}", false, `^\{FOO\}_(?:\d+)$`},
		{"unterminated brace", "x{NUMBER", false, `^x\{NUMBER$`},
		{"named groups", "{LASTNAME}_{NUMBER}", true, `^(?P<LASTNAME>[A-Za-z-]+)_(?P<NUMBER>\d+)$`},
		{"repeated tokens are suffixed", "{NUMBER}-{NUMBER}-{NUMBER}", true, `^(?P<NUMBER>\d+)-(?P<NUMBER_2>\d+)-(?P<NUMBER_3>\d+)$`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compile(tt.tpl, tt.named))
		})
	}
}

func TestMatch(t *testing.T) {
	m := newMatcher(t)
	tpl := "{CLASS}_{LASTNAME}_{ASSIGNMENT}"
	tests := []struct {
		name     string
		filename string
		opts     Options
		want     bool
	}{
		{"template", "DES222_Smith_A01.psd", Options{Pattern: tpl, Type: model.PatternTemplate}, true},
		{"template case insensitive", "des222_smith_a01.PSD", Options{Pattern: tpl, Type: model.PatternTemplate}, true},
		{"template missing separator", "DES222Smith_A01.psd", Options{Pattern: tpl, Type: model.PatternTemplate}, false},
		{"template class with dash", "DES-222_Smith_Project 2b.psd", Options{Pattern: tpl, Type: model.PatternTemplate}, true},
		{"template is anchored", "DES222_Smith_A01_final.psd", Options{Pattern: tpl, Type: model.PatternTemplate}, false},
		{"template any", "poster-v2.psd", Options{Pattern: "poster{ANY}", Type: model.PatternTemplate}, true},
		{"exact insensitive", "Poster.psd", Options{Pattern: "poster", Type: model.PatternExact}, true},
		{"exact sensitive", "Poster.psd", Options{Pattern: "poster", Type: model.PatternExact, CaseSensitive: true}, false},
		{"exact strips extension only", "poster.final.psd", Options{Pattern: "poster.final", Type: model.PatternExact}, true},
		{"contains", "Smith_Final.psd", Options{Pattern: "final", Type: model.PatternContains}, true},
		{"contains sensitive", "Smith_Final.psd", Options{Pattern: "final", Type: model.PatternContains, CaseSensitive: true}, false},
		{"regex", "hw12.psd", Options{Pattern: `^HW\d+$`, Type: model.PatternRegex}, true},
		{"regex sensitive", "hw12.psd", Options{Pattern: `^HW\d+$`, Type: model.PatternRegex, CaseSensitive: true}, false},
		{"regex compile failure is a non-match", "hw12.psd", Options{Pattern: `(unclosed`, Type: model.PatternRegex}, false},
		{"unknown type", "hw12.psd", Options{Pattern: "hw12", Type: "glob"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Match(tt.filename, tt.opts))
		})
	}
}

func TestCaptures(t *testing.T) {
	m := newMatcher(t)

	caps, ok := m.Captures("DES222_Smith_A01.psd", Options{Pattern: "{CLASS}_{LASTNAME}_{ASSIGNMENT}", Type: model.PatternTemplate})
	require.True(t, ok)
	assert.Equal(t, map[string]string{"CLASS": "DES222", "LASTNAME": "Smith", "ASSIGNMENT": "A01"}, caps)

	caps, ok = m.Captures("12-34.psd", Options{Pattern: "{NUMBER}-{NUMBER}", Type: model.PatternTemplate})
	require.True(t, ok)
	assert.Equal(t, map[string]string{"NUMBER": "12", "NUMBER_2": "34"}, caps)

	caps, ok = m.Captures("smith_hw3.psd", Options{Pattern: `^(?P<name>[a-z]+)_hw\d$`, Type: model.PatternRegex})
	require.True(t, ok)
	assert.Equal(t, "smith", caps["name"])

	caps, ok = m.Captures("DES222Smith_A01.psd", Options{Pattern: "{CLASS}_{LASTNAME}_{ASSIGNMENT}", Type: model.PatternTemplate})
	assert.False(t, ok)
	assert.Empty(t, caps)

	caps, ok = m.Captures("poster.psd", Options{Pattern: "poster", Type: model.PatternExact})
	assert.True(t, ok)
	assert.Empty(t, caps)
}

func TestValidate(t *testing.T) {
	m := newMatcher(t)

	assert.NoError(t, m.Validate(Options{Pattern: "x", Type: model.PatternExact}))
	assert.NoError(t, m.Validate(Options{Pattern: "{CLASS}", Type: model.PatternTemplate}))

	err := m.Validate(Options{Pattern: "[a-", Type: model.PatternRegex})
	var cerr *CompileError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "[a-", cerr.Pattern)

	assert.ErrorIs(t, m.Validate(Options{Type: "glob"}), ErrUnknownType)
}

func TestMatcher_ConcurrentUse(t *testing.T) {
	m := newMatcher(t)
	o := Options{Pattern: "{LASTNAME}_{NUMBER}", Type: model.PatternTemplate}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.True(t, m.Match("smith_1.psd", o))
		}()
	}
	wg.Wait()
}

func TestFromCriteria(t *testing.T) {
	tests := []struct {
		name string
		typ  model.PatternType
		want model.PatternType
	}{
		{"contains kept", model.PatternContains, model.PatternContains},
		{"empty is template", "", model.PatternTemplate},
		{"capitalized template", "Template", model.PatternTemplate},
		{"padded regex", " REGEX ", model.PatternRegex},
		{"unknown kept lowercased", "Glob", "glob"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := FromCriteria(model.FilenameCriteria{Pattern: "p", PatternType: tt.typ, CaseSensitive: true})
			assert.Equal(t, Options{Pattern: "p", Type: tt.want, CaseSensitive: true}, o)
		})
	}
}

func TestMatch_NormalizesType(t *testing.T) {
	m := newMatcher(t)

	tests := []struct {
		name string
		typ  model.PatternType
	}{
		{"empty", ""},
		{"capitalized", "Template"},
		{"upper", "TEMPLATE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Options{Pattern: "{CLASS}_{LASTNAME}_{NUMBER}", Type: tt.typ}
			assert.True(t, m.Match("DES222_Smith_3.psd", o))
			caps, ok := m.Captures("DES222_Smith_3.psd", o)
			require.True(t, ok)
			assert.Equal(t, "Smith", caps["LASTNAME"])
			assert.NoError(t, m.Validate(o))
		})
	}
}

func TestValidateCriteria(t *testing.T) {
	tests := []struct {
		name      string
		criteria  model.FilenameCriteria
		wantType  bool
		wantRegex bool
	}{
		{"disabled is never checked", model.FilenameCriteria{Enabled: false, Pattern: "[", PatternType: "glob"}, false, false},
		{"exact", model.FilenameCriteria{Enabled: true, Pattern: "poster", PatternType: model.PatternExact}, false, false},
		{"contains", model.FilenameCriteria{Enabled: true, Pattern: "x", PatternType: model.PatternContains}, false, false},
		{"empty type defaults to template", model.FilenameCriteria{Enabled: true, Pattern: "{CLASS}_{NUMBER}"}, false, false},
		{"capitalized template", model.FilenameCriteria{Enabled: true, Pattern: "{CLASS}", PatternType: "Template"}, false, false},
		{"valid regex", model.FilenameCriteria{Enabled: true, Pattern: `^hw\d+$`, PatternType: model.PatternRegex}, false, false},
		{"unknown type", model.FilenameCriteria{Enabled: true, Pattern: "x", PatternType: "glob"}, true, false},
		{"broken regex", model.FilenameCriteria{Enabled: true, Pattern: "[a-", PatternType: model.PatternRegex}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCriteria(tt.criteria)
			switch {
			case tt.wantType:
				assert.ErrorIs(t, err, ErrUnknownType)
			case tt.wantRegex:
				var cerr *CompileError
				require.True(t, errors.As(err, &cerr))
				assert.Equal(t, tt.criteria.Pattern, cerr.Pattern)
			default:
				assert.NoError(t, err)
			}
		})
	}
}
