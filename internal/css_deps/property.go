package css_deps

import (
	"strings"

	"github.com/ahabhgk/css-module-lexer/internal/logger"
)

// Property context analyzers. Entering a known declaration property
// ("animation", "list-style", "font-palette", and variants) opens a rename
// detector that watches the idents of the value and remembers the most
// recent one that is not a reserved word. A comma or the end of the
// declaration commits the candidate as a local reference.

// reservedValues reports whether an ident is a rename candidate. check
// returns true for candidates and false for reserved words; it may be
// stateful, which is how the animation shorthand tells a keyword from an
// animation name that happens to collide with one.
type reservedValues interface {
	check(ident string) bool
	reset()
}

type inProperty struct {
	reserved    reservedValues
	rename      logger.Range
	hasRename   bool
	balancedLen int
}

func newInProperty(reserved reservedValues, balancedLen int) *inProperty {
	return &inProperty{reserved: reserved, balancedLen: balancedLen}
}

func (p *inProperty) setRename(ident string, rng logger.Range) {
	if p.reserved.check(ident) {
		p.rename = rng
		p.hasRename = true
	}
}

func (p *inProperty) takeRename(balancedLen int) (logger.Range, bool) {
	// Don't rename when we are inside functions
	if balancedLen != p.balancedLen || !p.hasRename {
		return logger.Range{}, false
	}
	p.hasRename = false
	return p.rename, true
}

func (p *inProperty) resetReserved() {
	p.reserved.reset()
}

// The timing, direction, fill, play-state, and iteration keywords of the
// animation shorthand. Each is reserved only the first time it appears: the
// second occurrence of "ease" in "animation: 1s ease ease" is the animation
// name. "none" and the global values are always reserved.
var animationKeywordBits = map[string]uint32{
	"normal":            1 << 0,
	"reverse":           1 << 1,
	"alternate":         1 << 2,
	"alternate-reverse": 1 << 3,
	"forwards":          1 << 4,
	"backwards":         1 << 5,
	"both":              1 << 6,
	"infinite":          1 << 7,
	"paused":            1 << 8,
	"running":           1 << 9,
	"ease":              1 << 10,
	"ease-in":           1 << 11,
	"ease-out":          1 << 12,
	"ease-in-out":       1 << 13,
	"linear":            1 << 14,
	"step-end":          1 << 15,
	"step-start":        1 << 16,
}

type animationReserved struct {
	bits uint32
}

func (a *animationReserved) check(ident string) bool {
	if bit, ok := animationKeywordBits[ident]; ok {
		if a.bits&bit == bit {
			return true
		}
		a.bits |= bit
		return false
	}
	switch ident {
	case "none",
		// global values
		"initial", "inherit", "unset", "revert", "revert-layer":
		return false
	}
	return true
}

func (a *animationReserved) reset() {
	a.bits = 0
}

// The predefined counter style names from
// https://www.w3.org/TR/css-counter-styles-3/ plus "none" and the global
// values. Anything else in a "list-style" value is a custom counter style.
var listStyleReservedNames = map[string]bool{
	// simple numeric
	"decimal":              true,
	"decimal-leading-zero": true,
	"arabic-indic":         true,
	"armenian":             true,
	"upper-armenian":       true,
	"lower-armenian":       true,
	"bengali":              true,
	"cambodian":            true,
	"khmer":                true,
	"cjk-decimal":          true,
	"devanagari":           true,
	"georgian":             true,
	"gujarati":             true,
	"gurmukhi":             true,
	"hebrew":               true,
	"kannada":              true,
	"lao":                  true,
	"malayalam":            true,
	"mongolian":            true,
	"myanmar":              true,
	"oriya":                true,
	"persian":              true,
	"lower-roman":          true,
	"upper-roman":          true,
	"tamil":                true,
	"telugu":               true,
	"thai":                 true,
	"tibetan":              true,
	// simple alphabetic
	"lower-alpha":    true,
	"lower-latin":    true,
	"upper-alpha":    true,
	"upper-latin":    true,
	"lower-greek":    true,
	"hiragana":       true,
	"hiragana-iroha": true,
	"katakana":       true,
	"katakana-iroha": true,
	// simple symbolic
	"disc":              true,
	"circle":            true,
	"square":            true,
	"disclosure-open":   true,
	"disclosure-closed": true,
	// simple fixed
	"cjk-earthly-branch": true,
	"cjk-heavenly-stem":  true,
	// complex cjk
	"japanese-informal":     true,
	"japanese-formal":       true,
	"korean-hangul-formal":  true,
	"korean-hanja-informal": true,
	"korean-hanja-formal":   true,
	"simp-chinese-informal": true,
	"simp-chinese-formal":   true,
	"trad-chinese-informal": true,
	"trad-chinese-formal":   true,
	"ethiopic-numeric":      true,
	// keyword values
	"none": true,
	// global values
	"initial":      true,
	"inherit":      true,
	"unset":        true,
	"revert":       true,
	"revert-layer": true,
}

type listStyleReserved struct{}

func (listStyleReserved) check(ident string) bool {
	return !listStyleReservedNames[ident]
}

func (listStyleReserved) reset() {}

// Only dashed idents name custom palettes in a "font-palette" value.
type fontPaletteReserved struct{}

func (fontPaletteReserved) check(ident string) bool {
	return strings.HasPrefix(ident, "--")
}

func (fontPaletteReserved) reset() {}
