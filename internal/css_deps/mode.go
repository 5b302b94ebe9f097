package css_deps

import (
	"github.com/ahabhgk/css-module-lexer/internal/css_ast"
	"github.com/ahabhgk/css-module-lexer/internal/css_lexer"
	"github.com/ahabhgk/css-module-lexer/internal/logger"
)

// noPos marks an absent position. All real positions are non-negative.
const noPos int32 = -1

// Per-module CSS-Modules state. This only exists when the analyzer runs in a
// mode other than css_ast.ModeCSS.
type modeData struct {
	// The mode the module was configured with. Never changes.
	def css_ast.Mode

	// The mode selector emission currently happens under. Updated by the
	// balanced stack as mode frames are pushed and popped.
	current css_ast.Mode

	// The mode captured at the "{" of the current declaration block, so the
	// property analyzers inside the block see a stable mode.
	property css_ast.Mode

	// Set to the comma position after a selector whose final compound
	// resolved to global; cleared at "{". Together with resultingLocal this
	// detects selector groups that mix global and local results.
	resultingGlobal int32

	// The comma position after a selector that resolved to local.
	resultingLocal int32

	// In pure mode: the position where the current selector started being
	// suspect. Cleared when a local class or id is seen. If still set at
	// "{" or ",", the selector is impure.
	pureGlobal int32

	composesLocalClasses composesLocalClasses

	insideModeFunction int32
	insideModeClass    int32
}

func newModeData(mode css_ast.Mode) *modeData {
	return &modeData{
		def:             mode,
		current:         mode,
		property:        mode,
		resultingGlobal: noPos,
		resultingLocal:  noPos,
		pureGlobal:      0,
	}
}

func (md *modeData) isPureMode() bool {
	return md.def == css_ast.ModePure
}

func (md *modeData) isCurrentLocalMode() bool {
	return isLocalMode(md.current)
}

func (md *modeData) isPropertyLocalMode() bool {
	return isLocalMode(md.property)
}

func isLocalMode(mode css_ast.Mode) bool {
	switch mode {
	case css_ast.ModeLocal, css_ast.ModePure:
		return true
	case css_ast.ModeGlobal:
		return false
	default:
		panic("Internal error")
	}
}

func (md *modeData) defaultMode() css_ast.Mode {
	return md.def
}

func (md *modeData) setCurrentMode(mode css_ast.Mode) {
	md.current = mode
}

func (md *modeData) setPropertyMode(mode css_ast.Mode) {
	md.property = mode
}

func (md *modeData) isInsideModeFunction() bool {
	return md.insideModeFunction > 0
}

func (md *modeData) isInsideModeClass() bool {
	return md.insideModeClass > 0
}

func (md *modeData) isModeExplicit() bool {
	return md.isInsideModeFunction() || md.isInsideModeClass()
}

// "composes" is only valid when the owning rule's selector list is made of
// single local classes. This tracks that over the selector prelude at block
// nesting level zero: a lone local class is Single, anything else flips the
// state to Invalid, and a comma commits the current Single into the class
// list. At-rule preludes park the state in AtKeyword so they count as
// neither.
type singleLocalClass uint8

const (
	singleLocalClassInitial singleLocalClass = iota
	singleLocalClassSingle
	singleLocalClassAtKeyword
	singleLocalClassInvalid
)

type composesLocalClasses struct {
	isSingle     singleLocalClass
	singleRange  logger.Range
	localClasses []string
}

// validLocalClasses returns the classes the current rule applies to, or
// false when the selector was not eligible for composition.
func (c *composesLocalClasses) validLocalClasses(lexer *css_lexer.Lexer) ([]string, bool) {
	if c.isSingle == singleLocalClassSingle {
		classes := append([]string(nil), c.localClasses...)
		classes = append(classes, lexer.Slice(c.singleRange.Loc.Start, c.singleRange.End()))
		return classes, true
	}
	c.resetToInitial()
	return nil, false
}

func (c *composesLocalClasses) invalidate() {
	if c.isSingle != singleLocalClassAtKeyword {
		c.isSingle = singleLocalClassInvalid
	}
}

func (c *composesLocalClasses) findLocalClass(start int32, end int32) {
	switch c.isSingle {
	case singleLocalClassInitial:
		c.isSingle = singleLocalClassSingle
		c.singleRange = logger.RangeBetween(start, end)
	case singleLocalClassSingle:
		c.isSingle = singleLocalClassInvalid
	}
}

func (c *composesLocalClasses) findAtKeyword() {
	c.isSingle = singleLocalClassAtKeyword
}

func (c *composesLocalClasses) isAtKeyword() bool {
	return c.isSingle == singleLocalClassAtKeyword
}

func (c *composesLocalClasses) resetToInitial() {
	c.isSingle = singleLocalClassInitial
	c.localClasses = nil
}

func (c *composesLocalClasses) findComma(lexer *css_lexer.Lexer) {
	if c.isSingle == singleLocalClassSingle {
		c.localClasses = append(c.localClasses, lexer.Slice(c.singleRange.Loc.Start, c.singleRange.End()))
		c.isSingle = singleLocalClassInitial
	} else {
		c.isSingle = singleLocalClassInvalid
	}
}
