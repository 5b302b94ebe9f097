package css_ast

import (
	"fmt"

	"github.com/ahabhgk/css-module-lexer/internal/logger"
)

// The analyzer does not build a syntax tree. Its entire output is a stream of
// dependencies and a stream of warnings, both in source order. Every string
// in these values is either a subslice of the original input or a fixed
// literal, so the input must be kept alive as long as the values are used.

// Mode selects how much CSS-Modules behavior the analyzer applies. ModeCSS
// disables all of it: only url() and @import dependencies are reported.
type Mode uint8

const (
	ModeLocal Mode = iota
	ModeGlobal
	ModePure
	ModeCSS
)

func (mode Mode) String() string {
	switch mode {
	case ModeLocal:
		return "local"
	case ModeGlobal:
		return "global"
	case ModePure:
		return "pure"
	case ModeCSS:
		return "css"
	default:
		panic("Internal error")
	}
}

// URLKind says how a url dependency was written. URLFunction marks an
// unquoted "url(...)" token and a quoted string directly inside
// "image-set(...)"; URLString marks a quoted string inside "url(...)". The
// range of a quoted string covers the string, quotes included.
type URLKind uint8

const (
	URLFunction URLKind = iota
	URLString
)

func (kind URLKind) String() string {
	if kind == URLString {
		return "string"
	}
	return "function"
}

// Dependency is a tagged sum over everything the analyzer can report.
type Dependency interface {
	isDependency()
}

// A "url(...)" token or a url-like string. The request preserves escapes
// verbatim; consumers decode them.
type DepURL struct {
	Request string
	Range   logger.Range
	Kind    URLKind
}

// A complete "@import" directive. Layer distinguishes a missing layer (nil),
// the bare "layer" keyword (pointer to ""), and "layer(...)" contents.
// Supports works the same way. Media is the trailing media query text
// including leading whitespace, or nil.
type DepImport struct {
	Request  string
	Range    logger.Range
	Layer    *string
	Supports *string
	Media    *string
}

// An instruction to a downstream rewriter: substitute Content for the input
// slice covered by Range. Used to strip ":local"/":global" wrappers, ICSS
// blocks, and "composes" declarations.
type DepReplace struct {
	Content string
	Range   logger.Range
}

// A class selector in local mode. The name includes the leading ".".
// Explicit is true when the localness comes from an enclosing ":local" or
// ":local(...)" rather than the default mode.
type DepLocalClass struct {
	Name     string
	Range    logger.Range
	Explicit bool
}

// An id selector in local mode. The name includes the leading "#".
type DepLocalID struct {
	Name     string
	Range    logger.Range
	Explicit bool
}

// A "var(--name)" reference in a local declaration value. The name excludes
// the dashes; the range covers them. From is an optional ICSS-style origin
// ("var(--name from './file.css')"), quotes included.
type DepLocalVar struct {
	Name  string
	Range logger.Range
	From  *string
}

// A "--name:" declaration in a local rule.
type DepLocalVarDecl struct {
	Name  string
	Range logger.Range
}

// An "@property --name" declaration.
type DepLocalPropertyDecl struct {
	Name  string
	Range logger.Range
}

// An animation name referenced from an "animation" or "animation-name" value.
type DepLocalKeyframes struct {
	Name  string
	Range logger.Range
}

// A "@keyframes name" declaration in local mode.
type DepLocalKeyframesDecl struct {
	Name  string
	Range logger.Range
}

// A counter style referenced from a "list-style" or "list-style-type" value.
type DepLocalCounterStyle struct {
	Name  string
	Range logger.Range
}

// A "@counter-style name" declaration.
type DepLocalCounterStyleDecl struct {
	Name  string
	Range logger.Range
}

// A palette referenced from a "font-palette" value. The name excludes the
// leading dashes.
type DepLocalFontPalette struct {
	Name  string
	Range logger.Range
}

// A "@font-palette-values --name" declaration.
type DepLocalFontPaletteDecl struct {
	Name  string
	Range logger.Range
}

// One segment of a "composes:" declaration. LocalClasses are the classes the
// owning rule applies to (without dots). From is nil for local composition,
// "global" for "from global" or inline "global(...)", or the quoted or
// unquoted path after "from".
type DepComposes struct {
	LocalClasses []string
	Names        []string
	From         *string
	Range        logger.Range
}

// The path of an ICSS ":import('path') { ... }" block.
type DepICSSImportFrom struct {
	Path string
}

// One "prop: value" pair inside an ICSS ":import(...)" block.
type DepICSSImportValue struct {
	Prop  string
	Value string
}

// One "prop: value" pair inside an ICSS ":export" block.
type DepICSSExportValue struct {
	Prop  string
	Value string
}

func (DepURL) isDependency()                   {}
func (DepImport) isDependency()                {}
func (DepReplace) isDependency()               {}
func (DepLocalClass) isDependency()            {}
func (DepLocalID) isDependency()               {}
func (DepLocalVar) isDependency()              {}
func (DepLocalVarDecl) isDependency()          {}
func (DepLocalPropertyDecl) isDependency()     {}
func (DepLocalKeyframes) isDependency()        {}
func (DepLocalKeyframesDecl) isDependency()    {}
func (DepLocalCounterStyle) isDependency()     {}
func (DepLocalCounterStyleDecl) isDependency() {}
func (DepLocalFontPalette) isDependency()      {}
func (DepLocalFontPaletteDecl) isDependency()  {}
func (DepComposes) isDependency()              {}
func (DepICSSImportFrom) isDependency()        {}
func (DepICSSImportValue) isDependency()       {}
func (DepICSSExportValue) isDependency()       {}

type WarningKind uint8

const (
	WarningUnexpected WarningKind = iota
	WarningDuplicateURL
	WarningNamespaceNotSupportedInBundledCSS
	WarningNotPrecededAtImport
	WarningExpectedURL
	WarningExpectedURLBefore
	WarningExpectedLayerBefore
	WarningInconsistentModeResult
	WarningExpectedNotInside
	WarningMissingWhitespace
	WarningNotPure
	WarningUnexpectedComposition
)

// Warning describes a recoverable semantic issue. Text carries the kind's
// single payload: a message, the offending slice ("when"), the pseudo name,
// or "leading"/"trailing" for missing whitespace.
type Warning struct {
	Kind  WarningKind
	Range logger.Range
	Text  string
}

func (w Warning) String() string {
	switch w.Kind {
	case WarningUnexpected:
		return w.Text
	case WarningDuplicateURL:
		return fmt.Sprintf("Duplicate of 'url(...)' in '%s'", w.Text)
	case WarningNamespaceNotSupportedInBundledCSS:
		return "'@namespace' is not supported in bundled CSS"
	case WarningNotPrecededAtImport:
		return "Any '@import' rules must precede all other rules"
	case WarningExpectedURL:
		return fmt.Sprintf("Expected URL in '%s'", w.Text)
	case WarningExpectedURLBefore:
		return fmt.Sprintf("An URL in '%s' should be before 'layer(...)' or 'supports(...)'", w.Text)
	case WarningExpectedLayerBefore:
		return fmt.Sprintf("The 'layer(...)' in '%s' should be before 'supports(...)'", w.Text)
	case WarningInconsistentModeResult:
		return "Inconsistent rule global/local (multiple selectors must result in the same mode for the rule)"
	case WarningExpectedNotInside:
		return fmt.Sprintf("A '%s' is not allowed inside of a ':local()' or ':global()'", w.Text)
	case WarningMissingWhitespace:
		return fmt.Sprintf("Missing %s whitespace", w.Text)
	case WarningNotPure:
		return fmt.Sprintf("Pure globals is not allowed in pure mode, %s", w.Text)
	case WarningUnexpectedComposition:
		return fmt.Sprintf("Composition is %s", w.Text)
	default:
		panic("Internal error")
	}
}
