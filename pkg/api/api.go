// This API exposes the CSS-module-aware dependency lexer as a library. A
// single pass over a CSS source text produces a stream of dependencies (url
// references, @import directives, local class/id/keyframes/var declarations
// and references, composes relations, and ICSS bindings) and a stream of
// warnings describing recoverable semantic issues.
//
// Example usage:
//
//	package main
//
//	import (
//	    "fmt"
//
//	    "github.com/ahabhgk/css-module-lexer/pkg/api"
//	)
//
//	func main() {
//	    dependencies, warnings := api.CollectDependencies(
//	        ".foo { composes: bar from './bar.css'; }", api.ModeLocal)
//
//	    for _, dependency := range dependencies {
//	        fmt.Printf("%T%+v\n", dependency, dependency)
//	    }
//	    for _, warning := range warnings {
//	        fmt.Println(warning)
//	    }
//	}
//
// All string fields of the returned values are subslices of the input, so
// the input stays reachable as long as they do. Two calls on different
// inputs share no state and may run concurrently.
package api

import "fmt"

// Mode selects how much CSS-Modules behavior applies. ModeCSS disables all
// of it: only url() and @import dependencies are reported. ModePure behaves
// like ModeLocal but additionally requires every selector to contain at
// least one local class or id.
type Mode uint8

const (
	ModeLocal Mode = iota
	ModeGlobal
	ModePure
	ModeCSS
)

// Range is a half-open pair of byte offsets into the input.
type Range struct {
	Start int32
	End   int32
}

// URLKind says how a url dependency was written. URLFunction marks an
// unquoted "url(...)" token and a quoted string directly inside
// "image-set(...)"; URLString marks a quoted string inside "url(...)".
type URLKind uint8

const (
	URLFunction URLKind = iota
	URLString
)

// Dependency is one of: URL, Import, Replace, LocalClass, LocalID,
// LocalVar, LocalVarDecl, LocalPropertyDecl, LocalKeyframes,
// LocalKeyframesDecl, LocalCounterStyle, LocalCounterStyleDecl,
// LocalFontPalette, LocalFontPaletteDecl, Composes, ICSSImportFrom,
// ICSSImportValue, ICSSExportValue.
type Dependency interface {
	isDependency()
}

// A "url(...)" token or a url-like string. The request preserves escapes
// verbatim.
type URL struct {
	Request string
	Range   Range
	Kind    URLKind
}

// A complete "@import" directive. Layer distinguishes a missing layer (nil),
// the bare "layer" keyword (pointer to ""), and "layer(...)" contents;
// Supports works the same way. Media is the trailing media query text or
// nil.
type Import struct {
	Request  string
	Range    Range
	Layer    *string
	Supports *string
	Media    *string
}

// An instruction to a downstream rewriter: substitute Content for the input
// slice covered by Range.
type Replace struct {
	Content string
	Range   Range
}

// A class selector in local mode. The name includes the leading ".".
type LocalClass struct {
	Name     string
	Range    Range
	Explicit bool
}

// An id selector in local mode. The name includes the leading "#".
type LocalID struct {
	Name     string
	Range    Range
	Explicit bool
}

// A "var(--name)" reference in a local declaration value.
type LocalVar struct {
	Name  string
	Range Range
	From  *string
}

// A "--name:" declaration in a local rule.
type LocalVarDecl struct {
	Name  string
	Range Range
}

// An "@property --name" declaration.
type LocalPropertyDecl struct {
	Name  string
	Range Range
}

// An animation name referenced from an "animation" or "animation-name"
// value.
type LocalKeyframes struct {
	Name  string
	Range Range
}

// A "@keyframes name" declaration in local mode.
type LocalKeyframesDecl struct {
	Name  string
	Range Range
}

// A counter style referenced from a "list-style" or "list-style-type"
// value.
type LocalCounterStyle struct {
	Name  string
	Range Range
}

// A "@counter-style name" declaration.
type LocalCounterStyleDecl struct {
	Name  string
	Range Range
}

// A palette referenced from a "font-palette" value.
type LocalFontPalette struct {
	Name  string
	Range Range
}

// A "@font-palette-values --name" declaration.
type LocalFontPaletteDecl struct {
	Name  string
	Range Range
}

// One segment of a "composes:" declaration.
type Composes struct {
	LocalClasses []string
	Names        []string
	From         *string
	Range        Range
}

// The path of an ICSS ":import('path') { ... }" block.
type ICSSImportFrom struct {
	Path string
}

// One "prop: value" pair inside an ICSS ":import(...)" block.
type ICSSImportValue struct {
	Prop  string
	Value string
}

// One "prop: value" pair inside an ICSS ":export" block.
type ICSSExportValue struct {
	Prop  string
	Value string
}

func (URL) isDependency()                   {}
func (Import) isDependency()                {}
func (Replace) isDependency()               {}
func (LocalClass) isDependency()            {}
func (LocalID) isDependency()               {}
func (LocalVar) isDependency()              {}
func (LocalVarDecl) isDependency()          {}
func (LocalPropertyDecl) isDependency()     {}
func (LocalKeyframes) isDependency()        {}
func (LocalKeyframesDecl) isDependency()    {}
func (LocalCounterStyle) isDependency()     {}
func (LocalCounterStyleDecl) isDependency() {}
func (LocalFontPalette) isDependency()      {}
func (LocalFontPaletteDecl) isDependency()  {}
func (Composes) isDependency()              {}
func (ICSSImportFrom) isDependency()        {}
func (ICSSImportValue) isDependency()       {}
func (ICSSExportValue) isDependency()       {}

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

// Warning describes a recoverable semantic issue found during the lex. Text
// carries the kind's payload: a message, the offending input slice, the
// pseudo name, or "leading"/"trailing" for missing whitespace.
type Warning struct {
	Kind  WarningKind
	Range Range
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

// CollectDependencies lexes the input once and returns everything found, in
// source order of the start positions.
func CollectDependencies(input string, mode Mode) ([]Dependency, []Warning) {
	return collectDependenciesImpl(input, mode)
}

// Lex is the streaming form of CollectDependencies: the sinks are invoked
// synchronously while the single pass runs.
func Lex(input string, mode Mode, onDependency func(Dependency), onWarning func(Warning)) {
	lexImpl(input, mode, onDependency, onWarning)
}
