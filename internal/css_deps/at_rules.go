package css_deps

import (
	"strings"

	"github.com/ahabhgk/css-module-lexer/internal/css_ast"
	"github.com/ahabhgk/css-module-lexer/internal/css_lexer"
	"github.com/ahabhgk/css-module-lexer/internal/logger"
)

// Declaration entry points for the at-rules that introduce local names:
// "@keyframes", "@property", "@counter-style", and "@font-palette-values".
// The at-keyword handler drives the lexer through the whole prelude here,
// right up to the "{".

func (a *analyzer) lexLocalKeyframesDecl(lexer *css_lexer.Lexer) {
	lexer.ConsumeWhitespaceAndComments()
	isFunction := false
	if lexer.Cur() == ':' {
		// An optional ":local"/":global" wrapper, in pseudo or function form
		start := lexer.CurPos()
		lexer.ConsumePotentialPseudo(a)
		end := lexer.CurPos()
		pseudo := lexer.Slice(start, end)
		md := a.modeData
		if md.isPureMode() && (strings.EqualFold(pseudo, ":global(") || strings.EqualFold(pseudo, ":global")) {
			a.warn(css_ast.WarningNotPure, start, end, "'@keyframes :global' is not allowed in pure mode")
		}
		isFunction = strings.EqualFold(pseudo, ":local(") || strings.EqualFold(pseudo, ":global(")
		if !isFunction && !strings.EqualFold(pseudo, ":local") && !strings.EqualFold(pseudo, ":global") {
			a.warn(css_ast.WarningUnexpected, start, end,
				"Expected ':local', ':local()', ':global', or ':global()' during parsing of '@keyframes' name")
			return
		}
		lexer.ConsumeWhitespaceAndComments()
	}
	start := lexer.CurPos()
	if !css_lexer.StartIdentSequence(lexer.Cur(), lexer.Peek(), lexer.Peek2()) {
		a.warn(css_ast.WarningUnexpected, start, lexer.Peek2Pos(),
			"Expected ident during parsing of '@keyframes' name")
		return
	}
	lexer.ConsumeIdentSequence()
	end := lexer.CurPos()
	md := a.modeData
	if md.isCurrentLocalMode() {
		a.onDependency(css_ast.DepLocalKeyframesDecl{
			Name:  lexer.Slice(start, end),
			Range: logger.RangeBetween(start, end),
		})
	}
	lexer.ConsumeWhitespaceAndComments()
	if isFunction {
		if lexer.Cur() != ')' {
			a.warn(css_ast.WarningUnexpected, lexer.CurPos(), lexer.PeekPos(),
				"Expected ')' during parsing of '@keyframes :local(' or '@keyframes :global('")
			return
		}
		a.replace(lexer.CurPos(), lexer.PeekPos())
		// The pseudo handler already opened a mode function frame; close it
		// here since the ")" will never reach the right-parenthesis handler
		md.insideModeFunction--
		a.balanced.popWithoutModeData()
		lexer.Consume()
		lexer.ConsumeWhitespaceAndComments()
	}
	if lexer.Cur() != '{' {
		a.warn(css_ast.WarningUnexpected, lexer.CurPos(), lexer.PeekPos(),
			"Expected '{' during parsing of '@keyframes'")
	}
}

func (a *analyzer) lexLocalCounterStyleDecl(lexer *css_lexer.Lexer) {
	lexer.ConsumeWhitespaceAndComments()
	start := lexer.CurPos()
	if !css_lexer.StartIdentSequence(lexer.Cur(), lexer.Peek(), lexer.Peek2()) {
		a.warn(css_ast.WarningUnexpected, start, lexer.Peek2Pos(),
			"Expected ident during parsing of '@counter-style'")
		return
	}
	lexer.ConsumeIdentSequence()
	end := lexer.CurPos()
	a.onDependency(css_ast.DepLocalCounterStyleDecl{
		Name:  lexer.Slice(start, end),
		Range: logger.RangeBetween(start, end),
	})
	lexer.ConsumeWhitespaceAndComments()
	if lexer.Cur() != '{' {
		a.warn(css_ast.WarningUnexpected, lexer.CurPos(), lexer.PeekPos(),
			"Expected '{' during parsing of '@counter-style'")
	}
}

// Shared by "@property" and "@font-palette-values": both expect a dashed
// ident and then a block. The emitted name excludes the dashes; the range
// covers them.
func (a *analyzer) lexLocalDashedIdentDecl(
	lexer *css_lexer.Lexer,
	makeDependency func(name string, rng logger.Range) css_ast.Dependency,
	dashedMessage string,
	leftCurlyMessage string,
) {
	lexer.ConsumeWhitespaceAndComments()
	start := lexer.CurPos()
	if lexer.Cur() != '-' || lexer.Peek() != '-' {
		a.warn(css_ast.WarningUnexpected, start, lexer.Peek2Pos(), dashedMessage)
		return
	}
	lexer.ConsumeIdentSequence()
	nameStart := start + 2
	end := lexer.CurPos()
	a.onDependency(makeDependency(lexer.Slice(nameStart, end), logger.RangeBetween(start, end)))
	lexer.ConsumeWhitespaceAndComments()
	if lexer.Cur() != '{' {
		a.warn(css_ast.WarningUnexpected, lexer.CurPos(), lexer.PeekPos(), leftCurlyMessage)
	}
}

// Commit helpers for the property context analyzers. Each takes the pending
// rename candidate, provided the balanced depth matches the depth the
// property was entered at, and emits the local reference.

func (a *analyzer) handleLocalKeyframesDependency(lexer *css_lexer.Lexer) {
	animation := a.inAnimationProperty
	if rng, ok := animation.takeRename(a.balanced.len()); ok {
		a.onDependency(css_ast.DepLocalKeyframes{
			Name:  lexer.Slice(rng.Loc.Start, rng.End()),
			Range: rng,
		})
	}
	// A following position in the same shorthand separates keywords from
	// names on its own
	animation.resetReserved()
}

func (a *analyzer) handleLocalCounterStyleDependency(lexer *css_lexer.Lexer) {
	listStyle := a.inListStyleProperty
	if rng, ok := listStyle.takeRename(a.balanced.len()); ok {
		a.onDependency(css_ast.DepLocalCounterStyle{
			Name:  lexer.Slice(rng.Loc.Start, rng.End()),
			Range: rng,
		})
	}
}

func (a *analyzer) handleLocalFontPaletteDependency(lexer *css_lexer.Lexer) {
	fontPalette := a.inFontPaletteProperty
	if rng, ok := fontPalette.takeRename(a.balanced.len()); ok {
		a.onDependency(css_ast.DepLocalFontPalette{
			Name:  lexer.Slice(rng.Loc.Start+2, rng.End()),
			Range: rng,
		})
	}
}
