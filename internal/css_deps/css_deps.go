package css_deps

import (
	"strings"

	"github.com/ahabhgk/css-module-lexer/internal/css_ast"
	"github.com/ahabhgk/css-module-lexer/internal/css_lexer"
	"github.com/ahabhgk/css-module-lexer/internal/logger"
)

// The analyzer is the concrete visitor behind the tokenizer. It tracks the
// scope state machine (top level, inside a block, assembling an "@import"),
// the CSS-Modules mode stack, the property context analyzers, and the
// composes eligibility of the current rule, and reports everything it finds
// through a pair of sinks. One analyzer handles exactly one input.

type scopeKind uint8

const (
	scopeTopLevel scopeKind = iota
	scopeInBlock
	scopeInAtImport
	scopeAtImportInvalid
	scopeAtNamespaceInvalid
)

type analyzer struct {
	modeData *modeData // nil disables all CSS-Modules behavior
	scope    scopeKind

	// Only meaningful while scope is scopeInAtImport
	importData *importData

	blockNestingLevel int32
	allowImportAtRule bool
	balanced          balancedStack
	isNextRulePrelude bool

	inAnimationProperty   *inProperty
	inListStyleProperty   *inProperty
	inFontPaletteProperty *inProperty

	onDependency func(css_ast.Dependency)
	onWarning    func(css_ast.Warning)
}

// Lex runs a single pass over the input, delivering dependencies and
// warnings to the sinks in source order of their start positions. The sinks
// are invoked synchronously; the string fields of everything they receive
// are subslices of the input.
func Lex(input string, mode css_ast.Mode, onDependency func(css_ast.Dependency), onWarning func(css_ast.Warning)) {
	a := analyzer{
		scope:             scopeTopLevel,
		allowImportAtRule: true,
		isNextRulePrelude: true,
		onDependency:      onDependency,
		onWarning:         onWarning,
	}
	if mode != css_ast.ModeCSS {
		a.modeData = newModeData(mode)
	}
	lexer := css_lexer.NewLexer(input)
	lexer.Lex(&a)
}

// CollectDependencies is the non-streaming form of Lex.
func CollectDependencies(input string, mode css_ast.Mode) (dependencies []css_ast.Dependency, warnings []css_ast.Warning) {
	Lex(input,
		mode,
		func(dependency css_ast.Dependency) { dependencies = append(dependencies, dependency) },
		func(warning css_ast.Warning) { warnings = append(warnings, warning) })
	return
}

func (a *analyzer) warn(kind css_ast.WarningKind, start int32, end int32, text string) {
	a.onWarning(css_ast.Warning{Kind: kind, Range: logger.RangeBetween(start, end), Text: text})
}

func (a *analyzer) replace(start int32, end int32) {
	a.onDependency(css_ast.DepReplace{Content: "", Range: logger.RangeBetween(start, end)})
}

// After a ";" or a "}" inside a block the next construct is either another
// declaration or a nested selector. Probing one token ahead is not strictly
// correct but it is good enough: IsSelector only matters when the next
// character is "#", ".", or ":", and a property always starts with an ident
// sequence.
func (a *analyzer) isNextNestedSyntax(lexer *css_lexer.Lexer) bool {
	lexer.ConsumeWhitespaceAndComments()
	c := lexer.Cur()
	if c == css_lexer.EOF || c == '}' {
		return false
	}
	return !css_lexer.StartIdentSequence(c, lexer.Peek(), lexer.Peek2())
}

// getMedia returns the media query text between the end of the last @import
// attribute and the semicolon, or nil when that slice holds nothing but
// whitespace and comments.
func (a *analyzer) getMedia(lexer *css_lexer.Lexer, start int32, end int32) *string {
	media := lexer.Slice(start, end)
	mediaLexer := css_lexer.NewLexer(media)
	mediaLexer.ConsumeWhitespaceAndComments()
	if mediaLexer.Cur() == css_lexer.EOF {
		return nil
	}
	return &media
}

func (a *analyzer) enterAnimationProperty() {
	a.inAnimationProperty = newInProperty(&animationReserved{}, a.balanced.len())
}

func (a *analyzer) enterListStyleProperty() {
	a.inListStyleProperty = newInProperty(listStyleReserved{}, a.balanced.len())
}

func (a *analyzer) enterFontPaletteProperty() {
	a.inFontPaletteProperty = newInProperty(fontPaletteReserved{}, a.balanced.len())
}

// backWhitespaceAndCommentsDistance scans backwards from "end" over
// whitespace and comments and returns how many bytes they span.
func (a *analyzer) backWhitespaceAndCommentsDistance(lexer *css_lexer.Lexer, end int32) int32 {
	back := lexer.TurnBack(end)
	back.Consume()
	for {
		if !back.ConsumeComments() {
			break
		}
		if css_lexer.IsWhitespace(back.Cur()) {
			back.ConsumeSpace()
		} else {
			break
		}
	}
	return back.CurPos()
}

// shouldHaveAfterWhitespace reports whether a bare ":local"/":global" needs
// trailing whitespace: true when it directly follows an opening parenthesis,
// a comma, a semicolon, a closing brace, whitespace, or the start of the
// input (comments in between are skipped), false otherwise.
func (a *analyzer) shouldHaveAfterWhitespace(lexer *css_lexer.Lexer, end int32) bool {
	back := lexer.TurnBack(end)
	hasWhitespace := false
	back.Consume()
	for {
		if !back.ConsumeComments() {
			return true
		}
		c := back.Cur()
		if c == css_lexer.EOF {
			return true
		}
		if css_lexer.IsWhitespace(c) {
			hasWhitespace = true
			back.ConsumeSpace()
		} else {
			break
		}
	}
	c := back.Cur()
	if c == '(' || c == ',' || c == ';' || c == '}' {
		return true
	}
	return hasWhitespace
}

func (a *analyzer) hasAfterWhitespace(lexer *css_lexer.Lexer) bool {
	hasWhitespace := false
	for {
		lexer.ConsumeComments()
		if css_lexer.IsWhitespace(lexer.Cur()) {
			hasWhitespace = true
			lexer.ConsumeSpace()
		} else {
			break
		}
	}
	return hasWhitespace
}

func (a *analyzer) eat(lexer *css_lexer.Lexer, chars string, message string) bool {
	c := lexer.Cur()
	if c == css_lexer.EOF || !strings.ContainsRune(chars, c) {
		a.warn(css_ast.WarningUnexpected, lexer.CurPos(), lexer.PeekPos(), message)
		return false
	}
	lexer.Consume()
	return true
}

func (a *analyzer) IsSelector(lexer *css_lexer.Lexer) bool {
	return a.isNextRulePrelude
}

func (a *analyzer) URL(lexer *css_lexer.Lexer, start int32, end int32, contentStart int32, contentEnd int32) {
	value := lexer.Slice(contentStart, contentEnd)
	switch a.scope {
	case scopeInAtImport:
		importData := a.importData
		if importData.inSupports() {
			return
		}
		if importData.hasURL {
			a.warn(css_ast.WarningDuplicateURL, importData.start, end, lexer.Slice(importData.start, end))
			return
		}
		importData.url = value
		importData.hasURL = true
		importData.urlRange = logger.RangeBetween(start, end)
		importData.hasURLRange = true

	case scopeInBlock:
		a.onDependency(css_ast.DepURL{
			Request: value,
			Range:   logger.RangeBetween(start, end),
			Kind:    css_ast.URLFunction,
		})
	}
}

func (a *analyzer) String(lexer *css_lexer.Lexer, start int32, end int32) {
	switch a.scope {
	case scopeInAtImport:
		importData := a.importData
		insideURL := false
		if last := a.balanced.last(); last != nil && last.kind == itemURL {
			insideURL = true
		}

		// Do not parse URLs in "supports(...)", and don't let other strings
		// overwrite a URL we already have
		if importData.inSupports() || (!insideURL && importData.hasURL) {
			return
		}

		if insideURL && importData.hasURL {
			a.warn(css_ast.WarningDuplicateURL, importData.start, end, lexer.Slice(importData.start, end))
			return
		}

		importData.url = lexer.Slice(start+1, end-1)
		importData.hasURL = true
		// For url("...") the full range is determined at the ")"
		if !insideURL {
			importData.urlRange = logger.RangeBetween(start, end)
			importData.hasURLRange = true
		}

	case scopeInBlock:
		last := a.balanced.last()
		if last == nil {
			return
		}
		var kind css_ast.URLKind
		switch last.kind {
		case itemURL:
			kind = css_ast.URLString
		case itemImageSet:
			kind = css_ast.URLFunction
		default:
			return
		}
		a.onDependency(css_ast.DepURL{
			Request: lexer.Slice(start+1, end-1),
			Range:   logger.RangeBetween(start, end),
			Kind:    kind,
		})
	}
}

func (a *analyzer) AtKeyword(lexer *css_lexer.Lexer, start int32, end int32) {
	name := lexer.Slice(start, end)
	if strings.EqualFold(name, "@namespace") {
		a.scope = scopeAtNamespaceInvalid
		a.importData = nil
		a.warn(css_ast.WarningNamespaceNotSupportedInBundledCSS, start, end, "")
	} else if strings.EqualFold(name, "@import") {
		if !a.allowImportAtRule {
			a.scope = scopeAtImportInvalid
			a.importData = nil
			a.warn(css_ast.WarningNotPrecededAtImport, start, end, "")
			return
		}
		a.scope = scopeInAtImport
		a.importData = newImportData(start)
	} else if a.modeData != nil {
		if strings.EqualFold(name, "@keyframes") || withVendorPrefixedEq(name, "keyframes", true) {
			a.lexLocalKeyframesDecl(lexer)
		} else if strings.EqualFold(name, "@property") {
			a.lexLocalDashedIdentDecl(lexer,
				func(name string, rng logger.Range) css_ast.Dependency {
					return css_ast.DepLocalPropertyDecl{Name: name, Range: rng}
				},
				"Expected starts with '--' during parsing of '@property'",
				"Expected '{' during parsing of '@property'")
		} else if strings.EqualFold(name, "@counter-style") {
			a.lexLocalCounterStyleDecl(lexer)
		} else if strings.EqualFold(name, "@font-palette-values") {
			a.lexLocalDashedIdentDecl(lexer,
				func(name string, rng logger.Range) css_ast.Dependency {
					return css_ast.DepLocalFontPaletteDecl{Name: name, Range: rng}
				},
				"Expected starts with '--' during parsing of '@font-palette-values'",
				"Expected '{' during parsing of '@font-palette-values'")
		} else {
			// Property values inside at-rule preludes must not be scanned as
			// selectors. "@scope" is the exception: its prelude is one.
			a.isNextRulePrelude = strings.EqualFold(name, "@scope")
		}

		if a.blockNestingLevel == 0 {
			a.modeData.composesLocalClasses.findAtKeyword()
		}
		if a.modeData.isPureMode() {
			a.modeData.pureGlobal = noPos
		}
	}
}

func (a *analyzer) Semicolon(lexer *css_lexer.Lexer, start int32, end int32) {
	switch a.scope {
	case scopeInAtImport:
		a.semicolonInAtImport(lexer, start, end)

	case scopeAtImportInvalid, scopeAtNamespaceInvalid:
		a.scope = scopeTopLevel

	case scopeInBlock:
		if md := a.modeData; md != nil {
			md.pureGlobal = end

			if md.isPropertyLocalMode() {
				if a.inAnimationProperty != nil {
					a.handleLocalKeyframesDependency(lexer)
					a.inAnimationProperty = nil
				}
				if a.inListStyleProperty != nil {
					a.handleLocalCounterStyleDependency(lexer)
					a.inListStyleProperty = nil
				}
				if a.inFontPaletteProperty != nil {
					a.handleLocalFontPaletteDependency(lexer)
					a.inFontPaletteProperty = nil
				}
			}

			a.isNextRulePrelude = a.isNextNestedSyntax(lexer)
		}
	}
}

func (a *analyzer) semicolonInAtImport(lexer *css_lexer.Lexer, start int32, end int32) {
	importData := a.importData
	a.scope = scopeTopLevel
	a.importData = nil

	if !importData.hasURL {
		a.warn(css_ast.WarningExpectedURL, importData.start, end, lexer.Slice(importData.start, end))
		return
	}
	if !importData.hasURLRange {
		a.warn(css_ast.WarningUnexpected, start, end, "Unexpected ';' during parsing of '@import url()'")
		return
	}
	urlRange := importData.urlRange

	var layer *string
	if importData.hasLayer {
		if urlRange.Loc.Start > importData.layerRange.Loc.Start {
			a.warn(css_ast.WarningExpectedURLBefore, urlRange.Loc.Start, urlRange.End(),
				lexer.Slice(importData.layerRange.Loc.Start, urlRange.End()))
			return
		}
		layer = &importData.layerValue
	}

	var supports *string
	switch importData.supportsKind {
	case supportsInProgress:
		a.warn(css_ast.WarningUnexpected, start, end, "Unexpected ';' during parsing of 'supports()'")
	case supportsEnd:
		if urlRange.Loc.Start > importData.supportsRange.Loc.Start {
			a.warn(css_ast.WarningExpectedURLBefore, urlRange.Loc.Start, urlRange.End(),
				lexer.Slice(importData.supportsRange.Loc.Start, urlRange.End()))
			return
		}
		supports = &importData.supportsValue
	}

	if layerRange := importData.layerRangeOrNil(); layerRange != nil {
		if supportsRange := importData.supportsRangeOrNil(); supportsRange != nil {
			if layerRange.Loc.Start > supportsRange.Loc.Start {
				a.warn(css_ast.WarningExpectedLayerBefore, layerRange.Loc.Start, layerRange.End(),
					lexer.Slice(supportsRange.Loc.Start, layerRange.End()))
				return
			}
		}
	}

	lastEnd := urlRange.End()
	if r := importData.layerRangeOrNil(); r != nil {
		lastEnd = r.End()
	}
	if r := importData.supportsRangeOrNil(); r != nil {
		lastEnd = r.End()
	}

	a.onDependency(css_ast.DepImport{
		Request:  importData.url,
		Range:    logger.RangeBetween(importData.start, end),
		Layer:    layer,
		Supports: supports,
		Media:    a.getMedia(lexer, lastEnd, start),
	})
}

func (a *analyzer) Function(lexer *css_lexer.Lexer, start int32, end int32) {
	name := lexer.Slice(start, end)
	a.balanced.push(newBalancedItem(name, start, end), a.modeData)

	if a.scope == scopeInAtImport && strings.EqualFold(name, "supports(") {
		a.importData.supportsKind = supportsInProgress
	}

	if md := a.modeData; md != nil && md.isCurrentLocalMode() && strings.EqualFold(name, "var(") {
		a.lexLocalVar(lexer)
	}
}

func (a *analyzer) LeftParenthesis(lexer *css_lexer.Lexer, start int32, end int32) {
	a.balanced.push(newOtherBalancedItem(start, end), a.modeData)
}

func (a *analyzer) RightParenthesis(lexer *css_lexer.Lexer, start int32, end int32) {
	last, ok := a.balanced.pop(a.modeData)
	if !ok {
		return
	}

	if md := a.modeData; md != nil {
		isFunction := last.kind.isModeFunction()
		if last.kind.isModeClass() {
			// The ")" closes the enclosing frame, not the bare mode pseudo
			// classes stacked on top of it
			a.balanced.popModePseudoClass(md)
			if popped, ok := a.balanced.popWithoutModeData(); ok {
				isFunction = popped.kind.isModeFunction()
			} else {
				isFunction = false
			}
		}
		if isFunction {
			distance := a.backWhitespaceAndCommentsDistance(lexer, start)
			strippedStart := start - distance
			if strippedStart > 0 && lexer.Slice(strippedStart-1, strippedStart) == "(" {
				a.warn(css_ast.WarningUnexpected, strippedStart-1, end, "':global()' or ':local()' can't be empty")
			}
			a.replace(strippedStart, end)
		}
	}

	if a.scope == scopeInAtImport {
		importData := a.importData
		notInSupports := !importData.inSupports()
		if last.kind == itemURL && notInSupports {
			importData.urlRange = logger.RangeBetween(last.rng.Loc.Start, end)
			importData.hasURLRange = true
		} else if last.kind == itemLayer && notInSupports {
			importData.layerValue = lexer.Slice(last.rng.End(), end-1)
			importData.layerRange = logger.RangeBetween(last.rng.Loc.Start, end)
			importData.hasLayer = true
		} else if last.kind == itemSupports {
			importData.supportsValue = lexer.Slice(last.rng.End(), end-1)
			importData.supportsRange = logger.RangeBetween(last.rng.Loc.Start, end)
			importData.supportsKind = supportsEnd
		}
	}
}

func (a *analyzer) Ident(lexer *css_lexer.Lexer, start int32, end int32) {
	switch a.scope {
	case scopeInBlock:
		md := a.modeData
		if md == nil {
			return
		}
		ident := lexer.Slice(start, end)

		if md.isPropertyLocalMode() {
			if animation := a.inAnimationProperty; animation != nil {
				// Not inside functions
				if a.balanced.isEmpty() {
					animation.setRename(ident, logger.RangeBetween(start, end))
				}
				return
			}

			if listStyle := a.inListStyleProperty; listStyle != nil {
				// Not inside functions
				if a.balanced.isEmpty() {
					listStyle.setRename(ident, logger.RangeBetween(start, end))
				}
				return
			}

			if fontPalette := a.inFontPaletteProperty; fontPalette != nil {
				// Not inside functions, except directly inside palette-mix()
				if a.balanced.isEmpty() || (a.balanced.last() != nil && a.balanced.last().kind == itemPaletteMix) {
					fontPalette.setRename(ident, logger.RangeBetween(start, end))
				}
				return
			}

			if name, found := strings.CutPrefix(ident, "--"); found {
				a.lexLocalVarDecl(lexer, name, start, end)
				return
			}

			if strings.EqualFold(ident, "animation") ||
				strings.EqualFold(ident, "animation-name") ||
				withVendorPrefixedEq(ident, "animation", false) ||
				withVendorPrefixedEq(ident, "animation-name", false) {
				a.enterAnimationProperty()
				return
			}

			if strings.EqualFold(ident, "list-style") || strings.EqualFold(ident, "list-style-type") {
				a.enterListStyleProperty()
				return
			}

			if strings.EqualFold(ident, "font-palette") {
				a.enterFontPaletteProperty()
				return
			}
		}

		if strings.EqualFold(ident, "composes") || strings.EqualFold(ident, "compose-with") {
			if a.blockNestingLevel != 1 {
				a.warn(css_ast.WarningUnexpectedComposition, start, end, "not allowed in nested rule")
				return
			}
			localClasses, ok := md.composesLocalClasses.validLocalClasses(lexer)
			if !ok {
				a.warn(css_ast.WarningUnexpectedComposition, start, end, "only allowed when selector is single :local class")
				return
			}
			a.lexComposes(lexer, localClasses, start)
		}

	case scopeInAtImport:
		// A bare "layer" keyword, as opposed to "layer(...)"
		if a.balanced.isEmpty() && strings.EqualFold(lexer.Slice(start, end), "layer") {
			a.importData.layerValue = ""
			a.importData.layerRange = logger.RangeBetween(start, end)
			a.importData.hasLayer = true
		}

	case scopeTopLevel:
		if md := a.modeData; md != nil {
			md.composesLocalClasses.invalidate()
		}
	}
}

func (a *analyzer) Class(lexer *css_lexer.Lexer, start int32, end int32) {
	md := a.modeData
	if md == nil {
		return
	}
	name := lexer.Slice(start, end)
	if name == "." {
		a.warn(css_ast.WarningUnexpected, start, end, "Invalid class selector syntax")
		return
	}
	if md.isCurrentLocalMode() {
		a.onDependency(css_ast.DepLocalClass{
			Name:     name,
			Range:    logger.RangeBetween(start, end),
			Explicit: md.isModeExplicit(),
		})
		if a.blockNestingLevel == 0 {
			md.composesLocalClasses.findLocalClass(start+1, end)
		}
		if md.isPureMode() {
			md.pureGlobal = noPos
		}
	}
}

func (a *analyzer) ID(lexer *css_lexer.Lexer, start int32, end int32) {
	md := a.modeData
	if md == nil {
		return
	}
	name := lexer.Slice(start, end)
	if name == "#" {
		a.warn(css_ast.WarningUnexpected, start, end, "Invalid id selector syntax")
		return
	}
	if md.isCurrentLocalMode() {
		a.onDependency(css_ast.DepLocalID{
			Name:     name,
			Range:    logger.RangeBetween(start, end),
			Explicit: md.isModeExplicit(),
		})
		if a.blockNestingLevel == 0 {
			md.composesLocalClasses.invalidate()
		}
		if md.isPureMode() {
			md.pureGlobal = noPos
		}
	}
}

func (a *analyzer) LeftCurlyBracket(lexer *css_lexer.Lexer, start int32, end int32) {
	switch a.scope {
	case scopeTopLevel:
		a.allowImportAtRule = false
		a.scope = scopeInBlock
		// An at-rule prelude stays at nesting level zero so that the rules
		// inside it still count as top-level for composes eligibility
		if a.modeData == nil || !a.modeData.composesLocalClasses.isAtKeyword() {
			a.blockNestingLevel = 1
		}
	case scopeInBlock:
		a.blockNestingLevel++
	default:
		return
	}

	if md := a.modeData; md != nil {
		if md.isPureMode() && md.pureGlobal != noPos {
			a.warn(css_ast.WarningNotPure, md.pureGlobal, start,
				"Selector is not pure (pure selectors must contain at least one local class or id)")
		}

		wasLocal := md.isCurrentLocalMode()
		if md.resultingGlobal != noPos && wasLocal {
			a.warn(css_ast.WarningInconsistentModeResult, md.resultingGlobal, start, "")
		}
		if md.resultingLocal != noPos && !wasLocal {
			a.warn(css_ast.WarningInconsistentModeResult, md.resultingLocal, start, "")
		}
		md.resultingGlobal = noPos
		md.resultingLocal = noPos

		a.balanced.updatePropertyMode(md)
		a.balanced.popModePseudoClass(md)
		a.isNextRulePrelude = a.isNextNestedSyntax(lexer)
		if a.isNextRulePrelude && a.blockNestingLevel == 0 {
			md.composesLocalClasses.resetToInitial()
		}
	}
}

func (a *analyzer) RightCurlyBracket(lexer *css_lexer.Lexer, start int32, end int32) {
	if a.scope != scopeInBlock {
		return
	}

	if md := a.modeData; md != nil {
		md.pureGlobal = end

		if md.isPropertyLocalMode() {
			if a.inAnimationProperty != nil {
				a.handleLocalKeyframesDependency(lexer)
				a.inAnimationProperty = nil
			}
			if a.inListStyleProperty != nil {
				a.handleLocalCounterStyleDependency(lexer)
				a.inListStyleProperty = nil
			}
			if a.inFontPaletteProperty != nil {
				a.handleLocalFontPaletteDependency(lexer)
				a.inFontPaletteProperty = nil
			}
		}
	}

	if a.blockNestingLevel > 0 {
		a.blockNestingLevel--
	}
	if a.blockNestingLevel == 0 {
		a.scope = scopeTopLevel
		if md := a.modeData; md != nil {
			a.isNextRulePrelude = true
			md.composesLocalClasses.resetToInitial()
		}
	} else if a.modeData != nil {
		a.isNextRulePrelude = a.isNextNestedSyntax(lexer)
	}
}

func (a *analyzer) PseudoFunction(lexer *css_lexer.Lexer, start int32, end int32) {
	name := lexer.Slice(start, end)
	if md := a.modeData; md != nil {
		if strings.EqualFold(name, ":import(") {
			a.lexICSSImport(lexer)
			a.replace(start, lexer.CurPos())
			return
		}
		if strings.EqualFold(name, ":global(") || strings.EqualFold(name, ":local(") {
			if md.isInsideModeFunction() {
				a.warn(css_ast.WarningExpectedNotInside, start, end, name)
			}

			// Strip the wrapper and the whitespace after it
			lexer.ConsumeWhitespaceAndComments()
			a.replace(start, lexer.CurPos())
		} else if a.blockNestingLevel == 0 {
			md.composesLocalClasses.invalidate()
		}
	}
	a.balanced.push(newBalancedItem(name, start, end), a.modeData)
}

func (a *analyzer) PseudoClass(lexer *css_lexer.Lexer, start int32, end int32) {
	md := a.modeData
	if md == nil {
		return
	}
	name := lexer.Slice(start, end)
	if strings.EqualFold(name, ":global") || strings.EqualFold(name, ":local") {
		if md.isInsideModeFunction() {
			a.warn(css_ast.WarningExpectedNotInside, start, end, name)
		}

		shouldHaveAfterWhitespace := a.shouldHaveAfterWhitespace(lexer, start)
		hasAfterWhitespace := a.hasAfterWhitespace(lexer)
		c := lexer.Cur()
		if shouldHaveAfterWhitespace && !(hasAfterWhitespace || c == ')' || c == '{' || c == ',') {
			a.warn(css_ast.WarningMissingWhitespace, start, end, "trailing")
		}
		if !shouldHaveAfterWhitespace && hasAfterWhitespace {
			a.warn(css_ast.WarningMissingWhitespace, start, end, "leading")
		}

		a.balanced.push(newBalancedItem(name, start, end), a.modeData)
		a.replace(start, lexer.CurPos())
		return
	}

	if a.scope == scopeTopLevel && strings.EqualFold(name, ":export") {
		a.lexICSSExport(lexer)
		a.replace(start, lexer.CurPos())
		return
	}

	if a.blockNestingLevel == 0 {
		md.composesLocalClasses.invalidate()
	}
}

func (a *analyzer) Comma(lexer *css_lexer.Lexer, start int32, end int32) {
	md := a.modeData
	if md == nil {
		return
	}

	if md.isPureMode() && md.pureGlobal != noPos {
		a.warn(css_ast.WarningNotPure, md.pureGlobal, start,
			"Selector is not pure (pure selectors must contain at least one local class or id)")
	}
	md.pureGlobal = end

	if a.blockNestingLevel == 0 {
		md.composesLocalClasses.findComma(lexer)
	}

	wasLocal := md.isCurrentLocalMode()
	if md.resultingGlobal != noPos && wasLocal {
		a.warn(css_ast.WarningInconsistentModeResult, md.resultingGlobal, start, "")
	}
	if md.resultingLocal != noPos && !wasLocal {
		a.warn(css_ast.WarningInconsistentModeResult, md.resultingLocal, start, "")
	}

	if a.balanced.len() == 1 {
		last := a.balanced.last()
		isLocalClass := last.kind == itemLocalClass
		isGlobalClass := last.kind == itemGlobalClass
		if isLocalClass || isGlobalClass {
			a.balanced.popModePseudoClass(md)
			if md.resultingGlobal == noPos && isGlobalClass {
				md.resultingGlobal = start
			}
		}
	}
	// Only selector-list commas record a local result; commas inside
	// declaration values and inside pseudo functions do not separate
	// selectors
	if wasLocal && md.resultingLocal == noPos && a.balanced.isEmpty() && a.isNextRulePrelude {
		md.resultingLocal = start
	}

	if a.scope == scopeInBlock && md.isPropertyLocalMode() {
		if a.inAnimationProperty != nil {
			a.handleLocalKeyframesDependency(lexer)
		}
		if a.inListStyleProperty != nil {
			a.handleLocalCounterStyleDependency(lexer)
		}
		if a.inFontPaletteProperty != nil {
			a.handleLocalFontPaletteDependency(lexer)
		}
	}
}
