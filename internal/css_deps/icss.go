package css_deps

import (
	"strings"

	"github.com/ahabhgk/css-module-lexer/internal/css_ast"
	"github.com/ahabhgk/css-module-lexer/internal/css_lexer"
)

// ICSS blocks shuttle named bindings between CSS-Modules files and their
// JavaScript consumers:
//
//	:import("./file.css") { imported-name: someName; }
//	:export { visibleName: local-value; }
//
// Both share the same "prop: value;" grammar. The analyzer drives the lexer
// through the whole construct from inside the pseudo handler and emits one
// dependency per pair; the caller then covers the construct with a Replace
// so the downstream rewriter drops it from the output.

func (a *analyzer) lexICSSImport(lexer *css_lexer.Lexer) {
	lexer.ConsumeWhitespaceAndComments()
	start := lexer.CurPos()
	for lexer.Cur() != ')' {
		if lexer.Cur() == css_lexer.EOF {
			return
		}
		lexer.Consume()
	}
	end := lexer.CurPos()
	a.onDependency(css_ast.DepICSSImportFrom{Path: lexer.Slice(start, end)})
	lexer.Consume()
	lexer.ConsumeWhitespaceAndComments()
	if !a.eat(lexer, "{", "Expected '{' during parsing of ':import()'") {
		return
	}
	lexer.ConsumeWhitespaceAndComments()
	for lexer.Cur() != '}' {
		if lexer.Cur() == css_lexer.EOF {
			return
		}
		lexer.ConsumeWhitespaceAndComments()
		propStart := lexer.CurPos()
		a.consumeICSSExportProp(lexer)
		propEnd := lexer.CurPos()
		lexer.ConsumeWhitespaceAndComments()
		if !a.eat(lexer, ":", "Expected ':' during parsing of ':import'") {
			return
		}
		lexer.ConsumeWhitespaceAndComments()
		valueStart := lexer.CurPos()
		a.consumeICSSExportValue(lexer)
		valueEnd := lexer.CurPos()
		if lexer.Cur() == ';' {
			lexer.Consume()
			lexer.ConsumeWhitespaceAndComments()
		}
		a.onDependency(css_ast.DepICSSImportValue{
			Prop:  trimTrailingWhitespace(lexer.Slice(propStart, propEnd)),
			Value: trimTrailingWhitespace(lexer.Slice(valueStart, valueEnd)),
		})
	}
	lexer.Consume()
}

func (a *analyzer) lexICSSExport(lexer *css_lexer.Lexer) {
	lexer.ConsumeWhitespaceAndComments()
	if !a.eat(lexer, "{", "Expected '{' during parsing of ':export'") {
		return
	}
	lexer.ConsumeWhitespaceAndComments()
	for lexer.Cur() != '}' {
		if lexer.Cur() == css_lexer.EOF {
			return
		}
		lexer.ConsumeWhitespaceAndComments()
		propStart := lexer.CurPos()
		a.consumeICSSExportProp(lexer)
		propEnd := lexer.CurPos()
		lexer.ConsumeWhitespaceAndComments()
		if !a.eat(lexer, ":", "Expected ':' during parsing of ':export'") {
			return
		}
		lexer.ConsumeWhitespaceAndComments()
		valueStart := lexer.CurPos()
		a.consumeICSSExportValue(lexer)
		valueEnd := lexer.CurPos()
		if lexer.Cur() == ';' {
			lexer.Consume()
			lexer.ConsumeWhitespaceAndComments()
		}
		a.onDependency(css_ast.DepICSSExportValue{
			Prop:  trimTrailingWhitespace(lexer.Slice(propStart, propEnd)),
			Value: trimTrailingWhitespace(lexer.Slice(valueStart, valueEnd)),
		})
	}
	lexer.Consume()
}

func (a *analyzer) consumeICSSExportProp(lexer *css_lexer.Lexer) {
	for {
		c := lexer.Cur()
		if c == css_lexer.EOF || c == ':' || c == '}' || c == ';' ||
			(c == '/' && lexer.Peek() == '*') {
			return
		}
		lexer.Consume()
	}
}

func (a *analyzer) consumeICSSExportValue(lexer *css_lexer.Lexer) {
	for {
		c := lexer.Cur()
		if c == css_lexer.EOF || c == '}' || c == ';' {
			return
		}
		lexer.Consume()
	}
}

func trimTrailingWhitespace(s string) string {
	return strings.TrimRightFunc(s, css_lexer.IsWhitespace)
}
