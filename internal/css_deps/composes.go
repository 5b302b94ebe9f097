package css_deps

import (
	"strings"

	"github.com/ahabhgk/css-module-lexer/internal/css_ast"
	"github.com/ahabhgk/css-module-lexer/internal/css_lexer"
	"github.com/ahabhgk/css-module-lexer/internal/logger"
)

// lexComposes parses the value of a "composes:" (or "compose-with:")
// declaration: a comma-separated list of name groups, each optionally
// followed by "from <string-or-ident>" or "from global". Inline
// "global(name)" emits its own segment immediately. One Composes dependency
// is emitted per segment, and a final Replace covers the whole declaration
// so the downstream rewriter can drop it.
//
// "start" is the position of the "composes" ident itself.
func (a *analyzer) lexComposes(lexer *css_lexer.Lexer, localClasses []string, start int32) {
	lexer.ConsumeWhitespaceAndComments()
	if lexer.Cur() != ':' {
		return
	}
	lexer.Consume()
	var names []string
	var end int32
	for {
		lexer.ConsumeWhitespaceAndComments()
		segmentStart := lexer.CurPos()
		end = segmentStart
		hasFrom := false
	segment:
		for {
			c := lexer.Cur()
			if c == css_lexer.EOF {
				return
			}
			if c == ',' || c == ';' || c == '}' {
				break
			}
			maybeGlobalStart := lexer.CurPos()
			if lexer.Slice(maybeGlobalStart, maybeGlobalStart+7) == "global(" {
				for i := 0; i < 7; i++ {
					lexer.Consume()
				}
				nameStart := lexer.CurPos()
				if !css_lexer.StartIdentSequence(lexer.Cur(), lexer.Peek(), lexer.Peek2()) {
					a.warn(css_ast.WarningUnexpected, nameStart, lexer.Peek2Pos(),
						"Expected ident during parsing of 'composes'")
					return
				}
				lexer.ConsumeIdentSequence()
				nameEnd := lexer.CurPos()
				lexer.ConsumeWhitespaceAndComments()
				a.eat(lexer, ")", "Expected ')' during parsing of 'composes'")
				end = lexer.CurPos()
				from := "global"
				a.onDependency(css_ast.DepComposes{
					LocalClasses: localClasses,
					Names:        []string{lexer.Slice(nameStart, nameEnd)},
					From:         &from,
					Range:        logger.RangeBetween(maybeGlobalStart, lexer.CurPos()),
				})
			} else {
				nameStart := lexer.CurPos()
				if !css_lexer.StartIdentSequence(c, lexer.Peek(), lexer.Peek2()) {
					a.warn(css_ast.WarningUnexpected, nameStart, lexer.Peek2Pos(),
						"Expected ident during parsing of 'composes'")
					return
				}
				lexer.ConsumeIdentSequence()
				nameEnd := lexer.CurPos()
				if strings.EqualFold(lexer.Slice(nameStart, nameEnd), "from") {
					hasFrom = true
					break segment
				}
				names = append(names, lexer.Slice(nameStart, nameEnd))
				end = nameEnd
			}
			lexer.ConsumeWhitespaceAndComments()
		}
		lexer.ConsumeWhitespaceAndComments()
		c := lexer.Cur()
		if !hasFrom {
			if len(names) > 0 {
				a.onDependency(css_ast.DepComposes{
					LocalClasses: localClasses,
					Names:        names,
					Range:        logger.RangeBetween(segmentStart, end),
				})
				names = nil
			}
			if c == ',' {
				lexer.Consume()
				continue
			}
			break
		}
		pathStart := lexer.CurPos()
		if c == '\'' || c == '"' {
			lexer.ConsumeString(a, c)
		} else if css_lexer.StartIdentSequence(c, lexer.Peek(), lexer.Peek2()) {
			lexer.ConsumeIdentSequence()
		} else {
			a.warn(css_ast.WarningUnexpected, pathStart, lexer.PeekPos(),
				"Expected string or ident during parsing of 'composes'")
			return
		}
		pathEnd := lexer.CurPos()
		end = pathEnd
		from := lexer.Slice(pathStart, pathEnd)
		a.onDependency(css_ast.DepComposes{
			LocalClasses: localClasses,
			Names:        names,
			From:         &from,
			Range:        logger.RangeBetween(segmentStart, end),
		})
		names = nil
		lexer.ConsumeWhitespaceAndComments()
		if lexer.Cur() != ',' {
			break
		}
		lexer.Consume()
	}
	if lexer.Cur() == ';' {
		lexer.Consume()
		end = lexer.CurPos()
	}
	a.replace(start, end)
}

// lexLocalVar parses the inside of "var(": a dashed ident, optionally
// followed by an ICSS-style "from <path>".
func (a *analyzer) lexLocalVar(lexer *css_lexer.Lexer) {
	lexer.ConsumeWhitespaceAndComments()
	start := lexer.CurPos()
	if lexer.Cur() != '-' || lexer.Peek() != '-' {
		a.warn(css_ast.WarningUnexpected, start, lexer.Peek2Pos(),
			"Expected starts with '--' during parsing of 'var()'")
		return
	}
	lexer.ConsumeIdentSequence()
	nameStart := start + 2
	end := lexer.CurPos()
	lexer.ConsumeWhitespaceAndComments()
	fromStart := lexer.CurPos()
	var from *string
	if lexer.Slice(fromStart, fromStart+4) == "from" {
		lexer.Consume()
		lexer.Consume()
		lexer.Consume()
		lexer.Consume()
		lexer.ConsumeWhitespaceAndComments()
		c := lexer.Cur()
		pathStart := lexer.CurPos()
		if c == '\'' || c == '"' {
			lexer.ConsumeString(a, c)
		} else if css_lexer.StartIdentSequence(c, lexer.Peek(), lexer.Peek2()) {
			lexer.ConsumeIdentSequence()
		} else {
			a.warn(css_ast.WarningUnexpected, pathStart, lexer.PeekPos(),
				"Expected string or ident during parsing of 'var()'")
			return
		}
		path := lexer.Slice(pathStart, lexer.CurPos())
		from = &path
	}
	a.onDependency(css_ast.DepLocalVar{
		Name:  lexer.Slice(nameStart, end),
		Range: logger.RangeBetween(start, end),
		From:  from,
	})
}

// A "--name" ident at property position declares a custom property when a
// ":" follows.
func (a *analyzer) lexLocalVarDecl(lexer *css_lexer.Lexer, name string, start int32, end int32) {
	lexer.ConsumeWhitespaceAndComments()
	if lexer.Cur() != ':' {
		return
	}
	lexer.Consume()
	a.onDependency(css_ast.DepLocalVarDecl{
		Name:  name,
		Range: logger.RangeBetween(start, end),
	})
}
