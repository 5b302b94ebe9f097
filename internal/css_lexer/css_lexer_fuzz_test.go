//go:build go1.18

package css_lexer

import "testing"

type fuzzVisitor struct {
	input string
}

func (v *fuzzVisitor) check(start int32, end int32) {
	if start < 0 || start > end || end > int32(len(v.input)) {
		panic("Range out of bounds")
	}
}

func (v *fuzzVisitor) Function(lexer *Lexer, start int32, end int32) { v.check(start, end) }
func (v *fuzzVisitor) Ident(lexer *Lexer, start int32, end int32)    { v.check(start, end) }
func (v *fuzzVisitor) URL(lexer *Lexer, start int32, end int32, contentStart int32, contentEnd int32) {
	v.check(start, end)
	v.check(contentStart, contentEnd)
}
func (v *fuzzVisitor) String(lexer *Lexer, start int32, end int32)            { v.check(start, end) }
func (v *fuzzVisitor) IsSelector(lexer *Lexer) bool                           { return true }
func (v *fuzzVisitor) ID(lexer *Lexer, start int32, end int32)                { v.check(start, end) }
func (v *fuzzVisitor) Class(lexer *Lexer, start int32, end int32)             { v.check(start, end) }
func (v *fuzzVisitor) PseudoFunction(lexer *Lexer, start int32, end int32)    { v.check(start, end) }
func (v *fuzzVisitor) PseudoClass(lexer *Lexer, start int32, end int32)       { v.check(start, end) }
func (v *fuzzVisitor) LeftParenthesis(lexer *Lexer, start int32, end int32)   { v.check(start, end) }
func (v *fuzzVisitor) RightParenthesis(lexer *Lexer, start int32, end int32)  { v.check(start, end) }
func (v *fuzzVisitor) LeftCurlyBracket(lexer *Lexer, start int32, end int32)  { v.check(start, end) }
func (v *fuzzVisitor) RightCurlyBracket(lexer *Lexer, start int32, end int32) { v.check(start, end) }
func (v *fuzzVisitor) Comma(lexer *Lexer, start int32, end int32)             { v.check(start, end) }
func (v *fuzzVisitor) Semicolon(lexer *Lexer, start int32, end int32)         { v.check(start, end) }
func (v *fuzzVisitor) AtKeyword(lexer *Lexer, start int32, end int32)         { v.check(start, end) }

func FuzzLex(f *testing.F) {
	f.Add([]byte(`body { color: red }`))
	f.Add([]byte(`url(https://example.com/foo)`))
	f.Add([]byte(`url("https://example.com/foo")`))
	f.Add([]byte(`url(bad url with spaces)`))
	f.Add([]byte(`"unclosed string`))
	f.Add([]byte(`'unclosed string`))
	f.Add([]byte(`/* unclosed comment`))
	f.Add([]byte(`\61\62\63`))
	f.Add([]byte(`#hash .class ::pseudo :nth-child(2n+1)`))
	f.Add([]byte(`calc(100% - 2px)`))
	f.Add([]byte(`@import url("style.css") layer(default) supports(display: grid) screen;`))

	f.Fuzz(func(t *testing.T, data []byte) {
		input := string(data)
		visitor := fuzzVisitor{input: input}
		lexer := NewLexer(input)
		lexer.Lex(&visitor)
	})
}
