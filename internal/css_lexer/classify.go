package css_lexer

// Code point classification following https://drafts.csswg.org/css-syntax/#tokenizer-definitions

func isNewline(c rune) bool {
	switch c {
	case '\n', '\r', '\f':
		return true
	}
	return false
}

// IsWhitespace reports whether c is a CSS whitespace code point.
func IsWhitespace(c rune) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

func isWhitespace(c rune) bool {
	return IsWhitespace(c)
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c rune) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// IsIdentStart reports whether c can start an ident sequence. Any code point
// above U+0080 counts, so escapes are never needed for non-ASCII names.
func IsIdentStart(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_' || c > 0x80
}

// IsIdent reports whether c can continue an ident sequence.
func IsIdent(c rune) bool {
	return IsIdentStart(c) || isDigit(c) || c == '-'
}

func maybeValidEscape(c rune) bool {
	return c == '\\'
}

func areValidEscape(c1 rune, c2 rune) bool {
	return c1 == '\\' && !isNewline(c2)
}

// StartIdentSequence implements the three-code-point check for whether the
// stream would start an ident sequence.
func StartIdentSequence(c1 rune, c2 rune, c3 rune) bool {
	if c1 == '-' {
		return IsIdentStart(c2) || c2 == '-' || areValidEscape(c2, c3)
	}
	return IsIdentStart(c1) || areValidEscape(c1, c2)
}

// StartNumber implements the three-code-point check for whether the stream
// would start a number.
func StartNumber(c1 rune, c2 rune, c3 rune) bool {
	if c1 == '+' || c1 == '-' {
		return isDigit(c2) || (c2 == '.' && isDigit(c3))
	}
	return isDigit(c1) || (c1 == '.' && isDigit(c2))
}
