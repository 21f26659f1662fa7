package exprgraph

import "strconv"

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a decimal literal, without sign or exponent.
	tokenNum
	// tokenIdent is a variable, constant, or function name.
	tokenIdent
	// tokenOp is one of + - * / ^.
	tokenOp
	// tokenOpen is an open parenthesis.
	tokenOpen
	// tokenClose is a close parenthesis.
	tokenClose
	// tokenSep is the function argument separator, a comma.
	tokenSep
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenNum:
		return "Num"
	case tokenIdent:
		return "Ident"
	case tokenOp:
		return "Op"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	case tokenSep:
		return "Sep"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// lexer scans an expression string into tokens. It is a lazy single pass over
// the input; positions are byte offsets into src.
type lexer struct {
	src string
	pos int
	p   lexToken
}

func lex(src string) *lexer {
	return &lexer{src: src}
}

// push unreads a token so that it is the next token returned from next. Panics
// if there is already a pushed token.
func (l *lexer) push(tok lexToken) {
	if l.p.kind != tokenNone {
		panic("exprgraph: double push")
	}
	l.p = tok
}

// must consumes the pushed token. Panics if there is no pushed token.
func (l *lexer) must() lexToken {
	tok := l.p
	if tok.kind == tokenNone {
		panic("exprgraph: no pushed token")
	}
	l.p = lexToken{}
	return tok
}

// peek returns the next token without consuming it. The token is left pushed.
func (l *lexer) peek() (lexToken, error) {
	tok, err := l.next()
	if err != nil {
		return tok, err
	}
	l.push(tok)
	return tok, nil
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isIdentStart(c byte) bool {
	return c == '_' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isIdent(c byte) bool { return isIdentStart(c) || isDigit(c) }

// next scans the next token from the input. Once the input is exhausted, every
// call returns an EOF token.
func (l *lexer) next() (lexToken, error) {
	if l.p.kind != tokenNone {
		tok := l.p
		l.p = lexToken{}
		return tok, nil
	}
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if c == ' ' || c == '\t' {
			l.pos++
			continue
		}
		tok := lexToken{pos: l.pos}
		switch {
		case isDigit(c):
			tok.kind = tokenNum
			tok.text = l.scanNum()
			return tok, nil
		case isIdentStart(c):
			tok.kind = tokenIdent
			tok.text = l.scanIdent()
			return tok, nil
		case c == '(':
			tok.kind = tokenOpen
		case c == ')':
			tok.kind = tokenClose
		case c == ',':
			tok.kind = tokenSep
		case c == '+', c == '-', c == '*', c == '/', c == '^':
			tok.kind = tokenOp
		default:
			return tok, &LexError{Char: rune(c), Col: l.pos}
		}
		tok.text = l.src[l.pos : l.pos+1]
		l.pos++
		return tok, nil
	}
	return lexToken{kind: tokenEOF, pos: l.pos}, nil
}

// scanNum scans DIGITS(.DIGITS)?. A dot not followed by a digit is left in
// place; it does not belong to the number.
func (l *lexer) scanNum() string {
	start := l.pos
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.pos++
	}
	if l.pos+1 < len(l.src) && l.src[l.pos] == '.' && isDigit(l.src[l.pos+1]) {
		l.pos++
		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			l.pos++
		}
	}
	return l.src[start:l.pos]
}

func (l *lexer) scanIdent() string {
	start := l.pos
	for l.pos < len(l.src) && isIdent(l.src[l.pos]) {
		l.pos++
	}
	return l.src[start:l.pos]
}

// LexError indicates a character that cannot begin any token. It implements
// InputError.
type LexError struct {
	// Char is the offending character.
	Char rune
	// Col is the byte offset of Char in the input.
	Col int
}

func (err *LexError) Error() string {
	return errpos(err.Col, "unexpected character "+strconv.QuoteRune(err.Char))
}

func (err *LexError) Pos() int {
	return err.Col
}
