package exprgraph

import (
	"sort"
	"strconv"
	"strings"
)

// Expr is a parsed expression: a postfix program that can be evaluated with a
// context or compiled into a node graph.
type Expr struct {
	// rpn is the postfix token program, in evaluation order.
	rpn []rpnToken
	// names is the sorted list of lower-cased variable names used in the
	// expression. Reserved constants are not included.
	names []string
}

// rpnKind discriminates postfix tokens.
type rpnKind int8

const (
	rpnNone rpnKind = iota
	// rpnNum is a decimal literal; text holds its digits.
	rpnNum
	// rpnIdent is an unresolved identifier; text holds its name.
	rpnIdent
	// rpnOp is a binary operator; text holds its symbol.
	rpnOp
	// rpnNeg is the unary negation marker.
	rpnNeg
	// rpnFunc is a function call; text holds the name and arity the number of
	// arguments counted at parse time. Consumers never re-derive the arity.
	rpnFunc
)

type rpnToken struct {
	kind  rpnKind
	text  string
	arity int
}

func (t rpnToken) String() string {
	switch t.kind {
	case rpnNeg:
		return "neg"
	case rpnFunc:
		return t.text + "/" + strconv.Itoa(t.arity)
	default:
		return t.text
	}
}

// markKind discriminates operator-stack entries.
type markKind int8

const (
	markOp   markKind = iota // binary operator
	markNeg                  // unary negation
	markOpen                 // open parenthesis
	markFunc                 // function name, always directly under its markOpen
)

type mark struct {
	kind  markKind
	sym   string
	prec  int8
	right bool
	// call is set on a markOpen that opens a function argument list.
	call bool
}

func (m mark) token() rpnToken {
	switch m.kind {
	case markOp:
		return rpnToken{kind: rpnOp, text: m.sym}
	case markNeg:
		return rpnToken{kind: rpnNeg}
	default:
		panic("exprgraph: no token for mark " + strconv.Itoa(int(m.kind)))
	}
}

// binprec returns the precedence and associativity of a binary operator
// symbol. The table is fixed: ^ binds tightest and is right-associative, then
// * and /, then + and -, all left-associative.
func binprec(sym string) (prec int8, right bool) {
	switch sym {
	case "^":
		return 4, true
	case "*", "/":
		return 3, false
	case "+", "-":
		return 2, false
	default:
		panic("exprgraph: no precedence for operator " + strconv.Quote(sym))
	}
}

// negMark is the unary negation stack entry. It outbinds * and / but not ^, so
// that -2^2 is -(2^2).
var negMark = mark{kind: markNeg, prec: 3, right: true}

// Parse converts an infix expression to its postfix program using the
// shunting-yard algorithm. Identifiers are not resolved here; binding them to
// variables or constants is deferred to the evaluator or graph compiler.
func Parse(src string) (*Expr, error) {
	if strings.TrimSpace(src) == "" {
		return nil, &EmptyExpressionError{}
	}
	scan := lex(src)
	var (
		out   []rpnToken
		stack []mark
		arity []int
		names map[string]bool
		prev  lexToken
	)
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		if tok.kind == tokenEOF {
			break
		}
		switch tok.kind {
		case tokenNum:
			out = append(out, rpnToken{kind: rpnNum, text: tok.text})
		case tokenIdent:
			next, err := scan.peek()
			if err != nil {
				return nil, err
			}
			if next.kind == tokenOpen {
				// A call: push the function marker and its argument list
				// opener together, seeding the arity counter.
				scan.must()
				stack = append(stack,
					mark{kind: markFunc, sym: tok.text},
					mark{kind: markOpen, call: true})
				arity = append(arity, 1)
				prev = next
				continue
			}
			name := strings.ToLower(tok.text)
			if _, ok := constants[name]; !ok {
				if names == nil {
					names = make(map[string]bool)
				}
				names[name] = true
			}
			out = append(out, rpnToken{kind: rpnIdent, text: tok.text})
		case tokenOpen:
			stack = append(stack, mark{kind: markOpen})
		case tokenClose:
			for {
				if len(stack) == 0 {
					return nil, &BracketError{Col: tok.pos}
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.kind == markOpen {
					break
				}
				out = append(out, top.token())
			}
			if len(stack) > 0 && stack[len(stack)-1].kind == markFunc {
				fn := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				n := arity[len(arity)-1]
				arity = arity[:len(arity)-1]
				out = append(out, rpnToken{kind: rpnFunc, text: fn.sym, arity: n})
			}
		case tokenSep:
			for {
				if len(stack) == 0 {
					return nil, &SeparatorError{Col: tok.pos}
				}
				top := stack[len(stack)-1]
				if top.kind == markOpen {
					if !top.call {
						return nil, &SeparatorError{Col: tok.pos, Open: true}
					}
					arity[len(arity)-1]++
					break
				}
				stack = stack[:len(stack)-1]
				out = append(out, top.token())
			}
		case tokenOp:
			unary := prev.kind == tokenNone || prev.kind == tokenOp ||
				prev.kind == tokenOpen || prev.kind == tokenSep
			if unary && (tok.text == "-" || tok.text == "+") {
				// Unary plus is a no-op and emits nothing.
				if tok.text == "-" {
					stack = append(stack, negMark)
				}
				prev = tok
				continue
			}
			prec, right := binprec(tok.text)
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.kind != markOp && top.kind != markNeg {
					break
				}
				if (!right && prec <= top.prec) || (right && prec < top.prec) {
					stack = stack[:len(stack)-1]
					out = append(out, top.token())
					continue
				}
				break
			}
			stack = append(stack, mark{kind: markOp, sym: tok.text, prec: prec, right: right})
		default:
			panic("exprgraph: unknown token: " + tok.String())
		}
		prev = tok
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.kind == markOpen || top.kind == markFunc {
			return nil, &BracketError{Col: len(src), End: true}
		}
		out = append(out, top.token())
	}
	ex := Expr{
		rpn:   out,
		names: make([]string, 0, len(names)),
	}
	for k := range names {
		ex.names = append(ex.names, k)
	}
	sort.Strings(ex.names)
	return &ex, nil
}

// Vars returns the variable names the expression refers to, lower-cased and
// sorted. Reserved constants do not appear.
func (e *Expr) Vars() []string {
	return append([]string(nil), e.names...)
}

// String returns the postfix form of the expression, one token per field.
// Function tokens carry their arity, e.g. "8 2 log/2".
func (e *Expr) String() string {
	var b strings.Builder
	for i, t := range e.rpn {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String()
}
