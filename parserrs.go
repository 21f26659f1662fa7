package exprgraph

import "strconv"

// BracketError is an error indicating mismatched parentheses in the input. It
// implements InputError.
type BracketError struct {
	// Col is the byte offset of the token that exposed the mismatch, or the
	// end of the input.
	Col int
	// End reports whether the mismatch was found at the end of the input.
	End bool
}

func (err *BracketError) Error() string {
	if err.End {
		return errpos(err.Col, "mismatched parentheses at end")
	}
	return errpos(err.Col, "mismatched parentheses")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// SeparatorError is an error indicating an illegal comma: a comma with no
// enclosing parenthesis, or one inside parentheses that are not a function
// call. It implements InputError.
type SeparatorError struct {
	// Col is the byte offset of the comma.
	Col int
	// Open reports whether any group was open when the comma appeared.
	Open bool
}

func (err *SeparatorError) Error() string {
	if !err.Open {
		return errpos(err.Col, "misplaced comma or mismatched parentheses")
	}
	return errpos(err.Col, "comma outside of function call")
}

func (err *SeparatorError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating a blank or whitespace-only
// expression. It implements InputError.
type EmptyExpressionError struct{}

func (err *EmptyExpressionError) Error() string {
	return "expression is empty"
}

func (err *EmptyExpressionError) Pos() int {
	return 0
}

// CallError is an error indicating a call of a known function with the wrong
// number of arguments.
type CallError struct {
	// Func is the function name that was called.
	Func string
	// Args is the number of arguments the call supplied.
	Args int
}

func (err *CallError) Error() string {
	return "cannot call " + err.Func + " with " + strconv.Itoa(err.Args) + " arguments"
}

// MalformedError is an error indicating a postfix program that does not reduce
// to a single value: an operator was short of operands, or operands were left
// over at the end.
type MalformedError struct {
	// Op is the operation that was short of operands, if any.
	Op Op
	// Rest is the number of leftover operands, when Op is OpNone.
	Rest int
}

func (err *MalformedError) Error() string {
	if err.Op != OpNone {
		return "malformed expression: missing operand for " + err.Op.String()
	}
	return "malformed expression: " + strconv.Itoa(err.Rest) + " values remain at end"
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error detected while
// scanning or parsing an expression implements InputError.
type InputError interface {
	error
	// Pos returns the byte offset of the input that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*SeparatorError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
)
