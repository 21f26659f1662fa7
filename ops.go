package exprgraph

import (
	"math"
	"strconv"
)

// Op identifies a primitive operation that a math node can perform. The set is
// closed: every operator, unary marker, and built-in function of the grammar
// maps onto exactly one Op.
type Op int8

const (
	OpNone Op = iota

	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
	OpPower

	OpNegate

	OpSine
	OpCosine
	OpTangent
	OpArcsine
	OpArccosine
	OpArctangent
	OpSqrt
	OpAbsolute
	OpExponent
	OpLn
	OpFloor
	OpCeil
	OpFraction

	OpLogarithm
	OpMinimum
	OpMaximum
	OpModulo
)

var opNames = [...]string{
	OpNone:       "NONE",
	OpAdd:        "ADD",
	OpSubtract:   "SUBTRACT",
	OpMultiply:   "MULTIPLY",
	OpDivide:     "DIVIDE",
	OpPower:      "POWER",
	OpNegate:     "NEGATE",
	OpSine:       "SINE",
	OpCosine:     "COSINE",
	OpTangent:    "TANGENT",
	OpArcsine:    "ARCSINE",
	OpArccosine:  "ARCCOSINE",
	OpArctangent: "ARCTANGENT",
	OpSqrt:       "SQRT",
	OpAbsolute:   "ABSOLUTE",
	OpExponent:   "EXPONENT",
	OpLn:         "LN",
	OpFloor:      "FLOOR",
	OpCeil:       "CEIL",
	OpFraction:   "FRACTION",
	OpLogarithm:  "LOGARITHM",
	OpMinimum:    "MINIMUM",
	OpMaximum:    "MAXIMUM",
	OpModulo:     "MODULO",
}

func (op Op) String() string {
	if op < 0 || int(op) >= len(opNames) {
		return "Op(" + strconv.Itoa(int(op)) + ")"
	}
	return opNames[op]
}

// Arity returns the number of operands op consumes.
func (op Op) Arity() int {
	switch op {
	case OpNegate, OpSine, OpCosine, OpTangent, OpArcsine, OpArccosine,
		OpArctangent, OpSqrt, OpAbsolute, OpExponent, OpLn, OpFloor, OpCeil,
		OpFraction:
		return 1
	default:
		return 2
	}
}

// Eval applies op to args. len(args) must be op.Arity(). Division by a zero
// divisor yields 0 rather than an infinity, matching the math-node semantics
// of the target graphs; everything else follows float64 arithmetic.
func (op Op) Eval(args []float64) float64 {
	switch op {
	case OpAdd:
		return args[0] + args[1]
	case OpSubtract:
		return args[0] - args[1]
	case OpMultiply:
		return args[0] * args[1]
	case OpDivide:
		if args[1] == 0 {
			return 0
		}
		return args[0] / args[1]
	case OpPower:
		return math.Pow(args[0], args[1])
	case OpNegate:
		return -args[0]
	case OpSine:
		return math.Sin(args[0])
	case OpCosine:
		return math.Cos(args[0])
	case OpTangent:
		return math.Tan(args[0])
	case OpArcsine:
		return math.Asin(args[0])
	case OpArccosine:
		return math.Acos(args[0])
	case OpArctangent:
		return math.Atan(args[0])
	case OpSqrt:
		return math.Sqrt(args[0])
	case OpAbsolute:
		return math.Abs(args[0])
	case OpExponent:
		return math.Exp(args[0])
	case OpLn:
		return math.Log(args[0])
	case OpFloor:
		return math.Floor(args[0])
	case OpCeil:
		return math.Ceil(args[0])
	case OpFraction:
		return args[0] - math.Floor(args[0])
	case OpLogarithm:
		// log(a, b) is the log of a in base b.
		return math.Log(args[0]) / math.Log(args[1])
	case OpMinimum:
		return math.Min(args[0], args[1])
	case OpMaximum:
		return math.Max(args[0], args[1])
	case OpModulo:
		return math.Mod(args[0], args[1])
	default:
		panic("exprgraph: eval of invalid op " + op.String())
	}
}

// binops maps binary operator symbols to ops.
var binops = map[string]Op{
	"+": OpAdd,
	"-": OpSubtract,
	"*": OpMultiply,
	"/": OpDivide,
	"^": OpPower,
}

// monadic and dyadic are the built-in function tables, keyed by lower-case
// name. Which table a name resolves through is fixed by the arity frozen into
// the function token at parse time.
var monadic = map[string]Op{
	"sin":   OpSine,
	"cos":   OpCosine,
	"tan":   OpTangent,
	"asin":  OpArcsine,
	"acos":  OpArccosine,
	"atan":  OpArctangent,
	"sqrt":  OpSqrt,
	"abs":   OpAbsolute,
	"exp":   OpExponent,
	"ln":    OpLn,
	"floor": OpFloor,
	"ceil":  OpCeil,
	"frac":  OpFraction,
}

var dyadic = map[string]Op{
	"pow": OpPower,
	"log": OpLogarithm,
	"min": OpMinimum,
	"max": OpMaximum,
	"mod": OpModulo,
}

// constants are the reserved named values. They are resolved only after the
// caller's variables, but callers cannot rebind them in practice because the
// hosts bind only t, u, v, and s.
var constants = map[string]float64{
	"pi":  math.Pi,
	"e":   math.E,
	"tau": 2 * math.Pi,
}

// funcOp resolves a function name and call arity to an operation. A name in
// neither table is reported as a NameError; a known name with the wrong arity
// is a CallError.
func funcOp(name string, arity int) (Op, error) {
	if op, ok := monadic[name]; ok {
		if arity != 1 {
			return OpNone, &CallError{Func: name, Args: arity}
		}
		return op, nil
	}
	if op, ok := dyadic[name]; ok {
		if arity != 2 {
			return OpNone, &CallError{Func: name, Args: arity}
		}
		return op, nil
	}
	return OpNone, &NameError{Name: name, Func: true}
}
