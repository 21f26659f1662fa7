// Package exprgraph compiles user-typed algebraic expressions into procedural
// geometry math-node graphs, or evaluates them directly.
//
// An expression like "sin(v)*cos(u)" is tokenized and converted to a postfix
// program by a shunting-yard parser. The program can then be interpreted by
// two interchangeable backends: a float64 evaluator (Context.Eval) and a graph
// compiler (Compile) that emits one operation node per postfix token into a
// caller-owned node graph, wiring operands through externally supplied
// variable ports. Both backends run the same driver, so they accept and reject
// exactly the same expressions.
//
// The grammar accepts decimal literals, identifiers, the constants pi, e and
// tau, binary + - * / ^, unary -, parentheses, and comma-separated calls of
// the built-in function set. Which identifiers are variables is decided by the
// caller at evaluation or compile time, not at parse time.
package exprgraph
