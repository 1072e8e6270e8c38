// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

// Operator is one of the four arithmetic operators.
type Operator string

const (
	Add Operator = "+"
	Sub Operator = "-"
	Mul Operator = "*"
	Div Operator = "/"
)

// Operators lists the operators in display order.
var Operators = []Operator{Add, Sub, Mul, Div}

func (op Operator) String() string {
	return string(op)
}

type binaryFn func(x, y float64) (float64, error)

type binaryOp struct {
	name string
	fn   binaryFn
}

var binaryOps = map[Operator]*binaryOp{
	Add: {
		name: "addition",
		fn:   func(x, y float64) (float64, error) { return x + y, nil },
	},
	Sub: {
		name: "subtraction",
		fn:   func(x, y float64) (float64, error) { return x - y, nil },
	},
	Mul: {
		name: "multiplication",
		fn:   func(x, y float64) (float64, error) { return x * y, nil },
	},
	Div: {
		name: "division",
		fn: func(x, y float64) (float64, error) {
			if y == 0 {
				return 0, &Error{Err: ErrDivisionByZero}
			}
			return x / y, nil
		},
	},
}

// IsBinaryOp reports whether op names a known operator.
func IsBinaryOp(op string) bool {
	return binaryOps[Operator(op)] != nil
}

// Binary applies the operator to x and y.
func Binary(x float64, op Operator, y float64) (float64, error) {
	b := binaryOps[op]
	if b == nil {
		return 0, Errorf(ErrUnknownOperator, string(op))
	}
	return b.fn(x, y)
}

// Name returns the English name of the operation, such as "addition".
func (op Operator) Name() string {
	if b := binaryOps[op]; b != nil {
		return b.name
	}
	return "unknown"
}
