// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package value implements the arithmetic of calc: the expression type,
// its operators, evaluation, and the errors evaluation can produce.
package value // import "robpike.io/calc/value"

import (
	"errors"
	"fmt"
)

// Expr is a single binary expression, X Op Y.
type Expr struct {
	X  float64
	Op Operator
	Y  float64
}

func (e Expr) String() string {
	return Format(nil, e.X) + " " + e.Op.String() + " " + Format(nil, e.Y)
}

// Eval computes the value of the expression.
func (e Expr) Eval() (float64, error) {
	return Binary(e.X, e.Op, e.Y)
}

// The kinds of evaluation failure. An *Error unwraps to one of these.
var (
	ErrMalformedInput  = errors.New("malformed input")
	ErrInvalidOperand  = errors.New("invalid operand")
	ErrUnknownOperator = errors.New("unknown operator")
	ErrDivisionByZero  = errors.New("division by zero")
)

// Error describes why a line could not be evaluated.
type Error struct {
	Err   error  // One of the Err variables above.
	Token string // The offending token, if any.
	Count int    // Number of tokens found, for ErrMalformedInput.
}

func (e *Error) Error() string {
	switch e.Err {
	case ErrMalformedInput:
		return fmt.Sprintf("please enter in format: number operator number (e.g. 5 + 3); got %d tokens", e.Count)
	case ErrInvalidOperand:
		return fmt.Sprintf("'%s' is not a valid number", e.Token)
	case ErrUnknownOperator:
		return fmt.Sprintf("unknown operator '%s'; use +, -, *, or /", e.Token)
	case ErrDivisionByZero:
		return "cannot divide by zero"
	}
	if e.Token != "" {
		return fmt.Sprintf("%v: %q", e.Err, e.Token)
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf returns an *Error of the given kind for the token.
func Errorf(kind error, token string) *Error {
	return &Error{Err: kind, Token: token}
}
