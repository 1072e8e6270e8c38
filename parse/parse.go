// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parse turns a line of input of the form
//
//	number operator number
//
// into a value.Expr, and evaluates it.
// There is no precedence, grouping or unary minus; a line
// holds exactly one binary operation.
package parse // import "robpike.io/calc/parse"

import (
	"errors"
	"strconv"
	"strings"

	"robpike.io/calc/value"
)

// Tokens returns the whitespace-separated words of the line.
func Tokens(line string) []string {
	return strings.Fields(line)
}

// Parse splits the line into operand, operator, operand.
// Both operands are checked before the operator, so "5 % x"
// reports the bad operand x.
func Parse(line string) (value.Expr, error) {
	toks := Tokens(line)
	if len(toks) != 3 {
		return value.Expr{}, &value.Error{Err: value.ErrMalformedInput, Count: len(toks)}
	}
	x, err := number(toks[0])
	if err != nil {
		return value.Expr{}, err
	}
	y, err := number(toks[2])
	if err != nil {
		return value.Expr{}, err
	}
	if !value.IsBinaryOp(toks[1]) {
		return value.Expr{}, value.Errorf(value.ErrUnknownOperator, toks[1])
	}
	return value.Expr{X: x, Op: value.Operator(toks[1]), Y: y}, nil
}

// Evaluate parses the line and computes its value.
func Evaluate(line string) (float64, error) {
	expr, err := Parse(line)
	if err != nil {
		return 0, err
	}
	return expr.Eval()
}

// number parses a decimal or scientific floating-point literal.
// Literals too large for a float64 become infinities, as they would
// in a floating-point conversion; only malformed text is an error.
// Go's hexadecimal floats and digit separators are not decimal, so
// 0x1p-2 and 1_000 are rejected.
func number(tok string) (float64, error) {
	digits := strings.TrimLeft(tok, "+-")
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") || strings.Contains(tok, "_") {
		return 0, value.Errorf(value.ErrInvalidOperand, tok)
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, value.Errorf(value.ErrInvalidOperand, tok)
	}
	return f, nil
}
