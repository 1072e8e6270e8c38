// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"robpike.io/calc/config"
)

var tenth, fifth = 0.1, 0.2

func TestBinary(t *testing.T) {
	var tests = []struct {
		x    float64
		op   Operator
		y    float64
		want float64
	}{
		{5, Add, 3, 8},
		{10, Sub, 4, 6},
		{6, Mul, 7, 42},
		{15, Div, 3, 5},
		{-10, Add, -5, -15},
		{5, Sub, 10, -5},
		{100, Mul, 0, 0},
		{1, Div, 4, 0.25},
		{tenth, Add, fifth, tenth + fifth},
	}
	for _, test := range tests {
		got, err := Binary(test.x, test.op, test.y)
		require.NoError(t, err, "%v %s %v", test.x, test.op, test.y)
		assert.Equal(t, test.want, got, "%v %s %v", test.x, test.op, test.y)
	}
}

func TestDivisionByZero(t *testing.T) {
	for _, y := range []float64{0, math.Copysign(0, -1)} {
		_, err := Binary(5, Div, y)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrDivisionByZero))
		assert.Equal(t, "cannot divide by zero", err.Error())
	}
}

func TestUnknownOperator(t *testing.T) {
	_, err := Binary(5, Operator("%"), 3)
	require.ErrorIs(t, err, ErrUnknownOperator)
	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, "%", e.Token)
	assert.Equal(t, "unknown operator '%'; use +, -, *, or /", err.Error())
}

func TestExprEval(t *testing.T) {
	got, err := Expr{X: 6, Op: Mul, Y: 7}.Eval()
	require.NoError(t, err)
	assert.Equal(t, 42.0, got)
	assert.Equal(t, "6 * 7", Expr{X: 6, Op: Mul, Y: 7}.String())
	assert.Equal(t, "1000000000000000000000 / 0.5", Expr{X: 1e21, Op: Div, Y: 0.5}.String())
}

func TestIsBinaryOp(t *testing.T) {
	for _, op := range Operators {
		assert.True(t, IsBinaryOp(string(op)), op)
	}
	for _, op := range []string{"%", "^", "x", "", "++", "÷"} {
		assert.False(t, IsBinaryOp(op), op)
	}
	assert.Equal(t, "division", Div.Name())
	assert.Equal(t, "unknown", Operator("%").Name())
}

func TestErrorMessages(t *testing.T) {
	var tests = []struct {
		err  *Error
		want string
	}{
		{&Error{Err: ErrMalformedInput, Count: 2}, "please enter in format: number operator number (e.g. 5 + 3); got 2 tokens"},
		{Errorf(ErrInvalidOperand, "hello"), "'hello' is not a valid number"},
		{Errorf(ErrUnknownOperator, "%"), "unknown operator '%'; use +, -, *, or /"},
		{&Error{Err: ErrDivisionByZero}, "cannot divide by zero"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, test.err.Error())
		assert.ErrorIs(t, test.err, test.err.Err)
	}
}

func TestFormat(t *testing.T) {
	var tests = []struct {
		format string
		x      float64
		want   string
	}{
		{"", 8, "8"},
		{"", 2.5, "2.5"},
		{"", -6, "-6"},
		{"", tenth + fifth, "0.30000000000000004"},
		{"", 1e20, "100000000000000000000"},
		{"", 1.0 / 3, "0.3333333333333333"},
		{"%.2f", 1.0 / 3, "0.33"},
		{"%g", 1e20, "1e+20"},
		{"", math.Inf(1), "inf"},
		{"", math.Inf(-1), "-inf"},
		{"", math.NaN(), "NaN"},
	}
	for _, test := range tests {
		var conf config.Config
		conf.SetFormat(test.format)
		assert.Equal(t, test.want, Format(&conf, test.x), "%q %v", test.format, test.x)
	}
	assert.Equal(t, "42", Format(nil, 42))
}
