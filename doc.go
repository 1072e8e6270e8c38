// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Calc is a small interactive calculator. Each line of input holds one
arithmetic expression of the form

	number operator number

such as 5 + 3 or 2.5e3 / -4. Numbers are decimal floating-point values,
with optional sign, fraction and exponent; hexadecimal forms and digit
separators such as 0x1p-2 and 1_000 are rejected. The words inf and nan
are numbers too. The operator must be separated from the numbers by
white space and is one of

	Name              Calc    Meaning
	Add               +       Sum of A and B
	Subtract          -       A minus B
	Multiply          *       A multiplied by B
	Divide            /       A divided by B; dividing by zero is an error

There is no precedence, grouping or unary minus, and a line holds exactly
one operation. Results are printed in the shortest decimal form that
represents the computed value exactly, unless the -format flag says otherwise.
A result too large for a float64, such as that of 1e308 * 10, prints as inf.

A few words are commands rather than expressions. Case does not matter.

	history   print the calculations of this session, numbered from 1
	clear     forget the history
	help      describe the input syntax and the commands
	quit, q   print how many calculations are in the history and exit

Empty lines are ignored. An error, such as a word where a number should be
or an unknown operator, is reported and the session continues; only
successful calculations are recorded in the history, as "5 + 3 = 8".
The history lasts as long as the session.

When standard input is a terminal, calc greets the user and prompts for
each line. With input from a file or pipe it prints only results and errors.
End of input ends the session, as does an interrupt, which like quit prints
the summary first.

Usage:

	calc [flags]
	calc -e number operator number

Flags:

	-e
		Evaluate the remaining arguments, joined by spaces, as a single
		expression, print the result, and exit. An error exits with status 1.
	-demo
		Run a guided demonstration: each empty line entered runs the next
		line of a built-in script; other lines are evaluated as usual.
	-format string
		A fmt verb such as %.2f or %g for printing results.
	-prompt string
		The interactive prompt (default "> ").
	-debug list
		Comma-separated debug settings: cpu prints the time taken by each
		evaluation, tokens prints how each line was split into words.
*/
package main
