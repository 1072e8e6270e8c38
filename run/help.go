// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package run

import (
	"fmt"
	"io"
	"strings"

	"robpike.io/calc/value"
)

// Banner prints the greeting shown at the start of an interactive session.
func Banner(w io.Writer) {
	fmt.Fprintln(w, "Welcome to calc!")
	fmt.Fprintln(w, "Enter expressions like '5 + 3' or type 'quit' to exit.")
	fmt.Fprintf(w, "Supported operations: %s\n", operatorList())
	fmt.Fprintln(w, "Special commands: 'history' to see past calculations, 'clear' to clear history")
	fmt.Fprintln(w)
}

const commandHelp = `Commands:
	history	show past calculations
	clear	forget past calculations
	help	print this message
	quit, q	print a summary and exit
`

// Help prints the input syntax, the operators and the special commands.
func Help(w io.Writer) {
	fmt.Fprintln(w, "Enter number operator number, as in 5 + 3 or 2.5e3 / -4.")
	fmt.Fprintln(w, "Operators:")
	for _, op := range value.Operators {
		fmt.Fprintf(w, "\t%s\t%s\n", op, op.Name())
	}
	fmt.Fprint(w, commandHelp)
}

func operatorList() string {
	ops := make([]string, len(value.Operators))
	for i, op := range value.Operators {
		ops[i] = op.String()
	}
	return strings.Join(ops, ", ")
}
