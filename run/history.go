// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package run

import (
	"fmt"
	"io"
	"strings"
)

// History is the ordered record of a session's successful calculations.
// Entries have the form "<input> = <result>". It lives only as long as
// the session; the zero value is an empty history.
type History struct {
	entries []string
}

// Add appends the calculation to the history.
func (h *History) Add(input, result string) {
	h.entries = append(h.entries, input+" = "+result)
}

func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of the history, oldest first.
func (h *History) Entries() []string {
	return append([]string(nil), h.entries...)
}

func (h *History) Clear() {
	h.entries = nil
}

const rule = "================================"

// Print writes the history, numbered from 1, or a hint if it is empty.
func (h *History) Print(w io.Writer) {
	if h.Len() == 0 {
		fmt.Fprintln(w, "No calculations yet! Start by entering an expression like '5 + 3'")
		return
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Calculation History (%d entries):\n", h.Len())
	fmt.Fprintln(&b, rule)
	for i, entry := range h.entries {
		fmt.Fprintf(&b, "%d. %s\n", i+1, entry)
	}
	fmt.Fprintln(&b, rule)
	io.WriteString(w, b.String())
}
