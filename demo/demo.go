// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package demo implements the -demo flag. The script for the demo is
// in demo.calc in this directory. Its content is embedded in this
// source file.
package demo // import "robpike.io/calc/demo"

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	_ "embed"
)

//go:embed demo.calc
var demoText []byte

// Text returns the input text for the standard demo.
func Text() string {
	return string(demoText)
}

// A Liner executes one line of calculator input and reports whether
// the session has ended. *run.Session is a Liner.
type Liner interface {
	Line(line string) (quit bool)
}

// Run runs the demo. The first line of the script, holding instructions,
// is written to output. After that, each time the user enters a blank
// line the next line of the script is echoed to output and delivered to
// the session. If the user's line has text, that is delivered instead
// and the script does not advance; "quit" ends the demo.
// A nil userInput ignores the user and just runs the script.
func Run(userInput io.Reader, session Liner, output io.Writer) error {
	text := demoText // Don't overwrite the global!
	var scan *bufio.Scanner
	if userInput != nil {
		scan = bufio.NewScanner(userInput)
	}
	nextLine := func() (line []byte) {
		nl := bytes.IndexByte(text, '\n')
		if nl < 0 { // EOF or incomplete line.
			return nil
		}
		line, text = text[:nl+1], text[nl+1:]
		return line
	}
	if _, err := output.Write(nextLine()); err != nil {
		return err
	}
	for userInput == nil || scan.Scan() {
		var line string
		if userInput != nil && len(bytes.TrimSpace(scan.Bytes())) > 0 {
			line = scan.Text()
			if strings.EqualFold(strings.TrimSpace(line), "quit") {
				break
			}
		} else {
			next := nextLine()
			if next == nil {
				break
			}
			if _, err := output.Write(next); err != nil {
				return err
			}
			line = string(next)
		}
		if session.Line(line) {
			break
		}
	}
	if scan == nil {
		return nil
	}
	return scan.Err()
}
