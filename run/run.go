// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package run provides the execution control for calc: the read-eval-print
// loop, its special commands, and the session history.
// It is factored out of main so it can be used for tests.
package run // import "robpike.io/calc/run"

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"robpike.io/calc/config"
	"robpike.io/calc/parse"
	"robpike.io/calc/value"
)

// A Session is one run of the calculator with its history.
// Its methods may be called from a signal handler while Run
// is executing in another goroutine.
type Session struct {
	conf        *config.Config
	interactive bool

	mu      sync.Mutex
	history History
	done    bool // farewell has been printed
}

// NewSession returns a session printing through conf.
func NewSession(conf *config.Config) *Session {
	return &Session{conf: conf}
}

// Run reads lines from r and executes them until "quit" or end of input.
// An interactive session prints a banner, a prompt before each line and
// a blank line after each calculation, and says goodbye at end of input.
// The only error returned is a failure to read r.
func (s *Session) Run(r io.Reader, interactive bool) error {
	s.interactive = interactive
	w := s.conf.Output()
	if interactive {
		Banner(w)
	}
	// Lines may be of any length.
	br := bufio.NewReader(r)
	for {
		if interactive {
			fmt.Fprint(w, s.conf.Prompt())
		}
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("error reading input: %w", err)
		}
		if line != "" && s.Line(line) {
			return nil
		}
		if err == io.EOF {
			if interactive {
				fmt.Fprintln(w)
				s.Quit()
			}
			return nil
		}
	}
}

// Line executes one line of input and reports whether the session should end.
// Commands are matched without regard to case; anything else is evaluated.
func (s *Session) Line(line string) (quit bool) {
	line = strings.TrimSpace(line)
	cmd := strings.ToLower(line)
	switch cmd {
	case "":
		return false
	case "quit", "q":
		s.Quit()
		return true
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	w := s.conf.Output()
	switch cmd {
	case "history":
		s.history.Print(w)
		return false
	case "clear":
		s.history.Clear()
		fmt.Fprintln(w, "History cleared!")
		return false
	case "help":
		Help(w)
		return false
	}
	s.calculate(line)
	if s.interactive {
		fmt.Fprintln(w)
	}
	return false
}

// calculate evaluates the line, printing the result or the error.
// s.mu is held.
func (s *Session) calculate(line string) {
	conf := s.conf
	w := conf.Output()
	if conf.Debug("tokens") {
		fmt.Fprintf(w, "tokens: %q\n", parse.Tokens(line))
	}
	start := time.Now()
	result, err := parse.Evaluate(line)
	elapsed := time.Since(start)
	if err != nil {
		var e *value.Error
		if !errors.As(err, &e) {
			panic(err)
		}
		fmt.Fprintf(conf.ErrOutput(), "Error: %s\n", e)
		return
	}
	text := value.Format(conf, result)
	fmt.Fprintf(w, "Result: %s\n", text)
	if conf.Debug("cpu") {
		fmt.Fprintf(w, "(%s)\n", elapsed)
	}
	s.history.Add(line, text)
}

// History returns a copy of the session's history.
func (s *Session) History() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Entries()
}

// Quit prints the farewell summary. It prints nothing if the
// session has already said goodbye.
func (s *Session) Quit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.farewell()
}

// Interrupt ends the session from outside the loop, as on an
// interrupt signal, moving past any partial prompt first.
func (s *Session) Interrupt() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done {
		return
	}
	fmt.Fprintln(s.conf.Output())
	s.farewell()
}

// farewell is called with s.mu held.
func (s *Session) farewell() {
	if s.done {
		return
	}
	s.done = true
	w := s.conf.Output()
	fmt.Fprintf(w, "Thanks for using calc! You performed %d calculations.\n", s.history.Len())
	fmt.Fprintln(w, "Goodbye!")
}
