// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the settings shared by a calc session.
// The zero value is ready to use and writes to the standard streams.
package config // import "robpike.io/calc/config"

import (
	"io"
	"os"
	"sort"
)

// DebugFlags lists the debug names the session understands.
var DebugFlags = []string{
	"cpu",    // print the time taken by each evaluation
	"tokens", // print the whitespace split of each input line
}

type Config struct {
	prompt    string
	format    string
	output    io.Writer
	errOutput io.Writer
	debug     map[string]bool
}

// Format returns the fmt verb used to print results.
// The empty string selects the shortest exact decimal form.
func (c *Config) Format() string {
	return c.format
}

func (c *Config) SetFormat(s string) {
	c.format = s
}

func (c *Config) Debug(s string) bool {
	return c.debug[s]
}

func (c *Config) SetDebug(s string, state bool) {
	if c.debug == nil {
		c.debug = make(map[string]bool)
	}
	c.debug[s] = state
}

// DebugNames returns the names of the debug flags that are set, sorted.
func (c *Config) DebugNames() []string {
	var names []string
	for name, on := range c.debug {
		if on {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func (c *Config) Prompt() string {
	return c.prompt
}

func (c *Config) SetPrompt(prompt string) {
	c.prompt = prompt
}

// Output returns the writer to be used for results and command output.
func (c *Config) Output() io.Writer {
	if c.output == nil {
		return os.Stdout
	}
	return c.output
}

func (c *Config) SetOutput(output io.Writer) {
	c.output = output
}

// ErrOutput returns the writer to be used for evaluation errors.
func (c *Config) ErrOutput() io.Writer {
	if c.errOutput == nil {
		return os.Stderr
	}
	return c.errOutput
}

func (c *Config) SetErrOutput(output io.Writer) {
	c.errOutput = output
}
