// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/mattn/go-isatty"

	"robpike.io/calc/config"
	"robpike.io/calc/demo"
	"robpike.io/calc/parse"
	"robpike.io/calc/run"
	"robpike.io/calc/value"
)

var (
	execute   = flag.Bool("e", false, "execute arguments as a single expression")
	runDemo   = flag.Bool("demo", false, "run the demo")
	format    = flag.String("format", "", "fmt verb for printing results; empty means shortest exact decimal")
	prompt    = flag.String("prompt", "> ", "command prompt")
	debugFlag = flag.String("debug", "", "comma-separated list of debug settings: "+strings.Join(config.DebugFlags, ", "))
)

const shutdownTimeout = 5 * time.Second

var conf config.Config

func main() {
	log.SetFlags(0)
	log.SetPrefix("calc: ")

	flag.Usage = usage
	flag.Parse()

	conf.SetFormat(*format)
	conf.SetPrompt(*prompt)
	if *debugFlag != "" {
		for _, name := range strings.Split(*debugFlag, ",") {
			if !slices.Contains(config.DebugFlags, name) {
				log.Printf("unknown debug setting %q", name)
				flag.Usage()
			}
			conf.SetDebug(name, true)
		}
	}

	if *execute {
		result, err := evalArgs(&conf, flag.Args())
		if err != nil {
			log.Fatal(err)
		}
		fmt.Fprintln(conf.Output(), result)
		return
	}
	if flag.NArg() != 0 {
		flag.Usage()
	}

	session := run.NewSession(&conf)
	done := make(chan error, 1)
	go func() {
		if *runDemo {
			done <- demo.Run(os.Stdin, session, conf.Output())
			return
		}
		done <- session.Run(os.Stdin, isTTY(os.Stdin.Fd()))
	}()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"session": func(ctx context.Context) error {
				session.Interrupt()
				return nil
			},
		},
	)

	select {
	case err := <-done:
		if err != nil {
			log.Fatal(err)
		}
	case code := <-wait:
		os.Exit(code)
	}
}

// evalArgs evaluates the arguments, joined by spaces, as a single expression.
func evalArgs(conf *config.Config, args []string) (string, error) {
	result, err := parse.Evaluate(strings.Join(args, " "))
	if err != nil {
		return "", err
	}
	return value.Format(conf, result), nil
}

func isTTY(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: calc [options]\n")
	fmt.Fprintf(os.Stderr, "       calc -e number operator number\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
	os.Exit(2)
}
