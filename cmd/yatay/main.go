// Copyright 2024 The Yatay Authors. All rights reserved.
// This file is part of yatay and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

// Command yatay is the CLI entry point for the Yatay language core (spec
// §6.2). It is explicitly "external collaborator" territory (spec §1): it
// owns argument handling, file reading, and process exit codes, and is the
// only piece of this module that touches the filesystem or os.Exit.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"yatay/internal/diagnostics"
	"yatay/internal/interpreter"
	"yatay/internal/parser"
	"yatay/internal/scanner"
)

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(64)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "yatay [archivo]",
		Short:         "Yatay is a small Spanish-keyword scripting language",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch len(args) {
			case 0:
				fmt.Println("interactive shell not yet implemented")
				return nil
			case 1:
				runFile(args[0])
				return nil
			default:
				fmt.Fprintln(os.Stderr, "usage: yatay [archivo]")
				os.Exit(64)
				return nil
			}
		},
	}
	return cmd
}

// canonicalizeExtension appends the ".yatay" extension when path lacks it
// (spec §6.2), the one helper the spec explicitly calls out as a separate
// external collaborator rather than part of the language core.
func canonicalizeExtension(path string) string {
	if filepath.Ext(path) != ".yatay" {
		return path + ".yatay"
	}
	return path
}

func runFile(path string) {
	path = canonicalizeExtension(path)

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("no se pudo leer el archivo '%s'\n", path)
		os.Exit(0)
	}

	sink := diagnostics.NewSink()
	run(string(source), sink)

	switch {
	case sink.HadStaticError():
		os.Exit(65)
	case sink.HadRuntimeError():
		os.Exit(70)
	}
}

// run pipes source through the scanner, parser, and interpreter in order
// (spec §2): the interpreter is not invoked if scanning or parsing reported
// a static error.
func run(source string, sink *diagnostics.Sink) {
	s := scanner.New(source, sink)
	tokens := s.ScanTokens()

	p := parser.New(tokens, sink)
	stmts := p.Parse()

	if sink.HadStaticError() {
		return
	}

	in := interpreter.New(sink)
	in.Interpret(stmts)
}
