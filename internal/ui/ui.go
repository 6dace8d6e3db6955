// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ui implements the interactive terminal surface: prompts, status
// messages, and progress indicators.
package ui

import (
	"bufio"
	"io"
	"os"

	"github.com/fatih/color"
)

// UI bundles the terminal streams used for prompts and status output.
// Prompts read from in and write to out; progress indicators and errors
// write to errOut so piped stdout stays clean.
type UI struct {
	in      *bufio.Reader
	out     io.Writer
	errOut  io.Writer
	noColor bool
}

// New creates a UI over the given streams. noColor disables ANSI colors.
func New(in io.Reader, out, errOut io.Writer, noColor bool) *UI {
	return &UI{
		in:      bufio.NewReader(in),
		out:     out,
		errOut:  errOut,
		noColor: noColor,
	}
}

// Default returns a UI bound to stdin, stdout, and stderr.
func Default(noColor bool) *UI {
	if noColor {
		color.NoColor = true
	}
	return New(os.Stdin, os.Stdout, os.Stderr, noColor)
}
