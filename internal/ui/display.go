// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
)

// Printf writes a plain message line.
func (u *UI) Printf(format string, args ...interface{}) {
	fmt.Fprintf(u.out, format, args...)
	fmt.Fprintln(u.out)
}

// Success writes a ✓-prefixed message.
func (u *UI) Success(format string, args ...interface{}) {
	u.symbol(u.out, color.FgGreen, "✓", format, args...)
}

// Error writes a ✗-prefixed message to the error stream.
func (u *UI) Error(format string, args ...interface{}) {
	u.symbol(u.errOut, color.FgRed, "✗", format, args...)
}

// Warning writes a ⚠-prefixed message.
func (u *UI) Warning(format string, args ...interface{}) {
	u.symbol(u.out, color.FgYellow, "⚠", format, args...)
}

// Info writes an ℹ-prefixed message.
func (u *UI) Info(format string, args ...interface{}) {
	u.symbol(u.out, color.FgCyan, "ℹ", format, args...)
}

// Step writes a →-prefixed message.
func (u *UI) Step(format string, args ...interface{}) {
	u.symbol(u.out, color.FgBlue, "→", format, args...)
}

// Section writes an underlined section title.
func (u *UI) Section(title string) {
	fmt.Fprintf(u.out, "\n%s\n%s\n", title, strings.Repeat("-", len([]rune(title))))
}

// Table writes rows under headers, aligned with a tabwriter.
func (u *UI) Table(headers []string, rows [][]string) {
	w := tabwriter.NewWriter(u.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(headers, "\t"))

	separator := make([]string, len(headers))
	for i := range separator {
		separator[i] = strings.Repeat("-", len(headers[i]))
	}
	fmt.Fprintln(w, strings.Join(separator, "\t"))

	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
}

// KeyValue writes an indented "key: value" line.
func (u *UI) KeyValue(key, value string) {
	fmt.Fprintf(u.out, "  %s: %s\n", key, value)
}

func (u *UI) symbol(w io.Writer, c color.Attribute, sym, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if u.noColor {
		fmt.Fprintf(w, "%s %s\n", sym, msg)
		return
	}
	color.New(c).Fprintf(w, "%s %s\n", sym, msg)
}
