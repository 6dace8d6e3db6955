package ui

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/schollz/progressbar/v3"
)

// Spinner shows indeterminate progress while a blocking call runs.
type Spinner struct {
	s *spinner.Spinner
}

// Spinner creates a spinner with the given message, writing to the error
// stream. Call Start, then Stop when the blocking call returns.
func (u *UI) Spinner(message string) *Spinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message
	s.Writer = u.errOut
	return &Spinner{s: s}
}

// Start begins the animation.
func (s *Spinner) Start() { s.s.Start() }

// Stop ends the animation and clears the line.
func (s *Spinner) Stop() { s.s.Stop() }

// ProgressBar shows deterministic progress for the page save loop.
type ProgressBar struct {
	bar *progressbar.ProgressBar
}

// ProgressBar creates a bar with the given total and description, writing
// to the error stream.
func (u *UI) ProgressBar(total int64, description string) *ProgressBar {
	bar := progressbar.NewOptions64(
		total,
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(u.errOut),
		progressbar.OptionShowCount(),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(u.errOut, "\n")
		}),
	)
	return &ProgressBar{bar: bar}
}

// Set moves the bar to current.
func (p *ProgressBar) Set(current int64) {
	p.bar.Set64(current)
}

// Finish completes the bar.
func (p *ProgressBar) Finish() {
	p.bar.Finish()
}
