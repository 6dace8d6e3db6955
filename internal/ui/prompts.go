// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ui

import (
	"fmt"
	"strings"
)

// Prompt asks for a line of input and returns it whitespace-trimmed.
// A read error (closed stdin) is returned as-is; callers treat it as
// cancellation.
func (u *UI) Prompt(message string) (string, error) {
	fmt.Fprintf(u.out, "%s: ", message)
	line, err := u.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// PromptWithDefault asks for input, returning defaultValue on empty input.
func (u *UI) PromptWithDefault(message, defaultValue string) (string, error) {
	input, err := u.Prompt(fmt.Sprintf("%s [%s]", message, defaultValue))
	if err != nil {
		return "", err
	}
	if input == "" {
		return defaultValue, nil
	}
	return input, nil
}

// Confirm asks a yes/no question. Empty input selects defaultValue.
// "s", "si", "sí", "y", and "yes" count as yes.
func (u *UI) Confirm(message string, defaultValue bool) (bool, error) {
	hint := "s/N"
	if defaultValue {
		hint = "S/n"
	}
	input, err := u.Prompt(fmt.Sprintf("%s [%s]", message, hint))
	if err != nil {
		return false, err
	}
	switch strings.ToLower(input) {
	case "":
		return defaultValue, nil
	case "s", "si", "sí", "y", "yes":
		return true, nil
	}
	return false, nil
}

// PromptInt asks for an integer in [min, max]. Empty input selects
// defaultValue; anything non-numeric or out of range is re-asked.
func (u *UI) PromptInt(message string, defaultValue, min, max int) (int, error) {
	for {
		input, err := u.Prompt(fmt.Sprintf("%s [%d] (%d-%d)", message, defaultValue, min, max))
		if err != nil {
			return 0, err
		}
		if input == "" {
			return defaultValue, nil
		}

		var value int
		if _, err := fmt.Sscanf(input, "%d", &value); err != nil {
			u.Warning("introduce un número entre %d y %d", min, max)
			continue
		}
		if value < min || value > max {
			u.Warning("introduce un número entre %d y %d", min, max)
			continue
		}
		return value, nil
	}
}
