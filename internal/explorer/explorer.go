// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package explorer opens the platform file browser on a folder. The browser
// process is started detached and never waited on; a launch failure is
// reported back so the caller can warn without failing the run.
package explorer

import (
	"fmt"
	"os/exec"
	"runtime"
)

// starter launches a process without waiting for it to finish.
type starter interface {
	Start(name string, args ...string) error
}

type osStarter struct{}

func (osStarter) Start(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

var defaultStarter starter = osStarter{}

// openArgs returns the file-browser command line for goos.
func openArgs(goos, path string) (string, []string) {
	switch goos {
	case "windows":
		return "explorer", []string{path}
	case "darwin":
		return "open", []string{path}
	default:
		return "xdg-open", []string{path}
	}
}

// Open points the platform file browser at path.
func Open(path string) error {
	return open(defaultStarter, runtime.GOOS, path)
}

func open(s starter, goos, path string) error {
	name, args := openArgs(goos, path)
	if err := s.Start(name, args...); err != nil {
		return fmt.Errorf("no se pudo abrir la carpeta: %w", err)
	}
	return nil
}
