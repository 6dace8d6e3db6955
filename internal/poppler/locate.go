// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package poppler

import (
	"os"
	"runtime"
)

// Status reports how the Poppler binaries were resolved.
type Status int

const (
	// StatusOnPath means the version probe succeeded through PATH;
	// no explicit directory is needed.
	StatusOnPath Status = iota

	// StatusFoundAt means a conventional install directory exists;
	// its path is in Location.Dir.
	StatusFoundAt

	// StatusNotFound means neither the probe nor the conventional
	// directories turned anything up.
	StatusNotFound
)

func (s Status) String() string {
	switch s {
	case StatusOnPath:
		return "on PATH"
	case StatusFoundAt:
		return "conventional directory"
	default:
		return "not found"
	}
}

// Location is the locator result. Dir is set only for StatusFoundAt.
type Location struct {
	Status Status
	Dir    string
}

// searchDirs returns the conventional Poppler install directories for goos.
func searchDirs(goos string) []string {
	switch goos {
	case "windows":
		return []string{
			`C:\poppler\bin`,
			`C:\Program Files\poppler\bin`,
			`C:\Program Files (x86)\poppler\bin`,
		}
	case "darwin":
		return []string{"/opt/homebrew/bin", "/usr/local/bin"}
	default:
		return []string{"/usr/bin", "/usr/local/bin"}
	}
}

// SearchDirs lists the conventional install directories probed on this OS.
func SearchDirs() []string {
	return searchDirs(runtime.GOOS)
}

// Locate probes for the Poppler binaries: the version command through PATH
// first, then the conventional install directories for the current OS.
// The result is advisory; rendering itself reports the authoritative error.
func Locate() Location {
	return locate(defaultExec, runtime.GOOS, os.Stat)
}

func locate(exec executor, goos string, stat func(string) (os.FileInfo, error)) Location {
	if _, err := exec.LookPath(binPdftoppm); err == nil {
		if exec.RunSilent(binPdftoppm, "-v") == nil {
			return Location{Status: StatusOnPath}
		}
	}

	for _, dir := range searchDirs(goos) {
		if info, err := stat(dir); err == nil && info.IsDir() {
			return Location{Status: StatusFoundAt, Dir: dir}
		}
	}
	return Location{Status: StatusNotFound}
}
