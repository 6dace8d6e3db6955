//go:build mage

// Package main contains Mage build targets for pdf2img developer tooling.
package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const (
	binDir  = "bin"
	binName = "pdf2img"
	cmdPkg  = "./cmd/pdf2img"
)

// starterConfig is written by Init when no config file exists yet.
const starterConfig = `# pdf2img configuration. Flags override these values.
render:
  engine: poppler      # poppler or mupdf
  dpi: 300             # 72-600
  format: JPEG         # JPEG or PNG
  quality: 95          # 1-100, JPEG only
output:
  root: pdf_conversions
  open_folder: true
history:
  enabled: true
log:
  level: info
  file: pdf2img.log
`

// Init creates the output root and a starter config file.
func Init() error {
	if err := os.MkdirAll("pdf_conversions", 0o755); err != nil {
		return fmt.Errorf("creating pdf_conversions: %w", err)
	}
	fmt.Println("   pdf_conversions")

	if _, err := os.Stat("pdf2img.yaml"); os.IsNotExist(err) {
		if err := os.WriteFile("pdf2img.yaml", []byte(starterConfig), 0o644); err != nil {
			return fmt.Errorf("writing pdf2img.yaml: %w", err)
		}
		fmt.Println("   pdf2img.yaml")
	}

	fmt.Println("Project initialized.")
	return nil
}

// Build compiles the CLI binary into bin/, stamping the version from git.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}

	out := filepath.Join(binDir, binName)
	ldflags := fmt.Sprintf("-X main.version=%s", gitVersion())
	cmd := exec.Command("go", "build", "-ldflags", ldflags, "-o", out, cmdPkg)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Stats prints project metrics: Go production/test LOC and documentation word count.
func Stats() error {
	prodLines, err := countGoLines(".", false)
	if err != nil {
		return err
	}
	testLines, err := countGoLines(".", true)
	if err != nil {
		return err
	}
	docWords, err := countDocWords(".")
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)
	fmt.Printf("Words (documentation):          %d\n", docWords)
	return nil
}

// gitVersion returns the nearest tag or commit hash, or "dev" outside a
// git checkout.
func gitVersion() string {
	out, err := exec.Command("git", "describe", "--tags", "--always", "--dirty").Output()
	if err != nil {
		return "dev"
	}
	return strings.TrimSpace(string(out))
}

// countGoLines walks the tree and counts non-blank lines in Go files.
// If testOnly is true, count only _test.go files; otherwise count non-test
// .go files. Directories the Go toolchain ignores (leading "_" or ".")
// and bin/ are skipped.
func countGoLines(root string, testOnly bool) (int, error) {
	total := 0
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return skipIgnored(path, info)
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		if isTest := strings.HasSuffix(path, "_test.go"); isTest != testOnly {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		for _, line := range bytes.Split(data, []byte("\n")) {
			if len(bytes.TrimSpace(line)) > 0 {
				total++
			}
		}
		return nil
	})
	return total, err
}

// countDocWords counts words in Markdown and YAML files under root.
func countDocWords(root string) (int, error) {
	total := 0
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return skipIgnored(path, info)
		}
		switch filepath.Ext(path) {
		case ".md", ".yaml", ".yml":
		default:
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		total += len(strings.Fields(string(data)))
		return nil
	})
	return total, err
}

func skipIgnored(path string, info os.FileInfo) error {
	name := info.Name()
	if path != "." && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".") || name == binDir) {
		return filepath.SkipDir
	}
	return nil
}
