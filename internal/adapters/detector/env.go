// Package detector picks between the interactive and the plain progress
// output.
package detector

import (
	"os"

	"go.trai.ch/screener/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// OutputMode represents the rendering mode of progress output.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModeInteractive renders the terminal progress view.
	ModeInteractive
	// ModePlain prints one line per progress update.
	ModePlain
)

// fd is implemented by *os.File.
type fd interface {
	Fd() uintptr
}

// DetectEnvironment returns ModePlain when out is not a terminal or a CI
// environment variable is set, and ModeInteractive otherwise.
func DetectEnvironment(out fd) OutputMode {
	ci := os.Getenv("CI")
	if ci == "true" || ci == "1" {
		return ModePlain
	}
	//nolint:gosec // file descriptors fit in an int
	if out == nil || !term.IsTerminal(int(out.Fd())) {
		return ModePlain
	}
	return ModeInteractive
}

// ResolveMode applies the --output flag to the detected mode.
func ResolveMode(detected OutputMode, flag string) (OutputMode, error) {
	switch flag {
	case "tui":
		return ModeInteractive, nil
	case "plain", "linear", "ci":
		return ModePlain, nil
	case "auto", "":
		return detected, nil
	default:
		return detected, zerr.With(domain.ErrInvalidInput, "output", flag)
	}
}
