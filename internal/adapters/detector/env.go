// Package detector decides whether launched processes get a terminal.
package detector

import (
	"io"
	"os"

	"golang.org/x/term"
)

// OutputMode selects how Gant processes are attached to the build log.
type OutputMode int

const (
	// ModeAuto attaches a terminal when the build log is one and no CI is detected.
	ModeAuto OutputMode = iota
	// ModeTTY always runs Gant inside a pseudo terminal.
	ModeTTY
	// ModePlain always runs Gant with plain pipes.
	ModePlain
)

// IsInteractive reports whether w is a terminal outside of CI.
func IsInteractive(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return false
	}
	return !isCI()
}

func isCI() bool {
	ci := os.Getenv("CI")
	return ci == "true" || ci == "1"
}

// ParseMode maps a user flag to an OutputMode.
// It accepts "auto", "tty", "plain" and "ci"; anything else is auto.
func ParseMode(flag string) OutputMode {
	switch flag {
	case "tty":
		return ModeTTY
	case "plain", "ci":
		return ModePlain
	default:
		return ModeAuto
	}
}

// Resolve applies mode to the auto detected interactivity of w.
func Resolve(mode OutputMode, w io.Writer) bool {
	switch mode {
	case ModeTTY:
		return true
	case ModePlain:
		return false
	default:
		return IsInteractive(w)
	}
}
