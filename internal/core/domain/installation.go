package domain

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultUnixExecutable is the Gant launcher name on POSIX systems.
	DefaultUnixExecutable = "gant"

	// DefaultWindowsExecutable is the Gant launcher name inside a Windows installation.
	DefaultWindowsExecutable = "gant.exe"

	// DefaultWindowsLauncher is the bare command used on Windows when no installation is configured.
	DefaultWindowsLauncher = "gant.bat"
)

// Installation describes where a Gant tool and the runtimes it depends on live on disk.
// It is a value: the registry replaces installations wholesale and never edits one in place.
type Installation struct {
	Name        string `json:"name"`
	ToolHome    string `json:"home,omitempty"`
	JavaHome    string `json:"java,omitempty"`
	AntHome     string `json:"ant,omitempty"`
	ScriptsHome string `json:"scripts,omitempty"`
	ExecName    string `json:"execname,omitempty"`
}

// ExecutableName returns the executable file name for a platform using sep as path separator.
func (i Installation) ExecutableName(sep rune) string {
	if i.ExecName != "" {
		return i.ExecName
	}
	if sep == '\\' {
		return DefaultWindowsExecutable
	}
	return DefaultUnixExecutable
}

// ExecutablePathFor returns ToolHome/bin/<executable> joined with sep.
func (i Installation) ExecutablePathFor(sep rune) string {
	s := string(sep)
	home := strings.TrimRight(i.ToolHome, s)
	return home + s + "bin" + s + i.ExecutableName(sep)
}

// ExecutablePath returns the executable location for the current platform.
func (i Installation) ExecutablePath() string {
	return i.ExecutablePathFor(filepath.Separator)
}

// Exists reports whether the executable is present on disk.
func (i Installation) Exists() bool {
	_, err := os.Stat(i.ExecutablePath())
	return err == nil
}

// Tool is the executable selection of a build step. It is either a configured
// installation or the platform default that the launcher finds on its search path.
type Tool struct {
	installation Installation
	configured   bool
}

// DefaultTool selects the platform default executable.
func DefaultTool() Tool {
	return Tool{}
}

// InstalledTool selects a configured installation.
func InstalledTool(i Installation) Tool {
	return Tool{installation: i, configured: true}
}

// Installation returns the configured installation, if any.
func (t Tool) Installation() (Installation, bool) {
	return t.installation, t.configured
}

// String returns the installation name or "default".
func (t Tool) String() string {
	if !t.configured {
		return "default"
	}
	return t.installation.Name
}
