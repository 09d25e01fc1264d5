package domain

import (
	"slices"
	"strings"
)

// Environment maps environment variable names to values.
type Environment map[string]string

// EnvironmentFromList builds an Environment from KEY=VALUE entries such as os.Environ().
// Entries without '=' are skipped.
func EnvironmentFromList(entries []string) Environment {
	env := make(Environment, len(entries))
	for _, entry := range entries {
		if k, v, ok := strings.Cut(entry, "="); ok && k != "" {
			env[k] = v
		}
	}
	return env
}

// Clone returns an independent copy of e.
func (e Environment) Clone() Environment {
	out := make(Environment, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// List returns KEY=VALUE entries sorted by key.
func (e Environment) List() []string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+"="+e[k])
	}
	return out
}

// BuildContext is the ambient state a host supplies for one build run.
type BuildContext struct {
	// Env is the base environment of the build. It is never modified.
	Env Environment
	// Variables are the per-build variables, in declaration order.
	Variables Variables
	// ModuleRoot is the working directory of the launched process.
	ModuleRoot string
	// Unix selects the POSIX launcher conventions.
	Unix bool
	// Interactive reports that the build log is attached to a terminal.
	Interactive bool
}

// Invocation is the concrete process a build step resolves to.
type Invocation struct {
	Args []string
	Env  Environment
	Dir  string
}

// ValidationResult is the outcome of an advisory configuration check.
type ValidationResult struct {
	// Message is a human readable description. Empty when the check passed.
	Message string
	// Err is nil when the check passed.
	Err error
}

// OK reports whether the check passed.
func (r ValidationResult) OK() bool {
	return r.Err == nil
}
