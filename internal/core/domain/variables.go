package domain

import (
	"regexp"
	"strings"

	"go.trai.ch/zerr"
)

// Variable is a single build variable.
type Variable struct {
	Key   string
	Value string
}

// Variables is an ordered set of build variables. Declaration order is kept
// because it decides the order of the -D flags handed to Gant.
type Variables []Variable

// ParseVariables parses key=value pairs in order. A repeated key keeps its
// first position and takes the last value.
func ParseVariables(pairs []string) (Variables, error) {
	var vars Variables
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || k == "" {
			return nil, zerr.With(zerr.Wrap(ErrInvalidVariable, "cannot parse build variable"), "variable", pair)
		}
		vars = vars.With(k, v)
	}
	return vars, nil
}

// Lookup returns the value of key.
func (v Variables) Lookup(key string) (string, bool) {
	for _, kv := range v {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return "", false
}

// With returns a copy of v with key set to value.
func (v Variables) With(key, value string) Variables {
	out := make(Variables, len(v), len(v)+1)
	copy(out, v)
	for i := range out {
		if out[i].Key == key {
			out[i].Value = value
			return out
		}
	}
	return append(out, Variable{Key: key, Value: value})
}

var macroPattern = regexp.MustCompile(`\$(\{[A-Za-z0-9_.]+\}|[A-Za-z0-9_]+)`)

// Expand replaces ${name} and $name references with variable values.
// References to unknown variables are left untouched.
func (v Variables) Expand(s string) string {
	if !strings.Contains(s, "$") {
		return s
	}
	return macroPattern.ReplaceAllStringFunc(s, func(ref string) string {
		name := strings.Trim(ref[1:], "{}")
		if value, ok := v.Lookup(name); ok {
			return value
		}
		return ref
	})
}
