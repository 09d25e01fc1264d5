package invocation

import (
	"strings"

	"github.com/magiconair/properties"
	"go.trai.ch/gant/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// propertyBlanks is the whitespace of the properties format.
	propertyBlanks = " \t\f"

	// emptyKeyStandIn takes the place of an empty key while an entry is parsed.
	emptyKeyStandIn = "k"
)

// Property is one entry of a properties block.
type Property struct {
	Key   string
	Value string
}

// ParseProperties parses a Java properties block.
// Entries are returned in order of first appearance; a repeated key takes the last value.
// An entry may have an empty key ("=value"), and a backslash ending the block is dropped.
func ParseProperties(text string) ([]Property, error) {
	out := []Property{}
	index := make(map[string]int)

	for _, entry := range propertyEntries(text) {
		parsed, err := parsePropertyEntry(entry)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidProperties, err.Error()), "entry", entry)
		}
		for _, p := range parsed {
			if i, ok := index[p.Key]; ok {
				out[i].Value = p.Value
				continue
			}
			index[p.Key] = len(out)
			out = append(out, p)
		}
	}
	return out, nil
}

// propertyEntries splits a block into logical lines. A line ending in an odd
// number of backslashes continues on the next one; blank and comment lines
// never start an entry.
func propertyEntries(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var entries, pending []string
	for _, line := range strings.Split(text, "\n") {
		if len(pending) == 0 {
			trimmed := strings.TrimLeft(line, propertyBlanks)
			if trimmed == "" || trimmed[0] == '#' || trimmed[0] == '!' {
				continue
			}
		}

		pending = append(pending, line)
		if continuesLine(line) {
			continue
		}
		entries = append(entries, strings.Join(pending, "\n"))
		pending = nil
	}

	if len(pending) > 0 {
		// A continuation at the end of the block just ends the entry.
		entries = append(entries, strings.TrimSuffix(strings.Join(pending, "\n"), `\`))
	}
	return entries
}

func continuesLine(line string) bool {
	n := len(line) - len(strings.TrimRight(line, `\`))
	return n%2 == 1
}

func parsePropertyEntry(entry string) ([]Property, error) {
	line := strings.TrimLeft(entry, propertyBlanks)
	emptyKey := strings.HasPrefix(line, "=") || strings.HasPrefix(line, ":")
	if emptyKey {
		line = emptyKeyStandIn + line
	}

	loader := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	p, err := loader.LoadBytes([]byte(line))
	if err != nil {
		return nil, err
	}

	keys := p.Keys()
	out := make([]Property, 0, len(keys))
	for _, k := range keys {
		v, _ := p.Get(k)
		if emptyKey {
			k = ""
		}
		out = append(out, Property{Key: k, Value: v})
	}
	return out, nil
}

// PropertyFlags turns a properties block into -Dkey=value flags.
// Values may reference build variables as ${name} or $name.
func PropertyFlags(text string, vars domain.Variables) ([]string, error) {
	props, err := ParseProperties(text)
	if err != nil {
		return nil, err
	}

	flags := make([]string, 0, len(props))
	for _, p := range props {
		flags = append(flags, "-D"+p.Key+"="+vars.Expand(p.Value))
	}
	return flags, nil
}
