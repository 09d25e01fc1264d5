package invocation

import (
	"regexp"
	"strings"

	"github.com/google/shlex"
	"go.trai.ch/gant/internal/core/domain"
	"go.trai.ch/zerr"
)

var (
	lineBreaks     = regexp.MustCompile(`[\t\r\n]+`)
	disabledTokens = regexp.MustCompile(`(^|\s)#\S*`)
)

// NormalizeTargets collapses tabs and line breaks into single spaces.
func NormalizeTargets(targets string) string {
	return lineBreaks.ReplaceAllString(targets, " ")
}

// StripDisabled removes every whitespace separated token that starts with '#'.
func StripDisabled(targets string) string {
	return disabledTokens.ReplaceAllString(targets, "$1")
}

// TokenizeTargets turns the free text targets of a step into arguments.
// Quoting follows POSIX shell rules, except that a quote left open runs to the
// end of the targets. Disabled tokens are removed first, so a "#word" inside
// quotes takes the closing quote with it.
func TokenizeTargets(targets string) ([]string, error) {
	if strings.TrimSpace(targets) == "" {
		return nil, nil
	}

	text := StripDisabled(NormalizeTargets(targets))
	tokens, err := shlex.Split(text)
	if err != nil && strings.Contains(err.Error(), "closing quote") {
		tokens, err = closeOpenQuote(text)
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidTargets, err.Error()), "targets", targets)
	}
	return tokens, nil
}

// closeOpenQuote tokenizes text with its open quote closed at the end.
func closeOpenQuote(text string) ([]string, error) {
	var err error
	for _, quote := range []string{`"`, `'`} {
		var tokens []string
		if tokens, err = shlex.Split(text + quote); err == nil {
			return tokens, nil
		}
	}
	return nil, err
}
