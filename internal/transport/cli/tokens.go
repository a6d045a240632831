package cli

import (
	"errors"
	"strings"
	"unicode"
)

var errUnterminatedQuote = errors.New("unterminated quote")

// nextField splits off the first whitespace-separated field of s.
// field is empty when s holds only whitespace.
func nextField(s string) (field, rest string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := strings.IndexFunc(s, unicode.IsSpace)
	if end < 0 {
		return s, ""
	}
	return s[:end], s[end:]
}

// nextName splits off a user name: either a double-quoted string, which may
// contain spaces, or a plain field. For an unterminated quote the returned
// rest is the text after the opening quote.
func nextName(s string) (name, rest string, err error) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	if !strings.HasPrefix(s, `"`) {
		name, rest = nextField(s)
		return name, rest, nil
	}

	s = s[1:]
	end := strings.IndexByte(s, '"')
	if end < 0 {
		return "", s, errUnterminatedQuote
	}
	return s[:end], s[end+1:], nil
}
