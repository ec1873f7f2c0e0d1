package command

import "strings"

// Tokenize splits an inputbar line into a command name and argument
// list. Double quotes group words into a single argument; there is no
// escape processing beyond that.
func Tokenize(input string) (string, []string) {
	var tokens []string
	var current strings.Builder
	inQuote := false
	hasToken := false

	flush := func() {
		if hasToken {
			tokens = append(tokens, current.String())
			current.Reset()
			hasToken = false
		}
	}

	for _, r := range input {
		switch {
		case r == '"':
			inQuote = !inQuote
			hasToken = true
		case (r == ' ' || r == '\t') && !inQuote:
			flush()
		default:
			current.WriteRune(r)
			hasToken = true
		}
	}
	flush()

	if len(tokens) == 0 {
		return "", nil
	}
	return tokens[0], tokens[1:]
}
