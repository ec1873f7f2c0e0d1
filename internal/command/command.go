// Package command implements the inputbar command tables: named
// commands resolved by exact name, abbreviation or unambiguous prefix,
// and special commands triggered by a single leading character.
package command

// HandlerFunc executes a command with its argument list.
type HandlerFunc func(args []string) error

// CompleterFunc produces completion candidates for a partial argument.
type CompleterFunc func(current string) []string

// SpecialFunc handles special-command input. input is the text after
// the trigger character.
type SpecialFunc func(input string) error

// Command is an inputbar command.
type Command struct {
	// Name is the unique command name, matched exactly or by prefix.
	Name string

	// Abbreviation is an optional short form.
	Abbreviation string

	// Description is shown in completion listings.
	Description string

	// Handler executes the command.
	Handler HandlerFunc

	// Completer produces argument completions; may be nil.
	Completer CompleterFunc
}

// SpecialCommand is a single-character-triggered command that
// intercepts the inputbar before ordinary parsing.
type SpecialCommand struct {
	// Trigger is the leading character, e.g. '/' for search.
	Trigger rune

	// Handler receives the input after the trigger.
	Handler SpecialFunc

	// AlwaysListen routes every inputbar edit to the handler, not
	// only the final submission (incremental search).
	AlwaysListen bool
}
