package command

import (
	"sort"
	"strings"
	"sync"
)

// Registry holds the command and special-command tables of a session.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]*Command // by name
	abbrevs  map[string]*Command // by abbreviation, last registered wins
	specials map[rune]*SpecialCommand
}

// NewRegistry creates an empty command registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]*Command),
		abbrevs:  make(map[string]*Command),
		specials: make(map[rune]*SpecialCommand),
	}
}

// Register adds a command. The name must be non-empty and unique.
// Abbreviations may shadow each other; the most recently registered
// abbreviation wins on exact-abbreviation lookup.
func (r *Registry) Register(cmd Command) error {
	if cmd.Name == "" {
		return ErrEmptyName
	}
	if cmd.Handler == nil {
		return ErrNilHandler
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.commands[cmd.Name]; ok {
		return &DuplicateError{Name: cmd.Name}
	}
	c := cmd
	r.commands[c.Name] = &c
	if c.Abbreviation != "" {
		r.abbrevs[c.Abbreviation] = &c
	}
	return nil
}

// RegisterSpecial adds a special command. The trigger character must
// not collide with an existing special command.
func (r *Registry) RegisterSpecial(sc SpecialCommand) error {
	if sc.Trigger == 0 {
		return ErrEmptyTrigger
	}
	if sc.Handler == nil {
		return ErrNilHandler
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.specials[sc.Trigger]; ok {
		return &DuplicateError{Name: string(sc.Trigger)}
	}
	s := sc
	r.specials[s.Trigger] = &s
	return nil
}

// Special returns the special command registered for the first rune of
// input, if any.
func (r *Registry) Special(input string) (*SpecialCommand, bool) {
	if input == "" {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	sc, ok := r.specials[[]rune(input)[0]]
	return sc, ok
}

// Resolve finds the command for name. Priority: exact name, exact
// abbreviation, then unique prefix across names and abbreviations. An
// ambiguous prefix is an error, never a guess.
func (r *Registry) Resolve(name string) (*Command, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if cmd, ok := r.commands[name]; ok {
		return cmd, nil
	}
	if cmd, ok := r.abbrevs[name]; ok {
		return cmd, nil
	}

	var matches []*Command
	seen := make(map[*Command]bool)
	for n, cmd := range r.commands {
		if strings.HasPrefix(n, name) && !seen[cmd] {
			seen[cmd] = true
			matches = append(matches, cmd)
		}
	}
	for a, cmd := range r.abbrevs {
		if strings.HasPrefix(a, name) && !seen[cmd] {
			seen[cmd] = true
			matches = append(matches, cmd)
		}
	}

	switch len(matches) {
	case 0:
		return nil, &UnknownCommandError{Input: name}
	case 1:
		return matches[0], nil
	default:
		names := make([]string, len(matches))
		for i, cmd := range matches {
			names[i] = cmd.Name
		}
		sort.Strings(names)
		return nil, &AmbiguousCommandError{Input: name, Candidates: names}
	}
}

// Submit parses input and executes the matching command or special
// command. The unknown-command case is reported as an
// UnknownCommandError for the caller to route to its hook.
func (r *Registry) Submit(input string) error {
	if sc, ok := r.Special(input); ok {
		return sc.Handler(string([]rune(input)[1:]))
	}

	name, args := Tokenize(input)
	if name == "" {
		return &UnknownCommandError{Input: input}
	}
	cmd, err := r.Resolve(name)
	if err != nil {
		return err
	}
	return cmd.Handler(args)
}

// Changed routes an intermediate inputbar edit to an always-listening
// special command, if the input starts with one. Returns true when a
// handler consumed the input.
func (r *Registry) Changed(input string) (bool, error) {
	sc, ok := r.Special(input)
	if !ok || !sc.AlwaysListen {
		return false, nil
	}
	return true, sc.Handler(string([]rune(input)[1:]))
}

// Commands returns all registered commands sorted by name.
func (r *Registry) Commands() []*Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cmds := make([]*Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name < cmds[j].Name })
	return cmds
}

// Clear drops every command and special command.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands = make(map[string]*Command)
	r.abbrevs = make(map[string]*Command)
	r.specials = make(map[rune]*SpecialCommand)
}
