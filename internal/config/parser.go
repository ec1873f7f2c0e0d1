// Package config evaluates configuration for a session: line-based rc
// files with set/map/unmap handles, and structured TOML or YAML option
// files merged into the settings registry.
package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dshills/uishell/internal/binding"
	"github.com/dshills/uishell/internal/mode"
	"github.com/dshills/uishell/internal/session"
)

// HandleFunc evaluates one rc directive with its arguments.
type HandleFunc func(args []string) error

// Parser evaluates rc files against a session. Application-specific
// directives can be added with AddHandle; shortcut functions referable
// from `map` lines are registered with RegisterShortcut.
type Parser struct {
	mu        sync.RWMutex
	session   *session.Session
	handles   map[string]HandleFunc
	shortcuts map[string]binding.ShortcutFunc
	arguments map[string]int
}

// NewParser creates a parser bound to s with the default handles
// (set, map, unmap, include) installed.
func NewParser(s *session.Session) *Parser {
	p := &Parser{
		session:   s,
		handles:   make(map[string]HandleFunc),
		shortcuts: make(map[string]binding.ShortcutFunc),
		arguments: make(map[string]int),
	}
	p.handles["set"] = p.handleSet
	p.handles["map"] = p.handleMap
	p.handles["unmap"] = p.handleUnmap
	p.handles["include"] = p.handleInclude
	return p
}

// AddHandle registers an additional rc directive.
func (p *Parser) AddHandle(identifier string, handle HandleFunc) error {
	if identifier == "" {
		return ErrEmptyIdentifier
	}
	if handle == nil {
		return ErrNilHandle
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.handles[identifier]; ok {
		return &DuplicateHandleError{Identifier: identifier}
	}
	p.handles[identifier] = handle
	return nil
}

// RegisterShortcut names a shortcut function so `map` lines can refer
// to it. Re-registering a name replaces the function.
func (p *Parser) RegisterShortcut(identifier string, fn binding.ShortcutFunc) error {
	if identifier == "" {
		return ErrEmptyIdentifier
	}
	if fn == nil {
		return ErrNilHandle
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.shortcuts[identifier] = fn
	return nil
}

// RegisterArgument names an argument value so `map` lines can pass it.
func (p *Parser) RegisterArgument(identifier string, value int) error {
	if identifier == "" {
		return ErrEmptyIdentifier
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.arguments[identifier] = value
	return nil
}

// ParseFile evaluates the rc file at path line by line. Lines that
// fail are reported in the returned error but do not stop evaluation
// of the remaining lines.
func (p *Parser) ParseFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: opening %s: %w", path, err)
	}
	defer f.Close()

	var problems []string
	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		if err := p.ParseLine(scanner.Text()); err != nil {
			problems = append(problems, fmt.Sprintf("%s:%d: %v", filepath.Base(path), lineno, err))
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("config: reading %s: %w", path, err)
	}
	if len(problems) > 0 {
		return fmt.Errorf("config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// ParseLine evaluates a single rc line. Blank lines and #-comments are
// ignored.
func (p *Parser) ParseLine(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	fields := splitLine(line)
	directive := fields[0]

	p.mu.RLock()
	handle, ok := p.handles[directive]
	p.mu.RUnlock()
	if !ok {
		return &UnknownDirectiveError{Directive: directive}
	}
	return handle(fields[1:])
}

func (p *Parser) handleSet(args []string) error {
	switch len(args) {
	case 1:
		return p.session.Settings().SetFromString(args[0], "true")
	case 2:
		return p.session.Settings().SetFromString(args[0], args[1])
	default:
		return fmt.Errorf("set: expected name and value, got %d arguments", len(args))
	}
}

// handleMap evaluates `map [mode] <keyspec> <function> [argument]`.
func (p *Parser) handleMap(args []string) error {
	modeID, rest, err := p.splitModePrefix(args)
	if err != nil {
		return err
	}
	if len(rest) < 2 {
		return fmt.Errorf("map: expected key and function")
	}

	ev, err := ParseKeySpec(rest[0])
	if err != nil {
		return err
	}

	p.mu.RLock()
	fn, ok := p.shortcuts[rest[1]]
	p.mu.RUnlock()
	if !ok {
		return &UnknownShortcutError{Identifier: rest[1]}
	}

	arg := binding.Argument{}
	if len(rest) > 2 {
		p.mu.RLock()
		n, ok := p.arguments[rest[2]]
		p.mu.RUnlock()
		if ok {
			arg.N = n
		} else {
			arg.Data = rest[2]
		}
	}
	return p.session.Bindings().BindShortcut(modeID, ev, fn, arg)
}

func (p *Parser) handleUnmap(args []string) error {
	modeID, rest, err := p.splitModePrefix(args)
	if err != nil {
		return err
	}
	if len(rest) != 1 {
		return fmt.Errorf("unmap: expected exactly one key")
	}
	ev, err := ParseKeySpec(rest[0])
	if err != nil {
		return err
	}
	p.session.Bindings().UnbindShortcut(modeID, ev)
	return nil
}

func (p *Parser) handleInclude(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("include: expected exactly one path")
	}
	return p.ParseFile(args[0])
}

// splitModePrefix consumes an optional [mode] prefix from the
// arguments of map/unmap, defaulting to the normal mode.
func (p *Parser) splitModePrefix(args []string) (mode.ID, []string, error) {
	modes := p.session.Modes()
	if len(args) > 0 && strings.HasPrefix(args[0], "[") && strings.HasSuffix(args[0], "]") {
		name := strings.Trim(args[0], "[]")
		id, ok := modes.Lookup(name)
		if !ok {
			return mode.None, nil, fmt.Errorf("config: unknown mode %q", name)
		}
		return id, args[1:], nil
	}
	return modes.Normal(), args, nil
}

func splitLine(line string) []string {
	return strings.Fields(line)
}
