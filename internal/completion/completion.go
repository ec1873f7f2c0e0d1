// Package completion models the candidate lists shown below the
// inputbar: groups of entries produced by command completers, cycled
// through with Tab, plus the longest common prefix used to extend the
// current input.
package completion

import "strings"

// Entry is one completion candidate.
type Entry struct {
	// Value replaces the current argument when selected.
	Value string

	// Description is optional annotation shown next to the value.
	Description string
}

// Group is a titled set of entries.
type Group struct {
	// Title names the group; may be empty for the default group.
	Title string

	entries []Entry
}

// Add appends an entry to the group.
func (g *Group) Add(value, description string) {
	g.entries = append(g.entries, Entry{Value: value, Description: description})
}

// Entries returns the group's entries in insertion order.
func (g *Group) Entries() []Entry {
	return g.entries
}

// Completion is the full candidate set for the current input.
type Completion struct {
	groups   []*Group
	selected int // flat index; -1 means no selection
}

// New creates an empty completion.
func New() *Completion {
	return &Completion{selected: -1}
}

// AddGroup appends a new group and returns it.
func (c *Completion) AddGroup(title string) *Group {
	g := &Group{Title: title}
	c.groups = append(c.groups, g)
	return g
}

// Groups returns the groups in insertion order.
func (c *Completion) Groups() []*Group {
	return c.groups
}

// Entries returns every entry across all groups, flattened in order.
func (c *Completion) Entries() []Entry {
	var all []Entry
	for _, g := range c.groups {
		all = append(all, g.entries...)
	}
	return all
}

// Len returns the total number of entries.
func (c *Completion) Len() int {
	n := 0
	for _, g := range c.groups {
		n += len(g.entries)
	}
	return n
}

// Next advances the selection and returns the selected entry. The
// selection wraps around; Next on an empty completion returns false.
func (c *Completion) Next() (Entry, bool) {
	return c.step(1)
}

// Previous steps the selection backwards.
func (c *Completion) Previous() (Entry, bool) {
	return c.step(-1)
}

func (c *Completion) step(delta int) (Entry, bool) {
	all := c.Entries()
	if len(all) == 0 {
		return Entry{}, false
	}
	c.selected += delta
	switch {
	case c.selected >= len(all):
		c.selected = 0
	case c.selected < 0:
		c.selected = len(all) - 1
	}
	return all[c.selected], true
}

// Selected returns the currently selected entry, if any.
func (c *Completion) Selected() (Entry, bool) {
	all := c.Entries()
	if c.selected < 0 || c.selected >= len(all) {
		return Entry{}, false
	}
	return all[c.selected], true
}

// ResetSelection clears the selection without dropping entries.
func (c *Completion) ResetSelection() {
	c.selected = -1
}

// CommonPrefix returns the longest prefix shared by every entry value.
func (c *Completion) CommonPrefix() string {
	all := c.Entries()
	if len(all) == 0 {
		return ""
	}
	prefix := all[0].Value
	for _, e := range all[1:] {
		prefix = commonPrefix(prefix, e.Value)
		if prefix == "" {
			break
		}
	}
	return prefix
}

func commonPrefix(a, b string) string {
	max := min(len(a), len(b))
	i := 0
	for i < max && a[i] == b[i] {
		i++
	}
	return a[:i]
}

// FilterPrefix returns the values among candidates that start with
// current. Helper for command completers.
func FilterPrefix(candidates []string, current string) []string {
	var out []string
	for _, c := range candidates {
		if strings.HasPrefix(c, current) {
			out = append(out, c)
		}
	}
	return out
}
