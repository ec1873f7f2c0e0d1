package config

import (
	"strings"

	"github.com/dshills/uishell/internal/input/key"
)

// ParseKeySpec parses a key written in rc notation: a bare character
// ("q"), a named key ("Escape", "F5", "Tab"), or an angle-bracket
// chord ("<C-w>", "<A-Escape>", "<C-S-Tab>").
func ParseKeySpec(spec string) (key.Event, error) {
	if spec == "" {
		return key.Event{}, &KeySpecError{Spec: spec}
	}

	mods := key.ModNone
	body := spec
	if strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") && len(spec) > 2 {
		parts := strings.Split(spec[1:len(spec)-1], "-")
		body = parts[len(parts)-1]
		for _, part := range parts[:len(parts)-1] {
			switch part {
			case "C":
				mods = mods.With(key.ModCtrl)
			case "A":
				mods = mods.With(key.ModAlt)
			case "S":
				mods = mods.With(key.ModShift)
			case "M":
				mods = mods.With(key.ModMeta)
			default:
				return key.Event{}, &KeySpecError{Spec: spec}
			}
		}
	}

	runes := []rune(body)
	if len(runes) == 1 {
		return key.NewRuneEvent(runes[0], mods), nil
	}
	if k, ok := key.ParseName(body); ok {
		return key.NewSpecialEvent(k, mods), nil
	}
	return key.Event{}, &KeySpecError{Spec: spec}
}
