// Package tcell translates tcell terminal events into the shell's key
// and mouse event vocabulary. It is the in-repo realization of the
// external event source collaborator: the embedding application pumps
// the tcell event loop and feeds the translated events into the
// session's dispatch operations.
package tcell

import (
	tc "github.com/gdamore/tcell/v2"

	"github.com/dshills/uishell/internal/input/key"
	"github.com/dshills/uishell/internal/input/mouse"
)

var specialKeys = map[tc.Key]key.Key{
	tc.KeyEscape:     key.KeyEscape,
	tc.KeyEnter:      key.KeyEnter,
	tc.KeyTab:        key.KeyTab,
	tc.KeyBackspace:  key.KeyBackspace,
	tc.KeyBackspace2: key.KeyBackspace,
	tc.KeyDelete:     key.KeyDelete,
	tc.KeyInsert:     key.KeyInsert,
	tc.KeyHome:       key.KeyHome,
	tc.KeyEnd:        key.KeyEnd,
	tc.KeyPgUp:       key.KeyPageUp,
	tc.KeyPgDn:       key.KeyPageDown,
	tc.KeyUp:         key.KeyUp,
	tc.KeyDown:       key.KeyDown,
	tc.KeyLeft:       key.KeyLeft,
	tc.KeyRight:      key.KeyRight,
	tc.KeyF1:         key.KeyF1,
	tc.KeyF2:         key.KeyF2,
	tc.KeyF3:         key.KeyF3,
	tc.KeyF4:         key.KeyF4,
	tc.KeyF5:         key.KeyF5,
	tc.KeyF6:         key.KeyF6,
	tc.KeyF7:         key.KeyF7,
	tc.KeyF8:         key.KeyF8,
	tc.KeyF9:         key.KeyF9,
	tc.KeyF10:        key.KeyF10,
	tc.KeyF11:        key.KeyF11,
	tc.KeyF12:        key.KeyF12,
}

// TranslateKey converts a tcell key event. The second return is false
// for keys the shell has no representation for.
func TranslateKey(ev *tc.EventKey) (key.Event, bool) {
	mods := translateMods(ev.Modifiers())

	if k, ok := specialKeys[ev.Key()]; ok {
		return key.NewSpecialEvent(k, mods), true
	}

	// tcell reports Ctrl+letter as a dedicated key code.
	if ev.Key() >= tc.KeyCtrlA && ev.Key() <= tc.KeyCtrlZ {
		r := rune('a' + (ev.Key() - tc.KeyCtrlA))
		return key.NewRuneEvent(r, mods.With(key.ModCtrl)), true
	}

	if ev.Key() == tc.KeyRune {
		if ev.Rune() == ' ' {
			return key.NewSpecialEvent(key.KeySpace, mods), true
		}
		return key.NewRuneEvent(ev.Rune(), mods), true
	}
	return key.Event{}, false
}

// TranslateMouse converts a tcell mouse event. prev is the button
// mask of the previous event, used to tell presses from releases and
// motion.
func TranslateMouse(ev *tc.EventMouse, prev tc.ButtonMask) (mouse.Event, tc.ButtonMask) {
	x, y := ev.Position()
	out := mouse.Event{
		Position:  mouse.Position{X: x, Y: y},
		Modifiers: translateMods(ev.Modifiers()),
	}
	buttons := ev.Buttons()

	switch {
	case buttons&tc.WheelUp != 0:
		out.Button = mouse.ButtonScrollUp
		out.Phase = mouse.PhaseScroll
	case buttons&tc.WheelDown != 0:
		out.Button = mouse.ButtonScrollDown
		out.Phase = mouse.PhaseScroll
	case buttons&tc.WheelLeft != 0:
		out.Button = mouse.ButtonScrollLeft
		out.Phase = mouse.PhaseScroll
	case buttons&tc.WheelRight != 0:
		out.Button = mouse.ButtonScrollRight
		out.Phase = mouse.PhaseScroll
	default:
		pressed := buttons &^ prev
		released := prev &^ buttons
		switch {
		case pressed != 0:
			out.Button = translateButton(pressed)
			out.Phase = mouse.PhasePress
		case released != 0:
			out.Button = translateButton(released)
			out.Phase = mouse.PhaseRelease
		default:
			out.Button = mouse.ButtonNone
			out.Phase = mouse.PhaseMotion
		}
	}
	return out, buttons
}

func translateButton(mask tc.ButtonMask) mouse.Button {
	switch {
	case mask&tc.Button1 != 0:
		return mouse.ButtonLeft
	case mask&tc.Button2 != 0:
		return mouse.ButtonRight
	case mask&tc.Button3 != 0:
		return mouse.ButtonMiddle
	default:
		return mouse.ButtonNone
	}
}

func translateMods(mods tc.ModMask) key.Modifier {
	out := key.ModNone
	if mods&tc.ModShift != 0 {
		out = out.With(key.ModShift)
	}
	if mods&tc.ModCtrl != 0 {
		out = out.With(key.ModCtrl)
	}
	if mods&tc.ModAlt != 0 {
		out = out.With(key.ModAlt)
	}
	if mods&tc.ModMeta != 0 {
		out = out.With(key.ModMeta)
	}
	return out
}
