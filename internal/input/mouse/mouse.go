// Package mouse defines the pointer event vocabulary consumed by the
// shell's mouse binding table.
package mouse

import "github.com/dshills/uishell/internal/input/key"

// Button identifies a mouse button.
type Button uint8

const (
	// ButtonNone indicates no button.
	ButtonNone Button = iota
	// ButtonLeft is the primary button.
	ButtonLeft
	// ButtonMiddle is the middle button.
	ButtonMiddle
	// ButtonRight is the secondary button.
	ButtonRight
	// ButtonScrollUp indicates scroll wheel up.
	ButtonScrollUp
	// ButtonScrollDown indicates scroll wheel down.
	ButtonScrollDown
	// ButtonScrollLeft indicates horizontal scroll left.
	ButtonScrollLeft
	// ButtonScrollRight indicates horizontal scroll right.
	ButtonScrollRight
)

// String returns the button name.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	case ButtonScrollUp:
		return "scroll-up"
	case ButtonScrollDown:
		return "scroll-down"
	case ButtonScrollLeft:
		return "scroll-left"
	case ButtonScrollRight:
		return "scroll-right"
	default:
		return "none"
	}
}

// IsScroll returns true for scroll wheel buttons.
func (b Button) IsScroll() bool {
	switch b {
	case ButtonScrollUp, ButtonScrollDown, ButtonScrollLeft, ButtonScrollRight:
		return true
	}
	return false
}

// Phase is the stage of a pointer interaction the event reports.
type Phase uint8

const (
	// PhaseNone indicates no phase.
	PhaseNone Phase = iota
	// PhasePress indicates a button press.
	PhasePress
	// PhaseRelease indicates a button release.
	PhaseRelease
	// PhaseMotion indicates pointer movement.
	PhaseMotion
	// PhaseScroll indicates a scroll wheel tick.
	PhaseScroll
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePress:
		return "press"
	case PhaseRelease:
		return "release"
	case PhaseMotion:
		return "motion"
	case PhaseScroll:
		return "scroll"
	default:
		return "none"
	}
}

// Position is a view coordinate.
type Position struct {
	X int
	Y int
}

// Event is a pointer event delivered by the embedding event source.
type Event struct {
	// Position is where the event occurred, in view coordinates.
	Position Position

	// Button is the button involved, ButtonNone for pure motion.
	Button Button

	// Modifiers are the keyboard modifiers held during the event.
	Modifiers key.Modifier

	// Phase is the interaction stage.
	Phase Phase
}
