// SPDX-License-Identifier: Unlicense OR MIT

package pointer

import (
	"fmt"
	"strings"
)

// Event is a pointer event.
type Event struct {
	Kind   Kind
	Source Source
	// PointerID is the id for the pointer and can be used
	// to track a particular pointer from Press to
	// Release or Cancel.
	PointerID ID
	// Primary reports whether the event originates from the
	// pointing device designated as primary, such as the mouse
	// or the first finger of a touch.
	Primary bool
	// Button is the button that changed state for Press and
	// Release events. It is zero for other kinds, and for Press
	// and Release events the platform could not attribute to
	// a button.
	Button Buttons
	// Buttons are the set of pressed buttons reported by the
	// platform for this event.
	Buttons Buttons
}

type ID uint16

// Kind of an Event.
type Kind uint

// Source of an Event.
type Source uint8

// Buttons is a set of pointer buttons. A single button is
// represented by a set with exactly one member.
type Buttons uint8

const (
	// A Cancel event is generated when the current gesture is
	// interrupted by the system.
	Cancel Kind = 1 << iota
	// Press of a pointer button.
	Press
	// Release of a pointer button.
	Release
	// Move of a pointer.
	Move
	// Pointer enters the window.
	Enter
	// Pointer leaves the window.
	Leave
	// Scroll of a pointer.
	Scroll
)

const (
	// Mouse generated event.
	Mouse Source = iota
	// Touch generated event.
	Touch
	// Pen generated event.
	Pen
)

const (
	// ButtonPrimary is the primary button, usually the left button for a
	// right-handed user.
	ButtonPrimary Buttons = 1 << iota
	// ButtonSecondary is the secondary button, usually the right button for a
	// right-handed user.
	ButtonSecondary
	// ButtonAuxiliary is the auxiliary button, usually the middle button or
	// the wheel.
	ButtonAuxiliary
	// ButtonBack is the first extra mouse button, usually navigating back.
	ButtonBack
	// ButtonForward is the second extra mouse button, usually navigating
	// forward.
	ButtonForward
	// ButtonPenEraser is the eraser end of a pen.
	ButtonPenEraser
)

// AllButtons lists every button in enumeration order.
var AllButtons = []Buttons{
	ButtonPrimary,
	ButtonSecondary,
	ButtonAuxiliary,
	ButtonBack,
	ButtonForward,
	ButtonPenEraser,
}

// IsPrimary reports whether e originates from the primary
// pointing device.
func (e Event) IsPrimary() bool {
	return e.Primary
}

func (Event) ImplementsEvent() {}

func (e Event) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v %v id=%d", e.Source, e.Kind, e.PointerID)
	if e.Button != 0 {
		fmt.Fprintf(&b, " button=%v", e.Button)
	}
	if !e.Primary {
		b.WriteString(" secondary-device")
	}
	return b.String()
}

func (t Kind) String() string {
	if t == Cancel {
		return "Cancel"
	}
	var buf strings.Builder
	for tt := Kind(1); tt <= Scroll; tt <<= 1 {
		if t&tt > 0 {
			if buf.Len() > 0 {
				buf.WriteByte('|')
			}
			buf.WriteString((t & tt).string())
		}
	}
	if rest := t &^ (Scroll<<1 - 1); rest != 0 {
		if buf.Len() > 0 {
			buf.WriteByte('|')
		}
		fmt.Fprintf(&buf, "Kind(%#x)", uint(rest))
	}
	return buf.String()
}

func (t Kind) string() string {
	switch t {
	case Press:
		return "Press"
	case Release:
		return "Release"
	case Cancel:
		return "Cancel"
	case Move:
		return "Move"
	case Enter:
		return "Enter"
	case Leave:
		return "Leave"
	case Scroll:
		return "Scroll"
	default:
		panic("unknown Type")
	}
}

func (s Source) String() string {
	switch s {
	case Mouse:
		return "Mouse"
	case Touch:
		return "Touch"
	case Pen:
		return "Pen"
	default:
		return fmt.Sprintf("Source(%d)", uint8(s))
	}
}

// Contain reports whether the set b contains
// all of the buttons.
func (b Buttons) Contain(buttons Buttons) bool {
	return b&buttons == buttons
}

// Insert adds the buttons to the set.
func (b *Buttons) Insert(buttons Buttons) {
	*b |= buttons
}

// Remove deletes the buttons from the set.
func (b *Buttons) Remove(buttons Buttons) {
	*b &^= buttons
}

// Empty reports whether the set has no members.
func (b Buttons) Empty() bool {
	return b == 0
}

func (b Buttons) String() string {
	var strs []string
	for _, btn := range AllButtons {
		if b.Contain(btn) {
			strs = append(strs, btn.name())
		}
	}
	return strings.Join(strs, "|")
}

func (b Buttons) name() string {
	switch b {
	case ButtonPrimary:
		return "ButtonPrimary"
	case ButtonSecondary:
		return "ButtonSecondary"
	case ButtonAuxiliary:
		return "ButtonAuxiliary"
	case ButtonBack:
		return "ButtonBack"
	case ButtonForward:
		return "ButtonForward"
	case ButtonPenEraser:
		return "ButtonPenEraser"
	default:
		panic("unknown button")
	}
}

// ParseKind returns the Kind named by s. Press and Release are
// also known as down and up.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "cancel":
		return Cancel, nil
	case "press", "down":
		return Press, nil
	case "release", "up":
		return Release, nil
	case "move":
		return Move, nil
	case "enter":
		return Enter, nil
	case "leave":
		return Leave, nil
	case "scroll":
		return Scroll, nil
	}
	return 0, fmt.Errorf("pointer: unknown event kind %q", s)
}

// ParseSource returns the Source named by s.
func ParseSource(s string) (Source, error) {
	switch strings.ToLower(s) {
	case "mouse":
		return Mouse, nil
	case "touch":
		return Touch, nil
	case "pen":
		return Pen, nil
	}
	return 0, fmt.Errorf("pointer: unknown source %q", s)
}

// ParseButton returns the single button named by s. The empty
// string and "none" name no button and parse to zero.
func ParseButton(s string) (Buttons, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return 0, nil
	case "primary", "left":
		return ButtonPrimary, nil
	case "secondary", "right":
		return ButtonSecondary, nil
	case "auxiliary", "middle":
		return ButtonAuxiliary, nil
	case "back", "x1":
		return ButtonBack, nil
	case "forward", "x2":
		return ButtonForward, nil
	case "eraser", "pen-eraser":
		return ButtonPenEraser, nil
	}
	return 0, fmt.Errorf("pointer: unknown button %q", s)
}
