// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"fmt"

	"golang.org/x/exp/slices"

	"gioui.org/inputstate/io/event"
	"gioui.org/inputstate/io/pointer"
)

// PrimaryPointerState tracks the buttons of the primary pointing
// device. The zero value is ready to use.
//
// Copies of a PrimaryPointerState share the storage of the frame
// events; use Clone for an independent copy.
type PrimaryPointerState struct {
	// events holds the primary pointer events received since the
	// last ClearFrame.
	events []pointer.Event
	// down is the set of held buttons. It survives ClearFrame.
	down pointer.Buttons
}

var _ event.Processor = (*PrimaryPointerState)(nil)

// JustPressed reports whether button was pressed within the current
// frame, that is whether a Press event for button was received from
// the primary pointing device since the last ClearFrame.
func (s *PrimaryPointerState) JustPressed(button pointer.Buttons) bool {
	return s.happened(pointer.Press, button)
}

// JustReleased is like JustPressed for Release events.
func (s *PrimaryPointerState) JustReleased(button pointer.Buttons) bool {
	return s.happened(pointer.Release, button)
}

func (s *PrimaryPointerState) happened(k pointer.Kind, button pointer.Buttons) bool {
	return slices.IndexFunc(s.events, func(e pointer.Event) bool {
		return e.Kind == k && e.Button != 0 && e.Button == button
	}) != -1
}

// AuxiliaryJustPressed is JustPressed(pointer.ButtonAuxiliary).
func (s *PrimaryPointerState) AuxiliaryJustPressed() bool {
	return s.JustPressed(pointer.ButtonAuxiliary)
}

// AuxiliaryJustReleased is JustReleased(pointer.ButtonAuxiliary).
func (s *PrimaryPointerState) AuxiliaryJustReleased() bool {
	return s.JustReleased(pointer.ButtonAuxiliary)
}

// PrimaryJustPressed is JustPressed(pointer.ButtonPrimary).
func (s *PrimaryPointerState) PrimaryJustPressed() bool {
	return s.JustPressed(pointer.ButtonPrimary)
}

// PrimaryJustReleased is JustReleased(pointer.ButtonPrimary).
func (s *PrimaryPointerState) PrimaryJustReleased() bool {
	return s.JustReleased(pointer.ButtonPrimary)
}

// SecondaryJustPressed is JustPressed(pointer.ButtonSecondary).
func (s *PrimaryPointerState) SecondaryJustPressed() bool {
	return s.JustPressed(pointer.ButtonSecondary)
}

// SecondaryJustReleased is JustReleased(pointer.ButtonSecondary).
func (s *PrimaryPointerState) SecondaryJustReleased() bool {
	return s.JustReleased(pointer.ButtonSecondary)
}

// AnyDown reports whether any button is held.
func (s *PrimaryPointerState) AnyDown() bool {
	return !s.down.Empty()
}

// IsDown reports whether button is held.
func (s *PrimaryPointerState) IsDown(button pointer.Buttons) bool {
	return button != 0 && s.down.Contain(button)
}

// Down returns the set of held buttons.
func (s *PrimaryPointerState) Down() pointer.Buttons {
	return s.down
}

// Events returns a copy of the primary pointer events of the current
// frame in the order they were processed.
func (s *PrimaryPointerState) Events() []pointer.Event {
	return slices.Clone(s.events)
}

// NumEvents returns the number of events recorded in the current frame.
func (s *PrimaryPointerState) NumEvents() int {
	return len(s.events)
}

// Clone returns a copy of s that does not share storage with s.
func (s *PrimaryPointerState) Clone() PrimaryPointerState {
	return PrimaryPointerState{
		events: slices.Clone(s.events),
		down:   s.down,
	}
}

// ClearFrame clears the per-frame state to prepare for a new frame.
// The set of held buttons is kept.
func (s *PrimaryPointerState) ClearFrame() {
	s.events = s.events[:0]
}

// ProcessPointerEvent records e if it originates from the primary
// pointing device. Events from other devices are dropped.
func (s *PrimaryPointerState) ProcessPointerEvent(e pointer.Event) {
	if !e.IsPrimary() {
		return
	}
	switch {
	case e.Kind == pointer.Press && e.Button != 0:
		s.down.Insert(e.Button)
	case e.Kind == pointer.Release && e.Button != 0:
		s.down.Remove(e.Button)
	}
	s.events = append(s.events, e)
}

// ProcessEvent calls ProcessPointerEvent for pointer events and
// ignores the rest.
func (s *PrimaryPointerState) ProcessEvent(e event.Event) {
	switch e := e.(type) {
	case pointer.Event:
		s.ProcessPointerEvent(e)
	case *pointer.Event:
		if e != nil {
			s.ProcessPointerEvent(*e)
		}
	}
}

func (s *PrimaryPointerState) String() string {
	return fmt.Sprintf("PrimaryPointerState{down: %v, events: %v}", s.down, s.events)
}
