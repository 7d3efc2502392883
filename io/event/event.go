// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains the types shared by input events.
package event

// Event is the marker interface for input events.
type Event interface {
	ImplementsEvent()
}

// Processor consumes input events, one at a time, in the
// order they were received.
type Processor interface {
	ProcessEvent(e Event)
}
