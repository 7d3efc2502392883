// SPDX-License-Identifier: Unlicense OR MIT

/*
Package input implements per-frame tracking of pointer state.

A [PrimaryPointerState] is fed every pointer event received during a
frame, queried by application logic, and reset with
[PrimaryPointerState.ClearFrame] at the frame boundary:

	for {
		for _, e := range frameEvents {
			state.ProcessPointerEvent(e)
		}
		if state.PrimaryJustPressed() {
			...
		}
		state.ClearFrame()
	}

Deciding when a frame begins or ends, and where events come from, is
left to the caller. A PrimaryPointerState is not safe for concurrent
use.
*/
package input
