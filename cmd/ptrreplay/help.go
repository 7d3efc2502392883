// SPDX-License-Identifier: Unlicense OR MIT

package main

const mainUsage = `The ptrreplay command plays a script of pointer events through
a primary pointer state, one frame at a time.

Usage:

	ptrreplay [flags] <script.yaml>

For every frame the events are processed, the just pressed, just
released and held buttons are printed, the expectations of the frame
are checked and the frame is cleared.

The -v flag logs every event as it is played.

The -q flag suppresses the per-frame output.

ptrreplay exits with status 1 if the script fails to load or any
expectation fails.
`
