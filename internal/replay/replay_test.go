// SPDX-License-Identifier: Unlicense OR MIT

package replay

import (
	"bytes"
	"errors"
	"log"
	"path/filepath"
	"strings"
	"testing"

	"gioui.org/inputstate/io/input"
	"gioui.org/inputstate/io/pointer"
)

func TestScripts(t *testing.T) {
	for _, name := range []string{"scenario.yaml", "chord.yaml"} {
		t.Run(name, func(t *testing.T) {
			s, err := LoadFile(filepath.Join("testdata", name))
			if err != nil {
				t.Fatal(err)
			}
			var st input.PrimaryPointerState
			snaps, err := Play(s, &st)
			if err != nil {
				t.Fatal(err)
			}
			if got, want := len(snaps), len(s.Frames); got != want {
				t.Errorf("got %d snapshots; want %d", got, want)
			}
			if n := len(st.Events()); n != 0 {
				t.Errorf("%d events left after playback", n)
			}
		})
	}
}

func TestFailedExpectations(t *testing.T) {
	s, err := LoadFile(filepath.Join("testdata", "failing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	var st input.PrimaryPointerState
	snaps, err := Play(s, &st)
	if len(snaps) != 2 {
		t.Errorf("got %d snapshots; want 2", len(snaps))
	}
	var errs ExpectationErrors
	if !errors.As(err, &errs) {
		t.Fatalf("got error %v; want ExpectationErrors", err)
	}
	if len(errs) != 2 {
		t.Fatalf("got %d failed expectations; want 2: %v", len(errs), errs)
	}
	if got, want := errs[0].Error(), "frame 0: pressed: got [ButtonSecondary], want [ButtonPrimary]"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}
	if got, want := errs[1].Query, "any_down"; got != want {
		t.Errorf("got query %q; want %q", got, want)
	}
	if got := errs.Frames(); len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Errorf("got frames %v; want [0 1]", got)
	}
}

func TestSnapshot(t *testing.T) {
	s, err := Load(strings.NewReader(`
frames:
  - events:
      - {kind: press, button: back}
      - {kind: press, button: secondary, primary: false}
  - events:
      - {kind: release, button: back, source: pen}
`))
	if err != nil {
		t.Fatal(err)
	}
	var st input.PrimaryPointerState
	snaps, err := Play(s, &st)
	if err != nil {
		t.Fatal(err)
	}
	want := []Snapshot{
		{Frame: 0, Pressed: pointer.ButtonBack, Down: pointer.ButtonBack, AnyDown: true, Events: 1},
		{Frame: 1, Released: pointer.ButtonBack, Events: 1},
	}
	if len(snaps) != len(want) {
		t.Fatalf("got %d snapshots; want %d", len(snaps), len(want))
	}
	for i := range want {
		if snaps[i] != want[i] {
			t.Errorf("got %v; want %v", snaps[i], want[i])
		}
	}
	if got, want := snaps[1].String(), "frame 1: pressed=[] released=[ButtonBack] down=[] any_down=false events=1"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}
}

func TestLoadErrors(t *testing.T) {
	for _, tc := range []struct {
		name   string
		script string
		err    string
	}{
		{"empty", "", "empty script"},
		{"unknown field", "frames:\n  - events:\n      - {kind: press, buton: primary}\n", "buton"},
		{"unknown kind", "frames:\n  - events:\n      - {kind: drag}\n", "frame 0: event 0"},
		{"unknown button", "frames:\n  - {}\n  - events:\n      - {kind: press, button: thumb}\n", "frame 1: event 0"},
		{"button on move", "frames:\n  - events:\n      - {kind: move, button: primary}\n", "button \"primary\" on Move event"},
		{"none expected", "frames:\n  - expect:\n      down: [none]\n", "names no button"},
		{"unknown source", "frames:\n  - events:\n      - {kind: move, source: trackball}\n", "unknown source"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tc.script))
			if err == nil {
				t.Fatal("Load succeeded")
			}
			if !strings.Contains(err.Error(), tc.err) {
				t.Errorf("got error %q; want it to contain %q", err, tc.err)
			}
		})
	}
}

func TestPlayerLogger(t *testing.T) {
	s := &Script{Frames: []Frame{{
		Events: []pointer.Event{{Kind: pointer.Press, Primary: true, Button: pointer.ButtonPrimary}},
	}}}
	var buf bytes.Buffer
	p := Player{Logger: log.New(&buf, "", 0)}
	var st input.PrimaryPointerState
	if _, err := p.Play(s, &st); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "frame 0: Mouse Press id=0 button=ButtonPrimary\n"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}
	if !st.IsDown(pointer.ButtonPrimary) {
		t.Error("held set not carried past playback")
	}
}
