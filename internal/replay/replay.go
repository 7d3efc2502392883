// SPDX-License-Identifier: Unlicense OR MIT

// Package replay plays scripted frames of pointer events into a
// PrimaryPointerState, checking the per-frame queries against
// expectations written in the script.
//
// A script is a YAML document listing frames:
//
//	frames:
//	  - events:
//	      - {kind: press, button: primary}
//	    expect:
//	      pressed: [primary]
//	      down: [primary]
//	  - events:
//	      - {kind: release, button: primary, primary: false}
//	    expect:
//	      pressed: []
//	      any_down: true
//
// Events default to the mouse, pointer 0 and the primary device.
package replay

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"gioui.org/inputstate/io/input"
	"gioui.org/inputstate/io/pointer"
)

// Script is a decoded and validated frame script.
type Script struct {
	Frames []Frame
}

// Frame is the input of a single frame and the state expected
// once every event of the frame is processed.
type Frame struct {
	Events []pointer.Event
	// Expect is nil if the frame has no expectations.
	Expect *Expectation
}

// Expectation describes the queries of a frame. Nil fields are not
// checked.
type Expectation struct {
	// Pressed and Released are the exact sets of buttons reported
	// just pressed and just released.
	Pressed, Released *pointer.Buttons
	// Down is the exact set of held buttons.
	Down    *pointer.Buttons
	AnyDown *bool
}

// Snapshot is the result of every query at the end of a frame.
type Snapshot struct {
	Frame    int
	Pressed  pointer.Buttons
	Released pointer.Buttons
	Down     pointer.Buttons
	AnyDown  bool
	// Events is the number of events recorded by the state.
	Events int
}

// ExpectationError reports a query result that differs from
// the script.
type ExpectationError struct {
	Frame int
	Query string
	Got   string
	Want  string
}

// ExpectationErrors is the list of failed expectations of
// a playback.
type ExpectationErrors []*ExpectationError

// Player plays scripts.
type Player struct {
	// Logger, if not nil, receives a line for every event played.
	Logger *log.Logger
}

type scriptYAML struct {
	Frames []frameYAML `yaml:"frames"`
}

type frameYAML struct {
	Events []eventYAML  `yaml:"events"`
	Expect *expectYAML `yaml:"expect"`
}

type eventYAML struct {
	Kind    string `yaml:"kind"`
	Button  string `yaml:"button"`
	Source  string `yaml:"source"`
	Pointer uint16 `yaml:"pointer"`
	Primary *bool  `yaml:"primary"`
}

type expectYAML struct {
	Pressed  *[]string `yaml:"pressed"`
	Released *[]string `yaml:"released"`
	Down     *[]string `yaml:"down"`
	AnyDown  *bool     `yaml:"any_down"`
}

// Load decodes a script from r.
func Load(r io.Reader) (*Script, error) {
	var raw scriptYAML
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("replay: empty script")
		}
		return nil, fmt.Errorf("replay: %w", err)
	}
	s := &Script{Frames: make([]Frame, 0, len(raw.Frames))}
	for i, rf := range raw.Frames {
		f, err := rf.compile()
		if err != nil {
			return nil, fmt.Errorf("replay: frame %d: %w", i, err)
		}
		s.Frames = append(s.Frames, f)
	}
	return s, nil
}

// LoadFile decodes the script in the named file.
func LoadFile(name string) (*Script, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return s, nil
}

func (rf frameYAML) compile() (Frame, error) {
	var f Frame
	for i, re := range rf.Events {
		e, err := re.compile()
		if err != nil {
			return Frame{}, fmt.Errorf("event %d: %w", i, err)
		}
		f.Events = append(f.Events, e)
	}
	if rf.Expect != nil {
		exp, err := rf.Expect.compile()
		if err != nil {
			return Frame{}, fmt.Errorf("expect: %w", err)
		}
		f.Expect = exp
	}
	return f, nil
}

func (re eventYAML) compile() (pointer.Event, error) {
	e := pointer.Event{
		PointerID: pointer.ID(re.Pointer),
		Primary:   true,
	}
	if re.Primary != nil {
		e.Primary = *re.Primary
	}
	var err error
	if e.Kind, err = pointer.ParseKind(re.Kind); err != nil {
		return pointer.Event{}, err
	}
	if re.Source != "" {
		if e.Source, err = pointer.ParseSource(re.Source); err != nil {
			return pointer.Event{}, err
		}
	}
	if e.Button, err = pointer.ParseButton(re.Button); err != nil {
		return pointer.Event{}, err
	}
	if e.Button != 0 && e.Kind != pointer.Press && e.Kind != pointer.Release {
		return pointer.Event{}, fmt.Errorf("button %q on %v event", re.Button, e.Kind)
	}
	return e, nil
}

func (re *expectYAML) compile() (*Expectation, error) {
	exp := &Expectation{AnyDown: re.AnyDown}
	for _, field := range []struct {
		names *[]string
		dst   **pointer.Buttons
	}{
		{re.Pressed, &exp.Pressed},
		{re.Released, &exp.Released},
		{re.Down, &exp.Down},
	} {
		if field.names == nil {
			continue
		}
		b, err := parseButtons(*field.names)
		if err != nil {
			return nil, err
		}
		*field.dst = &b
	}
	return exp, nil
}

func parseButtons(names []string) (pointer.Buttons, error) {
	var set pointer.Buttons
	for _, n := range names {
		b, err := pointer.ParseButton(n)
		if err != nil {
			return 0, err
		}
		if b == 0 {
			return 0, fmt.Errorf("%q names no button", n)
		}
		set.Insert(b)
	}
	return set, nil
}

// Play plays s into st with a default Player.
func Play(s *Script, st *input.PrimaryPointerState) ([]Snapshot, error) {
	var p Player
	return p.Play(s, st)
}

// Play processes the events of every frame of s, snapshots the
// queries of st, checks the frame expectations and clears the
// frame. Playback continues past failed expectations; the returned
// error is an ExpectationErrors listing all of them.
func (p *Player) Play(s *Script, st *input.PrimaryPointerState) ([]Snapshot, error) {
	var errs ExpectationErrors
	snaps := make([]Snapshot, 0, len(s.Frames))
	for i, f := range s.Frames {
		for _, e := range f.Events {
			if p.Logger != nil {
				p.Logger.Printf("frame %d: %v", i, e)
			}
			st.ProcessEvent(e)
		}
		snap := Take(st)
		snap.Frame = i
		snaps = append(snaps, snap)
		if f.Expect != nil {
			errs = append(errs, f.Expect.check(snap)...)
		}
		st.ClearFrame()
	}
	if len(errs) > 0 {
		return snaps, errs
	}
	return snaps, nil
}

// Take snapshots the current frame of st.
func Take(st *input.PrimaryPointerState) Snapshot {
	snap := Snapshot{
		Down:    st.Down(),
		AnyDown: st.AnyDown(),
		Events:  st.NumEvents(),
	}
	for _, b := range pointer.AllButtons {
		if st.JustPressed(b) {
			snap.Pressed.Insert(b)
		}
		if st.JustReleased(b) {
			snap.Released.Insert(b)
		}
	}
	return snap
}

func (exp *Expectation) check(snap Snapshot) []*ExpectationError {
	var errs []*ExpectationError
	for _, c := range []struct {
		query string
		want  *pointer.Buttons
		got   pointer.Buttons
	}{
		{"pressed", exp.Pressed, snap.Pressed},
		{"released", exp.Released, snap.Released},
		{"down", exp.Down, snap.Down},
	} {
		if c.want != nil && *c.want != c.got {
			errs = append(errs, &ExpectationError{
				Frame: snap.Frame,
				Query: c.query,
				Got:   buttonList(c.got),
				Want:  buttonList(*c.want),
			})
		}
	}
	if exp.AnyDown != nil && *exp.AnyDown != snap.AnyDown {
		errs = append(errs, &ExpectationError{
			Frame: snap.Frame,
			Query: "any_down",
			Got:   fmt.Sprint(snap.AnyDown),
			Want:  fmt.Sprint(*exp.AnyDown),
		})
	}
	return errs
}

func buttonList(b pointer.Buttons) string {
	if b.Empty() {
		return "[]"
	}
	return "[" + b.String() + "]"
}

func (e *ExpectationError) Error() string {
	return fmt.Sprintf("frame %d: %s: got %s, want %s", e.Frame, e.Query, e.Got, e.Want)
}

func (e ExpectationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// Frames returns the frames with at least one failed expectation.
func (e ExpectationErrors) Frames() []int {
	var frames []int
	for _, err := range e {
		if !slices.Contains(frames, err.Frame) {
			frames = append(frames, err.Frame)
		}
	}
	return frames
}

func (s Snapshot) String() string {
	return fmt.Sprintf("frame %d: pressed=%s released=%s down=%s any_down=%v events=%d",
		s.Frame, buttonList(s.Pressed), buttonList(s.Released), buttonList(s.Down), s.AnyDown, s.Events)
}
