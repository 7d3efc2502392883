// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"gioui.org/inputstate/internal/replay"
	"gioui.org/inputstate/io/input"
)

var (
	verbose = flag.Bool("v", false, "log every event as it is played")
	quiet   = flag.Bool("q", false, "do not print frame snapshots")
)

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, mainUsage)
	}
	flag.Parse()
	if err := mainErr(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "ptrreplay: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func mainErr(w io.Writer) error {
	name := flag.Arg(0)
	if name == "" {
		return errors.New("specify a script")
	}
	return run(w, name, *verbose, *quiet)
}

func run(w io.Writer, name string, verbose, quiet bool) error {
	s, err := replay.LoadFile(name)
	if err != nil {
		return err
	}
	var p replay.Player
	if verbose {
		p.Logger = log.New(os.Stderr, "", 0)
	}
	var state input.PrimaryPointerState
	snaps, err := p.Play(s, &state)
	if !quiet {
		for _, snap := range snaps {
			fmt.Fprintln(w, snap)
		}
	}
	return err
}
