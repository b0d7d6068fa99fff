package main

import (
	"bytes"
	"encoding/json"
	"math/rand/v2"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"knucklebones/engine"
	"knucklebones/record"
	"knucklebones/types"
)

func newTestDriver(t *testing.T, out *bytes.Buffer) *driver {
	return &driver{
		log: zaptest.NewLogger(t),
		out: out,
		cfg: engine.DefaultConfig(),
	}
}

func TestSelfPlayFinishes(t *testing.T) {
	var out bytes.Buffer
	d := newTestDriver(t, &out)
	d.json = true

	rec, err := d.selfPlay(rand.New(rand.NewPCG(3, 4)))
	if err != nil {
		t.Fatalf("selfPlay: %v", err)
	}
	if rec.Len() < 9 {
		t.Fatalf("game ended after %d plies, a 3x3 board needs at least 9", rec.Len())
	}

	var state types.GameState
	if err := json.Unmarshal(out.Bytes(), &state); err != nil {
		t.Fatalf("output is not a game state: %v\n%s", err, out.String())
	}
	if !state.Finished {
		t.Fatal("final state should be finished")
	}

	// The transcript reproduces the same final boards.
	plies, err := record.Parse(rec.String())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	g, err := record.Replay(d.cfg, plies)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	for _, p := range types.Players {
		if g.Score(p) != state.Scores[p] {
			t.Errorf("replayed score for %v = %d, want %d", p, g.Score(p), state.Scores[p])
		}
	}
}

func TestSelfPlaySeeded(t *testing.T) {
	var a, b bytes.Buffer
	recA, err := newTestDriver(t, &a).selfPlay(rand.New(rand.NewPCG(9, 9)))
	if err != nil {
		t.Fatalf("selfPlay: %v", err)
	}
	recB, err := newTestDriver(t, &b).selfPlay(rand.New(rand.NewPCG(9, 9)))
	if err != nil {
		t.Fatalf("selfPlay: %v", err)
	}
	if recA.String() != recB.String() {
		t.Fatalf("same seed gave different games:\n%s\n%s", recA, recB)
	}
}

func TestReplayPrintsBoards(t *testing.T) {
	var out bytes.Buffer
	d := newTestDriver(t, &out)
	if err := d.replay("6@0 5@1 6@0"); err != nil {
		t.Fatalf("replay: %v", err)
	}
	want := "0 0 0 \n6 0 0 \n6 0 0 \nNumber of elements: 2, Score: 24\n\n" +
		"0 0 0 \n0 0 0 \n0 5 0 \nNumber of elements: 1, Score: 5\n\n"
	if got := out.String(); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestReplayUndo(t *testing.T) {
	var out bytes.Buffer
	d := newTestDriver(t, &out)
	d.undo = 1
	if err := d.replay("6@0 5@1 6@0"); err != nil {
		t.Fatalf("replay: %v", err)
	}
	want := "0 0 0 \n0 0 0 \n6 0 0 \nNumber of elements: 1, Score: 6\n\n" +
		"0 0 0 \n0 0 0 \n0 5 0 \nNumber of elements: 1, Score: 5\n\n"
	if got := out.String(); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestReplayErrors(t *testing.T) {
	var out bytes.Buffer
	d := newTestDriver(t, &out)
	for _, transcript := range []string{"6@", "7@0", "1@3"} {
		if err := d.replay(transcript); err == nil {
			t.Errorf("replay(%q) should fail", transcript)
		}
	}
	if strings.Contains(out.String(), "Score") {
		t.Fatal("failed replay should not print boards")
	}
}
