// Package record keeps the move history of a knucklebones game and replays
// transcripts of it.
package record

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"knucklebones/engine"
	"knucklebones/types"
)

// Ply is a single placement: which die was placed in which column.
type Ply struct {
	Player types.Player
	Die    int
	Column int
}

// String formats the ply as "<die>@<column>", e.g. "6@0".
func (p Ply) String() string {
	return fmt.Sprintf("%d@%d", p.Die, p.Column)
}

// Record tracks a game in progress.
type Record struct {
	ID     uuid.UUID
	Config engine.GameConfig
	plies  []Ply
}

// New creates an empty record with a fresh match ID.
func New(cfg engine.GameConfig) *Record {
	return &Record{
		ID:     uuid.New(),
		Config: cfg,
	}
}

// Play applies the game's current die to column and records the ply if the
// move was accepted.
func (r *Record) Play(g *engine.Game, column int) bool {
	ply := Ply{
		Player: g.CurrentPlayer(),
		Die:    g.DieValue(),
		Column: column,
	}
	if !g.MakeMove(column) {
		return false
	}
	r.plies = append(r.plies, ply)
	return true
}

// Add appends a ply without touching any game.
func (r *Record) Add(p Ply) {
	r.plies = append(r.plies, p)
}

// Undo removes the last n plies.
func (r *Record) Undo(n int) {
	if n <= 0 {
		return
	}
	if n > len(r.plies) {
		n = len(r.plies)
	}
	r.plies = r.plies[:len(r.plies)-n]
}

// Len returns the number of recorded plies.
func (r *Record) Len() int {
	return len(r.plies)
}

// Plies returns a copy of the recorded plies.
func (r *Record) Plies() []Ply {
	return append([]Ply(nil), r.plies...)
}

// String returns the transcript, plies separated by single spaces.
func (r *Record) String() string {
	parts := make([]string, len(r.plies))
	for i, p := range r.plies {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}

// Parse reads a transcript written by String. Players alternate starting with A.
func Parse(transcript string) ([]Ply, error) {
	fields := strings.Fields(transcript)
	plies := make([]Ply, 0, len(fields))
	player := types.PlayerA
	for i, field := range fields {
		die, column, ok := strings.Cut(field, "@")
		if !ok {
			return nil, fmt.Errorf("ply %d %q: missing '@'", i, field)
		}
		d, err := strconv.Atoi(die)
		if err != nil {
			return nil, fmt.Errorf("ply %d %q: die: %w", i, field, err)
		}
		c, err := strconv.Atoi(column)
		if err != nil {
			return nil, fmt.Errorf("ply %d %q: column: %w", i, field, err)
		}
		plies = append(plies, Ply{Player: player, Die: d, Column: c})
		player = player.Other()
	}
	return plies, nil
}

// Replay plays plies on a fresh game, forcing each die before its move.
// The returned game keeps rolling with opts' roller after the last ply.
func Replay(cfg engine.GameConfig, plies []Ply, opts ...engine.Option) (*engine.Game, error) {
	g, err := engine.NewGame(cfg, opts...)
	if err != nil {
		return nil, err
	}
	for i, p := range plies {
		if p.Player != g.CurrentPlayer() {
			return nil, fmt.Errorf("ply %d (%s): player %v out of turn, %v to move", i, p, p.Player, g.CurrentPlayer())
		}
		if err := g.SetDieValue(p.Die); err != nil {
			return nil, fmt.Errorf("ply %d (%s): %w", i, p, err)
		}
		if !g.MakeMove(p.Column) {
			return nil, fmt.Errorf("ply %d (%s): illegal move", i, p)
		}
	}
	return g, nil
}
