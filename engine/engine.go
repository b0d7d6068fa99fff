// Package engine implements the Knucklebones rules: die placement, column
// clearing, scoring and the enumeration of legal moves.
//
// A Game is owned by a single caller and is not safe for concurrent use.
// Callers exploring several branches take independent snapshots with Copy.
package engine

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidColumn = errors.New("column out of range")
	ErrInvalidPlayer = errors.New("player out of range")
	ErrInvalidValue  = errors.New("die value out of range")
)

// InvalidConfig is returned by NewGame when the dimensions cannot describe a board.
type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("game config error: %s", e.err)
}

// GameConfig holds the immutable dimensions of a game.
type GameConfig struct {
	Columns     int // Number of columns per board
	Rows        int // Cells per column
	MaxDieValue int // Highest die face, faces run 1..MaxDieValue
}

// DefaultConfig returns the classic 3x3 board with a six-sided die.
func DefaultConfig() GameConfig {
	return GameConfig{
		Columns:     3,
		Rows:        3,
		MaxDieValue: 6,
	}
}

// Capacity is the number of cells on one board.
func (c GameConfig) Capacity() int {
	return c.Columns * c.Rows
}

// Validate checks that every dimension is positive.
func (c GameConfig) Validate() error {
	switch {
	case c.Columns <= 0:
		return &InvalidConfig{fmt.Sprintf("columns must be positive, got %d", c.Columns)}
	case c.Rows <= 0:
		return &InvalidConfig{fmt.Sprintf("rows must be positive, got %d", c.Rows)}
	case c.MaxDieValue <= 0:
		return &InvalidConfig{fmt.Sprintf("max die value must be positive, got %d", c.MaxDieValue)}
	}
	return nil
}
