// Package types contains shared data structures for knucklebones.
package types

import "fmt"

// Player identifies one of the two seats at the table.
type Player int

const (
	PlayerA Player = iota
	PlayerB
)

// Players lists both seats in index order.
var Players = [2]Player{PlayerA, PlayerB}

// Other returns the opponent of p.
func (p Player) Other() Player {
	if p == PlayerA {
		return PlayerB
	}
	return PlayerA
}

// Valid reports whether p is one of the two seats.
func (p Player) Valid() bool {
	return p == PlayerA || p == PlayerB
}

func (p Player) String() string {
	switch p {
	case PlayerA:
		return "A"
	case PlayerB:
		return "B"
	}
	return fmt.Sprintf("Player(%d)", int(p))
}

// MoveSet pairs a die face with the columns it could legally be placed in.
type MoveSet struct {
	Die     int   `json:"die"`
	Columns []int `json:"columns"`
}

// GameState is a read-only snapshot of a game.
// Boards are indexed as Boards[player][column][row] where 0=empty.
type GameState struct {
	Columns       int        `json:"columns"`
	Rows          int        `json:"rows"`
	MaxDieValue   int        `json:"max_die_value"`
	Boards        [2][][]int `json:"boards"`
	Occupied      [2]int     `json:"occupied"`
	Scores        [2]int     `json:"scores"`
	DieValue      int        `json:"die_value"`
	CurrentPlayer Player     `json:"current_player"`
	Finished      bool       `json:"finished"`
}

// Winner returns the player with the higher score once the game is finished.
// ok is false while the game is running or when the scores are tied.
func (s *GameState) Winner() (p Player, ok bool) {
	if !s.Finished || s.Scores[PlayerA] == s.Scores[PlayerB] {
		return PlayerA, false
	}
	if s.Scores[PlayerA] > s.Scores[PlayerB] {
		return PlayerA, true
	}
	return PlayerB, true
}
