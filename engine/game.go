package engine

import (
	"fmt"
	"strconv"
	"strings"

	"knucklebones/types"
)

// Game holds both boards, the turn and the die waiting to be placed.
type Game struct {
	config        GameConfig
	boards        [2]*Board
	dieValue      int
	currentPlayer types.Player
	roll          Roller
}

// NewGame creates an empty game, player A to move, with a freshly rolled die.
func NewGame(cfg GameConfig, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Game{
		config: cfg,
		boards: [2]*Board{
			NewBoard(cfg.Columns, cfg.Rows),
			NewBoard(cfg.Columns, cfg.Rows),
		},
		currentPlayer: types.PlayerA,
		roll:          DefaultRoller,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.dieValue = g.roll.Roll(cfg.MaxDieValue)
	return g, nil
}

// Config returns the dimensions the game was created with.
func (g *Game) Config() GameConfig {
	return g.config
}

// AddValue drops value into the lowest empty cell of column on p's board.
// It returns false, without touching the board, when the column is full.
func (g *Game) AddValue(column int, p types.Player, value int) (bool, error) {
	if err := g.checkArgs(column, p, value); err != nil {
		return false, err
	}
	return g.add(column, p, value), nil
}

// RemoveValue clears every cell equal to value in column on p's board and
// reports whether anything was cleared. The remaining dice are not shifted down.
func (g *Game) RemoveValue(column int, p types.Player, value int) (bool, error) {
	if err := g.checkArgs(column, p, value); err != nil {
		return false, err
	}
	return g.remove(column, p, value), nil
}

func (g *Game) checkArgs(column int, p types.Player, value int) error {
	if column < 0 || column >= g.config.Columns {
		return fmt.Errorf("column %d: %w", column, ErrInvalidColumn)
	}
	if !p.Valid() {
		return fmt.Errorf("player %d: %w", int(p), ErrInvalidPlayer)
	}
	if value < 1 || value > g.config.MaxDieValue {
		return fmt.Errorf("value %d: %w", value, ErrInvalidValue)
	}
	return nil
}

func (g *Game) add(column int, p types.Player, value int) bool {
	b := g.boards[p]
	cells := b.grid[column]
	for row := range cells {
		if cells[row] == 0 {
			cells[row] = value
			b.count++
			return true
		}
	}
	return false
}

func (g *Game) remove(column int, p types.Player, value int) bool {
	b := g.boards[p]
	cells := b.grid[column]
	found := false
	for row := range cells {
		if cells[row] == value {
			cells[row] = 0
			b.count--
			found = true
		}
	}
	return found
}

// MakeMove places the current die in column for the current player, clears
// the matching dice from the opponent's column, passes the turn and rolls again.
// It returns false and leaves the game untouched when the move is not legal.
func (g *Game) MakeMove(column int) bool {
	if column < 0 || column >= g.config.Columns {
		return false
	}
	if g.boards[g.currentPlayer].count >= g.config.Capacity() {
		return false
	}
	if !g.add(column, g.currentPlayer, g.dieValue) {
		return false
	}
	g.remove(column, g.currentPlayer.Other(), g.dieValue)

	g.currentPlayer = g.currentPlayer.Other()
	g.dieValue = g.roll.Roll(g.config.MaxDieValue)
	return true
}

// Score sums, for every column, each face times the square of how often it appears.
// A column holding 6, 6, 5 scores 6*2*2 + 5 = 29.
func (g *Game) Score(p types.Player) int {
	b := g.board(p)
	score := 0
	for _, cells := range b.grid {
		counts := make(map[int]int, len(cells))
		for _, v := range cells {
			counts[v]++
		}
		for v, c := range counts {
			score += v * c * c
		}
	}
	return score
}

// HeuristicScore is p's score minus the opponent's.
func (g *Game) HeuristicScore(p types.Player) int {
	return g.Score(p) - g.Score(p.Other())
}

// IsGameOver returns true once either board is full.
func (g *Game) IsGameOver() bool {
	for _, b := range g.boards {
		if b.count >= g.config.Capacity() {
			return true
		}
	}
	return false
}

// Winner returns the higher-scoring player of a finished game.
// ok is false while the game is running or on a tie.
func (g *Game) Winner() (p types.Player, ok bool) {
	return g.State().Winner()
}

func (g *Game) CurrentPlayer() types.Player {
	return g.currentPlayer
}

func (g *Game) DieValue() int {
	return g.dieValue
}

// SetDieValue forces the die waiting to be placed.
func (g *Game) SetDieValue(v int) error {
	if v < 1 || v > g.config.MaxDieValue {
		return fmt.Errorf("value %d: %w", v, ErrInvalidValue)
	}
	g.dieValue = v
	return nil
}

// Board returns a copy of p's grid, indexed as [column][row].
func (g *Game) Board(p types.Player) [][]int {
	return g.board(p).Grid()
}

// OccupiedCount returns the number of dice on p's board.
func (g *Game) OccupiedCount(p types.Player) int {
	return g.board(p).count
}

// IsColumnFull reports whether column on p's board has no empty cell left.
func (g *Game) IsColumnFull(column int, p types.Player) bool {
	b := g.board(p)
	if column < 0 || column >= g.config.Columns {
		panic(fmt.Sprintf("engine: column %d out of range [0, %d)", column, g.config.Columns))
	}
	for _, v := range b.grid[column] {
		if v == 0 {
			return false
		}
	}
	return true
}

// AvailableColumns lists, in ascending order, the columns p can still play in.
func (g *Game) AvailableColumns(p types.Player) []int {
	columns := []int{}
	for column := 0; column < g.config.Columns; column++ {
		if !g.IsColumnFull(column, p) {
			columns = append(columns, column)
		}
	}
	return columns
}

// PossibleMoves pairs every die face with the columns the current player could
// use, ordered by face. It is empty when no column is open.
func (g *Game) PossibleMoves() []types.MoveSet {
	columns := g.AvailableColumns(g.currentPlayer)
	if len(columns) == 0 {
		return []types.MoveSet{}
	}
	moves := make([]types.MoveSet, 0, g.config.MaxDieValue)
	for die := 1; die <= g.config.MaxDieValue; die++ {
		moves = append(moves, types.MoveSet{
			Die:     die,
			Columns: append([]int(nil), columns...),
		})
	}
	return moves
}

// Encode fingerprints the game: every cell of board A then board B, column by
// column, followed by the die value and the current player, comma separated.
// The format is only meant to be compared within one process.
func (g *Game) Encode() string {
	var sb strings.Builder
	for _, b := range g.boards {
		for _, cells := range b.grid {
			for _, v := range cells {
				sb.WriteString(strconv.Itoa(v))
				sb.WriteByte(',')
			}
		}
	}
	sb.WriteString(strconv.Itoa(g.dieValue))
	sb.WriteByte(',')
	sb.WriteString(strconv.Itoa(int(g.currentPlayer)))
	return sb.String()
}

// Copy returns an independent deep copy, die roller included.
func (g *Game) Copy() *Game {
	return &Game{
		config:        g.config,
		boards:        [2]*Board{g.boards[0].clone(), g.boards[1].clone()},
		dieValue:      g.dieValue,
		currentPlayer: g.currentPlayer,
		roll:          g.roll.Clone(),
	}
}

// Render draws p's board as text, top row first, one space after every cell.
func (g *Game) Render(p types.Player) string {
	b := g.board(p)
	var sb strings.Builder
	for row := g.config.Rows - 1; row >= 0; row-- {
		for column := 0; column < g.config.Columns; column++ {
			sb.WriteString(strconv.Itoa(b.grid[column][row]))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// State returns a snapshot of the game.
func (g *Game) State() *types.GameState {
	s := &types.GameState{
		Columns:       g.config.Columns,
		Rows:          g.config.Rows,
		MaxDieValue:   g.config.MaxDieValue,
		DieValue:      g.dieValue,
		CurrentPlayer: g.currentPlayer,
		Finished:      g.IsGameOver(),
	}
	for _, p := range types.Players {
		s.Boards[p] = g.Board(p)
		s.Occupied[p] = g.OccupiedCount(p)
		s.Scores[p] = g.Score(p)
	}
	return s
}

func (g *Game) board(p types.Player) *Board {
	if !p.Valid() {
		panic(fmt.Sprintf("engine: %v is not a player", p))
	}
	return g.boards[p]
}
