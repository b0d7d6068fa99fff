package engine

// Board stores one player's dice. The grid is indexed as grid[column][row],
// row 0 being the bottom of the column. 0 marks an empty cell.
type Board struct {
	grid  [][]int
	count int
}

// NewBoard creates an empty board of the given size.
func NewBoard(columns, rows int) *Board {
	grid := make([][]int, columns)
	for i := range grid {
		grid[i] = make([]int, rows)
	}
	return &Board{grid: grid}
}

// Grid returns a copy of the board's cells.
func (b *Board) Grid() [][]int {
	grid := make([][]int, len(b.grid))
	for i, column := range b.grid {
		grid[i] = append([]int(nil), column...)
	}
	return grid
}

// Count returns the number of occupied cells.
func (b *Board) Count() int {
	return b.count
}

func (b *Board) clone() *Board {
	return &Board{grid: b.Grid(), count: b.count}
}
