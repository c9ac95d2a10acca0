package gomoku

import (
	"errors"
	"fmt"
	"strings"
)

const (
	DefaultBoardSize = 15
	MinBoardSize     = 5
	MaxBoardSize     = 25
)

// Cell is the state of a single intersection.
type Cell int

const (
	Empty Cell = iota
	Black
	White
)

var ErrInvalidBoard = errors.New("invalid board")

// Opponent returns the other player. Empty has no opponent and is returned as is.
func (c Cell) Opponent() Cell {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

func (c Cell) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "empty"
	}
}

func (c Cell) rune() byte {
	switch c {
	case Black:
		return 'X'
	case White:
		return 'O'
	default:
		return '.'
	}
}

// ParsePlayer parses "black" or "white" into a player cell.
func ParsePlayer(s string) (Cell, error) {
	switch strings.ToLower(s) {
	case "black", "x":
		return Black, nil
	case "white", "o":
		return White, nil
	default:
		return Empty, fmt.Errorf("unknown player %q", s)
	}
}

// Move is a (row, column) coordinate on the board.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (m Move) String() string {
	return fmt.Sprintf("(%d, %d)", m.Row, m.Col)
}

// Board is a square gomoku grid stored in row-major order.
type Board struct {
	size  int
	cells []Cell
}

// NewBoard creates an empty board. It panics on sizes outside [MinBoardSize, MaxBoardSize].
func NewBoard(size int) *Board {
	if size < MinBoardSize || size > MaxBoardSize {
		panic(fmt.Sprintf("board size %d out of range", size))
	}

	b := &Board{size: size}
	b.Reset()
	return b
}

// NewBoardFromString parses the compact row format, rows separated by '/'.
// Empty cells are '.', Black is 'X' and White is 'O'.
func NewBoardFromString(s string) (*Board, error) {
	rows := strings.Split(strings.TrimSpace(s), "/")
	size := len(rows)

	if size < MinBoardSize || size > MaxBoardSize {
		return nil, fmt.Errorf("%w: size %d out of range [%d, %d]", ErrInvalidBoard, size, MinBoardSize, MaxBoardSize)
	}

	b := NewBoard(size)
	for row, line := range rows {
		if len(line) != size {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidBoard, row, len(line), size)
		}

		for col := range size {
			switch line[col] {
			case '.':
			case 'X', 'x':
				b.Set(Move{row, col}, Black)
			case 'O', 'o':
				b.Set(Move{row, col}, White)
			default:
				return nil, fmt.Errorf("%w: unexpected cell %q at %d,%d", ErrInvalidBoard, line[col], row, col)
			}
		}
	}

	return b, nil
}

// Reset clears all cells, keeping the board size.
func (b *Board) Reset() {
	if len(b.cells) != b.size*b.size {
		b.cells = make([]Cell, b.size*b.size)
		return
	}

	for i := range b.cells {
		b.cells[i] = Empty
	}
}

// Size returns the board dimension.
func (b *Board) Size() int {
	return b.size
}

// InBounds checks if a coordinate lies on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < b.size && col < b.size
}

// At returns the cell at row, col.
func (b *Board) At(row, col int) Cell {
	return b.cells[b.index(row, col)]
}

// IsEmpty checks if row, col is on the board and unoccupied.
func (b *Board) IsEmpty(row, col int) bool {
	return b.InBounds(row, col) && b.At(row, col) == Empty
}

// IsValidMove checks if a move targets an empty cell on the board.
func (b *Board) IsValidMove(m Move) bool {
	return b.IsEmpty(m.Row, m.Col)
}

// Set puts a cell value at m.
func (b *Board) Set(m Move, c Cell) {
	b.cells[b.index(m.Row, m.Col)] = c
}

// Clear empties the cell at m.
func (b *Board) Clear(m Move) {
	b.cells[b.index(m.Row, m.Col)] = Empty
}

// CountEmpty returns the number of unoccupied cells.
func (b *Board) CountEmpty() int {
	count := 0
	for _, c := range b.cells {
		if c == Empty {
			count++
		}
	}
	return count
}

// IsFull checks if no empty cell remains.
func (b *Board) IsFull() bool {
	for _, c := range b.cells {
		if c == Empty {
			return false
		}
	}
	return true
}

// IsBlank checks if no stone has been placed.
func (b *Board) IsBlank() bool {
	for _, c := range b.cells {
		if c != Empty {
			return false
		}
	}
	return true
}

// Clone returns a deep copy.
func (b *Board) Clone() *Board {
	clone := &Board{size: b.size, cells: make([]Cell, len(b.cells))}
	copy(clone.cells, b.cells)
	return clone
}

// Equal checks if two boards have the same size and cells.
func (b *Board) Equal(other *Board) bool {
	if b.size != other.size {
		return false
	}

	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

func (b *Board) index(row, col int) int {
	if !b.InBounds(row, col) {
		panic(fmt.Sprintf("cell %d,%d out of bounds for board size %d", row, col, b.size))
	}
	return row*b.size + col
}

// String returns the compact row format accepted by NewBoardFromString.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(b.size * (b.size + 1))

	for row := range b.size {
		if row > 0 {
			sb.WriteByte('/')
		}
		for col := range b.size {
			sb.WriteByte(b.At(row, col).rune())
		}
	}

	return sb.String()
}

// ASCIIArtLines returns the board with row and column headers, one line per row.
func (b *Board) ASCIIArtLines() []string {
	lines := make([]string, 0, b.size+1)

	header := "   "
	for col := range b.size {
		header += fmt.Sprintf("%3d", col)
	}
	lines = append(lines, header)

	for row := range b.size {
		line := fmt.Sprintf("%2d ", row)
		for col := range b.size {
			switch b.At(row, col) {
			case Black:
				line += "  X"
			case White:
				line += "  O"
			default:
				line += "  ·"
			}
		}
		lines = append(lines, line)
	}

	return lines
}

// Print prints the board to the console. This is used for debugging.
func (b *Board) Print() {
	for _, line := range b.ASCIIArtLines() {
		fmt.Println(line)
	}
}
