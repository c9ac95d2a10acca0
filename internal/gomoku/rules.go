package gomoku

const WinLength = 5

// direction is a unit step along one of the four axes.
type direction struct {
	dRow, dCol int
}

var directions = [4]direction{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal \
	{1, -1}, // diagonal /
}

// HasFiveInRow checks every length-5 window on all four axes for stones of player.
// A run of six or more contains a matching window, so it counts as a win.
func HasFiveInRow(b *Board, player Cell) bool {
	for _, d := range directions {
		for row := range b.size {
			for col := range b.size {
				if windowOwned(b, row, col, d, WinLength, player) {
					return true
				}
			}
		}
	}
	return false
}

// Winner returns the player with five in a row, or Empty. Black is checked first.
func Winner(b *Board) Cell {
	if HasFiveInRow(b, Black) {
		return Black
	}
	if HasFiveInRow(b, White) {
		return White
	}
	return Empty
}

// windowOwned checks if the length cells starting at row, col along d are all on
// the board and owned by player.
func windowOwned(b *Board, row, col int, d direction, length int, player Cell) bool {
	endRow := row + d.dRow*(length-1)
	endCol := col + d.dCol*(length-1)
	if !b.InBounds(endRow, endCol) {
		return false
	}

	for i := range length {
		if b.At(row+d.dRow*i, col+d.dCol*i) != player {
			return false
		}
	}
	return true
}
