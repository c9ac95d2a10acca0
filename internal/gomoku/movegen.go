package gomoku

// DefaultRadius is the Chebyshev distance from existing stones searched for candidates.
const DefaultRadius = 2

// CandidateMoves returns the empty cells within radius of any stone.
//
// Stones are visited in row-major order and the (2*radius+1)^2 window around
// each is scanned row-major, keeping the first occurrence of every cell, so the
// order is stable for a given board. A blank board yields only the center. If
// no cell qualifies, all empty cells are returned in row-major order.
func CandidateMoves(b *Board, radius int) []Move {
	if b.IsBlank() {
		center := b.size / 2
		return []Move{{Row: center, Col: center}}
	}

	seen := make([]bool, len(b.cells))
	moves := make([]Move, 0, 64)

	for row := range b.size {
		for col := range b.size {
			if b.At(row, col) == Empty {
				continue
			}

			for dr := -radius; dr <= radius; dr++ {
				for dc := -radius; dc <= radius; dc++ {
					r, c := row+dr, col+dc
					if !b.IsEmpty(r, c) {
						continue
					}

					i := b.index(r, c)
					if seen[i] {
						continue
					}
					seen[i] = true
					moves = append(moves, Move{Row: r, Col: c})
				}
			}
		}
	}

	if len(moves) > 0 {
		return moves
	}

	for row := range b.size {
		for col := range b.size {
			if b.At(row, col) == Empty {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}

	return moves
}
