package gomoku

// WinScore is the evaluation of a position Black has already won. A White win is -WinScore.
const WinScore = 100000

// patternWeight is the value of one run of a given length and openness.
type patternWeight struct {
	length int
	open   bool
	weight int
}

// patternWeights are summed per player. Open runs also match the semi-open
// bucket, so a fully open run of four is worth 10000 + 1000.
var patternWeights = []patternWeight{
	{length: 4, open: true, weight: 10000},
	{length: 4, open: false, weight: 1000},
	{length: 3, open: true, weight: 500},
	{length: 3, open: false, weight: 100},
	{length: 2, open: true, weight: 50},
	{length: 2, open: false, weight: 10},
}

// CountSequences counts the windows of length consecutive stones of player on
// all four axes. With open set, a window counts only when the cells just beyond
// both ends are on the board and empty. Without it, one such end is enough.
func CountSequences(b *Board, player Cell, length int, open bool) int {
	count := 0

	for _, d := range directions {
		for row := range b.size {
			for col := range b.size {
				if !windowOwned(b, row, col, d, length, player) {
					continue
				}

				beforeOpen := b.IsEmpty(row-d.dRow, col-d.dCol)
				afterOpen := b.IsEmpty(row+d.dRow*length, col+d.dCol*length)

				if open {
					if beforeOpen && afterOpen {
						count++
					}
				} else if beforeOpen || afterOpen {
					count++
				}
			}
		}
	}

	return count
}

// Evaluate scores b from Black's point of view. A finished game scores exactly
// WinScore or -WinScore; everything else stays strictly inside that band.
func Evaluate(b *Board) int {
	if HasFiveInRow(b, Black) {
		return WinScore
	}
	if HasFiveInRow(b, White) {
		return -WinScore
	}

	score := patternScore(b, Black) - patternScore(b, White)

	return max(-WinScore+1, min(WinScore-1, score))
}

func patternScore(b *Board, player Cell) int {
	score := 0
	for _, p := range patternWeights {
		score += p.weight * CountSequences(b, player, p.length, p.open)
	}
	return score
}
