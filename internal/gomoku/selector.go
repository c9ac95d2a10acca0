package gomoku

// ChooseMove picks a move for player using strategy at the given depth.
// It returns false when no move is available: the board is full or already
// decided, no candidate exists, or the strategy is not recognized.
func ChooseMove(b *Board, player Cell, strategy Strategy, depth int) (Move, bool) {
	result := Search(b, strategy, depth, player == Black)
	return result.Move, result.Found
}
