package mess

import "fmt"

// Perft counts the number of leaf positions reachable from the
// current position in exactly depth plies, a standard correctness and
// performance benchmark for move generators. When bulkCount is true,
// the recursion stops one ply early and returns the legal move count
// directly instead of making and unmaking every move at depth 1,
// since every one of those moves leads to exactly one leaf.
func (b *Board) Perft(depth int, bulkCount bool) uint64 {
	return b.perft(depth, bulkCount, false)
}

// PerftSplit behaves like Perft but also prints, for every legal move
// in the current position, the move and the leaf count it alone
// accounts for.
func (b *Board) PerftSplit(depth int, bulkCount bool) uint64 {
	return b.perft(depth, bulkCount, true)
}

func (b *Board) perft(depth int, bulkCount, split bool) uint64 {
	if depth <= 0 {
		return 1
	}

	moves := b.GenerateMoves(GenAll)

	if bulkCount && !split && depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, move := range moves {
		b.MakeMove(move)
		delta := b.perft(depth-1, bulkCount, false)
		b.UndoMove()
		nodes += delta

		if split {
			fmt.Printf("%s: %d\n", b.MoveString(move), delta)
		}
	}
	return nodes
}
