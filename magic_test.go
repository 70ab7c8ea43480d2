package mess

import "testing"

func TestMagicMatchesHyperbola(t *testing.T) {
	occupancies := []BitBoard{
		Empty,
		SquareBB(D4) | SquareBB(D6) | SquareBB(B4) | SquareBB(F6),
		RankMask[Rank2] | RankMask[Rank7],
		Full,
	}

	for sq := Square(0); sq < SquareN; sq++ {
		for _, occ := range occupancies {
			if got, want := BishopAttacks(sq, occ), bishopSlow(sq, occ); got != want {
				t.Fatalf("BishopAttacks(%v, %x) = %x, want %x", sq, uint64(occ), uint64(got), uint64(want))
			}
			if got, want := RookAttacks(sq, occ), rookSlow(sq, occ); got != want {
				t.Fatalf("RookAttacks(%v, %x) = %x, want %x", sq, uint64(occ), uint64(got), uint64(want))
			}
		}
	}
}
