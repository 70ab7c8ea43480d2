package mess

import "testing"

func TestHashAddRemoveCancel(t *testing.T) {
	var h Hash
	key := PieceOnSquareKey(WhiteKnight, C3)
	h = h.Add(key)
	h = h.Remove(key)
	if h != NoHash {
		t.Errorf("adding and removing the same key should cancel out, got %x", uint64(h))
	}
}

func TestCastlingKeyMatchesComponents(t *testing.T) {
	whiteH := NewCastlingDimension(White, CastleH)
	blackA := NewCastlingDimension(Black, CastleA)
	rights := NoCastlingRights.With(whiteH).With(blackA)

	got := CastlingKey(rights)
	want := CastlingKey(NoCastlingRights).Add(castleKeyWhiteH).Add(castleKeyBlackA)
	if got != want {
		t.Errorf("CastlingKey(%v) = %x, want %x", rights, uint64(got), uint64(want))
	}
}

func TestPieceOnSquareKeysDistinct(t *testing.T) {
	seen := map[Hash]bool{}
	for cp := ColoredPiece(0); cp < ColoredPieceN; cp++ {
		for sq := Square(0); sq < SquareN; sq++ {
			k := PieceOnSquareKey(cp, sq)
			if seen[k] {
				t.Fatalf("duplicate Zobrist key for piece %v on %v", cp, sq)
			}
			seen[k] = true
		}
	}
}
