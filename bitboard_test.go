package mess

import "testing"

func TestBitBoardSetClear(t *testing.T) {
	bb := Empty
	bb = bb.Set(E4)
	if !bb.Get(E4) {
		t.Error("E4 should be set")
	}
	bb = bb.Clear(E4)
	if bb.Get(E4) {
		t.Error("E4 should be cleared")
	}
}

func TestBitBoardPopLSB(t *testing.T) {
	bb := SquareBB(A1) | SquareBB(D4) | SquareBB(H8)
	var got []Square
	for bb != 0 {
		var sq Square
		sq, bb = bb.PopLSB()
		got = append(got, sq)
	}
	want := []Square{A1, D4, H8}
	if len(got) != len(want) {
		t.Fatalf("got %d squares, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("PopLSB order[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestBitBoardEdgeShifts(t *testing.T) {
	if SquareBB(A4).West() != Empty {
		t.Error("west off the A file should vanish, not wrap")
	}
	if SquareBB(H4).East() != Empty {
		t.Error("east off the H file should vanish, not wrap")
	}
	if SquareBB(A4).NorthWest() != Empty {
		t.Error("northwest off the A file should vanish, not wrap")
	}
	if SquareBB(H4).SouthEast() != Empty {
		t.Error("southeast off the H file should vanish, not wrap")
	}
}

func TestHyperbolaRookOpenFile(t *testing.T) {
	occ := SquareBB(D1) | SquareBB(D8)
	attacks := rookSlow(D4, occ)
	want := (FileMask[FileD] &^ SquareBB(D4)) | RankMask[Rank4]&^SquareBB(D4)
	if attacks&^want != Empty {
		t.Errorf("rookSlow(D4) produced squares outside file/rank: %x", attacks&^want)
	}
	if !attacks.Get(D1) || !attacks.Get(D8) {
		t.Error("rookSlow(D4) should see both blockers on the D file")
	}
}

func TestBetweenTable(t *testing.T) {
	if Between[A1][A8] != (FileMask[FileA] &^ (SquareBB(A1) | SquareBB(A8))) {
		t.Error("Between[A1][A8] should be the A file minus its endpoints")
	}
	if Between[A1][H1] != (RankMask[Rank1] &^ (SquareBB(A1) | SquareBB(H1))) {
		t.Error("Between[A1][H1] should be rank 1 minus its endpoints")
	}
	if Between[A1][B3] != Empty {
		t.Error("a1 and b3 share no line, Between should be empty")
	}
	if !Between2[A1][A8].Get(A8) || Between2[A1][A8].Get(A1) {
		t.Error("Between2 should include only the second endpoint")
	}
	if !Between12[A1][A8].Get(A1) || !Between12[A1][A8].Get(A8) {
		t.Error("Between12 should include both endpoints")
	}
}
