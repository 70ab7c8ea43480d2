package mess

import "testing"

func TestParseCastlingRightsStandard(t *testing.T) {
	rights, rookStart, frc, err := ParseCastlingRights("KQkq", E1, E8)
	if err != nil {
		t.Fatal(err)
	}
	if frc {
		t.Error("KQkq should not be detected as FRC")
	}
	for _, d := range []CastlingDimension{
		NewCastlingDimension(White, CastleH),
		NewCastlingDimension(White, CastleA),
		NewCastlingDimension(Black, CastleH),
		NewCastlingDimension(Black, CastleA),
	} {
		if !rights.Has(d) {
			t.Errorf("dimension %v should be present", d)
		}
	}
	if rookStart[NewCastlingDimension(White, CastleH)] != H1 {
		t.Error("white H rook should start on h1")
	}
	if rookStart[NewCastlingDimension(White, CastleA)] != A1 {
		t.Error("white A rook should start on a1")
	}
	if rookStart[NewCastlingDimension(Black, CastleH)] != H8 {
		t.Error("black H rook should start on h8")
	}
}

func TestParseCastlingRightsNone(t *testing.T) {
	rights, _, frc, err := ParseCastlingRights("-", E1, E8)
	if err != nil {
		t.Fatal(err)
	}
	if frc {
		t.Error("'-' should not be detected as FRC")
	}
	if rights != NoCastlingRights {
		t.Error("'-' should produce no castling rights")
	}
}

func TestParseCastlingRightsShredder(t *testing.T) {
	// White king on e1, rooks on b1 and g1.
	rights, rookStart, frc, err := ParseCastlingRights("GB", E1, E8)
	if err != nil {
		t.Fatal(err)
	}
	if !frc {
		t.Error("a non-KQkq letter should be detected as FRC")
	}
	h := NewCastlingDimension(White, CastleH)
	a := NewCastlingDimension(White, CastleA)
	if !rights.Has(h) || !rights.Has(a) {
		t.Fatal("both white rights should be set")
	}
	if rookStart[h] != G1 {
		t.Errorf("H-side rook should be on g1, got %v", rookStart[h])
	}
	if rookStart[a] != B1 {
		t.Errorf("A-side rook should be on b1, got %v", rookStart[a])
	}
}

func TestCastlingRightsString(t *testing.T) {
	h := NewCastlingDimension(White, CastleH)
	q := NewCastlingDimension(Black, CastleA)
	rights := NoCastlingRights.With(h).With(q)
	if got := rights.String(); got != "Kq" {
		t.Errorf("rights.String() = %q, want %q", got, "Kq")
	}
	if got := NoCastlingRights.String(); got != "-" {
		t.Errorf("NoCastlingRights.String() = %q, want %q", got, "-")
	}
}

func TestCastlingInfoBlockerSet(t *testing.T) {
	var rookStart [CastlingDimensionN]Square
	for i := range rookStart {
		rookStart[i] = NoSquare
	}
	h := NewCastlingDimension(White, CastleH)
	rookStart[h] = H1
	info := NewCastlingInfo(E1, E8, rookStart)

	if info.KingEnd[h] != G1 || info.RookEnd[h] != F1 {
		t.Errorf("standard H-side castling should end king on g1, rook on f1, got king=%v rook=%v", info.KingEnd[h], info.RookEnd[h])
	}
	if !info.BlockerSet[h].Get(F1) || !info.BlockerSet[h].Get(G1) {
		t.Error("blocker set should include f1 and g1")
	}
	if info.BlockerSet[h].Get(E1) || info.BlockerSet[h].Get(H1) {
		t.Error("blocker set should not include the king or rook's own starting squares")
	}
}
