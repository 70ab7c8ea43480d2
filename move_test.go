package mess

import "testing"

func TestMoveRoundTrip(t *testing.T) {
	cases := []struct {
		source, target Square
		flag            MoveFlag
	}{
		{E2, E4, Normal},
		{E2, E4, DoublePush},
		{E7, E8, QueenPromotion},
		{E7, D8, EnPassant},
		{E1, H1, CastleHSide},
		{E1, A1, CastleASide},
	}
	for _, c := range cases {
		m := NewMove(c.source, c.target, c.flag)
		if m.Source() != c.source {
			t.Errorf("Source() = %v, want %v", m.Source(), c.source)
		}
		if m.Target() != c.target {
			t.Errorf("Target() = %v, want %v", m.Target(), c.target)
		}
		if m.Flag() != c.flag {
			t.Errorf("Flag() = %v, want %v", m.Flag(), c.flag)
		}
	}
}

func TestMoveIsPromotion(t *testing.T) {
	for f := KnightPromotion; f <= QueenPromotion; f++ {
		m := NewMove(A7, A8, f)
		if !m.IsPromotion() {
			t.Errorf("flag %v should be a promotion", f)
		}
	}
	if NewMove(A7, A8, Normal).IsPromotion() {
		t.Error("Normal should not be a promotion")
	}
}

func TestMovePromotedPiece(t *testing.T) {
	cases := map[MoveFlag]Piece{
		KnightPromotion: Knight,
		BishopPromotion: Bishop,
		RookPromotion:   Rook,
		QueenPromotion:  Queen,
	}
	for flag, piece := range cases {
		m := NewMove(A7, A8, flag)
		if got := m.PromotedPiece(); got != piece {
			t.Errorf("PromotedPiece() for flag %v = %v, want %v", flag, got, piece)
		}
	}
}

func TestMoveToString(t *testing.T) {
	if NullMove.ToString() != "0000" {
		t.Errorf("NullMove.ToString() = %q, want %q", NullMove.ToString(), "0000")
	}
	m := NewMove(E7, E8, QueenPromotion)
	if got := m.ToString(); got != "e7e8q" {
		t.Errorf("ToString() = %q, want %q", got, "e7e8q")
	}
	m2 := NewMove(E2, E4, Normal)
	if got := m2.ToString(); got != "e2e4" {
		t.Errorf("ToString() = %q, want %q", got, "e2e4")
	}
}

func TestMoveIsCastling(t *testing.T) {
	if !NewMove(E1, H1, CastleHSide).IsCastling() {
		t.Error("CastleHSide should be castling")
	}
	if !NewMove(E1, A1, CastleASide).IsCastling() {
		t.Error("CastleASide should be castling")
	}
	if NewMove(E2, E4, Normal).IsCastling() {
		t.Error("Normal should not be castling")
	}
}
