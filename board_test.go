package mess

import "testing"

func TestMakeMoveUndoMoveRestoresHash(t *testing.T) {
	b, err := NewBoard(StartFEN)
	if err != nil {
		t.Fatal(err)
	}
	before := b.Position().Hash
	move := NewMove(E2, E4, DoublePush)
	b.MakeMove(move)
	if b.Position().Hash == before {
		t.Error("hash should change after a move")
	}
	b.UndoMove()
	if b.Position().Hash != before {
		t.Error("undoing a move should restore the previous hash")
	}
}

func TestMakeMoveZobristConsistency(t *testing.T) {
	b, err := NewBoard(StartFEN)
	if err != nil {
		t.Fatal(err)
	}
	for _, mv := range []Move{
		NewMove(E2, E4, DoublePush),
		NewMove(E7, E5, DoublePush),
		NewMove(G1, F3, Normal),
	} {
		b.MakeMove(mv)
	}
	if got, want := b.Position().Hash, ZobristHash(b.Position()); got != want {
		t.Errorf("incremental hash %x does not match recomputed hash %x", uint64(got), uint64(want))
	}
}

func TestMakeMoveRookMoveLosesCastlingRight(t *testing.T) {
	b, err := NewBoard("r3k3/8/8/8/8/8/8/R3K3 w Q - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	dim := NewCastlingDimension(White, CastleA)
	if !b.Position().Rights.Has(dim) {
		t.Fatal("white should start with the A-side right")
	}
	b.MakeMove(NewMove(A1, B1, Normal))
	if b.Position().Rights.Has(dim) {
		t.Error("moving the rook off a1 should remove white's A-side castling right")
	}
}

func TestMakeMoveCastlingRelocatesRook(t *testing.T) {
	b, err := NewBoard("4k3/8/8/8/8/8/8/R3K3 w Q - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	b.MakeMove(NewMove(E1, A1, CastleASide))
	p := b.Position()
	if p.Mailbox[C1] != WhiteKing {
		t.Errorf("king should land on c1, mailbox has %v", p.Mailbox[C1])
	}
	if p.Mailbox[D1] != WhiteRook {
		t.Errorf("rook should land on d1, mailbox has %v", p.Mailbox[D1])
	}
	if p.Mailbox[E1] != NoColoredPiece || p.Mailbox[A1] != NoColoredPiece {
		t.Error("the king and rook's starting squares should be empty after castling")
	}
}

func TestIsTerminatedCheckmate(t *testing.T) {
	b, err := NewBoard("8/8/8/8/8/4k3/8/r3K3 w - - 6 4")
	if err != nil {
		t.Fatal(err)
	}
	moves := b.GenerateMoves(GenAll)
	if !b.IsTerminated(len(moves)) || b.Termination()&TerminationCheckmate == 0 {
		t.Errorf("expected checkmate, got %v", b.Termination())
	}
}

func TestIsTerminatedStalemate(t *testing.T) {
	b, err := NewBoard("4k3/4P3/4K3/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	moves := b.GenerateMoves(GenAll)
	if !b.IsTerminated(len(moves)) || b.Termination()&TerminationStalemate == 0 {
		t.Errorf("expected stalemate, got %v", b.Termination())
	}
}

func TestIsTerminatedFiftyMoveRule(t *testing.T) {
	b, err := NewBoard("7k/ppp5/8/8/8/8/7K/8 w - - 100 1")
	if err != nil {
		t.Fatal(err)
	}
	moves := b.GenerateMoves(GenAll)
	if !b.IsTerminated(len(moves)) || b.Termination()&TerminationFiftyMoveRule == 0 {
		t.Errorf("expected fifty-move rule termination, got %v", b.Termination())
	}
}

func TestIsTerminatedInsufficientMaterial(t *testing.T) {
	fens := []string{
		"4k3/8/8/5K2/8/8/8/8 w - - 0 1",
		"4k3/8/8/5KN1/8/8/8/8 w - - 0 1",
		"4k3/8/8/5KB1/8/8/8/8 w - - 0 1",
		"4kb2/8/8/5KB1/8/8/8/8 w - - 0 1",
	}
	for _, f := range fens {
		b, err := NewBoard(f)
		if err != nil {
			t.Fatal(err)
		}
		moves := b.GenerateMoves(GenAll)
		if !b.IsTerminated(len(moves)) || b.Termination()&TerminationInsufficientMaterial == 0 {
			t.Errorf("%s: expected insufficient material, got %v", f, b.Termination())
		}
	}
}

func TestMoveStringStandardCastling(t *testing.T) {
	b, err := NewBoard("4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	m := NewMove(E1, H1, CastleHSide)
	if got := b.MoveString(m); got != "e1g1" {
		t.Errorf("MoveString(castle) = %q, want %q", got, "e1g1")
	}
}
