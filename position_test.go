package mess

import (
	"strings"
	"testing"
)

func mustParsePosition(t *testing.T, fenString string) Position {
	fen, err := ParseFEN(fenString)
	if err != nil {
		t.Fatalf("ParseFEN(%q) failed: %v", fenString, err)
	}
	return NewPosition(fen)
}

func TestNewPositionStartpos(t *testing.T) {
	p := mustParsePosition(t, StartFEN)
	if p.Occupied().PopCount() != 32 {
		t.Errorf("startpos should have 32 pieces, got %d", p.Occupied().PopCount())
	}
	if p.CheckCount != 0 {
		t.Error("startpos should not be check")
	}
	if p.King(White) != E1 || p.King(Black) != E8 {
		t.Error("kings should be on their home squares")
	}
}

func TestPositionInsertRemove(t *testing.T) {
	p := mustParsePosition(t, StartFEN)
	hashBefore := p.Hash

	p.Remove(E2)
	p.Insert(E4, WhitePawn)
	if p.Mailbox[E2] != NoColoredPiece {
		t.Error("e2 should be empty after Remove")
	}
	if p.Mailbox[E4] != WhitePawn {
		t.Error("e4 should hold a white pawn after Insert")
	}

	p.Remove(E4)
	p.Insert(E2, WhitePawn)
	if p.Hash != hashBefore {
		t.Error("inverse Insert/Remove should restore the original hash")
	}
}

func TestGenerateCheckersDetectsCheck(t *testing.T) {
	p := mustParsePosition(t, "4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	if p.CheckCount != 1 {
		t.Errorf("CheckCount = %d, want 1", p.CheckCount)
	}
	if !p.Checkers.Get(E2) {
		t.Error("the rook on e2 should be recorded as a checker")
	}
}

func TestGenerateCheckersDoubleCheck(t *testing.T) {
	p := mustParsePosition(t, "4k3/8/8/8/4r3/8/6n1/4K3 w - - 0 1")
	if p.CheckCount != 2 {
		t.Errorf("CheckCount = %d, want 2: the rook on e4 and the knight on g2 both check", p.CheckCount)
	}
}

func TestAttackedDefault(t *testing.T) {
	p := mustParsePosition(t, StartFEN)
	if !p.AttackedDefault(White, D2) {
		t.Error("d2 should be defended by white's own knight on b1 in the starting position")
	}
	if p.AttackedDefault(Black, E4) {
		t.Error("e4 should not be attacked by black in the starting position")
	}
}

func TestPositionStringGridFormat(t *testing.T) {
	p := mustParsePosition(t, StartFEN)
	s := p.String()
	if !strings.Contains(s, "+---+---+---+---+---+---+---+---+\n") {
		t.Error("board string should contain a row separator")
	}
	if !strings.Contains(s, "| R | N | B | Q | K | B | N | R | 1\n") {
		t.Error("rank 1 should render white's back rank with a trailing rank label")
	}
	if !strings.Contains(s, "  a   b   c   d   e   f   g   h\n") {
		t.Error("board string should end with a file-letter footer")
	}
}
