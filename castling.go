package mess

import "strings"

// CastlingSide distinguishes the two rooks a king may castle with: the
// one starting on its own side of the board (H, kingside in standard
// chess) and the one on the queen's side (A, queenside in standard
// chess). Naming them by file rather than "king/queenside" keeps the
// meaning exact under Chess960, where the rook is not necessarily on
// the h- or a-file.
type CastlingSide uint8

const (
	CastleH CastlingSide = iota
	CastleA
	CastlingSideN = 2
)

// CastlingDimension identifies one of the four (color, side)
// combinations that a position's castling rights track.
type CastlingDimension uint8

const CastlingDimensionN = 4

// NewCastlingDimension builds the dimension for a color and side.
func NewCastlingDimension(color Color, side CastlingSide) CastlingDimension {
	return CastlingDimension(uint8(color)*CastlingSideN + uint8(side))
}

// CastlingRights is a bitmask over the four CastlingDimension values.
type CastlingRights uint8

const NoCastlingRights CastlingRights = 0

// Has reports whether d is present in r.
func (r CastlingRights) Has(d CastlingDimension) bool {
	return r&(1<<d) != 0
}

// With returns r with d added.
func (r CastlingRights) With(d CastlingDimension) CastlingRights {
	return r | 1<<d
}

// Without returns r with d removed.
func (r CastlingRights) Without(d CastlingDimension) CastlingRights {
	return r &^ (1 << d)
}

func (r CastlingRights) String() string {
	if r == NoCastlingRights {
		return "-"
	}
	var b strings.Builder
	if r.Has(NewCastlingDimension(White, CastleH)) {
		b.WriteByte('K')
	}
	if r.Has(NewCastlingDimension(White, CastleA)) {
		b.WriteByte('Q')
	}
	if r.Has(NewCastlingDimension(Black, CastleH)) {
		b.WriteByte('k')
	}
	if r.Has(NewCastlingDimension(Black, CastleA)) {
		b.WriteByte('q')
	}
	return b.String()
}

// CastlingInfo precomputes, for every castling dimension, everything
// the move generator and the board need to apply a castling move:
// where the rook starts, where the king and rook end up, which
// squares must be empty for the move to be legal, and which squares
// must not be attacked.
type CastlingInfo struct {
	RookStart  [CastlingDimensionN]Square
	KingEnd    [CastlingDimensionN]Square
	RookEnd    [CastlingDimensionN]Square
	BlockerSet [CastlingDimensionN]BitBoard
	AttackSet  [CastlingDimensionN]BitBoard

	// RightsMask holds, per square, the castling rights that are lost
	// when a piece is removed from that square (moved, or captured).
	RightsMask [SquareN]CastlingRights
}

// kingEndSquare returns the square the king lands on when castling
// with the rook on side, given the king's home square.
func kingEndSquare(king Square, side CastlingSide) Square {
	if side == CastleH {
		return NewSquare(FileG, king.Rank())
	}
	return NewSquare(FileC, king.Rank())
}

// rookEndSquare returns the square the rook lands on when castling on side.
func rookEndSquare(king Square, side CastlingSide) Square {
	if side == CastleH {
		return NewSquare(FileF, king.Rank())
	}
	return NewSquare(FileD, king.Rank())
}

// NewCastlingInfo builds the precomputed castling tables for a
// position whose kings start on whiteKing/blackKing and whose rooks
// start on the given squares, one per dimension (NoSquare if that
// right does not exist).
func NewCastlingInfo(whiteKing, blackKing Square, rookStart [CastlingDimensionN]Square) CastlingInfo {
	info := CastlingInfo{RookStart: rookStart}
	kings := [ColorN]Square{whiteKing, blackKing}

	for d := CastlingDimension(0); d < CastlingDimensionN; d++ {
		rook := rookStart[d]
		if rook == NoSquare {
			continue
		}
		color := Color(d / CastlingSideN)
		side := CastlingSide(d % CastlingSideN)
		king := kings[color]

		kingEnd := kingEndSquare(king, side)
		rookEnd := rookEndSquare(king, side)
		info.KingEnd[d] = kingEnd
		info.RookEnd[d] = rookEnd

		info.BlockerSet[d] = (Between2[king][kingEnd] | Between2[rook][rookEnd]) &^ (SquareBB(king) | SquareBB(rook))
		info.AttackSet[d] = Between2[king][kingEnd]
	}

	for sq := Square(0); sq < SquareN; sq++ {
		info.RightsMask[sq] = NoCastlingRights
	}
	for d := CastlingDimension(0); d < CastlingDimensionN; d++ {
		rook := rookStart[d]
		if rook == NoSquare {
			continue
		}
		color := Color(d / CastlingSideN)
		info.RightsMask[rook] = info.RightsMask[rook].With(d)
		king := kings[color]
		info.RightsMask[king] = info.RightsMask[king].
			With(NewCastlingDimension(color, CastleH)).
			With(NewCastlingDimension(color, CastleA))
	}

	return info
}

// Mask returns the castling rights lost when a piece leaves sq,
// whether by moving or by being captured.
func (info *CastlingInfo) Mask(sq Square) CastlingRights {
	return info.RightsMask[sq]
}

// ParseCastlingRights parses the castling field of a FEN. It accepts
// the standard "KQkq" notation, Shredder-FEN file letters for Chess960
// ("HAha" style, using whichever letters actually mark a rook's
// file), and "-" for no rights. whiteKing and blackKing are needed to
// decide, for Shredder-FEN letters, which side of the king a given
// rook file falls on.
func ParseCastlingRights(s string, whiteKing, blackKing Square) (CastlingRights, [CastlingDimensionN]Square, bool, error) {
	var rookStart [CastlingDimensionN]Square
	for i := range rookStart {
		rookStart[i] = NoSquare
	}

	if s == "-" {
		return NoCastlingRights, rookStart, false, nil
	}

	frc := false
	for i := 0; i < len(s); i++ {
		if !strings.ContainsRune("KQkq", rune(s[i])) {
			frc = true
			break
		}
	}

	var rights CastlingRights
	kings := [ColorN]Square{whiteKing, blackKing}

	for i := 0; i < len(s); i++ {
		c := s[i]
		var color Color
		if c >= 'a' && c <= 'z' {
			color = Black
		} else {
			color = White
		}
		king := kings[color]

		if !frc {
			switch c {
			case 'K', 'k':
				d := NewCastlingDimension(color, CastleH)
				rights = rights.With(d)
				rookStart[d] = NewSquare(FileH, king.Rank())
			case 'Q', 'q':
				d := NewCastlingDimension(color, CastleA)
				rights = rights.With(d)
				rookStart[d] = NewSquare(FileA, king.Rank())
			default:
				return NoCastlingRights, rookStart, false, newError(UnknownCastlingChar, "invalid castling field %q", s)
			}
			continue
		}

		upper := c
		if upper >= 'a' && upper <= 'z' {
			upper = upper - 'a' + 'A'
		}
		if upper < 'A' || upper > 'H' {
			return NoCastlingRights, rookStart, false, newError(UnknownCastlingChar, "invalid castling field %q", s)
		}
		file := File(upper - 'A')

		side := CastleA
		if file > king.File() {
			side = CastleH
		}
		d := NewCastlingDimension(color, side)
		rights = rights.With(d)
		rookStart[d] = NewSquare(file, king.Rank())
	}

	return rights, rookStart, frc, nil
}
