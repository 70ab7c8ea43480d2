package mess

import "math/bits"

// BitBoard is a 64-bit set of squares using little-endian rank-file
// mapping: bit i corresponds to Square(i).
//
//	56  57  58  59  60  61  62  63
//	48  49  50  51  52  53  54  55
//	40  41  42  43  44  45  46  47
//	32  33  34  35  36  37  38  39
//	24  25  26  27  28  29  30  31
//	16  17  18  19  20  21  22  23
//	8   9   10  11  12  13  14  15
//	0   1   2   3   4   5   6   7
type BitBoard uint64

const (
	Empty BitBoard = 0
	Full  BitBoard = 0xffffffffffffffff
)

// notFileA and notFileH guard the shifts that would otherwise wrap
// around the edge of the board.
const (
	notFileA BitBoard = 0xfefefefefefefefe
	notFileH BitBoard = 0x7f7f7f7f7f7f7f7f
)

// SquareBB returns the BitBoard containing only sq.
func SquareBB(sq Square) BitBoard {
	return BitBoard(1) << sq
}

// Get reports whether sq is a member of bb.
func (bb BitBoard) Get(sq Square) bool {
	return bb&SquareBB(sq) != 0
}

// Set returns bb with sq added.
func (bb BitBoard) Set(sq Square) BitBoard {
	return bb | SquareBB(sq)
}

// Clear returns bb with sq removed.
func (bb BitBoard) Clear(sq Square) BitBoard {
	return bb &^ SquareBB(sq)
}

// Flip returns bb with sq's membership toggled.
func (bb BitBoard) Flip(sq Square) BitBoard {
	return bb ^ SquareBB(sq)
}

// LSB returns the least-significant set square of bb, or NoSquare if bb is empty.
func (bb BitBoard) LSB() Square {
	if bb == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(bb)))
}

// PopLSB returns the least-significant set square of bb along with bb
// with that square cleared.
func (bb BitBoard) PopLSB() (Square, BitBoard) {
	sq := bb.LSB()
	return sq, bb&(bb-1)
}

// PopCount returns the number of squares set in bb.
func (bb BitBoard) PopCount() int {
	return bits.OnesCount64(uint64(bb))
}

// Singular reports whether bb contains exactly one square.
func (bb BitBoard) Singular() bool {
	return bb != 0 && bb&(bb-1) == 0
}

// IsEmpty reports whether bb has no squares set.
func (bb BitBoard) IsEmpty() bool {
	return bb == 0
}

// IsDisjoint reports whether bb and other share no squares.
func (bb BitBoard) IsDisjoint(other BitBoard) bool {
	return bb&other == 0
}

// North returns bb with every square shifted one rank up. Overflow off
// the top of the board is harmless: the bits shift out of the uint64.
func (bb BitBoard) North() BitBoard { return bb << 8 }

// South returns bb with every square shifted one rank down.
func (bb BitBoard) South() BitBoard { return bb >> 8 }

// East returns bb with every square shifted one file right, discarding
// any square on the H file first so it cannot wrap onto the A file.
func (bb BitBoard) East() BitBoard { return (bb & notFileH) << 1 }

// West returns bb with every square shifted one file left, discarding
// any square on the A file first so it cannot wrap onto the H file.
func (bb BitBoard) West() BitBoard { return (bb & notFileA) >> 1 }

func (bb BitBoard) NorthEast() BitBoard { return (bb & notFileH) << 9 }
func (bb BitBoard) NorthWest() BitBoard { return (bb & notFileA) << 7 }
func (bb BitBoard) SouthEast() BitBoard { return (bb & notFileH) >> 7 }
func (bb BitBoard) SouthWest() BitBoard { return (bb & notFileA) >> 9 }

// Shift applies the shift corresponding to d to every square in bb.
// Directions other than the eight named above are a no-op.
func (bb BitBoard) Shift(d Direction) BitBoard {
	switch d {
	case North:
		return bb.North()
	case South:
		return bb.South()
	case East:
		return bb.East()
	case West:
		return bb.West()
	case NorthEast:
		return bb.NorthEast()
	case NorthWest:
		return bb.NorthWest()
	case SouthEast:
		return bb.SouthEast()
	case SouthWest:
		return bb.SouthWest()
	default:
		return bb
	}
}

// FileMask, RankMask, DiagonalMask and AntiDiagonalMask hold the full
// BitBoard of every square on each file, rank, and the two diagonal
// families, indexed by File/Rank/Square.Diagonal()/Square.AntiDiagonal().
var (
	FileMask         [FileN]BitBoard
	RankMask         [RankN]BitBoard
	DiagonalMask     [15]BitBoard
	AntiDiagonalMask [15]BitBoard

	// Edges is the BitBoard of every square on the border of the board.
	Edges BitBoard
)

func init() {
	for sq := Square(0); sq < SquareN; sq++ {
		FileMask[sq.File()] = FileMask[sq.File()].Set(sq)
		RankMask[sq.Rank()] = RankMask[sq.Rank()].Set(sq)
		DiagonalMask[sq.Diagonal()] = DiagonalMask[sq.Diagonal()].Set(sq)
		AntiDiagonalMask[sq.AntiDiagonal()] = AntiDiagonalMask[sq.AntiDiagonal()].Set(sq)
	}
	Edges = FileMask[FileA] | FileMask[FileH] | RankMask[Rank1] | RankMask[Rank8]
}

// reverse64 reverses the bit order of v. Used by Hyperbola to compute
// attacks in the negative ray direction.
func reverse64(v uint64) uint64 {
	return bits.Reverse64(v)
}

// Hyperbola computes the sliding attack set of a piece on sq along the
// ray described by mask (a single rank, file, or diagonal), given the
// occupancy occ, using the Hyperbola Quintessence algorithm.
func Hyperbola(sq Square, occ, mask BitBoard) BitBoard {
	r := SquareBB(sq)
	o := occ & mask
	forward := uint64(o) - 2*uint64(r)
	reverseO := reverse64(uint64(o))
	reverseR := reverse64(uint64(r))
	backward := reverseO - 2*reverseR
	return (BitBoard(forward) ^ BitBoard(reverse64(backward))) & mask
}

// bishopSlow computes bishop attacks from sq given occ via Hyperbola
// Quintessence over both diagonal families. Used only to build the
// magic attack table at init time; runtime lookups use BishopAttacks().
func bishopSlow(sq Square, occ BitBoard) BitBoard {
	return Hyperbola(sq, occ, DiagonalMask[sq.Diagonal()]) |
		Hyperbola(sq, occ, AntiDiagonalMask[sq.AntiDiagonal()])
}

// rookSlow computes rook attacks from sq given occ via Hyperbola
// Quintessence over the file and rank through sq. Used only to build
// the magic attack table at init time; runtime lookups use RookAttacks().
func rookSlow(sq Square, occ BitBoard) BitBoard {
	return Hyperbola(sq, occ, FileMask[sq.File()]) |
		Hyperbola(sq, occ, RankMask[sq.Rank()])
}

// Between holds, for every pair of squares, the BitBoard of squares
// strictly between them along a shared rank, file, or diagonal (empty
// if the two squares do not share one, or are the same square).
// Between1/Between2/Between12 add one, the other, or both endpoints
// respectively, and are derived from Between at package init.
var (
	Between   [SquareN][SquareN]BitBoard
	Between1  [SquareN][SquareN]BitBoard
	Between2  [SquareN][SquareN]BitBoard
	Between12 [SquareN][SquareN]BitBoard
)

func init() {
	for s1 := Square(0); s1 < SquareN; s1++ {
		for s2 := Square(0); s2 < SquareN; s2++ {
			mask := rayMask(s1, s2)
			if mask == 0 || s1 == s2 {
				continue
			}
			occ := SquareBB(s1) | SquareBB(s2)
			between := Hyperbola(s1, occ, mask) & Hyperbola(s2, occ, mask)
			between = between &^ occ

			Between[s1][s2] = between
			Between1[s1][s2] = between.Set(s1)
			Between2[s1][s2] = between.Set(s2)
			Between12[s1][s2] = between.Set(s1).Set(s2)
		}
	}
}

// rayMask returns the shared rank, file, or diagonal mask of s1 and s2,
// preferring diagonal over anti-diagonal over file over rank, matching
// the priority used by the canonical Between table construction. It
// returns Empty if the two squares do not share a line.
func rayMask(s1, s2 Square) BitBoard {
	switch {
	case s1.Diagonal() == s2.Diagonal():
		return DiagonalMask[s1.Diagonal()]
	case s1.AntiDiagonal() == s2.AntiDiagonal():
		return AntiDiagonalMask[s1.AntiDiagonal()]
	case s1.File() == s2.File():
		return FileMask[s1.File()]
	case s1.Rank() == s2.Rank():
		return RankMask[s1.Rank()]
	default:
		return Empty
	}
}
