// Package mess implements a legal chess move generator and position
// manager for standard chess and Chess960 (Fischer Random), built on
// magic bitboards.
package mess

// Color represents one of the two sides playing a game of chess.
type Color uint8

const (
	White Color = iota
	Black
	ColorN = 2
)

// Other returns the color that is not c.
func (c Color) Other() Color {
	return c ^ 1
}

func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// ParseColor parses a single-character side-to-move field from a FEN.
func ParseColor(s string) (Color, error) {
	switch s {
	case "w":
		return White, nil
	case "b":
		return Black, nil
	default:
		return White, newError(MalformedEncoding, "invalid color %q", s)
	}
}

// Piece identifies the type of a chess piece, irrespective of color.
type Piece uint8

const (
	Pawn Piece = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPiece
	PieceN = 6
)

var pieceLetters = [PieceN]byte{'p', 'n', 'b', 'r', 'q', 'k'}

func (p Piece) String() string {
	if p >= PieceN {
		return "-"
	}
	return string(pieceLetters[p])
}

// ColoredPiece is a Piece combined with the Color that owns it.
type ColoredPiece uint8

const (
	WhitePawn ColoredPiece = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	NoColoredPiece
	ColoredPieceN = 12
)

// NewColoredPiece builds a ColoredPiece from its components.
func NewColoredPiece(color Color, piece Piece) ColoredPiece {
	return ColoredPiece(uint8(color)*PieceN + uint8(piece))
}

// Piece returns the piece-type component of cp.
func (cp ColoredPiece) Piece() Piece {
	return Piece(uint8(cp) % PieceN)
}

// Color returns the color component of cp.
func (cp ColoredPiece) Color() Color {
	return Color(uint8(cp) / PieceN)
}

var coloredPieceLetters = [ColoredPieceN]byte{
	'P', 'N', 'B', 'R', 'Q', 'K',
	'p', 'n', 'b', 'r', 'q', 'k',
}

func (cp ColoredPiece) String() string {
	if cp >= ColoredPieceN {
		return "."
	}
	return string(coloredPieceLetters[cp])
}

// ParseColoredPiece parses a single FEN board-character into a ColoredPiece.
func ParseColoredPiece(c byte) (ColoredPiece, error) {
	for i, l := range coloredPieceLetters {
		if l == c {
			return ColoredPiece(i), nil
		}
	}
	return NoColoredPiece, newError(MalformedEncoding, "invalid piece character %q", c)
}

// File is a column of the chessboard, A through H.
type File uint8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
	NoFile
	FileN = 8
)

func (f File) String() string {
	if f >= FileN {
		return "-"
	}
	return string(rune('a' + f))
}

// ParseFile parses a lowercase file letter, a-h.
func ParseFile(c byte) (File, error) {
	if c < 'a' || c > 'h' {
		return NoFile, newError(MalformedEncoding, "invalid file %q", c)
	}
	return File(c - 'a'), nil
}

// Rank is a row of the chessboard, 1 through 8.
type Rank uint8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	NoRank
	RankN = 8
)

func (r Rank) String() string {
	if r >= RankN {
		return "-"
	}
	return string(rune('1' + r))
}

// ParseRank parses a rank digit, 1-8.
func ParseRank(c byte) (Rank, error) {
	if c < '1' || c > '8' {
		return NoRank, newError(MalformedEncoding, "invalid rank %q", c)
	}
	return Rank(c - '1'), nil
}

// Square is one of the 64 squares of a chessboard, using little-endian
// rank-file mapping: Square = rank*8 + file, A1 = 0 ... H8 = 63.
type Square uint8

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	NoSquare
	SquareN = 64
)

// NewSquare builds a Square from a file and a rank.
func NewSquare(f File, r Rank) Square {
	return Square(uint8(r)*FileN + uint8(f))
}

// File returns the file of sq.
func (sq Square) File() File {
	if sq == NoSquare {
		return NoFile
	}
	return File(uint8(sq) % FileN)
}

// Rank returns the rank of sq.
func (sq Square) Rank() Rank {
	if sq == NoSquare {
		return NoRank
	}
	return Rank(uint8(sq) / FileN)
}

// Diagonal returns the index (0-14) of the a1-h8-parallel diagonal sq lies on.
func (sq Square) Diagonal() uint8 {
	return 7 + uint8(sq.Rank()) - uint8(sq.File())
}

// AntiDiagonal returns the index (0-14) of the h1-a8-parallel diagonal sq lies on.
func (sq Square) AntiDiagonal() uint8 {
	return uint8(sq.Rank()) + uint8(sq.File())
}

func (sq Square) String() string {
	if sq == NoSquare {
		return "-"
	}
	return sq.File().String() + sq.Rank().String()
}

// ParseSquare parses a two-character algebraic square, e.g. "e4", or "-".
func ParseSquare(s string) (Square, error) {
	if s == "-" {
		return NoSquare, nil
	}
	if len(s) != 2 {
		return NoSquare, newError(MalformedEncoding, "invalid square %q", s)
	}
	f, err := ParseFile(s[0])
	if err != nil {
		return NoSquare, err
	}
	r, err := ParseRank(s[1])
	if err != nil {
		return NoSquare, err
	}
	return NewSquare(f, r), nil
}

// Shift returns the square reached by moving sq in the given Direction.
// It does not bounds-check; callers mask results against a file/edge
// BitBoard as appropriate, matching the canonical shift policy.
func (sq Square) Shift(d Direction) Square {
	return Square(int8(sq) + int8(d))
}

// Direction is a signed offset between two squares, expressed in units
// of the little-endian rank-file square index.
type Direction int8

const (
	North     Direction = 8
	South     Direction = -8
	East      Direction = 1
	West      Direction = -1
	NorthEast Direction = North + East
	NorthWest Direction = North + West
	SouthEast Direction = South + East
	SouthWest Direction = South + West
	NoDirection Direction = 0
)

// Up returns the forward direction for the given side to move.
func Up(stm Color) Direction {
	if stm == White {
		return North
	}
	return South
}

// Down returns the backward direction for the given side to move.
func Down(stm Color) Direction {
	if stm == White {
		return South
	}
	return North
}
