package mess

import (
	"strconv"
	"strings"
)

// StartFEN is the FEN of the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FEN is the parsed form of a Forsyth-Edwards Notation string, kept
// as an intermediate between the text format and a ready-to-use
// Position. Its castling fields are resolved during parsing from the
// king squares found on the board, which ParseCastlingRights needs to
// place Shredder-FEN rook files on a side.
type FEN struct {
	Mailbox      [SquareN]ColoredPiece
	SideToMove   Color
	EPTarget     Square
	DrawClock    uint8
	PlyCount     uint16
	CastlingInfo CastlingInfo
	CastlingRights CastlingRights
	FRC          bool
}

// moveCountToPlyCount converts a FEN's 1-based full move number into
// a 0-based ply count, given whose move it currently is.
func moveCountToPlyCount(moveCount uint16, stm Color) uint16 {
	if stm == White {
		return moveCount*2 - 2
	}
	return moveCount*2 - 1
}

// ParseFEN parses a Forsyth-Edwards Notation string, standard or Shredder.
func ParseFEN(s string) (FEN, error) {
	fields := strings.Fields(s)
	if len(fields) != 6 {
		return FEN{}, newError(MalformedEncoding, "malformed FEN %q: expected 6 fields, got %d", s, len(fields))
	}

	var fen FEN
	for sq := Square(0); sq < SquareN; sq++ {
		fen.Mailbox[sq] = NoColoredPiece
	}

	var whiteKing, blackKing Square = NoSquare, NoSquare
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != int(RankN) {
		return FEN{}, newError(MalformedEncoding, "malformed FEN %q: expected 8 ranks", s)
	}
	for i, rankStr := range ranks {
		rank := Rank(int(Rank8) - i)
		file := FileA
		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if c >= '1' && c <= '8' {
				file += File(c - '0')
				continue
			}
			if file >= FileN {
				return FEN{}, newError(MalformedEncoding, "malformed FEN %q: rank overflow", s)
			}
			piece, err := ParseColoredPiece(c)
			if err != nil {
				return FEN{}, err
			}
			sq := NewSquare(file, rank)
			fen.Mailbox[sq] = piece
			if piece == WhiteKing {
				whiteKing = sq
			} else if piece == BlackKing {
				blackKing = sq
			}
			file++
		}
	}

	stm, err := ParseColor(fields[1])
	if err != nil {
		return FEN{}, err
	}
	fen.SideToMove = stm

	rights, rookStart, frc, err := ParseCastlingRights(fields[2], whiteKing, blackKing)
	if err != nil {
		return FEN{}, err
	}
	fen.CastlingRights = rights
	fen.FRC = frc
	fen.CastlingInfo = NewCastlingInfo(whiteKing, blackKing, rookStart)

	epTarget, err := ParseSquare(fields[3])
	if err != nil {
		return FEN{}, err
	}
	fen.EPTarget = epTarget

	drawClock, err := strconv.Atoi(fields[4])
	if err != nil {
		return FEN{}, newError(MalformedEncoding, "malformed FEN %q: bad halfmove clock", s)
	}
	fen.DrawClock = uint8(drawClock)

	moveCount, err := strconv.Atoi(fields[5])
	if err != nil {
		return FEN{}, newError(MalformedEncoding, "malformed FEN %q: bad move number", s)
	}
	fen.PlyCount = moveCountToPlyCount(uint16(moveCount), stm)

	return fen, nil
}
