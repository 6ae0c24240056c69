// Package board implements the position contract the search-and-evaluation
// core consumes: an 8x8 board of pieces, legal move generation, and
// make/unmake. y=0 is rank 8 (White's far side); x=0 is file a.
package board

// Piece is a single board square: the FEN letter itself doubles as the
// wire/storage representation. Empty (' ') marks an empty square on the
// board; IsEmpty also accepts the zero value, which is what a Move's
// Promotion holds when there is no promotion.
type Piece byte

const (
	Empty Piece = ' '

	WhitePawn   Piece = 'P'
	WhiteKnight Piece = 'N'
	WhiteBishop Piece = 'B'
	WhiteRook   Piece = 'R'
	WhiteQueen  Piece = 'Q'
	WhiteKing   Piece = 'K'

	BlackPawn   Piece = 'p'
	BlackKnight Piece = 'n'
	BlackBishop Piece = 'b'
	BlackRook   Piece = 'r'
	BlackQueen  Piece = 'q'
	BlackKing   Piece = 'k'
)

// PieceType identifies a piece irrespective of color.
type PieceType uint8

const (
	NoType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// NumPieceTypes is the number of distinct piece types.
const NumPieceTypes = 6

func (p Piece) IsEmpty() bool {
	return p == Empty || p == 0
}

// Color returns the owning side. Only valid for a non-empty piece.
func (p Piece) Color() Player {
	if p >= 'a' && p <= 'z' {
		return Black
	}
	return White
}

// Type returns the piece type, or NoType for an empty square.
func (p Piece) Type() PieceType {
	switch p {
	case WhitePawn, BlackPawn:
		return Pawn
	case WhiteKnight, BlackKnight:
		return Knight
	case WhiteBishop, BlackBishop:
		return Bishop
	case WhiteRook, BlackRook:
		return Rook
	case WhiteQueen, BlackQueen:
		return Queen
	case WhiteKing, BlackKing:
		return King
	default:
		return NoType
	}
}

// PieceFor returns the FEN letter for the given color and type.
func PieceFor(c Player, t PieceType) Piece {
	if c == White {
		switch t {
		case Pawn:
			return WhitePawn
		case Knight:
			return WhiteKnight
		case Bishop:
			return WhiteBishop
		case Rook:
			return WhiteRook
		case Queen:
			return WhiteQueen
		case King:
			return WhiteKing
		}
	} else {
		switch t {
		case Pawn:
			return BlackPawn
		case Knight:
			return BlackKnight
		case Bishop:
			return BlackBishop
		case Rook:
			return BlackRook
		case Queen:
			return BlackQueen
		case King:
			return BlackKing
		}
	}
	return Empty
}

func (p Piece) String() string {
	return string(rune(p))
}
