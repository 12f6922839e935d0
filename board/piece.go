package board

// Color is the side owning a piece.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing color.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

// PieceKind is a colorless piece type, usable as an index into Occupancy.
type PieceKind uint8

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// NumPieceKinds is the number of piece kinds per color.
const NumPieceKinds = 6

// IsSlider reports whether the piece's attacks depend on blockers.
func (k PieceKind) IsSlider() bool { return k == Bishop || k == Rook || k == Queen }

func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "none"
	}
}

// Piece is a colored piece kind.
type Piece struct {
	Color Color
	Kind  PieceKind
}

// pieceFromChar converts a FEN character to the corresponding Piece.
func pieceFromChar(ch rune) (Piece, bool) {
	switch ch {
	case 'P':
		return Piece{White, Pawn}, true
	case 'N':
		return Piece{White, Knight}, true
	case 'B':
		return Piece{White, Bishop}, true
	case 'R':
		return Piece{White, Rook}, true
	case 'Q':
		return Piece{White, Queen}, true
	case 'K':
		return Piece{White, King}, true
	case 'p':
		return Piece{Black, Pawn}, true
	case 'n':
		return Piece{Black, Knight}, true
	case 'b':
		return Piece{Black, Bishop}, true
	case 'r':
		return Piece{Black, Rook}, true
	case 'q':
		return Piece{Black, Queen}, true
	case 'k':
		return Piece{Black, King}, true
	default:
		return Piece{}, false
	}
}

// Char returns the FEN character of the piece (upper-case for White).
func (p Piece) Char() byte {
	c := "pnbrqk"[p.Kind]
	if p.Color == White {
		c -= 'a' - 'A'
	}
	return c
}

// ParsePieceKind converts a piece letter of either case ("q", "N") to its kind.
func ParsePieceKind(s string) (PieceKind, bool) {
	if len(s) != 1 {
		return 0, false
	}
	p, ok := pieceFromChar(rune(s[0]))
	return p.Kind, ok
}
