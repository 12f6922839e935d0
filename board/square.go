package board

import "fmt"

// Square represents a board position (0-63).
//
// Squares use little-endian rank-file mapping:
//
//	56  57  58  59  60  61  62  63
//	48  49  50  51  52  53  54  55
//	40  41  42  43  44  45  46  47
//	32  33  34  35  36  37  38  39
//	24  25  26  27  28  29  30  31
//	16  17  18  19  20  21  22  23
//	8   9   10  11  12  13  14  15
//	0   1   2   3   4   5   6   7
type Square int8

const NoSquare Square = -1

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
)

// NumSquares is the number of squares on the board.
const NumSquares = 64

// File is a column of the board, FileA = 0.
type File int8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// Rank is a row of the board, Rank1 = 0.
type Rank int8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// NewSquare returns the square at the given file and rank.
func NewSquare(f File, r Rank) Square { return Square(int8(r)*8 + int8(f)) }

// File returns the file of the square.
func (sq Square) File() File { return File(sq & 7) }

// Rank returns the rank of the square.
func (sq Square) Rank() Rank { return Rank(sq >> 3) }

// Valid reports whether sq is on the board.
func (sq Square) Valid() bool { return sq >= A1 && sq <= H8 }

// Bitboard returns a bitboard with only sq set, or EmptyBB for an off-board square.
func (sq Square) Bitboard() Bitboard {
	if !sq.Valid() {
		return EmptyBB
	}
	return Bitboard(1) << uint(sq)
}

// String returns the algebraic name of the square ("e4"), or "-" for NoSquare.
func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

func (f File) String() string { return string(rune('a' + f)) }

func (r Rank) String() string { return string(rune('1' + r)) }

// ParseSquare converts an algebraic square name such as "e4" into a Square.
// Upper-case files are accepted.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square %q: expected file and rank", s)
	}
	file := s[0] | 0x20 // lower-case
	rank := s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("invalid square %q: out of range", s)
	}
	return NewSquare(File(file-'a'), Rank(rank-'1')), nil
}
