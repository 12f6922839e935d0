package tables

import "chess-attacks/board"

// Direct ray casting. It is far slower than the lookup tables and exists to check them.

type direction struct {
	df, dr int
	// positive is true when the ray runs towards higher square indices.
	positive bool
}

var (
	rookDirections = [4]direction{
		{0, 1, true},   // N
		{0, -1, false}, // S
		{1, 0, true},   // E
		{-1, 0, false}, // W
	}
	bishopDirections = [4]direction{
		{1, 1, true},    // NE
		{-1, 1, true},   // NW
		{1, -1, false},  // SE
		{-1, -1, false}, // SW
	}
)

// ray returns the squares from sq (excluded) to the board edge in direction d.
func ray(sq board.Square, d direction) board.Bitboard {
	var bb board.Bitboard
	f, r := int(sq.File())+d.df, int(sq.Rank())+d.dr
	for f >= 0 && f < 8 && r >= 0 && r < 8 {
		bb |= board.NewSquare(board.File(f), board.Rank(r)).Bitboard()
		f, r = f+d.df, r+d.dr
	}
	return bb
}

// castRay returns the ray from sq in direction d cut off after its first blocker.
func castRay(sq board.Square, d direction, occ board.Bitboard) board.Bitboard {
	attacks := ray(sq, d)
	blockers := attacks & occ
	if blockers == 0 {
		return attacks
	}
	var first int
	if d.positive {
		first = mustScan(BitscanForward(uint64(blockers)))
	} else {
		first = mustScan(BitscanReverse(uint64(blockers)))
	}
	return attacks &^ ray(board.Square(first), d)
}

// RayAttacks computes the attacks of a rook, bishop or queen on sq by walking each ray
// until it meets a blocker. Other kinds yield EmptyBB.
func RayAttacks(kind board.PieceKind, sq board.Square, occ board.Bitboard) board.Bitboard {
	if !sq.Valid() {
		return board.EmptyBB
	}
	var attacks board.Bitboard
	if kind == board.Rook || kind == board.Queen {
		for _, d := range rookDirections {
			attacks |= castRay(sq, d, occ)
		}
	}
	if kind == board.Bishop || kind == board.Queen {
		for _, d := range bishopDirections {
			attacks |= castRay(sq, d, occ)
		}
	}
	return attacks
}
