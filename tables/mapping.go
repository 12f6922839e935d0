package tables

import "chess-attacks/board"

// Mapping between a 64-bit board and the 8-bit line used by the shared table.
//
//	rank:           byte = occ >> 8*rank                     position = file
//	file:           byte = (occ >> file & A) * fileGather >> 56   position = rank
//	(anti)diagonal: byte = (occ & mask) * A >> 56            position = file
//
// where A is the a-file. Each multiplication moves every masked bit to a distinct bit of the
// top byte, so no partial products overlap and no carries corrupt the result. Scattering
// back reverses the same steps.

const (
	fileGather = 0x0102040810204080 // a-file bit 8k -> bit 56+k
	byteSpread = 0x0101010101010101 // copy the low byte into every rank
	hFileFold  = 0xFF               // diagonal bit 9k -> h-file bit 8k+7
)

func gatherRank(occ board.Bitboard, r board.Rank) uint8 {
	return uint8(occ >> (8 * uint(r)))
}

func scatterRank(line uint8, r board.Rank) board.Bitboard {
	return board.Bitboard(line) << (8 * uint(r))
}

func gatherFile(occ board.Bitboard, f board.File) uint8 {
	return uint8((occ >> uint(f) & board.FileABB) * fileGather >> 56)
}

func scatterFile(line uint8, f board.File) board.Bitboard {
	diag := board.Bitboard(line) * byteSpread & board.DiagonalA1H8
	return (diag * hFileFold & board.FileHBB) >> (7 - uint(f))
}

func gatherDiagonal(occ, mask board.Bitboard) uint8 {
	return uint8((occ & mask) * byteSpread >> 56)
}

func scatterDiagonal(line uint8, mask board.Bitboard) board.Bitboard {
	return board.Bitboard(line) * byteSpread & mask
}

// diagonalMask and antiDiagonalMask return the full diagonal through sq (sq included).
func diagonalMask(sq board.Square) board.Bitboard {
	var mask board.Bitboard
	f, r := int(sq.File()), int(sq.Rank())
	for d := -7; d <= 7; d++ {
		if f+d >= 0 && f+d < 8 && r+d >= 0 && r+d < 8 {
			mask |= board.NewSquare(board.File(f+d), board.Rank(r+d)).Bitboard()
		}
	}
	return mask
}

func antiDiagonalMask(sq board.Square) board.Bitboard {
	var mask board.Bitboard
	f, r := int(sq.File()), int(sq.Rank())
	for d := -7; d <= 7; d++ {
		if f+d >= 0 && f+d < 8 && r-d >= 0 && r-d < 8 {
			mask |= board.NewSquare(board.File(f+d), board.Rank(r-d)).Bitboard()
		}
	}
	return mask
}

// initMasks fills the diagonal and anti-diagonal line masks of t.
func (t *Tables) initMasks() {
	for sq := board.A1; sq <= board.H8; sq++ {
		t.diagonal[sq] = diagonalMask(sq)
		t.antiDiagonal[sq] = antiDiagonalMask(sq)
	}
}
