// Package tables precomputes piece-attack lookup tables for bitboard move generation.
//
// Leapers (king, knight, pawn) get one 64-entry table per piece kind and color. Sliders
// share a single [8][256] table for one 8-square line; rank, file, diagonal and
// anti-diagonal queries map the board's occupancy onto that line and back.
//
// A *Tables value is built once by New or Precomputed and never modified afterwards, so it
// can be shared by any number of goroutines without locking.
package tables

import "chess-attacks/board"

// Tables is the immutable set of attack tables.
type Tables struct {
	king        [64]board.Bitboard
	knight      [64]board.Bitboard
	pawnQuiet   [2][64]board.Bitboard
	pawnCapture [2][64]board.Bitboard

	// line[pos][occ] holds the squares reached on an 8-square line.
	line [8][256]uint8

	// Line masks for the mapping layer, indexed by square.
	diagonal     [64]board.Bitboard
	antiDiagonal [64]board.Bitboard
}

// New computes every table. It panics if a table invariant is violated.
func New() *Tables {
	t := &Tables{}
	t.initMasks()
	t.initLeapers()
	t.initLine()
	return t
}

// LeaperAttacks returns the occupancy-independent attack set of a king, knight or pawn on
// sq. Color only matters for pawns, whose entry is the diagonal capture set. Sliders and
// off-board squares yield EmptyBB.
func (t *Tables) LeaperAttacks(kind board.PieceKind, c board.Color, sq board.Square) board.Bitboard {
	if !sq.Valid() {
		return board.EmptyBB
	}
	switch kind {
	case board.King:
		return t.king[sq]
	case board.Knight:
		return t.knight[sq]
	case board.Pawn:
		return t.pawnCapture[c&1][sq]
	default:
		return board.EmptyBB
	}
}

// PawnPushes returns the quiet pawn moves from sq: one step forward, plus two from the
// color's starting rank. Whether the path is clear is left to the caller.
func (t *Tables) PawnPushes(c board.Color, sq board.Square) board.Bitboard {
	if !sq.Valid() {
		return board.EmptyBB
	}
	return t.pawnQuiet[c&1][sq]
}

// SlidingAttacks returns the squares a rook, bishop or queen on sq attacks given the
// occupancy of the whole board. The first occupied square of each ray is included
// regardless of its color. Leapers and off-board squares yield EmptyBB.
func (t *Tables) SlidingAttacks(kind board.PieceKind, sq board.Square, occ board.Bitboard) board.Bitboard {
	if !sq.Valid() {
		return board.EmptyBB
	}
	switch kind {
	case board.Rook:
		return t.RankAttacks(sq, occ) | t.FileAttacks(sq, occ)
	case board.Bishop:
		return t.DiagonalAttacks(sq, occ) | t.AntiDiagonalAttacks(sq, occ)
	case board.Queen:
		return t.RankAttacks(sq, occ) | t.FileAttacks(sq, occ) |
			t.DiagonalAttacks(sq, occ) | t.AntiDiagonalAttacks(sq, occ)
	default:
		return board.EmptyBB
	}
}

// Attacks dispatches to LeaperAttacks or SlidingAttacks by piece kind.
func (t *Tables) Attacks(kind board.PieceKind, c board.Color, sq board.Square, occ board.Bitboard) board.Bitboard {
	if kind.IsSlider() {
		return t.SlidingAttacks(kind, sq, occ)
	}
	return t.LeaperAttacks(kind, c, sq)
}

// AttackedBy returns the squares holding pieces of color by that attack sq in the given
// position. The occupancy is only read.
func (t *Tables) AttackedBy(pieces *board.Occupancy, by board.Color, sq board.Square) board.Bitboard {
	if !sq.Valid() {
		return board.EmptyBB
	}
	occ := pieces.All()
	them := &pieces[by&1]
	rooks := them[board.Rook] | them[board.Queen]
	bishops := them[board.Bishop] | them[board.Queen]

	// A pawn of color by attacks sq exactly when a pawn of the other color on sq would
	// capture onto the pawn's square.
	attackers := t.pawnCapture[by.Other()&1][sq] & them[board.Pawn]
	attackers |= t.knight[sq] & them[board.Knight]
	attackers |= t.king[sq] & them[board.King]
	attackers |= t.SlidingAttacks(board.Rook, sq, occ) & rooks
	attackers |= t.SlidingAttacks(board.Bishop, sq, occ) & bishops
	return attackers
}

// RankAttacks returns the attacks of a rook on sq along its rank.
func (t *Tables) RankAttacks(sq board.Square, occ board.Bitboard) board.Bitboard {
	if !sq.Valid() {
		return board.EmptyBB
	}
	r := sq.Rank()
	return scatterRank(t.line[sq.File()][gatherRank(occ, r)], r)
}

// FileAttacks returns the attacks of a rook on sq along its file.
func (t *Tables) FileAttacks(sq board.Square, occ board.Bitboard) board.Bitboard {
	if !sq.Valid() {
		return board.EmptyBB
	}
	f := sq.File()
	return scatterFile(t.line[sq.Rank()][gatherFile(occ, f)], f)
}

// DiagonalAttacks returns the attacks of a bishop on sq along its a1-h8 direction diagonal.
func (t *Tables) DiagonalAttacks(sq board.Square, occ board.Bitboard) board.Bitboard {
	if !sq.Valid() {
		return board.EmptyBB
	}
	mask := t.diagonal[sq]
	return scatterDiagonal(t.line[sq.File()][gatherDiagonal(occ, mask)], mask)
}

// AntiDiagonalAttacks returns the attacks of a bishop on sq along its h1-a8 direction
// anti-diagonal.
func (t *Tables) AntiDiagonalAttacks(sq board.Square, occ board.Bitboard) board.Bitboard {
	if !sq.Valid() {
		return board.EmptyBB
	}
	mask := t.antiDiagonal[sq]
	return scatterDiagonal(t.line[sq.File()][gatherDiagonal(occ, mask)], mask)
}

// LineAttacks exposes the shared line table: the squares a slider at pos (0-7) reaches on
// an 8-square line with occupancy occ.
func (t *Tables) LineAttacks(pos uint8, occ uint8) uint8 { return t.line[pos&7][occ] }

// Copies of the raw tables, for emitting and inspection.

func (t *Tables) KingTable() [64]board.Bitboard           { return t.king }
func (t *Tables) KnightTable() [64]board.Bitboard         { return t.knight }
func (t *Tables) PawnQuietTable() [2][64]board.Bitboard   { return t.pawnQuiet }
func (t *Tables) PawnCaptureTable() [2][64]board.Bitboard { return t.pawnCapture }
func (t *Tables) LineTable() [8][256]uint8                { return t.line }
