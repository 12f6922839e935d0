package tables

import (
	"fmt"

	"chess-attacks/board"
)

// pdep spreads the low bits of x over the squares of mask, lowest square first, giving
// the x-th subset of mask.
func pdep(x uint64, mask board.Bitboard) board.Bitboard {
	var subset board.Bitboard
	for bit := uint64(1); mask != 0; bit <<= 1 {
		var sq board.Square
		sq, mask, _ = mask.PopLSB()
		if x&bit != 0 {
			subset = subset.Set(sq)
		}
	}
	return subset
}

// jumpAttacks returns the squares reached from sq by the given (file, rank) offsets.
func jumpAttacks(sq board.Square, offsets [][2]int) board.Bitboard {
	var bb board.Bitboard
	f, r := int(sq.File()), int(sq.Rank())
	for _, off := range offsets {
		ff, rf := f+off[0], r+off[1]
		if ff >= 0 && ff < 8 && rf >= 0 && rf < 8 {
			bb |= board.NewSquare(board.File(ff), board.Rank(rf)).Bitboard()
		}
	}
	return bb
}

var (
	kingOffsets = [][2]int{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
	knightOffsets = [][2]int{
		{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
		{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
	}
	pawnCaptureOffsets = [2][][2]int{
		board.White: {{-1, 1}, {1, 1}},
		board.Black: {{-1, -1}, {1, -1}},
	}
)

// lineQuery is one of the four slider directions as seen by the mapping layer.
type lineQuery struct {
	name   string
	mask   func(t *Tables, sq board.Square) board.Bitboard
	lookup func(t *Tables, sq board.Square, occ board.Bitboard) board.Bitboard
	cast   func(sq board.Square, occ board.Bitboard) board.Bitboard
}

var lineQueries = []lineQuery{
	{
		name:   "rank",
		mask:   func(_ *Tables, sq board.Square) board.Bitboard { return board.RankMasks[sq.Rank()] },
		lookup: (*Tables).RankAttacks,
		cast: func(sq board.Square, occ board.Bitboard) board.Bitboard {
			return castRay(sq, rookDirections[2], occ) | castRay(sq, rookDirections[3], occ)
		},
	},
	{
		name:   "file",
		mask:   func(_ *Tables, sq board.Square) board.Bitboard { return board.FileMasks[sq.File()] },
		lookup: (*Tables).FileAttacks,
		cast: func(sq board.Square, occ board.Bitboard) board.Bitboard {
			return castRay(sq, rookDirections[0], occ) | castRay(sq, rookDirections[1], occ)
		},
	},
	{
		name:   "diagonal",
		mask:   func(t *Tables, sq board.Square) board.Bitboard { return t.diagonal[sq] },
		lookup: (*Tables).DiagonalAttacks,
		cast: func(sq board.Square, occ board.Bitboard) board.Bitboard {
			return castRay(sq, bishopDirections[0], occ) | castRay(sq, bishopDirections[3], occ)
		},
	},
	{
		name:   "anti-diagonal",
		mask:   func(t *Tables, sq board.Square) board.Bitboard { return t.antiDiagonal[sq] },
		lookup: (*Tables).AntiDiagonalAttacks,
		cast: func(sq board.Square, occ board.Bitboard) board.Bitboard {
			return castRay(sq, bishopDirections[1], occ) | castRay(sq, bishopDirections[2], occ)
		},
	},
}

// Verify checks every table in t against direct computation: leapers against offset
// walking, and each slider direction for every square and every occupancy of its line
// (with the rest of the board both empty and full) against ray casting.
func Verify(t *Tables) error {
	for sq := board.A1; sq <= board.H8; sq++ {
		if got, want := t.king[sq], jumpAttacks(sq, kingOffsets); got != want {
			return fmt.Errorf("king %v: got %s want %s", sq, got, want)
		}
		if got, want := t.knight[sq], jumpAttacks(sq, knightOffsets); got != want {
			return fmt.Errorf("knight %v: got %s want %s", sq, got, want)
		}
		for c := board.White; c <= board.Black; c++ {
			if got, want := t.pawnCapture[c][sq], jumpAttacks(sq, pawnCaptureOffsets[c]); got != want {
				return fmt.Errorf("%v pawn capture %v: got %s want %s", c, sq, got, want)
			}
		}
		if err := verifyPawnPushes(t, sq); err != nil {
			return err
		}
		for _, q := range lineQueries {
			if err := verifyLine(t, sq, q); err != nil {
				return err
			}
		}
	}
	return nil
}

func verifyPawnPushes(t *Tables, sq board.Square) error {
	var white, black board.Bitboard
	if r := sq.Rank(); r < board.Rank8 {
		white = (sq + 8).Bitboard()
		if r == board.Rank2 {
			white |= (sq + 16).Bitboard()
		}
	}
	if r := sq.Rank(); r > board.Rank1 {
		black = (sq - 8).Bitboard()
		if r == board.Rank7 {
			black |= (sq - 16).Bitboard()
		}
	}
	if t.pawnQuiet[board.White][sq] != white || t.pawnQuiet[board.Black][sq] != black {
		return fmt.Errorf("pawn pushes %v: got %s/%s want %s/%s",
			sq, t.pawnQuiet[board.White][sq], t.pawnQuiet[board.Black][sq], white, black)
	}
	return nil
}

func verifyLine(t *Tables, sq board.Square, q lineQuery) error {
	mask := q.mask(t, sq)
	n := mask.PopCount()
	for idx := uint64(0); idx < 1<<n; idx++ {
		occ := pdep(idx, mask)
		want := q.cast(sq, occ)
		for _, noisy := range []board.Bitboard{occ, occ | ^mask} {
			if got := q.lookup(t, sq, noisy); got != want {
				return fmt.Errorf("%s attacks %v occ %s: got %s want %s", q.name, sq, noisy, got, want)
			}
		}
	}
	return nil
}
