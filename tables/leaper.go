package tables

import "chess-attacks/board"

// Leaper tables are built with shifts on a single-square bitboard. Every shift that moves a
// piece west or east first masks the source against the files it would wrap from, so a move
// off the a- or h-file vanishes instead of reappearing on the opposite edge. North/south
// overflow falls off the ends of the 64-bit word on its own.

func kingAttacks(sq board.Square) board.Bitboard {
	bb := sq.Bitboard()

	n := bb << 8
	s := bb >> 8

	west := bb & board.NotAFile
	nw := west << 7
	w := west >> 1
	sw := west >> 9

	east := bb & board.NotHFile
	ne := east << 9
	e := east << 1
	se := east >> 7

	return n | s | nw | w | sw | ne | e | se
}

func knightAttacks(sq board.Square) board.Bitboard {
	bb := sq.Bitboard()

	// One file west or east, two ranks north or south.
	w1 := bb & board.NotAFile
	e1 := bb & board.NotHFile
	// Two files west or east, one rank north or south.
	w2 := bb & board.NotABFile
	e2 := bb & board.NotGHFile

	return w1<<15 | w1>>17 |
		e1<<17 | e1>>15 |
		w2<<6 | w2>>10 |
		e2<<10 | e2>>6
}

// pawnPushes returns the single push and, from the pawn's starting rank, the double push.
// Blockers are the move generator's business.
func pawnPushes(sq board.Square, c board.Color) board.Bitboard {
	bb := sq.Bitboard()
	if c == board.White {
		return bb<<8 | (bb&board.Rank2BB)<<16
	}
	return bb>>8 | (bb&board.Rank7BB)>>16
}

func pawnCaptures(sq board.Square, c board.Color) board.Bitboard {
	bb := sq.Bitboard()
	west := bb & board.NotAFile
	east := bb & board.NotHFile
	if c == board.White {
		return west<<7 | east<<9
	}
	return west>>9 | east>>7
}

// initLeapers fills the king, knight and pawn tables of t.
func (t *Tables) initLeapers() {
	for sq := board.A1; sq <= board.H8; sq++ {
		t.king[sq] = kingAttacks(sq)
		t.knight[sq] = knightAttacks(sq)
		for c := board.White; c <= board.Black; c++ {
			t.pawnQuiet[c][sq] = pawnPushes(sq, c)
			t.pawnCapture[c][sq] = pawnCaptures(sq, c)
		}
	}
}
