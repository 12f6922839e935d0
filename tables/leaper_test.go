package tables

import (
	"testing"

	"chess-attacks/board"
)

func squares(sqs ...board.Square) board.Bitboard {
	var bb board.Bitboard
	for _, sq := range sqs {
		bb = bb.Set(sq)
	}
	return bb
}

func TestLeaperPopCounts(t *testing.T) {
	tbl := New()
	kingCounts := map[int]bool{3: true, 5: true, 8: true}
	knightCounts := map[int]bool{2: true, 3: true, 4: true, 6: true, 8: true}
	for sq := board.A1; sq <= board.H8; sq++ {
		if n := tbl.LeaperAttacks(board.King, board.White, sq).PopCount(); !kingCounts[n] {
			t.Errorf("king %v: %d squares", sq, n)
		}
		if n := tbl.LeaperAttacks(board.Knight, board.White, sq).PopCount(); !knightCounts[n] {
			t.Errorf("knight %v: %d squares", sq, n)
		}
	}
}

func TestLeaperAttacks(t *testing.T) {
	tbl := New()
	tests := []struct {
		name string
		kind board.PieceKind
		c    board.Color
		sq   board.Square
		want board.Bitboard
	}{
		{"king a1", board.King, board.White, board.A1, squares(board.B1, board.A2, board.B2)},
		{"king h8", board.King, board.Black, board.H8, squares(board.G8, board.G7, board.H7)},
		{"king a4", board.King, board.White, board.A4, squares(board.A3, board.B3, board.B4, board.A5, board.B5)},
		{"knight d4", board.Knight, board.White, board.D4, squares(board.B3, board.B5, board.C2, board.C6, board.E2, board.E6, board.F3, board.F5)},
		{"knight a1", board.Knight, board.Black, board.A1, squares(board.B3, board.C2)},
		{"knight h5", board.Knight, board.White, board.H5, squares(board.G3, board.F4, board.F6, board.G7)},
		{"knight g1", board.Knight, board.White, board.G1, squares(board.E2, board.F3, board.H3)},
		{"white pawn e4", board.Pawn, board.White, board.E4, squares(board.D5, board.F5)},
		{"white pawn a2", board.Pawn, board.White, board.A2, squares(board.B3)},
		{"white pawn h2", board.Pawn, board.White, board.H2, squares(board.G3)},
		{"white pawn h8", board.Pawn, board.White, board.H8, board.EmptyBB},
		{"black pawn e5", board.Pawn, board.Black, board.E5, squares(board.D4, board.F4)},
		{"black pawn a7", board.Pawn, board.Black, board.A7, squares(board.B6)},
		{"black pawn h1", board.Pawn, board.Black, board.H1, board.EmptyBB},
		{"rook is not a leaper", board.Rook, board.White, board.D4, board.EmptyBB},
		{"off board", board.King, board.White, board.NoSquare, board.EmptyBB},
	}
	for _, tt := range tests {
		if got := tbl.LeaperAttacks(tt.kind, tt.c, tt.sq); got != tt.want {
			t.Errorf("%s: got\n%swant\n%s", tt.name, got.Draw(), tt.want.Draw())
		}
	}
}

func TestPawnPushes(t *testing.T) {
	tbl := New()
	tests := []struct {
		c    board.Color
		sq   board.Square
		want board.Bitboard
	}{
		{board.White, board.E2, squares(board.E3, board.E4)},
		{board.White, board.E3, squares(board.E4)},
		{board.White, board.A7, squares(board.A8)},
		{board.White, board.A8, board.EmptyBB},
		{board.Black, board.D7, squares(board.D6, board.D5)},
		{board.Black, board.D2, squares(board.D1)},
		{board.Black, board.H1, board.EmptyBB},
	}
	for _, tt := range tests {
		if got := tbl.PawnPushes(tt.c, tt.sq); got != tt.want {
			t.Errorf("%v pawn %v: got %s want %s", tt.c, tt.sq, got, tt.want)
		}
	}
}

// No leaper move may cross the board edge: every target is within two files of the source.
func TestLeapersDoNotWrap(t *testing.T) {
	tbl := New()
	for sq := board.A1; sq <= board.H8; sq++ {
		all := tbl.king[sq] | tbl.knight[sq] |
			tbl.pawnCapture[board.White][sq] | tbl.pawnCapture[board.Black][sq]
		for _, to := range all.Squares() {
			df := int(to.File()) - int(sq.File())
			if df < -2 || df > 2 {
				t.Fatalf("%v -> %v wraps around the board", sq, to)
			}
		}
	}
}
