package tables_test

import (
	"testing"

	"chess-attacks/board"
	"chess-attacks/tables"
)

var attackTables = tables.Precomputed()

func attacked(pieces *board.Occupancy, sq board.Square, by board.Color) bool {
	return attackTables.AttackedBy(pieces, by, sq) != board.EmptyBB
}

func TestAttackedBy_RookFiles(t *testing.T) {
	var pieces board.Occupancy
	pieces.Place(board.E1, board.Piece{Color: board.White, Kind: board.King})
	pieces.Place(board.E8, board.Piece{Color: board.Black, Kind: board.Rook})
	if !attacked(&pieces, board.E1, board.Black) {
		t.Fatalf("expected e1 attacked by the rook on e8")
	}
	pieces.Place(board.E3, board.Piece{Color: board.White, Kind: board.Pawn})
	if attacked(&pieces, board.E1, board.Black) {
		t.Fatalf("did not expect e1 attacked after blocker on e3")
	}
	if !attacked(&pieces, board.E3, board.Black) {
		t.Fatalf("expected the blocker on e3 to be attacked")
	}
}

func TestAttackedBy_BishopDiagonals(t *testing.T) {
	var pieces board.Occupancy
	pieces.Place(board.E1, board.Piece{Color: board.White, Kind: board.King})
	pieces.Place(board.B4, board.Piece{Color: board.Black, Kind: board.Bishop})
	if !attacked(&pieces, board.E1, board.Black) {
		t.Fatalf("expected e1 attacked by the bishop on b4")
	}
	pieces.Place(board.D2, board.Piece{Color: board.White, Kind: board.Pawn})
	if attacked(&pieces, board.E1, board.Black) {
		t.Fatalf("did not expect e1 attacked after blocker on d2")
	}
}

func TestAttackedBy_PawnsKnightsKings(t *testing.T) {
	var pieces board.Occupancy
	pieces.Place(board.E1, board.Piece{Color: board.White, Kind: board.King})
	pieces.Place(board.E4, board.Piece{Color: board.White, Kind: board.Pawn})
	pieces.Place(board.D5, board.Piece{Color: board.Black, Kind: board.Pawn})
	if got := attackTables.AttackedBy(&pieces, board.Black, board.E4); got != board.D5.Bitboard() {
		t.Fatalf("attackers of e4: got %v, want [d5]", got.Squares())
	}
	if got := attackTables.AttackedBy(&pieces, board.White, board.D5); got != board.E4.Bitboard() {
		t.Fatalf("attackers of d5: got %v, want [e4]", got.Squares())
	}
	if attacked(&pieces, board.E4, board.White) {
		t.Fatalf("a pawn does not attack straight ahead")
	}

	pieces.Place(board.F3, board.Piece{Color: board.Black, Kind: board.Knight})
	if got := attackTables.AttackedBy(&pieces, board.Black, board.E1); got != board.F3.Bitboard() {
		t.Fatalf("attackers of e1: got %v, want [f3]", got.Squares())
	}
	pieces.Place(board.D2, board.Piece{Color: board.Black, Kind: board.King})
	if got := attackTables.AttackedBy(&pieces, board.Black, board.E1); got != board.F3.Bitboard()|board.D2.Bitboard() {
		t.Fatalf("attackers of e1: got %v, want [d2 f3]", got.Squares())
	}
}

func TestAttackedBy_QueenBothLines(t *testing.T) {
	var pieces board.Occupancy
	pieces.Place(board.D4, board.Piece{Color: board.White, Kind: board.Queen})
	for _, sq := range []board.Square{board.D8, board.A4, board.H8, board.A1, board.G1} {
		if !attacked(&pieces, sq, board.White) {
			t.Errorf("expected %v attacked by the queen on d4", sq)
		}
	}
	for _, sq := range []board.Square{board.E6, board.C2, board.D4} {
		if attacked(&pieces, sq, board.White) {
			t.Errorf("did not expect %v attacked by the queen on d4", sq)
		}
	}
}
