package board_test

import (
	"errors"
	"fmt"
	"testing"

	"chess-attacks/board"

	"github.com/dylhunn/dragontoothmg"
	"github.com/notnil/chess"
)

var samplePositions = []struct {
	name string
	fen  string
	// [White|Black][Pawn..King]
	want board.Occupancy
}{
	{
		name: "start",
		fen:  board.StartFEN,
		want: board.Occupancy{
			{0xFF00, 0x42, 0x24, 0x81, 0x8, 0x10},
			{0xFF000000000000, 0x4200000000000000, 0x2400000000000000, 0x8100000000000000, 0x800000000000000, 0x1000000000000000},
		},
	},
	{
		name: "opening",
		fen:  "r1bqkbnr/pppp1ppp/2n5/4p3/3PP3/5N2/PPP2PPP/RNBQKB1R b KQkq d3 0 3",
		want: board.Occupancy{
			{0x1800e700, 0x200002, 0x24, 0x81, 0x8, 0x10},
			{0xef001000000000, 0x4000040000000000, 0x2400000000000000, 0x8100000000000000, 0x800000000000000, 0x1000000000000000},
		},
	},
	{
		name: "middlegame",
		fen:  "2k2r1r/p1pq1Rpp/1pnp4/4p1p1/2N1P3/3P2P1/PPPK3P/5Q2 w - - 2 21",
		want: board.Occupancy{
			{0x10488700, 0x4000000, 0, 0x20000000000000, 0x20, 0x800},
			{0xc50a5000000000, 0x40000000000, 0, 0xa000000000000000, 0x8000000000000, 0x400000000000000},
		},
	},
	{
		name: "endgame",
		fen:  "5k2/8/6B1/3K2B1/1q6/8/3Q4/8 w - - 1 43",
		want: board.Occupancy{
			{0, 0, 0x404000000000, 0, 0x800, 0x800000000},
			{0, 0, 0, 0, 0x2000000, 0x2000000000000000},
		},
	},
}

func TestDecodeFENSamples(t *testing.T) {
	for _, tt := range samplePositions {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := board.DecodeFEN(tt.fen)
			if err != nil {
				t.Fatalf("DecodeFEN: %v", err)
			}
			for c := board.White; c <= board.Black; c++ {
				for k := board.Pawn; k <= board.King; k++ {
					if got := pos.Pieces.Piece(c, k); got != tt.want[c][k] {
						t.Errorf("%v %v: got %s want %s", c, k, got, tt.want[c][k])
					}
				}
			}
			if !pos.Pieces.Disjoint() {
				t.Errorf("decoded bitboards overlap")
			}
		})
	}
}

func TestDecodeFENGameState(t *testing.T) {
	pos, err := board.DecodeFEN(samplePositions[1].fen)
	if err != nil {
		t.Fatalf("DecodeFEN: %v", err)
	}
	if pos.SideToMove != board.Black {
		t.Errorf("side to move: got %v", pos.SideToMove)
	}
	all := board.CastlingWhiteK | board.CastlingWhiteQ | board.CastlingBlackK | board.CastlingBlackQ
	if pos.Castling != all {
		t.Errorf("castling: got %04b", pos.Castling)
	}
	if pos.EnPassant != board.D3 {
		t.Errorf("en passant: got %v", pos.EnPassant)
	}
	if pos.HalfmoveClock != 0 || pos.FullmoveNumber != 3 {
		t.Errorf("move counters: got %d %d", pos.HalfmoveClock, pos.FullmoveNumber)
	}

	pos, err = board.DecodeFEN(samplePositions[2].fen)
	if err != nil {
		t.Fatalf("DecodeFEN: %v", err)
	}
	if pos.Castling != 0 || pos.EnPassant != board.NoSquare || pos.HalfmoveClock != 2 || pos.FullmoveNumber != 21 {
		t.Errorf("middlegame state: %+v", pos)
	}
}

func TestStartPositionCounts(t *testing.T) {
	pos := board.StartPosition()
	const startOccupancy = board.Rank1BB | board.Rank2BB | board.Rank7BB | board.Rank8BB
	if got := pos.Pieces.All(); got != startOccupancy {
		t.Fatalf("occupancy: got %s want %s", got, startOccupancy)
	}
	want := map[board.PieceKind]int{
		board.Pawn: 8, board.Knight: 2, board.Bishop: 2, board.Rook: 2, board.Queen: 1, board.King: 1,
	}
	for c := board.White; c <= board.Black; c++ {
		for k, n := range want {
			if got := pos.Pieces.Count(c, k); got != n {
				t.Errorf("%v %v: got %d want %d", c, k, got, n)
			}
		}
	}
	if p, ok := pos.Pieces.PieceAt(board.E1); !ok || p != (board.Piece{Color: board.White, Kind: board.King}) {
		t.Errorf("e1: got %+v %v", p, ok)
	}
	if p, ok := pos.Pieces.PieceAt(board.A8); !ok || p != (board.Piece{Color: board.Black, Kind: board.Rook}) {
		t.Errorf("a8: got %+v %v", p, ok)
	}
	if _, ok := pos.Pieces.PieceAt(board.E4); ok {
		t.Errorf("e4 should be empty")
	}
}

func TestDecodeFENErrors(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		check func(error) bool
	}{
		{"fields", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", func(err error) bool {
			var e *board.FieldCountError
			return errors.As(err, &e) && e.Fields == 1
		}},
		{"ranks", "rnbqkbnr/pppppppp/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", func(err error) bool {
			var e *board.RankCountError
			return errors.As(err, &e) && e.Ranks == 7
		}},
		{"piece", "rnbqkbnr/pppxpppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", func(err error) bool {
			var e *board.PieceCharError
			return errors.As(err, &e) && e.Char == 'x'
		}},
		{"square char", "rnbqkbnr/pppppppp/8/8/8/8/P+PPPPPP/RNBQKBNR w KQkq - 0 1", func(err error) bool {
			var e *board.SquareCharError
			return errors.As(err, &e) && e.Char == '+'
		}},
		{"square count", "rnbqkbnr/pppppppp/8/32/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", func(err error) bool {
			var e *board.SquareCountError
			return errors.As(err, &e) && e.Count == 61
		}},
		{"digit nine", "rnbqkbnr/pppppppp/9/7/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", func(err error) bool {
			var e *board.SquareCharError
			return errors.As(err, &e) && e.Char == '9'
		}},
		{"uneven ranks", "rnbqkbnr/pppppppp/8p/7/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", func(err error) bool {
			var e *board.RankWidthError
			return errors.As(err, &e) && e.Rank == board.Rank6 && e.Width == 9
		}},
		{"active color", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR Y KQkq - 0 1", func(err error) bool {
			var e *board.ActiveColorError
			return errors.As(err, &e) && e.Color == "Y"
		}},
		{"castling", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w Kjkq - 0 1", func(err error) bool {
			var e *board.CastlingError
			return errors.As(err, &e) && e.Rights == "Kjkq"
		}},
		{"en passant", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e4 0 1", func(err error) bool {
			var e *board.EnPassantError
			return errors.As(err, &e) && e.Square == "e4"
		}},
		{"halfmove", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - -1 1", func(err error) bool {
			var e *board.MoveCountError
			return errors.As(err, &e) && e.Field == "-1"
		}},
		{"fullmove", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 65575", func(err error) bool {
			var e *board.MoveCountError
			return errors.As(err, &e) && e.Field == "65575"
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := board.DecodeFEN(tt.fen)
			if err == nil {
				t.Fatalf("expected error, got position %+v", pos)
			}
			if !errors.Is(err, board.ErrInvalidFEN) {
				t.Errorf("error %v does not wrap ErrInvalidFEN", err)
			}
			if !tt.check(err) {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestSquareCountErrorMessage(t *testing.T) {
	_, err := board.DecodeFEN("rnbqkbnr/pppppppp/8/32/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err == nil || err.Error() != "invalid FEN: 61 squares, expected 64" {
		t.Fatalf("got %v", err)
	}
}

func TestFENRoundTrip(t *testing.T) {
	for _, tt := range samplePositions {
		pos, err := board.DecodeFEN(tt.fen)
		if err != nil {
			t.Fatalf("%s: DecodeFEN: %v", tt.name, err)
		}
		if got := pos.FEN(); got != tt.fen {
			t.Errorf("%s: FEN() = %q, want %q", tt.name, got, tt.fen)
		}
	}
}

// The decoded placement must agree with two independent decoders.
func TestDecodeFENMatchesReferenceDecoders(t *testing.T) {
	kinds := map[chess.PieceType]board.PieceKind{
		chess.Pawn: board.Pawn, chess.Knight: board.Knight, chess.Bishop: board.Bishop,
		chess.Rook: board.Rook, chess.Queen: board.Queen, chess.King: board.King,
	}
	for _, tt := range samplePositions {
		pos, err := board.DecodeFEN(tt.fen)
		if err != nil {
			t.Fatalf("%s: DecodeFEN: %v", tt.name, err)
		}

		opt, err := chess.FEN(tt.fen)
		if err != nil {
			t.Fatalf("%s: chess.FEN: %v", tt.name, err)
		}
		var fromNotnil board.Occupancy
		for sq, p := range chess.NewGame(opt).Position().Board().SquareMap() {
			c := board.White
			if p.Color() == chess.Black {
				c = board.Black
			}
			fromNotnil.Place(board.Square(sq), board.Piece{Color: c, Kind: kinds[p.Type()]})
		}
		if fromNotnil != pos.Pieces {
			t.Errorf("%s: notnil/chess decode differs", tt.name)
		}

		dt := dragontoothmg.ParseFen(tt.fen)
		for c, bbs := range []dragontoothmg.Bitboards{dt.White, dt.Black} {
			got := pos.Pieces.ByColor(board.Color(c))
			if uint64(got) != bbs.All {
				t.Errorf("%s: color %d occupancy %s, dragontoothmg %#x", tt.name, c, got, bbs.All)
			}
			want := [6]uint64{bbs.Pawns, bbs.Knights, bbs.Bishops, bbs.Rooks, bbs.Queens, bbs.Kings}
			for k := range want {
				if uint64(pos.Pieces[c][k]) != want[k] {
					t.Errorf("%s: color %d kind %d: got %s want %#x", tt.name, c, k, pos.Pieces[c][k], want[k])
				}
			}
		}
	}
}

func TestOccupancyPlaceRemove(t *testing.T) {
	var occ board.Occupancy
	occ.Place(board.E4, board.Piece{Color: board.White, Kind: board.Knight})
	occ.Place(board.E4, board.Piece{Color: board.Black, Kind: board.Queen})
	if !occ.Disjoint() || occ.All() != board.E4.Bitboard() {
		t.Fatalf("Place must replace the previous piece: %+v", occ)
	}
	if p, ok := occ.PieceAt(board.E4); !ok || p.Kind != board.Queen || p.Color != board.Black {
		t.Fatalf("PieceAt(e4) = %+v %v", p, ok)
	}
	occ.Remove(board.E4)
	if occ.All() != board.EmptyBB {
		t.Fatalf("Remove left %s", occ.All())
	}

	occ[board.White][board.Rook] = board.A1.Bitboard()
	occ[board.Black][board.Rook] = board.A1.Bitboard()
	if occ.Disjoint() {
		t.Fatalf("overlapping bitboards reported as disjoint")
	}
}

func ExamplePosition_FEN() {
	pos, _ := board.DecodeFEN("8/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	pos.Pieces.Place(board.E4, board.Piece{Color: board.Black, Kind: board.Pawn})
	fmt.Println(pos.FEN())
	// Output: 8/8/8/8/4p3/8/8/R3K2R w KQ - 0 1
}
