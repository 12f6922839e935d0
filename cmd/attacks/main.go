// Command attacks prints the attack set of a piece in a FEN position and can cross-check
// the sliding tables against dragontoothmg's magic bitboards.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"time"

	"chess-attacks/board"
	"chess-attacks/render"
	"chess-attacks/tables"
)

func main() {
	fen := flag.String("fen", board.StartFEN, "FEN string (defaults to initial position)")
	square := flag.String("square", "", "Square of the attacking piece, e.g. e4")
	piece := flag.String("piece", "", "Piece letter to place on -square instead of the one there (upper-case for White)")
	svgOut := flag.String("svg", "", "Write an SVG diagram to this file")
	samples := flag.Int("verify", 0, "Cross-check N random occupancies per square against dragontoothmg")
	workers := flag.Int("workers", runtime.NumCPU(), "Concurrent squares during -verify")
	seed := flag.Int64("seed", 1, "Random seed for -verify")
	flag.Parse()

	tbl := tables.Precomputed()

	if *samples > 0 {
		if *workers <= 0 {
			fmt.Fprintln(os.Stderr, "-workers must be > 0")
			os.Exit(2)
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		start := time.Now()
		err := verify(ctx, tbl.SlidingAttacks, *samples, *workers, *seed)
		stop()
		if err != nil {
			fmt.Fprintf(os.Stderr, "verify: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("verified %d occupancies on 64 squares in %s\n", *samples, time.Since(start))
		if *square == "" {
			return
		}
	}

	if *square == "" {
		fmt.Fprintln(os.Stderr, "-square is required")
		os.Exit(2)
	}
	sq, err := board.ParseSquare(*square)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}
	pos, err := board.DecodeFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "DecodeFEN error: %v\n", err)
		os.Exit(2)
	}

	p, err := attacker(pos, sq, *piece)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}
	pos.Pieces.Place(sq, p)

	attacks := tbl.Attacks(p.Kind, p.Color, sq, pos.Pieces.All())
	opts := render.Options{Origin: sq.Bitboard(), Pieces: &pos.Pieces, Title: fmt.Sprintf("%v %v on %v", p.Color, p.Kind, sq)}

	fmt.Printf("%s: %d squares\n", opts.Title, attacks.PopCount())
	fmt.Print(render.Diagram(attacks, opts))
	if p.Kind == board.Pawn {
		fmt.Printf("pushes:   %v\n", tbl.PawnPushes(p.Color, sq).Squares())
	}
	fmt.Printf("attacks:  %v\n", attacks.Squares())
	fmt.Printf("captures: %v\n", (attacks & pos.Pieces.ByColor(p.Color.Other())).Squares())
	for _, c := range []board.Color{board.White, board.Black} {
		fmt.Printf("%v attackers of %v: %v\n", c, sq, tbl.AttackedBy(&pos.Pieces, c, sq).Squares())
	}

	if *svgOut != "" {
		if err := writeSVG(*svgOut, attacks, opts); err != nil {
			fmt.Fprintf(os.Stderr, "svg: %v\n", err)
			os.Exit(1)
		}
	}
}

// attacker returns the piece whose attacks are shown: the one named by a FEN letter, or
// else the one standing on sq.
func attacker(pos *board.Position, sq board.Square, letter string) (board.Piece, error) {
	if letter == "" {
		p, ok := pos.Pieces.PieceAt(sq)
		if !ok {
			return board.Piece{}, fmt.Errorf("no piece on %v; use -piece", sq)
		}
		return p, nil
	}
	kind, ok := board.ParsePieceKind(letter)
	if !ok {
		return board.Piece{}, fmt.Errorf("unknown piece %q", letter)
	}
	c := board.Black
	if letter[0] >= 'A' && letter[0] <= 'Z' {
		c = board.White
	}
	return board.Piece{Color: c, Kind: kind}, nil
}

func writeSVG(path string, attacks board.Bitboard, opts render.Options) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.SVG(f, attacks, opts); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
