// Package render draws attack sets on a chess board, as a text diagram or as SVG.
package render

import (
	"strings"

	"chess-attacks/board"
)

// Options controls what is drawn besides the attack set.
type Options struct {
	// Origin marks the square of the attacking piece; the zero value marks none.
	Origin board.Bitboard
	// Pieces, when set, are drawn on their squares.
	Pieces *board.Occupancy
	// Title is written above the SVG board. Ignored by Diagram.
	Title string
	// SquareSize is the SVG square edge in pixels. Zero means DefaultSquareSize.
	SquareSize int
}

// Diagram returns an 8x8 text board, rank 8 on top. Pieces are shown by their FEN letter,
// the origin square by '*' when empty, attacked empty squares by 'x' and the rest by '.'.
func Diagram(attacks board.Bitboard, opts Options) string {
	var sb strings.Builder
	for r := board.Rank8; r >= board.Rank1; r-- {
		sb.WriteString(r.String())
		for f := board.FileA; f <= board.FileH; f++ {
			sb.WriteByte(' ')
			sb.WriteByte(squareChar(board.NewSquare(f, r), attacks, opts))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

func squareChar(sq board.Square, attacks board.Bitboard, opts Options) byte {
	if opts.Pieces != nil {
		if p, ok := opts.Pieces.PieceAt(sq); ok {
			return p.Char()
		}
	}
	switch {
	case opts.Origin.Occupied(sq):
		return '*'
	case attacks.Occupied(sq):
		return 'x'
	default:
		return '.'
	}
}
