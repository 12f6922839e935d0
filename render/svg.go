package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"chess-attacks/board"
)

// DefaultSquareSize is the SVG square edge used when Options.SquareSize is zero.
const DefaultSquareSize = 45

const (
	lightFill  = "fill:#f0d9b5"
	darkFill   = "fill:#b58863"
	attackFill = "fill:#e4572e;fill-opacity:0.55"
	originFill = "fill:#3a86ff;fill-opacity:0.6"
	pieceStyle = "font-family:sans-serif;font-weight:bold;text-anchor:middle;dominant-baseline:central"
	labelStyle = "font-family:sans-serif;font-size:10px;fill:#555"
)

// errWriter keeps the first write error; svgo writes without reporting failures.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// SVG writes an SVG board to w with the attacked squares highlighted. It returns the first
// error reported by w.
func SVG(w io.Writer, attacks board.Bitboard, opts Options) error {
	size := opts.SquareSize
	if size <= 0 {
		size = DefaultSquareSize
	}
	margin := size / 2
	width := 8*size + margin

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(width, width)
	if opts.Title != "" {
		canvas.Title(opts.Title)
	}

	// Rank 8 is drawn at the top, after a margin on the left for the rank labels.
	corner := func(sq board.Square) (int, int) {
		return margin + int(sq.File())*size, int(board.Rank8-sq.Rank()) * size
	}

	canvas.Gid("squares")
	for sq := board.A1; sq <= board.H8; sq++ {
		x, y := corner(sq)
		fill := darkFill
		if (int(sq.File())+int(sq.Rank()))%2 == 1 {
			fill = lightFill
		}
		canvas.Rect(x, y, size, size, fill)
	}
	canvas.Gend()

	canvas.Gid("attacks")
	for _, sq := range attacks.Squares() {
		x, y := corner(sq)
		canvas.Rect(x, y, size, size, attackFill)
	}
	for _, sq := range opts.Origin.Squares() {
		x, y := corner(sq)
		canvas.Rect(x, y, size, size, originFill)
	}
	canvas.Gend()

	if opts.Pieces != nil {
		canvas.Gstyle(fmt.Sprintf("%s;font-size:%dpx", pieceStyle, size*2/3))
		for _, sq := range opts.Pieces.All().Squares() {
			p, _ := opts.Pieces.PieceAt(sq)
			x, y := corner(sq)
			fill := "fill:#fff;stroke:#000"
			if p.Color == board.Black {
				fill = "fill:#000"
			}
			canvas.Text(x+size/2, y+size/2, string(p.Char()), fill)
		}
		canvas.Gend()
	}

	canvas.Gstyle(labelStyle)
	for i := 0; i < 8; i++ {
		canvas.Text(margin/3, i*size+size/2, board.Rank(7-i).String())
		canvas.Text(margin+i*size+size/2, 8*size+margin*2/3, board.File(i).String())
	}
	canvas.Gend()

	canvas.End()
	return ew.err
}
