package board

// Occupancy holds one bitboard per color and piece kind, indexed [Color][PieceKind].
// A square is set in at most one of the twelve bitboards.
type Occupancy [2][NumPieceKinds]Bitboard

// ByColor returns the occupancy bitboard for the given color.
func (o *Occupancy) ByColor(c Color) Bitboard {
	var all Bitboard
	for _, bb := range o[c] {
		all |= bb
	}
	return all
}

// All returns a bitboard of all occupied squares.
func (o *Occupancy) All() Bitboard { return o.ByColor(White) | o.ByColor(Black) }

// Piece returns the bitboard of one color's pieces of the given kind.
func (o *Occupancy) Piece(c Color, k PieceKind) Bitboard { return o[c][k] }

// Count returns how many pieces of the given color and kind are on the board.
func (o *Occupancy) Count(c Color, k PieceKind) int { return o[c][k].PopCount() }

// PieceAt returns the piece on a square, or false if the square is empty.
func (o *Occupancy) PieceAt(sq Square) (Piece, bool) {
	bit := sq.Bitboard()
	if bit == EmptyBB {
		return Piece{}, false
	}
	for c := White; c <= Black; c++ {
		for k := Pawn; k <= King; k++ {
			if o[c][k]&bit != 0 {
				return Piece{c, k}, true
			}
		}
	}
	return Piece{}, false
}

// Place puts a piece on a square, replacing whatever was there.
func (o *Occupancy) Place(sq Square, p Piece) {
	o.Remove(sq)
	o[p.Color][p.Kind] |= sq.Bitboard()
}

// Remove clears a square in every bitboard.
func (o *Occupancy) Remove(sq Square) {
	mask := ^sq.Bitboard()
	for c := range o {
		for k := range o[c] {
			o[c][k] &= mask
		}
	}
}

// Disjoint reports whether no square is claimed by two bitboards.
func (o *Occupancy) Disjoint() bool {
	var seen Bitboard
	for c := range o {
		for _, bb := range o[c] {
			if seen&bb != 0 {
				return false
			}
			seen |= bb
		}
	}
	return true
}
