package board

import (
	"errors"
	"fmt"
)

// ErrInvalidFEN is wrapped by every error returned from DecodeFEN.
var ErrInvalidFEN = errors.New("invalid FEN")

// FieldCountError reports a FEN string without exactly six fields.
type FieldCountError struct{ Fields int }

func (e *FieldCountError) Error() string {
	return fmt.Sprintf("invalid FEN: %d fields, expected 6", e.Fields)
}

func (e *FieldCountError) Unwrap() error { return ErrInvalidFEN }

// RankCountError reports a piece placement without exactly eight ranks.
type RankCountError struct{ Ranks int }

func (e *RankCountError) Error() string {
	return fmt.Sprintf("invalid FEN: %d ranks, expected 8", e.Ranks)
}

func (e *RankCountError) Unwrap() error { return ErrInvalidFEN }

// PieceCharError reports a letter that names no piece.
type PieceCharError struct{ Char rune }

func (e *PieceCharError) Error() string {
	return fmt.Sprintf("invalid FEN: unrecognized piece %q", e.Char)
}

func (e *PieceCharError) Unwrap() error { return ErrInvalidFEN }

// SquareCharError reports a placement character that is neither a piece letter nor a digit 1-8.
type SquareCharError struct{ Char rune }

func (e *SquareCharError) Error() string {
	return fmt.Sprintf("invalid FEN: unrecognized square %q, expected a piece letter or a digit 1-8", e.Char)
}

func (e *SquareCharError) Unwrap() error { return ErrInvalidFEN }

// SquareCountError reports a piece placement that does not describe 64 squares.
type SquareCountError struct{ Count int }

func (e *SquareCountError) Error() string {
	return fmt.Sprintf("invalid FEN: %d squares, expected 64", e.Count)
}

func (e *SquareCountError) Unwrap() error { return ErrInvalidFEN }

// RankWidthError reports a rank that does not hold exactly eight files even though the
// placement as a whole has 64 squares.
type RankWidthError struct {
	Rank  Rank
	Width int
}

func (e *RankWidthError) Error() string {
	return fmt.Sprintf("invalid FEN: rank %s has %d files, expected 8", e.Rank, e.Width)
}

func (e *RankWidthError) Unwrap() error { return ErrInvalidFEN }

// ActiveColorError reports an active color other than "w" or "b".
type ActiveColorError struct{ Color string }

func (e *ActiveColorError) Error() string {
	return fmt.Sprintf("invalid FEN: active color %q, expected 'w' or 'b'", e.Color)
}

func (e *ActiveColorError) Unwrap() error { return ErrInvalidFEN }

// CastlingError reports castling rights other than "-" or a subset of "KQkq".
type CastlingError struct{ Rights string }

func (e *CastlingError) Error() string {
	return fmt.Sprintf("invalid FEN: castling rights %q, expected '-' or a combination of 'K', 'Q', 'k', 'q'", e.Rights)
}

func (e *CastlingError) Unwrap() error { return ErrInvalidFEN }

// EnPassantError reports an en passant field that is neither "-" nor a square on rank 3 or 6.
type EnPassantError struct{ Square string }

func (e *EnPassantError) Error() string {
	return fmt.Sprintf("invalid FEN: en passant square %q", e.Square)
}

func (e *EnPassantError) Unwrap() error { return ErrInvalidFEN }

// MoveCountError reports a halfmove or fullmove field that is not an unsigned 16-bit integer.
type MoveCountError struct{ Field string }

func (e *MoveCountError) Error() string {
	return fmt.Sprintf("invalid FEN: move count %q, expected unsigned 16-bit integer", e.Field)
}

func (e *MoveCountError) Unwrap() error { return ErrInvalidFEN }
