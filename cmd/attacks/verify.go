package main

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/sync/errgroup"

	"chess-attacks/board"
)

// slidingFunc is the signature of (*tables.Tables).SlidingAttacks.
type slidingFunc func(kind board.PieceKind, sq board.Square, occ board.Bitboard) board.Bitboard

// mismatchError reports a slider attack set that disagrees with dragontoothmg.
type mismatchError struct {
	Kind      board.PieceKind
	Square    board.Square
	Occupancy board.Bitboard
	Got, Want board.Bitboard
}

func (e *mismatchError) Error() string {
	return fmt.Sprintf("%v on %v with occupancy %s: got %s, dragontoothmg %s",
		e.Kind, e.Square, e.Occupancy, e.Got, e.Want)
}

// verify compares sliding rook and bishop attacks with dragontoothmg for samples random
// occupancies on each square. Squares are checked by up to workers goroutines; the first
// mismatch cancels the rest.
func verify(ctx context.Context, sliding slidingFunc, samples, workers int, seed int64) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for sq := board.A1; sq <= board.H8; sq++ {
		sq := sq
		g.Go(func() error {
			rng := rand.New(rand.NewSource(seed + int64(sq)))
			for i := 0; i < samples; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				// Two ANDed words give sparse boards, where long rays show up.
				occ := board.Bitboard(rng.Uint64() & rng.Uint64())
				oracle := [...]struct {
					kind board.PieceKind
					want uint64
				}{
					{board.Rook, dragontoothmg.CalculateRookMoveBitboard(uint8(sq), uint64(occ))},
					{board.Bishop, dragontoothmg.CalculateBishopMoveBitboard(uint8(sq), uint64(occ))},
				}
				for _, o := range oracle {
					if got := sliding(o.kind, sq, occ); got != board.Bitboard(o.want) {
						return &mismatchError{o.kind, sq, occ, got, board.Bitboard(o.want)}
					}
				}
			}
			return nil
		})
	}
	return g.Wait()
}
