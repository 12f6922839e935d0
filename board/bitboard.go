package board

import (
	"fmt"
	"math/bits"
	"strings"
)

// Bitboard is a set of squares, one bit per square (bit 0 = a1, bit 63 = h8).
type Bitboard uint64

const (
	EmptyBB Bitboard = 0
	FullBB  Bitboard = ^EmptyBB

	// Files (LSB = Rank 1)
	FileABB Bitboard = 0x0101010101010101
	FileBBB Bitboard = FileABB << 1
	FileCBB Bitboard = FileABB << 2
	FileDBB Bitboard = FileABB << 3
	FileEBB Bitboard = FileABB << 4
	FileFBB Bitboard = FileABB << 5
	FileGBB Bitboard = FileABB << 6
	FileHBB Bitboard = FileABB << 7

	// Ranks (LSB = File A)
	Rank1BB Bitboard = 0xFF
	Rank2BB Bitboard = Rank1BB << (8 * 1)
	Rank3BB Bitboard = Rank1BB << (8 * 2)
	Rank4BB Bitboard = Rank1BB << (8 * 3)
	Rank5BB Bitboard = Rank1BB << (8 * 4)
	Rank6BB Bitboard = Rank1BB << (8 * 5)
	Rank7BB Bitboard = Rank1BB << (8 * 6)
	Rank8BB Bitboard = Rank1BB << (8 * 7)

	// Edge masks. A westward shift must be guarded with NotAFile (or NotABFile for
	// two files), an eastward shift with NotHFile (NotGHFile).
	NotAFile  Bitboard = ^FileABB
	NotHFile  Bitboard = ^FileHBB
	NotABFile Bitboard = ^(FileABB | FileBBB)
	NotGHFile Bitboard = ^(FileGBB | FileHBB)

	// Long diagonals.
	DiagonalA1H8     Bitboard = 0x8040201008040201
	AntiDiagonalH1A8 Bitboard = 0x0102040810204080
)

// FileMasks and RankMasks index the file and rank bitboards by File and Rank.
var (
	FileMasks = [8]Bitboard{FileABB, FileBBB, FileCBB, FileDBB, FileEBB, FileFBB, FileGBB, FileHBB}
	RankMasks = [8]Bitboard{Rank1BB, Rank2BB, Rank3BB, Rank4BB, Rank5BB, Rank6BB, Rank7BB, Rank8BB}
)

// Set returns b with sq added.
func (b Bitboard) Set(sq Square) Bitboard { return b | sq.Bitboard() }

// Clear returns b with sq removed.
func (b Bitboard) Clear(sq Square) Bitboard { return b &^ sq.Bitboard() }

// Occupied reports whether sq is in b.
func (b Bitboard) Occupied(sq Square) bool { return b&sq.Bitboard() != 0 }

// PopCount counts the number of set bits.
func (b Bitboard) PopCount() int { return bits.OnesCount64(uint64(b)) }

// PopLSB finds and removes the least significant bit. Returns (square, new bitboard, true)
// or (NoSquare, original bitboard, false) for an empty bitboard.
func (b Bitboard) PopLSB() (Square, Bitboard, bool) {
	if b == 0 {
		return NoSquare, b, false
	}
	sq := Square(bits.TrailingZeros64(uint64(b)))
	return sq, b & (b - 1), true
}

// Squares returns the squares in b ordered from a1 to h8.
func (b Bitboard) Squares() []Square {
	out := make([]Square, 0, b.PopCount())
	for b != 0 {
		var sq Square
		sq, b, _ = b.PopLSB()
		out = append(out, sq)
	}
	return out
}

// String returns the bitboard as a 0x-prefixed 16 digit hex literal.
func (b Bitboard) String() string { return fmt.Sprintf("0x%016x", uint64(b)) }

// Draw returns an 8x8 diagram of b, rank 8 on top, '1' for set squares.
func (b Bitboard) Draw() string {
	var sb strings.Builder
	for r := Rank8; r >= Rank1; r-- {
		sb.WriteString(r.String())
		sb.WriteByte(' ')
		for f := FileA; f <= FileH; f++ {
			if b.Occupied(NewSquare(f, r)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('.')
			}
			if f != FileH {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
