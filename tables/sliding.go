package tables

import "fmt"

// A sliding piece on one 8-square line is described by its position on the line (0-7) and
// the occupancy of the line as a byte. The same [8][256] table answers that question for
// every rank, file, diagonal and anti-diagonal; mapping.go moves bits between the board and
// the line.
//
// The rays are computed in uint8 on purpose: below = x-1 and above = ^x & ^(x-1) only
// describe "the bits below/above x on the line" when the arithmetic wraps at 8 bits.

// raysBelow returns the bits strictly below the single bit x.
func raysBelow(x uint8) uint8 { return x - 1 }

// raysAbove returns the bits strictly above the single bit x.
func raysAbove(x uint8) uint8 { return ^x & ^(x - 1) }

// lineAttacks computes the squares a slider at pos reaches on a line with the given
// occupancy. The nearest blocker on each side is included; nothing beyond it is.
func lineAttacks(pos uint8, occ uint8) uint8 {
	piece := uint8(1) << pos

	below := raysBelow(piece)
	if blockers := below & occ; blockers != 0 {
		nearest := uint8(1) << mustScan(BitscanReverse(blockers))
		below ^= raysBelow(nearest)
	}

	above := raysAbove(piece)
	if blockers := above & occ; blockers != 0 {
		nearest := uint8(1) << mustScan(BitscanForward(blockers))
		above ^= raysAbove(nearest)
	}

	attacks := below | above
	checkLineAttacks(pos, occ, attacks)
	return attacks
}

// checkLineAttacks panics if attacks is not exactly the blocker-inclusive ray pair of a
// slider at pos, walked square by square.
func checkLineAttacks(pos uint8, occ uint8, attacks uint8) {
	var want uint8
	for i := int(pos) - 1; i >= 0; i-- {
		want |= 1 << i
		if occ&(1<<i) != 0 {
			break
		}
	}
	for i := int(pos) + 1; i < 8; i++ {
		want |= 1 << i
		if occ&(1<<i) != 0 {
			break
		}
	}
	if attacks != want {
		panic(fmt.Sprintf("tables: line attacks for pos %d occ %08b: got %08b want %08b", pos, occ, attacks, want))
	}
}

// initLine fills the shared line table of t.
func (t *Tables) initLine() {
	for pos := 0; pos < 8; pos++ {
		for occ := 0; occ < 256; occ++ {
			t.line[pos][occ] = lineAttacks(uint8(pos), uint8(occ))
		}
	}
}
