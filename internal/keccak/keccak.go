// Package keccak implements the Keccak-f[1600] permutation at the core of the
// SHA3 hash functions.
//
// The state is a 5x5 matrix of 64-bit lanes, stored as a flat [25]uint64 in
// row-major order (lane (x, y) lives at index 5y+x). Each of the 24 rounds is
// the composition of the five steps from FIPS 202: theta, rho, pi, chi, and
// iota. All five are straight-line bitwise arithmetic with no data-dependent
// branching.
package keccak

import "math/bits"

// rc holds the round constants XORed into lane (0, 0) by the iota step, one
// per round.
var rc = [24]uint64{
	0x0000000000000001,
	0x0000000000008082,
	0x800000000000808A,
	0x8000000080008000,
	0x000000000000808B,
	0x0000000080000001,
	0x8000000080008081,
	0x8000000000008009,
	0x000000000000008A,
	0x0000000000000088,
	0x0000000080008009,
	0x000000008000000A,
	0x000000008000808B,
	0x800000000000008B,
	0x8000000000008089,
	0x8000000000008003,
	0x8000000000008002,
	0x8000000000000080,
	0x000000000000800A,
	0x800000008000000A,
	0x8000000080008081,
	0x8000000000008080,
	0x0000000080000001,
	0x8000000080008008,
}

// rotc holds the per-lane rotation offsets for the rho step, indexed like the
// state itself.
var rotc = [25]int{
	0, 1, 62, 28, 27,
	36, 44, 6, 55, 20,
	3, 10, 43, 25, 39,
	41, 45, 15, 21, 8,
	18, 2, 61, 56, 14,
}

// lane maps (x, y) matrix coordinates to a flat state index.
func lane(x, y int) int {
	return 5*y + x
}

// F1600 applies the Keccak-f[1600] permutation to the state (24 rounds).
func F1600(a *[25]uint64) {
	for i := range rc {
		theta(a)
		rho(a)
		pi(a)
		chi(a)
		iota(a, i)
	}
}

// theta XORs each lane with the parities of two neighboring columns, one of
// them rotated by a single bit.
func theta(a *[25]uint64) {
	var c [5]uint64
	for x := 0; x < 5; x++ {
		c[x] = a[lane(x, 0)] ^ a[lane(x, 1)] ^ a[lane(x, 2)] ^ a[lane(x, 3)] ^ a[lane(x, 4)]
	}
	for x := 0; x < 5; x++ {
		d := c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
		for y := 0; y < 5; y++ {
			a[lane(x, y)] ^= d
		}
	}
}

// rho rotates each lane by its fixed offset.
func rho(a *[25]uint64) {
	for i, r := range rotc {
		a[i] = bits.RotateLeft64(a[i], r)
	}
}

// pi moves lane (x, y) to position (y, 2x+3y).
func pi(a *[25]uint64) {
	var b [25]uint64
	for x := 0; x < 5; x++ {
		for y := 0; y < 5; y++ {
			b[lane(y, (2*x+3*y)%5)] = a[lane(x, y)]
		}
	}
	*a = b
}

// chi combines each lane non-linearly with the two lanes after it in the same
// row. This is the permutation's only non-linear step.
func chi(a *[25]uint64) {
	var b [25]uint64
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			b[lane(x, y)] = a[lane(x, y)] ^ (^a[lane((x+1)%5, y)] & a[lane((x+2)%5, y)])
		}
	}
	*a = b
}

// iota XORs the round constant into lane (0, 0), breaking the symmetry
// between rounds.
func iota(a *[25]uint64, round int) {
	a[lane(0, 0)] ^= rc[round]
}
