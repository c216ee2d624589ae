// Package sha3sum computes SHA3 message digests (FIPS 202, fixed-output
// sizes 224 through 512) with the Keccak sponge construction: input is XORed
// into the first rate bytes of a 1600-bit state, the state is permuted with
// Keccak-f[1600] after each full block, and the digest is read back out of
// the same rate region.
package sha3sum

import (
	"encoding/binary"
	"strconv"

	"github.com/codahale/sha3sum/internal/keccak"
)

// dsbyte carries the SHA3 domain separation bits ("01", distinguishing the
// fixed-output functions from SHAKE) plus the first bit of the pad10*1
// padding, packed in little-endian bit order.
const dsbyte = 0x06

// maxRate is the largest sponge rate in bytes; SHA3-224 has the shortest
// capacity and therefore the largest rate.
const maxRate = 144

// A Sponge is a single in-progress SHA3 computation. It owns a 1600-bit
// Keccak state, absorbed at the variant's rate and squeezed for its output
// length. The zero state is not usable; call NewSponge.
//
// A Sponge moves through two phases: absorbing, then squeezing. The first
// Squeeze call pads and closes the absorb phase; absorbing after that is a
// programming error and panics.
type Sponge struct {
	state [25]uint64
	block [maxRate]byte // partial input block, or squeezed output block
	idx   int           // bytes of block filled (absorbing) or consumed (squeezing)
	rate  int
	size  int
	sqz   bool
}

// NewSponge returns a fresh all-zero sponge for the given variant. It fails
// with an UnsupportedDigestSizeError before any state is set up if the
// variant is not one of the four fixed SHA3 sizes.
func NewSponge(v Variant) (*Sponge, error) {
	if !v.valid() {
		return nil, &UnsupportedDigestSizeError{Size: strconv.Itoa(int(v))}
	}
	return &Sponge{rate: v.Rate(), size: v.Size()}, nil
}

// Size returns the digest length in bytes.
func (s *Sponge) Size() int {
	return s.size
}

// Rate returns the sponge rate in bytes.
func (s *Sponge) Rate() int {
	return s.rate
}

// Absorb updates the sponge's state with the given data, running the
// permutation as each rate-sized block fills. The capacity portion of the
// state is never touched.
//
// Multiple Absorb calls are effectively the same thing as a single Absorb
// call with concatenated inputs.
func (s *Sponge) Absorb(b []byte) {
	if s.sqz {
		panic("sha3sum: absorb after squeeze")
	}

	// Top up a buffered partial block first.
	if s.idx > 0 {
		n := copy(s.block[s.idx:s.rate], b)
		s.idx += n
		b = b[n:]
		if s.idx == s.rate {
			s.xorIn(s.block[:s.rate])
			keccak.F1600(&s.state)
			s.idx = 0
		}
	}

	for len(b) >= s.rate {
		s.xorIn(b[:s.rate])
		keccak.F1600(&s.state)
		b = b[s.rate:]
	}

	if len(b) > 0 {
		s.idx = copy(s.block[:], b)
	}
}

// Squeeze fills out with digest output, permuting between rate-sized blocks
// as the state is exhausted. The first call closes the absorb phase by
// applying the pad10*1 padding. All four fixed variants fit in a single
// block, but the general multi-block mechanism is kept so oversized reads
// stay correct.
//
// Multiple Squeeze calls are effectively the same thing as a single Squeeze
// call with concatenated outputs.
func (s *Sponge) Squeeze(out []byte) {
	if !s.sqz {
		s.pad()
	}

	for len(out) > 0 {
		if s.idx == s.rate {
			keccak.F1600(&s.state)
			s.copyRate()
		}
		n := copy(out, s.block[s.idx:s.rate])
		s.idx += n
		out = out[n:]
	}
}

// pad closes the absorb phase: the domain separation suffix goes after the
// buffered input, zeros fill the rest of the block, and the final pad bit is
// set in the block's last byte. When the suffix lands on the last byte the
// two pad bits share it (0x86); when the input ends on a block boundary the
// whole pad occupies a fresh block.
func (s *Sponge) pad() {
	s.block[s.idx] = dsbyte
	for i := s.idx + 1; i < s.rate; i++ {
		s.block[i] = 0
	}
	s.block[s.rate-1] |= 0x80
	s.xorIn(s.block[:s.rate])
	keccak.F1600(&s.state)
	s.copyRate()
	s.sqz = true
}

// Clear zeros the sponge's state and returns it to the absorbing phase.
func (s *Sponge) Clear() {
	clear(s.state[:])
	clear(s.block[:])
	s.idx = 0
	s.sqz = false
}

// xorIn XORs a whole number of little-endian 64-bit lanes into the front of
// the state. len(b) is always a multiple of 8: every SHA3 rate is.
func (s *Sponge) xorIn(b []byte) {
	for i := 0; i < len(b); i += 8 {
		s.state[i/8] ^= binary.LittleEndian.Uint64(b[i:])
	}
}

// copyRate serializes the rate portion of the state into the block buffer
// for squeezing.
func (s *Sponge) copyRate() {
	for i := 0; i < s.rate/8; i++ {
		binary.LittleEndian.PutUint64(s.block[8*i:], s.state[i])
	}
	s.idx = 0
}
