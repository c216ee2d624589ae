package sha3sum

import "hash"

// Sum computes the SHA3 digest of data for the given variant.
func Sum(v Variant, data []byte) ([]byte, error) {
	s, err := NewSponge(v)
	if err != nil {
		return nil, err
	}
	s.Absorb(data)
	out := make([]byte, s.size)
	s.Squeeze(out)
	return out, nil
}

// Sum224 computes the SHA3-224 digest of data.
func Sum224(data []byte) [28]byte {
	var out [28]byte
	sumInto(SHA3_224, data, out[:])
	return out
}

// Sum256 computes the SHA3-256 digest of data.
func Sum256(data []byte) [32]byte {
	var out [32]byte
	sumInto(SHA3_256, data, out[:])
	return out
}

// Sum384 computes the SHA3-384 digest of data.
func Sum384(data []byte) [48]byte {
	var out [48]byte
	sumInto(SHA3_384, data, out[:])
	return out
}

// Sum512 computes the SHA3-512 digest of data.
func Sum512(data []byte) [64]byte {
	var out [64]byte
	sumInto(SHA3_512, data, out[:])
	return out
}

func sumInto(v Variant, data, out []byte) {
	s, _ := NewSponge(v)
	s.Absorb(data)
	s.Squeeze(out)
}

// New returns a streaming hash.Hash for the given variant. It fails with an
// UnsupportedDigestSizeError if the variant is not one of the four fixed
// SHA3 sizes.
func New(v Variant) (hash.Hash, error) {
	s, err := NewSponge(v)
	if err != nil {
		return nil, err
	}
	return &digest{sponge: s}, nil
}

// New224 returns a streaming SHA3-224 hash.
func New224() hash.Hash { h, _ := New(SHA3_224); return h }

// New256 returns a streaming SHA3-256 hash.
func New256() hash.Hash { h, _ := New(SHA3_256); return h }

// New384 returns a streaming SHA3-384 hash.
func New384() hash.Hash { h, _ := New(SHA3_384); return h }

// New512 returns a streaming SHA3-512 hash.
func New512() hash.Hash { h, _ := New(SHA3_512); return h }

type digest struct {
	sponge *Sponge
}

func (d *digest) Write(p []byte) (n int, err error) {
	d.sponge.Absorb(p)
	return len(p), nil
}

// Sum squeezes a copy of the sponge, so the digest can keep absorbing and
// repeated Sum calls agree.
func (d *digest) Sum(b []byte) []byte {
	s := *d.sponge
	out := make([]byte, s.size)
	s.Squeeze(out)
	return append(b, out...)
}

func (d *digest) Reset() {
	d.sponge.Clear()
}

func (d *digest) Size() int {
	return d.sponge.size
}

func (d *digest) BlockSize() int {
	return d.sponge.rate
}

var _ hash.Hash = (*digest)(nil)
