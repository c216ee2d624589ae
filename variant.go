package sha3sum

import (
	"fmt"
	"strconv"
)

// A Variant identifies one of the four fixed-output SHA3 digest sizes, by its
// output size in bits.
type Variant int

const (
	SHA3_224 Variant = 224
	SHA3_256 Variant = 256
	SHA3_384 Variant = 384
	SHA3_512 Variant = 512
)

// ParseVariant maps a digest size string ("224", "256", "384", or "512") to
// its Variant. Anything else returns an UnsupportedDigestSizeError.
func ParseVariant(s string) (Variant, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &UnsupportedDigestSizeError{Size: s}
	}
	v := Variant(n)
	if !v.valid() {
		return 0, &UnsupportedDigestSizeError{Size: s}
	}
	return v, nil
}

func (v Variant) valid() bool {
	switch v {
	case SHA3_224, SHA3_256, SHA3_384, SHA3_512:
		return true
	default:
		return false
	}
}

// Size returns the digest length in bytes.
func (v Variant) Size() int {
	return int(v) / 8
}

// Rate returns the sponge rate in bytes: the 1600-bit permutation width minus
// twice the output size, per FIPS 202.
func (v Variant) Rate() int {
	return (1600 - 2*int(v)) / 8
}

func (v Variant) String() string {
	return "SHA3-" + strconv.Itoa(int(v))
}

// An UnsupportedDigestSizeError reports a request for a digest size outside
// the four fixed SHA3 output sizes.
type UnsupportedDigestSizeError struct {
	Size string
}

func (e *UnsupportedDigestSizeError) Error() string {
	return fmt.Sprintf("sha3sum: unsupported digest size %q (want 224, 256, 384, or 512)", e.Size)
}
