package sha3sum_test

import (
	"bytes"
	"testing"

	fuzz "github.com/trailofbits/go-fuzz-utils"

	"github.com/codahale/sha3sum"
)

// FuzzSumOracle cross-checks digests against x/crypto/sha3 on arbitrary
// inputs, hashed both in one shot and in arbitrary-sized chunks.
func FuzzSumOracle(f *testing.F) {
	f.Add([]byte("yellow submarine"))
	f.Add(bytes.Repeat([]byte{0xa5}, 300))

	f.Fuzz(func(t *testing.T, data []byte) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip(err)
		}

		pick, err := tp.GetByte()
		if err != nil {
			t.Skip(err)
		}
		v := variants[int(pick)%len(variants)]

		input, err := tp.GetBytes()
		if err != nil {
			t.Skip(err)
		}

		chunk, err := tp.GetByte()
		if err != nil {
			t.Skip(err)
		}
		step := int(chunk)%97 + 1

		got, err := sha3sum.Sum(v, input)
		if err != nil {
			t.Fatal(err)
		}

		h := oracle(v)
		h.Write(input)
		if want := h.Sum(nil); !bytes.Equal(got, want) {
			t.Errorf("Sum(%v, %x) = %x, want = %x", v, input, got, want)
		}

		stream, err := sha3sum.New(v)
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < len(input); i += step {
			stream.Write(input[i:min(i+step, len(input))])
		}
		if chunked := stream.Sum(nil); !bytes.Equal(chunked, got) {
			t.Errorf("chunked Sum(%v, %x) = %x, want = %x", v, input, chunked, got)
		}
	})
}
