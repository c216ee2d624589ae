package sha3sum_test

import (
	"fmt"
	"io"

	"github.com/codahale/sha3sum"
)

func ExampleSum256() {
	sum := sha3sum.Sum256([]byte("abc"))
	fmt.Printf("%x\n", sum)

	// Output:
	// 3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532
}

func ExampleNew() {
	h, err := sha3sum.New(sha3sum.SHA3_256)
	if err != nil {
		panic(err)
	}
	_, _ = io.WriteString(h, "ab")
	_, _ = io.WriteString(h, "c")

	fmt.Printf("%x\n", h.Sum(nil))

	// Output:
	// 3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532
}
