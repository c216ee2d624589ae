// Command sha3sum prints SHA3 message digests of files, checksum style: one
// line of lowercase hex and the file name per input. With no file arguments
// (or "-") it hashes standard input.
package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/codahale/sha3sum"
)

func main() {
	mode := flag.StringP("mode", "m", "224", "digest size in bits (224, 256, 384, or 512)")
	flag.Parse()

	log := slog.New(slog.Default().Handler())
	if err := run(log, *mode, flag.Args(), os.Stdout, os.Stdin); err != nil {
		log.Error("sha3sum failed", "err", err)
		os.Exit(1)
	}
}

// run hashes each named file and writes one digest line per input. A file
// that cannot be hashed is logged and skipped; the remaining files are still
// processed, and the error returned afterwards maps to a non-zero exit.
func run(log *slog.Logger, mode string, paths []string, stdout io.Writer, stdin io.Reader) error {
	v, err := sha3sum.ParseVariant(mode)
	if err != nil {
		return err
	}

	if len(paths) == 0 {
		paths = []string{"-"}
	}

	var failed bool
	for _, path := range paths {
		sum, err := digestInput(v, path, stdin)
		if err != nil {
			log.Error("cannot hash input", "path", path, "err", err)
			failed = true
			continue
		}
		fmt.Fprintf(stdout, "%s  %s\n", hex.EncodeToString(sum), path)
	}
	if failed {
		return errors.New("one or more inputs could not be hashed")
	}
	return nil
}

// digestInput hashes one file (or stdin, for "-"). The input is streamed
// into the sponge; a read error discards the whole computation so a partial
// digest is never reported.
func digestInput(v sha3sum.Variant, path string, stdin io.Reader) ([]byte, error) {
	h, err := sha3sum.New(v)
	if err != nil {
		return nil, err
	}

	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer func() {
			_ = f.Close()
		}()
		r = f
	}

	if _, err := io.Copy(h, r); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return h.Sum(nil), nil
}
