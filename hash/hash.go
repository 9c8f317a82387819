// Package hash fingerprints encoded images so identical outputs are not rewritten.
package hash

import (
	"fmt"
	"io"
	"os"

	"github.com/spaolacci/murmur3"
)

// Digest is the murmur3 128 bit sum followed by the low 16 bits of the length
type Digest [18]byte

func (d Digest) String() string {
	return fmt.Sprintf("%x", d[:])
}

// Writer accumulates a Digest
type Writer struct {
	mm3 murmur3.Hash128
	n   int
}

// New ...
func New() *Writer {
	return &Writer{mm3: murmur3.New128()}
}

func (w *Writer) Write(b []byte) (n int, err error) {
	n, err = w.mm3.Write(b)
	w.n += n
	return
}

// Len is the number of bytes written so far
func (w *Writer) Len() int {
	return w.n
}

// Digest ...
func (w *Writer) Digest() Digest {
	h1, h2 := w.mm3.Sum128()
	return combine(h1, h2, w.n)
}

// Sum returns the Digest of data
func Sum(data []byte) Digest {
	h1, h2 := murmur3.Sum128(data)
	return combine(h1, h2, len(data))
}

// SumFile streams filename through a Writer
func SumFile(filename string) (Digest, error) {
	f, err := os.Open(filename)
	if err != nil {
		return Digest{}, err
	}
	defer f.Close()
	w := New()
	if _, err = io.Copy(w, f); err != nil {
		return Digest{}, err
	}
	return w.Digest(), nil
}

// SameAsFile reports whether filename exists and holds exactly data
func SameAsFile(filename string, data []byte) bool {
	fi, err := os.Stat(filename)
	if err != nil || !fi.Mode().IsRegular() || fi.Size() != int64(len(data)) {
		return false
	}
	d, err := SumFile(filename)
	if err != nil {
		return false
	}
	return d == Sum(data)
}

func combine(h1, h2 uint64, t int) (d Digest) {
	for i := 0; i < 8; i++ {
		d[i] = byte(h1 >> (56 - 8*i))
		d[8+i] = byte(h2 >> (56 - 8*i))
	}
	d[16], d[17] = byte(t>>8), byte(t)
	return
}
