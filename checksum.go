package gomd5

import (
	"io"
	"os"
)

// SumReader reads r to EOF in bounded chunks, feeding each chunk to the
// engine in order, and returns the digest of the whole stream. Memory use
// stays constant regardless of stream size. Read errors are returned as-is;
// the engine never observes them.
func SumReader(r io.Reader) (Digest, error) {
	d := New()
	if _, err := io.Copy(d, r); err != nil {
		return Digest{}, err
	}
	sum, _ := d.Finalize()
	return sum, nil
}

// SumFile returns the digest of the named file's contents.
func SumFile(path string) (Digest, error) {
	f, err := os.Open(path)
	if err != nil {
		return Digest{}, err
	}
	defer f.Close()
	return SumReader(f)
}
