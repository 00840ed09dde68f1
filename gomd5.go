// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gomd5 implements the MD5 hash algorithm as defined in RFC 1321.
//
// MD5 is cryptographically broken; this package exists for checksums and
// content fingerprints, not for any security property.
package gomd5

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
)

// Size The size of an MD5 checksum in bytes.
const Size = 16

// BlockSize The blocksize of MD5 in bytes.
const BlockSize = 64

const (
	_Chunk = 64
	_Init0 = 0x67452301
	_Init1 = 0xEFCDAB89
	_Init2 = 0x98BADCFE
	_Init3 = 0x10325476
)

// ErrFinalized reports an Update or Finalize on an engine whose digest has
// already been produced. The engine and its digest are left intact.
var ErrFinalized = errors.New("gomd5: digest already finalized")

// Digest is the 16-byte MD5 checksum: the chaining words A,B,C,D each
// serialized little-endian, in that order.
type Digest [Size]byte

// Hex renders the digest as 32 lowercase hexadecimal characters, no
// separators, no prefix.
func (dg Digest) Hex() string {
	return hex.EncodeToString(dg[:])
}

// GoMd5 represents the partial evaluation of a checksum. An engine is open
// until Finalize runs, then terminal: further Update or Finalize calls fail
// with ErrFinalized. Reset returns it to the open state.
//
// A GoMd5 is not safe for concurrent use; it is owned by one ordered
// sequence of calls at a time.
type GoMd5 struct {
	s    [4]uint32
	x    [_Chunk]byte
	nx   int
	len  uint64
	sum  Digest
	done bool
}

// New returns a new open engine computing the MD5 checksum.
func New() *GoMd5 {
	d := new(GoMd5)
	d.Reset()
	return d
}

// Reset resets the engine to initial open state, discarding buffered input
// and any finalized digest.
func (d *GoMd5) Reset() {
	d.s[0] = _Init0
	d.s[1] = _Init1
	d.s[2] = _Init2
	d.s[3] = _Init3
	d.nx = 0
	d.len = 0
	d.sum = Digest{}
	d.done = false
}

// Size returns the size of the checksum in bytes.
func (d *GoMd5) Size() int { return Size }

// BlockSize returns the size of the block the engine consumes atomically.
func (d *GoMd5) BlockSize() int { return BlockSize }

// Update absorbs p into the running checksum. Input may be split across
// Update calls at any granularity; the digest depends only on the
// concatenated byte sequence. Fails with ErrFinalized once the digest has
// been produced.
func (d *GoMd5) Update(p []byte) error {
	if d.done {
		return ErrFinalized
	}
	d.len += uint64(len(p))
	if d.nx > 0 {
		n := copy(d.x[d.nx:], p)
		d.nx += n
		if d.nx == _Chunk {
			blocks(d, d.x[:])
			d.nx = 0
		}
		p = p[n:]
	}
	n := blocks(d, p)
	p = p[n:]
	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
	return nil
}

// Write is Update behind the io.Writer interface, so an open engine can sit
// on the receiving end of io.Copy.
func (d *GoMd5) Write(p []byte) (int, error) {
	if err := d.Update(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Finalize closes the engine: it appends the padding and bit-length suffix,
// runs the final block(s) through the compression function and returns the
// 16-byte digest. Exactly one call succeeds; later calls return the stored
// digest together with ErrFinalized.
func (d *GoMd5) Finalize() (Digest, error) {
	if d.done {
		return d.sum, ErrFinalized
	}

	d.Update(padding(d.len))
	if d.nx != 0 {
		panic("gomd5: bytes buffered after padding")
	}

	binary.LittleEndian.PutUint32(d.sum[0:], d.s[0])
	binary.LittleEndian.PutUint32(d.sum[4:], d.s[1])
	binary.LittleEndian.PutUint32(d.sum[8:], d.s[2])
	binary.LittleEndian.PutUint32(d.sum[12:], d.s[3])
	d.done = true
	return d.sum, nil
}

// Sum returns the finalized digest. ok is false while the engine is still
// open and the zero Digest is returned.
func (d *GoMd5) Sum() (dg Digest, ok bool) {
	return d.sum, d.done
}

// padding returns the bytes that close out a stream of n input bytes: one
// 0x80 marker, zeros until the total length is congruent to 56 mod 64, then
// the original length in bits as a little-endian uint64.
func padding(n uint64) []byte {
	// 1 byte end marker :: 0-63 zero bytes :: 8 byte length
	tmp := [1 + 63 + 8]byte{0x80}
	pad := (55 - n) % 64
	binary.LittleEndian.PutUint64(tmp[1+pad:], n<<3)
	return tmp[:1+pad+8]
}

// Hash returns the MD5 digest of data in one call. It is defined in terms
// of New, Update and Finalize so the one-shot and streaming paths cannot
// diverge.
func Hash(data []byte) Digest {
	d := New()
	d.Update(data)
	sum, _ := d.Finalize()
	return sum
}
