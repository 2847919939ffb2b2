package rng

import (
	"encoding/binary"

	"github.com/lpc55go/hal/debug"
)

// Error is the error returned by Fill. No type implements it, so the only
// value of an Error is nil: filling a buffer always succeeds.
type Error interface {
	error
	uninhabited()
}

// Reader is implemented by random number generators that fill a buffer,
// blocking until enough random data is available.
type Reader interface {
	Fill(buf []byte) Error
}

// Fill fills buf with random bytes. Every word returned by Uint32 is copied in
// native byte order, only the first bytes of the last word are used if len(buf)
// isn't a multiple of four.
func (e Enabled) Fill(buf []byte) Error {
	debug.Assert(e.raw != nil, "rng: invalid handle")
	var word [4]byte
	for len(buf) > 0 {
		binary.NativeEndian.PutUint32(word[:], e.Uint32())
		n := copy(buf, word[:])
		buf = buf[n:]
	}
	return nil
}

// Read implements io.Reader. It always fills p completely.
func (e Enabled) Read(p []byte) (n int, err error) {
	e.Fill(p)
	return len(p), nil
}
