// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Key identifies a program by the content of its final shader sources.
type Key [16]byte

// programKey hashes the defines-augmented sources. The sources are
// length-prefixed so that moving text between them changes the key.
// Empty input hashes to the zero Key.
func programKey(vertSrc, fragSrc string) Key {
	var k Key
	if len(vertSrc) == 0 && len(fragSrc) == 0 {
		return k
	}
	h, err := blake2b.New(len(k), nil)
	if err != nil {
		panic(err)
	}
	var n [8]byte
	for _, src := range [...]string{vertSrc, fragSrc} {
		binary.LittleEndian.PutUint64(n[:], uint64(len(src)))
		h.Write(n[:])
		h.Write([]byte(src))
	}
	h.Sum(k[:0])
	return k
}

func (k Key) String() string {
	return hex.EncodeToString(k[:])
}
