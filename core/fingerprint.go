// SPDX-License-Identifier: MIT

package core

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Key material for the hyperedge fingerprint. seed1 seeds the digest, the
// rest are written as a fixed prefix, giving a 256-bit keyed state.
const (
	seed1 uint64 = 0x243F6A8885A308D3
	seed2 uint64 = 0x13198A2E03707344
	seed3 uint64 = 0xA4093822299F31D0
	seed4 uint64 = 0x082EFA98EC4E6C89
)

// Fingerprint maps an ordered node sequence to its EdgeID.
//
// The result is stable across processes for the same sequence. It hashes
// the sequence as given, so permutations of the same nodes produce
// different ids and are stored as different hyperedges. Collisions are
// possible in theory and are not detected.
//
// Complexity: O(len(nodes)).
func Fingerprint(nodes []Node) EdgeID {
	d := xxhash.NewWithSeed(seed1)

	var buf [8]byte
	for _, s := range [...]uint64{seed2, seed3, seed4} {
		binary.LittleEndian.PutUint64(buf[:], s)
		_, _ = d.Write(buf[:])
	}

	// length prefix keeps sequences unambiguous
	binary.LittleEndian.PutUint64(buf[:], uint64(len(nodes)))
	_, _ = d.Write(buf[:])

	for _, n := range nodes {
		binary.LittleEndian.PutUint64(buf[:], uint64(n))
		_, _ = d.Write(buf[:])
	}

	return EdgeID(d.Sum64())
}
