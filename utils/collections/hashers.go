package collections

import (
	"encoding/binary"

	"github.com/spaolacci/murmur3"
	"golang.org/x/exp/constraints"
)

type HashFunc[V any] func(V) uint32

func StringHash(s string) uint32 {
	return murmur3.Sum32([]byte(s))
}

func BytesHash(b []byte) uint32 {
	return murmur3.Sum32(b)
}

// IntegerHash hashes the little endian 64-bit encoding of v.
func IntegerHash[T constraints.Integer](v T) uint32 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	return murmur3.Sum32(buf[:])
}
