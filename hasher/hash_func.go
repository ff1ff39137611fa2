package hasher

import (
	"github.com/OneOfOne/xxhash"
)

const (
	djb2Seed       = uint64(5381)
	djb2Multiplier = 33
)

func djb2String(in string) uint64 {
	h := djb2Seed
	for i := 0; i < len(in); i++ {
		h = h*djb2Multiplier + uint64(in[i])
	}
	return h
}

func djb2Bytes(in []byte) uint64 {
	h := djb2Seed
	for _, c := range in {
		h = h*djb2Multiplier + uint64(c)
	}
	return h
}

func xxhashString(in string) uint64 {
	return xxhash.ChecksumString64(in)
}

func xxhashBytes(in []byte) uint64 {
	return xxhash.Checksum64(in)
}

// CompressHash reduces a full hash value to a bucket index in [0, blockSize).
func CompressHash(blockSize uint64, fullHash uint64) uint64 {
	return fullHash % blockSize
}

// KeyIndex returns the bucket index of the key in a table of blockSize buckets.
func KeyIndex(h Hasher, key string, blockSize uint64) uint64 {
	return h.CompressHash(blockSize, h.HashString(key))
}
