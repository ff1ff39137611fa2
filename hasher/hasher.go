package hasher

import (
	I "github.com/xaionaro-go/chainmap/interfaces"
)

type Hasher = I.Hasher

// djb2Hasher is the default hasher: h = h*33 + c, seeded with 5381.
type djb2Hasher struct{}

func New() Hasher {
	return &djb2Hasher{}
}

func (h *djb2Hasher) HashString(key string) uint64 {
	return djb2String(key)
}
func (h *djb2Hasher) HashBytes(key []byte) uint64 {
	return djb2Bytes(key)
}
func (h *djb2Hasher) CompressHash(blockSize uint64, fullHash uint64) uint64 {
	return CompressHash(blockSize, fullHash)
}

type xxHasher struct{}

// NewXXHash returns a hasher based on xxhash64. It spreads short and
// similar keys better than djb2 at the cost of a few extra nanoseconds.
func NewXXHash() Hasher {
	return &xxHasher{}
}

func (h *xxHasher) HashString(key string) uint64 {
	return xxhashString(key)
}
func (h *xxHasher) HashBytes(key []byte) uint64 {
	return xxhashBytes(key)
}
func (h *xxHasher) CompressHash(blockSize uint64, fullHash uint64) uint64 {
	return CompressHash(blockSize, fullHash)
}
