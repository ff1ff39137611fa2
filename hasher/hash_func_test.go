package hasher

import (
	"testing"

	"github.com/stretchr/testify/require"

	benchmark "github.com/xaionaro-go/chainmap/internal/benchmarkRoutines"
)

func TestDJB2(t *testing.T) {
	h := New()
	require.Equal(t, uint64(5381), h.HashString(""))
	require.Equal(t, uint64(177670), h.HashString("a"))
	require.Equal(t, uint64(177671), h.HashString("b"))
	require.Equal(t, uint64(177670*33+98), h.HashString("ab"))
	require.Equal(t, h.HashString("hello, world"), h.HashBytes([]byte("hello, world")))
}

func TestDJB2Wraps(t *testing.T) {
	h := New()
	long := make([]byte, 1024)
	for i := range long {
		long[i] = 0xff
	}
	require.Equal(t, h.HashBytes(long), h.HashString(string(long)))
	require.Equal(t, h.HashBytes(long), h.HashBytes(long))
}

func TestXXHash(t *testing.T) {
	h := NewXXHash()
	require.Equal(t, h.HashString("some key"), h.HashBytes([]byte("some key")))
	require.NotEqual(t, h.HashString("a"), h.HashString("b"))
	require.NotEqual(t, New().HashString("some key"), h.HashString("some key"))
}

func TestKeyIndex(t *testing.T) {
	h := New()
	require.Equal(t, uint64(0), KeyIndex(h, "a", 5))
	require.Equal(t, uint64(1), KeyIndex(h, "b", 5))
	require.Equal(t, uint64(518), KeyIndex(h, "a", 1024))
	for _, key := range []string{"a", "hetairas", "mentioner", "heliotropes", "neurospora"} {
		require.Equal(t, uint64(0), KeyIndex(h, key, 1))
		require.Less(t, KeyIndex(NewXXHash(), key, 7), uint64(7))
	}
}

func TestHashCollisions_djb2_blockSize16_keyAmount16(t *testing.T) {
	benchmark.DoTestHashCollisions(t, New(), 16, 16)
}
func TestHashCollisions_djb2_blockSize1024_keyAmount380(t *testing.T) {
	benchmark.DoTestHashCollisions(t, New(), 1024, 380)
}
func TestHashCollisions_djb2_blockSize1024_keyAmount1024(t *testing.T) {
	benchmark.DoTestHashCollisions(t, New(), 1024, 1024)
}
func TestHashCollisions_djb2_blockSize65536_keyAmount4096(t *testing.T) {
	benchmark.DoTestHashCollisions(t, New(), 65536, 4096)
}

func TestHashCollisions_xxhash_blockSize16_keyAmount16(t *testing.T) {
	benchmark.DoTestHashCollisions(t, NewXXHash(), 16, 16)
}
func TestHashCollisions_xxhash_blockSize1024_keyAmount380(t *testing.T) {
	benchmark.DoTestHashCollisions(t, NewXXHash(), 1024, 380)
}
func TestHashCollisions_xxhash_blockSize1024_keyAmount1024(t *testing.T) {
	benchmark.DoTestHashCollisions(t, NewXXHash(), 1024, 1024)
}
func TestHashCollisions_xxhash_blockSize65536_keyAmount4096(t *testing.T) {
	benchmark.DoTestHashCollisions(t, NewXXHash(), 65536, 4096)
}

func BenchmarkHash_djb2_shortKey(b *testing.B) {
	h := New()
	for i := 0; i < b.N; i++ {
		h.HashString("key")
	}
}
func BenchmarkHash_djb2_longKey(b *testing.B) {
	h := New()
	for i := 0; i < b.N; i++ {
		h.HashString("a considerably longer key, to see how it scales")
	}
}
func BenchmarkHash_xxhash_shortKey(b *testing.B) {
	h := NewXXHash()
	for i := 0; i < b.N; i++ {
		h.HashString("key")
	}
}
func BenchmarkHash_xxhash_longKey(b *testing.B) {
	h := NewXXHash()
	for i := 0; i < b.N; i++ {
		h.HashString("a considerably longer key, to see how it scales")
	}
}
