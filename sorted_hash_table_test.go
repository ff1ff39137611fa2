package chainmap

import (
	"bytes"
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xaionaro-go/chainmap/hasher"
	I "github.com/xaionaro-go/chainmap/interfaces"
	benchmark "github.com/xaionaro-go/chainmap/internal/benchmarkRoutines"
	"github.com/xaionaro-go/chainmap/internal/factoriesOfOtherImplementations/builtinMap"
	"github.com/xaionaro-go/chainmap/internal/factoriesOfOtherImplementations/cornelkHashmap"
)

func newSortedHashTable(blockSize uint64) I.Map {
	m, err := NewSorted(blockSize)
	if err != nil {
		panic(err)
	}
	return m
}

func newSortedHashTableXXHash(blockSize uint64) I.Map {
	m, err := NewSortedWithArgs(blockSize, hasher.NewXXHash())
	if err != nil {
		panic(err)
	}
	return m
}

// parsePairs splits the output of String() back into pairs. It doesn't
// support keys or values containing quotes or ", ".
func parsePairs(t *testing.T, s string) [][2]string {
	require.True(t, strings.HasPrefix(s, "{"), s)
	require.True(t, strings.HasSuffix(s, "}"), s)
	s = s[1 : len(s)-1]
	if s == "" {
		return nil
	}

	var r [][2]string
	for _, pair := range strings.Split(s, ", ") {
		kv := strings.SplitN(pair, ": ", 2)
		require.Len(t, kv, 2, pair)
		r = append(r, [2]string{strings.Trim(kv[0], "'"), strings.Trim(kv[1], "'")})
	}
	return r
}

func TestSortedHashTable(t *testing.T) {
	benchmark.DoTest(t, newSortedHashTable, 1024*4)
}

func TestSortedHashTable_xxhash(t *testing.T) {
	benchmark.DoTest(t, newSortedHashTableXXHash, 1024*4)
}

func TestSortedHashTableAgainstReference(t *testing.T) {
	for _, blockSize := range []uint64{1, 16, 1024} {
		benchmark.DoTestAgainstReference(t, newSortedHashTable, builtinMap.NewWithArgs, blockSize, 10000)
		benchmark.DoTestAgainstReference(t, newSortedHashTableXXHash, cornelkHashmap.NewWithArgs, blockSize, 10000)
	}
}

func TestNewSortedInvalidSize(t *testing.T) {
	_, err := NewSorted(0)
	require.ErrorIs(t, err, InvalidArgument)

	_, err = NewSortedWithArgs(maximalSize+1, nil)
	require.ErrorIs(t, err, AllocationFailure)
}

func TestSortedHashTableScenario(t *testing.T) {
	m, err := NewSorted(5)
	require.NoError(t, err)

	require.NoError(t, m.Set("a", "1"))
	require.NoError(t, m.Set("b", "2"))
	require.NoError(t, m.Set("a", "9"))

	v, err := m.Get("a")
	require.NoError(t, err)
	require.Equal(t, "9", v)
	v, err = m.Get("b")
	require.NoError(t, err)
	require.Equal(t, "2", v)
	_, err = m.Get("c")
	require.ErrorIs(t, err, NotFound)

	var buf bytes.Buffer
	require.NoError(t, m.Print(&buf))
	require.NoError(t, m.PrintReverse(&buf))
	require.Equal(t, "{'a': '9', 'b': '2'}\n{'b': '2', 'a': '9'}\n", buf.String())
	require.NoError(t, m.CheckConsistency())
}

func TestSortedHashTableEmpty(t *testing.T) {
	m, err := NewSorted(3)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, m.Print(&buf))
	require.NoError(t, m.PrintReverse(&buf))
	require.Equal(t, "{}\n{}\n", buf.String())
	require.Empty(t, m.Keys())
	require.NoError(t, m.CheckConsistency())
}

func TestSortedHashTableOrder(t *testing.T) {
	m, err := NewSorted(4)
	require.NoError(t, err)

	// new head, new tail, middle, and a key sharing a prefix
	for _, key := range []string{"mango", "apple", "zucchini", "kiwi", "app", "banana"} {
		require.NoError(t, m.Set(key, strings.ToUpper(key)))
		require.NoError(t, m.CheckConsistency())
	}

	require.Equal(t, []string{"app", "apple", "banana", "kiwi", "mango", "zucchini"}, m.Keys())
	require.Equal(t,
		"{'zucchini': 'ZUCCHINI', 'mango': 'MANGO', 'kiwi': 'KIWI', 'banana': 'BANANA', 'apple': 'APPLE', 'app': 'APP'}",
		m.StringReverse(),
	)

	// updating doesn't move anything
	require.NoError(t, m.Set("banana", "yellow"))
	require.Equal(t, []string{"app", "apple", "banana", "kiwi", "mango", "zucchini"}, m.Keys())
	v, err := m.Get("banana")
	require.NoError(t, err)
	require.Equal(t, "yellow", v)
}

func TestSortedHashTableRoundTrip(t *testing.T) {
	for _, blockSize := range []uint64{1, 13, 1024} {
		m, err := NewSorted(blockSize)
		require.NoError(t, err)

		rng := rand.New(rand.NewSource(int64(blockSize)))
		expected := map[string]string{}
		for i := 0; i < 2000; i++ {
			key := strconv.FormatInt(rng.Int63n(1000), 36)
			value := strconv.Itoa(i)
			require.NoError(t, m.Set(key, value))
			expected[key] = value
		}
		require.Equal(t, len(expected), m.Len())

		forward := parsePairs(t, m.String())
		reverse := parsePairs(t, m.StringReverse())
		require.Len(t, forward, len(expected))
		require.Len(t, reverse, len(expected))

		require.True(t, sort.SliceIsSorted(forward, func(i, j int) bool {
			return forward[i][0] < forward[j][0]
		}))
		for i := range forward {
			require.Equal(t, forward[i], reverse[len(reverse)-1-i])
			require.Equal(t, expected[forward[i][0]], forward[i][1])
		}
		require.NoError(t, m.CheckConsistency())
	}
}

func TestSortedHashTableRangeReverse(t *testing.T) {
	m, err := NewSorted(2)
	require.NoError(t, err)
	require.NoError(t, m.FromSTDMap(map[string]string{"c": "3", "a": "1", "b": "2"}))

	var keys []string
	m.RangeReverse(func(key Key, _ string) bool {
		keys = append(keys, key)
		return true
	})
	require.Equal(t, []string{"c", "b", "a"}, keys)

	keys = keys[:0]
	m.RangeReverse(func(key Key, _ string) bool {
		keys = append(keys, key)
		return len(keys) < 2
	})
	require.Equal(t, []string{"c", "b"}, keys)
	require.Equal(t, map[string]string{"a": "1", "b": "2", "c": "3"}, m.ToSTDMap())
}

func TestSortedHashTableUnset(t *testing.T) {
	m, err := NewSortedWithArgs(4, constHasher{})
	require.NoError(t, err)
	for _, key := range []string{"d", "b", "a", "c", "e"} {
		require.NoError(t, m.Set(key, key))
	}

	for _, tc := range []struct {
		key      string
		expected []string
	}{
		{"c", []string{"a", "b", "d", "e"}},
		{"a", []string{"b", "d", "e"}},
		{"e", []string{"b", "d"}},
		{"b", []string{"d"}},
		{"d", []string{}},
	} {
		require.NoError(t, m.Unset(tc.key))
		require.ErrorIs(t, m.Unset(tc.key), NotFound)
		require.Equal(t, tc.expected, m.Keys())
		require.NoError(t, m.CheckConsistency())
	}
	require.Equal(t, "{}", m.StringReverse())

	require.NoError(t, m.Set("z", "1"))
	require.Equal(t, "{'z': '1'}", m.String())
}

func TestSortedHashTableBytes(t *testing.T) {
	m, err := NewSorted(8)
	require.NoError(t, err)

	require.ErrorIs(t, m.SetBytesByBytes(nil, []byte("v")), InvalidArgument)
	require.ErrorIs(t, m.SetBytesByBytes([]byte("k"), nil), InvalidArgument)
	require.ErrorIs(t, m.Set("", "v"), InvalidArgument)

	key := []byte("k")
	require.NoError(t, m.SetBytesByBytes(key, []byte("v")))
	key[0] = 'x'
	v, err := m.GetByBytes([]byte("k"))
	require.NoError(t, err)
	require.Equal(t, []byte("v"), v)
	require.Equal(t, []string{"k"}, m.Keys())
}

func TestSortedHashTableDelete(t *testing.T) {
	m, err := NewSorted(5)
	require.NoError(t, err)
	require.NoError(t, m.Set("a", "1"))
	require.NoError(t, m.Set("b", "2"))

	m.Delete()
	require.ErrorIs(t, m.Set("a", "1"), TableDeleted)
	_, err = m.Get("a")
	require.ErrorIs(t, err, TableDeleted)
	_, err = m.GetByBytes([]byte("a"))
	require.ErrorIs(t, err, TableDeleted)
	require.ErrorIs(t, m.PrintReverse(&bytes.Buffer{}), TableDeleted)
	require.Equal(t, "{}", m.StringReverse())
	require.Equal(t, 0, m.Len())
	m.Delete()

	fresh, err := NewSorted(5)
	require.NoError(t, err)
	require.Equal(t, "{}", fresh.String())
	_, err = fresh.Get("b")
	require.ErrorIs(t, err, NotFound)
}
