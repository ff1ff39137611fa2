package chainmap

import (
	"io"

	"github.com/pkg/errors"

	"github.com/xaionaro-go/chainmap/hasher"
)

var _ Map = (*SortedHashTable)(nil)

// SortedHashTable is a HashTable which additionally keeps all of its entries
// in a doubly-linked list ordered by key. Enumeration (Range, Keys, String,
// Print) follows that order instead of the bucket order.
//
// It is not safe for concurrent use.
type SortedHashTable struct {
	storage *storage
	index   sortedIndex
}

func NewSorted(size uint64) (*SortedHashTable, error) {
	return NewSortedWithArgs(size, nil)
}

// NewSortedWithArgs is the SortedHashTable counterpart of NewWithArgs.
func NewSortedWithArgs(size uint64, customHasher hasher.Hasher) (*SortedHashTable, error) {
	stor, err := allocateStorage(size, customHasher)
	if err != nil {
		return nil, err
	}
	return &SortedHashTable{storage: stor}, nil
}

func (m *SortedHashTable) isDeleted() bool {
	return m.storage == nil
}

func (m *SortedHashTable) Size() uint64 {
	return m.storage.size()
}

// Set adds the key or replaces the value of an existing one. Replacing a value
// doesn't move the entry.
func (m *SortedHashTable) Set(key Key, value string) error {
	if m.isDeleted() {
		return TableDeleted
	}
	if err := checkKey(key); err != nil {
		return err
	}
	m.set(key, value)
	return nil
}

func (m *SortedHashTable) SetBytesByBytes(key, value []byte) error {
	if m.isDeleted() {
		return TableDeleted
	}
	if err := checkBytesArgs(key, value); err != nil {
		return err
	}
	m.set(string(key), string(value))
	return nil
}

func (m *SortedHashTable) set(key, value string) {
	idx := m.storage.getIdx(key)
	if item := m.storage.find(idx, key); item != nil {
		item.value = value
		return
	}
	item := newEntry(key, value)
	m.storage.insertFront(idx, item)
	m.index.insert(item)
}

func (m *SortedHashTable) Get(key Key) (string, error) {
	if m.isDeleted() {
		return "", TableDeleted
	}
	if err := checkKey(key); err != nil {
		return "", err
	}
	item := m.storage.lookup(key)
	if item == nil {
		return "", NotFound
	}
	return item.value, nil
}

func (m *SortedHashTable) GetByBytes(key []byte) ([]byte, error) {
	value, err := m.Get(string(key))
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}

func (m *SortedHashTable) Unset(key Key) error {
	if m.isDeleted() {
		return TableDeleted
	}
	if err := checkKey(key); err != nil {
		return err
	}
	item := m.storage.remove(m.storage.getIdx(key), key)
	if item == nil {
		return NotFound
	}
	m.index.remove(item)
	item.release()
	return nil
}

func (m *SortedHashTable) Len() int {
	if m.isDeleted() {
		return 0
	}
	return m.storage.count
}

func (m *SortedHashTable) forEach(fn func(item *entry) bool) {
	if m.isDeleted() {
		return
	}
	m.index.forEach(fn)
}

func (m *SortedHashTable) forEachReverse(fn func(item *entry) bool) {
	if m.isDeleted() {
		return
	}
	m.index.forEachReverse(fn)
}

// Range calls fn for every pair in ascending key order until fn returns false.
func (m *SortedHashTable) Range(fn func(key Key, value string) bool) {
	m.forEach(func(item *entry) bool {
		return fn(item.key, item.value)
	})
}

// RangeReverse is Range in descending key order.
func (m *SortedHashTable) RangeReverse(fn func(key Key, value string) bool) {
	m.forEachReverse(func(item *entry) bool {
		return fn(item.key, item.value)
	})
}

// Keys returns all keys sorted in ascending order.
func (m *SortedHashTable) Keys() []Key {
	r := make([]Key, 0, m.Len())
	m.Range(func(key Key, _ string) bool {
		r = append(r, key)
		return true
	})
	return r
}

func (m *SortedHashTable) ToSTDMap() map[Key]string {
	r := make(map[Key]string, m.Len())
	m.Range(func(key Key, value string) bool {
		r[key] = value
		return true
	})
	return r
}

func (m *SortedHashTable) FromSTDMap(stdMap map[Key]string) error {
	for k, v := range stdMap {
		if err := m.Set(k, v); err != nil {
			return err
		}
	}
	return nil
}

// CheckConsistency checks the buckets (see HashTable.CheckConsistency) and
// also that the sorted list is strictly ascending, correctly double-linked
// and contains exactly the entries of the buckets.
func (m *SortedHashTable) CheckConsistency() (err error) {
	if m.isDeleted() {
		return TableDeleted
	}
	if err = m.storage.checkConsistency(); err != nil {
		return
	}

	count := 0
	var prev *entry
	m.index.forEach(func(item *entry) bool {
		count++
		if item.sprev != prev {
			err = errors.Errorf("key %q: a broken backward link", item.key)
			return false
		}
		if prev != nil && prev.key >= item.key {
			err = errors.Errorf("keys %q and %q are out of order", prev.key, item.key)
			return false
		}
		if m.storage.lookup(item.key) != item {
			err = errors.Errorf("key %q is not reachable via its bucket", item.key)
			return false
		}
		prev = item
		return true
	})
	if err != nil {
		return
	}

	if prev != m.index.tail {
		return errors.Errorf("the tail doesn't point to the last entry")
	}
	if count != m.storage.count {
		return errors.Errorf("count != m.storage.count: %v %v", count, m.storage.count)
	}
	return nil
}

// String formats the table as {'key': 'value', ...} in ascending key order.
func (m *SortedHashTable) String() string {
	return formatEntries(m.forEach)
}

// StringReverse is String in descending key order.
func (m *SortedHashTable) StringReverse() string {
	return formatEntries(m.forEachReverse)
}

func (m *SortedHashTable) Print(w io.Writer) error {
	if m.isDeleted() {
		return TableDeleted
	}
	return printEntries(w, m.forEach)
}

func (m *SortedHashTable) PrintReverse(w io.Writer) error {
	if m.isDeleted() {
		return TableDeleted
	}
	return printEntries(w, m.forEachReverse)
}

// Delete releases all the entries, the buckets and the sorted list. Any
// following call on the table returns TableDeleted (or an empty result).
func (m *SortedHashTable) Delete() {
	if m.isDeleted() {
		return
	}
	m.storage.release()
	m.index.release()
	m.storage = nil
}
