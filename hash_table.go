package chainmap

import (
	"io"

	"github.com/xaionaro-go/chainmap/hasher"
	I "github.com/xaionaro-go/chainmap/interfaces"
)

type Key = I.Key
type Map = I.Map

var _ Map = (*HashTable)(nil)

// HashTable is a fixed-capacity hash table with separate chaining.
// It is not safe for concurrent use.
type HashTable struct {
	storage *storage
}

// New creates a HashTable with size buckets and the default (djb2) hasher.
func New(size uint64) (*HashTable, error) {
	return NewWithArgs(size, nil)
}

// NewWithArgs creates a HashTable with size buckets. The size never changes
// afterwards, so it should be chosen according to the expected amount of keys.
// If customHasher is nil then hasher.New() is used.
func NewWithArgs(size uint64, customHasher hasher.Hasher) (*HashTable, error) {
	stor, err := allocateStorage(size, customHasher)
	if err != nil {
		return nil, err
	}
	return &HashTable{storage: stor}, nil
}

func (m *HashTable) isDeleted() bool {
	return m.storage == nil
}

// Size returns the amount of buckets.
func (m *HashTable) Size() uint64 {
	return m.storage.size()
}

// Set adds the key or replaces the value of an existing one.
func (m *HashTable) Set(key Key, value string) error {
	if m.isDeleted() {
		return TableDeleted
	}
	if err := checkKey(key); err != nil {
		return err
	}
	m.set(key, value)
	return nil
}

// SetBytesByBytes is like Set, but both the key and the value are copied out
// of the passed slices.
func (m *HashTable) SetBytesByBytes(key, value []byte) error {
	if m.isDeleted() {
		return TableDeleted
	}
	if err := checkBytesArgs(key, value); err != nil {
		return err
	}
	m.set(string(key), string(value))
	return nil
}

func (m *HashTable) set(key, value string) {
	idx := m.storage.getIdx(key)
	if item := m.storage.find(idx, key); item != nil {
		item.value = value
		return
	}
	m.storage.insertFront(idx, newEntry(key, value))
}

func (m *HashTable) Get(key Key) (string, error) {
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

// GetByBytes returns a copy of the value; the caller may modify it freely.
func (m *HashTable) GetByBytes(key []byte) ([]byte, error) {
	value, err := m.Get(string(key))
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}

func (m *HashTable) Unset(key Key) error {
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
	item.release()
	return nil
}

func (m *HashTable) Len() int {
	if m.isDeleted() {
		return 0
	}
	return m.storage.count
}

// Range calls fn for every key/value pair in bucket order (and in chain
// order within a bucket) until fn returns false.
func (m *HashTable) Range(fn func(key Key, value string) bool) {
	m.forEach(func(item *entry) bool {
		return fn(item.key, item.value)
	})
}

func (m *HashTable) forEach(fn func(item *entry) bool) {
	if m.isDeleted() {
		return
	}
	m.storage.forEach(func(_ uint64, item *entry) bool {
		return fn(item)
	})
}

// Keys returns all keys in the order of Range.
func (m *HashTable) Keys() []Key {
	r := make([]Key, 0, m.Len())
	m.Range(func(key Key, _ string) bool {
		r = append(r, key)
		return true
	})
	return r
}

func (m *HashTable) ToSTDMap() map[Key]string {
	r := make(map[Key]string, m.Len())
	m.Range(func(key Key, value string) bool {
		r[key] = value
		return true
	})
	return r
}

// FromSTDMap sets every pair of stdMap. It stops on the first invalid key;
// the pairs set before it are kept.
func (m *HashTable) FromSTDMap(stdMap map[Key]string) error {
	for k, v := range stdMap {
		if err := m.Set(k, v); err != nil {
			return err
		}
	}
	return nil
}

// CheckConsistency verifies that every entry is in the bucket its key hashes
// to, that no key is stored twice and that the counter is correct.
func (m *HashTable) CheckConsistency() error {
	if m.isDeleted() {
		return TableDeleted
	}
	return m.storage.checkConsistency()
}

// String formats the table as {'key': 'value', ...} in Range order.
func (m *HashTable) String() string {
	return formatEntries(m.forEach)
}

// Print writes String() followed by a line feed to w.
func (m *HashTable) Print(w io.Writer) error {
	if m.isDeleted() {
		return TableDeleted
	}
	return printEntries(w, m.forEach)
}

// Delete releases all the entries and the buckets. Any following call on the
// table returns TableDeleted (or an empty result).
func (m *HashTable) Delete() {
	if m.isDeleted() {
		return
	}
	m.storage.release()
	m.storage = nil
}
