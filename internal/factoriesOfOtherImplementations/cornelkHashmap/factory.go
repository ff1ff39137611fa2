package cornelkHashmap

import (
	"github.com/cornelk/hashmap"

	"github.com/xaionaro-go/chainmap/errors"
	I "github.com/xaionaro-go/chainmap/interfaces"
)

func New() I.Map {
	return &hashmapWrapper{}
}
func NewWithArgs(blockSize uint64) I.Map {
	return New()
}

// hashmapWrapper counts the keys itself: hashmap.HashMap is lock-free and
// its Len() is only eventually correct.
type hashmapWrapper struct {
	hashmap.HashMap
	count int
}

func (m *hashmapWrapper) Get(key I.Key) (I.Value, error) {
	if key == "" {
		return "", errors.InvalidArgument
	}
	v, ok := m.HashMap.Get(key)
	if !ok {
		return "", errors.NotFound
	}
	return v.(I.Value), nil
}

func (m *hashmapWrapper) Set(key I.Key, value I.Value) error {
	if key == "" {
		return errors.InvalidArgument
	}
	if _, ok := m.HashMap.Get(key); !ok {
		m.count++
	}
	m.HashMap.Set(key, value)
	return nil
}
func (m *hashmapWrapper) Unset(key I.Key) error {
	if m.count == 0 {
		return errors.NotFound
	}
	if _, ok := m.HashMap.Get(key); !ok {
		return errors.NotFound
	}
	m.HashMap.Del(key)
	m.count--
	return nil
}
func (m *hashmapWrapper) Len() int {
	return m.count
}
func (m *hashmapWrapper) Keys() []I.Key {
	r := make([]I.Key, 0, m.count)
	if m.count == 0 {
		return r
	}
	for kv := range m.HashMap.Iter() {
		r = append(r, kv.Key.(I.Key))
	}
	return r
}
func (m *hashmapWrapper) ToSTDMap() map[I.Key]I.Value {
	r := make(map[I.Key]I.Value, m.count)
	if m.count == 0 {
		return r
	}
	for kv := range m.HashMap.Iter() {
		r[kv.Key.(I.Key)] = kv.Value.(I.Value)
	}
	return r
}
func (m *hashmapWrapper) FromSTDMap(in map[I.Key]I.Value) error {
	for k, v := range in {
		if err := m.Set(k, v); err != nil {
			return err
		}
	}
	return nil
}
