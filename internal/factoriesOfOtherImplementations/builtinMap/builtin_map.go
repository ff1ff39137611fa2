package builtinMap

import (
	"github.com/xaionaro-go/spinlock"

	"github.com/xaionaro-go/chainmap/errors"
	I "github.com/xaionaro-go/chainmap/interfaces"
)

func NewWithArgs(blockSize uint64) I.Map {
	return &builtinMap{
		m: make(map[I.Key]I.Value, blockSize),
	}
}

type builtinMap struct {
	locker spinlock.Locker

	m map[I.Key]I.Value
}

func (m *builtinMap) Set(key I.Key, value I.Value) error {
	if key == "" {
		return errors.InvalidArgument
	}
	m.locker.Lock()
	m.m[key] = value
	m.locker.Unlock()
	return nil
}
func (m *builtinMap) Get(key I.Key) (I.Value, error) {
	if key == "" {
		return "", errors.InvalidArgument
	}
	m.locker.Lock()
	value, ok := m.m[key]
	m.locker.Unlock()
	if !ok {
		return "", errors.NotFound
	}
	return value, nil
}
func (m *builtinMap) Unset(key I.Key) error {
	m.locker.Lock()
	defer m.locker.Unlock()
	if _, ok := m.m[key]; !ok {
		return errors.NotFound
	}
	delete(m.m, key)
	return nil
}
func (m *builtinMap) FromSTDMap(in map[I.Key]I.Value) error {
	for k, v := range in {
		if err := m.Set(k, v); err != nil {
			return err
		}
	}
	return nil
}
func (m *builtinMap) ToSTDMap() map[I.Key]I.Value {
	m.locker.Lock()
	defer m.locker.Unlock()
	r := make(map[I.Key]I.Value, len(m.m))
	for k, v := range m.m {
		r[k] = v
	}
	return r
}
func (m *builtinMap) Keys() []I.Key {
	m.locker.Lock()
	defer m.locker.Unlock()
	r := make([]I.Key, 0, len(m.m))
	for k := range m.m {
		r = append(r, k)
	}
	return r
}
func (m *builtinMap) Len() int {
	m.locker.Lock()
	defer m.locker.Unlock()
	return len(m.m)
}
