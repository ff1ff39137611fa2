package chainmap

import (
	"github.com/pkg/errors"

	"github.com/xaionaro-go/chainmap/hasher"
)

const (
	maximalSize = 1 << 32
)

// storage is the bucket store: a fixed-size array of singly-linked chains.
type storage struct {
	hasher hasher.Hasher
	items  []*entry
	count  int
}

func newStorage(size uint64, hasher hasher.Hasher) *storage {
	stor := &storage{
		hasher: hasher,
		items:  make([]*entry, size),
	}

	return stor
}

func (stor *storage) size() uint64 {
	if stor == nil {
		return 0
	}
	return uint64(len(stor.items))
}

func (stor *storage) getIdx(key string) uint64 {
	return stor.hasher.CompressHash(stor.size(), stor.hasher.HashString(key))
}

func (stor *storage) getItem(idx uint64) *entry {
	return stor.items[idx]
}

func (stor *storage) find(idx uint64, key string) *entry {
	for item := stor.getItem(idx); item != nil; item = item.next {
		if item.key == key {
			return item
		}
	}
	return nil
}

func (stor *storage) insertFront(idx uint64, item *entry) {
	item.next = stor.items[idx]
	stor.items[idx] = item
	stor.count++
}

// remove unlinks the entry with the given key from its chain and returns it
// (or nil if there's no such key).
func (stor *storage) remove(idx uint64, key string) *entry {
	var prev *entry
	for item := stor.getItem(idx); item != nil; item = item.next {
		if item.key != key {
			prev = item
			continue
		}
		if prev == nil {
			stor.items[idx] = item.next
		} else {
			prev.next = item.next
		}
		item.next = nil
		stor.count--
		return item
	}
	return nil
}

// forEach walks the buckets in array order and every chain from its head.
// It stops as soon as fn returns false.
func (stor *storage) forEach(fn func(idx uint64, item *entry) bool) {
	for idx := uint64(0); idx < stor.size(); idx++ {
		for item := stor.getItem(idx); item != nil; item = item.next {
			if !fn(idx, item) {
				return
			}
		}
	}
}

func (stor *storage) release() {
	for idx := range stor.items {
		item := stor.items[idx]
		for item != nil {
			next := item.next
			item.release()
			item = next
		}
		stor.items[idx] = nil
	}
	stor.items = nil
	stor.count = 0
}

func allocateStorage(size uint64, customHasher hasher.Hasher) (*storage, error) {
	if size == 0 {
		return nil, errors.Wrap(InvalidArgument, "the size should be a positive number")
	}
	if size > maximalSize {
		return nil, errors.Wrapf(AllocationFailure, "the size %d exceeds the maximal size %d", size, uint64(maximalSize))
	}
	if customHasher == nil {
		customHasher = hasher.New()
	}
	return newStorage(size, customHasher), nil
}

func (stor *storage) lookup(key string) *entry {
	return stor.find(stor.getIdx(key), key)
}

func (stor *storage) checkConsistency() (err error) {
	count := 0
	seen := map[string]uint64{}
	stor.forEach(func(idx uint64, item *entry) bool {
		count++
		if item.key == "" {
			err = errors.Errorf("an entry with an empty key in bucket %v", idx)
			return false
		}
		if expectedIdx := stor.getIdx(item.key); expectedIdx != idx {
			err = errors.Errorf("key %q is in bucket %v, but expected in bucket %v", item.key, idx, expectedIdx)
			return false
		}
		if prevIdx, ok := seen[item.key]; ok {
			err = errors.Errorf("key %q is duplicated: buckets %v and %v", item.key, prevIdx, idx)
			return false
		}
		seen[item.key] = idx
		return true
	})
	if err != nil {
		return
	}

	if count != stor.count {
		return errors.Errorf("count != stor.count: %v %v", count, stor.count)
	}
	return nil
}

func checkKey(key string) error {
	if key == "" {
		return errors.Wrap(InvalidArgument, "the key is empty")
	}
	return nil
}

func checkBytesArgs(key, value []byte) error {
	if key == nil {
		return errors.Wrap(InvalidArgument, "the key is nil")
	}
	if value == nil {
		return errors.Wrap(InvalidArgument, "the value is nil")
	}
	if len(key) == 0 {
		return errors.Wrap(InvalidArgument, "the key is empty")
	}
	return nil
}
