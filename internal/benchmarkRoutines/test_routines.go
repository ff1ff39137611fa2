package benchmarkRoutines

import (
	"fmt"
	"math/rand"
	"reflect"
	"sort"
	"strconv"
	"testing"

	"github.com/pkg/errors"

	e "github.com/xaionaro-go/chainmap/errors"
	I "github.com/xaionaro-go/chainmap/interfaces"
)

type checkConsistencier interface {
	CheckConsistency() error
}

func keyOf(i int) I.Key {
	return strconv.Itoa(i)
}

func expect(t *testing.T, m I.Map, key I.Key, expectedValue I.Value) {
	value, err := m.Get(key)
	if err != nil {
		t.Errorf("Got an unexpected error: %v. key == %v; expectedValue == %v", err, key, expectedValue)
		return
	}
	if value != expectedValue {
		t.Errorf(`A wrong value "%v" (instead of %v)`, value, expectedValue)
	}
}

func checkConsistency(t *testing.T, m I.Map) {
	checker, ok := m.(checkConsistencier)
	if !ok {
		return
	}
	if err := checker.CheckConsistency(); err != nil {
		t.Errorf("Got an unexpected error: %v", err)
	}
}

// DoTest runs a generic Set/Get/Unset scenario over keyAmount keys on a map
// created with 1024 buckets.
func DoTest(t *testing.T, factoryFunc MapFactoryFunc, keyAmount int) {
	m := factoryFunc(1024)

	if m.Len() != 0 {
		t.Errorf("m.Len() is not 0: %v", m.Len())
	}

	m.Set(keyOf(1024*1024), "1")
	m.Set("a string", "2")

	expect(t, m, keyOf(1024*1024), "1")
	expect(t, m, "a string", "2")

	_, err := m.Get(keyOf(3))
	if errors.Cause(err) != e.NotFound {
		t.Errorf(`An expected "NotFound" error, but got: %v`, err)
	}

	if m.Len() != 2 {
		t.Errorf("m.Len() is not 2: %v", m.Len())
	}

	err = m.Unset(keyOf(1024 * 1024))
	if err != nil {
		t.Errorf("Got an unexpected error: %v", err)
	}

	_, err = m.Get(keyOf(1024 * 1024))
	if errors.Cause(err) != e.NotFound {
		t.Errorf(`An expected "NotFound" error, but got: %v`, err)
	}

	if m.Len() != 1 {
		t.Errorf("m.Len() is not 1: %v", m.Len())
	}

	for i := 10; i < keyAmount; i++ {
		m.Set(keyOf(i*6000), keyOf(i))
	}
	err = m.Unset(keyOf(60000))
	if err != nil {
		t.Errorf("Got an unexpected error: %v", err)
	}

	checkConsistency(t, m)
	for i := 11; i < keyAmount; i++ {
		r, err := m.Get(keyOf(i * 6000))
		if err != nil {
			t.Errorf("%v not found", i*6000)
			continue
		}
		if r != keyOf(i) {
			t.Errorf("%v != %v", r, i)
		}
	}

	if m.Len() != keyAmount-11+1 {
		t.Errorf("m.Len() is not %v: %v", keyAmount-11+1, m.Len())
	}

	for i := 11; i < keyAmount; i++ {
		err := m.Unset(keyOf(i * 6000))
		if err != nil {
			t.Errorf("Cannot unset %v: %v", i*6000, err)
			continue
		}
	}

	checkConsistency(t, m)
	if m.Len() != 1 {
		t.Errorf("m.Len() is not 1: %v", m.Len())
	}
}

// DoTestAgainstReference applies the same pseudo-random sequence of
// Set/Get/Unset to a map and to a reference implementation and compares
// every result.
func DoTestAgainstReference(t *testing.T, factoryFunc, referenceFactoryFunc MapFactoryFunc, blockSize uint64, opsAmount int) {
	m := factoryFunc(blockSize)
	ref := referenceFactoryFunc(blockSize)

	rng := rand.New(rand.NewSource(0))
	keyPoolSize := opsAmount/4 + 1
	for i := 0; i < opsAmount; i++ {
		key := "k" + keyOf(rng.Intn(keyPoolSize))
		switch op := rng.Intn(10); {
		case op < 6:
			value := keyOf(rng.Int())
			errM, errRef := m.Set(key, value), ref.Set(key, value)
			if errM != nil || errRef != nil {
				t.Fatalf("Set(%q): %v; reference: %v", key, errM, errRef)
			}
		case op < 8:
			valueM, errM := m.Get(key)
			valueRef, errRef := ref.Get(key)
			if errors.Cause(errM) != errors.Cause(errRef) || valueM != valueRef {
				t.Fatalf("Get(%q): %q, %v; reference: %q, %v", key, valueM, errM, valueRef, errRef)
			}
		default:
			errM, errRef := m.Unset(key), ref.Unset(key)
			if errors.Cause(errM) != errors.Cause(errRef) {
				t.Fatalf("Unset(%q): %v; reference: %v", key, errM, errRef)
			}
		}
	}

	if m.Len() != ref.Len() {
		t.Errorf("m.Len() != ref.Len(): %v %v", m.Len(), ref.Len())
	}
	if !reflect.DeepEqual(m.ToSTDMap(), ref.ToSTDMap()) {
		t.Errorf("m.ToSTDMap() != ref.ToSTDMap()")
	}
	keysM, keysRef := m.Keys(), ref.Keys()
	sort.Strings(keysM)
	sort.Strings(keysRef)
	if !reflect.DeepEqual(keysM, keysRef) {
		t.Errorf("m.Keys() != ref.Keys()")
	}
	checkConsistency(t, m)
}

func tryHashCollisions(hasher I.Hasher, blockSize uint64, keys []I.Key) int {
	alreadyIsSet := map[uint64]bool{}

	collisions := 0
	for _, key := range keys {
		newHash := hasher.CompressHash(blockSize, hasher.HashString(key))
		if newHash >= blockSize {
			panic(fmt.Errorf("hash %v is out of range [0, %v)", newHash, blockSize))
		}
		if alreadyIsSet[newHash] {
			collisions++
		}
		alreadyIsSet[newHash] = true
	}

	return collisions
}

func DoTestHashCollisions(t *testing.T, hasher I.Hasher, blockSize uint64, keyAmount uint64) {
	keys := generateKeys(keyAmount/2, "int")
	keys = append(keys, generateKeys(keyAmount/2, "string")...)

	collisions := tryHashCollisions(hasher, blockSize, keys)
	fmt.Printf("Total collisions on random keys: collisions %v, keyAmount %v and blockSize %v:\n\t%v/%v/%v (%.1f%%)\n", collisions, keyAmount, blockSize, collisions, keyAmount, blockSize, float32(collisions)*100/float32(keyAmount))

	keys = keys[:0]
	for i := uint64(0); i < keyAmount; i++ {
		keys = append(keys, keyOf(int(i)))
	}

	collisions = tryHashCollisions(hasher, blockSize, keys)
	fmt.Printf("Total collisions on keys of pessimistic scenario (keys are consecutive): collisions %v, keyAmount %v and blockSize %v:\n\t%v/%v/%v (%.1f%%)\n", collisions, keyAmount, blockSize, collisions, keyAmount, blockSize, float32(collisions)*100/float32(keyAmount))

	if keyAmount <= blockSize && collisions == int(keyAmount)-1 && keyAmount > 1 {
		t.Errorf("all %v keys are in the same bucket", keyAmount)
	}
}
