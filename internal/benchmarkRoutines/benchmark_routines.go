package benchmarkRoutines

import (
	"strconv"
	"testing"
)

func DoBenchmarkOfSet(b *testing.B, factoryFunc MapFactoryFunc, blockSize uint64, keyAmount uint64, keyType string) {
	b.StopTimer()

	m := factoryFunc(blockSize)

	keys := generateKeys(keyAmount, keyType)

	currentCount := uint64(0)
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		m.Set(keys[currentCount], "v")
		currentCount++
		if currentCount >= keyAmount {
			b.StopTimer()
			m = factoryFunc(blockSize)
			currentCount = 0
			b.StartTimer()
		}
	}
	b.StopTimer()
}

func DoBenchmarkOfReSet(b *testing.B, factoryFunc MapFactoryFunc, blockSize uint64, keyAmount uint64, keyType string) {
	b.StopTimer()

	m := factoryFunc(blockSize)

	keys := generateKeys(keyAmount, keyType)
	for i := uint64(0); i < keyAmount; i++ {
		m.Set(keys[i], strconv.FormatUint(i+1, 10))
	}

	currentIdx := uint64(0)
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		m.Set(keys[currentIdx], "v")
		currentIdx++
		if currentIdx >= keyAmount {
			currentIdx = 0
		}
	}
	b.StopTimer()
}

func DoBenchmarkOfGet(b *testing.B, factoryFunc MapFactoryFunc, blockSize uint64, keyAmount uint64, keyType string) {
	b.StopTimer()

	m := factoryFunc(blockSize)

	keys := generateKeys(keyAmount, keyType)
	for i := uint64(0); i < keyAmount; i++ {
		m.Set(keys[i], strconv.FormatUint(i, 10))
	}

	currentIdx := uint64(0)
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		m.Get(keys[currentIdx])
		currentIdx++
		if currentIdx >= keyAmount {
			currentIdx = 0
		}
	}
	b.StopTimer()
}

func DoBenchmarkOfGetMiss(b *testing.B, factoryFunc MapFactoryFunc, blockSize uint64, keyAmount uint64, keyType string) {
	b.StopTimer()

	m := factoryFunc(blockSize)

	keys := generateKeys(uint64(b.N), keyType)

	b.StartTimer()
	for i := 0; i < b.N; i++ {
		m.Get(keys[i])
	}
	b.StopTimer()
}

func DoBenchmarkOfUnset(b *testing.B, factoryFunc MapFactoryFunc, blockSize uint64, keyAmount uint64, keyType string) {
	b.StopTimer()

	m := factoryFunc(blockSize)
	keys := generateKeys(keyAmount, keyType)

	currentIdx := uint64(0)
	for i := 0; i < b.N; i++ {
		if currentIdx == 0 {
			b.StopTimer()
			for j := uint64(0); j < keyAmount; j++ {
				m.Set(keys[j], "v")
			}
			b.StartTimer()
		}

		m.Unset(keys[currentIdx])

		currentIdx++
		if currentIdx >= keyAmount {
			currentIdx = 0
		}
	}
	b.StopTimer()
}
