package benchmarkRoutines

import (
	"encoding/binary"
	"math/rand"
	"strconv"

	I "github.com/xaionaro-go/chainmap/interfaces"
)

type MapFactoryFunc func(blockSize uint64) I.Map

func generateKeys(keyAmount uint64, keyType string) []I.Key {
	resultMap := map[string]bool{}
	for uint64(len(resultMap)) < keyAmount {
		newKey := make([]byte, 4)
		rand.Read(newKey)
		resultMap[string(newKey)] = true
	}

	i := 0
	result := make([]I.Key, keyAmount)
	for newKey := range resultMap {
		switch keyType {
		case "int":
			result[i] = strconv.FormatUint(uint64(binary.LittleEndian.Uint32([]byte(newKey))), 10)
		case "string":
			result[i] = newKey
		default:
			panic("Unknown key type: " + keyType)
		}
		i++
	}
	return result
}
