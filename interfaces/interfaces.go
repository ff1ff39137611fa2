package interfaces

type Key = string
type Value = string

type Map interface {
	Set(key Key, value Value) error
	Get(key Key) (value Value, err error)
	Unset(key Key) error
	Len() int
	Keys() []Key
	ToSTDMap() map[Key]Value
	FromSTDMap(map[Key]Value) error
}

type Hasher interface {
	HashString(key string) uint64
	HashBytes(key []byte) uint64
	CompressHash(blockSize uint64, fullHash uint64) uint64
}
