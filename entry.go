package chainmap

// entry is a single key/value pair. It is linked into exactly one bucket
// chain via next and, for a SortedHashTable, into the sorted index via
// sprev/snext.
type entry struct {
	key   string
	value string

	next *entry

	sprev *entry
	snext *entry
}

func newEntry(key, value string) *entry {
	return &entry{
		key:   key,
		value: value,
	}
}

// release drops all the references held by the entry.
func (e *entry) release() {
	e.key = ""
	e.value = ""
	e.next = nil
	e.sprev = nil
	e.snext = nil
}
