package chainmap

// sortedIndex threads every entry of a SortedHashTable into one
// doubly-linked list ordered by key (byte-wise, ascending).
type sortedIndex struct {
	head *entry
	tail *entry
}

// insert links a new entry at its ordered position. The key must not be in
// the index yet.
func (sIdx *sortedIndex) insert(item *entry) {
	switch {
	case sIdx.head == nil:
		item.sprev = nil
		item.snext = nil
		sIdx.head = item
		sIdx.tail = item
	case sIdx.head.key > item.key:
		item.sprev = nil
		item.snext = sIdx.head
		sIdx.head.sprev = item
		sIdx.head = item
	default:
		cur := sIdx.head
		for cur.snext != nil && cur.snext.key < item.key {
			cur = cur.snext
		}
		item.sprev = cur
		item.snext = cur.snext
		if cur.snext == nil {
			sIdx.tail = item
		} else {
			cur.snext.sprev = item
		}
		cur.snext = item
	}
}

func (sIdx *sortedIndex) remove(item *entry) {
	if item.sprev == nil {
		sIdx.head = item.snext
	} else {
		item.sprev.snext = item.snext
	}
	if item.snext == nil {
		sIdx.tail = item.sprev
	} else {
		item.snext.sprev = item.sprev
	}
	item.sprev = nil
	item.snext = nil
}

func (sIdx *sortedIndex) forEach(fn func(item *entry) bool) {
	for item := sIdx.head; item != nil; item = item.snext {
		if !fn(item) {
			return
		}
	}
}

func (sIdx *sortedIndex) forEachReverse(fn func(item *entry) bool) {
	for item := sIdx.tail; item != nil; item = item.sprev {
		if !fn(item) {
			return
		}
	}
}

// release only forgets the ends of the list; the entries themselves are
// owned (and released) by the storage.
func (sIdx *sortedIndex) release() {
	sIdx.head = nil
	sIdx.tail = nil
}
