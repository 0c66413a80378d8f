package hashmap

import (
	"errors"

	"jsouthworth.net/go/seq"
)

var errNoSuchEntry = errors.New("no such entry")

// Iterator provides a borrowing iterator over the map. This allows
// efficient, heap allocation-less access to the contents. The iterator
// walks buckets in index order and pairs within a bucket in storage
// order; the order is not insertion order and is not stable across
// resizes or deletions. Iterators are not safe for concurrent access
// so they may not be shared between goroutines.
func (m *Map) Iterator() Iterator {
	return Iterator{m: m}
}

// Iterator is a cursor of (bucket, position in bucket) into a map it
// does not own. It never mutates the map, and a fresh iterator may be
// obtained from the map at any time.
type Iterator struct {
	m      *Map
	bucket int
	at     int
}

// HasNext is true when there are more entries to be iterated over.
func (i *Iterator) HasNext() bool {
	for i.bucket < len(i.m.buckets) {
		if i.at < len(i.m.buckets[i.bucket]) {
			return true
		}
		i.bucket++
		i.at = 0
	}
	return false
}

// Next provides the next key value pair and increments the cursor.
// Next panics when called on an exhausted iterator.
func (i *Iterator) Next() (k, v interface{}) {
	if !i.HasNext() {
		panic(errNoSuchEntry)
	}
	p := i.m.buckets[i.bucket][i.at]
	i.at++
	return p.k, p.v
}

// Drain takes ownership of the map's storage and returns a one-shot
// consuming iterator over it. The map is reset to its initial empty
// state immediately; once the drain is exhausted every pair has been
// yielded exactly once.
func (m *Map) Drain() *Drain {
	d := &Drain{buckets: m.buckets}
	m.buckets = nil
	m.count = 0
	return d
}

// Drain is a consuming iterator. Each step pops the last pair of the
// current bucket, so within a bucket pairs are yielded in the reverse
// of storage order, and advances to the next bucket when the current
// one is empty.
type Drain struct {
	buckets [][]pair
	bucket  int
}

// HasNext is true when there are more entries to be drained.
func (d *Drain) HasNext() bool {
	for d.bucket < len(d.buckets) {
		if len(d.buckets[d.bucket]) != 0 {
			return true
		}
		d.bucket++
	}
	return false
}

// Next pops and returns the next key value pair.
// Next panics when called on an exhausted drain.
func (d *Drain) Next() (k, v interface{}) {
	if !d.HasNext() {
		panic(errNoSuchEntry)
	}
	bucket := d.buckets[d.bucket]
	last := len(bucket) - 1
	p := bucket[last]
	bucket[last] = pair{}
	d.buckets[d.bucket] = bucket[:last]
	return p.k, p.v
}

// Seq returns a lazy sequence of Pair corresponding to the map's
// entries. The sequence borrows the map; it is restartable by calling
// Seq again and the map must not be mutated while it is walked.
func (m *Map) Seq() seq.Sequence {
	return mapSeqNew(m, 0, 0)
}

type mapSequence struct {
	m      *Map
	bucket int
	at     int
}

func mapSeqNew(m *Map, bucket, at int) seq.Sequence {
	for bucket < len(m.buckets) {
		if at < len(m.buckets[bucket]) {
			return &mapSequence{m: m, bucket: bucket, at: at}
		}
		bucket++
		at = 0
	}
	return nil
}

func (s *mapSequence) First() interface{} {
	return s.m.buckets[s.bucket][s.at]
}

func (s *mapSequence) Next() seq.Sequence {
	return mapSeqNew(s.m, s.bucket, s.at+1)
}

func (s *mapSequence) String() string {
	return seq.ConvertToString(s)
}
