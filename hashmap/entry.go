package hashmap

import (
	"errors"

	"jsouthworth.net/go/dyn"
)

var errEntryResolved = errors.New("entry has already been resolved")

// Entry is a single use handle to a key's slot in the map, produced by
// one bucket scan and resolved by exactly one of Value, Insert,
// OrInsert, or OrInsertWith. An occupied entry addresses the located
// pair directly; a vacant entry remembers the key and its target
// bucket so the resolving insert needs no second scan. The entry
// borrows the map exclusively: the map must not be otherwise mutated
// between Entry and resolution. Resolving an entry twice panics.
type Entry struct {
	m      *Map
	key    interface{}
	bucket int
	at     int // position in bucket when occupied, -1 when vacant
	done   bool
}

// Entry scans the map for the key and returns a handle that is either
// occupied or vacant. Because a vacant entry may grow the table on
// insert, Entry applies the same growth policy as Assoc before
// computing the bucket, so the recorded bucket index stays valid for
// the resolving operation.
func (m *Map) Entry(key interface{}) *Entry {
	m.grow()
	idx, ok := m.bucketIndex(key)
	if !ok {
		panic(errNoBuckets)
	}
	e := &Entry{m: m, key: key, bucket: idx, at: -1}
	for i := range m.buckets[idx] {
		if dyn.Equal(key, m.buckets[idx][i].k) {
			e.at = i
			break
		}
	}
	return e
}

// Occupied reports whether the entry located an existing pair. It does
// not resolve the entry.
func (e *Entry) Occupied() bool {
	return e.at >= 0
}

// Value resolves the entry by reading it. It returns the stored value
// when occupied and (nil, false) when vacant; a vacant entry resolved
// this way inserts nothing.
func (e *Entry) Value() (interface{}, bool) {
	e.resolve()
	if e.at < 0 {
		return nil, false
	}
	return e.m.buckets[e.bucket][e.at].v, true
}

// Insert resolves the entry by storing the value. When occupied the
// existing pair's value is replaced in place with no structural
// change; when vacant the pair is appended to the recorded bucket. The
// stored value is returned.
func (e *Entry) Insert(value interface{}) interface{} {
	e.resolve()
	if e.at >= 0 {
		e.m.buckets[e.bucket][e.at].v = value
		return value
	}
	e.commit(value)
	return value
}

// OrInsert resolves the entry, returning the existing value when
// occupied and otherwise inserting and returning the supplied default.
func (e *Entry) OrInsert(def interface{}) interface{} {
	e.resolve()
	if e.at >= 0 {
		return e.m.buckets[e.bucket][e.at].v
	}
	e.commit(def)
	return def
}

// OrInsertWith resolves the entry, returning the existing value when
// occupied and otherwise inserting and returning the value produced by
// supply. The supplier is invoked at most once and only when the entry
// is vacant.
func (e *Entry) OrInsertWith(supply func() interface{}) interface{} {
	e.resolve()
	if e.at >= 0 {
		return e.m.buckets[e.bucket][e.at].v
	}
	def := supply()
	e.commit(def)
	return def
}

func (e *Entry) resolve() {
	if e.done {
		panic(errEntryResolved)
	}
	e.done = true
}

func (e *Entry) commit(value interface{}) {
	e.m.buckets[e.bucket] = append(e.m.buckets[e.bucket],
		pair{k: e.key, v: value})
	e.m.count++
}
