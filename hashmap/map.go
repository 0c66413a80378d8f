package hashmap // import "jsouthworth.net/go/mutable/hashmap"

import (
	"errors"
	"fmt"
	"math/rand"
	"reflect"
	"strings"

	"jsouthworth.net/go/dyn"
	"jsouthworth.net/go/hash"
	"jsouthworth.net/go/seq"
)

const initialBuckets = 1

var errOddElements = errors.New("must supply an even number elements")
var errRangeSig = errors.New("Range requires a function: func(k kT, v vT) bool or func(k kT, v vT)")
var errNoBuckets = errors.New("bucket index requested on a map with no buckets")

// Pair is a map entry. Each pair consists of a key and value.
type Pair interface {
	Key() interface{}
	Value() interface{}
}

// Map is a mutable hashmap built on separate chaining. Operations on
// the map modify it in place. A Map must not be shared between
// goroutines without external synchronization.
type Map struct {
	hashSeed uintptr
	buckets  [][]pair
	count    int
}

// Empty returns a new empty map with a random hashSeed. The map has
// no buckets until the first insertion.
func Empty() *Map {
	return &Map{
		hashSeed: uintptr(rand.Uint64()),
	}
}

// New converts a list of elements to a mutable map by associating
// them pairwise. New will panic if the number of elements is not even.
func New(elems ...interface{}) *Map {
	if len(elems)%2 != 0 {
		panic(errOddElements)
	}
	out := Empty()
	for i := 0; i < len(elems); i += 2 {
		out.Assoc(elems[i], elems[i+1])
	}
	return out
}

// From will convert many different go types to a mutable map.
// Converting some types is more efficient than others and the mechanisms
// are described below. In every case a fresh map is built by repeated
// association, so later duplicate keys overwrite earlier ones.
//
// *Map:
//
//	The entries are copied into a new map.
//
// map[interface{}]interface{}:
//
//	Converted directly by looping over the map and calling Assoc on an empty map.
//
// []Pair:
//
//	The pairs are looped over and Assoc is called on an empty map.
//
// []interface{}:
//
//	The elements are passed to New.
//
// seq.Seqable:
//
//	Seq is called on the value and the map is built from the resulting sequence of Pair.
//
// seq.Sequence:
//
//	The map is built from the sequence. Each element must implement Pair. Care should be taken to provide finite sequences or the map will grow without bound.
//
// map[kT]vT:
//
//	Reflection is used to loop over the entries of the map and associate them with an empty map.
//
// []T:
//
//	Reflection is used to convert the slice to []interface{} and then passed to New.
func From(value interface{}) *Map {
	switch v := value.(type) {
	case *Map:
		out := Empty()
		v.Range(func(key, val interface{}) {
			out.Assoc(key, val)
		})
		return out
	case map[interface{}]interface{}:
		out := Empty()
		for key, val := range v {
			out.Assoc(key, val)
		}
		return out
	case []Pair:
		out := Empty()
		for _, p := range v {
			out.Assoc(p.Key(), p.Value())
		}
		return out
	case []interface{}:
		return New(v...)
	case seq.Seqable:
		return mapFromSequence(v.Seq())
	case seq.Sequence:
		return mapFromSequence(v)
	default:
		return mapFromReflection(value)
	}
}

func mapFromSequence(coll seq.Sequence) *Map {
	out := Empty()
	for s := coll; s != nil; s = s.Next() {
		p := s.First().(Pair)
		out.Assoc(p.Key(), p.Value())
	}
	return out
}

func mapFromReflection(value interface{}) *Map {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Map:
		out := Empty()
		for _, key := range v.MapKeys() {
			val := v.MapIndex(key)
			out.Assoc(key.Interface(), val.Interface())
		}
		return out
	case reflect.Slice:
		sl := make([]interface{}, v.Len())
		for i := 0; i < v.Len(); i++ {
			elem := v.Index(i)
			sl[i] = elem.Interface()
		}
		return New(sl...)
	default:
		return Empty()
	}
}

// bucketIndex computes the bucket for a key. It reports false when the
// map has no buckets, in which case no key can be present.
func (m *Map) bucketIndex(key interface{}) (int, bool) {
	if len(m.buckets) == 0 {
		return 0, false
	}
	return int(hash.Any(key, m.hashSeed) % uintptr(len(m.buckets))), true
}

// grow is the shared pre-step of every insertion class operation. It
// resizes when the map has no buckets or the load factor exceeds 3/4,
// checked before the new item is added. The new capacity is sized from
// the current occupancy, not the current bucket count.
func (m *Map) grow() {
	if len(m.buckets) == 0 || m.count > 3*len(m.buckets)/4 {
		m.resize()
	}
}

func (m *Map) resize() {
	capacity := initialBuckets
	if m.count != 0 {
		capacity = 2 * m.count
	}
	newBuckets := make([][]pair, capacity)
	for _, bucket := range m.buckets {
		for _, p := range bucket {
			idx := int(hash.Any(p.k, m.hashSeed) % uintptr(capacity))
			newBuckets[idx] = append(newBuckets[idx], p)
		}
	}
	m.buckets = newBuckets
}

// At returns the value associated with the key.
// If one is not found, nil is returned.
func (m *Map) At(key interface{}) interface{} {
	v, _ := m.Find(key)
	return v
}

// Find will return the value for a key if it exists in the map and
// whether the key exists in the map. For non-nil values, exists will
// always be true.
func (m *Map) Find(key interface{}) (value interface{}, exists bool) {
	idx, ok := m.bucketIndex(key)
	if !ok {
		return nil, false
	}
	for _, p := range m.buckets[idx] {
		if dyn.Equal(key, p.k) {
			return p.v, true
		}
	}
	return nil, false
}

// Contains will test if the key exists in the map.
func (m *Map) Contains(key interface{}) bool {
	_, ok := m.Find(key)
	return ok
}

// Assoc associates a value with a key in the map. If the key was
// already present its value is replaced in place, preserving the
// pair's position in its bucket, and the previous value is returned
// with replaced set to true. Otherwise the pair is appended to its
// bucket, growing the table first if needed.
func (m *Map) Assoc(key, value interface{}) (prev interface{}, replaced bool) {
	m.grow()
	idx, ok := m.bucketIndex(key)
	if !ok {
		panic(errNoBuckets)
	}
	bucket := m.buckets[idx]
	for i := range bucket {
		if dyn.Equal(key, bucket[i].k) {
			prev = bucket[i].v
			bucket[i].v = value
			return prev, true
		}
	}
	m.buckets[idx] = append(bucket, pair{k: key, v: value})
	m.count++
	return nil, false
}

// Delete removes a key and associated value from the map, returning
// the removed value and whether the key was present. Removal swaps the
// pair with the last pair of its bucket, so in-bucket order, and with
// it iteration order, is not stable across deletions. Delete never
// resizes the table.
func (m *Map) Delete(key interface{}) (removed interface{}, ok bool) {
	idx, ok := m.bucketIndex(key)
	if !ok {
		return nil, false
	}
	bucket := m.buckets[idx]
	for i := range bucket {
		if dyn.Equal(key, bucket[i].k) {
			removed = bucket[i].v
			last := len(bucket) - 1
			bucket[i] = bucket[last]
			bucket[last] = pair{}
			m.buckets[idx] = bucket[:last]
			m.count--
			return removed, true
		}
	}
	return nil, false
}

// Length returns the number of entries in the map.
func (m *Map) Length() int {
	return m.count
}

// IsEmpty returns whether the map has no entries.
func (m *Map) IsEmpty() bool {
	return m.count == 0
}

// AsNative returns the map converted to a go native map type.
func (m *Map) AsNative() map[interface{}]interface{} {
	out := make(map[interface{}]interface{})
	m.Range(func(key, val interface{}) {
		out[key] = val
	})
	return out
}

// Equal tests if two maps are Equal by comparing the entries of each.
// Equal implements the Equaler which allows for deep
// comparisons when there are maps of maps
func (m *Map) Equal(o interface{}) bool {
	other, ok := o.(*Map)
	if !ok {
		return ok
	}
	if m.Length() != other.Length() {
		return false
	}
	foundAll := true
	m.Range(func(key, value interface{}) bool {
		v, exists := other.Find(key)
		if !exists || !dyn.Equal(v, value) {
			foundAll = false
			return false
		}
		return true
	})
	return foundAll
}

// Range will loop over the entries in the Map and call 'do' on each entry.
// The 'do' function may be of many types:
//
// func(key, value interface{}) bool:
//
//	Takes empty interfaces and returns if the loop should continue.
//	Useful to avoid reflection or for hetrogenous maps.
//
// func(key, value interface{}):
//
//	Takes empty interfaces.
//	Useful to avoid reflection or for hetrogenous maps.
//
// func(p Pair) bool:
//
//	Takes the Pair type and returns if the loop should continue
//	Is called directly and avoids pair unpacking if not necessary.
//
// func(p Pair):
//
//	Takes the Pair type.
//	Is called directly and avoids pair unpacking if not necessary.
//
// func(k kT, v vT) bool
//
//	Takes a key of key type and a value of value type and returns if the loop should contiune.
//	Is called with reflection and will panic if the kT and vT types are incorrect.
//
// func(k kT, v vT)
//
//	Takes a key of key type and a value of value type.
//	Is called with reflection and will panic if the kT and vT types are incorrect.
//
// Range will panic if passed anything not matching these signatures.
func (m *Map) Range(do interface{}) {
	fn := genRangeFunc(do)
	for _, bucket := range m.buckets {
		for _, p := range bucket {
			if !fn(p) {
				return
			}
		}
	}
}

func genRangeFunc(do interface{}) func(Pair) bool {
	switch fn := do.(type) {
	case func(key, value interface{}) bool:
		return func(p Pair) bool {
			return fn(p.Key(), p.Value())
		}
	case func(key, value interface{}):
		return func(p Pair) bool {
			fn(p.Key(), p.Value())
			return true
		}
	case func(p Pair) bool:
		return fn
	case func(p Pair):
		return func(p Pair) bool {
			fn(p)
			return true
		}
	default:
		rv := reflect.ValueOf(do)
		if rv.Kind() != reflect.Func {
			panic(errRangeSig)
		}
		rt := rv.Type()
		if rt.NumIn() != 2 || rt.NumOut() > 1 {
			panic(errRangeSig)
		}
		if rt.NumOut() == 1 &&
			rt.Out(0).Kind() != reflect.Bool {
			panic(errRangeSig)
		}
		return func(p Pair) bool {
			out := dyn.Apply(do, p.Key(), p.Value())
			if out != nil {
				return out.(bool)
			}
			return true
		}
	}
}

// String returns a string representation of the map.
func (m *Map) String() string {
	var b strings.Builder
	fmt.Fprint(&b, "{ ")
	m.Range(func(p Pair) {
		fmt.Fprintf(&b, "%s ", p)
	})
	fmt.Fprint(&b, "}")
	return b.String()
}

// Apply takes an arbitrary number of arguments and returns the
// value At the first argument.  Apply allows map to be called
// as a function by the 'dyn' library.
func (m *Map) Apply(args ...interface{}) interface{} {
	key := args[0]
	return m.At(key)
}

type pair struct {
	k, v interface{}
}

func (p pair) Key() interface{} {
	return p.k
}

func (p pair) Value() interface{} {
	return p.v
}

func (p pair) String() string {
	return fmt.Sprintf("[%v %v]", p.k, p.v)
}
