// Package hashset implements a mutable Set datastructure on top of hashmap
package hashset // import "jsouthworth.net/go/mutable/hashset"

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"jsouthworth.net/go/mutable/hashmap"
	"jsouthworth.net/go/seq"
)

var errRangeSig = errors.New("Range requires a function: func(v vT) bool or func(v vT)")

// Set is a mutable unordered set implementation. Operations on the
// set modify it in place and return the set for chaining. A Set must
// not be shared between goroutines without external synchronization.
type Set struct {
	backingMap *hashmap.Map
}

// Empty returns a new empty set.
func Empty() *Set {
	return &Set{
		backingMap: hashmap.Empty(),
	}
}

// New returns a set containing the supplied elements.
func New(elems ...interface{}) *Set {
	s := Empty()
	for _, elem := range elems {
		s.Add(elem)
	}
	return s
}

// From will convert many different go types to a mutable set.
// Converting some types is more efficient than others and the mechanisms
// are described below. In every case a fresh set is built.
//
// *Set:
//
//	The elements are copied into a new set.
//
// map[interface{}]struct{}:
//
//	Converted directly by looping over the map and calling Add on an empty set.
//
// []interface{}:
//
//	The elements are passed to New.
//
// seq.Seqable:
//
//	Seq is called on the value and the set is built from the resulting sequence.
//
// seq.Sequence:
//
//	The set is built from the sequence. Care should be taken to provide finite sequences or the set will grow without bound.
//
// map[kT]vT:
//
//	Reflection is used to loop over the keys of the map and add them to an empty set.
//
// []T:
//
//	Reflection is used to add the elements of the slice to an empty set.
func From(value interface{}) *Set {
	switch v := value.(type) {
	case *Set:
		out := Empty()
		v.Range(func(elem interface{}) {
			out.Add(elem)
		})
		return out
	case map[interface{}]struct{}:
		out := Empty()
		for k := range v {
			out.Add(k)
		}
		return out
	case []interface{}:
		return New(v...)
	case seq.Seqable:
		return setFromSequence(v.Seq())
	case seq.Sequence:
		return setFromSequence(v)
	default:
		return setFromReflection(value)
	}
}

func setFromSequence(coll seq.Sequence) *Set {
	out := Empty()
	for s := coll; s != nil; s = s.Next() {
		out.Add(s.First())
	}
	return out
}

func setFromReflection(value interface{}) *Set {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Map:
		out := Empty()
		for _, key := range v.MapKeys() {
			out.Add(key.Interface())
		}
		return out
	case reflect.Slice:
		out := Empty()
		for i := 0; i < v.Len(); i++ {
			out.Add(v.Index(i).Interface())
		}
		return out
	default:
		if value == nil {
			return Empty()
		}
		return New(value)
	}
}

// Add adds an element to the set and returns the set.
func (s *Set) Add(elem interface{}) *Set {
	s.backingMap.Entry(elem).OrInsert(nil)
	return s
}

// At returns the elem if it exists in the set otherwise it returns nil.
func (s *Set) At(elem interface{}) interface{} {
	if s.backingMap.Contains(elem) {
		return elem
	}
	return nil
}

// Contains returns true if the element is in the set, false otherwise.
func (s *Set) Contains(elem interface{}) bool {
	return s.backingMap.Contains(elem)
}

// Delete removes an element from the set, reporting whether the
// element was present.
func (s *Set) Delete(elem interface{}) bool {
	_, ok := s.backingMap.Delete(elem)
	return ok
}

// Range calls the passed in function on each element of the set.
// The function passed in may be of many types:
//
// func(value interface{}) bool:
//
//	Takes a value of any type and returns if the loop should continue.
//	Useful to avoid reflection where not needed and to support
//	heterogenous sets.
//
// func(value interface{})
//
//	Takes a value of any type.
//	Useful to avoid reflection where not needed and to support
//	heterogenous sets.
//
// func(value T) bool:
//
//	Takes a value of the type of element stored in the set and
//	returns if the loop should continue. Useful for homogeneous sets.
//	Is called with reflection and will panic if the type is incorrect.
//
// func(value T)
//
//	Takes a value of the type of element stored in the set and
//	returns if the loop should continue. Useful for homogeneous sets.
//	Is called with reflection and will panic if the type is incorrect.
//
// Range will panic if passed anything that doesn't match one of these signatures
func (s *Set) Range(do interface{}) {
	var rangefn func(interface{}, interface{}) bool
	switch fn := do.(type) {
	case func(value interface{}) bool:
		rangefn = func(key, _ interface{}) bool {
			return fn(key)
		}
	case func(value interface{}):
		rangefn = func(key, _ interface{}) bool {
			fn(key)
			return true
		}
	default:
		rv := reflect.ValueOf(do)
		if rv.Kind() != reflect.Func {
			panic(errRangeSig)
		}
		rt := rv.Type()
		if rt.NumIn() != 1 || rt.NumOut() > 1 {
			panic(errRangeSig)
		}
		if rt.NumOut() == 1 &&
			rt.Out(0).Kind() != reflect.Bool {
			panic(errRangeSig)
		}
		rangefn = func(key, _ interface{}) bool {
			cont := true
			outs := rv.Call([]reflect.Value{
				reflect.ValueOf(key)})
			if len(outs) != 0 {
				cont = outs[0].Interface().(bool)
			}
			return cont
		}
	}
	s.backingMap.Range(rangefn)
}

// Length returns the number of elements in the set.
func (s *Set) Length() int {
	return s.backingMap.Length()
}

// IsEmpty returns whether the set has no elements.
func (s *Set) IsEmpty() bool {
	return s.backingMap.IsEmpty()
}

// Equal tests if two sets are Equal by comparing the elements of each.
func (s *Set) Equal(o interface{}) bool {
	other, ok := o.(*Set)
	if !ok {
		return ok
	}
	if s.Length() != other.Length() {
		return false
	}
	containsAll := true
	s.Range(func(elem interface{}) bool {
		if !other.Contains(elem) {
			containsAll = false
			return false
		}
		return true
	})
	return containsAll
}

// Seq returns a lazy sequence of the elements of the set.
func (s *Set) Seq() seq.Sequence {
	return setSeqNew(s.backingMap.Seq())
}

type setSequence struct {
	s seq.Sequence
}

func setSeqNew(s seq.Sequence) seq.Sequence {
	if s == nil {
		return nil
	}
	return &setSequence{s: s}
}

func (s *setSequence) First() interface{} {
	return s.s.First().(hashmap.Pair).Key()
}

func (s *setSequence) Next() seq.Sequence {
	return setSeqNew(s.s.Next())
}

func (s *setSequence) String() string {
	return seq.ConvertToString(s)
}

// String returns a string serialization of the set.
func (s *Set) String() string {
	var b strings.Builder
	fmt.Fprint(&b, "{ ")
	s.Range(func(elem interface{}) {
		fmt.Fprintf(&b, "%v ", elem)
	})
	fmt.Fprint(&b, "}")
	return b.String()
}

// Apply takes an arbitrary number of arguments and returns the
// value At the first argument. Apply allows set to be called
// as a function by the 'dyn' library.
func (s *Set) Apply(args ...interface{}) interface{} {
	elem := args[0]
	return s.At(elem)
}
