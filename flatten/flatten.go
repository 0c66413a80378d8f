// Package flatten provides a lazy concatenating adaptor over
// sequences of sequences.
package flatten // import "jsouthworth.net/go/mutable/flatten"

import "jsouthworth.net/go/seq"

// Seq returns a lazy sequence that yields every element of the first
// inner collection of coll, then every element of the second, and so
// on, terminating when the outer sequence and the last inner sequence
// are exhausted. coll may be anything seq.Seq accepts and its elements
// must themselves be convertible by seq.Seq. Empty inner collections
// are skipped and an empty or nil outer collection yields nil.
func Seq(coll interface{}) seq.Sequence {
	if coll == nil {
		return nil
	}
	return step(nil, seq.Seq(coll))
}

// step finds the next realizable inner sequence. A flatSequence is
// only constructed with a non-nil inner, so First is always valid.
func step(inner, outer seq.Sequence) seq.Sequence {
	for inner == nil {
		if outer == nil {
			return nil
		}
		elem := outer.First()
		outer = outer.Next()
		if elem == nil {
			continue
		}
		inner = seq.Seq(elem)
	}
	return &flatSequence{
		inner: inner,
		outer: outer,
	}
}

type flatSequence struct {
	inner seq.Sequence
	outer seq.Sequence
}

func (s *flatSequence) First() interface{} {
	return s.inner.First()
}

func (s *flatSequence) Next() seq.Sequence {
	return step(s.inner.Next(), s.outer)
}

func (s *flatSequence) String() string {
	return seq.ConvertToString(s)
}
