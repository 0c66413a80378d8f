// Package hashmap implements a mutable, separately chained hashmap.
// The map owns a slice of buckets, each an ordered slice of key/value
// pairs, and grows by rehashing every pair into a fresh bucket slice
// whenever the load factor passes 3/4 before an insertion. Unlike the
// persistent structures in jsouthworth.net/go/immutable, operations
// here mutate the map in place; the map has single-owner semantics and
// callers needing concurrent access must synchronize externally.
//
// A note about Key and Value equality. If you would like to override
// the default go equality operator for keys and values in this map library
// implement the Equal(other interface{}) bool function for the type.
// Otherwise '==' will be used with all its restrictions. A type that
// also implements Hash() uintptr may be used as a lookup key in place
// of the stored key type, provided it hashes and compares equal to it.
package hashmap
