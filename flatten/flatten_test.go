package flatten

import (
	"testing"

	"jsouthworth.net/go/mutable/hashmap"
	"jsouthworth.net/go/seq"
)

func count(s seq.Sequence) int {
	var n int
	for ; s != nil; s = s.Next() {
		n++
	}
	return n
}

func collect(s seq.Sequence) []interface{} {
	var out []interface{}
	for ; s != nil; s = s.Next() {
		out = append(out, s.First())
	}
	return out
}

func TestFlattenEmpty(t *testing.T) {
	if count(Seq(nil)) != 0 {
		t.Fatal("flattening nothing yielded elements")
	}
}

func TestFlattenOne(t *testing.T) {
	s := Seq(seq.Cons(seq.Cons("a", nil), nil))
	if count(s) != 1 {
		t.Fatal("didn't get exactly one element")
	}
	if s.First() != "a" {
		t.Fatal("didn't get the inner element")
	}
}

func TestFlattenTwo(t *testing.T) {
	inner := seq.Cons("a", seq.Cons("b", nil))
	got := collect(Seq(seq.Cons(inner, nil)))
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("expected [a b], got %v", got)
	}
}

func TestFlattenTwoWide(t *testing.T) {
	outer := seq.Cons(seq.Cons("a", nil),
		seq.Cons(seq.Cons("b", nil), nil))
	got := collect(Seq(outer))
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("expected [a b], got %v", got)
	}
}

func TestFlattenSkipsEmptyInner(t *testing.T) {
	// hashmap.Empty has a nil sequence, standing in for an empty
	// inner collection.
	outer := seq.Cons(hashmap.Empty(),
		seq.Cons(seq.Cons("a", nil),
			seq.Cons(hashmap.Empty(), nil)))
	got := collect(Seq(outer))
	if len(got) != 1 || got[0] != "a" {
		t.Fatalf("expected [a], got %v", got)
	}
}

func TestFlattenMapSequences(t *testing.T) {
	outer := seq.Cons(hashmap.New("a", 1),
		seq.Cons(hashmap.New("b", 2), nil))
	seen := hashmap.Empty()
	for s := Seq(outer); s != nil; s = s.Next() {
		p := s.First().(hashmap.Pair)
		seen.Assoc(p.Key(), p.Value())
	}
	if !seen.Equal(hashmap.New("a", 1, "b", 2)) {
		t.Fatal("flatten didn't visit every map entry")
	}
}

func TestFlattenIsLazy(t *testing.T) {
	// Only the head of the current inner sequence is realized;
	// taking the first element must not walk the infinite tail.
	infinite := repeat{elem: "x"}
	outer := seq.Cons(seq.Cons("a", nil), seq.Cons(infinite, nil))
	s := Seq(outer)
	if s.First() != "a" {
		t.Fatal("didn't get the first element")
	}
	s = s.Next()
	if s.First() != "x" {
		t.Fatal("didn't get the head of the second sequence")
	}
}

type repeat struct {
	elem interface{}
}

func (r repeat) First() interface{} {
	return r.elem
}

func (r repeat) Next() seq.Sequence {
	return r
}
