package hashset

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"jsouthworth.net/go/seq"
)

func TestSetAddContainsDelete(t *testing.T) {
	s := Empty()
	if !s.IsEmpty() {
		t.Fatal("empty set claims to have elements")
	}
	s.Add("a")
	if !s.Contains("a") {
		t.Fatal("set doesn't contain an added element")
	}
	if s.At("a") != "a" {
		t.Fatal("At didn't return the element")
	}
	s.Add("a")
	if s.Length() != 1 {
		t.Fatal("duplicate add grew the set")
	}
	if !s.Delete("a") {
		t.Fatal("delete didn't report removing the element")
	}
	if s.Contains("a") || !s.IsEmpty() {
		t.Fatal("delete didn't remove the element")
	}
	if s.Delete("a") {
		t.Fatal("delete reported removing an absent element")
	}
	if s.At("a") != nil {
		t.Fatal("At returned a removed element")
	}
}

func TestSetFrom(t *testing.T) {
	t.Run("*Set", func(t *testing.T) {
		s := New("a", "b")
		s2 := From(s)
		if s2 == s {
			t.Fatal("from didn't copy the set")
		}
		if !s2.Equal(s) {
			t.Fatal("from didn't copy the elements")
		}
		s2.Add("c")
		if s.Contains("c") {
			t.Fatal("copy shares storage with the original")
		}
	})
	t.Run("map[interface{}]struct{}", func(t *testing.T) {
		s := From(map[interface{}]struct{}{"a": {}, "b": {}})
		if !s.Contains("a") || !s.Contains("b") {
			t.Fatal("from didn't create the right set")
		}
	})
	t.Run("[]interface{}", func(t *testing.T) {
		s := From([]interface{}{"a", "b"})
		if !s.Contains("a") || !s.Contains("b") {
			t.Fatal("from didn't create the right set")
		}
	})
	t.Run("Seqable", func(t *testing.T) {
		s := From(New("a", "b"))
		s2 := From(s.Seq())
		if !s2.Equal(s) {
			t.Fatal("from didn't create the right set")
		}
	})
	t.Run("Sequence", func(t *testing.T) {
		s := From(seq.Cons("a", seq.Cons("b", nil)))
		if s.Length() != 2 || !s.Contains("a") || !s.Contains("b") {
			t.Fatal("from didn't create the right set")
		}
	})
	t.Run("map[kT]vT", func(t *testing.T) {
		s := From(map[string]int{"a": 1, "b": 2})
		if !s.Contains("a") || !s.Contains("b") {
			t.Fatal("from didn't create the right set")
		}
	})
	t.Run("[]T", func(t *testing.T) {
		s := From([]int{1, 2, 3})
		if s.Length() != 3 || !s.Contains(2) {
			t.Fatal("from didn't create the right set")
		}
	})
	t.Run("nil", func(t *testing.T) {
		s := From(nil)
		if !s.IsEmpty() {
			t.Fatal("didn't get an empty set")
		}
	})
	t.Run("other", func(t *testing.T) {
		s := From(1)
		if s.Length() != 1 || !s.Contains(1) {
			t.Fatal("didn't get the single element set")
		}
	})
}

func TestSetRange(t *testing.T) {
	s := New(1, 2, 3)
	t.Run("func(v interface{})", func(t *testing.T) {
		var got int
		s.Range(func(v interface{}) {
			got += v.(int)
		})
		if got != 6 {
			t.Fatal("range didn't visit every element")
		}
	})
	t.Run("func(v interface{}) bool", func(t *testing.T) {
		var seen int
		s.Range(func(v interface{}) bool {
			seen++
			return false
		})
		if seen != 1 {
			t.Fatal("range didn't stop when told to")
		}
	})
	t.Run("func(v vT)", func(t *testing.T) {
		var got int
		s.Range(func(v int) {
			got += v
		})
		if got != 6 {
			t.Fatal("range didn't visit every element")
		}
	})
	t.Run("func(v vT) bool", func(t *testing.T) {
		var seen int
		s.Range(func(v int) bool {
			seen++
			return false
		})
		if seen != 1 {
			t.Fatal("range didn't stop when told to")
		}
	})
	t.Run("other", func(t *testing.T) {
		defer func() {
			if recover() != errRangeSig {
				t.Fatal("didn't get expected error")
			}
		}()
		s.Range(1)
	})
}

func TestSetSeq(t *testing.T) {
	got := seq.Reduce(func(result, input interface{}) interface{} {
		return result.(int) + input.(int)
	}, 0, New(1, 2, 3).Seq())
	if got != 6 {
		t.Fatal("didn't get the expected result from reduce")
	}
	if Empty().Seq() != nil {
		t.Fatal("empty set has a non-nil sequence")
	}
}

func TestSetEqual(t *testing.T) {
	if !New(1, 2).Equal(New(2, 1)) {
		t.Fatal("sets with the same elements are not equal")
	}
	if New(1, 2).Equal(New(1, 3)) {
		t.Fatal("sets with different elements are equal")
	}
	if New(1, 2).Equal(New(1)) {
		t.Fatal("sets of different length are equal")
	}
	if New(1).Equal(10) {
		t.Fatal("set is equal to a non-set")
	}
}

func TestSetApply(t *testing.T) {
	s := New("a")
	if s.Apply("a") != "a" {
		t.Fatal("apply didn't return the element")
	}
}

func TestSetProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)
	properties.Property("added elements are contained",
		prop.ForAll(
			func(elems []string) bool {
				s := Empty()
				for _, e := range elems {
					s.Add(e)
				}
				for _, e := range elems {
					if !s.Contains(e) {
						return false
					}
				}
				return true
			},
			gen.SliceOf(gen.Identifier()),
		))
	properties.Property("length counts distinct elements",
		prop.ForAll(
			func(elems map[string]struct{}) bool {
				s := Empty()
				for e := range elems {
					s.Add(e)
					s.Add(e)
				}
				return s.Length() == len(elems)
			},
			gen.MapOf(gen.Identifier(),
				gen.Const(struct{}{})),
		))
	properties.TestingRun(t)
}

func ExampleEmpty() {
	s := Empty()
	fmt.Println(s)
	// Output: { }
}

func ExampleString() {
	fmt.Println(New("a"))
	// Output: { a }
}
