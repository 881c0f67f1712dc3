package readyset

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ReadySetTestSuite struct {
	suite.Suite
}

func TestReadySetTestSuite(t *testing.T) {
	suite.Run(t, new(ReadySetTestSuite))
}

// byInt orders *int values numerically, lowest first.
func byInt(a, b *int) int {
	switch {
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	default:
		return 0
	}
}

func ptrs(vals ...int) []*int {
	out := make([]*int, len(vals))
	for i := range vals {
		v := vals[i]
		out[i] = &v
	}
	return out
}

func (ts *ReadySetTestSuite) TestEmptySet() {
	r := New[*int](byInt)
	ts.Equal(0, r.Size())

	_, ok := r.Peek()
	ts.False(ok)

	_, ok = r.Poll()
	ts.False(ok)

	_, ok = r.At(0)
	ts.False(ok)

	_, ok = r.RemoveAt(0)
	ts.False(ok)
}

func (ts *ReadySetTestSuite) TestInsertOrdersByComparator() {
	r := New[*int](byInt)
	vals := ptrs(5, 1, 3, 2, 4)
	for _, v := range vals {
		r.Insert(v)
	}

	ts.Equal(5, r.Size())
	for i, want := range []int{1, 2, 3, 4, 5} {
		got, ok := r.At(i)
		ts.True(ok)
		ts.Equal(want, *got)
	}
}

func (ts *ReadySetTestSuite) TestInsertIsStableAmongTies() {
	r := New[*int](byInt)
	first := ptrs(1)[0]
	second := ptrs(1)[0]
	third := ptrs(1)[0]

	idx1 := r.Insert(first)
	idx2 := r.Insert(second)
	idx3 := r.Insert(third)

	ts.Equal(0, idx1)
	ts.Equal(1, idx2)
	ts.Equal(2, idx3)

	got0, _ := r.At(0)
	got1, _ := r.At(1)
	got2, _ := r.At(2)
	ts.Same(first, got0)
	ts.Same(second, got1)
	ts.Same(third, got2)
}

func (ts *ReadySetTestSuite) TestPollReturnsPrecedenceOrderAndShrinks() {
	r := New[*int](byInt)
	for _, v := range ptrs(3, 1, 2) {
		r.Insert(v)
	}

	want := []int{1, 2, 3}
	for i, w := range want {
		sizeBefore := r.Size()
		got, ok := r.Poll()
		ts.True(ok)
		ts.Equal(w, *got)
		ts.Equal(sizeBefore-1, r.Size())
		_ = i
	}

	_, ok := r.Poll()
	ts.False(ok)
}

func (ts *ReadySetTestSuite) TestPeekDoesNotRemove() {
	r := New[*int](byInt)
	r.Insert(ptrs(7)[0])

	v1, ok1 := r.Peek()
	v2, ok2 := r.Peek()
	ts.True(ok1)
	ts.True(ok2)
	ts.Equal(*v1, *v2)
	ts.Equal(1, r.Size())
}

func (ts *ReadySetTestSuite) TestRemoveAtOutOfRange() {
	r := New[*int](byInt)
	r.Insert(ptrs(1)[0])

	_, ok := r.RemoveAt(-1)
	ts.False(ok)
	_, ok = r.RemoveAt(5)
	ts.False(ok)
	ts.Equal(1, r.Size())
}

func (ts *ReadySetTestSuite) TestRemoveAtMiddlePreservesOrder() {
	r := New[*int](byInt)
	for _, v := range ptrs(1, 2, 3, 4) {
		r.Insert(v)
	}

	removed, ok := r.RemoveAt(1)
	ts.True(ok)
	ts.Equal(2, *removed)
	ts.Equal(3, r.Size())

	for i, want := range []int{1, 3, 4} {
		got, _ := r.At(i)
		ts.Equal(want, *got)
	}
}

func (ts *ReadySetTestSuite) TestRemoveMatchingCountsIdentityOnly() {
	r := New[*int](byInt)
	dup := ptrs(9)[0]
	r.Insert(dup)
	r.Insert(ptrs(9)[0]) // equal value, distinct identity
	r.Insert(dup)
	r.Insert(ptrs(1)[0])

	removed := r.RemoveMatching(dup)
	ts.Equal(2, removed)
	ts.Equal(2, r.Size())
}

func (ts *ReadySetTestSuite) TestDestroyEmptiesSet() {
	r := New[*int](byInt)
	for _, v := range ptrs(1, 2, 3) {
		r.Insert(v)
	}
	r.Destroy()
	ts.Equal(0, r.Size())
	_, ok := r.Peek()
	ts.False(ok)
}

func (ts *ReadySetTestSuite) TestEachStopsEarly() {
	r := New[*int](byInt)
	for _, v := range ptrs(1, 2, 3, 4) {
		r.Insert(v)
	}

	var seen []int
	r.Each(func(i int, v *int) bool {
		seen = append(seen, *v)
		return i < 1
	})
	ts.Equal([]int{1, 2}, seen)
}
