package indexlist_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netgen/indexlist"
)

func TestSmallList_Choose(t *testing.T) {
	t.Parallel()

	l := indexlist.New(1, 5)
	require.Equal(t, 5, l.Size())
	assert.Equal(t, 3, l.Choose(3))
	assert.Equal(t, 4, l.Size())
	assert.Equal(t, 4, l.Choose(3)) // 3 is gone
	assert.Equal(t, 3, l.Size())
	assert.Equal(t, 3, l.PseudoSize())
}

func TestSmallList_Remove(t *testing.T) {
	t.Parallel()

	l := indexlist.New(1, 5)
	l.Remove(3)
	assert.Equal(t, 4, l.Size())
	assert.Equal(t, 4, l.Choose(3))
}

// TestPseudoSize_DriftsOnMiss pins the legacy accounting: a Remove that hits
// nothing still shrinks the pseudo size.
func TestPseudoSize_DriftsOnMiss(t *testing.T) {
	t.Parallel()

	for _, l := range []*indexlist.List{indexlist.New(1, 5), indexlist.New(1, 500)} {
		l.Remove(10000)
		assert.Equal(t, l.Size()-1, l.PseudoSize())
		before := l.Size()
		l.Remove(2)
		l.Remove(2) // second removal misses
		assert.Equal(t, before-1, l.Size())
		assert.Equal(t, before-3, l.PseudoSize())
	}
}

func TestLargeList_Choose(t *testing.T) {
	t.Parallel()

	l := indexlist.New(1, 200)
	require.Equal(t, 200, l.Size())
	assert.Equal(t, 1, l.Choose(1))
	assert.Equal(t, 199, l.Size())
	assert.Equal(t, 200, l.Choose(199))
	assert.Equal(t, 198, l.Size())
}

func TestLargeList_Remove(t *testing.T) {
	t.Parallel()

	l := indexlist.New(1, 200)
	l.Remove(100)
	assert.Equal(t, 199, l.Size())
	assert.Equal(t, 99, l.Choose(99))
	assert.Equal(t, 101, l.Choose(99)) // 100 was removed
}

func TestChoose_InvalidPosition(t *testing.T) {
	t.Parallel()

	l := indexlist.New(1, 5)
	assert.Equal(t, 0, l.Choose(0))
	assert.Equal(t, 0, l.Choose(6))
	assert.Equal(t, 5, l.Size())
	assert.Equal(t, 5, l.PseudoSize())
}

func TestEmptyRange(t *testing.T) {
	t.Parallel()

	l := indexlist.New(11, 10)
	assert.Equal(t, 0, l.Size())
	assert.Equal(t, 0, l.Choose(1))
	l.Remove(10)
	assert.Equal(t, -1, l.PseudoSize())
}

// TestAgainstSortedSlice drives both representations with random operations
// and compares them to a plain sorted-slice model.
func TestAgainstSortedSlice(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		from, to int
	}{
		{"small", 3, 90},
		{"boundary", 1, 100},
		{"large", 7, 1500},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r := rand.New(rand.NewSource(int64(tc.to)))
			l := indexlist.New(tc.from, tc.to)
			var model []int
			for v := tc.from; v <= tc.to; v++ {
				model = append(model, v)
			}
			pseudo := len(model)

			for step := 0; len(model) > 0; step++ {
				if r.Intn(3) == 0 {
					v := tc.from - 5 + r.Intn(tc.to-tc.from+10)
					l.Remove(v)
					pseudo--
					if j := sort.SearchInts(model, v); j < len(model) && model[j] == v {
						model = append(model[:j], model[j+1:]...)
					}
				} else {
					k := 1 + r.Intn(len(model))
					got := l.Choose(k)
					require.Equal(t, model[k-1], got, "step %d choose(%d)", step, k)
					model = append(model[:k-1], model[k:]...)
					pseudo--
				}
				require.Equal(t, len(model), l.Size(), "step %d", step)
				require.Equal(t, pseudo, l.PseudoSize(), "step %d", step)
			}
		})
	}
}

func BenchmarkChooseLarge(b *testing.B) {
	for i := 0; i < b.N; i++ {
		l := indexlist.New(1, 100000)
		for k := 0; k < 64; k++ {
			l.Choose(1 + (k*7919)%l.Size())
		}
	}
}
