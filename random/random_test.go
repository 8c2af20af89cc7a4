package random_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netgen/random"
)

// TestNextRaw_ReferenceSequence pins the first ten states for the canonical
// NETGEN seed; any deviation breaks byte-identical output downstream.
func TestNextRaw_ReferenceSequence(t *testing.T) {
	t.Parallel()

	e, err := random.New(13502460)
	require.NoError(t, err)

	want := []int64{
		1450062285, 1552397839, 1371652670, 129474145, 671020604,
		1406661031, 104478194, 1470866959, 1176719296, 944302649,
	}
	got := make([]int64, 0, len(want))
	for range want {
		got = append(got, e.NextRaw())
	}
	require.Equal(t, want, got)
	assert.Equal(t, want[len(want)-1], e.State())
}

// TestUniformInt_FullRangeMatchesRaw checks that [0, Modulus-1] returns the
// raw state unchanged.
func TestUniformInt_FullRangeMatchesRaw(t *testing.T) {
	t.Parallel()

	a, err := random.New(13502460)
	require.NoError(t, err)
	b, err := random.New(13502460)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		require.Equal(t, b.NextRaw(), a.UniformInt(0, random.Modulus-1), "draw %d", i)
	}
}

func TestUniformInt_Range(t *testing.T) {
	t.Parallel()

	e, err := random.New(42)
	require.NoError(t, err)
	for i := 0; i < 1000; i++ {
		v := e.UniformInt(5, 10)
		require.GreaterOrEqual(t, v, int64(5))
		require.LessOrEqual(t, v, int64(10))
	}
}

// TestUniformInt_DegenerateRangeAdvances verifies that high <= low returns
// high but still consumes one state.
func TestUniformInt_DegenerateRangeAdvances(t *testing.T) {
	t.Parallel()

	e, err := random.New(1)
	require.NoError(t, err)
	ref, err := random.New(1)
	require.NoError(t, err)

	assert.Equal(t, int64(5), e.UniformInt(5, 5))
	assert.Equal(t, int64(3), e.UniformInt(10, 3))
	assert.Equal(t, int64(0), e.UniformInt(1, 0))

	ref.NextRaw()
	ref.NextRaw()
	ref.NextRaw()
	assert.Equal(t, ref.State(), e.State())
}

func TestNew_RejectsBadSeeds(t *testing.T) {
	t.Parallel()

	for _, seed := range []int64{0, -1, random.Modulus, random.Modulus + 10} {
		_, err := random.New(seed)
		require.Error(t, err, "seed %d", seed)
		assert.True(t, errors.Is(err, random.ErrBadSeed))
	}

	_, err := random.New(random.Modulus - 1)
	require.NoError(t, err)
}

// TestEngines_AreIndependent ensures two engines never share state.
func TestEngines_AreIndependent(t *testing.T) {
	t.Parallel()

	a, _ := random.New(7)
	b, _ := random.New(7)
	a.NextRaw()
	a.NextRaw()
	first := b.NextRaw()

	c, _ := random.New(7)
	assert.Equal(t, c.NextRaw(), first)
}

func BenchmarkUniformInt(b *testing.B) {
	e, _ := random.New(13502460)
	for i := 0; i < b.N; i++ {
		_ = e.UniformInt(1, 100)
	}
}
