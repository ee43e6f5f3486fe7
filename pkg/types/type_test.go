package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryDefaultEffectiveness(t *testing.T) {
	r := NewRegistry()
	a := r.NewType("a")
	b := r.NewType("b")

	assert.Equal(t, DefaultEffectiveness, r.Effectiveness(a, b))
	assert.Equal(t, DefaultEffectiveness, r.Effectiveness(b, a))
	assert.Equal(t, DefaultEffectiveness, r.Effectiveness(a, a))
}

func TestRegistrySetEffectiveness(t *testing.T) {
	tests := []struct {
		name       string
		multiplier float64
	}{
		{name: "super effective", multiplier: 2.0},
		{name: "not very effective", multiplier: 0.5},
		{name: "immune", multiplier: 0.0},
		{name: "quadruple", multiplier: 4.0},
		{name: "negative stored as-is", multiplier: -1.5},
		{name: "explicit neutral", multiplier: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			a := r.NewType("a")
			b := r.NewType("b")

			require.NoError(t, r.SetEffectiveness(a, b, tt.multiplier))
			assert.Equal(t, tt.multiplier, r.Effectiveness(a, b))
		})
	}
}

func TestRegistrySetEffectivenessStoresNaN(t *testing.T) {
	r := NewRegistry()
	a := r.NewType("a")

	require.NoError(t, r.SetEffectiveness(a, a, math.NaN()))
	assert.True(t, math.IsNaN(r.Effectiveness(a, a)))
}

func TestRegistryInsertionOrderIndependent(t *testing.T) {
	forward := NewRegistry()
	backward := NewRegistry()
	var fwd, bwd []TypeID
	for _, name := range []string{"a", "b", "c"} {
		fwd = append(fwd, forward.NewType(name))
		bwd = append(bwd, backward.NewType(name))
	}

	type entry struct {
		d, a int
		m    float64
	}
	entries := []entry{{0, 1, 2.0}, {1, 2, 0.5}, {2, 0, 0.0}, {0, 2, 4.0}}

	for _, e := range entries {
		require.NoError(t, forward.SetEffectiveness(fwd[e.d], fwd[e.a], e.m))
	}
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		require.NoError(t, backward.SetEffectiveness(bwd[e.d], bwd[e.a], e.m))
	}

	for _, e := range entries {
		assert.Equal(t, e.m, forward.Effectiveness(fwd[e.d], fwd[e.a]))
		assert.Equal(t, e.m, backward.Effectiveness(bwd[e.d], bwd[e.a]))
	}
}

func TestRegistryAsymmetry(t *testing.T) {
	r := NewRegistry()
	a := r.NewType("a")
	b := r.NewType("b")

	require.NoError(t, r.SetEffectiveness(a, b, 2.0))
	assert.Equal(t, DefaultEffectiveness, r.Effectiveness(b, a), "reverse pair must stay at default")

	require.NoError(t, r.SetEffectiveness(b, a, 0.5))
	require.NoError(t, r.SetEffectiveness(a, b, 0.0))
	assert.Equal(t, 0.5, r.Effectiveness(b, a), "reverse pair keeps its own value")
	assert.Equal(t, 0.0, r.Effectiveness(a, b))
}

func TestRegistrySelfEffectiveness(t *testing.T) {
	t.Run("only node", func(t *testing.T) {
		r := NewRegistry()
		a := r.NewType("only type")

		require.NoError(t, r.SetEffectiveness(a, a, 2.0))
		assert.Equal(t, 2.0, r.Effectiveness(a, a))
	})

	t.Run("one of many", func(t *testing.T) {
		r := NewRegistry()
		for i := 0; i < 10; i++ {
			r.NewType("filler")
		}
		a := r.NewType("self")
		r.NewType("after")

		require.NoError(t, r.SetEffectiveness(a, a, 2.0))
		assert.Equal(t, 2.0, r.Effectiveness(a, a))
		for _, other := range r.Types() {
			if other == a {
				continue
			}
			assert.Equal(t, DefaultEffectiveness, r.Effectiveness(a, other))
			assert.Equal(t, DefaultEffectiveness, r.Effectiveness(other, a))
		}
	})
}

func TestRegistryOverwrite(t *testing.T) {
	r := NewRegistry()
	a := r.NewType("a")
	b := r.NewType("b")

	require.NoError(t, r.SetEffectiveness(a, b, 2.0))
	require.NoError(t, r.SetEffectiveness(a, b, 0.5))

	assert.Equal(t, 0.5, r.Effectiveness(a, b))
	assert.Len(t, r.Relations(a), 1, "overwrite must not add a second entry")
}

func TestRegistryDuplicateNamesAreIndependent(t *testing.T) {
	r := NewRegistry()
	first := r.NewType("twin")
	second := r.NewType("twin")
	other := r.NewType("other")

	require.NotEqual(t, first, second)
	n1, err := r.Name(first)
	require.NoError(t, err)
	n2, err := r.Name(second)
	require.NoError(t, err)
	assert.Equal(t, n1, n2)

	require.NoError(t, r.SetEffectiveness(first, other, 2.0))
	require.NoError(t, r.SetEffectiveness(other, first, 0.5))

	assert.Equal(t, 2.0, r.Effectiveness(first, other))
	assert.Equal(t, DefaultEffectiveness, r.Effectiveness(second, other))
	assert.Equal(t, 0.5, r.Effectiveness(other, first))
	assert.Equal(t, DefaultEffectiveness, r.Effectiveness(other, second))
	assert.Empty(t, r.Relations(second))
}

func TestRegistryFireWater(t *testing.T) {
	r := NewRegistry()
	fire := r.NewType("fire")
	water := r.NewType("water")

	// Water hits fire for 2.0.
	require.NoError(t, r.SetEffectiveness(fire, water, 2.0))

	assert.Equal(t, 2.0, r.Effectiveness(fire, water))
	assert.Equal(t, 1.0, r.Effectiveness(water, fire))
}

func TestRegistryGhostSelfRelationRepeated(t *testing.T) {
	for i := 0; i < 1000; i++ {
		r := NewRegistry()
		ghost := r.NewType("ghost")

		require.NoError(t, r.SetEffectiveness(ghost, ghost, 2.0))
		require.Equal(t, 2.0, r.Effectiveness(ghost, ghost))

		// Still usable after the self-relation.
		normal := r.NewType("normal")
		require.NoError(t, r.SetEffectiveness(ghost, normal, 0.0))
		require.NoError(t, r.SetEffectiveness(ghost, ghost, 0.5))
		require.Equal(t, 0.0, r.Effectiveness(ghost, normal))
		require.Equal(t, 0.5, r.Effectiveness(ghost, ghost))
	}
}

func TestRegistryRenameKeepsRelations(t *testing.T) {
	r := NewRegistry()
	a := r.NewType("a")
	b := r.NewType("b")
	require.NoError(t, r.SetEffectiveness(a, b, 2.0))

	require.NoError(t, r.Rename(b, "renamed"))
	require.NoError(t, r.Rename(a, "renamed"))

	assert.Equal(t, 2.0, r.Effectiveness(a, b))
	name, err := r.Name(b)
	require.NoError(t, err)
	assert.Equal(t, "renamed", name)
}

func TestRegistryUnknownIDs(t *testing.T) {
	r := NewRegistry()
	a := r.NewType("a")
	foreign := TypeID(42)

	assert.ErrorIs(t, r.SetEffectiveness(a, foreign, 2.0), ErrTypeNotFound)
	assert.ErrorIs(t, r.SetEffectiveness(foreign, a, 2.0), ErrTypeNotFound)
	assert.ErrorIs(t, r.SetEffectiveness(TypeID(-1), a, 2.0), ErrTypeNotFound)
	assert.Equal(t, DefaultEffectiveness, r.Effectiveness(a, foreign))
	assert.Equal(t, DefaultEffectiveness, r.Effectiveness(foreign, a))
	assert.Empty(t, r.Relations(foreign))

	_, err := r.Name(foreign)
	assert.ErrorIs(t, err, ErrTypeNotFound)
	assert.ErrorIs(t, r.Rename(foreign, "x"), ErrTypeNotFound)
}

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()
	fire := r.NewType("fire")
	first := r.NewType("twin")
	second := r.NewType("twin")

	got, err := r.Lookup("fire")
	require.NoError(t, err)
	assert.Equal(t, fire, got)

	got, err = r.Lookup("twin")
	require.NoError(t, err)
	assert.Equal(t, first, got, "lookup returns the lowest ID")

	assert.Equal(t, []TypeID{first, second}, r.LookupAll("twin"))
	assert.Empty(t, r.LookupAll("missing"))

	_, err = r.Lookup("missing")
	assert.ErrorIs(t, err, ErrTypeNotFound)
}

func TestRegistryRelationsIsCopy(t *testing.T) {
	r := NewRegistry()
	a := r.NewType("a")
	b := r.NewType("b")
	require.NoError(t, r.SetEffectiveness(a, b, 2.0))

	rel := r.Relations(a)
	rel[b] = 9.0
	rel[a] = 9.0

	assert.Equal(t, 2.0, r.Effectiveness(a, b))
	assert.Equal(t, DefaultEffectiveness, r.Effectiveness(a, a))
}

func TestRegistryTypesAndLen(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.Types())

	a := r.NewType("a")
	b := r.NewType("b")
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []TypeID{a, b}, r.Types())
}

func TestRegistryConcurrentReads(t *testing.T) {
	r := NewRegistry()
	a := r.NewType("a")
	b := r.NewType("b")
	require.NoError(t, r.SetEffectiveness(a, b, 2.0))

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				_ = r.Effectiveness(a, b)
				_ = r.SetEffectiveness(b, a, float64(j))
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
	assert.Equal(t, 2.0, r.Effectiveness(a, b))
}

func TestRegistryIDsAreScopedToTheirRegistry(t *testing.T) {
	r1 := NewRegistry()
	fire := r1.NewType("fire")
	water := r1.NewType("water")
	require.NoError(t, r1.SetEffectiveness(fire, water, 2.0))

	r2 := NewRegistry()
	ghost := r2.NewType("ghost")
	assert.Equal(t, fire, ghost, "both registries start numbering at zero")

	name, err := r2.Name(fire)
	require.NoError(t, err)
	assert.Equal(t, "ghost", name)

	_, err = r2.Name(water)
	assert.ErrorIs(t, err, ErrTypeNotFound)
	assert.Equal(t, DefaultEffectiveness, r2.Effectiveness(fire, water))
	assert.ErrorIs(t, r2.SetEffectiveness(fire, water, 0.5), ErrTypeNotFound)
	assert.Equal(t, 2.0, r1.Effectiveness(fire, water))
}
