package entity_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hygra/entity"
)

func triangle(t *testing.T, opts ...entity.Option) *entity.Entity {
	t.Helper()
	e, err := entity.New(entity.FromMap(map[string][]string{
		"e1": {"1", "2"},
		"e2": {"1", "2"},
		"e3": {"1", "2", "3"},
	}), opts...)
	require.NoError(t, err)
	return e
}

func TestEntity_Accessors(t *testing.T) {
	e := triangle(t, entity.WithUID("tri"))

	require.Equal(t, "tri", e.UID())
	require.False(t, e.IsStatic())
	require.Equal(t, 2, e.Dimsize())
	require.Equal(t, 7, e.NumRows())
	require.Equal(t, []int{3, 3}, e.Dimensions())

	n, err := e.Size(1)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.False(t, e.IsEmpty(0))

	edges, err := e.UIDSet(0)
	require.NoError(t, err)
	sort.Strings(edges)
	require.Equal(t, []string{"e1", "e2", "e3"}, edges)

	require.True(t, e.Contains(1, "3"))
	require.False(t, e.Contains(1, "e1"))
	require.False(t, e.Contains(0, "4"))
}

func TestEntity_LevelErrors(t *testing.T) {
	e := triangle(t)

	if _, err := e.Size(2); !errors.Is(err, entity.ErrLevel) {
		t.Fatalf("Size(2): want ErrLevel, got %v", err)
	}
	if _, err := e.UIDSet(-1); !errors.Is(err, entity.ErrLevel) {
		t.Fatalf("UIDSet(-1): want ErrLevel, got %v", err)
	}
	if _, err := e.ElementsByLevel(0, 2); !errors.Is(err, entity.ErrLevel) {
		t.Fatalf("ElementsByLevel(0,2): want ErrLevel, got %v", err)
	}
}

func TestEntity_Groupings(t *testing.T) {
	e := triangle(t)

	wantElements := map[string][]string{
		"e1": {"1", "2"},
		"e2": {"1", "2"},
		"e3": {"1", "2", "3"},
	}
	require.Equal(t, wantElements, e.Elements())

	wantMemberships := map[string][]string{
		"1": {"e1", "e2", "e3"},
		"2": {"e1", "e2", "e3"},
		"3": {"e3"},
	}
	require.Equal(t, wantMemberships, e.Memberships())

	// both directions agree with the explicit form
	byLevel, err := e.ElementsByLevel(1, 0)
	require.NoError(t, err)
	require.Equal(t, wantMemberships, byLevel)
}

// TestEntity_CopySafety mutates returned slices and maps and expects the
// store to be unaffected.
func TestEntity_CopySafety(t *testing.T) {
	e := triangle(t)

	e.Data()[0][0] = 99
	e.Labels()[0][0] = "mutated"
	e.Elements()["e1"][0] = "mutated"
	e.RowWeights()[0] = -1

	require.Equal(t, 0, e.Data()[0][0])
	require.NotEqual(t, "mutated", e.Labels()[0][0])
	require.Equal(t, []string{"1", "2"}, e.Elements()["e1"])
	require.Equal(t, 1.0, e.RowWeights()[0])
}

func TestEntity_RowsWhere(t *testing.T) {
	e := triangle(t)

	rows, err := e.RowsWhere(0, []string{"e3"})
	require.NoError(t, err)
	require.Len(t, rows, 3)

	rows, err = e.RowsWhere(1, []string{"3", "absent"})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	if _, err = e.RowsWhere(5, nil); !errors.Is(err, entity.ErrLevel) {
		t.Fatalf("RowsWhere(5): want ErrLevel, got %v", err)
	}
}

func TestEntity_AddRows(t *testing.T) {
	e := triangle(t)

	require.NoError(t, e.AddRows([][]string{{"e4", "4"}}, nil))
	require.Equal(t, 8, e.NumRows())
	require.True(t, e.Contains(0, "e4"))
	require.True(t, e.Contains(1, "4"))
	require.Equal(t, []int{4, 4}, e.Dimensions())

	// duplicate tuple combines under sum instead of growing the store
	require.NoError(t, e.AddRows([][]string{{"e4", "4"}}, []float64{5}))
	require.Equal(t, 8, e.NumRows())
	w, ok := e.CellWeight("e4", "4")
	require.True(t, ok)
	require.Equal(t, 6.0, w)
}

func TestEntity_AddRows_Errors(t *testing.T) {
	e := triangle(t)

	err := e.AddRows([][]string{{"only-one-id"}}, nil)
	require.ErrorIs(t, err, entity.ErrSchema)
	require.Equal(t, 7, e.NumRows(), "store untouched on error")

	err = e.AddRows([][]string{{"e4", "4"}}, []float64{1, 2})
	require.ErrorIs(t, err, entity.ErrSchema)

	frozen := triangle(t, entity.WithStatic())
	require.ErrorIs(t, frozen.AddRows([][]string{{"e4", "4"}}, nil), entity.ErrImmutable)
}

func TestEntity_RemoveRows(t *testing.T) {
	e := triangle(t)

	removed, err := e.RemoveRows(func(row []string) bool { return row[0] == "e3" })
	require.NoError(t, err)
	require.Equal(t, 3, removed)
	require.Equal(t, 4, e.NumRows())
	require.False(t, e.Contains(0, "e3"))
	require.False(t, e.Contains(1, "3"), "presence reflects rows, not label lists")
	require.Equal(t, []int{2, 2}, e.Dimensions())

	removed, err = e.RemoveRows(nil)
	require.NoError(t, err)
	require.Zero(t, removed)

	frozen := triangle(t, entity.WithStatic())
	if _, err = frozen.RemoveRows(func([]string) bool { return true }); !errors.Is(err, entity.ErrImmutable) {
		t.Fatalf("static RemoveRows: want ErrImmutable, got %v", err)
	}
}

// TestEntity_CacheConsistency interleaves derived queries with mutations and
// checks the answers against a store rebuilt from scratch at each step.
func TestEntity_CacheConsistency(t *testing.T) {
	e := triangle(t)

	_ = e.Elements() // warm the cache
	_ = e.Dimensions()

	require.NoError(t, e.AddRows([][]string{{"e4", "4"}, {"e4", "1"}}, nil))
	removed, err := e.RemoveRows(func(row []string) bool { return row[0] == "e1" })
	require.NoError(t, err)
	require.Equal(t, 2, removed)

	fresh, err := entity.New(entity.FromMap(map[string][]string{
		"e2": {"1", "2"},
		"e3": {"1", "2", "3"},
		"e4": {"4", "1"},
	}))
	require.NoError(t, err)

	require.Equal(t, fresh.Elements(), e.Elements())
	require.Equal(t, fresh.Memberships(), e.Memberships())
	require.Equal(t, fresh.Dimensions(), e.Dimensions())
}

func TestEntity_CellWeight_Misses(t *testing.T) {
	e := triangle(t)

	if _, ok := e.CellWeight("e1", "3"); ok {
		t.Fatal("absent tuple must miss")
	}
	if _, ok := e.CellWeight("e1"); ok {
		t.Fatal("wrong arity must miss")
	}
	if _, ok := e.CellWeight("nope", "nope"); ok {
		t.Fatal("unknown ids must miss")
	}
}

func TestRestrictToLevels_Dual(t *testing.T) {
	e := triangle(t, entity.WithWeights([]float64{1, 2, 3, 4, 5, 6, 7}))

	dual, err := e.RestrictToLevels([]int{1, 0})
	require.NoError(t, err)
	require.True(t, dual.HasWeights(), "permutation keeps weights")
	require.Equal(t, e.Elements(), dual.Memberships())
	require.Equal(t, e.Memberships(), dual.Elements())

	// cell weights survive with swapped key order
	w, ok := dual.CellWeight("3", "e3")
	require.True(t, ok)
	ew, ok := e.CellWeight("e3", "3")
	require.True(t, ok)
	require.Equal(t, ew, w)
}

func TestRestrictToLevels_Projection(t *testing.T) {
	e := triangle(t, entity.WithWeights([]float64{1, 2, 3, 4, 5, 6, 7}))

	nodes, err := e.RestrictToLevels([]int{1})
	require.NoError(t, err)
	require.Equal(t, 1, nodes.Dimsize())
	require.Equal(t, 3, nodes.NumRows(), "projection collapses duplicates")
	require.False(t, nodes.HasWeights(), "proper subset drops weights")
	require.True(t, nodes.Contains(0, "3"))
}

func TestRestrictToLevels_Errors(t *testing.T) {
	e := triangle(t)

	for name, levels := range map[string][]int{
		"empty":        {},
		"out of range": {0, 2},
		"negative":     {-1},
		"repeated":     {0, 0},
	} {
		if _, err := e.RestrictToLevels(levels); !errors.Is(err, entity.ErrLevel) {
			t.Errorf("%s: want ErrLevel, got %v", name, err)
		}
	}
}

func TestRestrictToRows(t *testing.T) {
	e := triangle(t, entity.WithWeights([]float64{1, 2, 3, 4, 5, 6, 7}))

	rows, err := e.RowsWhere(0, []string{"e3"})
	require.NoError(t, err)
	sub, err := e.RestrictToRows(rows)
	require.NoError(t, err)

	require.Equal(t, map[string][]string{"e3": {"1", "2", "3"}}, sub.Elements())
	require.Equal(t, []float64{5, 6, 7}, sub.RowWeights())

	// duplicate indices collapse
	dup, err := e.RestrictToRows([]int{0, 0, 1})
	require.NoError(t, err)
	require.Equal(t, 2, dup.NumRows())

	if _, err = e.RestrictToRows([]int{42}); !errors.Is(err, entity.ErrRowIndex) {
		t.Fatalf("out-of-range index: want ErrRowIndex, got %v", err)
	}
}

// TestRestrictToRows_Composes checks that restricting twice equals one
// restriction by the composed index list.
func TestRestrictToRows_Composes(t *testing.T) {
	e := triangle(t)

	once, err := e.RestrictToRows([]int{2, 3, 4, 5, 6})
	require.NoError(t, err)
	twice, err := once.RestrictToRows([]int{0, 1})
	require.NoError(t, err)
	direct, err := e.RestrictToRows([]int{2, 3})
	require.NoError(t, err)

	require.Equal(t, direct.Elements(), twice.Elements())
	require.Equal(t, direct.RowWeights(), twice.RowWeights())
}

func TestEntity_EmptyStore(t *testing.T) {
	e, err := entity.New(entity.FromPairs(nil))
	require.NoError(t, err)

	require.Zero(t, e.NumRows())
	require.Equal(t, 2, e.Dimsize())
	require.True(t, e.IsEmpty(0))
	require.Empty(t, e.Elements())
}

func TestDefaultOptions(t *testing.T) {
	o := entity.DefaultOptions()
	if o.Static || o.Aggregate != entity.AggregateSum || o.Weights != nil {
		t.Fatalf("unexpected defaults: %+v", o)
	}
}

func TestAggregateBy_String(t *testing.T) {
	pairs := map[entity.AggregateBy]string{
		entity.AggregateSum:   "sum",
		entity.AggregateNone:  "none",
		entity.AggregateMean:  "mean",
		entity.AggregateBy(9): "AggregateBy(9)",
	}
	for a, want := range pairs {
		if got := a.String(); got != want {
			t.Errorf("String(%d) = %q; want %q", uint8(a), got, want)
		}
	}
	if entity.AggregateBy(9).Valid() {
		t.Error("AggregateBy(9) must not be valid")
	}
	if !entity.AggregateCount.Valid() {
		t.Error("AggregateCount must be valid")
	}
}
