package entity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hygra/entity"
)

// dupPairs holds the pair ("e","a") three times with a distinct trailing
// row, so weight columns of the duplicated group can be inspected directly.
func dupPairs() entity.Source {
	return entity.FromPairs([][2]string{
		{"e", "a"}, {"e", "a"}, {"e", "a"}, {"f", "b"},
	})
}

func TestWeights_ExplicitSequence(t *testing.T) {
	src := entity.FromPairs([][2]string{{"e", "a"}, {"e", "b"}})
	e, err := entity.New(src, entity.WithWeights([]float64{2.5, 4}))
	require.NoError(t, err)
	require.True(t, e.HasWeights())

	w, ok := e.CellWeight("e", "a")
	require.True(t, ok)
	require.Equal(t, 2.5, w)

	w, ok = e.CellWeight("e", "b")
	require.True(t, ok)
	require.Equal(t, 4.0, w)
}

func TestWeights_LengthMismatchFallsBackToOnes(t *testing.T) {
	src := entity.FromPairs([][2]string{{"e", "a"}, {"e", "b"}})
	e, err := entity.New(src, entity.WithWeights([]float64{2.5}))
	require.NoError(t, err)

	w, ok := e.CellWeight("e", "a")
	require.True(t, ok)
	require.Equal(t, 1.0, w)
}

func TestWeights_NamedColumn(t *testing.T) {
	src := entity.FromTable(
		[]string{"edges", "nodes", "w"},
		[][]string{
			{"e", "e", "f"},
			{"a", "b", "a"},
			{"10", "20", "30"},
		},
	)
	e, err := entity.New(src, entity.WithWeightColumn("w"))
	require.NoError(t, err)
	require.Equal(t, 2, e.Dimsize(), "weight column must not count as a level")

	w, ok := e.CellWeight("e", "b")
	require.True(t, ok)
	require.Equal(t, 20.0, w)
}

func TestWeights_MissingColumnIsOnes(t *testing.T) {
	src := entity.FromPairs([][2]string{{"e", "a"}})
	e, err := entity.New(src, entity.WithWeightColumn("nope"))
	require.NoError(t, err)

	w, ok := e.CellWeight("e", "a")
	require.True(t, ok)
	require.Equal(t, 1.0, w)
}

func TestAggregate_Methods(t *testing.T) {
	// weights 1,2,3 for the duplicated ("e","a") group; 7 for ("f","b").
	weights := []float64{1, 2, 3, 7}

	cases := []struct {
		by   entity.AggregateBy
		want float64
	}{
		{entity.AggregateSum, 6},
		{entity.AggregateFirst, 1},
		{entity.AggregateLast, 3},
		{entity.AggregateMax, 3},
		{entity.AggregateMin, 1},
		{entity.AggregateMean, 2},
		{entity.AggregateCount, 3},
	}
	for _, tc := range cases {
		t.Run(tc.by.String(), func(t *testing.T) {
			e, err := entity.New(dupPairs(),
				entity.WithWeights(weights),
				entity.WithAggregateBy(tc.by))
			require.NoError(t, err)
			require.Equal(t, 2, e.NumRows(), "duplicates must collapse")

			w, ok := e.CellWeight("e", "a")
			require.True(t, ok)
			require.Equal(t, tc.want, w)

			// the untouched group keeps its single weight (count excepted)
			w, ok = e.CellWeight("f", "b")
			require.True(t, ok)
			if tc.by == entity.AggregateCount {
				require.Equal(t, 1.0, w)
			} else {
				require.Equal(t, 7.0, w)
			}
		})
	}
}

func TestAggregate_NoneDropsWeights(t *testing.T) {
	e, err := entity.New(dupPairs(),
		entity.WithWeights([]float64{5, 2, 3, 7}),
		entity.WithAggregateBy(entity.AggregateNone))
	require.NoError(t, err)

	require.Equal(t, 2, e.NumRows(), "first occurrence of each tuple survives")
	require.False(t, e.HasWeights())

	// with the weight column gone every cell answers the implicit unit
	// weight, not the retained first-occurrence value
	for _, ids := range [][2]string{{"e", "a"}, {"f", "b"}} {
		w, ok := e.CellWeight(ids[0], ids[1])
		require.True(t, ok)
		require.Equal(t, 1.0, w, "cell (%s,%s)", ids[0], ids[1])
	}
}

// TestAggregate_Idempotence re-aggregates an already deduplicated store and
// expects a no-op: same rows, same weights.
func TestAggregate_Idempotence(t *testing.T) {
	e, err := entity.New(dupPairs(), entity.WithWeights([]float64{1, 2, 3, 7}))
	require.NoError(t, err)

	again, err := e.RestrictToRows([]int{0, 1})
	require.NoError(t, err)

	require.Equal(t, e.NumRows(), again.NumRows())
	require.Equal(t, e.RowWeights(), again.RowWeights())
	require.Equal(t, e.Elements(), again.Elements())
}

func TestAggregate_UnknownMethodIsOptionViolation(t *testing.T) {
	_, err := entity.New(dupPairs(), entity.WithAggregateBy(entity.AggregateBy(99)))
	require.ErrorIs(t, err, entity.ErrOptionViolation)
}
