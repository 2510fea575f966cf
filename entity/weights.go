package entity

import "strconv"

// defaultWeight is the effective weight of a row that carries none.
const defaultWeight = 1.0

// resolveWeights produces one effective weight per table row and reports
// which columns hold level data.
//
// Resolution order, by design never failing:
//  1. an explicit sequence of the same length as the table installs verbatim;
//  2. otherwise a WeightColumn naming an existing column reuses that column
//     (non-numeric cells degrade to the default weight of 1);
//  3. otherwise every row weighs 1 (mismatched sequence lengths land here).
//
// Complexity: O(rows).
func resolveWeights(t *table, o *Options) (weights []float64, levelCols []int) {
	n := t.rowCount()

	if o.Weights != nil && len(o.Weights) == n {
		weights = append([]float64(nil), o.Weights...)
		levelCols = allColumns(len(t.columns))

		return weights, levelCols
	}

	if idx, ok := t.columnIndex(o.WeightColumn); ok && o.WeightColumn != "" {
		weights = make([]float64, n)
		for r, cell := range t.columns[idx] {
			w, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				w = defaultWeight
			}
			weights[r] = w
		}
		for c := range t.columns {
			if c != idx {
				levelCols = append(levelCols, c)
			}
		}

		return weights, levelCols
	}

	weights = make([]float64, n)
	for r := range weights {
		weights[r] = defaultWeight
	}

	return weights, allColumns(len(t.columns))
}

func allColumns(n int) []int {
	cols := make([]int, n)
	for i := range cols {
		cols[i] = i
	}

	return cols
}

// aggregateDuplicates collapses rows with identical level tuples, combining
// weights with the given method. Group order follows first appearance.
//
// With AggregateNone only the first occurrence of each tuple survives and
// weights are left uncombined; the second return reports whether a weight
// column remains meaningful (false exactly in the AggregateNone case, and
// for empty input, mirroring the "no column to report" edge case).
//
// Complexity: O(rows · dimsize).
func aggregateDuplicates(rows [][]string, weights []float64, by AggregateBy) ([][]string, []float64, bool) {
	if len(rows) == 0 {
		return rows, weights, false
	}

	index := make(map[string]int, len(rows))
	outRows := make([][]string, 0, len(rows))
	outWeights := make([]float64, 0, len(rows))
	counts := make([]int, 0, len(rows))

	for r, row := range rows {
		key := tupleKey(row)
		at, seen := index[key]
		if !seen {
			index[key] = len(outRows)
			outRows = append(outRows, row)
			if by == AggregateCount {
				outWeights = append(outWeights, 1)
			} else {
				outWeights = append(outWeights, weights[r])
			}
			counts = append(counts, 1)

			continue
		}
		counts[at]++
		switch by {
		case AggregateNone, AggregateFirst:
			// first occurrence wins
		case AggregateSum, AggregateMean:
			outWeights[at] += weights[r]
		case AggregateLast:
			outWeights[at] = weights[r]
		case AggregateMax:
			if weights[r] > outWeights[at] {
				outWeights[at] = weights[r]
			}
		case AggregateMin:
			if weights[r] < outWeights[at] {
				outWeights[at] = weights[r]
			}
		case AggregateCount:
			outWeights[at]++
		}
	}

	if by == AggregateMean {
		for i := range outWeights {
			outWeights[i] /= float64(counts[i])
		}
	}

	return outRows, outWeights, by != AggregateNone
}
