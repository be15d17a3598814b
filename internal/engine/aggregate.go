package engine

import (
	"sort"
	"strconv"

	"flexbi-engine/internal/model"
)

// Aggregate reduces the dataset to a chart-ready series keyed by groupCol.
//
// Identifier-like group columns are never summed: a roll number's paired
// marks collapse into a meaningless total, so each valid record is emitted
// as its own row, sorted by key (numeric ascending when every key parses,
// lexicographic otherwise). All other group columns are grouped by exact
// string key, their numeric values summed, and sorted descending by sum.
//
// topN, when positive, slices the sorted result. The function is pure:
// identical inputs always produce identical output ordering.
func Aggregate(ds *model.Dataset, groupCol, valueCol string, topN int) model.AggregationResult {
	if IsIdentifierName(groupCol) {
		return aggregateByRecord(ds, groupCol, valueCol, topN)
	}
	return aggregateBySum(ds, groupCol, valueCol, topN)
}

func aggregateByRecord(ds *model.Dataset, groupCol, valueCol string, topN int) model.AggregationResult {
	res := model.AggregationResult{GroupColumn: groupCol, ValueColumn: valueCol, Grouped: false}

	allNumeric := true
	for _, row := range ds.Rows {
		key := row[groupCol]
		val, ok := row[valueCol].Number()
		if key.IsEmpty() || !ok {
			continue
		}
		if _, err := strconv.ParseFloat(key.String(), 64); err != nil {
			allNumeric = false
		}
		res.Rows = append(res.Rows, model.AggRow{Key: key.String(), Value: val})
	}

	if allNumeric {
		sort.SliceStable(res.Rows, func(i, j int) bool {
			a, _ := strconv.ParseFloat(res.Rows[i].Key, 64)
			b, _ := strconv.ParseFloat(res.Rows[j].Key, 64)
			return a < b
		})
	} else {
		sort.SliceStable(res.Rows, func(i, j int) bool {
			return res.Rows[i].Key < res.Rows[j].Key
		})
	}

	if topN > 0 && len(res.Rows) > topN {
		res.Rows = res.Rows[:topN]
	}
	return res
}

func aggregateBySum(ds *model.Dataset, groupCol, valueCol string, topN int) model.AggregationResult {
	res := model.AggregationResult{GroupColumn: groupCol, ValueColumn: valueCol, Grouped: true}

	sums := make(map[string]float64)
	var order []string
	for _, row := range ds.Rows {
		key := row[groupCol]
		val, ok := row[valueCol].Number()
		if key.IsEmpty() || !ok {
			continue
		}
		k := key.String()
		if _, seen := sums[k]; !seen {
			order = append(order, k)
		}
		sums[k] += val
	}

	res.Rows = make([]model.AggRow, 0, len(order))
	for _, k := range order {
		res.Rows = append(res.Rows, model.AggRow{Key: k, Value: sums[k]})
	}
	// Descending by summed value; key ascending breaks ties so ordering is
	// deterministic across runs.
	sort.SliceStable(res.Rows, func(i, j int) bool {
		if res.Rows[i].Value != res.Rows[j].Value {
			return res.Rows[i].Value > res.Rows[j].Value
		}
		return res.Rows[i].Key < res.Rows[j].Key
	})

	if topN > 0 && len(res.Rows) > topN {
		res.Rows = res.Rows[:topN]
	}
	return res
}
