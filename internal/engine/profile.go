package engine

import (
	"math"
	"sort"
	"sync"

	"flexbi-engine/internal/model"
)

const topValueLimit = 5

// Profile computes a ColumnProfile for every column over the complete
// dataset. Accuracy over 100% of rows is deliberate; there is no sampling.
// Columns are independent, so they are profiled in parallel without touching
// shared input state. A dataset with zero records yields an empty mapping.
func Profile(ds *model.Dataset) map[string]model.ColumnProfile {
	out := make(map[string]model.ColumnProfile, len(ds.Columns))
	if ds.RowCount() == 0 {
		return out
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, col := range ds.Columns {
		wg.Add(1)
		go func(col string) {
			defer wg.Done()
			p := profileColumn(ds, col)
			mu.Lock()
			out[col] = p
			mu.Unlock()
		}(col)
	}
	wg.Wait()
	return out
}

func profileColumn(ds *model.Dataset, col string) model.ColumnProfile {
	total := ds.RowCount()
	p := model.ColumnProfile{Column: col}

	var nums []float64
	counts := make(map[string]int)
	var order []string // first-encountered order for frequency ties
	for _, row := range ds.Rows {
		v := row[col]
		if v.IsEmpty() {
			p.Missing++
			continue
		}
		if n, ok := v.Number(); ok {
			nums = append(nums, n)
		}
		key := v.String()
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}

	p.Unique = len(counts)
	p.MissingPct = round2(float64(p.Missing) / float64(total) * 100)

	// Any parseable number makes the profiler treat the column as numeric,
	// independently of the chart-role classification.
	if len(nums) > 0 {
		p.Type = "numeric"
		p.Numeric = numericSummary(nums)
		return p
	}

	p.Type = "categorical"
	p.TopValues = topValues(counts, order, topValueLimit)
	if len(p.TopValues) > 0 {
		p.MostCommon = p.TopValues[0].Value
	}
	return p
}

func numericSummary(nums []float64) *model.NumericSummary {
	s := &model.NumericSummary{Count: len(nums), Min: nums[0], Max: nums[0]}
	for _, n := range nums {
		s.Sum += n
		if n < s.Min {
			s.Min = n
		}
		if n > s.Max {
			s.Max = n
		}
	}
	s.Mean = s.Sum / float64(len(nums))
	s.Range = s.Max - s.Min

	var ss float64
	for _, n := range nums {
		d := n - s.Mean
		ss += d * d
	}
	// Population standard deviation, matching the reference formula.
	s.StdDev = math.Sqrt(ss / float64(len(nums)))

	sorted := append([]float64(nil), nums...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		s.Median = (sorted[mid-1] + sorted[mid]) / 2
	} else {
		s.Median = sorted[mid]
	}
	return s
}

// topValues sorts descending by count; ties keep first-encountered order.
func topValues(counts map[string]int, order []string, limit int) []model.ValueCount {
	vals := make([]model.ValueCount, 0, len(order))
	for _, key := range order {
		vals = append(vals, model.ValueCount{Value: key, Count: counts[key]})
	}
	sort.SliceStable(vals, func(i, j int) bool { return vals[i].Count > vals[j].Count })
	if len(vals) > limit {
		vals = vals[:limit]
	}
	return vals
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
