package main

import (
	"flag"
	"fmt"
	"os"

	"flexbi-engine/internal/config"
	"flexbi-engine/internal/engine"
	"flexbi-engine/internal/ingest"
)

// One-shot profiler: ingest a file, print the classification, per-column
// statistics and the suggested chart axes. With -group and -value it also
// prints the aggregation those axes would chart.
func main() {
	filePath := flag.String("file", "", "CSV, TSV or Excel file to profile")
	cfgFile := flag.String("config", "", "path to flexbi.yaml (optional)")
	groupCol := flag.String("group", "", "group column for an aggregation preview")
	valueCol := flag.String("value", "", "value column for an aggregation preview")
	topN := flag.Int("top-n", 0, "keep only the first N aggregation rows")
	flag.Parse()

	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "usage: flexbi -file data.csv [-group Col -value Col]")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ config: %v\n", err)
		os.Exit(1)
	}
	thresholds := engine.Thresholds{
		NumericRatio:     cfg.Classifier.NumericRatio,
		CategoricalRatio: cfg.Classifier.CategoricalRatio,
	}

	ds, err := ingest.FromFile(*filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ ingest: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("📊 %s: %d columns, %d rows\n\n", ds.Name, len(ds.Columns), ds.RowCount())

	class := engine.Classify(ds, thresholds)
	profiles := engine.Profile(ds)

	for _, col := range ds.Columns {
		c := class[col]
		p := profiles[col]
		fmt.Printf("%-24s %-12s missing=%d (%.2f%%) unique=%d", col, c.Role, p.Missing, p.MissingPct, p.Unique)
		if p.Numeric != nil {
			fmt.Printf("  mean=%.2f median=%.2f min=%.2f max=%.2f stddev=%.2f",
				p.Numeric.Mean, p.Numeric.Median, p.Numeric.Min, p.Numeric.Max, p.Numeric.StdDev)
		} else if p.MostCommon != "" {
			fmt.Printf("  most_common=%q", p.MostCommon)
		}
		fmt.Println()
	}

	suggestion := engine.Suggest(ds.Columns, class)
	fmt.Printf("\n💡 Suggested axes: x=%s y=%s\n", suggestion.X, suggestion.Y)

	if *groupCol != "" && *valueCol != "" {
		if !ds.HasColumn(*groupCol) || !ds.HasColumn(*valueCol) {
			fmt.Fprintln(os.Stderr, "❌ unknown group or value column")
			os.Exit(1)
		}
		result := engine.Aggregate(ds, *groupCol, *valueCol, *topN)
		fmt.Printf("\n📈 %s by %s (grouped=%v):\n", *valueCol, *groupCol, result.Grouped)
		for _, row := range result.Rows {
			fmt.Printf("  %-24s %g\n", row.Key, row.Value)
		}
	}
}
