package engine

import (
	"strings"

	"flexbi-engine/internal/model"
)

// identifierPatterns mark per-record label columns (roll numbers, serials).
// Identifier columns are always categorical-like and never numeric measures,
// whatever their cell values look like.
var identifierPatterns = []string{"id", "roll", "student", "serial", "number", "no.", "num"}

// locationPatterns mark geographic dimension columns, always categorical.
var locationPatterns = []string{
	"city", "taluk", "district", "region", "area",
	"location", "market", "state", "town", "village",
}

// valuePatterns mark measure-like numeric columns preferred for the Y axis.
var valuePatterns = []string{
	"marks", "score", "grade", "assignment", "test",
	"exam", "points", "percentage", "result",
}

// Thresholds are the classification ratios. The defaults (0.70 numeric,
// 0.30 categorical) are preserved from the reference behavior but kept
// configurable.
type Thresholds struct {
	NumericRatio     float64
	CategoricalRatio float64
}

// DefaultThresholds returns the reference ratios.
func DefaultThresholds() Thresholds {
	return Thresholds{NumericRatio: 0.70, CategoricalRatio: 0.30}
}

func matchesAny(name string, patterns []string) bool {
	lower := strings.ToLower(name)
	for _, p := range patterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// IsIdentifierName reports whether a column name looks like an identifier.
func IsIdentifierName(name string) bool { return matchesAny(name, identifierPatterns) }

// IsLocationName reports whether a column name looks like a location.
func IsLocationName(name string) bool { return matchesAny(name, locationPatterns) }

// IsValueName reports whether a column name looks like a measure.
func IsValueName(name string) bool { return matchesAny(name, valuePatterns) }

// Classify assigns every column its satisfied role predicates and a single
// precedence-resolved role. The numeric ratio divides by the total row count,
// not by the non-empty count, so sparse columns do not classify numeric.
func Classify(ds *model.Dataset, th Thresholds) map[string]model.Classification {
	out := make(map[string]model.Classification, len(ds.Columns))
	total := ds.RowCount()

	for _, col := range ds.Columns {
		c := model.Classification{
			Column:     col,
			Identifier: IsIdentifierName(col),
			Location:   IsLocationName(col),
		}

		numericCount, nonEmpty := 0, 0
		for _, row := range ds.Rows {
			v := row[col]
			if v.IsEmpty() {
				continue
			}
			nonEmpty++
			if v.Kind == model.KindNumber {
				numericCount++
			}
		}
		if total > 0 {
			c.NumericRatio = float64(numericCount) / float64(total)
			c.NonEmptyRatio = float64(nonEmpty) / float64(total)
		}

		c.Numeric = !c.Identifier && c.NumericRatio >= th.NumericRatio
		c.Categorical = c.Identifier || c.Location ||
			(!c.Numeric && c.NonEmptyRatio >= th.CategoricalRatio)

		switch {
		case c.Identifier:
			c.Role = model.RoleIdentifier
		case c.Location:
			c.Role = model.RoleLocation
		case c.Numeric:
			c.Role = model.RoleNumeric
		case c.Categorical:
			c.Role = model.RoleCategorical
		default:
			c.Role = model.RoleText
		}
		out[col] = c
	}
	return out
}
