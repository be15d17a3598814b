package engine

import "flexbi-engine/internal/model"

// Suggestion is the default X/Y column pair used to pre-populate chart
// selectors after an upload.
type Suggestion struct {
	X string `json:"x"`
	Y string `json:"y"`
}

// Suggest recommends a default axis pairing from the classified columns.
//
// X prefers identifier columns, then locations, then any categorical column,
// falling back to the first declared column. Y prefers numeric columns whose
// name looks like a measure (marks, score, points...), then any numeric
// column, falling back to the second declared column. Columns are always
// scanned in declared order so the suggestion is deterministic.
func Suggest(columns []string, class map[string]model.Classification) Suggestion {
	var s Suggestion

	pickX := func(pred func(model.Classification) bool) string {
		for _, col := range columns {
			if c, ok := class[col]; ok && pred(c) {
				return col
			}
		}
		return ""
	}

	s.X = pickX(func(c model.Classification) bool { return c.Identifier })
	if s.X == "" {
		s.X = pickX(func(c model.Classification) bool { return c.Location })
	}
	if s.X == "" {
		s.X = pickX(func(c model.Classification) bool { return c.Categorical })
	}
	if s.X == "" && len(columns) > 0 {
		s.X = columns[0]
	}

	s.Y = pickX(func(c model.Classification) bool { return c.Numeric && IsValueName(c.Column) })
	if s.Y == "" {
		s.Y = pickX(func(c model.Classification) bool { return c.Numeric })
	}
	if s.Y == "" {
		if len(columns) > 1 {
			s.Y = columns[1]
		} else if len(columns) == 1 {
			s.Y = columns[0]
		}
	}

	// Plotting an identifier on Y is never useful; swap in the first numeric
	// column that is not identifier-like when one exists.
	if s.Y != "" && IsIdentifierName(s.Y) {
		if repl := pickX(func(c model.Classification) bool { return c.Numeric && !c.Identifier }); repl != "" {
			s.Y = repl
		}
	}
	return s
}
