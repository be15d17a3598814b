package model

// Role is the chart-oriented semantic role of a column.
type Role string

const (
	RoleIdentifier  Role = "identifier"
	RoleLocation    Role = "location"
	RoleNumeric     Role = "numeric"
	RoleCategorical Role = "categorical"
	RoleText        Role = "text"
)

// Classification holds every satisfied role predicate for a column plus the
// precedence-resolved role (identifier > location > numeric > categorical >
// text). All predicates stay exposed so axis suggestion can reason over them
// independently of the single display role.
type Classification struct {
	Column        string  `json:"column"`
	Role          Role    `json:"role"`
	Identifier    bool    `json:"identifier"`
	Location      bool    `json:"location"`
	Numeric       bool    `json:"numeric"`
	Categorical   bool    `json:"categorical"`
	NumericRatio  float64 `json:"numeric_ratio"`
	NonEmptyRatio float64 `json:"non_empty_ratio"`
}

// NumericSummary is the full-dataset numeric summary of a column.
type NumericSummary struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Range  float64 `json:"range"`
	StdDev float64 `json:"std_dev"`
	Sum    float64 `json:"sum"`
	Count  int     `json:"count"`
}

// ValueCount is one categorical value and its frequency.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// ColumnProfile is computed once per dataset version over every row.
// Type reflects only whether any cell parsed as a number; it is independent
// of the classifier's chart role.
type ColumnProfile struct {
	Column     string          `json:"column"`
	Type       string          `json:"type"` // "numeric" or "categorical"
	Missing    int             `json:"missing"`
	MissingPct float64         `json:"missing_pct"`
	Unique     int             `json:"unique"`
	Numeric    *NumericSummary `json:"numeric,omitempty"`
	TopValues  []ValueCount    `json:"top_values,omitempty"`
	MostCommon string          `json:"most_common,omitempty"`
}
