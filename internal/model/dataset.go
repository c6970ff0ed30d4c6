package model

// ColumnType is the semantic type inferred (or declared) for a column.
type ColumnType string

const (
	ColumnDate     ColumnType = "date"
	ColumnNumber   ColumnType = "number"
	ColumnCurrency ColumnType = "currency"
	ColumnPercent  ColumnType = "percent"
	ColumnString   ColumnType = "string"
	ColumnBoolean  ColumnType = "boolean"
	ColumnUnknown  ColumnType = "unknown"
)

// IsNumeric reports whether values of this type carry float64 cells.
func (t ColumnType) IsNumeric() bool {
	return t == ColumnNumber || t == ColumnCurrency || t == ColumnPercent
}

// PercentScale says whether percent values arrive as fractions or as 0–100.
type PercentScale string

const (
	Scale0to1   PercentScale = "0to1"
	Scale0to100 PercentScale = "0to100"
)

// ColumnDescriptor describes one column of a dataset.
// Scale is only meaningful for percent columns.
type ColumnDescriptor struct {
	Name  string       `json:"name"`
	Type  ColumnType   `json:"type"`
	Scale PercentScale `json:"scale,omitempty"`
}

// NormalizedRow maps column name to a typed cell.
// Cell values are time.Time, float64, bool, string, or nil.
// nil means "present but unparseable or absent", never an error.
type NormalizedRow map[string]interface{}

// Warning codes emitted by the normalizer. Stable identifiers: callers and
// the run-history store key off these strings.
const (
	WarnInvalidInput       = "INVALID_INPUT"
	WarnNoRows             = "NO_ROWS"
	WarnArrayRows          = "ARRAY_ROWS"
	WarnInferredColumns    = "INFERRED_COLUMNS"
	WarnInvalidRow         = "INVALID_ROW"
	WarnInvalidDate        = "INVALID_DATE"
	WarnInvalidNumber      = "INVALID_NUMBER"
	WarnOutOfRangePercent  = "OUT_OF_RANGE_PERCENT"
	WarnNormalizationError = "NORMALIZATION_ERROR"
)

// NormalizationWarning records a recoverable problem found while normalizing.
// Warnings accumulate; they are never raised as errors.
type NormalizationWarning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Column  string `json:"column,omitempty"`
}

// ColumnStats holds min/max/avg over non-nil values plus the nil count.
// Computed only for numeric-family columns (number, currency, percent).
type ColumnStats struct {
	Min   *float64 `json:"min,omitempty"`
	Max   *float64 `json:"max,omitempty"`
	Avg   *float64 `json:"avg,omitempty"`
	Nulls int      `json:"nulls"`
}

// NormalizedDataset is the engine's output: a typed, sorted, warning-annotated
// dataset. Invariants: len(Rows) equals the input row count (rows are nulled
// per field, never dropped) and every row has an entry for every column.
type NormalizedDataset struct {
	Columns  []ColumnDescriptor     `json:"columns"`
	Rows     []NormalizedRow        `json:"rows"`
	Warnings []NormalizationWarning `json:"warnings"`
	Stats    map[string]ColumnStats `json:"stats"`
}

// EmptyDataset returns a valid dataset carrying only the given warnings.
func EmptyDataset(warnings ...NormalizationWarning) NormalizedDataset {
	if warnings == nil {
		warnings = []NormalizationWarning{}
	}
	return NormalizedDataset{
		Columns:  []ColumnDescriptor{},
		Rows:     []NormalizedRow{},
		Warnings: warnings,
		Stats:    map[string]ColumnStats{},
	}
}
