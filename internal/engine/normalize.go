package engine

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"go-funnel-dashboard/internal/model"
)

// ------------------- Dataset Normalization -------------------

// NormalizeDataset turns an arbitrary deserialized payload into a typed,
// sorted, warning-annotated dataset. specColumns, when supplied, pin the
// type (and percent scale) of matching columns; everything else is inferred.
//
// The call never panics and never returns an error: every failure mode
// degrades into warnings on an empty or partial dataset. Rows are never
// dropped: a cell that fails to parse becomes nil, a row that is not an
// object becomes an empty row, and the output row count always equals the
// input row count.
func NormalizeDataset(rawInput interface{}, specColumns []model.ColumnDescriptor) (ds model.NormalizedDataset) {
	defer func() {
		if r := recover(); r != nil {
			ds = model.EmptyDataset(model.NormalizationWarning{
				Code:    model.WarnNormalizationError,
				Message: fmt.Sprintf("normalization aborted: %v", r),
			})
		}
	}()

	cp := classifyPayload(rawInput)
	switch cp.shape {
	case shapeInvalid:
		return model.EmptyDataset(model.NormalizationWarning{
			Code:    model.WarnInvalidInput,
			Message: "input is not an object or array",
		})
	case shapeNoRows:
		return model.EmptyDataset(model.NormalizationWarning{
			Code:    model.WarnNoRows,
			Message: "no row array found in payload",
		})
	}

	warnings := cp.warnings()
	rawRows := materializeRows(cp, &warnings)

	columns := resolveColumns(cp.columnNames, rawRows, specColumns)
	rows := convertRows(rawRows, columns, &warnings)
	stats := computeStats(rows, columns)
	sortByDateColumn(rows, columns)

	if warnings == nil {
		warnings = []model.NormalizationWarning{}
	}
	return model.NormalizedDataset{
		Columns:  columns,
		Rows:     rows,
		Warnings: warnings,
		Stats:    stats,
	}
}

// materializeRows flattens positional or object rows into uniform raw maps.
// A row of the wrong kind is replaced by an empty map so its position
// survives.
func materializeRows(cp classifiedPayload, warnings *[]model.NormalizationWarning) []map[string]interface{} {
	out := make([]map[string]interface{}, len(cp.rows))

	for i, r := range cp.rows {
		switch row := r.(type) {
		case map[string]interface{}:
			if cp.shape == shapeObjectRows {
				out[i] = row
				continue
			}
		case []interface{}:
			if cp.shape == shapeArrayRows {
				m := make(map[string]interface{}, len(cp.columnNames))
				for j, name := range cp.columnNames {
					if j < len(row) {
						m[name] = row[j]
					}
				}
				out[i] = m
				continue
			}
		}

		out[i] = map[string]interface{}{}
		*warnings = append(*warnings, model.NormalizationWarning{
			Code:    model.WarnInvalidRow,
			Message: fmt.Sprintf("row %d is not a valid row shape; replaced with an empty row", i),
		})
	}
	return out
}

// resolveColumns builds the final column descriptors. A specColumns entry
// (matched by name) wins verbatim; explicit configuration always beats
// inference. Otherwise the type detector runs over up to sampleCap leading
// values, and percent columns additionally get scale detection.
func resolveColumns(names []string, rows []map[string]interface{}, specColumns []model.ColumnDescriptor) []model.ColumnDescriptor {
	declared := make(map[string]model.ColumnDescriptor, len(specColumns))
	for _, c := range specColumns {
		declared[c.Name] = c
	}

	columns := make([]model.ColumnDescriptor, 0, len(names))
	for _, name := range names {
		if c, ok := declared[name]; ok {
			c.Name = name
			if c.Type == model.ColumnPercent && c.Scale == "" {
				c.Scale = model.Scale0to1
			}
			columns = append(columns, c)
			continue
		}

		samples := sampleColumn(rows, name)
		col := model.ColumnDescriptor{
			Name: name,
			Type: DetectColumnType(name, samples),
		}
		if col.Type == model.ColumnPercent {
			col.Scale = detectScaleFromSamples(samples)
		}
		columns = append(columns, col)
	}
	return columns
}

func sampleColumn(rows []map[string]interface{}, name string) []interface{} {
	n := len(rows)
	if n > sampleCap {
		n = sampleCap
	}
	samples := make([]interface{}, 0, n)
	for _, row := range rows[:n] {
		samples = append(samples, row[name])
	}
	return samples
}

func detectScaleFromSamples(samples []interface{}) model.PercentScale {
	var parsed []float64
	for _, v := range samples {
		if f, ok := ParseNumber(v); ok {
			parsed = append(parsed, f)
		}
	}
	return DetectPercentScale(parsed)
}

// convertRows applies the per-type cell conversion to every row and column.
// Each output row has an entry for every column, nil when the raw cell was
// missing or unparseable.
func convertRows(rawRows []map[string]interface{}, columns []model.ColumnDescriptor, warnings *[]model.NormalizationWarning) []model.NormalizedRow {
	rows := make([]model.NormalizedRow, len(rawRows))
	for i, raw := range rawRows {
		row := make(model.NormalizedRow, len(columns))
		for _, col := range columns {
			row[col.Name] = convertCell(raw[col.Name], col, i, warnings)
		}
		rows[i] = row
	}
	return rows
}

func convertCell(raw interface{}, col model.ColumnDescriptor, rowIdx int, warnings *[]model.NormalizationWarning) interface{} {
	if raw == nil {
		return nil
	}

	switch col.Type {
	case model.ColumnDate:
		t, ok := ParseDate(raw)
		if !ok {
			if !isEmptyCell(raw) {
				*warnings = append(*warnings, model.NormalizationWarning{
					Code:    model.WarnInvalidDate,
					Column:  col.Name,
					Message: fmt.Sprintf("row %d: %v is not a recognizable date", rowIdx, raw),
				})
			}
			return nil
		}
		return t

	case model.ColumnNumber, model.ColumnCurrency:
		f, ok := ParseNumber(raw)
		if !ok {
			if !isEmptyCell(raw) {
				*warnings = append(*warnings, model.NormalizationWarning{
					Code:    model.WarnInvalidNumber,
					Column:  col.Name,
					Message: fmt.Sprintf("row %d: %v is not a recognizable number", rowIdx, raw),
				})
			}
			return nil
		}
		return f

	case model.ColumnPercent:
		f, ok := ParsePercent(raw, col.Scale)
		if !ok {
			if !isEmptyCell(raw) {
				*warnings = append(*warnings, model.NormalizationWarning{
					Code:    model.WarnInvalidNumber,
					Column:  col.Name,
					Message: fmt.Sprintf("row %d: %v is not a recognizable percent", rowIdx, raw),
				})
			}
			return nil
		}
		if f < 0 || f > 1 {
			*warnings = append(*warnings, model.NormalizationWarning{
				Code:    model.WarnOutOfRangePercent,
				Column:  col.Name,
				Message: fmt.Sprintf("row %d: %v is outside [0,1]", rowIdx, f),
			})
		}
		return f

	case model.ColumnBoolean:
		return convertBoolean(raw)

	default:
		// string / unknown: pass through unchanged
		return raw
	}
}

func isEmptyCell(raw interface{}) bool {
	s, ok := raw.(string)
	return ok && strings.TrimSpace(s) == ""
}

// convertBoolean accepts native booleans plus the common "true"/"1"/1 and
// "false"/"0"/0 encodings. Anything else is nil.
func convertBoolean(raw interface{}) interface{} {
	switch v := raw.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1":
			return true
		case "false", "0":
			return false
		}
		return nil
	case float64:
		if v == 1 {
			return true
		}
		if v == 0 {
			return false
		}
		return nil
	case int:
		if v == 1 {
			return true
		}
		if v == 0 {
			return false
		}
		return nil
	default:
		return nil
	}
}

// computeStats builds min/max/avg/null-count for numeric-family columns.
func computeStats(rows []model.NormalizedRow, columns []model.ColumnDescriptor) map[string]model.ColumnStats {
	stats := make(map[string]model.ColumnStats)

	for _, col := range columns {
		if !col.Type.IsNumeric() {
			continue
		}

		var (
			min, max, sum float64
			count, nulls  int
		)
		for _, row := range rows {
			f, ok := row[col.Name].(float64)
			if !ok {
				nulls++
				continue
			}
			if count == 0 || f < min {
				min = f
			}
			if count == 0 || f > max {
				max = f
			}
			sum += f
			count++
		}

		cs := model.ColumnStats{Nulls: nulls}
		if count > 0 {
			avg := sum / float64(count)
			mn, mx := min, max
			cs.Min, cs.Max, cs.Avg = &mn, &mx, &avg
		}
		stats[col.Name] = cs
	}
	return stats
}

// sortByDateColumn sorts rows ascending by the first date-typed column.
// nil dates sort last; the sort is stable so equal and missing dates keep
// their input order.
func sortByDateColumn(rows []model.NormalizedRow, columns []model.ColumnDescriptor) {
	dateCol := ""
	for _, col := range columns {
		if col.Type == model.ColumnDate {
			dateCol = col.Name
			break
		}
	}
	if dateCol == "" {
		return
	}

	sort.SliceStable(rows, func(i, j int) bool {
		ti, iOK := rows[i][dateCol].(time.Time)
		tj, jOK := rows[j][dateCol].(time.Time)
		if !iOK {
			return false // nil sorts last
		}
		if !jOK {
			return true
		}
		return ti.Before(tj)
	})
}
