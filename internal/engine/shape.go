package engine

import (
	"fmt"
	"sort"

	"go-funnel-dashboard/internal/model"
)

// ------------------- Payload Shape Classification -------------------

// The raw payload arrives in one of a small set of shapes. Classification is
// an explicit tagged-union step so the accepted shapes stay enumerable: the
// normalizer dispatches on payloadShape instead of duck-typing mid-loop.

type payloadShape int

const (
	shapeInvalid payloadShape = iota // not an object or array at all
	shapeNoRows                      // object, but no row list anywhere
	shapeObjectRows                  // rows are JSON objects
	shapeArrayRows                   // rows are positional arrays
)

// classifiedPayload is the result of shape sniffing: the row list, the
// column names (explicit, inferred, or synthesized), and how we got them.
type classifiedPayload struct {
	shape           payloadShape
	rows            []interface{}
	columnNames     []string
	columnsInferred bool // names synthesized, not declared or read from a row
}

// classifyPayload inspects a deserialized payload and extracts its rows and
// column names. It never fails hard: unusable inputs come back as
// shapeInvalid or shapeNoRows and the caller emits the matching warning.
func classifyPayload(input interface{}) classifiedPayload {
	var rows []interface{}
	var declared []string

	switch v := input.(type) {
	case []interface{}:
		rows = v
	case map[string]interface{}:
		rows = extractRowList(v)
		if rows == nil {
			return classifiedPayload{shape: shapeNoRows}
		}
		declared = extractColumnNames(v["columns"])
	default:
		return classifiedPayload{shape: shapeInvalid}
	}

	if len(rows) == 0 {
		return classifiedPayload{shape: shapeNoRows}
	}

	if firstRowIsArray(rows) {
		cp := classifiedPayload{shape: shapeArrayRows, rows: rows, columnNames: declared}
		if len(cp.columnNames) == 0 {
			// Positional rows with no declared names is the one genuinely
			// degraded case: col_N placeholders carry no meaning.
			cp.columnNames = synthesizeColumnNames(rows)
			cp.columnsInferred = true
		}
		return cp
	}

	// Object rows name themselves; reading the first row's keys is the
	// normal zero-config path and warrants no warning.
	cp := classifiedPayload{shape: shapeObjectRows, rows: rows, columnNames: declared}
	if len(cp.columnNames) == 0 {
		cp.columnNames = columnsFromFirstRow(rows)
	}
	return cp
}

// extractRowList pulls the row array out of a wrapping object. "rows" wins
// over "data"; neither present means no rows.
func extractRowList(obj map[string]interface{}) []interface{} {
	for _, key := range []string{"rows", "data"} {
		if v, ok := obj[key]; ok {
			if list, ok := v.([]interface{}); ok {
				return list
			}
		}
	}
	return nil
}

// extractColumnNames accepts the three declared-column shapes: a list of
// strings, a list of objects carrying name/key/label, or a plain object
// whose keys are the column names.
func extractColumnNames(v interface{}) []string {
	switch cols := v.(type) {
	case []interface{}:
		var names []string
		for _, c := range cols {
			switch col := c.(type) {
			case string:
				if col != "" {
					names = append(names, col)
				}
			case map[string]interface{}:
				if n := firstStringField(col, "name", "key", "label"); n != "" {
					names = append(names, n)
				}
			}
		}
		return names
	case map[string]interface{}:
		names := make([]string, 0, len(cols))
		for k := range cols {
			names = append(names, k)
		}
		sort.Strings(names)
		return names
	default:
		return nil
	}
}

func firstStringField(obj map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		if s, ok := obj[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func firstRowIsArray(rows []interface{}) bool {
	for _, r := range rows {
		if r == nil {
			continue
		}
		_, isArray := r.([]interface{})
		return isArray
	}
	return false
}

// synthesizeColumnNames produces col_0..col_{n-1} for positional rows with
// no declared column list, sized to the widest row.
func synthesizeColumnNames(rows []interface{}) []string {
	width := 0
	for _, r := range rows {
		if arr, ok := r.([]interface{}); ok && len(arr) > width {
			width = len(arr)
		}
	}
	names := make([]string, width)
	for i := range names {
		names[i] = fmt.Sprintf("col_%d", i)
	}
	return names
}

// columnsFromFirstRow infers names from the first object row's keys, sorted
// for determinism (JSON object order is not preserved through decoding).
func columnsFromFirstRow(rows []interface{}) []string {
	for _, r := range rows {
		if obj, ok := r.(map[string]interface{}); ok {
			names := make([]string, 0, len(obj))
			for k := range obj {
				names = append(names, k)
			}
			sort.Strings(names)
			return names
		}
	}
	return nil
}

// warnings converts a classification outcome into its informational
// warnings.
func (cp classifiedPayload) warnings() []model.NormalizationWarning {
	var ws []model.NormalizationWarning
	if cp.shape == shapeArrayRows {
		ws = append(ws, model.NormalizationWarning{
			Code:    model.WarnArrayRows,
			Message: "rows arrived as positional arrays; zipped against column names",
		})
	}
	if cp.columnsInferred {
		ws = append(ws, model.NormalizationWarning{
			Code:    model.WarnInferredColumns,
			Message: "no column list supplied for positional rows; synthesized placeholder names",
		})
	}
	return ws
}
