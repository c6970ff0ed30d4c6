package engine

import (
	"strings"

	"go-funnel-dashboard/internal/model"
)

// ------------------- Column Type Detection -------------------

// Name-pattern keyword tables. These are static lookup data, loaded once and
// never mutated. Portuguese and English variants both appear because the
// payloads mix locales freely.
var (
	dateNameHints = []string{
		"dia", "date", "data", "day", "mes", "month",
		"created_at", "updated_at", "timestamp", "periodo",
	}
	percentNameHints = []string{
		"taxa_", "rate_", "percent", "pct", "%", "conversion", "conversao", "ratio",
	}
	currencyNameHints = []string{
		"custo", "cpl", "cac", "valor", "price", "preco", "investimento",
		"revenue", "receita", "faturamento", "ticket", "spend", "cost",
	}
	countNameHints = []string{
		"_total", "_count", "leads", "vendas", "venda", "reuniao", "reunioes",
		"entrada", "qtd", "quantidade", "count",
	}
)

// sampleCap limits how many leading rows feed value-based detection.
const sampleCap = 10

// DetectColumnType infers the semantic type of a column from its name and,
// failing that, from a sample of its values.
//
// Name matching runs first so a well-named column wins even when its sample
// happens to look like something else ("taxa_venda" holding "0" strings must
// stay percent). Category precedence is fixed: date > percent > currency >
// count. Value sniffing is the zero-config fallback.
func DetectColumnType(columnName string, samples []interface{}) model.ColumnType {
	name := strings.ToLower(strings.TrimSpace(columnName))

	if matchesAny(name, dateNameHints) {
		return model.ColumnDate
	}
	if matchesAny(name, percentNameHints) {
		return model.ColumnPercent
	}
	if matchesAny(name, currencyNameHints) {
		return model.ColumnCurrency
	}
	if matchesAny(name, countNameHints) {
		return model.ColumnNumber
	}

	return detectByValues(samples)
}

func matchesAny(name string, hints []string) bool {
	for _, h := range hints {
		if strings.Contains(name, h) {
			return true
		}
	}
	return false
}

// detectByValues classifies a column purely from sampled cell values.
// A category wins only when every non-nil sample fits it.
func detectByValues(samples []interface{}) model.ColumnType {
	nonNull := 0
	dates, numbers, booleans := 0, 0, 0

	for _, v := range samples {
		if v == nil {
			continue
		}
		if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
			continue
		}
		nonNull++

		if isBooleanLike(v) {
			booleans++
			// "true"/"false" never parse as numbers or dates; no double count.
			continue
		}
		switch v.(type) {
		case float64, float32, int, int64:
			// Raw numbers are numbers. ParseDate would also accept them as
			// UNIX timestamps, which must not win during sniffing.
			numbers++
		default:
			if _, ok := ParseDate(v); ok {
				dates++
			}
			if _, ok := ParseNumber(v); ok {
				numbers++
			}
		}
	}

	if nonNull == 0 {
		return model.ColumnUnknown
	}

	switch {
	case dates == nonNull:
		return model.ColumnDate
	case numbers == nonNull:
		return model.ColumnNumber
	case booleans == nonNull:
		return model.ColumnBoolean
	default:
		return model.ColumnString
	}
}

func isBooleanLike(v interface{}) bool {
	switch val := v.(type) {
	case bool:
		return true
	case string:
		s := strings.ToLower(strings.TrimSpace(val))
		return s == "true" || s == "false"
	default:
		return false
	}
}
