package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-funnel-dashboard/internal/model"
)

func TestDetectColumnTypeByName(t *testing.T) {
	tests := []struct {
		name   string
		column string
		want   model.ColumnType
	}{
		{"dia is a date", "dia", model.ColumnDate},
		{"created_at is a date", "created_at", model.ColumnDate},
		{"taxa prefix is percent", "taxa_venda", model.ColumnPercent},
		{"conversion is percent", "conversion", model.ColumnPercent},
		{"custo is currency", "custo_total", model.ColumnCurrency},
		{"cpl is currency", "cpl", model.ColumnCurrency},
		{"cac is currency", "cac", model.ColumnCurrency},
		{"leads is a count", "leads_total", model.ColumnNumber},
		{"qtd is a count", "qtd_itens", model.ColumnNumber},
		{"case and whitespace insensitive", "  CUSTO_TOTAL  ", model.ColumnCurrency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectColumnType(tt.column, nil))
		})
	}
}

func TestDetectColumnTypeNameBeatsValues(t *testing.T) {
	// A well-named column keeps its name-derived type even when the sampled
	// values would sniff differently.
	samples := []interface{}{"0", "0", "0"}
	assert.Equal(t, model.ColumnPercent, DetectColumnType("taxa_venda", samples))

	samples = []interface{}{"2024-03-01", "2024-03-02"}
	assert.Equal(t, model.ColumnCurrency, DetectColumnType("custo_unitario", samples))
}

func TestDetectColumnTypeByValues(t *testing.T) {
	tests := []struct {
		name    string
		samples []interface{}
		want    model.ColumnType
	}{
		{"date strings", []interface{}{"2024-03-01", "01/03/2024"}, model.ColumnDate},
		{"numeric strings", []interface{}{"1.250,50", "42", "1,000.25"}, model.ColumnNumber},
		{"raw floats are numbers not timestamps", []interface{}{float64(1709251200), float64(1709337600)}, model.ColumnNumber},
		{"booleans", []interface{}{true, false, "true"}, model.ColumnBoolean},
		{"mixed falls back to string", []interface{}{"2024-03-01", "abc"}, model.ColumnString},
		{"free text", []interface{}{"campanha A", "campanha B"}, model.ColumnString},
		{"all nil is unknown", []interface{}{nil, nil}, model.ColumnUnknown},
		{"blank strings are unknown", []interface{}{"", "  "}, model.ColumnUnknown},
		{"nils ignored among numbers", []interface{}{nil, "10", "", "20"}, model.ColumnNumber},
		{"no samples", nil, model.ColumnUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectColumnType("opaque_field", tt.samples))
		})
	}
}
