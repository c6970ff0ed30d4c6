package spec

import (
	"go-funnel-dashboard/internal/engine"
	"go-funnel-dashboard/internal/model"
)

// ------------------- Spec Inference -------------------

// knownColumns is the curated lookup of well-known marketing-funnel column
// names. Static data, never mutated after init.
var knownColumns = map[string]model.ColumnDescriptor{
	"dia":                     {Name: "dia", Type: model.ColumnDate},
	"custo_total":             {Name: "custo_total", Type: model.ColumnCurrency},
	"leads_total":             {Name: "leads_total", Type: model.ColumnNumber},
	"entrada_total":           {Name: "entrada_total", Type: model.ColumnNumber},
	"reuniao_agendada_total":  {Name: "reuniao_agendada_total", Type: model.ColumnNumber},
	"reuniao_realizada_total": {Name: "reuniao_realizada_total", Type: model.ColumnNumber},
	"venda_total":             {Name: "venda_total", Type: model.ColumnNumber},
	"cpl":                     {Name: "cpl", Type: model.ColumnCurrency},
	"cac":                     {Name: "cac", Type: model.ColumnCurrency},
	"taxa_entrada":            {Name: "taxa_entrada", Type: model.ColumnPercent, Scale: model.Scale0to1},
	"taxa_agendamento":        {Name: "taxa_agendamento", Type: model.ColumnPercent, Scale: model.Scale0to1},
	"taxa_comparecimento":     {Name: "taxa_comparecimento", Type: model.ColumnPercent, Scale: model.Scale0to1},
	"taxa_venda":              {Name: "taxa_venda", Type: model.ColumnPercent, Scale: model.Scale0to1},
}

// kpiPriority is the fixed KPI candidate order. cpl/cac are ratio metrics
// (averaged, lower is better); the counts and spend are summed.
var kpiPriority = []string{
	"custo_total", "leads_total", "entrada_total", "venda_total", "cpl", "cac",
}

var kpiLabels = map[string]string{
	"custo_total":   "Investimento",
	"leads_total":   "Leads",
	"entrada_total": "Entradas",
	"venda_total":   "Vendas",
	"cpl":           "CPL",
	"cac":           "CAC",
}

var lowerBetter = map[string]bool{
	"custo_total": true,
	"cpl":         true,
	"cac":         true,
}

// funnelStages is the canonical funnel, in order.
var funnelStages = []model.FunnelStep{
	{Label: "Leads", Column: "leads_total"},
	{Label: "Entradas", Column: "entrada_total"},
	{Label: "Reuniões Agendadas", Column: "reuniao_agendada_total"},
	{Label: "Reuniões Realizadas", Column: "reuniao_realizada_total"},
	{Label: "Vendas", Column: "venda_total"},
}

const (
	tabOverview   = "Visão Geral"
	tabData       = "Dados"
	tabFunnel     = "Funil"
	tabEfficiency = "Eficiência"
)

// GenerateSpecFromData derives a dashboard spec from a column set when no
// explicit spec exists. Deterministic and rule-based: missing columns only
// narrow the output (fewer KPIs, no funnel block, fewer tabs); there is no
// failure path. sampleRow, when available, feeds the value heuristics for
// columns outside the curated table.
func GenerateSpecFromData(columnNames []string, sampleRow model.NormalizedRow) model.DashboardSpec {
	present := make(map[string]bool, len(columnNames))
	columns := make([]model.ColumnDescriptor, 0, len(columnNames))

	var dateColumn string
	for _, name := range columnNames {
		present[name] = true

		col, known := knownColumns[name]
		if !known {
			var samples []interface{}
			if sampleRow != nil {
				samples = []interface{}{sampleRow[name]}
			}
			col = model.ColumnDescriptor{Name: name, Type: engine.DetectColumnType(name, samples)}
		}
		if col.Type == model.ColumnDate && dateColumn == "" {
			dateColumn = name
		}
		columns = append(columns, col)
	}

	out := model.DashboardSpec{
		Version: 1,
		Title:   "Dashboard de Funil",
		Columns: columns,
	}
	if dateColumn != "" {
		out.Time = &model.TimeSpec{Column: dateColumn, Type: "date"}
	}

	// KPI cards from the fixed priority list, restricted to present columns.
	for _, name := range kpiPriority {
		if !present[name] {
			continue
		}
		agg := "sum"
		if name == "cpl" || name == "cac" {
			agg = "avg"
		}
		direction := "higher_better"
		if lowerBetter[name] {
			direction = "lower_better"
		}
		format := "number"
		if knownColumns[name].Type == model.ColumnCurrency {
			format = "currency"
		}
		out.KPIs = append(out.KPIs, model.KPIDef{
			Label:         kpiLabels[name],
			Column:        name,
			Aggregation:   agg,
			GoalDirection: direction,
			Format:        format,
		})
	}

	tabs := []string{tabOverview, tabData}

	// Funnel block only when enough canonical stages exist to draw one.
	var steps []model.FunnelStep
	for _, stage := range funnelStages {
		if present[stage.Column] {
			steps = append(steps, stage)
		}
	}
	if len(steps) >= 3 {
		out.Funnel = &model.FunnelDef{Steps: steps}
		tabs = append(tabs, tabFunnel)
	}

	// Time-series charts need a date column to plot against.
	if dateColumn != "" {
		var series []model.SeriesDef
		if present["custo_total"] {
			series = append(series, model.SeriesDef{Label: kpiLabels["custo_total"], Column: "custo_total"})
		}
		if present["leads_total"] {
			series = append(series, model.SeriesDef{Label: kpiLabels["leads_total"], Column: "leads_total"})
		}
		if len(series) > 0 {
			out.Charts = append(out.Charts, model.ChartDef{
				Title:  "Investimento e Leads",
				Type:   "line",
				XAxis:  dateColumn,
				Series: series,
			})
		}

		if present["cpl"] && present["cac"] {
			out.Charts = append(out.Charts, model.ChartDef{
				Title: "CPL e CAC",
				Type:  "line",
				XAxis: dateColumn,
				Series: []model.SeriesDef{
					{Label: "CPL", Column: "cpl"},
					{Label: "CAC", Column: "cac"},
				},
			})
			tabs = append(tabs, tabEfficiency)
		}
	}

	out.UI = &model.UIConfig{
		Tabs:       tabs,
		DefaultTab: tabOverview,
	}
	return out
}
