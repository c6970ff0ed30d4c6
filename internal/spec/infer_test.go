package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-funnel-dashboard/internal/model"
)

var fullFunnelColumns = []string{
	"dia", "custo_total", "leads_total", "entrada_total",
	"reuniao_agendada_total", "reuniao_realizada_total", "venda_total",
	"cpl", "cac",
}

func TestGenerateSpecFromDataFullFunnel(t *testing.T) {
	out := GenerateSpecFromData(fullFunnelColumns, nil)

	assert.Equal(t, 1, out.Version)
	assert.Equal(t, "Dashboard de Funil", out.Title)

	require.NotNil(t, out.Time)
	assert.Equal(t, "dia", out.Time.Column)

	require.Len(t, out.Columns, len(fullFunnelColumns))
	assert.Equal(t, model.ColumnCurrency, out.Columns[1].Type)
	assert.Equal(t, model.ColumnNumber, out.Columns[2].Type)

	// All six priority KPIs are present, in the fixed order.
	require.Len(t, out.KPIs, 6)
	assert.Equal(t, "Investimento", out.KPIs[0].Label)
	assert.Equal(t, "sum", out.KPIs[0].Aggregation)
	assert.Equal(t, "lower_better", out.KPIs[0].GoalDirection)
	assert.Equal(t, "currency", out.KPIs[0].Format)

	cpl := out.KPIs[4]
	assert.Equal(t, "cpl", cpl.Column)
	assert.Equal(t, "avg", cpl.Aggregation)
	assert.Equal(t, "lower_better", cpl.GoalDirection)

	leads := out.KPIs[1]
	assert.Equal(t, "higher_better", leads.GoalDirection)
	assert.Equal(t, "number", leads.Format)

	require.NotNil(t, out.Funnel)
	assert.Len(t, out.Funnel.Steps, 5)
	assert.Equal(t, "Leads", out.Funnel.Steps[0].Label)
	assert.Equal(t, "Vendas", out.Funnel.Steps[4].Label)

	require.Len(t, out.Charts, 2)
	assert.Equal(t, "Investimento e Leads", out.Charts[0].Title)
	assert.Equal(t, "dia", out.Charts[0].XAxis)
	assert.Equal(t, "CPL e CAC", out.Charts[1].Title)

	require.NotNil(t, out.UI)
	assert.Equal(t, []string{"Visão Geral", "Dados", "Funil", "Eficiência"}, out.UI.Tabs)
	assert.Equal(t, "Visão Geral", out.UI.DefaultTab)
}

func TestGenerateSpecFromDataNarrowsWithMissingColumns(t *testing.T) {
	// Two funnel stages is not enough to draw a funnel; no date column means
	// no time block and no charts.
	out := GenerateSpecFromData([]string{"leads_total", "venda_total"}, nil)

	assert.Nil(t, out.Time)
	assert.Nil(t, out.Funnel)
	assert.Empty(t, out.Charts)
	require.Len(t, out.KPIs, 2)
	require.NotNil(t, out.UI)
	assert.Equal(t, []string{"Visão Geral", "Dados"}, out.UI.Tabs)
}

func TestGenerateSpecFromDataMinimumFunnel(t *testing.T) {
	out := GenerateSpecFromData([]string{"leads_total", "entrada_total", "venda_total"}, nil)

	require.NotNil(t, out.Funnel)
	assert.Len(t, out.Funnel.Steps, 3)
	assert.Contains(t, out.UI.Tabs, "Funil")
	assert.NotContains(t, out.UI.Tabs, "Eficiência")
}

func TestGenerateSpecFromDataChartsNeedDateColumn(t *testing.T) {
	out := GenerateSpecFromData([]string{"custo_total", "leads_total", "cpl", "cac"}, nil)
	assert.Empty(t, out.Charts)

	out = GenerateSpecFromData([]string{"dia", "custo_total", "leads_total", "cpl", "cac"}, nil)
	assert.Len(t, out.Charts, 2)
}

func TestGenerateSpecFromDataUnknownColumnUsesSample(t *testing.T) {
	sample := model.NormalizedRow{"mystery": "2024-03-01"}
	out := GenerateSpecFromData([]string{"mystery"}, sample)

	require.Len(t, out.Columns, 1)
	assert.Equal(t, model.ColumnDate, out.Columns[0].Type)
	require.NotNil(t, out.Time)
	assert.Equal(t, "mystery", out.Time.Column)
}

func TestGenerateSpecFromDataIsDeterministic(t *testing.T) {
	a := GenerateSpecFromData(fullFunnelColumns, nil)
	b := GenerateSpecFromData(fullFunnelColumns, nil)
	assert.Equal(t, a, b)
}

func TestGenerateTemplateConfigFullFunnel(t *testing.T) {
	columns := append([]string{}, fullFunnelColumns...)
	columns = append(columns, "taxa_entrada", "leads_perdidos")

	tc := GenerateTemplateConfig(columns)

	assert.Equal(t, []string{"Visão Geral", "Dados", "Funil", "Eficiência"}, tc.Tabs)
	assert.Equal(t, []string{"custo_total", "leads_total", "entrada_total", "venda_total", "cpl", "cac"}, tc.KPIColumns)
	assert.Len(t, tc.FunnelStages, 5)
	assert.ElementsMatch(t, []string{"custo_total", "cpl", "cac"}, tc.CostColumns)
	assert.Equal(t, []string{"taxa_entrada"}, tc.RateColumns)
	assert.Equal(t, []string{"leads_perdidos"}, tc.LossColumns)
}

func TestGenerateTemplateConfigSparse(t *testing.T) {
	tc := GenerateTemplateConfig([]string{"dia", "leads_total"})

	assert.Equal(t, []string{"Visão Geral", "Dados"}, tc.Tabs)
	assert.Equal(t, []string{"leads_total"}, tc.KPIColumns)
	assert.Empty(t, tc.FunnelStages)
	assert.Empty(t, tc.CostColumns)
	assert.Empty(t, tc.RateColumns)
	assert.Empty(t, tc.LossColumns)
}

func TestGenerateTemplateConfigEfficiencyNeedsBothGroups(t *testing.T) {
	// Cost columns alone do not unlock the efficiency tab.
	tc := GenerateTemplateConfig([]string{"custo_total", "cpl"})
	assert.NotContains(t, tc.Tabs, "Eficiência")

	tc = GenerateTemplateConfig([]string{"custo_total", "taxa_venda"})
	assert.Contains(t, tc.Tabs, "Eficiência")
}
