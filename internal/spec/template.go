package spec

import (
	"strings"

	"go-funnel-dashboard/internal/model"
)

// ------------------- Template Config -------------------

// GenerateTemplateConfig derives the degraded template configuration purely
// from column name patterns; no spec document and no sample values needed.
// This is the "guess everything from names alone" path used when not even a
// normalized dataset is around to infer from.
func GenerateTemplateConfig(columnNames []string) model.TemplateConfig {
	present := make(map[string]bool, len(columnNames))
	for _, name := range columnNames {
		present[strings.ToLower(strings.TrimSpace(name))] = true
	}

	tc := model.TemplateConfig{
		Tabs:         []string{tabOverview, tabData},
		KPIColumns:   []string{},
		FunnelStages: []model.FunnelStep{},
		CostColumns:  []string{},
		RateColumns:  []string{},
		LossColumns:  []string{},
	}

	for _, name := range kpiPriority {
		if present[name] {
			tc.KPIColumns = append(tc.KPIColumns, name)
		}
	}

	for _, stage := range funnelStages {
		if present[stage.Column] {
			tc.FunnelStages = append(tc.FunnelStages, stage)
		}
	}
	if len(tc.FunnelStages) >= 3 {
		tc.Tabs = append(tc.Tabs, tabFunnel)
	}

	for _, name := range columnNames {
		lower := strings.ToLower(strings.TrimSpace(name))
		switch {
		case lower == "cpl" || lower == "cac" || strings.Contains(lower, "custo"):
			tc.CostColumns = append(tc.CostColumns, name)
		case strings.HasPrefix(lower, "taxa_") || strings.HasPrefix(lower, "rate_"):
			tc.RateColumns = append(tc.RateColumns, name)
		case strings.Contains(lower, "perda") || strings.Contains(lower, "perdido") ||
			strings.Contains(lower, "loss") || strings.Contains(lower, "lost") ||
			strings.Contains(lower, "no_show") || strings.Contains(lower, "noshow"):
			tc.LossColumns = append(tc.LossColumns, name)
		}
	}

	if len(tc.CostColumns) > 0 && len(tc.RateColumns) > 0 {
		tc.Tabs = append(tc.Tabs, tabEfficiency)
	}
	return tc
}
