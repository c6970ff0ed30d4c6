package model

// TemplateConfig is the degraded "guess everything from column names"
// configuration, used when no DashboardSpec exists and none can be inferred
// with confidence. It only groups columns; it carries no layout details.
type TemplateConfig struct {
	Tabs         []string     `json:"tabs"`
	KPIColumns   []string     `json:"kpiColumns"`
	FunnelStages []FunnelStep `json:"funnelStages"`
	CostColumns  []string     `json:"costColumns"`
	RateColumns  []string     `json:"rateColumns"`
	LossColumns  []string     `json:"lossColumns"`
}
