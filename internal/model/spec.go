package model

// DashboardSpec is the declarative dashboard configuration document.
// It is treated as immutable: parsing and inference always build a new one.
type DashboardSpec struct {
	Version int                `json:"version"`
	Title   string             `json:"title,omitempty"`
	Time    *TimeSpec          `json:"time,omitempty"`
	Columns []ColumnDescriptor `json:"columns,omitempty"`
	KPIs    []KPIDef           `json:"kpis,omitempty"`
	Funnel  *FunnelDef         `json:"funnel,omitempty"`
	Charts  []ChartDef         `json:"charts,omitempty"`
	Goals   []GoalDef          `json:"goals,omitempty"`
	UI      *UIConfig          `json:"ui,omitempty"`
}

// TimeSpec names the column that drives the dashboard's time axis.
type TimeSpec struct {
	Column string `json:"column"`
	Type   string `json:"type,omitempty"` // "date" is the only supported type today
}

// KPIDef describes one KPI card.
type KPIDef struct {
	Label         string `json:"label"`
	Column        string `json:"column"`
	Aggregation   string `json:"aggregation,omitempty"`   // "sum" or "avg"
	GoalDirection string `json:"goalDirection,omitempty"` // "higher_better" or "lower_better"
	Format        string `json:"format,omitempty"`        // "currency", "percent", "number"
}

// FunnelDef describes the funnel block.
type FunnelDef struct {
	Steps []FunnelStep `json:"steps"`
}

// FunnelStep is one stage of the funnel, in display order.
type FunnelStep struct {
	Label  string `json:"label"`
	Column string `json:"column"`
}

// ChartDef describes one chart: an x column plus one or more series.
type ChartDef struct {
	Title  string      `json:"title,omitempty"`
	Type   string      `json:"type,omitempty"` // "line", "bar", "area"
	XAxis  string      `json:"xAxis"`
	Series []SeriesDef `json:"series"`
}

// SeriesDef is a single plotted column.
type SeriesDef struct {
	Label  string `json:"label,omitempty"`
	Column string `json:"column"`
}

// GoalDef sets a target value for a column.
type GoalDef struct {
	Column string  `json:"column"`
	Target float64 `json:"target"`
	Label  string  `json:"label,omitempty"`
}

// UIConfig carries presentation hints the view layer consumes verbatim.
type UIConfig struct {
	Tabs            []string `json:"tabs,omitempty"`
	DefaultTab      string   `json:"defaultTab,omitempty"`
	ComparePeriods  bool     `json:"comparePeriods,omitempty"`
	DatePresets     []string `json:"datePresets,omitempty"`
	RefreshInterval int      `json:"refreshInterval,omitempty"` // seconds, 0 = off
}

// SpecValidation is the outcome of validating a raw spec JSON document.
// JSON syntax errors and structural failures both land in Error; nothing
// is ever thrown past this type.
type SpecValidation struct {
	Valid bool           `json:"valid"`
	Error string         `json:"error,omitempty"`
	Spec  *DashboardSpec `json:"spec,omitempty"`
}
