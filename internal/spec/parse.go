package spec

import (
	"encoding/json"
	"log"

	"go-funnel-dashboard/internal/model"
)

// ------------------- Spec Parsing / Validation -------------------

// ParseDashboardSpec validates and sanitizes a deserialized dashboard-spec
// document. Non-object input or a missing/non-numeric version is a hard
// reject (nil return, diagnostic logged, never a panic). Every optional
// sub-structure is validated independently: malformed entries are dropped,
// the rest of the document survives. The input is never mutated.
func ParseDashboardSpec(input interface{}) *model.DashboardSpec {
	obj, ok := input.(map[string]interface{})
	if !ok {
		log.Printf("spec: rejected non-object spec document (%T)", input)
		return nil
	}

	version, ok := asNumber(obj["version"])
	if !ok {
		log.Printf("spec: rejected spec document without numeric version")
		return nil
	}

	out := &model.DashboardSpec{Version: int(version)}
	out.Title, _ = asString(obj["title"])
	out.Time = parseTimeSpec(obj["time"])
	out.Columns = parseColumns(obj["columns"])
	out.KPIs = parseKPIs(obj["kpis"])
	out.Funnel = parseFunnel(obj["funnel"])
	out.Charts = parseCharts(obj["charts"])
	out.Goals = parseGoals(obj["goals"])
	out.UI = parseUI(obj["ui"])
	return out
}

// ValidateSpecJSON parses a raw JSON document and runs ParseDashboardSpec
// over it. Syntax errors and structural rejections both come back as
// {Valid: false, Error: ...}; nothing escapes as a panic or error value.
func ValidateSpecJSON(jsonString string) model.SpecValidation {
	var raw interface{}
	if err := json.Unmarshal([]byte(jsonString), &raw); err != nil {
		return model.SpecValidation{Valid: false, Error: err.Error()}
	}

	parsed := ParseDashboardSpec(raw)
	if parsed == nil {
		return model.SpecValidation{Valid: false, Error: "spec must be an object with a numeric version"}
	}
	return model.SpecValidation{Valid: true, Spec: parsed}
}

// ------------------- Sub-structure parsers -------------------

func parseTimeSpec(v interface{}) *model.TimeSpec {
	obj, ok := v.(map[string]interface{})
	if !ok {
		return nil
	}
	column, ok := asString(obj["column"])
	if !ok || column == "" {
		return nil
	}
	ts := &model.TimeSpec{Column: column}
	ts.Type, _ = asString(obj["type"])
	return ts
}

func parseColumns(v interface{}) []model.ColumnDescriptor {
	list, ok := v.([]interface{})
	if !ok {
		return nil
	}
	var cols []model.ColumnDescriptor
	for _, item := range list {
		obj, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		name, ok := asString(obj["name"])
		if !ok || name == "" {
			continue
		}
		col := model.ColumnDescriptor{Name: name, Type: model.ColumnUnknown}
		if t, ok := asString(obj["type"]); ok && validColumnType(t) {
			col.Type = model.ColumnType(t)
		}
		if s, ok := asString(obj["scale"]); ok {
			if scale := model.PercentScale(s); scale == model.Scale0to1 || scale == model.Scale0to100 {
				col.Scale = scale
			}
		}
		cols = append(cols, col)
	}
	return cols
}

func validColumnType(t string) bool {
	switch model.ColumnType(t) {
	case model.ColumnDate, model.ColumnNumber, model.ColumnCurrency,
		model.ColumnPercent, model.ColumnString, model.ColumnBoolean, model.ColumnUnknown:
		return true
	}
	return false
}

func parseKPIs(v interface{}) []model.KPIDef {
	list, ok := v.([]interface{})
	if !ok {
		return nil
	}
	var kpis []model.KPIDef
	for _, item := range list {
		obj, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		label, lok := asString(obj["label"])
		column, cok := asString(obj["column"])
		if !lok || !cok || label == "" || column == "" {
			continue
		}
		kpi := model.KPIDef{Label: label, Column: column}
		kpi.Aggregation, _ = asString(obj["aggregation"])
		kpi.GoalDirection, _ = asString(obj["goalDirection"])
		kpi.Format, _ = asString(obj["format"])
		kpis = append(kpis, kpi)
	}
	return kpis
}

func parseFunnel(v interface{}) *model.FunnelDef {
	obj, ok := v.(map[string]interface{})
	if !ok {
		return nil
	}
	list, ok := obj["steps"].([]interface{})
	if !ok {
		return nil
	}
	var steps []model.FunnelStep
	for _, item := range list {
		stepObj, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		label, lok := asString(stepObj["label"])
		column, cok := asString(stepObj["column"])
		if !lok || !cok || label == "" || column == "" {
			continue
		}
		steps = append(steps, model.FunnelStep{Label: label, Column: column})
	}
	if len(steps) == 0 {
		return nil
	}
	return &model.FunnelDef{Steps: steps}
}

func parseCharts(v interface{}) []model.ChartDef {
	list, ok := v.([]interface{})
	if !ok {
		return nil
	}
	var charts []model.ChartDef
	for _, item := range list {
		obj, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		xAxis, ok := asString(obj["xAxis"])
		if !ok || xAxis == "" {
			continue
		}
		chart := model.ChartDef{XAxis: xAxis}
		chart.Title, _ = asString(obj["title"])
		chart.Type, _ = asString(obj["type"])

		if seriesList, ok := obj["series"].([]interface{}); ok {
			for _, s := range seriesList {
				sObj, ok := s.(map[string]interface{})
				if !ok {
					continue
				}
				column, ok := asString(sObj["column"])
				if !ok || column == "" {
					continue
				}
				series := model.SeriesDef{Column: column}
				series.Label, _ = asString(sObj["label"])
				chart.Series = append(chart.Series, series)
			}
		}
		if len(chart.Series) == 0 {
			continue
		}
		charts = append(charts, chart)
	}
	return charts
}

func parseGoals(v interface{}) []model.GoalDef {
	list, ok := v.([]interface{})
	if !ok {
		return nil
	}
	var goals []model.GoalDef
	for _, item := range list {
		obj, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		column, cok := asString(obj["column"])
		target, tok := asNumber(obj["target"])
		if !cok || !tok || column == "" {
			continue
		}
		goal := model.GoalDef{Column: column, Target: target}
		goal.Label, _ = asString(obj["label"])
		goals = append(goals, goal)
	}
	return goals
}

func parseUI(v interface{}) *model.UIConfig {
	obj, ok := v.(map[string]interface{})
	if !ok {
		return nil
	}
	ui := &model.UIConfig{}
	ui.Tabs = asStringSlice(obj["tabs"])
	ui.DefaultTab, _ = asString(obj["defaultTab"])
	ui.ComparePeriods, _ = obj["comparePeriods"].(bool)
	ui.DatePresets = asStringSlice(obj["datePresets"])
	if n, ok := asNumber(obj["refreshInterval"]); ok && n >= 0 {
		ui.RefreshInterval = int(n)
	}
	return ui
}

// ------------------- Coercion helpers -------------------

func asString(v interface{}) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func asStringSlice(v interface{}) []string {
	list, ok := v.([]interface{})
	if !ok {
		return nil
	}
	var out []string
	for _, item := range list {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}
