package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"go-funnel-dashboard/internal/engine"
	"go-funnel-dashboard/internal/model"
	"go-funnel-dashboard/internal/spec"
)

var rootCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Normalize funnel datasets and infer dashboard specs",
	Long:  `dashboard normalizes loosely-typed marketing-funnel exports into typed datasets and derives dashboard specs and template configs from their columns.`,
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize <payload.json>",
	Short: "Normalize a raw JSON payload into a typed dataset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		payload, err := readJSONPayload(args[0])
		if err != nil {
			return err
		}
		return printJSON(engine.NormalizeDataset(payload, nil))
	},
}

var inferCmd = &cobra.Command{
	Use:   "infer <payload.json>",
	Short: "Infer a dashboard spec and template config from a payload",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		payload, err := readJSONPayload(args[0])
		if err != nil {
			return err
		}

		ds := engine.NormalizeDataset(payload, nil)
		names := make([]string, len(ds.Columns))
		for i, c := range ds.Columns {
			names[i] = c.Name
		}
		var sampleRow model.NormalizedRow
		if len(ds.Rows) > 0 {
			sampleRow = ds.Rows[0]
		}

		return printJSON(map[string]interface{}{
			"spec":     spec.GenerateSpecFromData(names, sampleRow),
			"template": spec.GenerateTemplateConfig(names),
			"warnings": ds.Warnings,
		})
	},
}

var validateSpecCmd = &cobra.Command{
	Use:   "validate-spec <spec.json|spec.yaml>",
	Short: "Validate a dashboard spec document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read spec: %w", err)
		}

		var result model.SpecValidation
		switch strings.ToLower(filepath.Ext(args[0])) {
		case ".yaml", ".yml":
			var doc interface{}
			if err := yaml.Unmarshal(raw, &doc); err != nil {
				result = model.SpecValidation{Valid: false, Error: fmt.Sprintf("Invalid YAML: %v", err)}
				break
			}
			if parsed := spec.ParseDashboardSpec(doc); parsed != nil {
				result = model.SpecValidation{Valid: true, Spec: parsed}
			} else {
				result = model.SpecValidation{Valid: false, Error: "Invalid spec structure"}
			}
		default:
			result = spec.ValidateSpecJSON(string(raw))
		}

		if err := printJSON(result); err != nil {
			return err
		}
		if !result.Valid {
			os.Exit(1)
		}
		return nil
	},
}

func readJSONPayload(path string) (interface{}, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}
	var payload interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("parse payload: %w", err)
	}
	return payload, nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(inferCmd)
	rootCmd.AddCommand(validateSpecCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}
