package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/goccy/go-yaml"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/apstndb/ociprops/enums"
	"github.com/apstndb/ociprops/internal/properties"
)

// propertyRow is the exported form of a property.
// Enum values are exported by their token and unsupported properties as null.
type propertyRow struct {
	Name        string `json:"name" yaml:"name"`
	Value       any    `json:"value" yaml:"value"`
	Default     any    `json:"default" yaml:"default"`
	Native      bool   `json:"native" yaml:"native"`
	Supported   bool   `json:"supported" yaml:"supported"`
	Description string `json:"description" yaml:"description"`
}

func collectRows(reg *properties.Registry) ([]propertyRow, error) {
	var rows []propertyRow
	for name, value := range reg.All() {
		info, err := reg.Describe(name)
		if err != nil {
			return nil, err
		}
		rows = append(rows, propertyRow{
			Name:        name.String(),
			Value:       exportValue(value),
			Default:     exportValue(info.Default),
			Native:      info.Native,
			Supported:   info.Supported,
			Description: info.Description,
		})
	}
	return rows, nil
}

func exportValue(v any) any {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return v
}

// formatValue renders a value the way the table and --get print it.
func formatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return "NULL"
	case bool:
		return strings.ToUpper(strconv.FormatBool(v))
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func writeProperties(out io.Writer, reg *properties.Registry, format enums.OutputFormat) error {
	rows, err := collectRows(reg)
	if err != nil {
		return err
	}

	switch format {
	case enums.OutputFormatTable:
		return printPropertiesTable(out, rows)
	case enums.OutputFormatYAML:
		return yaml.NewEncoder(out).Encode(rows)
	case enums.OutputFormatJSON:
		return json.MarshalWrite(out, rows, jsontext.WithIndent("  "))
	default:
		return fmt.Errorf("unsupported output format: %v", format)
	}
}

func printPropertiesTable(out io.Writer, rows []propertyRow) error {
	table := tablewriter.NewTable(out,
		tablewriter.WithRenderer(
			renderer.NewBlueprint(tw.Rendition{Symbols: tw.NewSymbols(tw.StyleASCII)})),
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithTrimSpace(tw.Off),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	).Configure(func(config *tablewriter.Config) {
		config.Row.Formatting.AutoWrap = tw.WrapNone
	})

	table.Header([]string{"Name", "Value", "Native", "Supported"})
	for _, row := range rows {
		if err := table.Append([]string{
			row.Name,
			formatValue(row.Value),
			formatValue(row.Native),
			formatValue(row.Supported),
		}); err != nil {
			return fmt.Errorf("tablewriter.Table.Append() failed: %w", err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("tablewriter.Table.Render() failed: %w", err)
	}
	return nil
}
