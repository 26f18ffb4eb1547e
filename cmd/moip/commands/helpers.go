package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/moip/moip-sdk-go/internal/constants"
	"github.com/moip/moip-sdk-go/pkg/moip"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// render writes data in the configured output format. Table output is
// delegated to fill, which sets the header and rows.
func render(w io.Writer, data interface{}, fill func(table *tablewriter.Table)) error {
	switch viper.GetString(keyOutput) {
	case constants.FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", constants.JSONIndent)

		err := encoder.Encode(data)
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}

		return nil
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(w)

		err := encoder.Encode(data)
		if err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}

		return encoder.Close()
	default:
		table := tablewriter.NewWriter(w)
		fill(table)

		err := table.Render()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

// renderProperties renders data as a two column property table.
func renderProperties(w io.Writer, data interface{}, rows [][2]string) error {
	return render(w, data, func(table *tablewriter.Table) {
		table.Header("Property", "Value")

		for _, row := range rows {
			_ = table.Append(row[0], row[1])
		}
	})
}

// readRequestFile decodes a JSON or YAML request body from path.
func readRequestFile(path string, target interface{}) error {
	if path == "" {
		return constants.ErrFromFileRequired
	}

	if strings.Contains(path, "..") {
		return fmt.Errorf("%w: %s", constants.ErrDirectoryTraversal, path)
	}

	cleaned := filepath.Clean(path)

	data, err := os.ReadFile(cleaned)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(cleaned)) {
	case ".json":
		err = json.Unmarshal(data, target)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, target)
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnsupportedFileType, filepath.Ext(cleaned))
	}

	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", cleaned, err)
	}

	return nil
}

// parseFilters turns FIELD=EXPRESSION pairs into list filters.
func parseFilters(params *moip.ListParams, filters []string) error {
	for _, filter := range filters {
		field, expression, found := strings.Cut(filter, "=")
		if !found || field == "" || expression == "" {
			return fmt.Errorf("%w: %q (expected FIELD=EXPRESSION)", constants.ErrInvalidFilter, filter)
		}

		params.WithFilter(field, expression)
	}

	return nil
}

func formatValue(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}

// formatCents renders an amount in cents as a decimal with its currency.
func formatCents(cents int, currency string) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	value := fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
	if currency == "" {
		return value
	}

	return currency + " " + value
}

func formatAmount(amount *moip.Amount) string {
	if amount == nil || amount.Total == nil {
		return constants.NotAvailable
	}

	return formatCents(*amount.Total, amount.Currency)
}

func formatTimestamp(ts *moip.Timestamp) string {
	if ts == nil || ts.IsZero() {
		return constants.NotAvailable
	}

	return ts.Format(constants.DisplayTimeLayout)
}

func formatInt(value int) string {
	return strconv.Itoa(value)
}
