package cli

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/swatch/internal/colour"
)

// Output formats accepted by --format.
const (
	formatHex   = "hex"
	formatRGB   = "rgb"
	formatJSON  = "json"
	formatTable = "table"
)

// previewWidth is the number of terminal cells in a colour block.
const previewWidth = 8

var validFormats = []string{formatHex, formatRGB, formatJSON, formatTable}

// validateFormat rejects unknown --format values.
func validateFormat(format string) error {
	for _, f := range validFormats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("unsupported format: %s (supported: %s)", format, strings.Join(validFormats, ", "))
}

// formatResult renders a palette in the requested format.
func formatResult(result *colour.Result, format string, showPreview bool) (string, error) {
	switch format {
	case formatHex:
		return formatHexList(result, showPreview), nil
	case formatRGB:
		return formatRGBList(result, showPreview), nil
	case formatJSON:
		jsonBytes, err := result.ToJSON()
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(jsonBytes) + "\n", nil
	case formatTable:
		return formatTableView(result, showPreview), nil
	default:
		return "", validateFormat(format)
	}
}

// formatHexList writes one hex code per line.
func formatHexList(result *colour.Result, showPreview bool) string {
	var sb strings.Builder
	for _, c := range result.Colors {
		if showPreview {
			sb.WriteString(colour.FormatColourWithPreview(c.Pixel, previewWidth))
		} else {
			sb.WriteString(c.Hex())
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// formatRGBList writes one rgb(r, g, b) value per line.
func formatRGBList(result *colour.Result, showPreview bool) string {
	var sb strings.Builder
	for _, c := range result.Colors {
		if showPreview {
			sb.WriteString(colour.ColourPreview(c.Pixel, previewWidth))
			sb.WriteString("  ")
		}
		sb.WriteString(c.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// formatTableView lists each colour with its HSV components.
func formatTableView(result *colour.Result, showPreview bool) string {
	headers := []string{"#", "Hex", "RGB", "Hue", "Sat", "Val"}
	offset := 0
	if showPreview {
		headers = append([]string{"Preview"}, headers...)
		offset = 1
	}

	table := NewTable(headers)
	for _, col := range []int{0, 3, 4, 5} {
		table.SetRightAlign(col + offset)
	}
	for i, c := range result.Colors {
		hsv := c.HSV()
		row := []string{
			fmt.Sprintf("%d", i+1),
			c.Hex(),
			fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B),
			fmt.Sprintf("%.0f", hsv.H),
			fmt.Sprintf("%.2f", hsv.S),
			fmt.Sprintf("%.2f", hsv.V),
		}
		if showPreview {
			row = append([]string{colour.ColourPreview(c.Pixel, previewWidth)}, row...)
		}
		table.AddRow(row)
	}

	return table.Render() + fmt.Sprintf("\n%d colours from %d sampled pixels\n", result.Len(), len(result.UsedPixels))
}
