package cli

import (
	"strings"
	"testing"
)

func TestNewTable(t *testing.T) {
	table := NewTable([]string{"Name", "Age", "City"})

	if table == nil {
		t.Fatal("NewTable returned nil")
	}
	if len(table.headers) != 3 {
		t.Errorf("Expected 3 headers, got %d", len(table.headers))
	}
	if table.padding != 2 {
		t.Errorf("Expected padding of 2, got %d", table.padding)
	}
}

func TestTableAddRow(t *testing.T) {
	table := NewTable([]string{"Name", "Age"})

	table.AddRow([]string{"Alice", "30"})
	table.AddRow([]string{"Bob"})
	table.AddRow([]string{"Charlie", "25", "Extra"})

	if len(table.rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(table.rows))
	}
	if len(table.rows[1]) != 2 || table.rows[1][1] != "" {
		t.Errorf("Expected short row to be padded, got %q", table.rows[1])
	}
	if len(table.rows[2]) != 2 {
		t.Errorf("Expected long row to be truncated to 2 columns, got %d", len(table.rows[2]))
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"#", "Hex", "Sat"})
	table.AddRow([]string{"1", "#ff0000", "1.00"})
	table.AddRow([]string{"2", "#808080", "0.00"})

	want := "#  Hex      Sat\n" +
		"-  -------  ----\n" +
		"1  #ff0000  1.00\n" +
		"2  #808080  0.00\n"

	if got := table.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestTableRenderEmpty(t *testing.T) {
	table := NewTable(nil)
	if got := table.Render(); got != "" {
		t.Errorf("Expected empty string for empty table, got: %q", got)
	}
}

func TestTableRenderNoRows(t *testing.T) {
	table := NewTable([]string{"Column1", "Column2"})

	lines := strings.Split(strings.TrimRight(table.Render(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected header and separator lines, got %d", len(lines))
	}
	if lines[0] != "Column1  Column2" {
		t.Errorf("header = %q", lines[0])
	}
}

func TestTableRightAlign(t *testing.T) {
	table := NewTable([]string{"Hue", "Name"})
	table.SetRightAlign(0)
	table.AddRow([]string{"7", "red"})
	table.AddRow([]string{"240", "blue"})

	lines := strings.Split(table.Render(), "\n")
	if lines[2] != "  7  red" {
		t.Errorf("row 1 = %q, want %q", lines[2], "  7  red")
	}
	if lines[3] != "240  blue" {
		t.Errorf("row 2 = %q, want %q", lines[3], "240  blue")
	}
}

func TestTableIgnoresANSIWidth(t *testing.T) {
	block := "\033[48;2;255;0;0m    \033[0m"
	table := NewTable([]string{"Preview", "Hex"})
	table.AddRow([]string{block, "#ff0000"})

	lines := strings.Split(table.Render(), "\n")
	want := block + "     #ff0000"
	if lines[2] != want {
		t.Errorf("row = %q, want %q", lines[2], want)
	}
}

func TestTableWithSpecialCharacters(t *testing.T) {
	table := NewTable([]string{"Name", "Symbol"})
	table.AddRow([]string{"Test", "→ →"})
	table.AddRow([]string{"Special", "★ ☆"})

	output := table.Render()
	if !strings.Contains(output, "→ →") || !strings.Contains(output, "★ ☆") {
		t.Errorf("Output should keep special characters, got:\n%s", output)
	}
	lines := strings.Split(output, "\n")
	if lines[1] != "-------  ------" {
		t.Errorf("separator = %q", lines[1])
	}
}

func TestVisibleWidth(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"hello", 5},
		{"→★", 2},
		{"\033[48;2;1;2;3m  \033[0m", 2},
		{"\033[38;2;0;0;0mab\033[0m c", 4},
	}

	for _, tt := range tests {
		if got := visibleWidth(tt.input); got != tt.want {
			t.Errorf("visibleWidth(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input    string
		width    int
		expected string
	}{
		{"test", 10, "test      "},
		{"hello", 5, "hello"},
		{"world", 3, "world"},
		{"", 5, "     "},
		{"x", 1, "x"},
	}

	for _, tt := range tests {
		if result := padRight(tt.input, tt.width); result != tt.expected {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.width, result, tt.expected)
		}
	}
}

func TestPadLeft(t *testing.T) {
	if got := padLeft("42", 5); got != "   42" {
		t.Errorf("padLeft(%q, 5) = %q, want %q", "42", got, "   42")
	}
	if got := padLeft("12345", 3); got != "12345" {
		t.Errorf("padLeft(%q, 3) = %q, want %q", "12345", got, "12345")
	}
}
