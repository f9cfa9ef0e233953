package ui

import (
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{"fits", "kubectl", 10, "kubectl"},
		{"exact fit", "kubectl", 7, "kubectl"},
		{"cut with ellipsis", "kube-system-controller", 10, "kube-sy..."},
		{"tiny budget", "kubectl", 3, "kub"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.input, tt.maxLen)
			if got != tt.expected {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.expected)
			}
			if visualLength(got) > tt.maxLen {
				t.Errorf("Truncated string wider than budget: %d > %d", visualLength(got), tt.maxLen)
			}
		})
	}
}

func TestVisualLength(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"ascii", "hello", 5},
		{"empty", "", 0},
		{"wide runes count double", "名前", 4},
		{"ansi codes ignored", "\x1b[31mred\x1b[0m", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := visualLength(tt.input); got != tt.expected {
				t.Errorf("visualLength(%q) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 5); got != "ab   " {
		t.Errorf("padRight = %q", got)
	}
	if got := padRight("abcdef", 5); got != "abcdef" {
		t.Errorf("padRight should not shorten, got %q", got)
	}
}

func TestRenderTopBorder(t *testing.T) {
	style := styleDefault(false)
	color := borderColor(false, false)

	plain := stripANSI(renderTopBorder("", style, color, 20))
	if visualLength(plain) != 20 {
		t.Errorf("Untitled border width = %d, want 20", visualLength(plain))
	}
	if !strings.HasPrefix(plain, "╭") || !strings.HasSuffix(plain, "╮") {
		t.Errorf("Border corners missing: %q", plain)
	}

	titled := stripANSI(renderTopBorder(" Namespaces ", style, color, 35))
	if visualLength(titled) != 35 {
		t.Errorf("Titled border width = %d, want 35", visualLength(titled))
	}
	if !strings.Contains(titled, "Namespaces") {
		t.Errorf("Title missing from border: %q", titled)
	}
}

func TestRenderBlockDimensions(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 30, Height: 9}
	out := renderBlock(" Title ", styleDefault(false), borderColor(false, false), "content", r)

	lines := strings.Split(out, "\n")
	if len(lines) != r.Height {
		t.Fatalf("Block is %d lines tall, want %d", len(lines), r.Height)
	}
	for i, line := range lines {
		if got := visualLength(line); got != r.Width {
			t.Errorf("Line %d width = %d, want %d", i, got, r.Width)
		}
	}
}

func TestRenderBlockTooSmall(t *testing.T) {
	if out := renderBlock("t", styleDefault(false), borderColor(false, false), "x", Rect{Width: 3, Height: 1}); out != "" {
		t.Errorf("Undersized block should render nothing, got %q", out)
	}
}

func TestRenderTableMaxRows(t *testing.T) {
	rows := []tableRow{
		{cells: []string{"a", "1"}, style: stylePrimary(false)},
		{cells: []string{"b", "2"}, style: stylePrimary(false)},
		{cells: []string{"c", "3"}, style: stylePrimary(false)},
	}

	out := renderTable([]string{"Name", "Status"}, rows, []int{10, 6}, false, 2)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 { // header + 2 rows
		t.Errorf("Expected header plus 2 rows, got %d lines", len(lines))
	}
	if strings.Contains(out, "c") {
		t.Errorf("Row beyond maxRows leaked into output:\n%s", out)
	}
}

func TestBorderColorFocus(t *testing.T) {
	if borderColor(true, false) == borderColor(false, false) {
		t.Error("Focused and unfocused borders should differ")
	}
	if borderColor(false, true) == borderColor(false, false) {
		t.Error("Light and dark border colors should differ")
	}
}

func TestGaugeLineSet(t *testing.T) {
	if gaugeLineSet(true) != gaugeLineThick {
		t.Errorf("Enhanced graphics should pick the thick line")
	}
	if gaugeLineSet(false) != gaugeLineNormal {
		t.Errorf("Plain mode should pick the normal line")
	}
}
