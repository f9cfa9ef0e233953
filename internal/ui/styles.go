package ui

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Color pairs: first value for dark terminals, second for light ones.
var (
	colorDefaultDark  = lipgloss.Color("#FFFFFF")
	colorDefaultLight = lipgloss.Color("#1F2937")

	colorPrimaryDark  = lipgloss.Color("#00D9FF")
	colorPrimaryLight = lipgloss.Color("#0E7490")

	colorSecondaryDark  = lipgloss.Color("#F59E0B")
	colorSecondaryLight = lipgloss.Color("#B45309")

	colorFailureDark  = lipgloss.Color("#EF4444")
	colorFailureLight = lipgloss.Color("#B91C1C")

	colorLogoDark  = lipgloss.Color("#10B981")
	colorLogoLight = lipgloss.Color("#047857")

	colorMutedDark  = lipgloss.Color("#6B7280")
	colorMutedLight = lipgloss.Color("#9CA3AF")

	colorBorderDark  = lipgloss.Color("#374151")
	colorBorderLight = lipgloss.Color("#D1D5DB")
)

func pick(light bool, dark, lightColor lipgloss.Color) lipgloss.Color {
	if light {
		return lightColor
	}
	return dark
}

// styleDefault is plain foreground text.
func styleDefault(light bool) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(pick(light, colorDefaultDark, colorDefaultLight))
}

// stylePrimary is used for healthy data rows and gauge fills.
func stylePrimary(light bool) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(pick(light, colorPrimaryDark, colorPrimaryLight))
}

// styleSecondary marks focused blocks and the selected namespace row.
func styleSecondary(light bool) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(pick(light, colorSecondaryDark, colorSecondaryLight))
}

// styleFailure marks unhealthy rows and missing-data messages.
func styleFailure(light bool) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(pick(light, colorFailureDark, colorFailureLight)).Bold(true)
}

func styleLogo(light bool) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(pick(light, colorLogoDark, colorLogoLight))
}

func styleMuted(light bool) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(pick(light, colorMutedDark, colorMutedLight))
}

func styleHighlight() lipgloss.Style {
	return lipgloss.NewStyle().Reverse(true)
}

func tableHeaderStyle(light bool) lipgloss.Style {
	return styleDefault(light).Bold(true)
}

// borderColor picks the block border color: focused blocks borrow the
// secondary color, everything else stays neutral.
func borderColor(focused, light bool) lipgloss.Color {
	if focused {
		return pick(light, colorSecondaryDark, colorSecondaryLight)
	}
	return pick(light, colorBorderDark, colorBorderLight)
}

// renderBlock draws a bordered box of exactly r.Width x r.Height cells with
// the title spliced into the top border. Content starts on the row directly
// under the top border, two cells in from the left edge.
func renderBlock(title string, titleStyle lipgloss.Style, color lipgloss.Color, content string, r Rect) string {
	if r.Width < 4 || r.Height < 2 {
		return ""
	}

	body := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder(), false, true, true, true).
		BorderForeground(color).
		Padding(0, 1).
		Width(r.Width - 2).
		Height(r.Height - 2).
		MaxHeight(r.Height - 1).
		Render(content)

	return renderTopBorder(title, titleStyle, color, r.Width) + "\n" + body
}

func renderTopBorder(title string, titleStyle lipgloss.Style, color lipgloss.Color, width int) string {
	bs := lipgloss.NewStyle().Foreground(color)

	title = truncate(title, width-4)
	tw := visualLength(title)
	if tw == 0 {
		return bs.Render("╭" + strings.Repeat("─", width-2) + "╮")
	}

	fill := width - 3 - tw
	if fill < 0 {
		fill = 0
	}
	return bs.Render("╭─") + titleStyle.Render(title) + bs.Render(strings.Repeat("─", fill)+"╮")
}

// tableRow is one pre-styled data row of a panel table.
type tableRow struct {
	cells []string
	style lipgloss.Style
}

// renderTable lays out a header line plus at most maxRows data rows. Cells
// are truncated and padded to their column width so ANSI styling never
// disturbs the column grid.
func renderTable(headers []string, rows []tableRow, widths []int, light bool, maxRows int) string {
	var lines []string

	headerCells := make([]string, len(headers))
	for i, h := range headers {
		headerCells[i] = padRight(truncate(h, widths[i]), widths[i])
	}
	lines = append(lines, tableHeaderStyle(light).Render(strings.Join(headerCells, " ")))

	for i, row := range rows {
		if maxRows >= 0 && i >= maxRows {
			break
		}
		cells := make([]string, len(row.cells))
		for j, c := range row.cells {
			w := widths[j]
			cells[j] = padRight(truncate(c, w), w)
		}
		lines = append(lines, row.style.Render(strings.Join(cells, " ")))
	}

	return strings.Join(lines, "\n")
}

// ansiRegex matches ANSI color codes
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// stripANSI removes ANSI color codes from a string
func stripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// visualLength returns the display width of a string, excluding ANSI codes
// and counting wide runes as two cells.
func visualLength(s string) int {
	return runewidth.StringWidth(stripANSI(s))
}

// padRight pads a string to the given display width.
func padRight(s string, width int) string {
	vlen := visualLength(s)
	if vlen >= width {
		return s
	}
	return s + strings.Repeat(" ", width-vlen)
}

// truncate shortens a string to maxLen display width, appending "..." when
// something was cut.
func truncate(s string, maxLen int) string {
	stripped := stripANSI(s)
	if runewidth.StringWidth(stripped) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return runewidth.Truncate(stripped, maxLen, "")
	}
	return runewidth.Truncate(stripped, maxLen-3, "") + "..."
}
