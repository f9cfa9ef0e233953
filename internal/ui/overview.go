package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/yourusername/kubedash/internal/model"
)

// Fixed layout extents, matching the classic dashboard proportions: a
// nine-row status bar, a three-row filter bar, and whatever is left for the
// resource tabs with a ten-row floor.
const (
	infoBarHeight     = 9
	filterBarHeight   = 3
	resourceMinHeight = 10

	namespacesBlockWidth = 35
	contextBlockMinWidth = 10
	cliBlockWidth        = 30
	logoBlockWidth       = 32
)

// CursorPos is the terminal cell the text cursor should occupy after a
// frame. It is the one side effect a panel can report besides its drawn
// output; only the filter panel ever does.
type CursorPos struct {
	X int
	Y int
}

// renderOverview composes the full overview screen into area. The vertical
// partition depends on the two visibility toggles; the resource-tab region is
// always present and always last.
func (m *Model) renderOverview(area Rect) (string, *CursorPos) {
	constraints := make([]Constraint, 0, 3)
	if m.showInfoBar {
		constraints = append(constraints, Length(infoBarHeight))
	}
	if m.showFilter {
		constraints = append(constraints, Length(filterBarHeight))
	}
	constraints = append(constraints, Min(resourceMinHeight))

	chunks := splitVertical(area, constraints...)

	sections := make([]string, 0, len(chunks))
	var cursor *CursorPos

	idx := 0
	if m.showInfoBar {
		sections = append(sections, m.renderStatusBar(chunks[idx]))
		idx++
	}
	if m.showFilter {
		filter, c := m.renderFilter(chunks[idx])
		sections = append(sections, filter)
		cursor = c
		idx++
	}
	sections = append(sections, m.renderResourceTabs(chunks[idx]))

	return lipgloss.JoinVertical(lipgloss.Left, sections...), cursor
}

// renderStatusBar subdivides the info bar into its four blocks, left to
// right. No decisions are made here; each block renders itself.
func (m *Model) renderStatusBar(area Rect) string {
	chunks := splitHorizontal(area,
		Length(namespacesBlockWidth),
		Min(contextBlockMinWidth),
		Length(cliBlockWidth),
		Length(logoBlockWidth),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderNamespaces(chunks[0]),
		m.renderContextInfo(chunks[1]),
		m.renderCLIVersions(chunks[2]),
		m.renderLogo(chunks[3]),
	)
}

// renderNamespaces draws the namespace table. The row matching the selected
// namespace is picked out in the secondary style; everything else uses the
// primary data style. An empty list renders the placeholder instead, never
// both.
func (m *Model) renderNamespaces(r Rect) string {
	title := fmt.Sprintf(" %s %s (%s: %s) ",
		m.T("overview.namespaces_title"),
		m.keys.JumpToNamespaces.Help().Key,
		m.T("overview.all"),
		m.keys.SelectAllNamespaces.Help().Key,
	)

	focused := m.currentBlock() == BlockNamespaces
	color := borderColor(focused, m.lightTheme)

	namespaces := m.namespaces()
	body := m.loadingPlaceholder()
	if len(namespaces) > 0 {
		rows := make([]tableRow, len(namespaces))
		for i, ns := range namespaces {
			style := stylePrimary(m.lightTheme)
			if ns.Name == m.selectedNamespace {
				style = styleSecondary(m.lightTheme)
			}
			rows[i] = tableRow{cells: []string{ns.Name, ns.Status}, style: style}
		}
		body = renderTable(
			[]string{m.T("overview.header_name"), m.T("overview.header_status")},
			rows,
			[]int{22, 6},
			m.lightTheme,
			r.Height-3,
		)
	}

	return renderBlock(title, styleDefault(m.lightTheme), color, body, r)
}

// renderContextInfo draws the active context summary and the CPU/memory
// gauges. A missing context is a valid state and renders as a failure-styled
// message in place of the three info lines.
func (m *Model) renderContextInfo(r Rect) string {
	title := fmt.Sprintf(" %s (%s <%s>) ",
		m.T("overview.context_title"),
		m.T("overview.toggle"),
		m.keys.ToggleInfoBar.Help().Key,
	)

	focused := m.currentBlock() == BlockContexts
	color := borderColor(focused, m.lightTheme)

	var info string
	if ctx := m.activeContext(); ctx != nil {
		label := styleDefault(m.lightTheme)
		value := stylePrimary(m.lightTheme)
		info = label.Render(m.T("overview.context_label")) + value.Render(ctx.Name) + "\n" +
			label.Render(m.T("overview.cluster_label")) + value.Render(ctx.Cluster) + "\n" +
			label.Render(m.T("overview.user_label")) + value.Render(ctx.User)
	} else {
		info = styleFailure(m.lightTheme).Render(m.T("overview.context_missing")) + "\n\n"
	}

	gaugeWidth := r.Width - 4

	cpu := cpuRatio(m.nodeMetrics())
	cpuGauge := renderLineGauge(
		m.T("overview.cpu"),
		fmt.Sprintf("%.0f%%", cpu*100),
		clampRatio(cpu),
		gaugeWidth,
		m.enhancedGraphics,
		m.lightTheme,
	)

	mem := memRatio(m.nodeMetrics())
	memGauge := renderLineGauge(
		m.T("overview.memory"),
		fmt.Sprintf("%.0f%%", mem*100),
		clampRatio(mem),
		gaugeWidth,
		m.enhancedGraphics,
		m.lightTheme,
	)

	return renderBlock(title, styleDefault(m.lightTheme), color,
		info+"\n"+cpuGauge+"\n"+memGauge, r)
}

// renderCLIVersions draws the tool-version table, one row per probed CLI,
// healthy tools in the primary style and broken ones in the failure style.
func (m *Model) renderCLIVersions(r Rect) string {
	title := " " + m.T("overview.cli_title") + " "
	color := borderColor(false, m.lightTheme)

	clis := m.cliVersions()
	body := m.loadingPlaceholder()
	if len(clis) > 0 {
		rows := make([]tableRow, len(clis))
		for i, cli := range clis {
			style := stylePrimary(m.lightTheme)
			if !cli.Status {
				style = styleFailure(m.lightTheme)
			}
			rows[i] = tableRow{cells: []string{cli.Name, cli.Version}, style: style}
		}
		colWidth := (r.Width - 5) / 2
		body = renderTable(
			[]string{m.T("overview.header_name"), m.T("overview.header_version")},
			rows,
			[]int{colWidth, colWidth},
			m.lightTheme,
			r.Height-3,
		)
	}

	return renderBlock(title, styleDefault(m.lightTheme), color, body, r)
}

// renderLogo draws the banner and version, with a trailing ellipsis while a
// refresh is in flight.
func (m *Model) renderLogo(r Rect) string {
	text := fmt.Sprintf("%s\n v%s %s", Banner, m.version, loadingIndicator(m.isLoading))
	body := styleLogo(m.lightTheme).Render(text)
	return renderBlock("", styleDefault(m.lightTheme), borderColor(false, m.lightTheme), body, r)
}

// renderFilter draws the filter box. When the filter block has focus the
// border switches to the secondary style and the panel reports where the
// terminal cursor belongs: just past the typed text, on the row under the
// top border.
func (m *Model) renderFilter(r Rect) (string, *CursorPos) {
	title := fmt.Sprintf(" %s %s (%s: %s) ",
		m.T("overview.filter_title"),
		m.keys.JumpToFilter.Help().Key,
		m.T("overview.toggle"),
		m.keys.ToggleFilter.Help().Key,
	)

	active := m.currentBlock() == BlockFilter
	color := borderColor(active, m.lightTheme)

	text := m.filterInput.Value()
	body := styleDefault(m.lightTheme).Render(text)

	var cursor *CursorPos
	if active {
		body += styleHighlight().Render(" ")
		cursor = &CursorPos{X: r.X + 2 + len(text), Y: r.Y + 1}
	}

	return renderBlock(title, styleDefault(m.lightTheme), color, body, r), cursor
}

// nodeMetricsRatio reduces per-node percent samples to the 0-1 fraction a
// gauge expects: the arithmetic mean of the selected field over 100. An
// empty collection is defined to be 0. The result is deliberately not
// clamped here; overcommitted nodes can push it past 1 and the caller
// decides what to do about that.
func nodeMetricsRatio(samples []model.NodeMetrics, field func(model.NodeMetrics) float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range samples {
		sum += field(s)
	}
	return (sum / float64(len(samples))) / 100
}

func cpuRatio(samples []model.NodeMetrics) float64 {
	return nodeMetricsRatio(samples, func(nm model.NodeMetrics) float64 { return nm.CPUPercent })
}

func memRatio(samples []model.NodeMetrics) float64 {
	return nodeMetricsRatio(samples, func(nm model.NodeMetrics) float64 { return nm.MemPercent })
}

// clampRatio bounds a gauge fill fraction to [0,1].
func clampRatio(ratio float64) float64 {
	if ratio > 1 {
		return 1
	}
	if ratio < 0 {
		return 0
	}
	return ratio
}
