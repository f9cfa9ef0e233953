package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/yourusername/kubedash/internal/model"
)

// resourceTab identifies one tab of the resource region.
type resourceTab int

const (
	tabPods resourceTab = iota
	tabNodes

	tabCount
)

// renderResourceTabs draws the tabbed resource view into the remaining
// region below the status and filter bars. The active namespace selection
// and the filter text both narrow what the tables show.
func (m *Model) renderResourceTabs(r Rect) string {
	focused := m.currentBlock() == BlockResources
	color := borderColor(focused, m.lightTheme)

	tabNames := []string{m.T("tabs.pods"), m.T("tabs.nodes")}
	labels := make([]string, len(tabNames))
	for i, name := range tabNames {
		if resourceTab(i) == m.activeTab {
			labels[i] = styleSecondary(m.lightTheme).Bold(true).Render(name)
		} else {
			labels[i] = styleMuted(m.lightTheme).Render(name)
		}
	}
	tabBar := strings.Join(labels, styleMuted(m.lightTheme).Render(" │ "))

	var table string
	switch m.activeTab {
	case tabNodes:
		table = m.renderNodesTable(r)
	default:
		table = m.renderPodsTable(r)
	}

	title := fmt.Sprintf(" %s (%s) ", m.T("tabs.title"), m.keys.Tab.Help().Key)
	return renderBlock(title, styleDefault(m.lightTheme), color, tabBar+"\n"+table, r)
}

func (m *Model) renderPodsTable(r Rect) string {
	pods := m.filteredPods()
	if len(pods) == 0 {
		return m.loadingPlaceholder()
	}

	rows := make([]tableRow, len(pods))
	for i, p := range pods {
		style := stylePrimary(m.lightTheme)
		switch p.Status {
		case "Failed", "CrashLoopBackOff", "Error":
			style = styleFailure(m.lightTheme)
		case "Pending", "ContainerCreating":
			style = styleSecondary(m.lightTheme)
		}
		rows[i] = tableRow{
			cells: []string{p.Namespace, p.Name, p.Ready, p.Status, fmt.Sprintf("%d", p.Restarts), formatAge(p.Age)},
			style: style,
		}
	}

	nameWidth := r.Width - 4 - 16 - 7 - 18 - 9 - 6 - 5
	if nameWidth < 10 {
		nameWidth = 10
	}
	return renderTable(
		[]string{m.T("tabs.header_namespace"), m.T("overview.header_name"), m.T("tabs.header_ready"), m.T("overview.header_status"), m.T("tabs.header_restarts"), m.T("tabs.header_age")},
		rows,
		[]int{16, nameWidth, 7, 18, 9, 6},
		m.lightTheme,
		r.Height-4,
	)
}

func (m *Model) renderNodesTable(r Rect) string {
	nodes := m.filteredNodes()
	if len(nodes) == 0 {
		return m.loadingPlaceholder()
	}

	rows := make([]tableRow, len(nodes))
	for i, n := range nodes {
		style := stylePrimary(m.lightTheme)
		if n.Status != "Ready" {
			style = styleFailure(m.lightTheme)
		}
		rows[i] = tableRow{
			cells: []string{n.Name, n.Status, n.Roles, n.Version, formatAge(n.Age)},
			style: style,
		}
	}

	nameWidth := r.Width - 4 - 10 - 14 - 12 - 6 - 4
	if nameWidth < 10 {
		nameWidth = 10
	}
	return renderTable(
		[]string{m.T("overview.header_name"), m.T("overview.header_status"), m.T("tabs.header_roles"), m.T("overview.header_version"), m.T("tabs.header_age")},
		rows,
		[]int{nameWidth, 10, 14, 12, 6},
		m.lightTheme,
		r.Height-4,
	)
}

// filteredPods applies the namespace selection and the filter text.
func (m *Model) filteredPods() []model.PodRow {
	pods := m.pods()
	filter := strings.ToLower(m.filterInput.Value())

	var out []model.PodRow
	for _, p := range pods {
		if m.selectedNamespace != "" && p.Namespace != m.selectedNamespace {
			continue
		}
		if filter != "" && !strings.Contains(strings.ToLower(p.Name), filter) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// filteredNodes applies the filter text only; nodes are not namespaced.
func (m *Model) filteredNodes() []model.NodeRow {
	nodes := m.nodes()
	filter := strings.ToLower(m.filterInput.Value())

	var out []model.NodeRow
	for _, n := range nodes {
		if filter != "" && !strings.Contains(strings.ToLower(n.Name), filter) {
			continue
		}
		out = append(out, n)
	}
	return out
}

// formatAge renders a duration the way kubectl does: the two most
// significant units at most, no spaces.
func formatAge(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd%dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh%dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm", minutes)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}
