package ui

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/yourusername/kubedash/internal/i18n"
	"github.com/yourusername/kubedash/internal/model"
	"go.uber.org/zap"
)

// DataProvider defines the interface for getting overview data
type DataProvider interface {
	GetOverviewData() (*model.OverviewData, error)
	ForceRefresh() error
}

// ActiveBlock identifies which block currently has keyboard focus.
type ActiveBlock int

const (
	BlockResources ActiveBlock = iota
	BlockNamespaces
	BlockContexts
	BlockFilter
)

type refreshTickMsg time.Time

type dataLoadedMsg struct {
	data *model.OverviewData
	err  error
}

type exportResultMsg struct {
	path string
	err  error
}

type clearStatusMsg struct{}

// Model is the main UI model
type Model struct {
	dataProvider DataProvider
	logger       *zap.Logger
	localizer    *i18n.Localizer
	version      string

	refreshInterval time.Duration
	width           int
	height          int
	quitting        bool

	data      *model.OverviewData
	err       error
	isLoading bool

	keys KeyMap

	// UI toggles, read once per frame by the overview composer
	showInfoBar bool
	showFilter  bool

	lightTheme       bool
	enhancedGraphics bool

	// Focus is a stack so esc always returns to the previous block.
	routeStack []ActiveBlock

	filterInput textinput.Model

	namespaceCursor   int
	selectedNamespace string // empty means all namespaces

	activeTab resourceTab

	statusMessage string
}

// Options carries the UI flags resolved from configuration.
type Options struct {
	RefreshInterval  time.Duration
	Locale           string
	Version          string
	LightTheme       bool
	EnhancedGraphics bool
}

// NewModel creates a new UI model
func NewModel(dataProvider DataProvider, logger *zap.Logger, opts Options) *Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 64

	return &Model{
		dataProvider:     dataProvider,
		logger:           logger,
		localizer:        i18n.NewLocalizer(opts.Locale),
		version:          opts.Version,
		refreshInterval:  opts.RefreshInterval,
		keys:             DefaultKeyMap(),
		showInfoBar:      true,
		lightTheme:       opts.LightTheme,
		enhancedGraphics: opts.EnhancedGraphics,
		filterInput:      ti,
		isLoading:        true,
	}
}

// T translates a message by its ID
func (m *Model) T(messageID string) string {
	return m.localizer.T(messageID)
}

// TF translates a message with template data
func (m *Model) TF(messageID string, templateData map[string]interface{}) string {
	return m.localizer.TF(messageID, templateData)
}

// currentBlock returns the block on top of the focus stack.
func (m *Model) currentBlock() ActiveBlock {
	if len(m.routeStack) == 0 {
		return BlockResources
	}
	return m.routeStack[len(m.routeStack)-1]
}

func (m *Model) pushBlock(b ActiveBlock) {
	if m.currentBlock() == b {
		return
	}
	m.routeStack = append(m.routeStack, b)
}

func (m *Model) popBlock() {
	if len(m.routeStack) > 0 {
		m.routeStack = m.routeStack[:len(m.routeStack)-1]
	}
}

// Snapshot accessors. The data pointer is swapped wholesale by the
// refresher, so a nil snapshot just means everything is still loading.

func (m *Model) namespaces() []model.Namespace {
	if m.data == nil {
		return nil
	}
	return m.data.Namespaces
}

func (m *Model) nodeMetrics() []model.NodeMetrics {
	if m.data == nil {
		return nil
	}
	return m.data.NodeMetrics
}

func (m *Model) cliVersions() []model.CLIVersion {
	if m.data == nil {
		return nil
	}
	return m.data.CLIs
}

func (m *Model) pods() []model.PodRow {
	if m.data == nil {
		return nil
	}
	return m.data.Pods
}

func (m *Model) nodes() []model.NodeRow {
	if m.data == nil {
		return nil
	}
	return m.data.Nodes
}

func (m *Model) activeContext() *model.KubeContext {
	if m.data == nil {
		return nil
	}
	return m.data.ActiveContext
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.fetchData(),
		m.scheduleRefresh(),
	)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.MouseMsg:
		return m, nil

	case refreshTickMsg:
		if m.quitting {
			return m, nil
		}
		m.isLoading = true
		return m, tea.Batch(
			m.fetchData(),
			m.scheduleRefresh(),
		)

	case dataLoadedMsg:
		m.isLoading = false
		if msg.err != nil {
			m.err = msg.err
			m.logger.Warn("Failed to load overview data", zap.Error(msg.err))
			return m, nil
		}
		m.err = nil
		m.data = msg.data
		m.clampNamespaceCursor()
		return m, nil

	case exportResultMsg:
		if msg.err != nil {
			m.statusMessage = msg.err.Error()
		} else {
			m.statusMessage = m.TF("msg.exported", map[string]interface{}{"Path": msg.path})
		}
		return m, m.clearStatusLater()

	case clearStatusMsg:
		m.statusMessage = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The filter block swallows everything except its few control keys, so
	// typing a namespace name does not trigger global bindings.
	if m.currentBlock() == BlockFilter {
		switch {
		case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Enter):
			m.popBlock()
			return m, nil
		case key.Matches(msg, m.keys.ToggleFilter):
			m.showFilter = false
			m.popBlock()
			return m, nil
		}
		var cmd tea.Cmd
		m.filterInput, cmd = m.filterInput.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Refresh):
		m.isLoading = true
		return m, m.forceRefresh()

	case key.Matches(msg, m.keys.ToggleInfoBar):
		m.showInfoBar = !m.showInfoBar
		return m, nil

	case key.Matches(msg, m.keys.ToggleFilter):
		m.showFilter = !m.showFilter
		if !m.showFilter {
			m.filterInput.Blur()
		}
		return m, nil

	case key.Matches(msg, m.keys.JumpToFilter):
		m.showFilter = true
		m.pushBlock(BlockFilter)
		return m, m.filterInput.Focus()

	case key.Matches(msg, m.keys.JumpToNamespaces):
		m.pushBlock(BlockNamespaces)
		return m, nil

	case key.Matches(msg, m.keys.SelectAllNamespaces):
		m.selectedNamespace = ""
		return m, nil

	case key.Matches(msg, m.keys.Back):
		m.popBlock()
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		m.activeTab = (m.activeTab + 1) % tabCount
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.currentBlock() == BlockNamespaces && m.namespaceCursor > 0 {
			m.namespaceCursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.currentBlock() == BlockNamespaces && m.namespaceCursor < len(m.namespaces())-1 {
			m.namespaceCursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		if m.currentBlock() == BlockNamespaces {
			if namespaces := m.namespaces(); len(namespaces) > 0 {
				m.selectedNamespace = namespaces[m.namespaceCursor].Name
			}
			m.popBlock()
		}
		return m, nil

	case key.Matches(msg, m.keys.CopyName):
		return m, m.copySelection()

	case key.Matches(msg, m.keys.ExportJSON):
		return m, m.exportSnapshot(exportJSON)

	case key.Matches(msg, m.keys.ExportYAML):
		return m, m.exportSnapshot(exportYAML)
	}

	return m, nil
}

// View renders the full screen
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return m.T("app.initializing")
	}

	area := Rect{X: 0, Y: 0, Width: m.width, Height: m.height}
	if m.statusMessage != "" {
		area.Height--
	}

	view, _ := m.renderOverview(area)

	if m.statusMessage != "" {
		view += "\n" + styleMuted(m.lightTheme).Render(truncate(m.statusMessage, m.width))
	}
	return view
}

func (m *Model) clampNamespaceCursor() {
	if n := len(m.namespaces()); m.namespaceCursor >= n {
		m.namespaceCursor = 0
	}
}

func (m *Model) fetchData() tea.Cmd {
	return func() tea.Msg {
		data, err := m.dataProvider.GetOverviewData()
		return dataLoadedMsg{data: data, err: err}
	}
}

func (m *Model) forceRefresh() tea.Cmd {
	return func() tea.Msg {
		if err := m.dataProvider.ForceRefresh(); err != nil {
			return dataLoadedMsg{err: err}
		}
		data, err := m.dataProvider.GetOverviewData()
		return dataLoadedMsg{data: data, err: err}
	}
}

func (m *Model) scheduleRefresh() tea.Cmd {
	return tea.Tick(m.refreshInterval, func(t time.Time) tea.Msg {
		return refreshTickMsg(t)
	})
}

// copySelection puts the selected namespace, or the context name when no
// namespace is selected, on the system clipboard.
func (m *Model) copySelection() tea.Cmd {
	name := m.selectedNamespace
	if name == "" {
		if ctx := m.activeContext(); ctx != nil {
			name = ctx.Name
		}
	}
	if name == "" {
		return nil
	}

	if err := clipboard.WriteAll(name); err != nil {
		m.logger.Warn("Clipboard write failed", zap.Error(err))
		m.statusMessage = m.T("msg.copy_failed")
	} else {
		m.statusMessage = m.TF("msg.copied", map[string]interface{}{"Name": name})
	}
	return m.clearStatusLater()
}

func (m *Model) clearStatusLater() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
