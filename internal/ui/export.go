package ui

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"sigs.k8s.io/yaml"
)

// exportFormat selects the on-disk encoding of an exported snapshot.
type exportFormat int

const (
	exportJSON exportFormat = iota
	exportYAML
)

const exportDir = "exports"

// exportSnapshot writes the current overview snapshot to a timestamped file
// under ./exports. The snapshot pointer is captured before the command runs
// so a concurrent refresh cannot swap it mid-write.
func (m *Model) exportSnapshot(format exportFormat) tea.Cmd {
	data := m.data
	logger := m.logger

	return func() tea.Msg {
		if data == nil {
			return exportResultMsg{err: fmt.Errorf("no data to export yet")}
		}

		if err := os.MkdirAll(exportDir, 0o755); err != nil {
			return exportResultMsg{err: fmt.Errorf("failed to create export directory: %w", err)}
		}

		var (
			raw []byte
			ext string
			err error
		)
		switch format {
		case exportYAML:
			ext = "yaml"
			raw, err = yaml.Marshal(data)
		default:
			ext = "json"
			raw, err = json.MarshalIndent(data, "", "  ")
		}
		if err != nil {
			return exportResultMsg{err: fmt.Errorf("failed to encode snapshot: %w", err)}
		}

		path := filepath.Join(exportDir, fmt.Sprintf("overview-%s.%s", time.Now().Format("20060102-150405"), ext))
		if err := os.WriteFile(path, raw, 0o644); err != nil {
			return exportResultMsg{err: fmt.Errorf("failed to write %s: %w", path, err)}
		}

		logger.Info("Exported overview snapshot", zap.String("path", path))
		return exportResultMsg{path: path}
	}
}
