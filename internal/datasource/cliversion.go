package datasource

import (
	"context"
	"os/exec"
	"regexp"
	"time"

	"github.com/yourusername/kubedash/internal/model"
	"go.uber.org/zap"
)

const probeTimeout = 5 * time.Second

// versionPattern matches the first semver-looking token in a tool's version
// output, with or without the leading v.
var versionPattern = regexp.MustCompile(`v?(\d+\.\d+\.\d+[\w.+-]*)`)

// versionArgs maps tool names to the arguments that print a version without
// touching the cluster. Tools not listed fall back to --version.
var versionArgs = map[string][]string{
	"kubectl": {"version", "--client"},
	"helm":    {"version", "--short"},
	"docker":  {"--version"},
}

// CLIProber checks which companion CLI tools are installed and what version
// they report.
type CLIProber struct {
	tools  []string
	logger *zap.Logger
}

// NewCLIProber creates a prober for the configured tool list
func NewCLIProber(tools []string, logger *zap.Logger) *CLIProber {
	return &CLIProber{tools: tools, logger: logger}
}

// Probe runs every configured tool once. A tool that is missing or fails to
// report a version still produces an entry, flagged unhealthy, so the panel
// can show it in the failure style.
func (p *CLIProber) Probe(ctx context.Context) []model.CLIVersion {
	results := make([]model.CLIVersion, 0, len(p.tools))
	for _, tool := range p.tools {
		results = append(results, p.probeTool(ctx, tool))
	}
	return results
}

func (p *CLIProber) probeTool(ctx context.Context, tool string) model.CLIVersion {
	if _, err := exec.LookPath(tool); err != nil {
		p.logger.Debug("CLI tool not found", zap.String("tool", tool))
		return model.CLIVersion{Name: tool, Version: "not found", Status: false}
	}

	args, ok := versionArgs[tool]
	if !ok {
		args = []string{"--version"}
	}

	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, tool, args...).CombinedOutput()
	version := parseVersion(string(out))

	if err != nil || version == "" {
		p.logger.Debug("CLI version probe failed",
			zap.String("tool", tool),
			zap.Error(err),
		)
		if version == "" {
			version = "unknown"
		}
		return model.CLIVersion{Name: tool, Version: version, Status: false}
	}

	return model.CLIVersion{Name: tool, Version: version, Status: true}
}

// parseVersion extracts the first version token from probe output
func parseVersion(out string) string {
	match := versionPattern.FindStringSubmatch(out)
	if match == nil {
		return ""
	}
	return match[1]
}
