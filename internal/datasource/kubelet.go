package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
	"k8s.io/client-go/rest"
)

const (
	summaryAPIPath     = "/stats/summary"
	defaultHTTPTimeout = 3 * time.Second
)

// statsSummary is the slice of the kubelet Summary API response the
// dashboard cares about: node-level CPU and working-set memory.
type statsSummary struct {
	Node struct {
		CPU *struct {
			UsageNanoCores *uint64 `json:"usageNanoCores"`
		} `json:"cpu"`
		Memory *struct {
			WorkingSetBytes *uint64 `json:"workingSetBytes"`
		} `json:"memory"`
	} `json:"node"`
}

// KubeletClient fetches per-node usage through the API server's node proxy,
// which works with whatever auth the kubeconfig already carries.
type KubeletClient struct {
	httpClient *http.Client
	config     *rest.Config
	logger     *zap.Logger
}

// NewKubeletClient creates a kubelet Summary API client
func NewKubeletClient(config *rest.Config, logger *zap.Logger) (*KubeletClient, error) {
	transport, err := rest.TransportFor(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create transport from config: %w", err)
	}

	logger.Info("Kubelet client using API server proxy")

	return &KubeletClient{
		httpClient: &http.Client{
			Timeout:   defaultHTTPTimeout,
			Transport: transport,
		},
		config: config,
		logger: logger,
	}, nil
}

// GetNodeUsage returns the node's current CPU usage in millicores and
// working-set memory in bytes.
func (c *KubeletClient) GetNodeUsage(ctx context.Context, nodeName string) (cpuMillicores, memoryBytes int64, err error) {
	url := fmt.Sprintf("%s/api/v1/nodes/%s/proxy%s", c.config.Host, nodeName, summaryAPIPath)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to build summary request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to fetch summary for %s: %w", nodeName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, 0, fmt.Errorf("summary request for %s returned %d: %s", nodeName, resp.StatusCode, string(body))
	}

	var summary statsSummary
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		return 0, 0, fmt.Errorf("failed to decode summary for %s: %w", nodeName, err)
	}

	if summary.Node.CPU != nil && summary.Node.CPU.UsageNanoCores != nil {
		cpuMillicores = int64(*summary.Node.CPU.UsageNanoCores / 1_000_000)
	}
	if summary.Node.Memory != nil && summary.Node.Memory.WorkingSetBytes != nil {
		memoryBytes = int64(*summary.Node.Memory.WorkingSetBytes)
	}

	return cpuMillicores, memoryBytes, nil
}

// Close cleans up resources
func (c *KubeletClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}
