package datasource

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/yourusername/kubedash/internal/model"
	"go.uber.org/zap"
)

// AggregatedDataSource assembles the overview snapshot from the API server,
// the kubelet metrics proxy, and the local CLI prober. The kubelet and CLI
// collaborators are optional; without them the snapshot simply carries empty
// collections, which the UI renders as valid states.
type AggregatedDataSource struct {
	api           *APIServerClient
	kubelet       *KubeletClient
	cli           *CLIProber
	activeContext *model.KubeContext
	logger        *zap.Logger
	maxConcurrent int

	cliOnce     sync.Once
	cliVersions []model.CLIVersion
}

// NewAggregatedDataSource creates the combined data source
func NewAggregatedDataSource(
	api *APIServerClient,
	kubelet *KubeletClient,
	cli *CLIProber,
	activeContext *model.KubeContext,
	logger *zap.Logger,
	maxConcurrent int,
) *AggregatedDataSource {
	if maxConcurrent <= 0 {
		maxConcurrent = 10
	}
	return &AggregatedDataSource{
		api:           api,
		kubelet:       kubelet,
		cli:           cli,
		activeContext: activeContext,
		logger:        logger,
		maxConcurrent: maxConcurrent,
	}
}

// GetOverviewData fetches a complete overview snapshot
func (s *AggregatedDataSource) GetOverviewData(ctx context.Context) (*model.OverviewData, error) {
	start := time.Now()

	namespaces, err := s.api.GetNamespaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get namespaces: %w", err)
	}

	nodes, capacities, err := s.api.GetNodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get nodes: %w", err)
	}

	pods, err := s.api.GetPods(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get pods: %w", err)
	}

	data := &model.OverviewData{
		ActiveContext: s.activeContext,
		Namespaces:    namespaces,
		Nodes:         nodes,
		Pods:          pods,
		NodeMetrics:   s.collectNodeMetrics(ctx, capacities),
		CLIs:          s.probeCLIs(ctx),
		FetchedAt:     time.Now(),
	}

	s.logger.Debug("Assembled overview snapshot",
		zap.Int("namespaces", len(data.Namespaces)),
		zap.Int("nodes", len(data.Nodes)),
		zap.Int("pods", len(data.Pods)),
		zap.Int("node_metrics", len(data.NodeMetrics)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return data, nil
}

// collectNodeMetrics queries each node's kubelet concurrently, bounded by
// maxConcurrent, and converts usage into percent-of-allocatable samples.
// Nodes that fail to answer are skipped; the rest of the frame still renders.
func (s *AggregatedDataSource) collectNodeMetrics(ctx context.Context, capacities []nodeCapacity) []model.NodeMetrics {
	if s.kubelet == nil || len(capacities) == 0 {
		return nil
	}

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		metrics []model.NodeMetrics
	)
	sem := make(chan struct{}, s.maxConcurrent)

	for _, nc := range capacities {
		wg.Add(1)
		go func(nc nodeCapacity) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			cpuMillicores, memoryBytes, err := s.kubelet.GetNodeUsage(ctx, nc.name)
			if err != nil {
				s.logger.Debug("Skipping node metrics",
					zap.String("node", nc.name),
					zap.Error(err),
				)
				return
			}

			sample := model.NodeMetrics{
				Name:       nc.name,
				CPUPercent: usagePercent(cpuMillicores, nc.cpuAllocatable),
				MemPercent: usagePercent(memoryBytes, nc.memAllocatable),
			}

			mu.Lock()
			metrics = append(metrics, sample)
			mu.Unlock()
		}(nc)
	}

	wg.Wait()
	return metrics
}

// usagePercent converts raw usage against allocatable capacity into a 0-100
// sample. Overcommit can push it past 100; nodes reporting no capacity read 0.
func usagePercent(usage, allocatable int64) float64 {
	if allocatable <= 0 {
		return 0
	}
	return float64(usage) / float64(allocatable) * 100
}

// probeCLIs runs the CLI version probe once and memoizes the result;
// installed tool versions do not change while the dashboard runs.
func (s *AggregatedDataSource) probeCLIs(ctx context.Context) []model.CLIVersion {
	if s.cli == nil {
		return nil
	}
	s.cliOnce.Do(func() {
		s.cliVersions = s.cli.Probe(ctx)
	})
	return s.cliVersions
}

// Close cleans up all underlying clients
func (s *AggregatedDataSource) Close() error {
	if s.kubelet != nil {
		if err := s.kubelet.Close(); err != nil {
			return err
		}
	}
	if s.api != nil {
		return s.api.Close()
	}
	return nil
}
