package datasource

import (
	"context"
	"testing"

	"go.uber.org/zap"
)

func TestUsagePercent(t *testing.T) {
	tests := []struct {
		name        string
		usage       int64
		allocatable int64
		expected    float64
	}{
		{"half used", 2000, 4000, 50},
		{"fully used", 4000, 4000, 100},
		{"overcommitted exceeds 100", 6000, 4000, 150},
		{"idle", 0, 4000, 0},
		{"no capacity reported", 500, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := usagePercent(tt.usage, tt.allocatable); got != tt.expected {
				t.Errorf("usagePercent(%d, %d) = %v, want %v", tt.usage, tt.allocatable, got, tt.expected)
			}
		})
	}
}

func TestCollectNodeMetricsWithoutKubelet(t *testing.T) {
	agg := &AggregatedDataSource{logger: zap.NewNop()}

	capacities := []nodeCapacity{{name: "node1", cpuAllocatable: 4000}}
	metrics := agg.collectNodeMetrics(context.Background(), capacities)
	if metrics != nil {
		t.Errorf("Expected no metrics without a kubelet client, got %v", metrics)
	}
}

func TestProbeCLIsWithoutProber(t *testing.T) {
	agg := &AggregatedDataSource{logger: zap.NewNop()}

	if clis := agg.probeCLIs(context.Background()); clis != nil {
		t.Errorf("Expected no CLI results without a prober, got %v", clis)
	}
}
