package model

import "time"

// KubeContext describes the kubeconfig context the dashboard is attached to
type KubeContext struct {
	Name    string
	Cluster string
	User    string
}

// Namespace represents one namespace row in the overview status bar
type Namespace struct {
	Name   string
	Status string
}

// NodeMetrics is one per-node utilization sample.
// Percentages are 0-100 (usage relative to allocatable) and may exceed 100
// when a node is overcommitted.
type NodeMetrics struct {
	Name       string
	CPUPercent float64
	MemPercent float64
}

// CLIVersion describes one external CLI tool probe result
type CLIVersion struct {
	Name    string
	Version string
	Status  bool // true when the tool is installed and responded
}

// PodRow is a flattened pod entry for the resource tabs
type PodRow struct {
	Namespace string
	Name      string
	Ready     string
	Status    string
	Restarts  int32
	Age       time.Duration
}

// NodeRow is a flattened node entry for the resource tabs
type NodeRow struct {
	Name    string
	Status  string
	Roles   string
	Version string
	Age     time.Duration
}

// OverviewData is the full snapshot the UI renders from. It is replaced
// wholesale by the refresher; renderers only ever read it.
type OverviewData struct {
	ActiveContext *KubeContext
	Namespaces    []Namespace
	NodeMetrics   []NodeMetrics
	CLIs          []CLIVersion
	Pods          []PodRow
	Nodes         []NodeRow
	FetchedAt     time.Time
}
