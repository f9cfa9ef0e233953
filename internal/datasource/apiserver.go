package datasource

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/yourusername/kubedash/internal/model"
	"go.uber.org/zap"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
)

// APIServerClient reads cluster state from the Kubernetes API server
type APIServerClient struct {
	clientset kubernetes.Interface
	config    *rest.Config
	logger    *zap.Logger
}

// nodeCapacity carries the allocatable resources the metrics aggregation
// needs to turn raw usage into percentages.
type nodeCapacity struct {
	name           string
	cpuAllocatable int64 // millicores
	memAllocatable int64 // bytes
}

// NewAPIServerClient creates a client from an already-built REST config
func NewAPIServerClient(config *rest.Config, logger *zap.Logger) (*APIServerClient, error) {
	clientset, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create clientset: %w", err)
	}

	logger.Info("API server client initialized", zap.String("host", config.Host))

	return &APIServerClient{
		clientset: clientset,
		config:    config,
		logger:    logger,
	}, nil
}

// GetConfig exposes the REST config so sibling clients (kubelet proxy) can
// share transport and auth.
func (c *APIServerClient) GetConfig() *rest.Config {
	return c.config
}

// GetNamespaces lists all namespaces, sorted by name
func (c *APIServerClient) GetNamespaces(ctx context.Context) ([]model.Namespace, error) {
	list, err := c.clientset.CoreV1().Namespaces().List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list namespaces: %w", err)
	}

	namespaces := make([]model.Namespace, 0, len(list.Items))
	for i := range list.Items {
		namespaces = append(namespaces, convertNamespace(&list.Items[i]))
	}
	sort.Slice(namespaces, func(i, j int) bool { return namespaces[i].Name < namespaces[j].Name })

	return namespaces, nil
}

// GetNodes lists all nodes as display rows plus their allocatable capacity
func (c *APIServerClient) GetNodes(ctx context.Context) ([]model.NodeRow, []nodeCapacity, error) {
	list, err := c.clientset.CoreV1().Nodes().List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list nodes: %w", err)
	}

	rows := make([]model.NodeRow, 0, len(list.Items))
	capacities := make([]nodeCapacity, 0, len(list.Items))
	for i := range list.Items {
		node := &list.Items[i]
		rows = append(rows, convertNode(node))
		capacities = append(capacities, nodeCapacity{
			name:           node.Name,
			cpuAllocatable: node.Status.Allocatable.Cpu().MilliValue(),
			memAllocatable: node.Status.Allocatable.Memory().Value(),
		})
	}

	return rows, capacities, nil
}

// GetPods lists pods across all namespaces
func (c *APIServerClient) GetPods(ctx context.Context) ([]model.PodRow, error) {
	list, err := c.clientset.CoreV1().Pods(metav1.NamespaceAll).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list pods: %w", err)
	}

	pods := make([]model.PodRow, 0, len(list.Items))
	for i := range list.Items {
		pods = append(pods, convertPod(&list.Items[i]))
	}

	return pods, nil
}

// Close cleans up resources
func (c *APIServerClient) Close() error {
	return nil
}

// convertNamespace maps a Namespace object to its display row
func convertNamespace(ns *corev1.Namespace) model.Namespace {
	return model.Namespace{
		Name:   ns.Name,
		Status: string(ns.Status.Phase),
	}
}

// convertNode maps a Node object to its display row
func convertNode(node *corev1.Node) model.NodeRow {
	status := "Unknown"
	for _, cond := range node.Status.Conditions {
		if cond.Type == corev1.NodeReady {
			if cond.Status == corev1.ConditionTrue {
				status = "Ready"
			} else {
				status = "NotReady"
			}
			break
		}
	}

	return model.NodeRow{
		Name:    node.Name,
		Status:  status,
		Roles:   strings.Join(extractNodeRoles(node), ","),
		Version: node.Status.NodeInfo.KubeletVersion,
		Age:     time.Since(node.CreationTimestamp.Time),
	}
}

// extractNodeRoles extracts node roles from node-role.kubernetes.io labels
func extractNodeRoles(node *corev1.Node) []string {
	var roles []string
	for key := range node.Labels {
		if role, ok := strings.CutPrefix(key, "node-role.kubernetes.io/"); ok && role != "" {
			roles = append(roles, role)
		}
	}
	if len(roles) == 0 {
		roles = append(roles, "worker")
	}
	sort.Strings(roles)
	return roles
}

// convertPod maps a Pod object to its display row. The status column
// prefers a waiting reason (CrashLoopBackOff and friends) over the bare
// phase, same as kubectl.
func convertPod(pod *corev1.Pod) model.PodRow {
	ready := 0
	total := len(pod.Spec.Containers)
	var restarts int32
	status := string(pod.Status.Phase)

	for _, cs := range pod.Status.ContainerStatuses {
		if cs.Ready {
			ready++
		}
		restarts += cs.RestartCount
		if cs.State.Waiting != nil && cs.State.Waiting.Reason != "" {
			status = cs.State.Waiting.Reason
		}
	}

	if pod.DeletionTimestamp != nil {
		status = "Terminating"
	}

	return model.PodRow{
		Namespace: pod.Namespace,
		Name:      pod.Name,
		Ready:     fmt.Sprintf("%d/%d", ready, total),
		Status:    status,
		Restarts:  restarts,
		Age:       time.Since(pod.CreationTimestamp.Time),
	}
}
