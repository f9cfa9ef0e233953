package datasource

import (
	"testing"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

func TestConvertNamespace(t *testing.T) {
	ns := &corev1.Namespace{
		ObjectMeta: metav1.ObjectMeta{Name: "kube-system"},
		Status:     corev1.NamespaceStatus{Phase: corev1.NamespaceActive},
	}

	row := convertNamespace(ns)
	if row.Name != "kube-system" {
		t.Errorf("Expected name 'kube-system', got %q", row.Name)
	}
	if row.Status != "Active" {
		t.Errorf("Expected status 'Active', got %q", row.Status)
	}
}

func TestConvertNode(t *testing.T) {
	node := &corev1.Node{
		ObjectMeta: metav1.ObjectMeta{
			Name: "test-node",
			Labels: map[string]string{
				"node-role.kubernetes.io/control-plane": "",
				"kubernetes.io/hostname":                "test-node",
			},
		},
		Status: corev1.NodeStatus{
			Conditions: []corev1.NodeCondition{
				{Type: corev1.NodeDiskPressure, Status: corev1.ConditionFalse},
				{Type: corev1.NodeReady, Status: corev1.ConditionTrue},
			},
			NodeInfo: corev1.NodeSystemInfo{KubeletVersion: "v1.29.2"},
		},
	}

	row := convertNode(node)
	if row.Name != "test-node" {
		t.Errorf("Expected name 'test-node', got %q", row.Name)
	}
	if row.Status != "Ready" {
		t.Errorf("Expected status 'Ready', got %q", row.Status)
	}
	if row.Roles != "control-plane" {
		t.Errorf("Expected roles 'control-plane', got %q", row.Roles)
	}
	if row.Version != "v1.29.2" {
		t.Errorf("Expected version 'v1.29.2', got %q", row.Version)
	}
}

func TestConvertNodeNotReady(t *testing.T) {
	node := &corev1.Node{
		ObjectMeta: metav1.ObjectMeta{Name: "bad-node"},
		Status: corev1.NodeStatus{
			Conditions: []corev1.NodeCondition{
				{Type: corev1.NodeReady, Status: corev1.ConditionFalse},
			},
		},
	}

	row := convertNode(node)
	if row.Status != "NotReady" {
		t.Errorf("Expected status 'NotReady', got %q", row.Status)
	}
	if row.Roles != "worker" {
		t.Errorf("Unlabeled node should default to 'worker', got %q", row.Roles)
	}
}

func TestConvertPod(t *testing.T) {
	pod := &corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{
			Name:      "web-1",
			Namespace: "default",
		},
		Spec: corev1.PodSpec{
			Containers: []corev1.Container{{Name: "app"}, {Name: "sidecar"}},
		},
		Status: corev1.PodStatus{
			Phase: corev1.PodRunning,
			ContainerStatuses: []corev1.ContainerStatus{
				{Name: "app", Ready: true, RestartCount: 2},
				{Name: "sidecar", Ready: false, RestartCount: 1},
			},
		},
	}

	row := convertPod(pod)
	if row.Namespace != "default" || row.Name != "web-1" {
		t.Errorf("Identity mismatch: %s/%s", row.Namespace, row.Name)
	}
	if row.Ready != "1/2" {
		t.Errorf("Expected ready '1/2', got %q", row.Ready)
	}
	if row.Status != "Running" {
		t.Errorf("Expected status 'Running', got %q", row.Status)
	}
	if row.Restarts != 3 {
		t.Errorf("Expected 3 restarts, got %d", row.Restarts)
	}
}

func TestConvertPodWaitingReason(t *testing.T) {
	pod := &corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{Name: "crashy", Namespace: "default"},
		Spec: corev1.PodSpec{
			Containers: []corev1.Container{{Name: "app"}},
		},
		Status: corev1.PodStatus{
			Phase: corev1.PodRunning,
			ContainerStatuses: []corev1.ContainerStatus{
				{
					Name: "app",
					State: corev1.ContainerState{
						Waiting: &corev1.ContainerStateWaiting{Reason: "CrashLoopBackOff"},
					},
				},
			},
		},
	}

	row := convertPod(pod)
	if row.Status != "CrashLoopBackOff" {
		t.Errorf("Waiting reason should override phase, got %q", row.Status)
	}
}

func TestConvertPodTerminating(t *testing.T) {
	now := metav1.Now()
	pod := &corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{
			Name:              "going-away",
			Namespace:         "default",
			DeletionTimestamp: &now,
		},
		Status: corev1.PodStatus{Phase: corev1.PodRunning},
	}

	row := convertPod(pod)
	if row.Status != "Terminating" {
		t.Errorf("Deleting pod should read 'Terminating', got %q", row.Status)
	}
}
