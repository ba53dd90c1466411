package mustgather

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

const configGroupDir = "config.openshift.io"

// DegradedOperators returns the cluster operators that are degraded, not
// available, or still progressing.
func (s *dirSnapshot) DegradedOperators(ctx context.Context) ([]ClusterOperatorSummary, error) {
	all, err := s.loadClusterOperators()
	if err != nil {
		return nil, err
	}

	var unhealthy []ClusterOperatorSummary
	for _, op := range all {
		if op.Degraded || !op.Available || op.Progressing {
			unhealthy = append(unhealthy, op)
		}
	}
	return unhealthy, nil
}

// EtcdHealth combines the etcd ClusterOperator conditions with the member
// pods captured in openshift-etcd.
func (s *dirSnapshot) EtcdHealth(ctx context.Context) (*EtcdStatus, error) {
	status := &EtcdStatus{Healthy: true}

	operators, err := s.loadClusterOperators()
	if err != nil {
		return nil, err
	}
	for _, op := range operators {
		if op.Name != "etcd" {
			continue
		}
		status.OperatorConditions = op.Conditions
		if op.Degraded || !op.Available {
			status.Healthy = false
		}
	}

	pods, err := s.loadPodList("openshift-etcd")
	if err != nil {
		return nil, err
	}
	for _, pod := range pods {
		// Member pods are named etcd-<node>; guard and installer pods in the
		// same namespace are not members.
		if !strings.HasPrefix(pod.Name, "etcd-") ||
			strings.Contains(pod.Name, "quorum-guard") ||
			strings.Contains(pod.Name, "installer") {
			continue
		}

		summary := summarizePod(pod)
		member := EtcdMemberHealth{
			Name:     pod.Name,
			Node:     pod.Spec.NodeName,
			Ready:    summary.Reason == "" && summary.Phase == "Running",
			Restarts: summary.Restarts,
		}
		if !member.Ready {
			status.Healthy = false
		}
		status.Members = append(status.Members, member)
	}

	return status, nil
}

// loadClusterOperators decodes every captured ClusterOperator, sorted by
// name. An absent directory yields an empty result, not an error: partial
// gathers are common.
func (s *dirSnapshot) loadClusterOperators() ([]ClusterOperatorSummary, error) {
	dir := filepath.Join(s.root, clusterScopedDir, configGroupDir, "clusteroperators")
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing cluster operators: %w", err)
	}

	var operators []ClusterOperatorSummary
	for _, entry := range entries {
		if entry.IsDir() || !isYAML(entry.Name()) {
			continue
		}
		u, err := decodeUnstructured(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		operators = append(operators, summarizeClusterOperator(u))
	}

	sort.Slice(operators, func(i, j int) bool { return operators[i].Name < operators[j].Name })
	return operators, nil
}

// summarizeClusterOperator condenses an unstructured ClusterOperator into
// its summary form.
func summarizeClusterOperator(u *unstructured.Unstructured) ClusterOperatorSummary {
	summary := ClusterOperatorSummary{Name: u.GetName()}

	conditions, _, _ := unstructured.NestedSlice(u.Object, "status", "conditions")
	for _, raw := range conditions {
		m, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		c := OperatorCondition{
			Type:               nestedString(m, "type"),
			Status:             nestedString(m, "status"),
			Reason:             nestedString(m, "reason"),
			Message:            nestedString(m, "message"),
			LastTransitionTime: nestedString(m, "lastTransitionTime"),
		}
		switch c.Type {
		case "Available":
			summary.Available = c.Status == "True"
		case "Progressing":
			summary.Progressing = c.Status == "True"
		case "Degraded":
			summary.Degraded = c.Status == "True"
		}
		summary.Conditions = append(summary.Conditions, c)
	}

	versions, _, _ := unstructured.NestedSlice(u.Object, "status", "versions")
	for _, raw := range versions {
		m, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		if nestedString(m, "name") == "operator" {
			summary.Version = nestedString(m, "version")
		}
	}

	return summary
}

func nestedString(m map[string]interface{}, key string) string {
	v, _ := m[key].(string)
	return v
}

func isYAML(name string) bool {
	return strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")
}
