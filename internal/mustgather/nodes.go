package mustgather

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
	corev1 "k8s.io/api/core/v1"
)

const nodeRoleLabelPrefix = "node-role.kubernetes.io/"

// NodeConditions lists every node with its readiness and pressure
// conditions, plus the failing pods scheduled on it.
func (s *dirSnapshot) NodeConditions(ctx context.Context) ([]NodeSummary, error) {
	nodes, err := s.loadNodes(ctx)
	if err != nil {
		return nil, err
	}

	failing, err := s.FailingPods(ctx, "")
	if err != nil {
		return nil, err
	}
	failingByNode := make(map[string][]PodSummary)
	for _, pod := range failing {
		if pod.Node != "" {
			failingByNode[pod.Node] = append(failingByNode[pod.Node], pod)
		}
	}

	summaries := make([]NodeSummary, 0, len(nodes))
	for _, node := range nodes {
		summary := NodeSummary{
			Name:        node.Name,
			Roles:       nodeRoles(node),
			ProblemPods: failingByNode[node.Name],
		}
		for _, c := range node.Status.Conditions {
			summary.Conditions = append(summary.Conditions, NodeCondition{
				Type:    string(c.Type),
				Status:  string(c.Status),
				Reason:  c.Reason,
				Message: c.Message,
			})
			if c.Type == corev1.NodeReady {
				summary.Ready = c.Status == corev1.ConditionTrue
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// NodeResourceUsage reports per-node capacity and allocatable resources.
func (s *dirSnapshot) NodeResourceUsage(ctx context.Context) ([]NodeSummary, error) {
	nodes, err := s.loadNodes(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]NodeSummary, 0, len(nodes))
	for _, node := range nodes {
		summary := NodeSummary{
			Name:        node.Name,
			Roles:       nodeRoles(node),
			Capacity:    resourceListToMap(node.Status.Capacity),
			Allocatable: resourceListToMap(node.Status.Allocatable),
		}
		for _, c := range node.Status.Conditions {
			if c.Type == corev1.NodeReady {
				summary.Ready = c.Status == corev1.ConditionTrue
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// loadNodes decodes the per-node YAML files, concurrently since large
// clusters capture hundreds of them. Output is sorted by name.
func (s *dirSnapshot) loadNodes(ctx context.Context) ([]corev1.Node, error) {
	dir := filepath.Join(s.root, clusterScopedDir, "core", "nodes")
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing nodes: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if !entry.IsDir() && isYAML(entry.Name()) {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}

	nodes := make([]corev1.Node, len(paths))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, path := range paths {
		g.Go(func() error {
			node := &corev1.Node{}
			if err := decodeTypedList(path, node); err != nil {
				return err
			}
			nodes[i] = *node
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(nodes, func(i, j int) bool { return nodes[i].Name < nodes[j].Name })
	return nodes, nil
}

// nodeRoles extracts the role names from node-role.kubernetes.io/ labels,
// sorted.
func nodeRoles(node corev1.Node) []string {
	var roles []string
	for label := range node.Labels {
		if role, ok := strings.CutPrefix(label, nodeRoleLabelPrefix); ok && role != "" {
			roles = append(roles, role)
		}
	}
	sort.Strings(roles)
	return roles
}

func resourceListToMap(list corev1.ResourceList) map[string]string {
	if len(list) == 0 {
		return nil
	}
	out := make(map[string]string, len(list))
	for name, quantity := range list {
		out[string(name)] = quantity.String()
	}
	return out
}
