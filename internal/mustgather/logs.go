package mustgather

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// PodLogs returns the captured log of one container, optionally limited to
// the last tailLines lines. When container is empty the pod must have exactly
// one captured container.
func (s *dirSnapshot) PodLogs(ctx context.Context, namespace, podName, container string, tailLines int) (string, error) {
	if namespace == "" || podName == "" {
		return "", fmt.Errorf("namespace and podName are required")
	}

	podDir := filepath.Join(s.root, namespacesDir, namespace, "pods", podName)
	if container == "" {
		containers, err := capturedContainers(podDir)
		if err != nil {
			return "", err
		}
		switch len(containers) {
		case 0:
			return "", fmt.Errorf("no logs captured for pod %s/%s", namespace, podName)
		case 1:
			container = containers[0]
		default:
			return "", fmt.Errorf("pod %s/%s has multiple captured containers (%s): specify one",
				namespace, podName, strings.Join(containers, ", "))
		}
	}

	// Must-gather nests the container name twice: pods/<pod>/<c>/<c>/logs/current.log
	path := filepath.Join(podDir, container, container, "logs", "current.log")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("no log captured for container %q of pod %s/%s", container, namespace, podName)
		}
		return "", fmt.Errorf("reading pod log: %w", err)
	}

	return tail(string(data), tailLines), nil
}

// OperatorLogs concatenates the captured logs of a cluster operator's
// controller pods. Operator pods conventionally live in
// openshift-<operator>-operator, with openshift-<operator> as fallback.
func (s *dirSnapshot) OperatorLogs(ctx context.Context, operator string, tailLines int) (string, error) {
	if operator == "" {
		return "", fmt.Errorf("operator is required")
	}

	var namespace string
	for _, candidate := range []string{"openshift-" + operator + "-operator", "openshift-" + operator} {
		if _, err := os.Stat(filepath.Join(s.root, namespacesDir, candidate, "pods")); err == nil {
			namespace = candidate
			break
		}
	}
	if namespace == "" {
		return "", fmt.Errorf("no captured pods for operator %q", operator)
	}

	podsDir := filepath.Join(s.root, namespacesDir, namespace, "pods")
	podEntries, err := os.ReadDir(podsDir)
	if err != nil {
		return "", fmt.Errorf("listing operator pods: %w", err)
	}

	var sections []string
	for _, podEntry := range podEntries {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if !podEntry.IsDir() {
			continue
		}
		podDir := filepath.Join(podsDir, podEntry.Name())
		containers, err := capturedContainers(podDir)
		if err != nil {
			return "", err
		}
		for _, container := range containers {
			path := filepath.Join(podDir, container, container, "logs", "current.log")
			data, err := os.ReadFile(path)
			if err != nil {
				if os.IsNotExist(err) {
					continue
				}
				return "", fmt.Errorf("reading operator log: %w", err)
			}
			header := fmt.Sprintf("==== pod/%s container/%s ====", podEntry.Name(), container)
			sections = append(sections, header+"\n"+tail(string(data), tailLines))
		}
	}

	if len(sections) == 0 {
		return "", fmt.Errorf("no logs captured in namespace %q", namespace)
	}
	return strings.Join(sections, "\n"), nil
}

// capturedContainers lists the container directories under one pod's capture
// directory, sorted.
func capturedContainers(podDir string) ([]string, error) {
	entries, err := os.ReadDir(podDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing captured containers: %w", err)
	}

	var containers []string
	for _, entry := range entries {
		if entry.IsDir() && !isYAML(entry.Name()) {
			containers = append(containers, entry.Name())
		}
	}
	sort.Strings(containers)
	return containers, nil
}

// tail returns the last n lines of text, or all of it when n is not
// positive.
func tail(text string, n int) string {
	if n <= 0 {
		return text
	}
	trimmed := strings.TrimRight(text, "\n")
	lines := strings.Split(trimmed, "\n")
	if len(lines) <= n {
		return text
	}
	return strings.Join(lines[len(lines)-n:], "\n") + "\n"
}
