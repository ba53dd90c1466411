package mustgather

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

// ClusterVersion reports the captured ClusterVersion resource.
func (s *dirSnapshot) ClusterVersion(ctx context.Context) (*ClusterVersionInfo, error) {
	dir := filepath.Join(s.root, clusterScopedDir, configGroupDir, "clusterversions")
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no clusterversions captured in snapshot")
		}
		return nil, fmt.Errorf("listing cluster versions: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && isYAML(entry.Name()) {
			files = append(files, entry.Name())
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no clusterversions captured in snapshot")
	}
	sort.Strings(files)

	u, err := decodeUnstructured(filepath.Join(dir, files[0]))
	if err != nil {
		return nil, err
	}

	info := &ClusterVersionInfo{}
	info.Channel, _, _ = unstructured.NestedString(u.Object, "spec", "channel")
	info.ClusterID, _, _ = unstructured.NestedString(u.Object, "spec", "clusterID")
	info.Version, _, _ = unstructured.NestedString(u.Object, "status", "desired", "version")

	history, _, _ := unstructured.NestedSlice(u.Object, "status", "history")
	for _, raw := range history {
		m, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		if v := nestedString(m, "version"); v != "" {
			info.History = append(info.History, v)
		}
	}

	conditions, _, _ := unstructured.NestedSlice(u.Object, "status", "conditions")
	for _, raw := range conditions {
		m, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		switch nestedString(m, "type") {
		case "Available":
			info.Available = nestedString(m, "status") == "True"
		case "Progressing":
			info.ProgressingMessage = nestedString(m, "message")
		}
	}

	return info, nil
}
