package mustgather

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"
	k8syaml "k8s.io/apimachinery/pkg/util/yaml"
	"k8s.io/client-go/kubernetes/scheme"
)

// Snapshot layout directories inside a must-gather dump.
const (
	clusterScopedDir = "cluster-scoped-resources"
	namespacesDir    = "namespaces"
)

// Snapshot exposes the analysis functions over one must-gather dump. Every
// method corresponds to a registry descriptor of the same camelCased name and
// is safe for concurrent use.
type Snapshot interface {
	DegradedOperators(ctx context.Context) ([]ClusterOperatorSummary, error)
	EtcdHealth(ctx context.Context) (*EtcdStatus, error)
	FailingPods(ctx context.Context, namespace string) ([]PodSummary, error)
	NodeConditions(ctx context.Context) ([]NodeSummary, error)
	PodRestarts(ctx context.Context, namespace string, minRestarts int) ([]PodSummary, error)
	NodeResourceUsage(ctx context.Context) ([]NodeSummary, error)
	ClusterVersion(ctx context.Context) (*ClusterVersionInfo, error)
	NamespaceSummary(ctx context.Context, namespace string) (*NamespaceSummary, error)
	PodLogs(ctx context.Context, namespace, podName, container string, tailLines int) (string, error)
	RecentEvents(ctx context.Context, namespace string, warningsOnly bool) ([]EventSummary, error)
	OperatorLogs(ctx context.Context, operator string, tailLines int) (string, error)

	// Path returns the resolved snapshot root directory.
	Path() string
}

// dirSnapshot reads a must-gather dump from the local filesystem.
type dirSnapshot struct {
	root string
}

// Open validates dir and returns a Snapshot over it. Must-gather archives
// usually wrap the dump in a single image-named directory; Open resolves one
// level of nesting so callers can point at either the archive root or the
// dump itself.
func Open(dir string) (Snapshot, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("must-gather path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("must-gather path %q is not a directory", dir)
	}

	root, err := resolveRoot(dir)
	if err != nil {
		return nil, err
	}
	return &dirSnapshot{root: root}, nil
}

// resolveRoot finds the directory that actually contains the dump.
func resolveRoot(dir string) (string, error) {
	if isDumpRoot(dir) {
		return dir, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("reading must-gather directory: %w", err)
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		nested := filepath.Join(dir, entry.Name())
		if isDumpRoot(nested) {
			return nested, nil
		}
	}
	return "", fmt.Errorf("%q does not look like a must-gather: no %s or %s directory found",
		dir, clusterScopedDir, namespacesDir)
}

func isDumpRoot(dir string) bool {
	for _, sub := range []string{clusterScopedDir, namespacesDir} {
		if info, err := os.Stat(filepath.Join(dir, sub)); err == nil && info.IsDir() {
			return true
		}
	}
	return false
}

func (s *dirSnapshot) Path() string {
	return s.root
}

// namespaceNames lists the namespaces captured in the dump, sorted.
func (s *dirSnapshot) namespaceNames() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.root, namespacesDir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing namespaces: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// decodeTypedList reads a YAML file and decodes it into a typed core object
// via the client-go scheme.
func decodeTypedList(path string, into runtime.Object) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	jsonData, err := k8syaml.ToJSON(data)
	if err != nil {
		return fmt.Errorf("converting %s to JSON: %w", path, err)
	}
	if _, _, err := scheme.Codecs.UniversalDeserializer().Decode(jsonData, nil, into); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}

// decodeUnstructured reads a YAML file into an unstructured object. Used for
// OpenShift config resources, which carry no Go types in this module's
// dependency set.
func decodeUnstructured(path string) (*unstructured.Unstructured, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	jsonData, err := k8syaml.ToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("converting %s to JSON: %w", path, err)
	}
	u := &unstructured.Unstructured{}
	if err := u.UnmarshalJSON(jsonData); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return u, nil
}

// loadPodList decodes a per-namespace pods.yaml, tolerating its absence.
func (s *dirSnapshot) loadPodList(namespace string) ([]corev1.Pod, error) {
	path := filepath.Join(s.root, namespacesDir, namespace, "core", "pods.yaml")
	list := &corev1.PodList{}
	if err := decodeTypedList(path, list); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return list.Items, nil
}

// loadEventList decodes a per-namespace events.yaml, tolerating its absence.
func (s *dirSnapshot) loadEventList(namespace string) ([]corev1.Event, error) {
	path := filepath.Join(s.root, namespacesDir, namespace, "core", "events.yaml")
	list := &corev1.EventList{}
	if err := decodeTypedList(path, list); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return list.Items, nil
}
