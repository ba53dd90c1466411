package typegraph

import "sort"

// Graph is an immutable map from type name to its descriptor.
type Graph struct {
	types map[string]Descriptor
}

// New builds a Graph from the given descriptors.
func New(descriptors []Descriptor) *Graph {
	g := &Graph{types: make(map[string]Descriptor, len(descriptors))}
	for _, d := range descriptors {
		g.types[d.Name] = d
	}
	return g
}

// Default returns the built-in graph for the must-gather analysis result
// types.
func Default() *Graph {
	return New(analysisTypes)
}

// Get returns the descriptor for a type name, if present.
func (g *Graph) Get(name string) (Descriptor, bool) {
	d, ok := g.types[name]
	return d, ok
}

// KnownNames returns every type name in the graph, sorted, for caller
// guidance in error messages and tool output.
func (g *Graph) KnownNames() []string {
	names := make([]string, 0, len(g.types))
	for name := range g.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of types in the graph.
func (g *Graph) Len() int {
	return len(g.types)
}

// analysisTypes describes the shapes returned by the analysis catalog. The
// definitions are display text for callers, not compiled code; the real
// structs live in the mustgather package and must stay in sync by name.
var analysisTypes = []Descriptor{
	{
		Name: "ClusterOperatorSummary",
		Definition: `{
  name: string              // cluster operator name, e.g. "authentication"
  version: string           // operator version currently reported
  available: bool
  progressing: bool
  degraded: bool
  conditions: []OperatorCondition
}`,
		Source:     "derived from config.openshift.io/v1 ClusterOperator",
		References: []string{"OperatorCondition"},
		Example:    `{"name": "authentication", "version": "4.16.2", "available": false, "degraded": true, "conditions": [{"type": "Degraded", "status": "True", "reason": "OAuthServerRouteDegraded"}]}`,
	},
	{
		Name: "OperatorCondition",
		Definition: `{
  type: string              // Available | Progressing | Degraded | Upgradeable
  status: string            // True | False | Unknown
  reason: string
  message: string
  lastTransitionTime: string // RFC3339
}`,
		Source:  "derived from config.openshift.io/v1 ClusterOperatorStatusCondition",
		Example: `{"type": "Degraded", "status": "True", "reason": "NodeInstallerDegraded", "message": "1 node is at revision 7"}`,
	},
	{
		Name: "EtcdStatus",
		Definition: `{
  healthy: bool             // false when the operator is degraded or a member pod is unhealthy
  operatorConditions: []OperatorCondition
  members: []EtcdMemberHealth
}`,
		Source:     "synthesized from the etcd ClusterOperator and openshift-etcd pods",
		References: []string{"OperatorCondition", "EtcdMemberHealth"},
		Example:    `{"healthy": false, "members": [{"name": "etcd-master-0", "node": "master-0", "ready": false, "restarts": 12}]}`,
	},
	{
		Name: "EtcdMemberHealth",
		Definition: `{
  name: string              // member pod name
  node: string              // node the member runs on
  ready: bool
  restarts: int             // total container restarts
}`,
		Source:  "derived from core/v1 Pod status in openshift-etcd",
		Example: `{"name": "etcd-master-1", "node": "master-1", "ready": true, "restarts": 0}`,
	},
	{
		Name: "PodSummary",
		Definition: `{
  name: string
  namespace: string
  phase: string             // Pending | Running | Succeeded | Failed | Unknown
  ready: string             // "<ready>/<total>" container readiness
  reason: string            // aggregate waiting/terminated reason, e.g. CrashLoopBackOff
  restarts: int             // total restarts across containers
  node: string
  containers: []ContainerStatusSummary
  recentEvents: []EventSummary
}`,
		Source:     "derived from core/v1 Pod",
		References: []string{"ContainerStatusSummary", "EventSummary"},
		Example:    `{"name": "etcd-quorum-guard-5f7", "namespace": "openshift-etcd", "phase": "Running", "ready": "0/1", "reason": "CrashLoopBackOff", "restarts": 42}`,
	},
	{
		Name: "ContainerStatusSummary",
		Definition: `{
  name: string
  ready: bool
  restarts: int
  state: string             // running | waiting | terminated
  reason: string            // waiting or last-termination reason, e.g. OOMKilled
  exitCode: int             // last termination exit code, 0 when never terminated
}`,
		Source:  "derived from core/v1 ContainerStatus",
		Example: `{"name": "etcd", "ready": false, "restarts": 12, "state": "waiting", "reason": "CrashLoopBackOff", "exitCode": 1}`,
	},
	{
		Name: "NodeSummary",
		Definition: `{
  name: string
  roles: []string           // e.g. ["control-plane"] from node labels
  ready: bool
  conditions: []NodeCondition
  capacity: map[string]string    // cpu, memory, pods
  allocatable: map[string]string
  problemPods: []PodSummary // pods on this node flagged by health checks
}`,
		Source:     "derived from core/v1 Node",
		References: []string{"NodeCondition", "PodSummary"},
		Example:    `{"name": "master-0", "roles": ["control-plane"], "ready": true, "capacity": {"cpu": "8", "memory": "32Gi"}}`,
	},
	{
		Name: "NodeCondition",
		Definition: `{
  type: string              // Ready | MemoryPressure | DiskPressure | PIDPressure
  status: string            // True | False | Unknown
  reason: string
  message: string
}`,
		Source:  "derived from core/v1 NodeCondition",
		Example: `{"type": "MemoryPressure", "status": "True", "reason": "KubeletHasInsufficientMemory"}`,
	},
	{
		Name: "EventSummary",
		Definition: `{
  namespace: string
  type: string              // Normal | Warning
  reason: string            // e.g. BackOff, FailedScheduling
  object: string            // "<kind>/<name>" the event refers to
  message: string
  count: int
  lastSeen: string          // RFC3339
}`,
		Source:  "derived from core/v1 Event",
		Example: `{"namespace": "openshift-etcd", "type": "Warning", "reason": "BackOff", "object": "Pod/etcd-master-0", "count": 17}`,
	},
	{
		Name: "ClusterVersionInfo",
		Definition: `{
  version: string           // current cluster version
  channel: string           // update channel, e.g. stable-4.16
  clusterID: string
  available: bool           // whether the current payload is fully applied
  progressingMessage: string
  history: []string         // recent update versions, newest first
}`,
		Source:  "derived from config.openshift.io/v1 ClusterVersion",
		Example: `{"version": "4.16.2", "channel": "stable-4.16", "available": true, "history": ["4.16.2", "4.16.1"]}`,
	},
	{
		Name: "NamespaceSummary",
		Definition: `{
  namespace: string
  podCount: int
  podsByPhase: map[string]int   // phase -> count
  failingPods: []PodSummary
  warningEvents: []EventSummary
}`,
		Source:     "aggregated from core/v1 Pod and Event in one namespace",
		References: []string{"PodSummary", "EventSummary"},
		Example:    `{"namespace": "openshift-etcd", "podCount": 6, "podsByPhase": {"Running": 5, "Pending": 1}}`,
	},
}
