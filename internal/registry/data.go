package registry

// capabilities is the static analysis-function catalog. Descriptor names are
// the dispatch keys used by the run-analysis tool; changing a name is a
// breaking change for callers.
var capabilities = []Descriptor{
	{
		Name:        "getDegradedOperators",
		Signature:   "getDegradedOperators() []ClusterOperatorSummary",
		Description: "List cluster operators that are degraded, not available, or stuck progressing, with their failing conditions.",
		Component:   "cluster-operators",
		Severity:    SeverityCritical,
		Scope:       ScopeCluster,
		Category:    CategoryHealth,
		Parameters:  nil,
		Returns:     "[]ClusterOperatorSummary",
		Example:     `{"function": "getDegradedOperators"}`,
		Keywords:    []string{"operators", "degraded", "clusteroperator", "available", "progressing", "unhealthy"},
	},
	{
		Name:        "getEtcdHealth",
		Signature:   "getEtcdHealth() EtcdStatus",
		Description: "Report etcd health: operator conditions, member pods, and whether quorum is at risk.",
		Component:   "etcd",
		Severity:    SeverityCritical,
		Scope:       ScopeCluster,
		Category:    CategoryHealth,
		Parameters:  nil,
		Returns:     "EtcdStatus",
		Example:     `{"function": "getEtcdHealth"}`,
		Keywords:    []string{"etcd", "quorum", "members", "database", "control-plane"},
	},
	{
		Name:        "getFailingPods",
		Signature:   "getFailingPods(namespace?: string) []PodSummary",
		Description: "List pods that are failing: CrashLoopBackOff, ImagePullBackOff, Error, stuck Pending, or not ready.",
		Component:   "workloads",
		Severity:    SeverityCritical,
		Scope:       ScopeNamespace,
		Category:    CategoryHealth,
		Parameters: []Parameter{
			{Name: "namespace", Type: "string", Optional: true, Description: "Restrict to one namespace. All namespaces when omitted."},
		},
		Returns:  "[]PodSummary",
		Example:  `{"function": "getFailingPods", "namespace": "openshift-monitoring"}`,
		Keywords: []string{"pods", "failing", "crashloopbackoff", "imagepullbackoff", "pending", "errors"},
	},
	{
		Name:        "getNodeConditions",
		Signature:   "getNodeConditions() []NodeSummary",
		Description: "List every node with its readiness and pressure conditions (Ready, MemoryPressure, DiskPressure, PIDPressure).",
		Component:   "nodes",
		Severity:    SeverityWarning,
		Scope:       ScopeNode,
		Category:    CategoryHealth,
		Parameters:  nil,
		Returns:     "[]NodeSummary",
		Example:     `{"function": "getNodeConditions"}`,
		Keywords:    []string{"nodes", "conditions", "ready", "pressure", "kubelet"},
	},
	{
		Name:        "getPodRestarts",
		Signature:   "getPodRestarts(namespace?: string, minRestarts?: int) []PodSummary",
		Description: "List pods whose containers restarted at least minRestarts times, with per-container restart counts and last termination reasons.",
		Component:   "workloads",
		Severity:    SeverityWarning,
		Scope:       ScopePod,
		Category:    CategoryPerformance,
		Parameters: []Parameter{
			{Name: "namespace", Type: "string", Optional: true, Description: "Restrict to one namespace. All namespaces when omitted."},
			{Name: "minRestarts", Type: "int", Optional: true, Description: "Minimum total restart count to report. Defaults to 1."},
		},
		Returns:  "[]PodSummary",
		Example:  `{"function": "getPodRestarts", "minRestarts": 5}`,
		Keywords: []string{"restarts", "containers", "stability", "oomkilled", "flapping"},
	},
	{
		Name:        "getNodeResourceUsage",
		Signature:   "getNodeResourceUsage() []NodeSummary",
		Description: "Report per-node capacity and allocatable CPU, memory, and pod counts from the node status.",
		Component:   "nodes",
		Severity:    SeverityInfo,
		Scope:       ScopeNode,
		Category:    CategoryPerformance,
		Parameters:  nil,
		Returns:     "[]NodeSummary",
		Example:     `{"function": "getNodeResourceUsage"}`,
		Keywords:    []string{"capacity", "allocatable", "cpu", "memory", "resources"},
	},
	{
		Name:        "getClusterVersion",
		Signature:   "getClusterVersion() ClusterVersionInfo",
		Description: "Report the cluster version, update channel, and recent update history.",
		Component:   "cluster-version",
		Severity:    SeverityInfo,
		Scope:       ScopeCluster,
		Category:    CategoryConfiguration,
		Parameters:  nil,
		Returns:     "ClusterVersionInfo",
		Example:     `{"function": "getClusterVersion"}`,
		Keywords:    []string{"version", "update", "channel", "upgrade", "history"},
	},
	{
		Name:        "getNamespaceSummary",
		Signature:   "getNamespaceSummary(namespace: string) NamespaceSummary",
		Description: "Summarize one namespace: pod phase counts, unhealthy pods, and recent warning events.",
		Component:   "workloads",
		Severity:    SeverityInfo,
		Scope:       ScopeNamespace,
		Category:    CategoryConfiguration,
		Parameters: []Parameter{
			{Name: "namespace", Type: "string", Optional: false, Description: "Namespace to summarize."},
		},
		Returns:  "NamespaceSummary",
		Example:  `{"function": "getNamespaceSummary", "namespace": "openshift-etcd"}`,
		Keywords: []string{"namespace", "summary", "overview", "workloads"},
	},
	{
		Name:        "getPodLogs",
		Signature:   "getPodLogs(namespace: string, podName: string, container?: string, tailLines?: int) string",
		Description: "Return the captured container log for a pod, optionally limited to the last tailLines lines.",
		Component:   "workloads",
		Severity:    SeverityInfo,
		Scope:       ScopeContainer,
		Category:    CategoryLogs,
		Parameters: []Parameter{
			{Name: "namespace", Type: "string", Optional: false, Description: "Namespace of the pod."},
			{Name: "podName", Type: "string", Optional: false, Description: "Name of the pod."},
			{Name: "container", Type: "string", Optional: true, Description: "Container name. Defaults to the only captured container."},
			{Name: "tailLines", Type: "int", Optional: true, Description: "Return only the last N lines. Whole log when omitted."},
		},
		Returns:  "string",
		Example:  `{"function": "getPodLogs", "namespace": "openshift-etcd", "podName": "etcd-master-0", "tailLines": 100}`,
		Keywords: []string{"logs", "container", "output", "stderr", "tail"},
	},
	{
		Name:        "getRecentEvents",
		Signature:   "getRecentEvents(namespace?: string, warningsOnly?: bool) []EventSummary",
		Description: "List events captured in the snapshot, newest first, optionally restricted to a namespace or to Warning events.",
		Component:   "events",
		Severity:    SeverityWarning,
		Scope:       ScopeNamespace,
		Category:    CategoryLogs,
		Parameters: []Parameter{
			{Name: "namespace", Type: "string", Optional: true, Description: "Restrict to one namespace. All namespaces when omitted."},
			{Name: "warningsOnly", Type: "bool", Optional: true, Description: "Only Warning-type events. Defaults to false."},
		},
		Returns:  "[]EventSummary",
		Example:  `{"function": "getRecentEvents", "warningsOnly": true}`,
		Keywords: []string{"events", "warnings", "reasons", "timeline"},
	},
	{
		Name:        "getOperatorLogs",
		Signature:   "getOperatorLogs(operator: string, tailLines?: int) string",
		Description: "Return the captured logs of a cluster operator's controller pods.",
		Component:   "cluster-operators",
		Severity:    SeverityWarning,
		Scope:       ScopePod,
		Category:    CategoryLogs,
		Parameters: []Parameter{
			{Name: "operator", Type: "string", Optional: false, Description: "Cluster operator name, e.g. \"authentication\"."},
			{Name: "tailLines", Type: "int", Optional: true, Description: "Return only the last N lines per pod. Whole log when omitted."},
		},
		Returns:  "string",
		Example:  `{"function": "getOperatorLogs", "operator": "authentication", "tailLines": 200}`,
		Keywords: []string{"logs", "operators", "controller", "errors"},
	},
}
