package mustgather

// The structs below are the wire shapes of analysis results. Their names
// mirror the typegraph catalog one-to-one so a caller can introspect any
// return type it discovers via search.

// ClusterOperatorSummary condenses one ClusterOperator's status.
type ClusterOperatorSummary struct {
	Name        string              `json:"name"`
	Version     string              `json:"version,omitempty"`
	Available   bool                `json:"available"`
	Progressing bool                `json:"progressing"`
	Degraded    bool                `json:"degraded"`
	Conditions  []OperatorCondition `json:"conditions,omitempty"`
}

// OperatorCondition is one status condition of a cluster operator.
type OperatorCondition struct {
	Type               string `json:"type"`
	Status             string `json:"status"`
	Reason             string `json:"reason,omitempty"`
	Message            string `json:"message,omitempty"`
	LastTransitionTime string `json:"lastTransitionTime,omitempty"`
}

// EtcdStatus reports etcd health from the operator and its member pods.
type EtcdStatus struct {
	Healthy            bool                `json:"healthy"`
	OperatorConditions []OperatorCondition `json:"operatorConditions,omitempty"`
	Members            []EtcdMemberHealth  `json:"members,omitempty"`
}

// EtcdMemberHealth is the state of one etcd member pod.
type EtcdMemberHealth struct {
	Name     string `json:"name"`
	Node     string `json:"node,omitempty"`
	Ready    bool   `json:"ready"`
	Restarts int32  `json:"restarts"`
}

// PodSummary condenses one pod's status.
type PodSummary struct {
	Name         string                   `json:"name"`
	Namespace    string                   `json:"namespace"`
	Phase        string                   `json:"phase"`
	Ready        string                   `json:"ready"`
	Reason       string                   `json:"reason,omitempty"`
	Restarts     int32                    `json:"restarts"`
	Node         string                   `json:"node,omitempty"`
	Containers   []ContainerStatusSummary `json:"containers,omitempty"`
	RecentEvents []EventSummary           `json:"recentEvents,omitempty"`
}

// ContainerStatusSummary is the state of one container in a pod.
type ContainerStatusSummary struct {
	Name     string `json:"name"`
	Ready    bool   `json:"ready"`
	Restarts int32  `json:"restarts"`
	State    string `json:"state"`
	Reason   string `json:"reason,omitempty"`
	ExitCode int32  `json:"exitCode,omitempty"`
}

// NodeSummary condenses one node's status.
type NodeSummary struct {
	Name        string            `json:"name"`
	Roles       []string          `json:"roles,omitempty"`
	Ready       bool              `json:"ready"`
	Conditions  []NodeCondition   `json:"conditions,omitempty"`
	Capacity    map[string]string `json:"capacity,omitempty"`
	Allocatable map[string]string `json:"allocatable,omitempty"`
	ProblemPods []PodSummary      `json:"problemPods,omitempty"`
}

// NodeCondition is one status condition of a node.
type NodeCondition struct {
	Type    string `json:"type"`
	Status  string `json:"status"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message,omitempty"`
}

// EventSummary condenses one event.
type EventSummary struct {
	Namespace string `json:"namespace"`
	Type      string `json:"type"`
	Reason    string `json:"reason,omitempty"`
	Object    string `json:"object"`
	Message   string `json:"message,omitempty"`
	Count     int32  `json:"count"`
	LastSeen  string `json:"lastSeen,omitempty"`
}

// ClusterVersionInfo reports the cluster version and update state.
type ClusterVersionInfo struct {
	Version            string   `json:"version"`
	Channel            string   `json:"channel,omitempty"`
	ClusterID          string   `json:"clusterID,omitempty"`
	Available          bool     `json:"available"`
	ProgressingMessage string   `json:"progressingMessage,omitempty"`
	History            []string `json:"history,omitempty"`
}

// NamespaceSummary aggregates the workload state of one namespace.
type NamespaceSummary struct {
	Namespace     string         `json:"namespace"`
	PodCount      int            `json:"podCount"`
	PodsByPhase   map[string]int `json:"podsByPhase,omitempty"`
	FailingPods   []PodSummary   `json:"failingPods,omitempty"`
	WarningEvents []EventSummary `json:"warningEvents,omitempty"`
}
