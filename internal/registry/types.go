package registry

// Severity classifies how urgent the findings of an analysis function
// typically are.
type Severity string

// Severity values.
const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// Scope identifies the level of the cluster an analysis function operates on.
type Scope string

// Scope values.
const (
	ScopeCluster   Scope = "cluster"
	ScopeNamespace Scope = "namespace"
	ScopePod       Scope = "pod"
	ScopeNode      Scope = "node"
	ScopeContainer Scope = "container"
)

// Category groups analysis functions by the kind of question they answer.
type Category string

// Category values.
const (
	CategoryHealth        Category = "health"
	CategoryPerformance   Category = "performance"
	CategoryConfiguration Category = "configuration"
	CategoryLogs          Category = "logs"
)

// Parameter describes one argument of an analysis function.
type Parameter struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Optional    bool   `json:"optional"`
	Description string `json:"description"`
}

// Descriptor describes one analysis function that can be discovered via
// search and executed against a snapshot. All fields are display/matching
// metadata; the actual implementation lives in the mustgather package and is
// dispatched by name.
//
// Descriptors are immutable after construction. Name is unique within the
// registry.
type Descriptor struct {
	Name        string      `json:"name"`
	Signature   string      `json:"signature"`
	Description string      `json:"description"`
	Component   string      `json:"component,omitempty"`
	Severity    Severity    `json:"severity"`
	Scope       Scope       `json:"scope"`
	Category    Category    `json:"category"`
	Parameters  []Parameter `json:"parameters"`
	Returns     string      `json:"returns"`
	Example     string      `json:"example,omitempty"`

	// Keywords are additional search terms not present verbatim in the name
	// or description. Not serialized: they exist only to feed scoring.
	Keywords []string `json:"-"`
}
