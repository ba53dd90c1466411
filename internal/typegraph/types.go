package typegraph

// Descriptor describes one named data shape returned by an analysis function.
// Static and read-only after construction; Name is unique within a graph.
type Descriptor struct {
	Name       string `json:"name"`
	Definition string `json:"definition"`
	Source     string `json:"source"`

	// References lists the type names this definition points to, in
	// declaration order. Entries absent from the graph are tolerated and
	// silently skipped during expansion.
	References []string `json:"references,omitempty"`

	// Example is an optional sample value, included in expansion output only
	// on request.
	Example string `json:"example,omitempty"`
}
