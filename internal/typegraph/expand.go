package typegraph

import "strings"

// Expand resolves the requested type names into their definitions plus the
// definitions of types they reference, following references up to maxDepth
// hops. It is pure and deterministic: output order is traversal order
// (requested names first, each followed depth-first by its newly discovered
// references).
//
// A requested name may carry a dotted field suffix ("PodSummary.containers");
// only the portion before the first dot resolves the type. Names absent from
// the graph are silently skipped. A visited set shared across the whole call
// keeps cyclic references finite and each type unique in the output, no
// matter how many requested names or paths reach it.
//
// Examples are stripped from the output unless includeExamples is set.
func Expand(graph *Graph, requested []string, maxDepth int, includeExamples bool) []Descriptor {
	if maxDepth < 1 {
		maxDepth = 1
	}

	visited := make(map[string]bool)
	var out []Descriptor

	for _, name := range requested {
		// Top-level names sit at depth 0: maxDepth counts reference hops, so
		// maxDepth=1 yields a requested type plus its direct references.
		expandInto(graph, baseName(name), 0, maxDepth, includeExamples, visited, &out)
	}
	return out
}

// expandInto appends the descriptor for name (if any) and recurses into its
// references while depth < maxDepth. Already-visited names are skipped before
// resolution so unknown names are not retried either.
func expandInto(graph *Graph, name string, depth, maxDepth int, includeExamples bool, visited map[string]bool, out *[]Descriptor) {
	if visited[name] {
		return
	}
	visited[name] = true

	d, ok := graph.Get(name)
	if !ok {
		return
	}

	if !includeExamples {
		d.Example = ""
	}
	*out = append(*out, d)

	if depth >= maxDepth {
		return
	}
	for _, ref := range d.References {
		expandInto(graph, ref, depth+1, maxDepth, includeExamples, visited, out)
	}
}

// baseName strips a dotted field suffix: "PodSummary.status.phase" resolves
// as "PodSummary".
func baseName(name string) string {
	if i := strings.Index(name, "."); i >= 0 {
		return name[:i]
	}
	return name
}
