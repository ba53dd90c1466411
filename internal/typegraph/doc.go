// Package typegraph defines the return types of the analysis functions as a
// static reference graph, and the depth-bounded expansion used to introspect
// them.
//
// Expansion is the second half of the progressive disclosure surface: a
// caller that discovered getFailingPods via search asks for "PodSummary" and
// receives its definition plus, up to a depth bound, the definitions of the
// types it references. The graph may contain cycles; a single visited set
// shared across the whole call keeps the traversal finite and each type
// unique in the output.
package typegraph
