// Package mustgather reads cluster state from a must-gather snapshot
// directory and implements the analysis functions described by the registry
// catalog.
//
// A must-gather is a filesystem dump of cluster resources: cluster-scoped
// resources as per-object YAML files, namespaced resources as per-namespace
// list files, and captured container logs. The Snapshot interface exposes one
// method per analysis function; the directory-backed implementation decodes
// core resources with the client-go scheme and OpenShift config resources as
// unstructured objects. All reads are against immutable files, so a Snapshot
// is safe for concurrent use.
package mustgather
