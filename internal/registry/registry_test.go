package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	r := Default()

	expected := []string{
		"getDegradedOperators",
		"getEtcdHealth",
		"getFailingPods",
		"getNodeConditions",
		"getPodRestarts",
		"getNodeResourceUsage",
		"getClusterVersion",
		"getNamespaceSummary",
		"getPodLogs",
		"getRecentEvents",
		"getOperatorLogs",
	}
	assert.Equal(t, expected, r.Names())
}

func TestCatalogInvariants(t *testing.T) {
	r := Default()

	validSeverities := map[Severity]bool{SeverityCritical: true, SeverityWarning: true, SeverityInfo: true}
	validScopes := map[Scope]bool{ScopeCluster: true, ScopeNamespace: true, ScopePod: true, ScopeNode: true, ScopeContainer: true}
	validCategories := map[Category]bool{CategoryHealth: true, CategoryPerformance: true, CategoryConfiguration: true, CategoryLogs: true}

	seen := make(map[string]bool)
	for _, d := range r.All() {
		t.Run(d.Name, func(t *testing.T) {
			assert.False(t, seen[d.Name], "duplicate name")
			seen[d.Name] = true

			assert.NotEmpty(t, d.Signature)
			assert.NotEmpty(t, d.Description)
			assert.NotEmpty(t, d.Returns)
			assert.NotEmpty(t, d.Keywords)
			assert.True(t, validSeverities[d.Severity], "invalid severity %q", d.Severity)
			assert.True(t, validScopes[d.Scope], "invalid scope %q", d.Scope)
			assert.True(t, validCategories[d.Category], "invalid category %q", d.Category)

			for _, p := range d.Parameters {
				assert.NotEmpty(t, p.Name)
				assert.NotEmpty(t, p.Type)
				assert.NotEmpty(t, p.Description)
			}
		})
	}
}

func TestGet(t *testing.T) {
	r := Default()

	d, ok := r.Get("getEtcdHealth")
	require.True(t, ok)
	assert.Equal(t, "etcd", d.Component)
	assert.Equal(t, SeverityCritical, d.Severity)

	_, ok = r.Get("noSuchFunction")
	assert.False(t, ok)
}

func TestNewCopiesDescriptors(t *testing.T) {
	source := []Descriptor{{Name: "a"}, {Name: "b"}}
	r := New(source)

	source[0].Name = "mutated"

	d, ok := r.Get("a")
	require.True(t, ok)
	assert.Equal(t, "a", d.Name)
}
