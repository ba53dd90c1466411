package typegraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expandedNames(descriptors []Descriptor) []string {
	out := make([]string, 0, len(descriptors))
	for _, d := range descriptors {
		out = append(out, d.Name)
	}
	return out
}

// chainGraph builds A -> B -> C.
func chainGraph() *Graph {
	return New([]Descriptor{
		{Name: "A", Definition: "{ b: B }", References: []string{"B"}, Example: "a"},
		{Name: "B", Definition: "{ c: C }", References: []string{"C"}, Example: "b"},
		{Name: "C", Definition: "{}", Example: "c"},
	})
}

// cyclicGraph builds A -> B -> A.
func cyclicGraph() *Graph {
	return New([]Descriptor{
		{Name: "A", Definition: "{ b: B }", References: []string{"B"}},
		{Name: "B", Definition: "{ a: A }", References: []string{"A"}},
	})
}

func TestExpandDepthBound(t *testing.T) {
	g := chainGraph()

	t.Run("depth 1 follows one reference hop", func(t *testing.T) {
		out := Expand(g, []string{"A"}, 1, false)
		assert.Equal(t, []string{"A", "B"}, expandedNames(out))
	})

	t.Run("depth 2 reaches the chain end", func(t *testing.T) {
		out := Expand(g, []string{"A"}, 2, false)
		assert.Equal(t, []string{"A", "B", "C"}, expandedNames(out))
	})

	t.Run("depth below one is treated as one", func(t *testing.T) {
		out := Expand(g, []string{"A"}, 0, false)
		assert.Equal(t, []string{"A", "B"}, expandedNames(out))
	})
}

func TestExpandCycleSafety(t *testing.T) {
	g := cyclicGraph()

	out := Expand(g, []string{"A"}, 3, false)

	assert.Equal(t, []string{"A", "B"}, expandedNames(out),
		"each type appears exactly once despite the cycle")
}

func TestExpandSharedVisitedAcrossRequests(t *testing.T) {
	g := chainGraph()

	out := Expand(g, []string{"A", "B", "A"}, 1, false)

	// B was already emitted as A's reference, so the second top-level
	// request is skipped entirely and the duplicate A contributes nothing.
	assert.Equal(t, []string{"A", "B"}, expandedNames(out))
}

func TestExpandUnknownNames(t *testing.T) {
	g := chainGraph()

	t.Run("unknown-only request yields empty output", func(t *testing.T) {
		out := Expand(g, []string{"NoSuchType"}, 1, false)
		assert.Empty(t, out)
	})

	t.Run("unknown reference is skipped silently", func(t *testing.T) {
		dangling := New([]Descriptor{
			{Name: "A", References: []string{"Missing", "B"}},
			{Name: "B"},
		})
		out := Expand(dangling, []string{"A"}, 1, false)
		assert.Equal(t, []string{"A", "B"}, expandedNames(out))
	})
}

func TestExpandDottedPath(t *testing.T) {
	g := chainGraph()

	plain := Expand(g, []string{"A"}, 1, false)
	dotted := Expand(g, []string{"A.someField.nested"}, 1, false)

	assert.Equal(t, plain, dotted)
}

func TestExpandExamples(t *testing.T) {
	g := chainGraph()

	t.Run("omitted by default", func(t *testing.T) {
		out := Expand(g, []string{"A"}, 1, false)
		for _, d := range out {
			assert.Empty(t, d.Example)
		}
	})

	t.Run("included on request", func(t *testing.T) {
		out := Expand(g, []string{"A"}, 1, true)
		require.Len(t, out, 2)
		assert.Equal(t, "a", out[0].Example)
		assert.Equal(t, "b", out[1].Example)
	})
}

func TestExpandDeterministic(t *testing.T) {
	g := Default()

	first := Expand(g, []string{"NodeSummary", "EtcdStatus"}, 3, false)
	second := Expand(g, []string{"NodeSummary", "EtcdStatus"}, 3, false)

	assert.Equal(t, expandedNames(first), expandedNames(second))
}

func TestDefaultGraph(t *testing.T) {
	g := Default()

	assert.GreaterOrEqual(t, g.Len(), 9)

	t.Run("known names are sorted", func(t *testing.T) {
		names := g.KnownNames()
		require.NotEmpty(t, names)
		assert.IsIncreasing(t, names)
	})

	t.Run("references resolve", func(t *testing.T) {
		for _, name := range g.KnownNames() {
			d, ok := g.Get(name)
			require.True(t, ok)
			for _, ref := range d.References {
				_, ok := g.Get(ref)
				assert.True(t, ok, "%s references unknown type %s", name, ref)
			}
		}
	})

	t.Run("pod summary expands to its parts", func(t *testing.T) {
		out := Expand(g, []string{"PodSummary"}, 1, false)
		assert.Equal(t, []string{"PodSummary", "ContainerStatusSummary", "EventSummary"}, expandedNames(out))
	})
}
