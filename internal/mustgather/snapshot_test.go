package mustgather

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot(t *testing.T) Snapshot {
	t.Helper()
	snap, err := Open(filepath.Join("testdata", "must-gather"))
	require.NoError(t, err)
	return snap
}

func TestOpen(t *testing.T) {
	t.Run("valid snapshot", func(t *testing.T) {
		snap, err := Open(filepath.Join("testdata", "must-gather"))
		require.NoError(t, err)
		assert.Contains(t, snap.Path(), "must-gather")
	})

	t.Run("nested root resolves", func(t *testing.T) {
		// testdata/ itself contains the must-gather directory one level down.
		snap, err := Open("testdata")
		require.NoError(t, err)
		assert.Contains(t, snap.Path(), "must-gather")
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := Open(filepath.Join("testdata", "no-such-dir"))
		assert.Error(t, err)
	})

	t.Run("not a must-gather", func(t *testing.T) {
		_, err := Open(t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not look like a must-gather")
	})
}

func TestDegradedOperators(t *testing.T) {
	snap := testSnapshot(t)

	operators, err := snap.DegradedOperators(context.Background())
	require.NoError(t, err)

	require.Len(t, operators, 1, "only authentication is unhealthy in the fixture")
	op := operators[0]
	assert.Equal(t, "authentication", op.Name)
	assert.Equal(t, "4.16.2", op.Version)
	assert.True(t, op.Degraded)
	assert.False(t, op.Available)
	require.Len(t, op.Conditions, 3)
	assert.Equal(t, "OAuthServerRouteDegraded", op.Conditions[2].Reason)
}

func TestEtcdHealth(t *testing.T) {
	snap := testSnapshot(t)

	status, err := snap.EtcdHealth(context.Background())
	require.NoError(t, err)

	assert.True(t, status.Healthy, "etcd operator and its single member are healthy")
	assert.NotEmpty(t, status.OperatorConditions)

	// The quorum-guard pod lives in the same namespace but is not a member.
	require.Len(t, status.Members, 1)
	member := status.Members[0]
	assert.Equal(t, "etcd-master-0", member.Name)
	assert.Equal(t, "master-0", member.Node)
	assert.True(t, member.Ready)
}

func TestFailingPods(t *testing.T) {
	snap := testSnapshot(t)
	ctx := context.Background()

	t.Run("all namespaces", func(t *testing.T) {
		pods, err := snap.FailingPods(ctx, "")
		require.NoError(t, err)

		require.Len(t, pods, 2)
		assert.Equal(t, "etcd-quorum-guard-5f7dd", pods[0].Name)
		assert.Equal(t, "CrashLoopBackOff", pods[0].Reason)
		assert.Equal(t, int32(12), pods[0].Restarts)
		assert.Equal(t, "prometheus-k8s-0", pods[1].Name)
		assert.Equal(t, "Pending", pods[1].Phase)
	})

	t.Run("single namespace", func(t *testing.T) {
		pods, err := snap.FailingPods(ctx, "openshift-monitoring")
		require.NoError(t, err)

		require.Len(t, pods, 1)
		assert.Equal(t, "prometheus-k8s-0", pods[0].Name)
	})

	t.Run("namespace without captured pods", func(t *testing.T) {
		pods, err := snap.FailingPods(ctx, "openshift-authentication-operator")
		require.NoError(t, err)
		assert.Empty(t, pods)
	})
}

func TestPodRestarts(t *testing.T) {
	snap := testSnapshot(t)
	ctx := context.Background()

	t.Run("threshold filters", func(t *testing.T) {
		pods, err := snap.PodRestarts(ctx, "", 5)
		require.NoError(t, err)

		require.Len(t, pods, 1)
		assert.Equal(t, "etcd-quorum-guard-5f7dd", pods[0].Name)
		require.Len(t, pods[0].Containers, 1)
		assert.Equal(t, "waiting", pods[0].Containers[0].State)
		assert.Equal(t, "CrashLoopBackOff", pods[0].Containers[0].Reason)
	})

	t.Run("threshold above every count", func(t *testing.T) {
		pods, err := snap.PodRestarts(ctx, "", 100)
		require.NoError(t, err)
		assert.Empty(t, pods)
	})

	t.Run("non-positive threshold defaults to one", func(t *testing.T) {
		pods, err := snap.PodRestarts(ctx, "", 0)
		require.NoError(t, err)
		require.Len(t, pods, 1)
	})
}

func TestNodeConditions(t *testing.T) {
	snap := testSnapshot(t)

	nodes, err := snap.NodeConditions(context.Background())
	require.NoError(t, err)

	require.Len(t, nodes, 2)
	assert.Equal(t, "master-0", nodes[0].Name)
	assert.Equal(t, []string{"control-plane", "master"}, nodes[0].Roles)
	assert.True(t, nodes[0].Ready)

	worker := nodes[1]
	assert.Equal(t, "worker-0", worker.Name)
	var memoryPressure *NodeCondition
	for i := range worker.Conditions {
		if worker.Conditions[i].Type == "MemoryPressure" {
			memoryPressure = &worker.Conditions[i]
		}
	}
	require.NotNil(t, memoryPressure)
	assert.Equal(t, "True", memoryPressure.Status)

	// The crash-looping guard pod is scheduled on worker-0.
	require.Len(t, worker.ProblemPods, 1)
	assert.Equal(t, "etcd-quorum-guard-5f7dd", worker.ProblemPods[0].Name)
}

func TestNodeResourceUsage(t *testing.T) {
	snap := testSnapshot(t)

	nodes, err := snap.NodeResourceUsage(context.Background())
	require.NoError(t, err)

	require.Len(t, nodes, 2)
	assert.Equal(t, "8", nodes[0].Capacity["cpu"])
	assert.Equal(t, "32Gi", nodes[0].Capacity["memory"])
	assert.Equal(t, "7500m", nodes[0].Allocatable["cpu"])
	assert.Empty(t, nodes[0].Conditions, "resource view does not repeat conditions")
}

func TestClusterVersion(t *testing.T) {
	snap := testSnapshot(t)

	info, err := snap.ClusterVersion(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "4.16.2", info.Version)
	assert.Equal(t, "stable-4.16", info.Channel)
	assert.Equal(t, "3f415a6e-9cb0-4f2a-89d1-04c61a7d1a11", info.ClusterID)
	assert.True(t, info.Available)
	assert.Equal(t, []string{"4.16.2", "4.16.1"}, info.History)
}

func TestNamespaceSummary(t *testing.T) {
	snap := testSnapshot(t)
	ctx := context.Background()

	t.Run("aggregates one namespace", func(t *testing.T) {
		summary, err := snap.NamespaceSummary(ctx, "openshift-monitoring")
		require.NoError(t, err)

		assert.Equal(t, 2, summary.PodCount)
		assert.Equal(t, map[string]int{"Pending": 1, "Running": 1}, summary.PodsByPhase)
		require.Len(t, summary.FailingPods, 1)
		assert.Equal(t, "prometheus-k8s-0", summary.FailingPods[0].Name)
		assert.Empty(t, summary.WarningEvents)
	})

	t.Run("warning events included", func(t *testing.T) {
		summary, err := snap.NamespaceSummary(ctx, "openshift-etcd")
		require.NoError(t, err)

		require.Len(t, summary.WarningEvents, 1)
		assert.Equal(t, "BackOff", summary.WarningEvents[0].Reason)
	})

	t.Run("empty namespace rejected", func(t *testing.T) {
		_, err := snap.NamespaceSummary(ctx, "")
		assert.Error(t, err)
	})
}

func TestRecentEvents(t *testing.T) {
	snap := testSnapshot(t)
	ctx := context.Background()

	t.Run("newest first", func(t *testing.T) {
		events, err := snap.RecentEvents(ctx, "", false)
		require.NoError(t, err)

		require.Len(t, events, 2)
		assert.Equal(t, "BackOff", events[0].Reason)
		assert.Equal(t, "Pod/etcd-quorum-guard-5f7dd", events[0].Object)
		assert.Equal(t, int32(17), events[0].Count)
		assert.Equal(t, "Started", events[1].Reason)
	})

	t.Run("warnings only", func(t *testing.T) {
		events, err := snap.RecentEvents(ctx, "", true)
		require.NoError(t, err)

		require.Len(t, events, 1)
		assert.Equal(t, "Warning", events[0].Type)
	})

	t.Run("namespace restricted", func(t *testing.T) {
		events, err := snap.RecentEvents(ctx, "openshift-monitoring", false)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}

func TestPodLogs(t *testing.T) {
	snap := testSnapshot(t)
	ctx := context.Background()

	t.Run("whole log with implicit container", func(t *testing.T) {
		logs, err := snap.PodLogs(ctx, "openshift-etcd", "etcd-master-0", "", 0)
		require.NoError(t, err)
		assert.Equal(t, "line one\nline two\nline three\nline four\nline five\n", logs)
	})

	t.Run("tail lines", func(t *testing.T) {
		logs, err := snap.PodLogs(ctx, "openshift-etcd", "etcd-master-0", "etcd", 2)
		require.NoError(t, err)
		assert.Equal(t, "line four\nline five\n", logs)
	})

	t.Run("unknown pod", func(t *testing.T) {
		_, err := snap.PodLogs(ctx, "openshift-etcd", "no-such-pod", "", 0)
		assert.Error(t, err)
	})

	t.Run("missing identifiers rejected", func(t *testing.T) {
		_, err := snap.PodLogs(ctx, "", "", "", 0)
		assert.Error(t, err)
	})
}

func TestOperatorLogs(t *testing.T) {
	snap := testSnapshot(t)
	ctx := context.Background()

	t.Run("operator namespace resolved", func(t *testing.T) {
		logs, err := snap.OperatorLogs(ctx, "authentication", 0)
		require.NoError(t, err)

		assert.Contains(t, logs, "==== pod/authentication-operator-7b9c4 container/authentication-operator ====")
		assert.Contains(t, logs, "route does not resolve")
	})

	t.Run("tail applies per container", func(t *testing.T) {
		logs, err := snap.OperatorLogs(ctx, "authentication", 1)
		require.NoError(t, err)

		assert.NotContains(t, logs, "route does not resolve")
		assert.Contains(t, logs, "retrying")
	})

	t.Run("unknown operator", func(t *testing.T) {
		_, err := snap.OperatorLogs(ctx, "no-such-operator", 0)
		assert.Error(t, err)
	})
}

func TestTail(t *testing.T) {
	tests := []struct {
		name string
		text string
		n    int
		want string
	}{
		{name: "zero keeps everything", text: "a\nb\n", n: 0, want: "a\nb\n"},
		{name: "fewer lines than requested", text: "a\nb\n", n: 5, want: "a\nb\n"},
		{name: "last lines", text: "a\nb\nc\n", n: 2, want: "b\nc\n"},
		{name: "no trailing newline", text: "a\nb\nc", n: 1, want: "c\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tail(tt.text, tt.n))
		})
	}
}
