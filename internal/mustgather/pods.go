package mustgather

import (
	"context"
	"fmt"

	corev1 "k8s.io/api/core/v1"
)

// waitingReasonsTolerated are container waiting reasons that do not flag a
// pod as failing on their own.
var waitingReasonsTolerated = map[string]bool{
	"ContainerCreating": true,
	"PodInitializing":   true,
}

// FailingPods lists pods that are failing across the snapshot, or in one
// namespace when given.
func (s *dirSnapshot) FailingPods(ctx context.Context, namespace string) ([]PodSummary, error) {
	return s.collectPods(ctx, namespace, func(summary PodSummary, pod corev1.Pod) bool {
		return isFailing(summary, pod)
	})
}

// PodRestarts lists pods whose containers restarted at least minRestarts
// times. A non-positive threshold defaults to 1.
func (s *dirSnapshot) PodRestarts(ctx context.Context, namespace string, minRestarts int) ([]PodSummary, error) {
	if minRestarts < 1 {
		minRestarts = 1
	}
	return s.collectPods(ctx, namespace, func(summary PodSummary, _ corev1.Pod) bool {
		return int(summary.Restarts) >= minRestarts
	})
}

// NamespaceSummary aggregates pod phases, failing pods, and warning events
// for one namespace.
func (s *dirSnapshot) NamespaceSummary(ctx context.Context, namespace string) (*NamespaceSummary, error) {
	if namespace == "" {
		return nil, fmt.Errorf("namespace is required")
	}

	pods, err := s.loadPodList(namespace)
	if err != nil {
		return nil, err
	}

	summary := &NamespaceSummary{
		Namespace:   namespace,
		PodCount:    len(pods),
		PodsByPhase: make(map[string]int),
	}
	for _, pod := range pods {
		ps := summarizePod(pod)
		summary.PodsByPhase[ps.Phase]++
		if isFailing(ps, pod) {
			summary.FailingPods = append(summary.FailingPods, ps)
		}
	}

	events, err := s.RecentEvents(ctx, namespace, true)
	if err != nil {
		return nil, err
	}
	summary.WarningEvents = events

	return summary, nil
}

// collectPods walks pods in one namespace or all captured namespaces and
// keeps the ones the predicate selects. Namespace iteration order is sorted,
// so output is deterministic.
func (s *dirSnapshot) collectPods(ctx context.Context, namespace string, keep func(PodSummary, corev1.Pod) bool) ([]PodSummary, error) {
	namespaces := []string{namespace}
	if namespace == "" {
		var err error
		namespaces, err = s.namespaceNames()
		if err != nil {
			return nil, err
		}
	}

	var out []PodSummary
	for _, ns := range namespaces {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pods, err := s.loadPodList(ns)
		if err != nil {
			return nil, err
		}
		for _, pod := range pods {
			summary := summarizePod(pod)
			if keep(summary, pod) {
				out = append(out, summary)
			}
		}
	}
	return out, nil
}

// isFailing decides whether a pod counts as failing: terminal bad phases,
// stuck Pending, a non-tolerated waiting reason, or a Running pod with
// not-ready containers.
func isFailing(summary PodSummary, pod corev1.Pod) bool {
	switch pod.Status.Phase {
	case corev1.PodFailed, corev1.PodUnknown, corev1.PodPending:
		return true
	case corev1.PodSucceeded:
		return false
	}

	if summary.Reason != "" && !waitingReasonsTolerated[summary.Reason] {
		return true
	}

	for _, c := range pod.Status.ContainerStatuses {
		if !c.Ready {
			return true
		}
	}
	return false
}

// summarizePod condenses a pod into its summary form.
func summarizePod(pod corev1.Pod) PodSummary {
	summary := PodSummary{
		Name:      pod.Name,
		Namespace: pod.Namespace,
		Phase:     string(pod.Status.Phase),
		Node:      pod.Spec.NodeName,
	}

	ready := 0
	for _, c := range pod.Status.ContainerStatuses {
		cs := ContainerStatusSummary{
			Name:     c.Name,
			Ready:    c.Ready,
			Restarts: c.RestartCount,
		}
		switch {
		case c.State.Running != nil:
			cs.State = "running"
		case c.State.Waiting != nil:
			cs.State = "waiting"
			cs.Reason = c.State.Waiting.Reason
		case c.State.Terminated != nil:
			cs.State = "terminated"
			cs.Reason = c.State.Terminated.Reason
			cs.ExitCode = c.State.Terminated.ExitCode
		}
		if cs.Reason == "" && c.LastTerminationState.Terminated != nil {
			cs.Reason = c.LastTerminationState.Terminated.Reason
			cs.ExitCode = c.LastTerminationState.Terminated.ExitCode
		}

		if c.Ready {
			ready++
		}
		summary.Restarts += c.RestartCount
		// The aggregate reason is the first non-running container's reason,
		// matching what kubectl shows in the STATUS column.
		if summary.Reason == "" && cs.State != "running" && cs.Reason != "" {
			summary.Reason = cs.Reason
		}
		summary.Containers = append(summary.Containers, cs)
	}

	summary.Ready = fmt.Sprintf("%d/%d", ready, len(pod.Status.ContainerStatuses))
	if pod.Status.Reason != "" && summary.Reason == "" {
		summary.Reason = pod.Status.Reason
	}

	return summary
}
