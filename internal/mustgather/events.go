package mustgather

import (
	"context"
	"sort"
	"time"

	corev1 "k8s.io/api/core/v1"
)

// RecentEvents lists captured events newest first, optionally restricted to
// one namespace or to Warning events.
func (s *dirSnapshot) RecentEvents(ctx context.Context, namespace string, warningsOnly bool) ([]EventSummary, error) {
	namespaces := []string{namespace}
	if namespace == "" {
		var err error
		namespaces, err = s.namespaceNames()
		if err != nil {
			return nil, err
		}
	}

	var out []EventSummary
	for _, ns := range namespaces {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		events, err := s.loadEventList(ns)
		if err != nil {
			return nil, err
		}
		for _, ev := range events {
			if warningsOnly && ev.Type != corev1.EventTypeWarning {
				continue
			}
			out = append(out, summarizeEvent(ev))
		}
	}

	// Newest first; ties broken by object then reason so the order is
	// reproducible for identical snapshots.
	sort.Slice(out, func(i, j int) bool {
		if out[i].LastSeen != out[j].LastSeen {
			return out[i].LastSeen > out[j].LastSeen
		}
		if out[i].Object != out[j].Object {
			return out[i].Object < out[j].Object
		}
		return out[i].Reason < out[j].Reason
	})
	return out, nil
}

func summarizeEvent(ev corev1.Event) EventSummary {
	summary := EventSummary{
		Namespace: ev.Namespace,
		Type:      ev.Type,
		Reason:    ev.Reason,
		Object:    ev.InvolvedObject.Kind + "/" + ev.InvolvedObject.Name,
		Message:   ev.Message,
		Count:     ev.Count,
	}

	lastSeen := ev.LastTimestamp.Time
	if lastSeen.IsZero() && ev.Series != nil {
		lastSeen = ev.Series.LastObservedTime.Time
	}
	if lastSeen.IsZero() {
		lastSeen = ev.EventTime.Time
	}
	if !lastSeen.IsZero() {
		summary.LastSeen = lastSeen.UTC().Format(time.RFC3339)
	}
	return summary
}
