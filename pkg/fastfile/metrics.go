package fastfile

import "time"

// Metrics receives reader observability events.
//
// A nil Metrics disables collection; every call site checks for nil so an
// unset interface costs nothing. The Prometheus implementation lives in
// pkg/metrics/prometheus.
type Metrics interface {
	// ObserveOpen records a reader constructed with the given backend and hint.
	ObserveOpen(backend BackingKind, hint HintClass)

	// ObserveHintFailure records a failed kernel hint of the given class.
	ObserveHintFailure(hint HintClass)

	// ObserveRead records one successful read call.
	ObserveRead(bytes int, duration time.Duration)
}
