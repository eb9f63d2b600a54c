package status

import "sync/atomic"

// Registry is the central metrics facade
// Components cache pointers at construction; hot paths write directly to atomics
type Registry struct {
	Bools *MetricMap[atomic.Bool]
	Ints  *MetricMap[atomic.Int64]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools: NewMetricMap[atomic.Bool](),
		Ints:  NewMetricMap[atomic.Int64](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Len() + r.Ints.Len()
}

// Snapshot copies every metric into plain maps, keyed by metric name
func (r *Registry) Snapshot() (ints map[string]int64, bools map[string]bool) {
	ints = make(map[string]int64, r.Ints.Len())
	bools = make(map[string]bool, r.Bools.Len())
	for key, ptr := range r.Ints.All() {
		ints[key] = ptr.Load()
	}
	for key, ptr := range r.Bools.All() {
		bools[key] = ptr.Load()
	}
	return ints, bools
}
