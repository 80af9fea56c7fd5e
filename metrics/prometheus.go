// File: prometheus.go — Prometheus-backed Recorder, grounded in the one
// example repo in the pack that wires github.com/prometheus/client_golang
// into a long-running service's hot path.

package metrics

import "github.com/prometheus/client_golang/prometheus"

type promRecorder struct {
	nodesCreated      prometheus.Counter
	fillEdgesAdded    prometheus.Counter
	operationsApplied *prometheus.CounterVec
}

// Prometheus returns a Recorder backed by counters registered against
// reg. Registration happens once, at construction time; it panics if reg
// already has conflicting collectors registered (the standard
// client_golang contract for MustRegister).
func Prometheus(reg *prometheus.Registry) Recorder {
	r := &promRecorder{
		nodesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "htdecomp",
			Name:      "tree_nodes_created_total",
			Help:      "Tree decomposition nodes created, across bucket elimination and manipulation operations.",
		}),
		fillEdgesAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "htdecomp",
			Name:      "fill_edges_added_total",
			Help:      "Fill edges added while simulating the elimination game.",
		}),
		operationsApplied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "htdecomp",
			Name:      "manip_operations_applied_total",
			Help:      "Manipulation operations applied, by operation name.",
		}, []string{"operation"}),
	}

	reg.MustRegister(r.nodesCreated, r.fillEdgesAdded, r.operationsApplied)

	return r
}

func (r *promRecorder) NodeCreated()  { r.nodesCreated.Inc() }
func (r *promRecorder) FillEdgeAdded() { r.fillEdgesAdded.Inc() }
func (r *promRecorder) OperationApplied(name string) {
	r.operationsApplied.WithLabelValues(name).Inc()
}
