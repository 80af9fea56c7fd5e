package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/htdecomp/metrics"
)

func TestNoopDoesNotPanic(t *testing.T) {
	r := metrics.Noop()
	r.NodeCreated()
	r.FillEdgeAdded()
	r.OperationApplied("AddEmptyRoot")
}

func TestOrNoop(t *testing.T) {
	require.NotNil(t, metrics.OrNoop(nil))
	require.Equal(t, metrics.Noop(), metrics.OrNoop(nil))
}

func TestPrometheusCountersIncrease(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := metrics.Prometheus(reg)

	r.NodeCreated()
	r.NodeCreated()
	r.FillEdgeAdded()
	r.OperationApplied("AddEmptyRoot")

	families, err := reg.Gather()
	require.NoError(t, err)

	counters := make(map[string]float64)
	for _, fam := range families {
		for _, m := range fam.GetMetric() {
			counters[fam.GetName()] += m.GetCounter().GetValue()
		}
	}

	require.Equal(t, float64(2), counters["htdecomp_tree_nodes_created_total"])
	require.Equal(t, float64(1), counters["htdecomp_fill_edges_added_total"])
	require.Equal(t, float64(1), counters["htdecomp_manip_operations_applied_total"])
}
