package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// SetupPrometheus creates the registry with the Go build info, runtime and
// process collectors, plus any extra collectors (e.g. the pg pool collector).
func SetupPrometheus(extraCollectors ...prometheus.Collector) *prometheus.Registry {
	promRegistry := prometheus.NewRegistry()

	promRegistry.MustRegister(
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	for _, c := range extraCollectors {
		if c != nil {
			promRegistry.MustRegister(c)
		}
	}

	return promRegistry
}
