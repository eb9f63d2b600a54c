package status

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricPrefix is prepended to every exported metric name
const MetricPrefix = "snake_"

// Collector exports a Registry to Prometheus
// Metrics are created lazily by components, so descriptors are produced at collect time
type Collector struct {
	reg *Registry
}

// NewCollector wraps reg as a prometheus.Collector
func NewCollector(reg *Registry) *Collector {
	return &Collector{reg: reg}
}

// Describe implements prometheus.Collector
// Sends nothing, which marks the collector unchecked
func (c *Collector) Describe(chan<- *prometheus.Desc) {}

// Collect implements prometheus.Collector
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for key, ptr := range c.reg.Ints.All() {
		desc := prometheus.NewDesc(MetricName(key), "vi-snake metric "+key, nil, nil)
		ch <- prometheus.MustNewConstMetric(desc, prometheus.GaugeValue, float64(ptr.Load()))
	}
	for key, ptr := range c.reg.Bools.All() {
		v := 0.0
		if ptr.Load() {
			v = 1
		}
		desc := prometheus.NewDesc(MetricName(key), "vi-snake flag "+key, nil, nil)
		ch <- prometheus.MustNewConstMetric(desc, prometheus.GaugeValue, v)
	}
}

// MetricName maps a registry key like "engine.ticks" to "snake_engine_ticks"
func MetricName(key string) string {
	r := strings.NewReplacer(".", "_", "-", "_", " ", "_")
	return MetricPrefix + r.Replace(key)
}
