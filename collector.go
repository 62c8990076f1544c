package bumpalloc

import "github.com/prometheus/client_golang/prometheus"

// Collector exposes arena metrics in Prometheus format. It takes a fresh
// snapshot through source on every scrape; arenas touched from more than
// one goroutine should hand in SafeArena.Metrics so the snapshot is
// taken under the lock.
type Collector struct {
	source func() ArenaMetrics

	bytesInUse    *prometheus.Desc
	capacityBytes *prometheus.Desc
	chunks        *prometheus.Desc
	utilization   *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector returns a prometheus.Collector reporting the metrics
// snapshot returned by source. name becomes the value of the "arena"
// label, so several arenas can register against one registry.
func NewCollector(name string, source func() ArenaMetrics) *Collector {
	constLabels := prometheus.Labels{"arena": name}
	return &Collector{
		source: source,
		bytesInUse: prometheus.NewDesc(
			"bumpalloc_bytes_in_use",
			"Bytes handed out by the arena, alignment padding included.",
			nil, constLabels,
		),
		capacityBytes: prometheus.NewDesc(
			"bumpalloc_capacity_bytes",
			"Total payload bytes of the arena's chunks.",
			nil, constLabels,
		),
		chunks: prometheus.NewDesc(
			"bumpalloc_chunks",
			"Number of chunks in the arena's chain.",
			nil, constLabels,
		),
		utilization: prometheus.NewDesc(
			"bumpalloc_utilization_ratio",
			"Bytes in use divided by capacity.",
			nil, constLabels,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.bytesInUse
	ch <- c.capacityBytes
	ch <- c.chunks
	ch <- c.utilization
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	m := c.source()
	ch <- prometheus.MustNewConstMetric(c.bytesInUse, prometheus.GaugeValue, float64(m.SizeInUse))
	ch <- prometheus.MustNewConstMetric(c.capacityBytes, prometheus.GaugeValue, float64(m.Capacity))
	ch <- prometheus.MustNewConstMetric(c.chunks, prometheus.GaugeValue, float64(m.NumChunks))
	ch <- prometheus.MustNewConstMetric(c.utilization, prometheus.GaugeValue, m.Utilization)
}
