package monitor

import (
	"io"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Lookup kinds used as the "kind" label.
const (
	LookupTitle    = "title"
	LookupAuthor   = "author"
	LookupYear     = "year"
	LookupInterval = "interval"
)

// WorkloadStats counts library operations. Each library owns its own registry.
type WorkloadStats struct {
	ReadCount  uint64
	WriteCount uint64
	HitCount   uint64

	registry     *prometheus.Registry
	adds         prometheus.Counter
	removes      prometheus.Counter
	removeMisses prometheus.Counter
	lookups      *prometheus.CounterVec
	hits         *prometheus.CounterVec
	records      prometheus.Gauge
}

func NewWorkloadStats() *WorkloadStats {
	ws := &WorkloadStats{
		registry: prometheus.NewRegistry(),
		adds: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "shelf_adds_total",
			Help: "Total number of AddBook calls that stored a record.",
		}),
		removes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "shelf_removes_total",
			Help: "Total number of RemoveBook calls that removed a record.",
		}),
		removeMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "shelf_remove_misses_total",
			Help: "Total number of RemoveBook calls for records not in the library.",
		}),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "shelf_lookups_total",
			Help: "Total number of lookups by kind.",
		}, []string{"kind"}),
		hits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "shelf_lookup_hits_total",
			Help: "Total number of lookups returning at least one record, by kind.",
		}, []string{"kind"}),
		records: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "shelf_records",
			Help: "Number of records currently stored, duplicates included.",
		}),
	}
	ws.registry.MustRegister(ws.adds, ws.removes, ws.removeMisses, ws.lookups, ws.hits, ws.records)
	return ws
}

func (ws *WorkloadStats) RecordAdd() {
	atomic.AddUint64(&ws.WriteCount, 1)
	ws.adds.Inc()
	ws.records.Inc()
}

func (ws *WorkloadStats) RecordRemove(removed bool) {
	atomic.AddUint64(&ws.WriteCount, 1)
	if !removed {
		ws.removeMisses.Inc()
		return
	}
	ws.removes.Inc()
	ws.records.Dec()
}

// RecordLookup counts one read of the given kind that returned n records.
func (ws *WorkloadStats) RecordLookup(kind string, n int) {
	atomic.AddUint64(&ws.ReadCount, 1)
	ws.lookups.WithLabelValues(kind).Inc()
	if n > 0 {
		atomic.AddUint64(&ws.HitCount, 1)
		ws.hits.WithLabelValues(kind).Inc()
	}
}

func (ws *WorkloadStats) GetReadWriteRatio() float64 {
	reads := atomic.LoadUint64(&ws.ReadCount)
	writes := atomic.LoadUint64(&ws.WriteCount)

	if writes == 0 {
		if reads > 0 {
			return 100.0
		}
		return 0.0
	}
	return float64(reads) / float64(writes)
}

func (ws *WorkloadStats) Registry() *prometheus.Registry {
	return ws.registry
}

// WriteText renders every collector in Prometheus text exposition format.
func (ws *WorkloadStats) WriteText(w io.Writer) error {
	families, err := ws.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
