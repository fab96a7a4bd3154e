package postdex

import "github.com/prometheus/client_golang/prometheus"

var InsertCount = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "postdex",
	Subsystem: "catalog",
	Name:      "inserts",
}, []string{"result"})

var HashInsertCount = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "postdex",
	Subsystem: "hashtable",
	Name:      "inserts",
}, []string{"outcome"})

var RangeCacheCount = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "postdex",
	Subsystem: "catalog",
	Name:      "range_cache",
}, []string{"result"})

var QueryDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "postdex",
	Subsystem: "catalog",
	Name:      "query_duration_seconds",
	Buckets:   prometheus.DefBuckets,
}, []string{"op"})

// MustRegisterMetrics registers the package-level metric vectors. Callers
// wanting per-catalog gauges should also register the catalog's Collector.
func MustRegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(InsertCount, HashInsertCount, RangeCacheCount, QueryDuration)
}
