package postdex

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CatalogCollector exposes the structural state of one catalog as gauges:
// how full the hash index is, how degenerate the tree got, how big the
// heap is. Register it next to the package metric vectors.
type CatalogCollector struct {
	c *Catalog

	records      *prometheus.Desc
	buckets      *prometheus.Desc
	longestChain *prometheus.Desc
	avgProbes    *prometheus.Desc
	treeHeight   *prometheus.Desc
	heapSize     *prometheus.Desc
}

func NewCatalogCollector(c *Catalog) *CatalogCollector {
	return &CatalogCollector{
		c: c,

		records: prometheus.NewDesc(
			"postdex_catalog_records",
			"Number of records held by the catalog",
			nil, nil,
		),
		buckets: prometheus.NewDesc(
			"postdex_hashtable_buckets",
			"Fixed bucket count of the hash index",
			nil, nil,
		),
		longestChain: prometheus.NewDesc(
			"postdex_hashtable_longest_chain",
			"Length of the fullest hash bucket chain",
			nil, nil,
		),
		avgProbes: prometheus.NewDesc(
			"postdex_hashtable_avg_probes",
			"Average chain scan length per lookup",
			nil, nil,
		),
		treeHeight: prometheus.NewDesc(
			"postdex_tree_height",
			"Height of the ordered index (unbalanced tree only)",
			nil, nil,
		),
		heapSize: prometheus.NewDesc(
			"postdex_heap_size",
			"Number of records in the priority index",
			nil, nil,
		),
	}
}

func (cc *CatalogCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- cc.records
	ch <- cc.buckets
	ch <- cc.longestChain
	ch <- cc.avgProbes
	ch <- cc.treeHeight
	ch <- cc.heapSize
}

func (cc *CatalogCollector) Collect(ch chan<- prometheus.Metric) {
	cc.c.lock.Lock()
	records := cc.c.hash.Len()
	buckets := cc.c.hash.Buckets()
	longest := cc.c.hash.LongestChain()
	probes := cc.c.hash.AvgProbes()
	heapSize := cc.c.heap.Len()
	var height int
	h, hasHeight := cc.c.tree.(interface{ Height() int })
	if hasHeight {
		height = h.Height()
	}
	cc.c.lock.Unlock()

	ch <- prometheus.MustNewConstMetric(
		cc.records,
		prometheus.GaugeValue,
		float64(records),
	)
	ch <- prometheus.MustNewConstMetric(
		cc.buckets,
		prometheus.GaugeValue,
		float64(buckets),
	)
	ch <- prometheus.MustNewConstMetric(
		cc.longestChain,
		prometheus.GaugeValue,
		float64(longest),
	)
	ch <- prometheus.MustNewConstMetric(
		cc.avgProbes,
		prometheus.GaugeValue,
		probes,
	)
	if hasHeight {
		ch <- prometheus.MustNewConstMetric(
			cc.treeHeight,
			prometheus.GaugeValue,
			float64(height),
		)
	}
	ch <- prometheus.MustNewConstMetric(
		cc.heapSize,
		prometheus.GaugeValue,
		float64(heapSize),
	)
}
