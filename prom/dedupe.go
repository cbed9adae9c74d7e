package prom

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DedupeCacheEvictions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rmdup_dedupe_evictions_total",
		Help: "The total number of hashes evicted from the bounded dedupe cache",
	})
	DedupeKeyMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rmdup_dedupe_key_misses_total",
		Help: "The total number of lines without the configured key, deduplicated on the whole line",
	})
)
