package prom

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	LinesRead = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rmdup_lines_read_total",
		Help: "The total number of lines read from input",
	})
	LinesBytesRead = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rmdup_lines_read_bytes_total",
		Help: "The total number of bytes read from input, including delimiters",
	})
	LinesEmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rmdup_lines_emitted_total",
		Help: "The total number of novel lines written to output",
	})
	// line pipeline stage monitoring
	LinesPipelineFiltered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rmdup_lines_pipeline_filtered_total",
		Help: "The total number of lines dropped by each pipeline stage",
	}, []string{"stage"})
)
