package bot

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	updatesEnqueued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "predictor_updates_enqueued_total",
		Help: "Updates accepted onto the dispatch queue.",
	})
	updatesProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "predictor_updates_processed_total",
		Help: "Updates fully processed by a handler.",
	})
	handlerPanics = promauto.NewCounter(prometheus.CounterOpts{
		Name: "predictor_handler_panics_total",
		Help: "Handler invocations that panicked and were recovered.",
	})
	queueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "predictor_queue_depth",
		Help: "Updates currently waiting on the dispatch queue.",
	})
)
