package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PredictRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "varscanner_predict_requests_total",
		Help: "Number of /predict requests accepted for resolution.",
	})

	AnnotationHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "varscanner_annotation_hits_total",
		Help: "Number of variant lookups resolved from the annotation store.",
	})

	AnnotationMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "varscanner_annotation_misses_total",
		Help: "Number of variant lookups resolved to the default empty annotation.",
	})
)
