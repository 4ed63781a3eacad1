package predict

import (
    "github.com/prometheus/client_golang/prometheus"
    "github.com/prometheus/client_golang/prometheus/promauto"
)

var (
    predictionsTotal = promauto.NewCounterVec(
        prometheus.CounterOpts{
            Name: "aiimpact_predictions_total",
            Help: "Total number of predictions by decoded label",
        },
        []string{"label"},
    )

    predictionFailures = promauto.NewCounterVec(
        prometheus.CounterOpts{
            Name: "aiimpact_prediction_failures_total",
            Help: "Total number of failed predictions by pipeline stage",
        },
        []string{"stage"},
    )

    predictionDuration = promauto.NewHistogram(
        prometheus.HistogramOpts{
            Name:    "aiimpact_prediction_duration_seconds",
            Help:    "Duration of transform, predict and inverse transform",
            Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
        },
    )
)
