package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// GenerationMetrics records the outcome of haul generation pipelines.
type GenerationMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
	products *prometheus.HistogramVec
}

// NewGenerationMetrics registers the generation metrics on the provided registerer.
func NewGenerationMetrics(reg prometheus.Registerer) *GenerationMetrics {
	if reg == nil {
		return &GenerationMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "haul_generation_duration_seconds",
		Help:    "Duration of haul generation stages in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"stage"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "haul_generation_success",
		Help: "Successful haul generation stages.",
	}, []string{"stage"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "haul_generation_failure",
		Help: "Failed haul generation stages.",
	}, []string{"stage"})
	products := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "haul_generation_products",
		Help:    "Number of products resolved per generation.",
		Buckets: []float64{0, 2, 4, 8, 12, 16},
	}, []string{"stage"})
	reg.MustRegister(duration, success, failure, products)
	return &GenerationMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
		products: products,
	}
}

// ObserveDuration records the duration for the named stage.
func (g *GenerationMetrics) ObserveDuration(stage string, duration time.Duration) {
	if g == nil || g.duration == nil {
		return
	}
	g.duration.WithLabelValues(normalizeLabel(stage)).Observe(duration.Seconds())
}

// IncSuccess increments the success counter for the named stage.
func (g *GenerationMetrics) IncSuccess(stage string) {
	if g == nil || g.success == nil {
		return
	}
	g.success.WithLabelValues(normalizeLabel(stage)).Inc()
}

// IncFailure increments the failure counter for the named stage.
func (g *GenerationMetrics) IncFailure(stage string) {
	if g == nil || g.failure == nil {
		return
	}
	g.failure.WithLabelValues(normalizeLabel(stage)).Inc()
}

// ObserveProducts records how many products a generation resolved.
func (g *GenerationMetrics) ObserveProducts(stage string, count int) {
	if g == nil || g.products == nil {
		return
	}
	g.products.WithLabelValues(normalizeLabel(stage)).Observe(float64(count))
}

func normalizeLabel(stage string) string {
	if stage == "" {
		return "unknown"
	}
	return stage
}
