package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector exposes scheduling counters and histograms for Prometheus.
type Collector struct {
	interviewsScheduled   prometheus.Counter
	interviewsRescheduled prometheus.Counter
	schedulingFailed      prometheus.Counter
	validationRejected    prometheus.Counter
	noSlotsFound          prometheus.Counter

	processingTime prometheus.Histogram
	slotsEvaluated prometheus.Histogram
}

// NewCollector builds the collector and registers every metric with reg.
// Pass prometheus.DefaultRegisterer for the process-wide registry.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		interviewsScheduled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scheduler_interviews_scheduled_total",
			Help: "Total number of interviews scheduled successfully",
		}),
		interviewsRescheduled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scheduler_interviews_rescheduled_total",
			Help: "Total number of interviews rescheduled",
		}),
		schedulingFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scheduler_scheduling_failed_total",
			Help: "Total number of scheduling attempts that failed",
		}),
		validationRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scheduler_validation_rejected_total",
			Help: "Total number of requests rejected by validation",
		}),
		noSlotsFound: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scheduler_no_slots_found_total",
			Help: "Total number of attempts that found no candidate slot",
		}),
		processingTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "scheduler_processing_time_seconds",
			Help:    "Scheduling pipeline processing time in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		slotsEvaluated: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "scheduler_slots_evaluated",
			Help:    "Number of candidate slots evaluated per attempt",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}),
	}

	reg.MustRegister(
		c.interviewsScheduled,
		c.interviewsRescheduled,
		c.schedulingFailed,
		c.validationRejected,
		c.noSlotsFound,
		c.processingTime,
		c.slotsEvaluated,
	)

	return c
}

func (c *Collector) RecordScheduled(processingSeconds float64, slotsEvaluated int) {
	c.interviewsScheduled.Inc()
	c.processingTime.Observe(processingSeconds)
	c.slotsEvaluated.Observe(float64(slotsEvaluated))
}

func (c *Collector) RecordRescheduled() {
	c.interviewsRescheduled.Inc()
}

func (c *Collector) RecordFailed() {
	c.schedulingFailed.Inc()
}

func (c *Collector) RecordValidationRejected() {
	c.validationRejected.Inc()
}

func (c *Collector) RecordNoSlotsFound(slotsEvaluated int) {
	c.noSlotsFound.Inc()
	c.slotsEvaluated.Observe(float64(slotsEvaluated))
}

// Handler returns the HTTP handler for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
