package metrics

import (
	"sort"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// PrometheusCollector implements Collector on client_golang vectors.
type PrometheusCollector struct {
	events       *prometheus.CounterVec
	eventLatency *prometheus.HistogramVec
	transitions  *prometheus.CounterVec
	rejections   *prometheus.CounterVec
	withdrawals  *prometheus.CounterVec
	withdrawn    prometheus.Counter
	deposits     prometheus.Counter
	deposited    prometheus.Counter
}

// NewPrometheusCollector builds the vectors under namespace. Call Register
// before use.
func NewPrometheusCollector(namespace string) *PrometheusCollector {
	return &PrometheusCollector{
		events: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "events_total",
				Help:      "Events delivered to the controller, by active state and event kind",
			},
			[]string{"state", "event"},
		),
		eventLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "event_duration_seconds",
				Help:      "Time spent handling one event",
				Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
			},
			[]string{"event"},
		),
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "transitions_total",
				Help:      "State transitions",
			},
			[]string{"from", "to"},
		),
		rejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rejections_total",
				Help:      "Recoverable user-input rejections",
			},
			[]string{"reason"},
		),
		withdrawals: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "withdrawals_total",
				Help:      "Withdrawal attempts by outcome",
			},
			[]string{"status"},
		),
		withdrawn: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "withdrawn_amount_total",
			Help:      "Sum of dispensed amounts",
		}),
		deposits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deposits_total",
			Help:      "Credited deposits",
		}),
		deposited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deposited_amount_total",
			Help:      "Sum of credited amounts",
		}),
	}
}

// Register registers all vectors with registry.
func (pc *PrometheusCollector) Register(registry prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		pc.events,
		pc.eventLatency,
		pc.transitions,
		pc.rejections,
		pc.withdrawals,
		pc.withdrawn,
		pc.deposits,
		pc.deposited,
	}
	for _, c := range collectors {
		if err := registry.Register(c); err != nil {
			return err
		}
	}
	return nil
}

func (pc *PrometheusCollector) RecordEvent(state, event string, duration time.Duration) {
	pc.events.WithLabelValues(state, event).Inc()
	pc.eventLatency.WithLabelValues(event).Observe(duration.Seconds())
}

func (pc *PrometheusCollector) RecordTransition(from, to string) {
	pc.transitions.WithLabelValues(from, to).Inc()
}

func (pc *PrometheusCollector) RecordRejection(reason string) {
	pc.rejections.WithLabelValues(reason).Inc()
}

func (pc *PrometheusCollector) RecordWithdrawal(amount float64, ok bool) {
	status := "dispensed"
	if !ok {
		status = "declined"
	}
	pc.withdrawals.WithLabelValues(status).Inc()
	if ok {
		pc.withdrawn.Add(amount)
	}
}

func (pc *PrometheusCollector) RecordDeposit(amount float64) {
	pc.deposits.Inc()
	pc.deposited.Add(amount)
}

// Sample is one counter series flattened for display.
type Sample struct {
	Name   string
	Labels string
	Value  float64
}

// Counters gathers every counter series from g, sorted by name then labels.
// Histograms and gauges are skipped.
func Counters(g prometheus.Gatherer) ([]Sample, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}

	var out []Sample
	for _, mf := range families {
		if mf.GetType() != dto.MetricType_COUNTER {
			continue
		}
		for _, m := range mf.GetMetric() {
			out = append(out, Sample{
				Name:   mf.GetName(),
				Labels: labelString(m.GetLabel()),
				Value:  m.GetCounter().GetValue(),
			})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Labels < out[j].Labels
	})
	return out, nil
}

func labelString(pairs []*dto.LabelPair) string {
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, p.GetName()+"="+p.GetValue())
	}
	return strings.Join(parts, ",")
}
