package pager

import "github.com/prometheus/client_golang/prometheus"

const subsystem = "pager"

// Metrics represents the pager metrics
type Metrics struct {
	// Completed retrievals
	retrievals prometheus.Counter
	// Failed retrievals
	failures prometheus.Counter
	// Retrievals which returned an empty batch
	exhaustions prometheus.Counter
	// Retrieved entities
	entities prometheus.Counter
	// Rejected SkipTo calls
	rejectedSkips prometheus.Counter
	// Entities per batch
	batchSize prometheus.Histogram
}

// Register will register the non-nil collectors
func (m *Metrics) Register(r prometheus.Registerer) (err error) {
	for _, c := range m.collectors() {
		if err = r.Register(c); err != nil {
			return
		}
	}

	return
}

func (m *Metrics) collectors() (cs []prometheus.Collector) {
	if m.retrievals != nil {
		cs = append(cs, m.retrievals)
	}

	if m.failures != nil {
		cs = append(cs, m.failures)
	}

	if m.exhaustions != nil {
		cs = append(cs, m.exhaustions)
	}

	if m.entities != nil {
		cs = append(cs, m.entities)
	}

	if m.rejectedSkips != nil {
		cs = append(cs, m.rejectedSkips)
	}

	if m.batchSize != nil {
		cs = append(cs, m.batchSize)
	}

	return
}

func (m *Metrics) observeBatch(n int) {
	counterInc(m.retrievals)
	counterAdd(m.entities, float64(n))

	if m.batchSize == nil {
		return
	}

	m.batchSize.Observe(float64(n))
}

func (m *Metrics) observeExhaustion() {
	counterInc(m.retrievals)
	counterInc(m.exhaustions)
}

func (m *Metrics) observeFailure() {
	counterInc(m.failures)
}

func (m *Metrics) observeRejectedSkip() {
	counterInc(m.rejectedSkips)
}

// GetPrometheusMetrics return the pager metrics instance
func GetPrometheusMetrics(namespace string, labelsWithValues ...string) *Metrics {
	constLabels := parseLabels(labelsWithValues...)

	m := &Metrics{
		retrievals: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   subsystem,
			Name:        "retrievals",
			Help:        "Completed page retrievals",
			ConstLabels: constLabels,
		}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   subsystem,
			Name:        "retrieval_failures",
			Help:        "Page retrievals which returned an error",
			ConstLabels: constLabels,
		}),
		exhaustions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   subsystem,
			Name:        "exhaustions",
			Help:        "Page retrievals which returned no entities",
			ConstLabels: constLabels,
		}),
		entities: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   subsystem,
			Name:        "entities",
			Help:        "Retrieved entities",
			ConstLabels: constLabels,
		}),
		rejectedSkips: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   subsystem,
			Name:        "rejected_skips",
			Help:        "Skips rejected for moving against the walk direction",
			ConstLabels: constLabels,
		}),
		batchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   namespace,
			Subsystem:   subsystem,
			Name:        "batch_size",
			Help:        "Entities per retrieved batch",
			ConstLabels: constLabels,
			Buckets:     prometheus.LinearBuckets(0, 10, 11),
		}),
	}

	return m
}

// NilMetrics will return the non operational pager metrics
func NilMetrics() *Metrics {
	return &Metrics{}
}

func parseLabels(labelsWithValues ...string) prometheus.Labels {
	if len(labelsWithValues)%2 != 0 {
		panic("invalid labels, expected label and value pairs")
	}

	constLabels := make(prometheus.Labels, len(labelsWithValues)/2)
	for i := 1; i < len(labelsWithValues); i += 2 {
		constLabels[labelsWithValues[i-1]] = labelsWithValues[i]
	}

	return constLabels
}

func counterInc(counter prometheus.Counter) {
	if counter == nil {
		return
	}

	counter.Inc()
}

func counterAdd(counter prometheus.Counter, v float64) {
	if counter == nil {
		return
	}

	counter.Add(v)
}
