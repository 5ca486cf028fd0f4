package algonrrd

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exports resampling activity to Prometheus. A nil *Metrics records
// nothing.
type Metrics struct {
	Executions     prometheus.Counter
	Passes         prometheus.Counter
	Scanlines      prometheus.Counter
	TableBuilds    prometheus.Counter
	TableCacheHits prometheus.Counter
	InvalidKernels prometheus.Counter
	ExecuteSeconds prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg when it is
// not nil. Collectors already registered under the same names are reused,
// so several contexts can report into one registry.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "nrrd",
			Subsystem: "resample",
			Name:      name,
			Help:      help,
		})
	}

	m := &Metrics{
		Executions:     counter("executions_total", "Completed context executions."),
		Passes:         counter("passes_total", "Axis convolution passes run."),
		Scanlines:      counter("scanlines_total", "Scanlines convolved."),
		TableBuilds:    counter("table_builds_total", "Weight tables computed."),
		TableCacheHits: counter("table_cache_hits_total", "Weight tables taken from a shared cache."),
		InvalidKernels: counter("invalid_kernels_total", "Axes configured with a kernel missing from the TMF table."),
		ExecuteSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "nrrd",
			Subsystem: "resample",
			Name:      "execute_seconds",
			Help:      "Wall time of context executions.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		}),
	}

	if reg == nil {
		return m, nil
	}

	var err error

	for _, c := range []*prometheus.Counter{
		&m.Executions, &m.Passes, &m.Scanlines, &m.TableBuilds, &m.TableCacheHits, &m.InvalidKernels,
	} {
		if *c, err = register(reg, *c); err != nil {
			return nil, err
		}
	}

	if m.ExecuteSeconds, err = register(reg, m.ExecuteSeconds); err != nil {
		return nil, err
	}

	return m, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}

	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing, nil
		}
	}

	return c, err
}

func (m *Metrics) execution(d time.Duration, passes int, scanlines int64) {
	if m == nil {
		return
	}

	m.Executions.Inc()
	m.Passes.Add(float64(passes))
	m.Scanlines.Add(float64(scanlines))
	m.ExecuteSeconds.Observe(d.Seconds())
}

func (m *Metrics) tableBuilt() {
	if m != nil {
		m.TableBuilds.Inc()
	}
}

func (m *Metrics) tableCacheHit() {
	if m != nil {
		m.TableCacheHits.Inc()
	}
}

func (m *Metrics) invalidKernel() {
	if m != nil {
		m.InvalidKernels.Inc()
	}
}
