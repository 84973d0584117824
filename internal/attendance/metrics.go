package attendance

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeAccepted  = "accepted"
	outcomeRejected  = "rejected"
	outcomeDuplicate = "duplicate"
	outcomeError     = "error"
)

// Metrics counts check-in outcomes. A nil *Metrics records nothing.
type Metrics struct {
	checkins *prometheus.CounterVec
	warnings prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		checkins: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "attendance_checkins_total",
			Help: "Total number of check-in attempts by outcome.",
		}, []string{"outcome"}),
		warnings: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "attendance_checkin_warnings_total",
			Help: "Total number of warnings attached to accepted check-ins.",
		}),
	}
}

func (m *Metrics) observe(outcome string) {
	if m == nil {
		return
	}
	m.checkins.WithLabelValues(outcome).Inc()
}

func (m *Metrics) observeWarnings(n int) {
	if m == nil || n == 0 {
		return
	}
	m.warnings.Add(float64(n))
}
