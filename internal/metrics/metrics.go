package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	once sync.Once

	bookings = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "barber_queue",
			Name:      "bookings_total",
			Help:      "Appointments created, by kind (booking, walk_in).",
		},
		[]string{"kind"},
	)

	rejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "barber_queue",
			Name:      "rejections_total",
			Help:      "Rejected operations by operation and error code.",
		},
		[]string{"operation", "code"},
	)

	transitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "barber_queue",
			Name:      "transitions_total",
			Help:      "Appointment status transitions.",
		},
		[]string{"from", "to"},
	)

	droppedEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "barber_queue",
			Name:      "events_dropped_total",
			Help:      "Events dropped because the bus buffer was full.",
		},
		[]string{"topic"},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "barber_queue",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status.",
		},
		[]string{"route", "status"},
	)
)

// Register registers the collectors. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookings, rejections, transitions, droppedEvents, httpRequests)
	})
}

func Handler() http.Handler {
	return promhttp.Handler()
}

func IncBooking(kind string) {
	bookings.WithLabelValues(kind).Inc()
}

func IncRejection(operation, code string) {
	rejections.WithLabelValues(operation, code).Inc()
}

func IncTransition(from, to string) {
	transitions.WithLabelValues(from, to).Inc()
}

func IncDroppedEvent(topic string) {
	droppedEvents.WithLabelValues(topic).Inc()
}

func IncHTTP(route, status string) {
	httpRequests.WithLabelValues(route, status).Inc()
}
