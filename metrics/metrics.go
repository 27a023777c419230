package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nutriassist",
			Name:      "http_requests_total",
			Help:      "Count of HTTP requests by route group and status class.",
		},
		[]string{"group", "status"},
	)

	foodsLogged = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "nutriassist",
			Name:      "foods_logged_total",
			Help:      "Count of logged food entries created.",
		},
	)

	plansCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "nutriassist",
			Name:      "diet_plans_created_total",
			Help:      "Count of diet plans created by users.",
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(requestsTotal, foodsLogged, plansCreated)
	})
}

func IncRequest(group, status string) {
	requestsTotal.WithLabelValues(group, status).Inc()
}

func IncFoodLogged() {
	foodsLogged.Inc()
}

func IncPlanCreated() {
	plansCreated.Inc()
}
