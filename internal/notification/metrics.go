package notification

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	deliveriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "notification_deliveries_total",
		Help: "Notification delivery attempts by sink and outcome.",
	}, []string{"sink", "status"})

	droppedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "notification_dropped_total",
		Help: "Notifications dropped because the dispatch queue was full.",
	})

	crmUp = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "crm_up",
		Help: "Whether the last CRM health probe succeeded.",
	})
)
