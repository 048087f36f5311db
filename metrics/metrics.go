// Package metrics exposes the service's Prometheus instrumentation.
package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	LoginsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pizzastore_logins_total",
		Help: "Successful logins",
	})
	OrdersPlacedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pizzastore_orders_placed_total",
		Help: "Orders successfully placed",
	})
	OrdersDeliveredTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pizzastore_orders_delivered_total",
		Help: "Orders marked delivered",
	})
)

func init() {
	prometheus.MustRegister(LoginsTotal, OrdersPlacedTotal, OrdersDeliveredTotal)
}

// Handler serves the Prometheus scrape endpoint.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
