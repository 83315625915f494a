package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by route, method and status",
		},
		[]string{"route", "method", "status"},
	)
	OrdersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "purchase_orders_created_total",
			Help: "Total purchase orders added",
		},
	)
	OrdersDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "purchase_orders_deleted_total",
			Help: "Total purchase orders deleted",
		},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequests)
	prometheus.MustRegister(OrdersCreated)
	prometheus.MustRegister(OrdersDeleted)
}

// Metrics counts every request after the handler chain finishes.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		HTTPRequests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
