package services

import "github.com/prometheus/client_golang/prometheus"

var (
	tablesClosedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bar_tables_closed_total",
			Help: "Tables closed into history",
		},
		[]string{"payment_method"},
	)

	revenueTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bar_revenue_total",
			Help: "Revenue of closed orders",
		},
		[]string{"payment_method"},
	)

	ordersOpenedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bar_orders_opened_total",
			Help: "Orders opened on a table",
		},
	)

	openTablesGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "bar_open_tables",
			Help: "Tables currently open or waiting for payment",
		},
	)

	storeWriteErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bar_store_write_errors_total",
			Help: "Failed collection writes",
		},
		[]string{"collection"},
	)
)

func init() {
	prometheus.MustRegister(tablesClosedTotal, revenueTotal, ordersOpenedTotal, openTablesGauge, storeWriteErrors)
}
