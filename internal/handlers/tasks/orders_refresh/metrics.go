package orders_refresh

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultOK      = "ok"
	resultError   = "error"
	resultStale   = "stale"
	resultSkipped = "skipped"
)

var SnapshotRefreshTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "snapshot_refresh_total",
		Help: "Order snapshot refresh attempts by collection and result",
	},
	[]string{"collection", "result"},
)
