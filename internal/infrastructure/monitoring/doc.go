/*
Package monitoring provides Prometheus metrics for thread lifecycle events.

# Overview

Metrics implements thread.Observer and records spawns, refusals, joins,
detaches, the live-thread gauge, and join-wait/lifetime histograms.

# Usage

	reg := prometheus.NewRegistry()
	m := monitoring.NewMetrics(reg)
	spawner := thread.NewSpawner(thread.WithObserver(m))

Expose the registry via the standard Prometheus handler:

	import "github.com/prometheus/client_golang/prometheus/promhttp"
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
*/
package monitoring
