/*
Package observability turns recognition lifecycle events into Prometheus metrics.

Metrics are registered on a caller-supplied registry and fed through domain.LifecycleHooks,
so the recognizer itself stays free of any metrics dependency:

	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)
	tk := dectab.New(dectab.WithLifecycleHooks(m.Hooks()))
*/
package observability
