/*
Package observability provides Prometheus instrumentation for stenomods lookups.

Metrics are recorded through domain.LookupHooks, so any Translator built with
stenomods.WithLookupHooks(metrics.Hooks()) is measured without further wiring.
*/
package observability
