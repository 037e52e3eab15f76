// Package middleware provides HTTP observability middleware for the
// preview server.
//
// # OpenTelemetry Middleware
//
// OpenTelemetry traces every request. Spans are named after the matched
// chi route and carry the method, target path and status code.
//
//	r := chi.NewRouter()
//	r.Use(middleware.OpenTelemetry(middleware.WithTracerName("site")))
//
// Configure the global provider in main() before starting the server, or
// pass one with WithTracerProvider.
//
// # Prometheus Metrics
//
// NewMetrics registers request and render collectors:
//
//	m := middleware.NewMetrics(middleware.WithNamespace("site"))
//	r.Use(m.Handler)
//	r.Handle("/metrics", promhttp.Handler())
//
// Handlers report document renders with ObserveRender and failed builds
// with ObserveRenderError.
package middleware
