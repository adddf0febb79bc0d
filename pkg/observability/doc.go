/*
Package observability exposes scribe's operation outcomes as Prometheus metrics.

Metrics implements ports.Observer and is handed to the operations layer; the
HTTP adapter serves the registry it was registered on at /metrics.
*/
package observability
