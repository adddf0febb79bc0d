// Package http serves create_page and update_page as a small JSON API, along
// with the page registry, a health check and Prometheus metrics.
package http
