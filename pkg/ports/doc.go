/*
Package ports defines the driven ports (interfaces) used by the operations layer.

These interfaces decouple request orchestration from the workspace transport,
the page registry and metrics, so each can be swapped for a fake in tests.

# Key Interfaces

  - Gateway: Sends create and append requests and normalizes the response.
  - PageRegistry: Records title to id pairs for created pages.
  - Observer: Receives operation outcomes (e.g., Prometheus metrics).
*/
package ports
