/*
Package operations implements create_page and update_page.

Each call is a single linear sequence: validate the raw input, build blocks,
compose the request, send it through a ports.Gateway and shape the result.
A successful create is recorded in the injected ports.PageRegistry.

Operations never return Go errors. Validation failures, remote rejections,
unparseable error bodies and transport faults all come back as a
domain.OperationResult, so a failing call cannot affect other in-flight calls.
*/
package operations
