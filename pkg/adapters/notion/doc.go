// Package notion is the ServiceGateway for the Notion REST API.
//
// It sends exactly one write request per call and folds every outcome,
// including transport faults and unparseable error bodies, into a
// domain.OperationResult. It never retries.
package notion
