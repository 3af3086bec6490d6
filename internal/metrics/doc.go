// Package metrics counts the operations, condition flags and policy errors of
// arithmetic contexts and exports them to Prometheus.
package metrics
