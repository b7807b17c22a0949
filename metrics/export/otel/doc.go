// Package otel bridges session metrics into an OpenTelemetry meter.
// Counters and cumulative histogram buckets are registered as observable
// instruments and read from a fresh snapshot on every collection.
package otel
