// Package internaldefs holds the shared metric-name tables used by the
// Prometheus and OpenTelemetry exporters. It exists so both exporters
// agree on names, help strings, and bucket layout without either
// importing the other.
package internaldefs
