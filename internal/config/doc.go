// Package config handles configuration loading for roost-directory.
//
// # Overview
//
// Configuration is loaded from YAML files with environment variable expansion.
// The package provides validation and sensible defaults; a missing file is not
// an error for callers that use Default().
//
// # Environment Variable Expansion
//
// Configuration values can reference environment variables:
//
//	telemetry:
//	  endpoint: "${ROOST_OTLP_ENDPOINT}"
//
// Syntax: ${VAR_NAME}. Unset variables expand to the empty string.
//
// # Duration Parsing
//
// Duration values use Go's time.ParseDuration syntax:
//
//	liveness:
//	  interval: "60s"
//	  grace: "90s"
//
// Supported units: ns, us, ms, s, m, h
//
// # Configuration Sections
//
// Server settings:
//
//	server:
//	  grpc_addr: ":50051"
//
// Dispatch journal (empty path disables):
//
//	journal:
//	  path: "./roost.db"
//
// Liveness sweep timing (grace must be >= interval):
//
//	liveness:
//	  interval: "60s"
//	  grace: "90s"
//
// Subscriber fan-out tuning:
//
//	fanout:
//	  queue_capacity: 10
//	  refresh_interval: "60s"
//
// Logging:
//
//	logging:
//	  level: "info"   # debug, info, warn, error
//	  format: "text"  # text, json
//
// Trace export:
//
//	telemetry:
//	  enabled: false
//	  endpoint: "localhost:4317"
package config
