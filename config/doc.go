// Package config loads solver settings with the priority
// environment > file > defaults.
//
// The file is YAML (JSON is accepted as a fallback) with four groups:
//
//	solver:
//	  arity: 16
//	  bucket_threshold: 5000
//	  max_bucket_range: 65536
//	  mst_heuristic: true
//	  dual_ascent_heuristic: false
//	  label_store: true
//	  subset_bound: true
//	  timeout: 0s
//	  fallback: true
//	reduce:
//	  enabled: true
//	  rules: [degree-one, degree-two, terminal-leaf, long-edge, dual-ascent]
//	  max_passes: 8
//	  threshold: 0.01
//	  rule_timeout: 10s
//	decompose:
//	  enabled: true
//	  max_concurrency: 4
//	observability:
//	  log_level: info
//	  log_format: text
//	  tracing: false
//
// Every field can be overridden by a STEINER_* variable, for example
// STEINER_ARITY, STEINER_REDUCE_RULES (comma separated) or STEINER_LOG_LEVEL.
// Unparsable values are ignored. The converters turn a validated Config
// into options for the steiner, reduce and decompose packages.
package config
