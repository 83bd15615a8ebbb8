// Package config provides centralized configuration management for the
// deal sheet generator. It handles loading configuration from multiple
// sources, validation, and provides a type-safe API for the rest of the
// application.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of
// precedence:
//
//	1. Environment variables (highest priority)
//	2. YAML configuration file
//	3. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern DEALGEN_* for namespacing:
//
//	DEALGEN_FALLBACK_STOCK=25
//	DEALGEN_SUMMARIES=false
//	DEALGEN_LOGGING_LEVEL=debug
//	DEALGEN_LOGGING_OUTPUT=both
//
// Deal definitions cannot be expressed as environment variables; they come
// from the YAML file or from CLI flags.
//
// # Configuration File
//
// When no explicit path is given, dealgen.yaml and configs/dealgen.yaml
// are probed in order:
//
//	fallback_stock: 10
//	summaries: true
//	deals:
//	  - column: Spotlight
//	    code: SPOT-AUG
//	  - column: Mega
//	    code: ""
//	logging:
//	  level: info
//	  format: json
//	  output: stdout
//
// # Validation
//
// All configuration is validated at load time: the fallback stock must be
// at least 1, logging enums must be known values, and a deal slot with a
// code must name its column. Deal-level rules (at least one active deal,
// no duplicate codes) are enforced by the generator when it is built.
package config
