// Package config provides configuration management for the csvfleet CLI.
// It loads configuration from the environment and an optional YAML file,
// validates it, and hands typed defaults to the logging setup and to the
// csvhelper operations.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. YAML configuration file
//	3. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern CSVFLEET_<SECTION>_<OPTION>:
//
//	CSVFLEET_CONFIG_FILE=/etc/csvfleet.yml
//	CSVFLEET_LOGGING_LEVEL=debug
//	CSVFLEET_LOGGING_OUTPUT=both
//	CSVFLEET_CSV_PREVIEW_ROWS=10
//	CSVFLEET_CSV_NA_REP=NaN
//
// # Configuration File
//
//	logging:
//	  level: info
//	  format: json
//	csv:
//	  preview_rows: 5
//	  preview_chars: 70
//	  include_first: true
//
// # Validation
//
// Load validates every field with go-playground/validator struct tags and
// fails fast on an unknown log level, output mode or a negative row count.
//
// # Usage
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Testing
//
// Use config.Default() to get a configuration that does not depend on the
// environment.
package config
