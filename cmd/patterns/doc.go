// Command patterns lists and runs the design pattern examples.
//
// Every example is registered in the catalog under "<pattern>/<variant>".
// With no flags, patterns runs all of them in catalog order.
//
// Usage
//
//	patterns [-config file.yaml] [-list] [-pattern name] [-variant name] [-metrics]
//
// Flags
//
//   - -config: YAML file merged over the defaults (unknown keys are rejected)
//   - -list: print the catalog grouped by pattern and exit
//   - -pattern: run only this pattern, e.g. "observer"
//   - -variant: run only this variant, e.g. "good"; combine with -pattern
//   - -metrics: write Prometheus text metrics for the run to stderr
//
// Configuration
//
// Settings come from defaults, then the -config file, then PATTERNS_*
// environment variables (a .env file in the working directory is loaded
// first and never overrides variables that are already set):
//
//	PATTERNS_ENV            free-form environment name (default "local")
//	PATTERNS_LOG_LEVEL      debug|info|warn|error (default "info")
//	PATTERNS_LOG_FORMAT     text|json (default "text")
//	PATTERNS_LOG_FILE       file the singleton examples append to (default "app.log")
//	PATTERNS_LATENCY_SCALE  multiplier for simulated delays; 0 disables them (default 1)
//
// Example narrative goes to stdout. Logs and metrics go to stderr.
//
// Exit codes
//
//   - 0: every selected example succeeded
//   - 1: an example failed or the configuration is invalid
//   - 2: usage error, including an unknown pattern or variant
package main
