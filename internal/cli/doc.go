// Package cli implements the pgexprfmt command line interface.
//
// Commands:
//
//	fmt              render an expression fixture to text
//	catalog validate schema-check a YAML catalog definition
//	catalog snapshot persist a YAML catalog definition to SQLite
//	version          print formatter and tool versions
//
// All commands honor the global --format flag (text or json) and write
// diagnostics to stderr so JSON output stays machine-readable.
package cli
