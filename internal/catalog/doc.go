// Package catalog provides name resolution for the expression formatter:
// operator and function display names, and per-type output conversions
// for constant values.
//
// The formatter depends only on the Resolver interface, so lookups stay
// injected capabilities rather than a storage dependency. Implementations
// here cover the common cases:
//
//   - Builtin(): a seed catalog with well-known pg_catalog OIDs
//   - Memory: programmatic registration
//   - LoadFile: YAML catalog definitions, schema-validated with CUE
//
// SQLite-backed catalog snapshots live in the store package and load
// into the same Definition type.
package catalog
