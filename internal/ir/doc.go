// Package ir provides the expression tree and range table types for
// pgexprfmt.
//
// This package contains type definitions and their wire encoding only.
// All other internal packages import ir; ir imports nothing internal.
// This keeps the IR the foundational layer with no circular dependencies.
//
// Key design constraints:
//   - NO float types anywhere - constant values use int64 for numbers
//   - Expr and Datum are sealed interfaces (marker method pattern)
//   - Range table lookups are 1-based, matching PostgreSQL varno semantics
//   - All JSON/YAML tags use snake_case
package ir
