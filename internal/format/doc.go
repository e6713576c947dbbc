// Package format renders planner expression trees to human-readable
// text, resolving column references against a range table and operator,
// function, and type identifiers against an injected catalog.
//
// Rendering is best-effort by design: the output is debug text, so
// unresolvable identifiers become placeholders and malformed column
// references truncate the output instead of failing the call. Format
// never returns an error and never mutates its inputs.
package format
