package catalog

import "github.com/ashenBlade/pgexprfmt/internal/ir"

// OutputFunc renders a constant value of a specific type to its raw
// textual form. No quoting or escaping is applied by callers.
type OutputFunc func(ir.Datum) string

// Resolver resolves catalog identifiers to display names and output
// conversions. All lookups report ok=false for absent entries; callers
// substitute placeholders rather than failing.
type Resolver interface {
	// OperatorName resolves an operator OID to its display name.
	OperatorName(id ir.OperatorID) (string, bool)

	// FunctionName resolves a function OID to its display name.
	FunctionName(id ir.FunctionID) (string, bool)

	// TypeOutput resolves a type OID to its output conversion.
	TypeOutput(id ir.TypeID) (OutputFunc, bool)
}
