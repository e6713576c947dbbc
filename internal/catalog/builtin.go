package catalog

import "github.com/ashenBlade/pgexprfmt/internal/ir"

// Well-known pg_catalog OIDs covered by the builtin catalog.
const (
	// pg_type
	oidBool    = 16
	oidInt8    = 20
	oidInt4    = 23
	oidText    = 25
	oidVarchar = 1043

	// pg_operator
	oidOpInt4EQ  = 96  // =
	oidOpInt4LT  = 97  // <
	oidOpInt4GT  = 521 // >
	oidOpInt4Mul = 514 // *
	oidOpInt4Pl  = 551 // +
	oidOpInt4Mi  = 555 // -
	oidOpInt4UM  = 558 // unary -
	oidOpTextCat = 654 // ||

	// pg_proc
	oidFnLower   = 870
	oidFnUpper   = 871
	oidFnInt4Abs = 1251
	oidFnTextCat = 1258
	oidFnLength  = 1317
)

// Builtin returns a catalog seeded with the PostgreSQL built-ins the
// tool most commonly encounters in captured plans. Snapshot or file
// catalogs replace it when fixtures reference anything beyond this set.
func Builtin() *Memory {
	m := NewMemory()

	m.RegisterType(oidBool, OutBool)
	m.RegisterType(oidInt8, OutInt)
	m.RegisterType(oidInt4, OutInt)
	m.RegisterType(oidText, OutText)
	m.RegisterType(oidVarchar, OutText)

	m.RegisterOperator(oidOpInt4EQ, "=")
	m.RegisterOperator(oidOpInt4LT, "<")
	m.RegisterOperator(oidOpInt4GT, ">")
	m.RegisterOperator(oidOpInt4Mul, "*")
	m.RegisterOperator(oidOpInt4Pl, "+")
	m.RegisterOperator(oidOpInt4Mi, "-")
	m.RegisterOperator(oidOpInt4UM, "-")
	m.RegisterOperator(oidOpTextCat, "||")

	m.RegisterFunction(oidFnLower, "lower")
	m.RegisterFunction(oidFnUpper, "upper")
	m.RegisterFunction(oidFnInt4Abs, "abs")
	m.RegisterFunction(oidFnTextCat, "textcat")
	m.RegisterFunction(oidFnLength, "length")

	return m
}

// OutInt renders integer datums in decimal, matching int4out/int8out.
func OutInt(d ir.Datum) string {
	return d.String()
}

// OutText renders string datums verbatim, matching textout.
// No quoting: the formatter emits the raw textual form.
func OutText(d ir.Datum) string {
	return d.String()
}

// OutBool renders booleans as "t" / "f", matching boolout.
func OutBool(d ir.Datum) string {
	if b, ok := d.(ir.DatumBool); ok {
		if b {
			return "t"
		}
		return "f"
	}
	return d.String()
}
