package format

import (
	"strings"

	"github.com/ashenBlade/pgexprfmt/internal/catalog"
	"github.com/ashenBlade/pgexprfmt/internal/ir"
)

// Placeholders substituted for unresolvable identifiers and
// unsupported node kinds.
const (
	invalidOperator = "(invalid operator)"
	invalidFunction = "(invalid function)"
	unknownExpr     = "unknown expr"
)

// Formatter renders expression trees against a catalog.
//
// Thread-safety: a Formatter holds no mutable state and never mutates
// its inputs, so concurrent Format calls are safe as long as the
// catalog's lookups are.
type Formatter struct {
	catalog catalog.Resolver
}

// New creates a Formatter resolving names through c.
func New(c catalog.Resolver) *Formatter {
	return &Formatter{catalog: c}
}

// Format renders an expression tree to text.
//
// A nil expr returns ok=false and no text. Otherwise ok is true and the
// returned string is the rendering, which may be truncated: a column
// reference outside the range table stops formatting and yields the
// text accumulated up to that point, silently. Identifier lookups that
// fail render as fixed placeholders instead of stopping.
//
// Recursion depth equals the tree depth; there is no artificial limit.
func (f *Formatter) Format(expr ir.Expr, rt ir.RangeTable) (string, bool) {
	if expr == nil {
		return "", false
	}

	var b strings.Builder
	f.walk(&b, expr, rt)
	return b.String(), true
}

// walk renders one node into b. A false return means an out-of-range
// column reference was hit: callers must stop emitting immediately so
// the truncation propagates to the whole call.
func (f *Formatter) walk(b *strings.Builder, expr ir.Expr, rt ir.RangeTable) bool {
	switch e := expr.(type) {
	case ir.Var:
		return f.walkVar(b, e, rt)
	case *ir.Var:
		return f.walkVar(b, *e, rt)
	case ir.Const:
		return f.walkConst(b, e)
	case *ir.Const:
		return f.walkConst(b, *e)
	case ir.OpExpr:
		return f.walkOp(b, e, rt)
	case *ir.OpExpr:
		return f.walkOp(b, *e, rt)
	case ir.FuncExpr:
		return f.walkFunc(b, e, rt)
	case *ir.FuncExpr:
		return f.walkFunc(b, *e, rt)
	default:
		b.WriteString(unknownExpr)
		return true
	}
}

func (f *Formatter) walkVar(b *strings.Builder, v ir.Var, rt ir.RangeTable) bool {
	var relname, attname string

	switch v.VarNo {
	case ir.InnerVar:
		relname, attname = "INNER", "?"
	case ir.OuterVar:
		relname, attname = "OUTER", "?"
	case ir.IndexVar:
		relname, attname = "INDEX", "?"
	default:
		rte, ok := rt.Fetch(v.VarNo)
		if !ok {
			return false
		}
		relname = rte.Alias
		attname = rte.AttributeName(v.AttNo)
	}

	b.WriteString(relname)
	b.WriteByte('.')
	b.WriteString(attname)
	return true
}

func (f *Formatter) walkConst(b *strings.Builder, c ir.Const) bool {
	if c.IsNull {
		b.WriteString("NULL")
		return true
	}

	if out, ok := f.catalog.TypeOutput(c.Type); ok {
		b.WriteString(out(c.Value))
		return true
	}

	// No registered conversion: fall back to the datum's default form.
	b.WriteString(c.Value.String())
	return true
}

func (f *Formatter) walkOp(b *strings.Builder, e ir.OpExpr, rt ir.RangeTable) bool {
	name, ok := f.catalog.OperatorName(e.Op)
	if !ok {
		name = invalidOperator
	}

	if len(e.Args) > 1 {
		if !f.walk(b, e.Args[0], rt) {
			return false
		}
		b.WriteByte(' ')
		b.WriteString(name)
		b.WriteByte(' ')
		return f.walk(b, e.Args[1], rt)
	}

	b.WriteString(name)
	b.WriteByte(' ')
	if len(e.Args) == 0 {
		return true
	}
	return f.walk(b, e.Args[0], rt)
}

func (f *Formatter) walkFunc(b *strings.Builder, e ir.FuncExpr, rt ir.RangeTable) bool {
	name, ok := f.catalog.FunctionName(e.Func)
	if !ok {
		name = invalidFunction
	}

	b.WriteString(name)
	b.WriteByte('(')
	for i, arg := range e.Args {
		if i > 0 {
			b.WriteByte(',')
		}
		if !f.walk(b, arg, rt) {
			return false
		}
	}
	b.WriteByte(')')
	return true
}
