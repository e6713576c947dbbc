package ir

// OperatorID identifies an operator in the catalog (pg_operator OID).
type OperatorID uint32

// FunctionID identifies a function in the catalog (pg_proc OID).
type FunctionID uint32

// TypeID identifies a data type in the catalog (pg_type OID).
type TypeID uint32

// Special varno values denoting references into synthetic tuple slots
// rather than the range table. Values match PostgreSQL's primnodes.h.
const (
	InnerVar = 65000 // reference into the inner plan tuple
	OuterVar = 65001 // reference into the outer plan tuple
	IndexVar = 65002 // reference into an index tuple
)

// Expr represents a node in a planner expression tree.
//
// This is a sealed interface - only types in this package implement it.
// The marker method pattern prevents external implementations and enables
// exhaustive type switches in the formatter.
//
// Expr types:
//   - Var: column reference (range table or synthetic slot)
//   - Const: literal constant with a type OID
//   - OpExpr: operator application (unary or binary)
//   - FuncExpr: function call
//   - Unknown: any node kind outside the supported set
type Expr interface {
	exprNode() // Marker method - seals interface to this package
}

// Var is a column reference.
//
// VarNo is a 1-based index into the range table, or one of the special
// varno constants (InnerVar, OuterVar, IndexVar) for synthetic tuple
// slots. AttNo is the 1-based attribute number within the relation.
type Var struct {
	VarNo int `json:"varno" yaml:"varno"`
	AttNo int `json:"attno" yaml:"attno"`
}

func (Var) exprNode() {}

// Const is a literal constant.
//
// When IsNull is set, Value is ignored and Type is irrelevant for
// rendering. Otherwise Value holds the datum and Type selects the
// output conversion used to render it.
type Const struct {
	IsNull bool   `json:"null,omitempty" yaml:"null,omitempty"`
	Type   TypeID `json:"type,omitempty" yaml:"type,omitempty"`
	Value  Datum  `json:"value,omitempty" yaml:"value,omitempty"`
}

func (Const) exprNode() {}

// OpExpr is an operator application with one operand (prefix form) or
// two operands (infix form).
type OpExpr struct {
	Op   OperatorID `json:"op" yaml:"op"`
	Args []Expr     `json:"args" yaml:"args"`
}

func (OpExpr) exprNode() {}

// FuncExpr is a function call with zero or more arguments.
type FuncExpr struct {
	Func FunctionID `json:"func" yaml:"func"`
	Args []Expr     `json:"args" yaml:"args"`
}

func (FuncExpr) exprNode() {}

// Unknown is the catch-all for expression node kinds outside the
// supported set. Tag carries the original kind label when the node was
// decoded from a fixture, for diagnostics only - the formatter renders
// every Unknown the same way.
type Unknown struct {
	Tag string `json:"tag,omitempty" yaml:"tag,omitempty"`
}

func (Unknown) exprNode() {}
