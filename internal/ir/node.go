package ir

import "fmt"

// Node kinds recognized by Decode.
const (
	KindVar   = "var"
	KindConst = "const"
	KindOp    = "op"
	KindFunc  = "func"
)

// Node is the serialized form of an expression tree node, shared by the
// YAML fixture format and the JSON CLI output.
//
// Kind selects the node type; the remaining fields are per-kind. Kinds
// outside the supported set decode to Unknown rather than failing, so
// fixtures captured from newer servers still load and render (the
// formatter degrades them to a placeholder).
type Node struct {
	Kind  string `json:"kind" yaml:"kind"`
	VarNo int    `json:"varno,omitempty" yaml:"varno,omitempty"`
	AttNo int    `json:"attno,omitempty" yaml:"attno,omitempty"`
	Null  bool   `json:"null,omitempty" yaml:"null,omitempty"`
	Type  uint32 `json:"type,omitempty" yaml:"type,omitempty"`
	Value any    `json:"value,omitempty" yaml:"value,omitempty"`
	Op    uint32 `json:"op,omitempty" yaml:"op,omitempty"`
	Func  uint32 `json:"func,omitempty" yaml:"func,omitempty"`
	Args  []Node `json:"args,omitempty" yaml:"args,omitempty"`
}

// Decode converts a wire node into the corresponding Expr.
//
// Structural errors (bad operand counts, float constant values) fail the
// decode. Unrecognized kinds do NOT fail: they decode to Unknown and are
// rendered as a placeholder at format time.
func (n Node) Decode() (Expr, error) {
	switch n.Kind {
	case KindVar:
		return Var{VarNo: n.VarNo, AttNo: n.AttNo}, nil

	case KindConst:
		if n.Null {
			return Const{IsNull: true, Type: TypeID(n.Type)}, nil
		}
		d, err := ToDatum(n.Value)
		if err != nil {
			return nil, fmt.Errorf("const value: %w", err)
		}
		return Const{Type: TypeID(n.Type), Value: d}, nil

	case KindOp:
		if len(n.Args) < 1 || len(n.Args) > 2 {
			return nil, fmt.Errorf("op node must have 1 or 2 args, got %d", len(n.Args))
		}
		args, err := decodeArgs(n.Args)
		if err != nil {
			return nil, err
		}
		return OpExpr{Op: OperatorID(n.Op), Args: args}, nil

	case KindFunc:
		args, err := decodeArgs(n.Args)
		if err != nil {
			return nil, err
		}
		return FuncExpr{Func: FunctionID(n.Func), Args: args}, nil

	default:
		return Unknown{Tag: n.Kind}, nil
	}
}

func decodeArgs(nodes []Node) ([]Expr, error) {
	args := make([]Expr, len(nodes))
	for i, arg := range nodes {
		expr, err := arg.Decode()
		if err != nil {
			return nil, fmt.Errorf("args[%d]: %w", i, err)
		}
		args[i] = expr
	}
	return args, nil
}
