package catalog

import (
	"golang.org/x/text/unicode/norm"

	"github.com/ashenBlade/pgexprfmt/internal/ir"
)

// Memory is an in-memory Resolver populated by registration calls.
//
// Names are NFC normalized on registration so that lookups return one
// canonical spelling regardless of how the definition file encoded it.
//
// Thread-safety: Memory is safe for concurrent reads after registration
// is complete. Registration itself is not synchronized.
type Memory struct {
	operators map[ir.OperatorID]string
	functions map[ir.FunctionID]string
	types     map[ir.TypeID]OutputFunc
}

// NewMemory creates an empty Memory catalog.
func NewMemory() *Memory {
	return &Memory{
		operators: make(map[ir.OperatorID]string),
		functions: make(map[ir.FunctionID]string),
		types:     make(map[ir.TypeID]OutputFunc),
	}
}

// RegisterOperator registers an operator display name.
// Re-registering an OID overwrites the previous name.
func (m *Memory) RegisterOperator(id ir.OperatorID, name string) {
	m.operators[id] = norm.NFC.String(name)
}

// RegisterFunction registers a function display name.
// Re-registering an OID overwrites the previous name.
func (m *Memory) RegisterFunction(id ir.FunctionID, name string) {
	m.functions[id] = norm.NFC.String(name)
}

// RegisterType registers the output conversion for a type OID.
func (m *Memory) RegisterType(id ir.TypeID, out OutputFunc) {
	m.types[id] = out
}

// OperatorName implements Resolver.
func (m *Memory) OperatorName(id ir.OperatorID) (string, bool) {
	name, ok := m.operators[id]
	return name, ok
}

// FunctionName implements Resolver.
func (m *Memory) FunctionName(id ir.FunctionID) (string, bool) {
	name, ok := m.functions[id]
	return name, ok
}

// TypeOutput implements Resolver.
func (m *Memory) TypeOutput(id ir.TypeID) (OutputFunc, bool) {
	out, ok := m.types[id]
	return out, ok
}
