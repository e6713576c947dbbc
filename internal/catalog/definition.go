package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ashenBlade/pgexprfmt/internal/ir"
)

// Output conversion kinds allowed in catalog definitions.
// Each keys one of the registered conversions in builtin.go.
const (
	OutputInt  = "int"
	OutputText = "text"
	OutputBool = "bool"
)

// Definition is the portable catalog content: the operator, function,
// and type entries a fixture may reference. It is what YAML catalog
// files decode to and what SQLite snapshots store.
type Definition struct {
	Operators []OperatorDef `yaml:"operators,omitempty" json:"operators,omitempty"`
	Functions []FunctionDef `yaml:"functions,omitempty" json:"functions,omitempty"`
	Types     []TypeDef     `yaml:"types,omitempty" json:"types,omitempty"`
}

// OperatorDef maps an operator OID to its display name.
type OperatorDef struct {
	OID  uint32 `yaml:"oid" json:"oid"`
	Name string `yaml:"name" json:"name"`
}

// FunctionDef maps a function OID to its display name.
type FunctionDef struct {
	OID  uint32 `yaml:"oid" json:"oid"`
	Name string `yaml:"name" json:"name"`
}

// TypeDef maps a type OID to its name and output conversion kind.
type TypeDef struct {
	OID    uint32 `yaml:"oid" json:"oid"`
	Name   string `yaml:"name" json:"name"`
	Output string `yaml:"output" json:"output"`
}

// Build constructs a Memory resolver from the definition.
// Fails on output kinds outside the allowed set; schema validation
// normally rejects those earlier, but snapshots bypass the schema.
func (d *Definition) Build() (*Memory, error) {
	m := NewMemory()

	for _, op := range d.Operators {
		m.RegisterOperator(ir.OperatorID(op.OID), op.Name)
	}
	for _, fn := range d.Functions {
		m.RegisterFunction(ir.FunctionID(fn.OID), fn.Name)
	}
	for _, typ := range d.Types {
		out, err := outputFor(typ.Output)
		if err != nil {
			return nil, fmt.Errorf("type %q (oid %d): %w", typ.Name, typ.OID, err)
		}
		m.RegisterType(ir.TypeID(typ.OID), out)
	}

	return m, nil
}

func outputFor(kind string) (OutputFunc, error) {
	switch kind {
	case OutputInt:
		return OutInt, nil
	case OutputText:
		return OutText, nil
	case OutputBool:
		return OutBool, nil
	default:
		return nil, fmt.Errorf("unknown output kind %q", kind)
	}
}

// LoadFile reads, schema-validates, and decodes a YAML catalog
// definition.
func LoadFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse schema-validates and decodes a YAML catalog definition.
func Parse(data []byte) (*Definition, error) {
	if validationErrors := Validate(data); len(validationErrors) > 0 {
		errs := make([]error, len(validationErrors))
		for i, ve := range validationErrors {
			errs[i] = ve
		}
		return nil, fmt.Errorf("invalid catalog definition: %w", errors.Join(errs...))
	}

	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("decode catalog definition: %w", err)
	}
	return &def, nil
}
