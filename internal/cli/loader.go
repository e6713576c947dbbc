package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ashenBlade/pgexprfmt/internal/ir"
)

// Fixture is an expression fixture file: one expression tree plus the
// range table it references. Fixtures are captured from a debugger
// session or written by hand for regression suites.
type Fixture struct {
	// Name identifies the fixture in suite output. Optional.
	Name string `yaml:"name,omitempty"`

	// RangeTable lists the relations column references resolve against,
	// in varno order (varno 1 is the first entry).
	RangeTable ir.RangeTable `yaml:"range_table,omitempty"`

	// Expr is the expression tree. A missing expr is legal and renders
	// as no output.
	Expr *ir.Node `yaml:"expr,omitempty"`
}

// LoadFixture reads and decodes a YAML fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}

	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode fixture %s: %w", path, err)
	}
	return &f, nil
}

// DecodeExpr converts the fixture's wire expression to an ir.Expr.
// Returns nil when the fixture carries no expression.
func (f *Fixture) DecodeExpr() (ir.Expr, error) {
	if f.Expr == nil {
		return nil, nil
	}
	expr, err := f.Expr.Decode()
	if err != nil {
		return nil, fmt.Errorf("decode expr: %w", err)
	}
	return expr, nil
}
