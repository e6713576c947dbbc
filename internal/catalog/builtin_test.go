package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashenBlade/pgexprfmt/internal/ir"
)

func TestBuiltin_WellKnownOIDs(t *testing.T) {
	m := Builtin()

	name, ok := m.OperatorName(96)
	require.True(t, ok)
	assert.Equal(t, "=", name)

	name, ok = m.OperatorName(551)
	require.True(t, ok)
	assert.Equal(t, "+", name)

	name, ok = m.FunctionName(1317)
	require.True(t, ok)
	assert.Equal(t, "length", name)

	_, ok = m.TypeOutput(23)
	assert.True(t, ok)
	_, ok = m.TypeOutput(25)
	assert.True(t, ok)
}

func TestOutBool_PostgresForm(t *testing.T) {
	assert.Equal(t, "t", OutBool(ir.DatumBool(true)))
	assert.Equal(t, "f", OutBool(ir.DatumBool(false)))

	// Mismatched datum falls back to the default form.
	assert.Equal(t, "1", OutBool(ir.DatumInt(1)))
}

func TestOutInt_Decimal(t *testing.T) {
	assert.Equal(t, "-42", OutInt(ir.DatumInt(-42)))
}

func TestOutText_Verbatim(t *testing.T) {
	assert.Equal(t, `a "quoted" 'string'`, OutText(ir.DatumString(`a "quoted" 'string'`)))
}
