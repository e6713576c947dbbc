package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDefinition = `
operators:
  - oid: 96
    name: "="
  - oid: 551
    name: "+"
functions:
  - oid: 870
    name: lower
types:
  - oid: 23
    name: int4
    output: int
  - oid: 25
    name: text
    output: text
`

func TestValidate_ValidDefinition(t *testing.T) {
	errs := Validate([]byte(validDefinition))
	assert.Empty(t, errs)
}

func TestValidate_EmptyFileIsValid(t *testing.T) {
	assert.Empty(t, Validate(nil))
	assert.Empty(t, Validate([]byte("")))
}

func TestValidate_InvalidYAML(t *testing.T) {
	errs := Validate([]byte("operators: [unclosed"))
	require.Len(t, errs, 1)
	assert.Equal(t, ErrParse, errs[0].Code)
}

func TestValidate_SchemaViolations(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{
			name: "unknown output kind",
			src: `
types:
  - oid: 23
    name: int4
    output: decimal
`,
		},
		{
			name: "non-positive oid",
			src: `
operators:
  - oid: 0
    name: "="
`,
		},
		{
			name: "empty name",
			src: `
functions:
  - oid: 870
    name: ""
`,
		},
		{
			name: "missing output field",
			src: `
types:
  - oid: 23
    name: int4
`,
		},
		{
			name: "unknown top-level section",
			src: `
casts:
  - oid: 1
`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := Validate([]byte(tc.src))
			require.NotEmpty(t, errs)
			for _, e := range errs {
				assert.Equal(t, ErrSchema, e.Code)
			}
		})
	}
}

func TestValidate_DuplicateOIDs(t *testing.T) {
	src := `
operators:
  - oid: 96
    name: "="
  - oid: 96
    name: "<"
`
	errs := Validate([]byte(src))
	require.Len(t, errs, 1)
	assert.Equal(t, ErrDuplicateOID, errs[0].Code)
	assert.Equal(t, "operators[1].oid", errs[0].Field)
}

func TestValidate_ReportsAllErrors(t *testing.T) {
	// One schema violation plus one duplicate: both must be reported.
	src := `
operators:
  - oid: 96
    name: "="
  - oid: 96
    name: "<"
types:
  - oid: 23
    name: int4
    output: decimal
`
	errs := Validate([]byte(src))
	codes := make(map[string]bool)
	for _, e := range errs {
		codes[e.Code] = true
	}
	assert.True(t, codes[ErrSchema], "expected a schema violation, got %v", errs)
	assert.True(t, codes[ErrDuplicateOID], "expected a duplicate oid error, got %v", errs)
}

func TestValidationError_Error(t *testing.T) {
	e := ValidationError{Field: "types[0].output", Message: "bad kind", Code: ErrSchema}
	assert.Contains(t, e.Error(), ErrSchema)
	assert.Contains(t, e.Error(), "types[0].output")

	withLine := ValidationError{Message: "bad", Code: ErrSchema, Line: 4}
	assert.Contains(t, withLine.Error(), "line 4")
}
