package catalog

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"
)

// Validation error codes (E200-E299)
const (
	ErrParse        = "E200" // definition is not valid YAML
	ErrSchema       = "E201" // definition violates the catalog schema
	ErrDuplicateOID = "E202" // duplicate OID within a section
)

// catalogSchema is the CUE schema every catalog definition must satisfy.
// #Catalog is closed: unknown fields are rejected, not ignored.
const catalogSchema = `
#Catalog: {
	operators?: [...#Operator]
	functions?: [...#Function]
	types?: [...#Type]
}

#Operator: {
	oid:  int & >0
	name: string & !=""
}

#Function: {
	oid:  int & >0
	name: string & !=""
}

#Type: {
	oid:    int & >0
	name:   string & !=""
	output: "int" | "text" | "bool"
}
`

// ValidationError represents a catalog definition validation error.
type ValidationError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
	Code    string `json:"code"`
	Line    int    `json:"line,omitempty"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("[%s] line %d: %s", e.Code, e.Line, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks a YAML catalog definition against the CUE schema and
// the Go-side consistency rules. Returns all errors found (does not
// fail-fast); an empty slice means the definition is valid.
func Validate(data []byte) []ValidationError {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return []ValidationError{{
			Message: fmt.Sprintf("invalid YAML: %v", err),
			Code:    ErrParse,
		}}
	}
	if doc == nil {
		// Empty file is a valid, empty catalog.
		return nil
	}

	var errs []ValidationError
	errs = append(errs, validateSchema(doc)...)

	// Consistency checks run on the decoded form. Decode errors here
	// would already have surfaced as schema violations above.
	var def Definition
	if err := yaml.Unmarshal(data, &def); err == nil {
		errs = append(errs, validateOIDs(&def)...)
	}

	return errs
}

// validateSchema unifies the definition with the CUE catalog schema.
func validateSchema(doc any) []ValidationError {
	ctx := cuecontext.New()

	schema := ctx.CompileString(catalogSchema)
	if err := schema.Err(); err != nil {
		// The schema is a compile-time constant; failing to compile it
		// is a programming error, reported rather than panicked.
		return []ValidationError{{
			Message: fmt.Sprintf("internal schema error: %v", err),
			Code:    ErrSchema,
		}}
	}

	unified := schema.LookupPath(cue.ParsePath("#Catalog")).Unify(ctx.Encode(doc))
	err := unified.Validate(cue.Concrete(true))
	if err == nil {
		return nil
	}

	var errs []ValidationError
	for _, cueErr := range cueerrors.Errors(err) {
		errs = append(errs, ValidationError{
			Field:   cueErrorPath(cueErr),
			Message: cueErr.Error(),
			Code:    ErrSchema,
			Line:    cueErr.Position().Line(),
		})
	}
	return errs
}

// cueErrorPath renders the CUE error path as "a.b[2].c" style text.
func cueErrorPath(err cueerrors.Error) string {
	path := ""
	for _, p := range err.Path() {
		if path != "" {
			path += "."
		}
		path += p
	}
	return path
}

// validateOIDs reports duplicate OIDs within each section.
func validateOIDs(def *Definition) []ValidationError {
	var errs []ValidationError

	seen := make(map[uint32]bool)
	for i, op := range def.Operators {
		if seen[op.OID] {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("operators[%d].oid", i),
				Message: fmt.Sprintf("duplicate operator oid %d", op.OID),
				Code:    ErrDuplicateOID,
			})
		}
		seen[op.OID] = true
	}

	seen = make(map[uint32]bool)
	for i, fn := range def.Functions {
		if seen[fn.OID] {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("functions[%d].oid", i),
				Message: fmt.Sprintf("duplicate function oid %d", fn.OID),
				Code:    ErrDuplicateOID,
			})
		}
		seen[fn.OID] = true
	}

	seen = make(map[uint32]bool)
	for i, typ := range def.Types {
		if seen[typ.OID] {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("types[%d].oid", i),
				Message: fmt.Sprintf("duplicate type oid %d", typ.OID),
				Code:    ErrDuplicateOID,
			})
		}
		seen[typ.OID] = true
	}

	return errs
}
