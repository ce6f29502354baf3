package resume

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/resume.schema.json
var schemaJSON string

// FieldError is a single schema violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// SchemaError lists every violation found in a resume document.
type SchemaError struct {
	Errors []FieldError `json:"errors"`
}

func (e *SchemaError) Error() string {
	if e == nil || len(e.Errors) == 0 {
		return "resume: schema validation failed"
	}
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "resume: schema validation failed: " + strings.Join(parts, "; ")
}

// Unwrap lets callers match schema failures with errors.Is(err, ErrInvalidRecord).
func (e *SchemaError) Unwrap() error { return ErrInvalidRecord }

// SchemaJSON returns the JSON Schema that resume documents must satisfy.
func SchemaJSON() string {
	return schemaJSON
}

func validateSchema(doc any) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schemaJSON),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("resume: load schema: %w", err)
	}
	if result.Valid() {
		return nil
	}

	schemaErr := &SchemaError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		schemaErr.Errors = append(schemaErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return schemaErr
}
