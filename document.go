package schemarule

import (
	"github.com/getkin/kin-openapi/openapi3"
)

type (
	// constraint is one check in a [Builder] chain. It validates a value and
	// documents itself on an OpenAPI schema property.
	constraint interface {
		Validate(value any) error
		Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error
	}

	// Validator is implemented by rules that can run against a value.
	// [Builder] implements it; a [Rule] that does not cannot be used with
	// [ValidateDocument].
	Validator interface {
		Validate(value any) Markers
	}

	// Describer is implemented by rules that document themselves on an
	// OpenAPI schema property.
	Describer interface {
		Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error
	}

	// FieldRules binds a struct field pointer to its validation rules.
	FieldRules struct {
		fieldPtr any
		tag      string
		rules    []Rule
	}

	// Ruler is implemented by document types that declare rules for their
	// fields.
	//
	//	func (c *Car) Rules() []*FieldRules {
	//	    return []*FieldRules{
	//	        Field(&c.Name, New().Required()),
	//	    }
	//	}
	Ruler interface {
		Rules() []*FieldRules
	}
)
