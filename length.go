package schemarule

import (
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var errNotSized = validation.NewError("validation_not_sized", "must be a string, list, or map")

type exactLength struct {
	n int
}

// Validate checks the rune length of a string or the element count of a list or map.
func (r exactLength) Validate(value any) error {
	value, isNil := validation.Indirect(value)
	if isNil || validation.IsEmpty(value) {
		return nil
	}
	if !sized(value) {
		return errNotSized
	}
	if r.n < 1 {
		return errMustBeEmpty
	}
	return validation.RuneLength(r.n, r.n).Validate(plainString(value))
}

func (r exactLength) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	n := uint64(max(r.n, 0))
	if ref.Value.Type.Is(openapi3.TypeArray) {
		ref.Value.MinItems = n
		ref.Value.MaxItems = &n
		return nil
	}
	ref.Value.MinLength = n
	ref.Value.MaxLength = &n
	return nil
}
