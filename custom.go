package schemarule

import (
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var errInvalid = validation.NewError("validation_invalid", "invalid value")

type custom struct {
	fn CustomFunc
}

// Validate runs fn on every value, including nil and empty ones.
// A panic in fn is reported as a failure.
func (r custom) Validate(value any) (err error) {
	if r.fn == nil {
		return nil
	}
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("custom validation failed: %v", p)
		}
	}()

	switch v := r.fn(value).(type) {
	case Valid:
		if !v {
			return errInvalid
		}
	case Message:
		if v == "" {
			return errInvalid
		}
		return errors.New(string(v))
	}
	return nil
}

func (r custom) Describe(_ string, _ *openapi3.Schema, _ *openapi3.SchemaRef) error {
	return nil
}
