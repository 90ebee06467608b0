package schemarule

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	errNotNumber   = validation.NewError("validation_not_number", "must be a number")
	errMustBeEmpty = validation.NewError("validation_length_empty_required", "the value must be empty")
)

// bound is the constraint behind Min and Max.
type bound struct {
	threshold float64
	min       bool
}

// Validate checks numbers by value and strings, lists, and maps by size.
// Unlike ozzo's threshold rules, a zero number is compared, not skipped.
func (r bound) Validate(value any) error {
	value, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}
	if sized(value) {
		if validation.IsEmpty(value) {
			return nil
		}
		if r.min {
			lo := int(math.Ceil(r.threshold))
			if lo <= 0 {
				return nil
			}
			return validation.RuneLength(lo, 0).Validate(plainString(value))
		}
		return maxLength(int(math.Floor(r.threshold))).Validate(plainString(value))
	}

	f, err := toFloat(value)
	if err != nil {
		return err
	}
	params := map[string]any{"threshold": r.threshold}
	switch {
	case r.min && f < r.threshold:
		return validation.ErrMinGreaterEqualThanRequired.SetParams(params)
	case !r.min && f > r.threshold:
		return validation.ErrMaxLessEqualThanRequired.SetParams(params)
	}
	return nil
}

// maxLength returns a length rule with an upper bound of hi. ozzo treats a
// zero maximum as unbounded, so hi < 1 rejects every non-empty value.
func maxLength(hi int) validation.Rule {
	if hi < 1 {
		return validation.By(func(any) error { return errMustBeEmpty })
	}
	return validation.RuneLength(0, hi)
}

func (r bound) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	switch {
	case ref.Value.Type.Is(openapi3.TypeString):
		if r.min {
			ref.Value.MinLength = uint64(max(math.Ceil(r.threshold), 0))
		} else {
			n := uint64(max(math.Floor(r.threshold), 0))
			ref.Value.MaxLength = &n
		}
	case ref.Value.Type.Is(openapi3.TypeArray):
		if r.min {
			ref.Value.MinItems = uint64(max(math.Ceil(r.threshold), 0))
		} else {
			n := uint64(max(math.Floor(r.threshold), 0))
			ref.Value.MaxItems = &n
		}
	default:
		f := r.threshold
		if r.min {
			ref.Value.Min = &f
		} else {
			ref.Value.Max = &f
		}
	}
	return nil
}

// plainString converts a value of a named string type to string, since
// ozzo's RuneLength counts runes only for plain strings.
func plainString(v any) any {
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.String {
		return rv.String()
	}
	return v
}

// sized reports whether v is measured by length rather than by value.
func sized(v any) bool {
	if _, ok := v.(json.Number); ok {
		return false
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return true
	}
	return false
}

var floatType = reflect.TypeOf(float64(0))

// toFloat converts any Go number or json.Number to float64.
func toFloat(v any) (float64, error) {
	if n, ok := v.(json.Number); ok {
		f, err := n.Float64()
		if err != nil {
			return 0, errNotNumber
		}
		return f, nil
	}
	rv := reflect.Indirect(reflect.ValueOf(v))
	if !rv.IsValid() {
		return 0, errNotNumber
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return rv.Convert(floatType).Float(), nil
	}
	return 0, fmt.Errorf("%w, got %T", errNotNumber, v)
}
