package schemarule

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	errNotPositive = validation.NewError("validation_not_positive", "must be a positive number")
	errNotInteger  = validation.NewError("validation_not_integer", "must be an integer")
)

// number returns the numeric value of v, or ok=false for nil and for empty
// strings, lists, and maps. A zero number is returned with ok=true.
func number(v any) (f float64, ok bool, err error) {
	v, isNil := validation.Indirect(v)
	if isNil {
		return 0, false, nil
	}
	if n, isNum := v.(json.Number); isNum && n == "" {
		return 0, false, nil
	}
	if sized(v) && validation.IsEmpty(v) {
		return 0, false, nil
	}
	f, err = toFloat(v)
	return f, err == nil, err
}

type positiveRule struct{}

var positive = positiveRule{}

// Validate accepts zero, like Min(0).
func (positiveRule) Validate(value any) error {
	f, ok, err := number(value)
	if !ok {
		return err
	}
	if f < 0 {
		return errNotPositive
	}
	return nil
}

func (positiveRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if ref.Value.Min == nil || *ref.Value.Min < 0 {
		zero := 0.0
		ref.Value.Min = &zero
	}
	return nil
}

type integerRule struct{}

var integer = integerRule{}

func (integerRule) Validate(value any) error {
	f, ok, err := number(value)
	if !ok {
		return err
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return errNotInteger
	}
	return nil
}

func (integerRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Type = &openapi3.Types{openapi3.TypeInteger}
	return nil
}

type precision struct {
	places int
}

func (r precision) Validate(value any) error {
	f, ok, err := number(value)
	if !ok {
		return err
	}
	places := max(r.places, 0)
	if decimals(value, f) > places {
		return validation.NewError("validation_precision", fmt.Sprintf("must have no more than %d decimals", places))
	}
	return nil
}

func (r precision) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	appendDescription(ref, fmt.Sprintf("no more than %d decimals", max(r.places, 0)))
	return nil
}

// decimals counts decimal places. json.Number is counted from its literal so
// "1.10" has two places; other numbers use the shortest representation.
func decimals(v any, f float64) int {
	v, _ = validation.Indirect(v)
	s := strconv.FormatFloat(f, 'f', -1, 64)
	switch n := v.(type) {
	case json.Number:
		if !strings.ContainsAny(string(n), "eE") {
			s = string(n)
		}
	case float32:
		s = strconv.FormatFloat(float64(n), 'f', -1, 32)
	}
	_, frac, found := strings.Cut(s, ".")
	if !found {
		return 0
	}
	return len(frac)
}
