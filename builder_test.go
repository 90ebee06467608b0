package schemarule

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type plate string

func validate(r Rule, value any) Markers {
	return r.(*Builder).Validate(value)
}

func ptr[T any](v T) *T { return &v }

func TestConstraints(t *testing.T) {
	tests := []struct {
		name        string
		rule        Rule
		value       any
		expectError bool
	}{
		{name: "required empty string", rule: New().Required(), value: "", expectError: true},
		{name: "required nil", rule: New().Required(), value: nil, expectError: true},
		{name: "required empty list", rule: New().Required(), value: []string{}, expectError: true},
		{name: "required set", rule: New().Required(), value: "x"},

		{name: "email valid", rule: New().Email(), value: "myynti@kroiauto.fi"},
		{name: "email invalid", rule: New().Email(), value: "not an email", expectError: true},
		{name: "email empty skipped", rule: New().Email(), value: ""},
		{name: "email non-string", rule: New().Email(), value: 5, expectError: true},

		{name: "min string too short", rule: New().Min(4), value: "abc", expectError: true},
		{name: "min string runes", rule: New().Min(4), value: "Sähkö"},
		{name: "min number below", rule: New().Min(4), value: 3, expectError: true},
		{name: "min number equal", rule: New().Min(4), value: 4.0},
		{name: "min list short", rule: New().Min(2), value: []int{1}, expectError: true},
		{name: "min map", rule: New().Min(1), value: map[string]int{"a": 1}},
		{name: "min json number", rule: New().Min(4), value: json.Number("5")},
		{name: "min json number below", rule: New().Min(4), value: json.Number("3.5"), expectError: true},
		{name: "min zero number", rule: New().Min(1), value: 0, expectError: true},
		{name: "min nil skipped", rule: New().Min(4), value: nil},
		{name: "min empty string skipped", rule: New().Min(4), value: ""},
		{name: "min bool", rule: New().Min(1), value: true, expectError: true},

		{name: "max string too long", rule: New().Max(2), value: "abc", expectError: true},
		{name: "max number above", rule: New().Max(2), value: 3, expectError: true},
		{name: "max number equal", rule: New().Max(5.5), value: 5.5},
		{name: "max list", rule: New().Max(2), value: []int{1, 2, 3}, expectError: true},
		{name: "max zero string", rule: New().Max(0), value: "a", expectError: true},
		{name: "max named string runes", rule: New().Max(4), value: plate("Sähk")},
		{name: "max named string too long", rule: New().Max(3), value: plate("Sähk"), expectError: true},
		{name: "min named string runes", rule: New().Min(5), value: plate("Sähkö")},

		{name: "length exact", rule: New().Length(4), value: "2019"},
		{name: "length short", rule: New().Length(4), value: "201", expectError: true},
		{name: "length list", rule: New().Length(2), value: []string{"a"}, expectError: true},
		{name: "length number", rule: New().Length(2), value: 12, expectError: true},
		{name: "length named string runes", rule: New().Length(4), value: plate("Sähk")},
		{name: "length named string pointer", rule: New().Length(5), value: ptr(plate("Sähkö"))},

		{name: "positive negative", rule: New().Positive(), value: -1, expectError: true},
		{name: "positive zero", rule: New().Positive(), value: 0},
		{name: "positive float", rule: New().Positive(), value: 1.5},
		{name: "positive string", rule: New().Positive(), value: "x", expectError: true},
		{name: "positive nil", rule: New().Positive(), value: nil},
		{name: "positive empty string skipped", rule: New().Positive(), value: ""},
		{name: "positive empty list skipped", rule: New().Positive(), value: []float64{}},

		{name: "integer fraction", rule: New().Integer(), value: 1.5, expectError: true},
		{name: "integer whole float", rule: New().Integer(), value: 2.0},
		{name: "integer int", rule: New().Integer(), value: 3},
		{name: "integer json number", rule: New().Integer(), value: json.Number("4.0")},
		{name: "integer empty string skipped", rule: New().Integer(), value: ""},
		{name: "integer zero checked", rule: New().Integer(), value: 0.0},

		{name: "precision within", rule: New().Precision(2), value: 1.23},
		{name: "precision over", rule: New().Precision(2), value: 1.234, expectError: true},
		{name: "precision json literal", rule: New().Precision(2), value: json.Number("1.230"), expectError: true},
		{name: "precision float32", rule: New().Precision(1), value: float32(1.1)},
		{name: "precision zero places", rule: New().Precision(0), value: 10.0},
		{name: "precision empty string skipped", rule: New().Precision(2), value: ""},
		{name: "precision negative places whole", rule: New().Precision(-1), value: 12},
		{name: "precision negative places fraction", rule: New().Precision(-1), value: 1.5, expectError: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms := validate(tt.rule, tt.value)
			if tt.expectError {
				require.NotEmpty(t, ms)
				assert.Equal(t, LevelError, ms[0].Level)
			} else {
				require.Empty(t, ms)
			}
		})
	}
}

func TestPrecisionNegativePlaces(t *testing.T) {
	ms := validate(New().Precision(-2), 0.5)
	require.Len(t, ms, 1)
	assert.Equal(t, "must have no more than 0 decimals", ms[0].Message)
}

func TestCustom(t *testing.T) {
	tests := []struct {
		name    string
		fn      CustomFunc
		message string
	}{
		{name: "valid", fn: func(any) Verdict { return Valid(true) }},
		{name: "nil verdict", fn: func(any) Verdict { return nil }},
		{name: "invalid", fn: func(any) Verdict { return Valid(false) }, message: "invalid value"},
		{name: "message", fn: func(any) Verdict { return Message("too old") }, message: "too old"},
		{name: "empty message", fn: func(any) Verdict { return Message("") }, message: "invalid value"},
		{name: "panic", fn: func(any) Verdict { panic("boom") }, message: "custom validation failed: boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms := validate(New().Custom(tt.fn), "value")
			if tt.message == "" {
				require.Empty(t, ms)
				return
			}
			require.Len(t, ms, 1)
			assert.Equal(t, tt.message, ms[0].Message)
		})
	}
}

func TestCustomSeesEmptyValues(t *testing.T) {
	var seen []any
	r := New().Custom(func(v any) Verdict {
		seen = append(seen, v)
		return Valid(true)
	})
	validate(r, nil)
	validate(r, "")
	assert.Equal(t, []any{nil, ""}, seen)
}

func TestCustomNilFunc(t *testing.T) {
	assert.Empty(t, validate(New().Custom(nil), "x"))
}

func TestErrorAndWarning(t *testing.T) {
	t.Run("warning level", func(t *testing.T) {
		ms := validate(New().Min(4).Warning(""), "abc")
		require.Len(t, ms, 1)
		assert.Equal(t, LevelWarning, ms[0].Level)
		assert.Contains(t, ms[0].Message, "no less than 4")
		assert.NoError(t, ms.Err())
	})

	t.Run("warning message replaces all", func(t *testing.T) {
		ms := validate(New().Min(4).Email().Warning("check the contact"), "abc")
		require.Len(t, ms, 2)
		for _, m := range ms {
			assert.Equal(t, "check the contact", m.Message)
		}
	})

	t.Run("error restores level", func(t *testing.T) {
		ms := validate(New().Required().Warning("w").Error("name is required"), "")
		require.Len(t, ms, 1)
		assert.Equal(t, LevelError, ms[0].Level)
		assert.Equal(t, "name is required", ms[0].Message)
	})

	t.Run("order independent", func(t *testing.T) {
		a := validate(New().Warning("w").Required(), "")
		b := validate(New().Required().Warning("w"), "")
		assert.Equal(t, a, b)
	})
}

func TestBuilderImmutable(t *testing.T) {
	base := New().Required()
	short := base.Max(2)
	long := base.Min(5)
	warn := base.Warning("soft")

	assert.Empty(t, validate(base, "abc"))
	assert.NotEmpty(t, validate(short, "abc"))
	assert.NotEmpty(t, validate(long, "abc"))
	assert.Empty(t, validate(short, "ab"))

	assert.Equal(t, LevelError, base.(*Builder).Level())
	assert.Equal(t, LevelWarning, warn.(*Builder).Level())
}

func TestBuilderReportsEveryFailure(t *testing.T) {
	ms := validate(New().Min(10).Integer().Precision(0), 2.5)
	require.Len(t, ms, 3)
	for i, m := range ms {
		assert.NotEmpty(t, m.Message, fmt.Sprint(i))
	}
}
