package schemarule

import (
	"slices"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// Builder is the [Rule] implementation returned by [New]. A Builder is never
// mutated: every chained call returns a new Builder, so a base rule can be
// shared between fields.
type Builder struct {
	constraints []constraint
	level       Level
	message     string
}

var (
	_ Rule      = (*Builder)(nil)
	_ Validator = (*Builder)(nil)
	_ Describer = (*Builder)(nil)
)

// New returns an empty rule. Failures are reported at [LevelError] until
// [Rule.Warning] is called.
func New() Rule {
	return &Builder{level: LevelError}
}

func (b *Builder) clone() *Builder {
	return &Builder{
		constraints: slices.Clone(b.constraints),
		level:       b.level,
		message:     b.message,
	}
}

func (b *Builder) with(c constraint) *Builder {
	nb := b.clone()
	nb.constraints = append(nb.constraints, c)
	return nb
}

// Required fails on empty values.
func (b *Builder) Required() Rule { return b.with(required) }

// Email fails on strings that are not email addresses.
func (b *Builder) Email() Rule { return b.with(email) }

// Min sets a lower bound: the value of a number, the rune length of a
// string, or the element count of a list or map.
func (b *Builder) Min(n float64) Rule { return b.with(bound{threshold: n, min: true}) }

// Max sets an upper bound, measured like [Builder.Min].
func (b *Builder) Max(n float64) Rule { return b.with(bound{threshold: n}) }

// Length requires an exact rune length or element count.
func (b *Builder) Length(n int) Rule { return b.with(exactLength{n: n}) }

// Positive fails on negative numbers.
func (b *Builder) Positive() Rule { return b.with(positive) }

// Integer fails on numbers with a fractional part.
func (b *Builder) Integer() Rule { return b.with(integer) }

// Precision limits the number of decimal places. A negative n counts as 0.
func (b *Builder) Precision(n int) Rule { return b.with(precision{places: n}) }

// Custom runs fn against the value. See [CustomFunc].
func (b *Builder) Custom(fn CustomFunc) Rule { return b.with(custom{fn: fn}) }

// Error reports failures at [LevelError]. A non-empty message replaces the
// message of every failing constraint.
func (b *Builder) Error(message string) Rule {
	nb := b.clone()
	nb.level = LevelError
	nb.message = message
	return nb
}

// Warning reports failures at [LevelWarning]. A non-empty message replaces
// the message of every failing constraint.
func (b *Builder) Warning(message string) Rule {
	nb := b.clone()
	nb.level = LevelWarning
	nb.message = message
	return nb
}

// Level returns the severity failures are reported at.
func (b *Builder) Level() Level { return b.level }

// Validate runs every constraint in the order it was added and returns one
// marker per failure. Markers carry no path; [ValidateDocument] sets it.
func (b *Builder) Validate(value any) Markers {
	var out Markers
	for _, c := range b.constraints {
		err := c.Validate(value)
		if err == nil {
			continue
		}
		msg := err.Error()
		if b.message != "" {
			msg = b.message
		}
		out = append(out, Marker{Level: b.level, Message: msg})
	}
	return out
}

// Describe documents every constraint on the schema property ref. A rule
// below error level never rejects a document, so its Required does not mark
// the property required.
func (b *Builder) Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
	for _, c := range b.constraints {
		if _, ok := c.(requiredRule); ok && b.level != LevelError {
			continue
		}
		if err := c.Describe(name, schema, ref); err != nil {
			return err
		}
	}
	if b.message != "" {
		appendDescription(ref, string(b.level)+": "+b.message)
	}
	return nil
}

func appendDescription(ref *openapi3.SchemaRef, desc string) {
	if ref.Value.Description != "" && !strings.HasSuffix(ref.Value.Description, " ") {
		ref.Value.Description += " "
	}
	ref.Value.Description += desc
}
