package schemarule

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
)

// rulesForType returns a new *t and its rules if *t implements Ruler.
func rulesForType(t reflect.Type) (reflect.Value, []*FieldRules) {
	inst := reflect.New(t)
	if r, ok := inst.Interface().(Ruler); ok {
		return inst.Elem(), r.Rules()
	}
	return reflect.Value{}, nil
}

// removeSkippedFields deletes schema properties for fields tagged with docs:"skip".
// Recurses into embedded (anonymous) struct fields.
func removeSkippedFields(t reflect.Type, schema *openapi3.Schema) {
	for i := range t.NumField() {
		sf := t.Field(i)
		if sf.Anonymous {
			inner := sf.Type
			if inner.Kind() == reflect.Ptr {
				inner = inner.Elem()
			}
			if inner.Kind() == reflect.Struct {
				removeSkippedFields(inner, schema)
			}
			continue
		}
		if strings.Split(sf.Tag.Get("docs"), ",")[0] != "skip" {
			continue
		}
		delete(schema.Properties, fieldKey(sf))
	}
}

// mapFieldsToTags resolves each FieldRules' fieldPtr to its JSON name.
func mapFieldsToTags(fields []*FieldRules, structVal reflect.Value) error {
	for i, fr := range fields {
		if fr == nil {
			return fmt.Errorf("rule for field index %d is nil", i)
		}
		tag, err := fieldPath(structVal, fr.fieldPtr)
		if err != nil {
			return fmt.Errorf("rule for field index %d: %w", i, err)
		}
		fields[i].tag = tag
	}
	return nil
}

// applyRulesToSchema calls Describe on each rule for matching schema properties.
func applyRulesToSchema(fields []*FieldRules, schema *openapi3.Schema) error {
	for k, propRef := range schema.Properties {
		for _, f := range fields {
			if f.tag != k {
				continue
			}
			for _, rule := range f.rules {
				d, ok := rule.(Describer)
				if !ok {
					continue
				}
				if err := d.Describe(k, schema, propRef); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// schemaDoc returns a SchemaCustomizer that applies field rules to the
// schemas of types implementing Ruler.
func schemaDoc() openapi3gen.SchemaCustomizerFn {
	return func(_ string, t reflect.Type, _ reflect.StructTag, schema *openapi3.Schema) error {
		if t.Kind() != reflect.Struct {
			return nil
		}
		structVal, fields := rulesForType(t)
		if !structVal.IsValid() {
			return nil
		}

		removeSkippedFields(t, schema)

		if err := mapFieldsToTags(fields, structVal); err != nil {
			return err
		}
		return applyRulesToSchema(fields, schema)
	}
}

// NewSchemaRefForValue generates an OpenAPI schema for the given value,
// documenting the rules of every type that implements [Ruler].
func NewSchemaRefForValue(value any) (*openapi3.SchemaRef, error) {
	g := openapi3gen.NewGenerator(openapi3gen.SchemaCustomizer(schemaDoc()))
	return g.NewSchemaRefForValue(value, nil)
}
