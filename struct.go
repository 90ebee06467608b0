package schemarule

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Field creates a FieldRules binding a struct field pointer to its rules.
// A field bound with no rules is still walked when it holds a [Ruler] or a
// list of them.
func Field[T any](fieldPtr *T, rules ...Rule) *FieldRules {
	return &FieldRules{
		fieldPtr: fieldPtr,
		rules:    rules,
	}
}

var rulerType = reflect.TypeOf((*Ruler)(nil)).Elem()

// ValidateDocument validates every field rule declared by doc and returns the
// findings with paths set to the fields' JSON names. Nested documents and
// lists of documents are validated too, with dotted paths such as
// "owner.email" or "images.2". A doc that is not a [Ruler] yields no markers,
// unless only a pointer to it is one.
func ValidateDocument(doc any) Markers {
	r, ok := doc.(Ruler)
	if !ok {
		if doc != nil && reflect.PointerTo(reflect.TypeOf(doc)).Implements(rulerType) {
			return Markers{{Level: LevelError, Message: fmt.Sprintf("document must be a non-nil pointer, got %T", doc)}}
		}
		return nil
	}
	rv := reflect.ValueOf(doc)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return Markers{{Level: LevelError, Message: fmt.Sprintf("document must be a non-nil pointer, got %T", doc)}}
	}
	structVal := rv.Elem()
	if structVal.Kind() != reflect.Struct {
		return Markers{{Level: LevelError, Message: fmt.Sprintf("document must point to a struct, got %T", doc)}}
	}

	var out Markers
	for i, fr := range r.Rules() {
		if fr == nil {
			out = append(out, Marker{Level: LevelError, Message: fmt.Sprintf("rule for field index %d is nil", i)})
			continue
		}
		path, err := fieldPath(structVal, fr.fieldPtr)
		if err != nil {
			out = append(out, Marker{Level: LevelError, Message: fmt.Sprintf("rule for field index %d: %v", i, err)})
			continue
		}
		value := reflect.ValueOf(fr.fieldPtr).Elem()
		for _, rule := range fr.rules {
			v, ok := rule.(Validator)
			if !ok {
				out = append(out, Marker{Level: LevelError, Path: path, Message: fmt.Sprintf("rule %T cannot validate", rule)})
				continue
			}
			out = append(out, v.Validate(value.Interface()).WithPath(path)...)
		}
		out = append(out, validateNested(value).WithPath(path)...)
	}
	return out
}

// validateNested walks into a field holding a document, a pointer to one, or
// a slice or array of them.
func validateNested(v reflect.Value) Markers {
	switch v.Kind() {
	case reflect.Ptr:
		if v.IsNil() {
			return nil
		}
		if _, ok := v.Interface().(Ruler); ok {
			return ValidateDocument(v.Interface())
		}
	case reflect.Struct:
		if v.CanAddr() {
			if _, ok := v.Addr().Interface().(Ruler); ok {
				return ValidateDocument(v.Addr().Interface())
			}
		}
	case reflect.Slice, reflect.Array:
		var out Markers
		for i := range v.Len() {
			out = append(out, validateNested(v.Index(i)).WithPath(strconv.Itoa(i))...)
		}
		return out
	}
	return nil
}

// fieldPath resolves fieldPtr to the JSON name of the field it points at.
func fieldPath(structVal reflect.Value, fieldPtr any) (string, error) {
	fv := reflect.ValueOf(fieldPtr)
	if fv.Kind() != reflect.Ptr {
		return "", fmt.Errorf("target must be a pointer, got %s", fv.Kind())
	}
	sf := findStructField(structVal, fv)
	if sf == nil {
		return "", fmt.Errorf("target not found in struct %s", structVal.Type())
	}
	return fieldKey(*sf), nil
}

// findStructField returns the field of structVal whose address is fieldPtr,
// searching embedded structs too. Type is compared as well as address since
// a struct and its first field share one.
func findStructField(structVal reflect.Value, fieldPtr reflect.Value) *reflect.StructField {
	ptr := fieldPtr.Pointer()
	for i := range structVal.NumField() {
		fv := structVal.Field(i)
		sf := structVal.Type().Field(i)
		if fv.CanAddr() && fv.Addr().Pointer() == ptr && fv.Type() == fieldPtr.Elem().Type() {
			return &sf
		}
		if sf.Anonymous {
			inner := fv
			if inner.Kind() == reflect.Ptr {
				if inner.IsNil() {
					continue
				}
				inner = inner.Elem()
			}
			if inner.Kind() == reflect.Struct {
				if found := findStructField(inner, fieldPtr); found != nil {
					return found
				}
			}
		}
	}
	return nil
}

// fieldKey returns the json tag name if present, otherwise the Go field name.
func fieldKey(sf reflect.StructField) string {
	tag := strings.Split(sf.Tag.Get("json"), ",")[0]
	if tag != "" && tag != "-" {
		return tag
	}
	return sf.Name
}
