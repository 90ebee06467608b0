package transform

import (
	"reflect"
	"strings"
)

// StructTrimSpace runs [strings.TrimSpace] on every string in the struct
// pointed to by v, including strings in nested structs, pointers, and slices.
func StructTrimSpace(v any) {
	StructStringFunc(v, strings.TrimSpace)
}

// StructCollapseSpace trims every string and collapses inner runs of
// whitespace to a single space. Scraped listing text often carries
// line breaks and tabs between words.
func StructCollapseSpace(v any) {
	StructStringFunc(v, func(s string) string {
		return strings.Join(strings.Fields(s), " ")
	})
}

// StructStringFunc applies f to every string in the struct pointed to by v.
// Non-pointers are ignored since they cannot be modified.
func StructStringFunc(v any, f func(string) string) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return
	}
	apply(rv.Elem(), f)
}

// apply skips interface values: what they hold is not addressable.
func apply(v reflect.Value, f func(string) string) {
	switch v.Kind() {
	case reflect.String:
		if v.CanSet() {
			v.SetString(f(v.String()))
		}
	case reflect.Struct:
		for i := range v.NumField() {
			if v.Type().Field(i).IsExported() {
				apply(v.Field(i), f)
			}
		}
	case reflect.Pointer:
		if !v.IsNil() {
			apply(v.Elem(), f)
		}
	case reflect.Slice, reflect.Array:
		for i := range v.Len() {
			apply(v.Index(i), f)
		}
	case reflect.Map:
		if v.Type().Elem().Kind() != reflect.String {
			return
		}
		for _, key := range v.MapKeys() {
			v.SetMapIndex(key, reflect.ValueOf(f(v.MapIndex(key).String())).Convert(v.Type().Elem()))
		}
	}
}
