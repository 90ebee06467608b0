package schemarule

import "reflect"

// Normalizer is implemented by documents that clean themselves up after
// decoding, e.g. trimming scraped text. [DecodeAndValidate] calls Normalize
// on the document first, then on nested documents depth-first.
type Normalizer interface {
	Normalize()
}

func normalizeRecursive(a any) {
	if a == nil {
		return
	}
	if n, ok := a.(Normalizer); ok {
		n.Normalize()
	}
	rv := reflect.ValueOf(a)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return
	}
	walkNormalize(rv.Elem())
}

// walkNormalize visits struct fields and slice elements below v.
func walkNormalize(v reflect.Value) {
	switch v.Kind() {
	case reflect.Struct:
		for i := range v.NumField() {
			f := v.Field(i)
			if f.Kind() == reflect.Struct && f.CanAddr() && f.CanInterface() {
				normalizeRecursive(f.Addr().Interface())
				continue
			}
			walkNormalize(f)
		}
	case reflect.Ptr:
		if !v.IsNil() && v.CanInterface() && v.Elem().Kind() == reflect.Struct {
			normalizeRecursive(v.Interface())
		}
	case reflect.Slice, reflect.Array:
		for i := range v.Len() {
			e := v.Index(i)
			if e.Kind() == reflect.Struct && e.CanAddr() && e.CanInterface() {
				normalizeRecursive(e.Addr().Interface())
				continue
			}
			walkNormalize(e)
		}
	}
}
