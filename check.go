package schemarule

import (
	"reflect"
	"strings"
)

// MissingRules returns the names of exported struct fields that have no
// corresponding rule in the Ruler's Rules(). Fields of embedded structs are
// checked as if they belonged to the parent.
//
// Automatically excluded:
//   - json:"-"
//   - docs:"skip"
//   - validate:"-"  (field intentionally has no rules)
//
// Use in tests to catch forgotten fields:
//
//	assert.Empty(t, schemarule.MissingRules(&Car{}))
//	assert.Empty(t, schemarule.MissingRules(&Car{}, "internalNote"))
func MissingRules(doc any, exclude ...string) []string {
	r, ok := doc.(Ruler)
	if !ok {
		return nil
	}
	structVal := reflect.Indirect(reflect.ValueOf(doc))

	covered := map[string]bool{}
	for _, fr := range r.Rules() {
		if fr == nil {
			continue
		}
		fv := reflect.ValueOf(fr.fieldPtr)
		if fv.Kind() != reflect.Ptr {
			continue
		}
		if sf := findStructField(structVal, fv); sf != nil {
			covered[fieldKey(*sf)] = true
		}
	}

	// Accepts both Go field name and json tag name.
	excl := map[string]bool{}
	for _, e := range exclude {
		excl[e] = true
	}

	var missing []string
	collectUncovered(structVal.Type(), excl, covered, &missing)
	return missing
}

// collectUncovered walks the struct type recursively (into embedded structs)
// and appends any uncovered exported field names to missing.
func collectUncovered(t reflect.Type, excl, covered map[string]bool, missing *[]string) { //nolint:revive // many early-return branches inflate complexity
	for i := range t.NumField() {
		sf := t.Field(i)
		if sf.Anonymous {
			inner := sf.Type
			if inner.Kind() == reflect.Ptr {
				inner = inner.Elem()
			}
			if inner.Kind() == reflect.Struct {
				collectUncovered(inner, excl, covered, missing)
			}
			continue
		}
		if !sf.IsExported() {
			continue
		}
		jsonTag := strings.Split(sf.Tag.Get("json"), ",")[0]
		if jsonTag == "-" {
			continue
		}
		if strings.Split(sf.Tag.Get("docs"), ",")[0] == "skip" {
			continue
		}
		if sf.Tag.Get("validate") == "-" {
			continue
		}
		key := fieldKey(sf)
		if excl[key] || excl[sf.Name] {
			continue
		}
		if !covered[key] {
			*missing = append(*missing, key)
		}
	}
}
