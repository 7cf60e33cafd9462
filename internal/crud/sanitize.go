package crud

import (
	"reflect"
	"strings"
	"unicode"
)

// SanitizeString strips characters significant to HTML/script parsing and
// all control characters from user-supplied input. Runs on every string
// field of a draft before any create or update request leaves the engine.
func SanitizeString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '<' || r == '>':
		case unicode.IsControl(r):
		default:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// SanitizeRecord returns a copy of v with every reachable string field
// sanitized: direct strings, *string, []string and embedded struct values.
func SanitizeRecord[T any](v T) T {
	rv := reflect.New(reflect.TypeOf(v))
	rv.Elem().Set(reflect.ValueOf(v))
	sanitizeValue(rv.Elem())
	return rv.Elem().Interface().(T)
}

func sanitizeValue(v reflect.Value) {
	switch v.Kind() {
	case reflect.String:
		if v.CanSet() {
			v.SetString(SanitizeString(v.String()))
		}
	case reflect.Pointer:
		if !v.IsNil() {
			sanitizeValue(v.Elem())
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			sanitizeValue(v.Field(i))
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			sanitizeValue(v.Index(i))
		}
	case reflect.Map:
		if v.Type().Elem().Kind() == reflect.String {
			for _, k := range v.MapKeys() {
				v.SetMapIndex(k, reflect.ValueOf(SanitizeString(v.MapIndex(k).String())))
			}
		}
	}
}
