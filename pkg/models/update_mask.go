package models

import (
	"reflect"
	"strings"
)

// UpdateMask returns the JSON names of the set fields of a partial-update
// shape, in declaration order. A field counts as set when it is a non-nil
// pointer, slice or map. v may be a struct or a pointer to one.
func UpdateMask(v any) []string {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	rt := rv.Type()
	mask := make([]string, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		name := jsonName(field)
		if name == "" {
			continue
		}
		value := rv.Field(i)
		switch value.Kind() {
		case reflect.Pointer, reflect.Slice, reflect.Map:
			if !value.IsNil() {
				mask = append(mask, name)
			}
		}
	}
	return mask
}

func jsonName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return field.Name
	}
	return name
}
