package models

import (
	"reflect"
	"strconv"
)

// ParseEnum resolves text against the closed set of values of an enum.
// Unknown text is an error, never a fallback value; SchemaError reports it
// as UNKNOWN_ENUM_VALUE.
func ParseEnum[T ~string](text []byte, values ...T) (T, error) {
	candidate := T(text)
	for _, v := range values {
		if v == candidate {
			return v, nil
		}
	}
	var zero T
	return zero, typeError(stringValue+strconv.Quote(string(text)), reflect.TypeOf(zero))
}
