package models

import (
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	appErrors "github.com/randomairborne/google-classroom/pkg/errors"
)

// stringValue prefixes the quoted text of a string that did not decode.
const stringValue = "string "

var (
	materialType        = reflect.TypeOf(Material{})
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// typeError reports a JSON value that does not fit t. Model unmarshalers
// return it so encoding/json fills in the path of the field being decoded.
func typeError(value string, t reflect.Type) *json.UnmarshalTypeError {
	return &json.UnmarshalTypeError{Value: value, Type: t}
}

// jsonKind names the kind of a raw JSON value the way encoding/json does in
// its type errors.
func jsonKind(raw []byte) string {
	if len(raw) == 0 {
		return "empty"
	}
	switch raw[0] {
	case '"':
		return "string"
	case '{':
		return "object"
	case '[':
		return "array"
	case 't', 'f':
		return "bool"
	case 'n':
		return "null"
	default:
		return "number"
	}
}

// describe is jsonKind followed by the literal for strings and numbers.
func describe(raw []byte) string {
	kind := jsonKind(raw)
	if kind == "string" || kind == "number" {
		return kind + " " + string(raw)
	}
	return kind
}

// SchemaError maps an error from decoding a model type to an *errors.Error.
// The field path recorded by encoding/json is kept. Unknown enum text and
// unknown material kinds, which a Material reports as the offending key
// string, get their own codes; anything else is a schema mismatch.
func SchemaError(err error) *appErrors.Error {
	if err == nil {
		return nil
	}
	var typed *appErrors.Error
	if errors.As(err, &typed) {
		return typed
	}
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) || typeErr.Type == nil {
		return appErrors.Wrap(err, appErrors.ErrSchemaMismatch.Code, appErrors.ErrSchemaMismatch.Status, appErrors.ErrSchemaMismatch.Message)
	}

	base := appErrors.ErrSchemaMismatch
	msg := fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value)
	if text, ok := strings.CutPrefix(typeErr.Value, stringValue); ok {
		switch {
		case typeErr.Type == materialType:
			base, msg = appErrors.ErrUnknownVariant, "unknown material kind "+text
		case isEnum(typeErr.Type):
			base, msg = appErrors.ErrUnknownEnum, "unknown value "+text
		}
	}
	return appErrors.WithField(appErrors.Wrap(err, base.Code, base.Status, msg), typeErr.Field)
}

// isEnum reports whether t is a closed enum: a named string type decoded
// through UnmarshalText.
func isEnum(t reflect.Type) bool {
	return t.Kind() == reflect.String && t.Name() != "" && reflect.PointerTo(t).Implements(textUnmarshalerType)
}
