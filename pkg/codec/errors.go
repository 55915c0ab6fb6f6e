package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	appErrors "github.com/randomairborne/google-classroom/pkg/errors"
	"github.com/randomairborne/google-classroom/pkg/models"
)

// decodeError converts a json.Unmarshal failure on data into an
// *errors.Error. Type errors are scoped to the full JSON path of the value
// that failed, array indices included.
func decodeError(data []byte, err error) error {
	var typed *appErrors.Error
	if errors.As(err, &typed) {
		return typed
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if path, leafErr := locate(data, typeErr); leafErr != nil {
			appErr := models.SchemaError(leafErr)
			return appErrors.WithField(appErr, joinPath(path, appErr.Field))
		}
		return models.SchemaError(typeErr)
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return schemaMismatch(err, fmt.Sprintf("malformed JSON at offset %d", syntaxErr.Offset))
	}

	var timeErr *time.ParseError
	if errors.As(err, &timeErr) {
		return schemaMismatch(err, "invalid RFC 3339 timestamp")
	}

	return schemaMismatch(err, appErrors.ErrSchemaMismatch.Message)
}

// locate finds the value a type error was raised for. encoding/json records
// the struct fields leading to it but not the array indices, so the path is
// walked again over data, fanning out through arrays in document order. It
// returns the full path and the error the value produces when decoded on its
// own, or a nil error when the value cannot be found.
func locate(data []byte, typeErr *json.UnmarshalTypeError) (string, error) {
	if typeErr.Struct == "" || typeErr.Field == "" || typeErr.Type == nil {
		return "", nil
	}
	return walk(data, strings.Split(typeErr.Field, "."), "", typeErr.Type)
}

func walk(raw []byte, fields []string, path string, leaf reflect.Type) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "", nil
	}

	if raw[0] == '[' && (len(fields) > 0 || !isList(leaf)) {
		var items []json.RawMessage
		if json.Unmarshal(raw, &items) != nil {
			return "", nil
		}
		for i, item := range items {
			if p, err := walk(item, fields, fmt.Sprintf("%s[%d]", path, i), leaf); err != nil {
				return p, err
			}
		}
		return "", nil
	}

	if len(fields) == 0 {
		if err := json.Unmarshal(raw, reflect.New(leaf).Interface()); err != nil {
			return path, err
		}
		return "", nil
	}

	var object map[string]json.RawMessage
	if raw[0] != '{' || json.Unmarshal(raw, &object) != nil {
		return "", nil
	}
	child, ok := object[fields[0]]
	if !ok {
		// encoding/json matches keys case-insensitively.
		for key, value := range object {
			if strings.EqualFold(key, fields[0]) {
				child, ok = value, true
				break
			}
		}
	}
	if !ok {
		return "", nil
	}
	return walk(child, fields[1:], joinPath(path, fields[0]), leaf)
}

func isList(t reflect.Type) bool {
	return t.Kind() == reflect.Slice || t.Kind() == reflect.Array
}

func joinPath(parent, child string) string {
	switch {
	case parent == "":
		return child
	case child == "":
		return parent
	case strings.HasPrefix(child, "["):
		return parent + child
	default:
		return parent + "." + child
	}
}

func schemaMismatch(cause error, message string) *appErrors.Error {
	return appErrors.Wrap(cause, appErrors.ErrSchemaMismatch.Code, appErrors.ErrSchemaMismatch.Status, message)
}

func encodeError(err error) error {
	var typed *appErrors.Error
	if errors.As(err, &typed) {
		return appErrors.Clone(typed, "")
	}
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "cannot encode payload")
}

// validationError converts the first failed rule into kind, scoped to the
// JSON path of the field.
func validationError(err error, kind *appErrors.Error) *appErrors.Error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return appErrors.Wrap(err, kind.Code, kind.Status, kind.Message)
	}
	fe := fieldErrs[0]
	return appErrors.WithField(appErrors.Clone(kind, ruleMessage(fe)), fieldPath(fe.Namespace()))
}

// fieldPath drops the root struct name validator puts at the front of a
// namespace.
func fieldPath(namespace string) string {
	_, rest, ok := strings.Cut(namespace, ".")
	if !ok {
		return namespace
	}
	return rest
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
