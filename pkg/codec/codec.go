// Package codec is the JSON boundary for Classroom resources. It decodes
// payloads into the model types, reports schema mismatches with the offending
// field path, and validates request bodies before they are encoded.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	appErrors "github.com/randomairborne/google-classroom/pkg/errors"
	"github.com/randomairborne/google-classroom/pkg/models/courses"
)

const (
	opDecode        = "decode"
	opDecodeRequest = "decode_request"
	opEncode        = "encode"
	opEncodeRequest = "encode_request"
	opValidate      = "validate"
)

// Checker is implemented by request shapes whose rules span several fields.
type Checker interface {
	Check() error
}

// Config carries the codec dependencies. Nil fields get defaults.
type Config struct {
	// Validator is configured in place: New registers the JSON tag name
	// function and the OwnerID custom type on it.
	Validator *validator.Validate
	Logger    *zap.Logger
	Metrics   *Metrics
}

// Codec decodes, validates and encodes Classroom resources. It is safe for
// concurrent use.
type Codec struct {
	validator *validator.Validate
	logger    *zap.Logger
	metrics   *Metrics
}

// New constructs a Codec. A supplied validator is shared, so field names in
// its errors become JSON names for every caller.
func New(cfg Config) *Codec {
	validate := cfg.Validator
	if validate == nil {
		validate = validator.New()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterCustomTypeFunc(ownerIDValue, courses.OwnerID{})
	return &Codec{validator: validate, logger: logger, metrics: cfg.Metrics}
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

func ownerIDValue(v reflect.Value) interface{} {
	if owner, ok := v.Interface().(courses.OwnerID); ok {
		return owner.String()
	}
	return nil
}

// Decode unmarshals data into v and checks required fields. Failures are
// *errors.Error values scoped to the JSON path of the offending field.
func (c *Codec) Decode(data []byte, v any) error {
	start := time.Now()
	err := c.decode(data, v)
	if err == nil {
		err = c.validateTags(v, appErrors.ErrSchemaMismatch)
	}
	return c.finish(opDecode, v, start, err)
}

// DecodeRequest unmarshals a request body into v and validates it as
// EncodeRequest would.
func (c *Codec) DecodeRequest(data []byte, v any) error {
	start := time.Now()
	err := c.decode(data, v)
	if err == nil {
		err = c.validate(v)
	}
	return c.finish(opDecodeRequest, v, start, err)
}

// Encode marshals v. Failures are returned, never replaced by a default
// payload.
func (c *Codec) Encode(v any) ([]byte, error) {
	start := time.Now()
	data, err := c.encode(v)
	return data, c.finish(opEncode, v, start, err)
}

// EncodeRequest validates a request shape and marshals it.
func (c *Codec) EncodeRequest(v any) ([]byte, error) {
	start := time.Now()
	if err := c.validate(v); err != nil {
		return nil, c.finish(opEncodeRequest, v, start, err)
	}
	data, err := c.encode(v)
	return data, c.finish(opEncodeRequest, v, start, err)
}

// Validate applies the field rules and the cross-field checks of a request
// shape. v may be a struct, a pointer to one, or a slice of either.
func (c *Codec) Validate(v any) error {
	start := time.Now()
	return c.finish(opValidate, v, start, c.validate(v))
}

func (c *Codec) decode(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return decodeError(data, err)
	}
	return nil
}

func (c *Codec) encode(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, encodeError(err)
	}
	return data, nil
}

func (c *Codec) validate(v any) error {
	if err := c.validateTags(v, appErrors.ErrValidation); err != nil {
		return err
	}
	return eachStruct(reflect.ValueOf(v), "", func(value reflect.Value, path string) error {
		checker, ok := value.Interface().(Checker)
		if !ok {
			return nil
		}
		if err := checker.Check(); err != nil {
			return appErrors.Prefix(appErrors.FromError(err), path)
		}
		return nil
	})
}

func (c *Codec) validateTags(v any, kind *appErrors.Error) error {
	return eachStruct(reflect.ValueOf(v), "", func(value reflect.Value, path string) error {
		err := c.validator.Struct(value.Interface())
		if err == nil {
			return nil
		}
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return nil
		}
		return appErrors.Prefix(validationError(err, kind), path)
	})
}

// eachStruct calls fn for v when it is a struct, or for every struct element
// when it is a slice, with the JSON path of the element.
func eachStruct(v reflect.Value, path string, fn func(reflect.Value, string) error) error {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Struct:
		return fn(v, path)
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if err := eachStruct(v.Index(i), fmt.Sprintf("%s[%d]", path, i), fn); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Codec) finish(operation string, v any, start time.Time, err error) error {
	resource := resourceName(v)
	c.metrics.observe(operation, resource, err, time.Since(start))
	if err == nil {
		return nil
	}
	appErr := appErrors.FromError(err)
	c.logger.Debug("codec operation failed",
		zap.String("operation", operation),
		zap.String("resource", resource),
		zap.String("code", appErr.Code),
		zap.String("field", appErr.Field),
		zap.Error(err),
	)
	return appErr
}

// resourceName is the element type name of v, used as a metrics label.
func resourceName(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return "nil"
	}
	for t.Kind() == reflect.Pointer || t.Kind() == reflect.Slice || t.Kind() == reflect.Array {
		t = t.Elem()
	}
	if t.Name() == "" {
		return t.Kind().String()
	}
	return t.Name()
}
