// Package binder parses HTTP requests into plain structs driven by field
// tags: `path:"id"`, `query:"page"`, and JSON bodies. Binders are composable;
// a binder that has nothing to do for a request reports ErrNotApplicable so
// the caller can skip it.
package binder

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
)

var (
	// ErrNotApplicable signals the binder has nothing to bind for this request.
	ErrNotApplicable = errors.New("binder not applicable to this request")

	// ErrInvalidTarget indicates the bind target is not a pointer to struct.
	ErrInvalidTarget = errors.New("bind target must be a non-nil pointer to struct")

	// ErrInvalidJSON indicates a malformed or mismatched JSON body.
	ErrInvalidJSON = errors.New("invalid JSON body")

	// ErrInvalidPath indicates a path parameter could not be bound.
	ErrInvalidPath = errors.New("invalid path parameter")

	// ErrInvalidQuery indicates a query parameter could not be bound.
	ErrInvalidQuery = errors.New("invalid query parameter")

	// ErrUnsupportedMediaType indicates a body with a non-JSON content type.
	ErrUnsupportedMediaType = errors.New("unsupported media type")
)

// IsBindError reports whether err originated from request binding, as
// opposed to handler or render failures. Used to map errors to 400 responses.
func IsBindError(err error) bool {
	return errors.Is(err, ErrInvalidJSON) ||
		errors.Is(err, ErrInvalidPath) ||
		errors.Is(err, ErrInvalidQuery) ||
		errors.Is(err, ErrUnsupportedMediaType) ||
		errors.Is(err, ErrInvalidTarget)
}

// structValue validates the target and returns its dereferenced struct value.
func structValue(v any, sentinel error) (reflect.Value, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return reflect.Value{}, fmt.Errorf("%w: got %T", errors.Join(sentinel, ErrInvalidTarget), v)
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("%w: got %T", errors.Join(sentinel, ErrInvalidTarget), v)
	}
	return rv, nil
}

// tagName resolves the parameter name for a field: the tag value, stripped of
// options, or "" when the field opts out with "-" or carries no tag.
func tagName(field reflect.StructField, tag string) string {
	value, ok := field.Tag.Lookup(tag)
	if !ok {
		return ""
	}
	if idx := strings.IndexByte(value, ','); idx >= 0 {
		value = value[:idx]
	}
	if value == "-" {
		return ""
	}
	return value
}

// setField assigns a string value to a struct field, converting to the field
// type. Pointers are allocated as needed.
func setField(field reflect.Value, value string) error {
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			field.Set(reflect.New(field.Type().Elem()))
		}
		field = field.Elem()
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("cannot parse %q as %s", value, field.Kind())
		}
		field.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(value, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("cannot parse %q as %s", value, field.Kind())
		}
		field.SetUint(n)
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(value, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("cannot parse %q as %s", value, field.Kind())
		}
		field.SetFloat(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("cannot parse %q as bool", value)
		}
		field.SetBool(b)
	default:
		return fmt.Errorf("unsupported field type %s", field.Type())
	}
	return nil
}

// bindTagged assigns values from lookup to every tagged, settable field.
func bindTagged(v any, tag string, sentinel error, lookup func(name string) (string, bool)) error {
	rv, err := structValue(v, sentinel)
	if err != nil {
		return err
	}

	rt := rv.Type()
	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		if !field.CanSet() {
			continue
		}
		name := tagName(rt.Field(i), tag)
		if name == "" {
			continue
		}
		value, ok := lookup(name)
		if !ok || value == "" {
			continue
		}
		if err := setField(field, value); err != nil {
			return fmt.Errorf("%w: field %s: %v", sentinel, rt.Field(i).Name, err)
		}
	}
	return nil
}

// Path binds `path:"name"` fields using the router's parameter extractor.
//
//	r.Get("/users/{id}", handler.Wrap(h,
//		handler.WithBinders[handler.Context, req](binder.Path(chi.URLParam)),
//	))
func Path(extractor func(r *http.Request, name string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return fmt.Errorf("%w: nil extractor", ErrInvalidPath)
		}
		return bindTagged(v, "path", ErrInvalidPath, func(name string) (string, bool) {
			value := extractor(r, name)
			return value, value != ""
		})
	}
}

// Query binds `query:"name"` fields from the URL query string.
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		values := r.URL.Query()
		return bindTagged(v, "query", ErrInvalidQuery, func(name string) (string, bool) {
			if !values.Has(name) {
				return "", false
			}
			return values.Get(name), true
		})
	}
}
