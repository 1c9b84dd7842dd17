package binder

import (
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
)

const pathTag = "path"

// Path returns a binder reading `path` tagged fields through extract.
// Supported field kinds: string, bool, signed and unsigned integers, and
// pointers to those.
func Path(extract func(r *http.Request, name string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Pointer || rv.IsNil() {
			return fmt.Errorf("%w: target must be a non-nil pointer", ErrFailedToParsePath)
		}
		rv = rv.Elem()
		if rv.Kind() != reflect.Struct {
			return fmt.Errorf("%w: target must be a pointer to struct", ErrFailedToParsePath)
		}

		rt := rv.Type()
		for i := range rv.NumField() {
			field := rv.Field(i)
			sf := rt.Field(i)
			if !field.CanSet() {
				continue
			}

			name, skip := paramName(sf)
			if skip {
				continue
			}

			raw := extract(r, name)
			if raw == "" {
				continue
			}

			if err := setField(field, raw); err != nil {
				return fmt.Errorf("%w: field %s: %v", ErrFailedToParsePath, sf.Name, err)
			}
		}
		return nil
	}
}

func paramName(sf reflect.StructField) (string, bool) {
	tag := sf.Tag.Get(pathTag)
	switch tag {
	case "":
		return strings.ToLower(sf.Name), false
	case "-":
		return "", true
	}
	name, _, _ := strings.Cut(tag, ",")
	return name, false
}

func setField(field reflect.Value, raw string) error {
	if field.Kind() == reflect.Pointer {
		if field.IsNil() {
			field.Set(reflect.New(field.Type().Elem()))
		}
		return setField(field.Elem(), raw)
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("invalid bool value %q", raw)
		}
		field.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid int value %q", raw)
		}
		field.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid uint value %q", raw)
		}
		field.SetUint(n)
	default:
		return fmt.Errorf("unsupported type %s", field.Kind())
	}
	return nil
}
