package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"vapeshop/models"
)

// FieldError describes one failing field. Field is the JSON path of the
// value, e.g. "items[0].quantity".
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// Errors lists every field that failed validation.
type Errors struct {
	Fields []FieldError
}

func (e *Errors) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *Errors) add(field, message, typ string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message, Type: typ})
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return jsonName(fld)
	})
	return v
}

// jsonName is the key a struct field is decoded from, or "" when the field
// is never read from JSON.
func jsonName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// Decode unmarshals body into record and validates it. record should come
// from one of the models constructors so omitted fields keep their defaults.
// Keys must match the json tags exactly; unknown keys are ignored. The
// returned error is nil or an *Errors naming every failing field.
func Decode(body []byte, record interface{}) error {
	rv := reflect.ValueOf(record)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("validation: cannot decode into %T", record)
	}

	errs := &Errors{}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil || obj == nil {
		msg := "invalid JSON body: expected an object"
		if err != nil {
			msg = "invalid JSON body: " + err.Error()
		}
		errs.add("body", msg, "value_error.jsondecode")
		return errs
	}

	d := &decoder{errs: errs, failed: map[string]bool{}}
	d.object(obj, rv.Elem(), "")

	if n, ok := record.(models.Normalizer); ok {
		n.Normalize()
	}

	if err := validate.Struct(record); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			field := fieldPath(fe.Namespace())
			if d.failedUnder(field) {
				continue
			}
			msg, typ := describe(fe)
			errs.add(field, msg, typ)
		}
	}

	if len(errs.Fields) == 0 {
		return nil
	}
	return errs
}

// decoder fills a struct one field at a time so a badly typed value only
// fails its own field and every such field is reported.
type decoder struct {
	errs   *Errors
	failed map[string]bool
}

func (d *decoder) object(obj map[string]json.RawMessage, v reflect.Value, prefix string) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := jsonName(sf)
		if name == "" {
			continue
		}
		raw, ok := obj[name]
		if !ok {
			continue
		}
		d.value(raw, v.Field(i), join(prefix, name))
	}
}

func (d *decoder) value(raw json.RawMessage, v reflect.Value, path string) {
	switch {
	case v.Kind() == reflect.Struct:
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			d.typeError(path, err)
			return
		}
		d.object(obj, v, path)
	case v.Kind() == reflect.Slice && v.Type().Elem().Kind() == reflect.Struct:
		var elems []json.RawMessage
		if err := json.Unmarshal(raw, &elems); err != nil {
			d.typeError(path, err)
			return
		}
		if elems == nil {
			v.Set(reflect.Zero(v.Type()))
			return
		}
		s := reflect.MakeSlice(v.Type(), len(elems), len(elems))
		for i, elem := range elems {
			d.value(elem, s.Index(i), fmt.Sprintf("%s[%d]", path, i))
		}
		v.Set(s)
	default:
		// Decode into a fresh value so a failure keeps the default.
		ptr := reflect.New(v.Type())
		if err := json.Unmarshal(raw, ptr.Interface()); err != nil {
			d.typeError(path, err)
			return
		}
		v.Set(ptr.Elem())
	}
}

func (d *decoder) typeError(path string, err error) {
	msg := err.Error()
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		msg = fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value)
	}
	d.errs.add(path, msg, "type_error")
	d.failed[path] = true
}

// failedUnder reports whether field, or an object or list containing it,
// already failed to decode.
func (d *decoder) failedUnder(field string) bool {
	for p := range d.failed {
		if field == p || strings.HasPrefix(field, p+".") || strings.HasPrefix(field, p+"[") {
			return true
		}
	}
	return false
}

func join(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

// fieldPath drops the leading struct name from a validator namespace.
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func describe(fe validator.FieldError) (string, string) {
	switch fe.Tag() {
	case "required":
		return "field required", "value_error.missing"
	case "email":
		return "value is not a valid email address", "value_error.email"
	case "gte":
		return "ensure this value is greater than or equal to " + fe.Param(), "value_error.number.not_ge"
	case "min":
		return "ensure this value has at least " + fe.Param() + " items", "value_error.list.min_items"
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag()), "value_error"
	}
}
