package iis

import (
	"fmt"
	"reflect"
	"strings"
)

// checkRequired reports the first non-pointer field that is absent or null in
// raw. encoding/json leaves such fields zeroed; the API contract treats them as
// mandatory, and only pointer fields are optional.
func checkRequired(raw any, out any) error {
	t := reflect.TypeOf(out)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return requireValue(raw, true, t, "")
}

func requireValue(raw any, present bool, t reflect.Type, path string) error {
	if t.Kind() == reflect.Pointer {
		if !present || raw == nil {
			return nil
		}
		t = t.Elem()
	} else if !present || raw == nil {
		if path == "" {
			return fmt.Errorf("response body is null")
		}
		return fmt.Errorf("required field %q is missing or null", path)
	}

	switch t.Kind() {
	case reflect.Slice:
		items, ok := raw.([]any)
		if !ok {
			return nil
		}
		for i, item := range items {
			if err := requireValue(item, true, t.Elem(), fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	case reflect.Struct:
		obj, ok := raw.(map[string]any)
		if !ok {
			return nil
		}
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			name := jsonName(f)
			if name == "-" {
				continue
			}
			v, present := obj[name]
			if err := requireValue(v, present, f.Type, joinPath(path, name)); err != nil {
				return err
			}
		}
	}
	return nil
}

func jsonName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if name, _, _ := strings.Cut(tag, ","); name != "" {
		return name
	}
	return f.Name
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}
