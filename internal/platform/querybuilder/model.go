package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// InsertModel builds an insert from a struct's db tags. Columns named in
// skip are left out, which is how serial id columns stay database-assigned.
// Suffix is appended verbatim, typically RETURNING or ON CONFLICT.
func InsertModel(table string, model any, suffix string, skip ...string) (string, []any, error) {
	skipped := make(map[string]struct{}, len(skip))
	for _, col := range skip {
		skipped[col] = struct{}{}
	}

	cols, vals, err := columnsAndValuesFromModel(model, skipped)
	if err != nil {
		return "", nil, err
	}
	return InsertInto(table).
		Columns(cols...).
		Values(vals...).
		Suffix(suffix).
		ToSQL()
}

func columnsAndValuesFromModel(model any, skipped map[string]struct{}) ([]string, []any, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model must be struct")
	}

	typ := value.Type()
	cols := make([]string, 0, typ.NumField())
	vals := make([]any, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.PkgPath != "" {
			continue
		}
		col := columnFromTag(field.Tag.Get("db"))
		if col == "" {
			continue
		}
		if _, ok := skipped[col]; ok {
			continue
		}
		cols = append(cols, col)
		vals = append(vals, value.Field(i).Interface())
	}

	if len(cols) == 0 {
		return nil, nil, fmt.Errorf("model has no db columns")
	}
	return cols, vals, nil
}

func columnFromTag(tag string) string {
	col, _, _ := strings.Cut(strings.TrimSpace(tag), ",")
	col = strings.TrimSpace(col)
	if col == "-" {
		return ""
	}
	return col
}
