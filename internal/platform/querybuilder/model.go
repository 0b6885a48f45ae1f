package querybuilder

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// InsertModel writes every db-tagged field of model into table.
func InsertModel(table string, model any) (string, []any, error) {
	b := Insert(table)
	err := eachColumn(model, func(column string, value any) {
		b.Value(column, value)
	})
	if err != nil {
		return "", nil, err
	}
	return b.ToSQL()
}

// UpdateModel assigns every db-tagged field of model except the skipped columns.
func UpdateModel(table string, model any, skip []string, where ...Condition) (string, []any, error) {
	b := Update(table).Where(where...)
	err := eachColumn(model, func(column string, value any) {
		if !slices.Contains(skip, column) {
			b.Set(column, value)
		}
	})
	if err != nil {
		return "", nil, err
	}
	return b.ToSQL()
}

// eachColumn walks the exported fields of a struct (or pointer to one) that
// carry a db tag, in declaration order.
func eachColumn(model any, fn func(column string, value any)) error {
	v := reflect.ValueOf(model)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return fmt.Errorf("model is nil")
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return fmt.Errorf("model must be a struct, got %s", v.Kind())
	}

	seen := 0
	for _, field := range reflect.VisibleFields(v.Type()) {
		if !field.IsExported() || len(field.Index) != 1 {
			continue
		}
		column, _, _ := strings.Cut(field.Tag.Get("db"), ",")
		if column == "" || column == "-" {
			continue
		}
		fn(column, v.FieldByIndex(field.Index).Interface())
		seen++
	}
	if seen == 0 {
		return fmt.Errorf("model %s has no db columns", v.Type())
	}
	return nil
}
