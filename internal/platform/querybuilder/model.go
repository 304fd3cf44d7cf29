package querybuilder

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// Columns lists the db-tagged columns of a row struct in field order, so
// SELECT lists stay in step with the struct sqlx scans into.
func Columns(model any) ([]string, error) {
	typ := reflect.TypeOf(model)
	for typ != nil && typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ == nil || typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: model must be struct", ErrInvalidQuery)
	}
	cols := make([]string, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		if col, ok := dbColumn(typ.Field(i)); ok {
			cols = append(cols, col)
		}
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("%w: model has no db columns", ErrInvalidQuery)
	}
	return cols, nil
}

func InsertModel(table string, model any, suffix string) (string, []any, error) {
	return InsertModels(table, []any{model}, suffix)
}

// InsertModels renders one multi-row INSERT. Every model must share the
// column set of the first.
func InsertModels[T any](table string, models []T, suffix string) (string, []any, error) {
	if len(models) == 0 {
		return "", nil, fmt.Errorf("%w: insert values are required", ErrInvalidQuery)
	}

	builder := InsertInto(table).Suffix(suffix)
	var first []string
	for i, model := range models {
		cols, vals, err := columnsAndValuesFromModel(model)
		if err != nil {
			return "", nil, err
		}
		if i == 0 {
			first = cols
			builder.Columns(cols...)
		} else if !slices.Equal(first, cols) {
			return "", nil, fmt.Errorf("%w: model %d columns differ from the first model", ErrInvalidQuery, i)
		}
		builder.Values(vals...)
	}
	return builder.ToSQL()
}

func columnsAndValuesFromModel(model any) ([]string, []any, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer || value.Kind() == reflect.Interface {
		if value.IsNil() {
			return nil, nil, fmt.Errorf("%w: model cannot be nil", ErrInvalidQuery)
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("%w: model must be struct", ErrInvalidQuery)
	}

	typ := value.Type()
	cols := make([]string, 0, typ.NumField())
	vals := make([]any, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		col, ok := dbColumn(typ.Field(i))
		if !ok {
			continue
		}
		cols = append(cols, col)
		vals = append(vals, value.Field(i).Interface())
	}

	if len(cols) == 0 {
		return nil, nil, fmt.Errorf("%w: model has no db columns", ErrInvalidQuery)
	}
	return cols, vals, nil
}

func dbColumn(field reflect.StructField) (string, bool) {
	if field.PkgPath != "" {
		return "", false
	}
	tag := strings.TrimSpace(field.Tag.Get("db"))
	if tag == "" || tag == "-" {
		return "", false
	}
	col := strings.TrimSpace(strings.Split(tag, ",")[0])
	if col == "" || col == "-" {
		return "", false
	}
	return col, true
}
