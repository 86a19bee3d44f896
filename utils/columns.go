package utils

import (
	"fmt"
	"reflect"
)

// ColumnList returns the list of "db" tagged column names of a row struct,
// optionally prefixed with a table alias.
func ColumnList[T any](tableAlias ...string) []string {
	var value T
	t := reflect.TypeOf(value)
	if t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("ColumnList: %T is not a struct", value))
	}

	var prefix string
	if len(tableAlias) > 0 {
		prefix = tableAlias[0] + "."
	}

	columns := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("db")
		if tag == "" || tag == "-" {
			continue
		}
		columns = append(columns, prefix+tag)
	}
	return columns
}
