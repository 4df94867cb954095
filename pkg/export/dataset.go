package export

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Dataset defines tabular export content.
type Dataset struct {
	Headers []string
	Rows    [][]string
}

type column struct {
	name  string
	index []int
}

// FromRecords flattens a slice of structs into a Dataset. Headers are the
// fields' JSON names, embedded structs contribute their fields inline, nil
// values render empty and nested collections render as JSON.
func FromRecords(records interface{}) (Dataset, error) {
	v := reflect.ValueOf(records)
	if v.Kind() != reflect.Slice {
		return Dataset{}, fmt.Errorf("export requires a slice, got %s", v.Kind())
	}
	elem := v.Type().Elem()
	if elem.Kind() == reflect.Ptr {
		elem = elem.Elem()
	}
	if elem.Kind() != reflect.Struct {
		return Dataset{}, fmt.Errorf("export requires struct records, got %s", elem.Kind())
	}

	cols := columnsOf(elem, nil)
	data := Dataset{Headers: make([]string, len(cols)), Rows: make([][]string, 0, v.Len())}
	for i, c := range cols {
		data.Headers[i] = c.name
	}
	for i := 0; i < v.Len(); i++ {
		rec := reflect.Indirect(v.Index(i))
		row := make([]string, len(cols))
		for j, c := range cols {
			if !rec.IsValid() {
				continue
			}
			field, err := rec.FieldByIndexErr(c.index)
			if err != nil {
				continue
			}
			cell, err := formatCell(field)
			if err != nil {
				return Dataset{}, fmt.Errorf("format %s: %w", c.name, err)
			}
			row[j] = cell
		}
		data.Rows = append(data.Rows, row)
	}
	return data, nil
}

func columnsOf(t reflect.Type, prefix []int) []column {
	var cols []column
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		index := append(append([]int{}, prefix...), i)
		if f.Anonymous {
			ft := f.Type
			if ft.Kind() == reflect.Ptr {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				cols = append(cols, columnsOf(ft, index)...)
				continue
			}
		}
		if !f.IsExported() {
			continue
		}
		name := strings.Split(f.Tag.Get("json"), ",")[0]
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		cols = append(cols, column{name: name, index: index})
	}
	return cols
}

func formatCell(v reflect.Value) (string, error) {
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return "", nil
		}
		v = v.Elem()
	}
	if t, ok := v.Interface().(time.Time); ok {
		return t.Format(time.RFC3339), nil
	}
	switch v.Kind() {
	case reflect.String:
		return v.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64), nil
	}
	raw, err := json.Marshal(v.Interface())
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
