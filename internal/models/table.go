package models

import "strings"

// Column maps a stored column onto the snake_case field name used by row structs.
type Column struct {
	Name  string
	Field string
}

// Col is shorthand for a column whose field is the lower-cased column name.
func Col(name string) Column {
	return Column{Name: name, Field: strings.ToLower(name)}
}

// Table describes a stored record kind without binding it to a persistence mechanism.
type Table struct {
	Name    string
	Columns []Column
}

// SelectList renders "col AS field, ..." for the table's columns.
func (t Table) SelectList() string {
	return SelectList(t.Columns)
}

// With returns a copy of the table extended by extra columns.
func (t Table) With(extra ...Column) Table {
	cols := make([]Column, 0, len(t.Columns)+len(extra))
	cols = append(cols, t.Columns...)
	cols = append(cols, extra...)
	return Table{Name: t.Name, Columns: cols}
}

// SelectList renders the projection for a column list.
func SelectList(cols []Column) string {
	parts := make([]string, len(cols))
	for i, c := range cols {
		if c.Name == c.Field {
			parts[i] = c.Name
			continue
		}
		parts[i] = c.Name + " AS " + c.Field
	}
	return strings.Join(parts, ", ")
}
