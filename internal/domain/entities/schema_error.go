package entities

import "fmt"

// SchemaError reports a raw record that could not be coerced into the staged
// schema: a missing required column or a malformed value. It aborts the run;
// rows are never dropped or nulled out silently.

type SchemaError struct {
	Table  string
	Column string
	Value  string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema error in %s.%s (value %q): %s", e.Table, e.Column, e.Value, e.Reason)
}

func NewSchemaError(table, column, value, reason string) *SchemaError {
	return &SchemaError{Table: table, Column: column, Value: value, Reason: reason}
}
