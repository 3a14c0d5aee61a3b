package components

import (
	"fmt"
	"strconv"
)

// Field is one named value of a Record.
type Field struct {
	Key   string
	Value any
}

// Record is one row of tabular data: an ordered mapping from field name to
// a displayable value (string, number, bool or nil). Keys enumerate in
// insertion order; setting an existing key keeps its position.
type Record struct {
	fields []Field
	index  map[string]int
}

// NewRecord builds a record from fields in order.
func NewRecord(fields ...Field) Record {
	var r Record
	for _, f := range fields {
		r = r.Set(f.Key, f.Value)
	}
	return r
}

// R builds a record from alternating key/value arguments:
//
//	R("id", 1, "name", "John", "age", 30)
//
// A trailing key without a value is stored with a nil value. Non-string
// keys are formatted with fmt.
func R(kv ...any) Record {
	var r Record
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprint(kv[i])
		}
		var value any
		if i+1 < len(kv) {
			value = kv[i+1]
		}
		r = r.Set(key, value)
	}
	return r
}

// Set returns a record with key set to value.
func (r Record) Set(key string, value any) Record {
	next := Record{
		fields: append(make([]Field, 0, len(r.fields)+1), r.fields...),
		index:  make(map[string]int, len(r.fields)+1),
	}
	for k, i := range r.index {
		next.index[k] = i
	}
	if i, ok := next.index[key]; ok {
		next.fields[i].Value = value
		return next
	}
	next.index[key] = len(next.fields)
	next.fields = append(next.fields, Field{Key: key, Value: value})
	return next
}

// Keys returns the field names in enumeration order.
func (r Record) Keys() []string {
	keys := make([]string, len(r.fields))
	for i, f := range r.fields {
		keys[i] = f.Key
	}
	return keys
}

// Get returns the value stored under key.
func (r Record) Get(key string) (any, bool) {
	i, ok := r.index[key]
	if !ok {
		return nil, false
	}
	return r.fields[i].Value, true
}

// Fields returns a copy of the record's fields in order.
func (r Record) Fields() []Field {
	return append([]Field(nil), r.fields...)
}

// Len returns the number of fields.
func (r Record) Len() int {
	return len(r.fields)
}

// FormatValue renders a cell value as text. nil renders as the empty
// string; whole floats drop their fractional part.
func FormatValue(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case fmt.Stringer:
		return value.String()
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(value), 'f', -1, 32)
	default:
		return fmt.Sprint(value)
	}
}
