package schema

import (
	"fmt"
	"math"
	"strings"
)

// Kind enumerates the primitive kinds of the table type grammar.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindEnum
	KindArray
	KindObject
)

// FieldSpec describes the declared type of one record field. The grammar is
// interpreted by a generic validator so the per-table format rules stay a
// configuration table instead of eighteen hand-written checkers.
type FieldSpec struct {
	Name     string
	Kind     Kind
	Optional bool // field may be absent from the record
	Nullable bool // field may hold JSON null
	Enum     []string
	Length   int         // fixed array length; 0 means any length
	Lengths  []int       // bounded-choice array lengths, e.g. {0, 4, 5, 8}
	Elem     *FieldSpec  // array element type
	Fields   []FieldSpec // nested object fields
}

// TableSpec binds a table to its field specs.
type TableSpec struct {
	Table  TableName
	Fields []FieldSpec
}

// Validate checks one record against the spec and returns one message per
// violated field. The record token is not included; callers prepend it.
func (ts TableSpec) Validate(rec Record) []string {
	var reasons []string
	for _, fs := range ts.Fields {
		value, ok := rec[fs.Name]
		if !ok {
			if !fs.Optional {
				reasons = append(reasons, fmt.Sprintf("missing field '%s'", fs.Name))
			}
			continue
		}
		if value == nil {
			if !fs.Nullable {
				reasons = append(reasons, fmt.Sprintf("field '%s' must not be null", fs.Name))
			}
			continue
		}
		if msg := fs.validate(value); msg != "" {
			reasons = append(reasons, fmt.Sprintf("field '%s' %s", fs.Name, msg))
		}
	}
	return reasons
}

func (fs FieldSpec) validate(value any) string {
	switch fs.Kind {
	case KindString:
		if _, ok := value.(string); !ok {
			return fmt.Sprintf("must be a string, got %T", value)
		}
	case KindBool:
		if _, ok := value.(bool); !ok {
			return fmt.Sprintf("must be a boolean, got %T", value)
		}
	case KindInt:
		f, ok := value.(float64)
		if !ok {
			return fmt.Sprintf("must be an integer, got %T", value)
		}
		if f != math.Trunc(f) {
			return fmt.Sprintf("must be an integer, got %v", f)
		}
	case KindFloat:
		if _, ok := value.(float64); !ok {
			return fmt.Sprintf("must be a number, got %T", value)
		}
	case KindEnum:
		s, ok := value.(string)
		if !ok {
			return fmt.Sprintf("must be a string, got %T", value)
		}
		for _, member := range fs.Enum {
			if s == member {
				return ""
			}
		}
		return fmt.Sprintf("must be one of [%s], got %q", strings.Join(fs.Enum, ", "), s)
	case KindArray:
		items, ok := value.([]any)
		if !ok {
			return fmt.Sprintf("must be an array, got %T", value)
		}
		if fs.Length > 0 && len(items) != fs.Length {
			return fmt.Sprintf("must have length %d, got %d", fs.Length, len(items))
		}
		if len(fs.Lengths) > 0 && !containsInt(fs.Lengths, len(items)) {
			return fmt.Sprintf("must have length in %v, got %d", fs.Lengths, len(items))
		}
		if fs.Elem != nil {
			for i, item := range items {
				if msg := fs.Elem.validate(item); msg != "" {
					return fmt.Sprintf("element %d %s", i, msg)
				}
			}
		}
	case KindObject:
		obj, ok := value.(map[string]any)
		if !ok {
			return fmt.Sprintf("must be an object, got %T", value)
		}
		nested := TableSpec{Fields: fs.Fields}
		if msgs := nested.Validate(Record(obj)); len(msgs) > 0 {
			return strings.Join(msgs, "; ")
		}
	}
	return ""
}

func containsInt(values []int, n int) bool {
	for _, v := range values {
		if v == n {
			return true
		}
	}
	return false
}
