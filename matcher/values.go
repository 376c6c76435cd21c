package matcher

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/fpmatch/extractor"
)

// Symbol is the runtime representation of symbol literals like ':ok'.
// Symbols never equal strings.
type Symbol string

func (s Symbol) String() string {
	return ":" + string(s)
}

var symbolType = reflect.TypeOf(Symbol(""))

// literalEquals compares a literal value with a runtime value. Integers and
// floats compare numerically across all Go numeric kinds.
func literalEquals(lit any, value any) bool {
	if lit == nil {
		return isNil(value)
	}
	if value == nil {
		return false
	}
	rv := reflect.ValueOf(value)
	switch l := lit.(type) {
	case int64:
		switch {
		case isInt(rv):
			return rv.Int() == l
		case isUint(rv):
			return l >= 0 && rv.Uint() == uint64(l)
		case isFloat(rv):
			return rv.Float() == float64(l)
		}
	case float64:
		switch {
		case isInt(rv):
			return float64(rv.Int()) == l
		case isUint(rv):
			return float64(rv.Uint()) == l
		case isFloat(rv):
			return rv.Float() == l
		}
	case string:
		return rv.Kind() == reflect.String && rv.Type() != symbolType && rv.String() == l
	case Symbol:
		s, ok := value.(Symbol)
		return ok && s == l
	case bool:
		return rv.Kind() == reflect.Bool && rv.Bool() == l
	}
	return false
}

// isNil reports nil interfaces and nil pointers, maps, funcs, channels and
// interfaces. Nil slices are empty sequences, not nil.
func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

func isInt(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUint(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isFloat(rv reflect.Value) bool {
	k := rv.Kind()
	return k == reflect.Float32 || k == reflect.Float64
}

// asSequence views value as a sequence. A []any is used as is, other slices
// and arrays are copied element-wise. The input is never modified.
func asSequence(value any) ([]any, bool) {
	if seq, ok := value.([]any); ok {
		return seq, true
	}
	if value == nil {
		return nil, false
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	seq := make([]any, rv.Len())
	for i := range seq {
		seq[i] = rv.Index(i).Interface()
	}
	return seq, true
}

// conforms checks value against a type tag. Built-in tags name kinds of
// values; any other tag is compared with the dynamic type name of value. For
// qualified tags like 'Geo::Point' only the last segment is compared.
func conforms(tag string, value any) bool {
	var rv reflect.Value
	if value != nil {
		rv = reflect.ValueOf(value)
	}
	switch tag {
	case "Any", "Object":
		return true
	case "Nil", "NilClass":
		return isNil(value)
	case "Error":
		_, ok := value.(error)
		return ok
	case "Symbol":
		_, ok := value.(Symbol)
		return ok
	}
	if value == nil {
		return false
	}
	switch tag {
	case "Integer", "Int":
		return isInt(rv) || isUint(rv)
	case "Float":
		return isFloat(rv)
	case "Numeric", "Number":
		return isInt(rv) || isUint(rv) || isFloat(rv)
	case "String":
		return rv.Kind() == reflect.String && rv.Type() != symbolType
	case "Bool", "Boolean":
		return rv.Kind() == reflect.Bool
	case "Array", "Slice":
		return rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array
	case "Map", "Hash":
		return rv.Kind() == reflect.Map
	case "Func", "Proc":
		return rv.Kind() == reflect.Func
	}
	if i := strings.LastIndex(tag, "::"); i >= 0 {
		tag = tag[i+2:]
	}
	return extractor.TypeName(value) == tag
}

// Limits for rendering values in diagnostics. Nesting deeper than
// describeDepth and elements past describeElems are elided as "…".
const (
	describeDepth = 4
	describeElems = 10
	describeChars = 64
)

// describe renders values for diagnostics. Output is bounded, also for
// self-referential values.
func describe(value any) string {
	return describeBounded(value, describeDepth)
}

func describeBounded(value any, depth int) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case string:
		if short := cut(v, describeChars); len(short) < len(v) {
			return fmt.Sprintf("%q…", short)
		}
		return fmt.Sprintf("%q", v)
	case Symbol:
		return v.String()
	case error:
		return truncate(v.Error(), describeChars)
	case fmt.Stringer:
		return truncate(v.String(), describeChars)
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if depth == 0 {
			return "[…]"
		}
		n := rv.Len()
		parts := make([]string, 0, min(n, describeElems)+1)
		for i := 0; i < n && i < describeElems; i++ {
			parts = append(parts, describeBounded(rv.Index(i).Interface(), depth-1))
		}
		if n > describeElems {
			parts = append(parts, fmt.Sprintf("… (%d elements)", n))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case reflect.Map:
		if depth == 0 {
			return "map[…]"
		}
		parts := make([]string, 0, describeElems)
		iter := rv.MapRange()
		for iter.Next() && len(parts) < describeElems {
			parts = append(parts, describeBounded(iter.Key().Interface(), depth-1)+":"+
				describeBounded(iter.Value().Interface(), depth-1))
		}
		sort.Strings(parts)
		if rv.Len() > describeElems {
			parts = append(parts, fmt.Sprintf("… (%d entries)", rv.Len()))
		}
		return "map[" + strings.Join(parts, " ") + "]"
	case reflect.Struct:
		if depth == 0 {
			return fmt.Sprintf("%T{…}", value)
		}
		return describeStruct(rv, depth)
	case reflect.Pointer:
		if rv.IsNil() {
			return fmt.Sprintf("(%T)(nil)", value)
		}
		if rv.Elem().Kind() == reflect.Struct {
			if depth == 0 {
				return fmt.Sprintf("&%s{…}", rv.Elem().Type())
			}
			return "&" + describeStruct(rv.Elem(), depth)
		}
		return fmt.Sprintf("%T", value)
	}
	return truncate(fmt.Sprintf("%v", value), describeChars)
}

func describeStruct(rv reflect.Value, depth int) string {
	rt := rv.Type()
	parts := make([]string, 0, min(rt.NumField(), describeElems)+1)
	for i := 0; i < rt.NumField(); i++ {
		if len(parts) == describeElems {
			parts = append(parts, "…")
			break
		}
		if !rt.Field(i).IsExported() {
			continue
		}
		parts = append(parts, describeBounded(rv.Field(i).Interface(), depth-1))
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// cut cuts s to at most n bytes without splitting a rune.
func cut(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// truncate is cut, marking an elision with "…".
func truncate(s string, n int) string {
	if short := cut(s, n); len(short) < len(s) {
		return short + "…"
	}
	return s
}
