package extractor

import (
	"reflect"
	"sort"
	"strings"
	"sync"
)

// Registry maps extractor names to extractor functions.
type Registry struct {
	mu  sync.RWMutex
	fns map[string]Func
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{fns: make(map[string]Func)}
}

// Register associates fn with every name in names, replacing earlier
// registrations. All names are registered under a single lock, i.e. a
// concurrent lookup sees either none or all of them.
func (r *Registry) Register(fn Func, names ...string) {
	if fn == nil {
		panic("extractor: Register called with nil function")
	}
	if len(names) == 0 {
		panic("extractor: Register called without a name")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, name := range names {
		if _, ok := r.fns[name]; ok {
			tracer().Debugf("replacing extractor %q", name)
		}
		r.fns[name] = fn
	}
}

// RegisterType registers fn under the type name of T. Values which are not
// of type T do not match.
func RegisterType[T any](r *Registry, fn func(T) Result, aliases ...string) {
	var zero T
	name := typeNameOf(reflect.TypeOf(&zero).Elem())
	r.Register(func(value any) Result {
		v, ok := value.(T)
		if !ok {
			return NoMatch{}
		}
		return fn(v)
	}, append([]string{name}, aliases...)...)
}

// Lookup returns the extractor registered for name.
func (r *Registry) Lookup(name string) (Func, error) {
	r.mu.RLock()
	fn, ok := r.fns[name]
	r.mu.RUnlock()
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return fn, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.fns))
	for name := range r.fns {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Apply applies the extractor name to value.
//
// An explicitly registered extractor always takes precedence. Without one, a
// value whose dynamic type name equals name is deconstructed: values
// implementing Deconstructor yield Deconstruct(), structs yield their
// exported fields in declaration order, other named types yield themselves
// as a scalar. The fallback resolves values of the named type only: for a
// value of any other type, an unregistered name is a *NotFoundError, not a
// mismatch. Use RegisterType for names that must not match other types.
func (r *Registry) Apply(name string, value any) (Result, error) {
	if r != nil {
		if fn, err := r.Lookup(name); err == nil {
			return fn(value), nil
		}
	}
	if value != nil && TypeName(value) == name {
		tracer().Debugf("deconstructing %T by its type name", value)
		return deconstruct(value), nil
	}
	return nil, &NotFoundError{Name: name}
}

// Deconstructor is implemented by types which define their own positional
// decomposition for extractor calls by type name.
type Deconstructor interface {
	Deconstruct() []any
}

func deconstruct(value any) Result {
	if d, ok := value.(Deconstructor); ok {
		return Tuple{Values: d.Deconstruct()}
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return NoMatch{}
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return Scalar{Value: rv.Interface()}
	}
	rt := rv.Type()
	fields := make([]any, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		if rt.Field(i).IsExported() {
			fields = append(fields, rv.Field(i).Interface())
		}
	}
	return Tuple{Values: fields}
}

// TypeName returns the name of value's dynamic type, with pointers
// dereferenced and type arguments stripped. It returns "" for nil and for
// unnamed types.
func TypeName(value any) string {
	if value == nil {
		return ""
	}
	return typeNameOf(reflect.TypeOf(value))
}

func typeNameOf(t reflect.Type) string {
	for t.Kind() == reflect.Pointer && t.Name() == "" {
		t = t.Elem()
	}
	name := t.Name()
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	return name
}
