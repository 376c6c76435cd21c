package extractor

import "reflect"

// Interfaces implemented by the monadic wrappers of this module (packages
// maybe, result and either). Default extractors rely on them only, so any
// type implementing them takes part in extractor patterns.
type (
	JustValuer interface {
		JustValue() (any, bool)
	}
	OkValuer interface {
		OkValue() (any, bool)
	}
	ErrValuer interface {
		ErrValue() (error, bool)
	}
	LeftValuer interface {
		LeftValue() (any, bool)
	}
	RightValuer interface {
		RightValue() (any, bool)
	}
)

// NewDefaultRegistry creates a registry pre-loaded with extractors for
// optional, result and either values and a few integer predicates:
//
//	Just(x), Some(x)       Nothing(), None()
//	Ok(x), Success(x)      Err(e), Failure(e)
//	Left(x)                Right(x)
//	Even()                 Odd()
func NewDefaultRegistry() *Registry {
	reg := NewRegistry()
	reg.Register(just, "Just", "Some")
	reg.Register(nothing, "Nothing", "None")
	reg.Register(ok, "Ok", "Success")
	reg.Register(failed, "Err", "Failure")
	reg.Register(left, "Left")
	reg.Register(right, "Right")
	reg.Register(parity(0), "Even")
	reg.Register(parity(1), "Odd")
	return reg
}

func just(value any) Result {
	if m, is := value.(JustValuer); is {
		return Optional(m.JustValue())
	}
	return NoMatch{}
}

func nothing(value any) Result {
	if m, is := value.(JustValuer); is {
		_, present := m.JustValue()
		return Boolean{Value: !present}
	}
	return NoMatch{}
}

func ok(value any) Result {
	if r, is := value.(OkValuer); is {
		return Optional(r.OkValue())
	}
	return NoMatch{}
}

func failed(value any) Result {
	if r, is := value.(ErrValuer); is {
		err, present := r.ErrValue()
		return Optional(err, present)
	}
	return NoMatch{}
}

func left(value any) Result {
	if e, is := value.(LeftValuer); is {
		return Optional(e.LeftValue())
	}
	return NoMatch{}
}

func right(value any) Result {
	if e, is := value.(RightValuer); is {
		return Optional(e.RightValue())
	}
	return NoMatch{}
}

func parity(rest int64) Func {
	return func(value any) Result {
		rv := reflect.ValueOf(value)
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			r := rv.Int() % 2
			return Boolean{Value: r == rest || r == -rest}
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return Boolean{Value: int64(rv.Uint()%2) == rest}
		}
		return NoMatch{}
	}
}
