/*
Package result implements the outcome of computations which may fail.

A Result[T] is either Ok(x) or Err(e). As with package maybe, clients
destructure results with a matcher inside a switch statement. Results take
part in extractor patterns as 'Ok(x)' and 'Err(e)'.
*/
package result

import (
	"fmt"

	"github.com/npillmayer/fpmatch/maybe"
)

// Result is the outcome of a computation producing a T.
type Result[T any] interface {
	Match() Matcher[T]
	IsOk() bool
	Get() (T, error)
	WithDefault(T) T
	OkValue() (any, bool)
	ErrValue() (error, bool)
}

type result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful outcome.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err wraps a failure. A nil err is replaced by a generic error, so Err
// never produces a successful result.
func Err[T any](err error) Result[T] {
	if err == nil {
		err = fmt.Errorf("result: Err called with nil error")
	}
	return result[T]{err: err}
}

// Try converts a Go-style return pair.
func Try[T any](x T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(x)
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

func (r result[T]) IsOk() bool {
	return r.err == nil
}

func (r result[T]) Get() (T, error) {
	return r.value, r.err
}

func (r result[T]) WithDefault(def T) T {
	if r.err == nil {
		return r.value
	}
	return def
}

func (r result[T]) OkValue() (any, bool) {
	if r.err == nil {
		return r.value, true
	}
	return nil, false
}

func (r result[T]) ErrValue() (error, bool) {
	return r.err, r.err != nil
}

func (r result[T]) String() string {
	if r.err == nil {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}

// Map applies f to a successful outcome.
func Map[T, S any](f func(T) S, x Result[T]) Result[S] {
	v, err := x.Get()
	if err != nil {
		return Err[S](err)
	}
	return Ok(f(v))
}

// AndThen chains a computation which may fail itself.
func AndThen[T, S any](f func(T) Result[S], x Result[T]) Result[S] {
	v, err := x.Get()
	if err != nil {
		return Err[S](err)
	}
	return f(v)
}

// ToMaybe drops the error of a failed result.
func ToMaybe[T any](x Result[T]) maybe.Maybe[T] {
	v, err := x.Get()
	return maybe.Of(v, err == nil)
}

// --- Matching --------------------------------------------------------------

// Matcher destructures a Result.
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
