package fpmatch

import (
	"github.com/npillmayer/fpmatch/maybe"
	"github.com/npillmayer/fpmatch/result"
)

// Unit returns unit for any input => the zero value for T.
func Unit[T any](_ T) T {
	var a T
	return a
}

// Const returns a function that produces a.
func Const[T any](a T) func() T {
	return func() T {
		return a
	}
}

// Compose returns h = f . g
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		b := g(a)
		return f(b)
	}
}

// ComposeMaybe returns h = f . g for functions which may produce nothing.
// f is not called if g produces nothing.
func ComposeMaybe[A, B, C any](g func(A) maybe.Maybe[B], f func(B) maybe.Maybe[C]) func(A) maybe.Maybe[C] {
	return func(a A) maybe.Maybe[C] {
		return maybe.AndThen(f, g(a))
	}
}

// ComposeResult returns h = f . g for functions which may fail.
// f is not called if g fails.
func ComposeResult[A, B, C any](g func(A) result.Result[B], f func(B) result.Result[C]) func(A) result.Result[C] {
	return func(a A) result.Result[C] {
		return result.AndThen(f, g(a))
	}
}
