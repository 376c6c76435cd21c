/*
Package either implements values of one of two alternative types.

An Either[L, R] is Left(l) or Right(r). Clients destructure it with a
matcher inside a switch statement:

	var n int
	var s string
	switch m := e.Match(); m {
	case m.Left(&n):
		...
	case m.Right(&s):
		...
	}

Either values take part in extractor patterns as 'Left(x)' and 'Right(x)'.
*/
package either

import "fmt"

// Either holds a value of type L or of type R.
type Either[L, R any] interface {
	Match() Matcher[L, R]
	IsLeft() bool
	LeftValue() (any, bool)
	RightValue() (any, bool)
}

type either[L, R any] struct {
	left  L
	right R
	isR   bool
}

// Left wraps a value of the left type.
func Left[L, R any](l L) Either[L, R] {
	return either[L, R]{left: l}
}

// Right wraps a value of the right type.
func Right[L, R any](r R) Either[L, R] {
	return either[L, R]{right: r, isR: true}
}

func (e either[L, R]) Match() Matcher[L, R] {
	return matcher[L, R]{e: e}
}

func (e either[L, R]) IsLeft() bool {
	return !e.isR
}

func (e either[L, R]) LeftValue() (any, bool) {
	if e.isR {
		return nil, false
	}
	return e.left, true
}

func (e either[L, R]) RightValue() (any, bool) {
	if !e.isR {
		return nil, false
	}
	return e.right, true
}

func (e either[L, R]) String() string {
	if e.isR {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// Fold collapses an Either into a single value.
func Fold[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	var l L
	if e.Match().Left(&l) != nil {
		return onLeft(l)
	}
	var r R
	e.Match().Right(&r)
	return onRight(r)
}

// --- Matching --------------------------------------------------------------

// Matcher destructures an Either.
type Matcher[L, R any] interface {
	Left(*L) Matcher[L, R]
	Right(*R) Matcher[L, R]
}

type matcher[L, R any] struct {
	e either[L, R]
}

func (em matcher[L, R]) Left(l *L) Matcher[L, R] {
	if !em.e.isR {
		*l = em.e.left
		return em
	}
	return nil
}

func (em matcher[L, R]) Right(r *R) Matcher[L, R] {
	if em.e.isR {
		*r = em.e.right
		return em
	}
	return nil
}
