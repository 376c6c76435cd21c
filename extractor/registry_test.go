package extractor

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	X, Y int
	tag  string
}

type Temperature float64

type Pair struct {
	A, B any
}

func (p Pair) Deconstruct() []any {
	return []any{p.B, p.A}
}

func TestRegisterAndLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.extractor")
	defer teardown()
	//
	reg := NewRegistry()
	reg.Register(func(any) Result { return Boolean{Value: true} }, "Yes", "Ja")
	for _, name := range []string{"Yes", "Ja"} {
		fn, err := reg.Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, Boolean{Value: true}, fn(1))
	}
	assert.Equal(t, []string{"Ja", "Yes"}, reg.Names())

	_, err := reg.Lookup("No")
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "No", nf.Name)
}

func TestRegisterReplaces(t *testing.T) {
	reg := NewRegistry()
	reg.Register(func(any) Result { return Boolean{Value: false} }, "X")
	reg.Register(func(any) Result { return Boolean{Value: true} }, "X")
	r, err := reg.Apply("X", nil)
	require.NoError(t, err)
	assert.Equal(t, Boolean{Value: true}, r)
	assert.Len(t, reg.Names(), 1)
}

func TestRegisterPanicsOnProgrammingErrors(t *testing.T) {
	reg := NewRegistry()
	assert.Panics(t, func() { reg.Register(nil, "X") })
	assert.Panics(t, func() { reg.Register(func(any) Result { return NoMatch{} }) })
}

func TestRegisterType(t *testing.T) {
	reg := NewRegistry()
	RegisterType(reg, func(p point) Result {
		return Values(p.Y, p.X)
	}, "P")
	r, err := reg.Apply("point", point{X: 1, Y: 2})
	require.NoError(t, err)
	assert.Equal(t, Tuple{Values: []any{2, 1}}, r)
	r, err = reg.Apply("P", "not a point")
	require.NoError(t, err)
	assert.Equal(t, NoMatch{}, r)
}

func TestApplyByTypeName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.extractor")
	defer teardown()
	//
	reg := NewRegistry()
	r, err := reg.Apply("point", point{X: 1, Y: 2, tag: "hidden"})
	require.NoError(t, err)
	assert.Equal(t, Tuple{Values: []any{1, 2}}, r, "only exported fields take part")

	r, err = reg.Apply("point", &point{X: 3, Y: 4})
	require.NoError(t, err)
	assert.Equal(t, Tuple{Values: []any{3, 4}}, r)

	r, err = reg.Apply("point", (*point)(nil))
	require.NoError(t, err)
	assert.Equal(t, NoMatch{}, r)

	r, err = reg.Apply("Temperature", Temperature(21.5))
	require.NoError(t, err)
	assert.Equal(t, Scalar{Value: Temperature(21.5)}, r)

	r, err = reg.Apply("Pair", Pair{A: 1, B: 2})
	require.NoError(t, err)
	assert.Equal(t, Tuple{Values: []any{2, 1}}, r, "Deconstruct takes precedence over fields")

	_, err = reg.Apply("Point", point{})
	var nf *NotFoundError
	assert.True(t, errors.As(err, &nf), "type names are case sensitive")

	_, err = (*Registry)(nil).Apply("point", point{})
	assert.NoError(t, err)
}

// An explicit registration wins over deconstruction by type name, even if
// it does not apply to the value.
func TestExplicitRegistrationTakesPrecedence(t *testing.T) {
	reg := NewRegistry()
	reg.Register(func(any) Result { return NoMatch{} }, "point")
	r, err := reg.Apply("point", point{X: 1, Y: 2})
	require.NoError(t, err)
	assert.Equal(t, NoMatch{}, r)
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "point", TypeName(point{}))
	assert.Equal(t, "point", TypeName(&point{}))
	assert.Equal(t, "int", TypeName(1))
	assert.Equal(t, "", TypeName(nil))
	assert.Equal(t, "", TypeName([]int{}))
	assert.Equal(t, "box", TypeName(box[int]{}))
}

type box[T any] struct {
	V T
}

func TestRegistryConcurrency(t *testing.T) {
	reg := NewDefaultRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("Ext%d", i)
			for j := 0; j < 100; j++ {
				reg.Register(func(v any) Result { return Scalar{Value: v} }, name, name+"Alias")
				r, err := reg.Apply(name+"Alias", j)
				if assert.NoError(t, err) {
					assert.Equal(t, Scalar{Value: j}, r)
				}
				_, err = reg.Apply("Even", j)
				assert.NoError(t, err)
				_ = reg.Names()
			}
		}(i)
	}
	wg.Wait()
	assert.Contains(t, reg.Names(), "Ext15Alias")
}
