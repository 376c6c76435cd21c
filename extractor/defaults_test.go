package extractor_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/fpmatch/either"
	"github.com/npillmayer/fpmatch/extractor"
	"github.com/npillmayer/fpmatch/maybe"
	"github.com/npillmayer/fpmatch/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultExtractors(t *testing.T) {
	reg := extractor.NewDefaultRegistry()
	boom := errors.New("boom")
	cases := []struct {
		name  string
		value any
		want  extractor.Result
	}{
		{"Just", maybe.Just(7), extractor.Scalar{Value: 7}},
		{"Some", maybe.Just("x"), extractor.Scalar{Value: "x"}},
		{"Just", maybe.Nothing[int](), extractor.NoMatch{}},
		{"Just", 7, extractor.NoMatch{}},
		{"Nothing", maybe.Nothing[int](), extractor.Boolean{Value: true}},
		{"None", maybe.Just(1), extractor.Boolean{Value: false}},
		{"Nothing", nil, extractor.NoMatch{}},
		{"Ok", result.Ok(3), extractor.Scalar{Value: 3}},
		{"Success", result.Err[int](boom), extractor.NoMatch{}},
		{"Err", result.Err[int](boom), extractor.Scalar{Value: boom}},
		{"Failure", result.Ok(3), extractor.NoMatch{}},
		{"Left", either.Left[int, string](1), extractor.Scalar{Value: 1}},
		{"Left", either.Right[int]("r"), extractor.NoMatch{}},
		{"Right", either.Right[int]("r"), extractor.Scalar{Value: "r"}},
		{"Even", 42, extractor.Boolean{Value: true}},
		{"Even", -3, extractor.Boolean{Value: false}},
		{"Odd", -3, extractor.Boolean{Value: true}},
		{"Odd", uint8(5), extractor.Boolean{Value: true}},
		{"Even", 2.0, extractor.NoMatch{}},
	}
	for _, c := range cases {
		r, err := reg.Apply(c.name, c.value)
		require.NoError(t, err, c.name)
		assert.Equal(t, c.want, r, "%s(%v)", c.name, c.value)
	}
}

func TestDefaultNames(t *testing.T) {
	names := extractor.NewDefaultRegistry().Names()
	for _, name := range []string{"Just", "Some", "Nothing", "None", "Ok", "Success",
		"Err", "Failure", "Left", "Right", "Even", "Odd"} {
		assert.Contains(t, names, name)
	}
}
