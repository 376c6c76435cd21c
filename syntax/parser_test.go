package syntax

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLiterals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.syntax")
	defer teardown()
	//
	cases := []struct {
		text  string
		kind  LiteralKind
		value any
	}{
		{"42", IntLit, int64(42)},
		{"-7", IntLit, int64(-7)},
		{"1_000", IntLit, int64(1000)},
		{"3.25", FloatLit, 3.25},
		{"-1.5e3", FloatLit, -1500.0},
		{`"hello"`, StringLit, "hello"},
		{`'it\'s'`, StringLit, "it's"},
		{`"say \"hi\""`, StringLit, `say "hi"`},
		{`'a\\b'`, StringLit, `a\b`},
		{`'a\nb'`, StringLit, `a\nb`},
		{":ok", SymbolLit, "ok"},
		{":Done", SymbolLit, "Done"},
		{"true", BoolLit, true},
		{"false", BoolLit, false},
		{"nil", NilLit, nil},
	}
	for _, c := range cases {
		t.Run(c.text, func(t *testing.T) {
			node, err := Parse(c.text)
			require.NoError(t, err)
			lit, ok := node.(*Literal)
			require.True(t, ok, "expected literal, got %T", node)
			assert.Equal(t, c.kind, lit.Kind)
			assert.Equal(t, c.value, lit.Value)
			assert.Equal(t, len(c.text), lit.Pos.Length)
		})
	}
}

func TestParseNames(t *testing.T) {
	node, err := Parse("_")
	require.NoError(t, err)
	assert.IsType(t, &Wildcard{}, node)

	node, err = Parse("_unused")
	require.NoError(t, err)
	assert.Equal(t, "_unused", node.(*Ident).Name)

	node, err = Parse("count")
	require.NoError(t, err)
	assert.Equal(t, "count", node.(*Ident).Name)

	node, err = Parse("Integer")
	require.NoError(t, err)
	assert.Equal(t, "Integer", node.(*TypeRef).Name)

	node, err = Parse("Geo::Point")
	require.NoError(t, err)
	assert.Equal(t, "Geo::Point", node.(*TypeRef).Name)
}

func TestParseTyped(t *testing.T) {
	for _, text := range []string{"n:Integer", "n : Integer", "n :Integer"} {
		node, err := Parse(text)
		require.NoError(t, err, text)
		typed := node.(*Typed)
		assert.Equal(t, "n", typed.Name)
		assert.Equal(t, "Integer", typed.Type)
		assert.Equal(t, 0, typed.Pos.Offset)
		assert.Equal(t, len(text), typed.Pos.Length)
	}
	_, err := Parse("n : integer")
	assert.Error(t, err)
}

func TestParseArrays(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.syntax")
	defer teardown()
	//
	node, err := Parse("[]")
	require.NoError(t, err)
	assert.Empty(t, node.(*Array).Elements)

	node, err = Parse("[head, *tail]")
	require.NoError(t, err)
	arr := node.(*Array)
	require.Len(t, arr.Elements, 2)
	assert.Equal(t, "head", arr.Elements[0].(*Ident).Name)
	assert.Equal(t, "tail", arr.Elements[1].(*Splat).Name)
	assert.Equal(t, Span{Offset: 7, Length: 5, Line: 1, Column: 8}, arr.Elements[1].Span())

	node, err = Parse("[*]")
	require.NoError(t, err)
	assert.Equal(t, "", node.(*Array).Elements[0].(*Splat).Name)

	node, err = Parse("[[a, b], [:x, *_]]")
	require.NoError(t, err)
	arr = node.(*Array)
	require.Len(t, arr.Elements, 2)
	inner := arr.Elements[1].(*Array)
	assert.Equal(t, "x", inner.Elements[0].(*Literal).Value)
	assert.Equal(t, "", inner.Elements[1].(*Splat).Name)
}

func TestParseSplatsAnywhere(t *testing.T) {
	// placement is checked by the compiler, not by the parser
	for _, text := range []string{"[*, 2]", "[1, *, 2]", "[*, *]"} {
		_, err := Parse(text)
		assert.NoError(t, err, text)
	}
}

func TestParseCalls(t *testing.T) {
	node, err := Parse("IsEven()")
	require.NoError(t, err)
	call := node.(*Call)
	assert.Equal(t, "IsEven", call.Name)
	assert.Empty(t, call.Args)

	node, err = Parse("Point(x, y: Float, *)")
	require.NoError(t, err)
	call = node.(*Call)
	require.Len(t, call.Args, 3)
	assert.Equal(t, "Float", call.Args[1].(*Typed).Type)
	assert.IsType(t, &Splat{}, call.Args[2])

	node, err = Parse("even()")
	require.NoError(t, err)
	assert.Equal(t, "even", node.(*Call).Name)
}

func TestParseAlias(t *testing.T) {
	node, err := Parse("all @ [first, *]")
	require.NoError(t, err)
	alias := node.(*Alias)
	assert.Equal(t, "all", alias.Name)
	assert.IsType(t, &Array{}, alias.Inner)
	assert.Equal(t, 16, alias.Pos.Length)

	node, err = Parse("x @ y @ 1")
	require.NoError(t, err)
	assert.IsType(t, &Alias{}, node.(*Alias).Inner)
}

func TestParseSpansAcrossLines(t *testing.T) {
	node, err := Parse("[1,\n  two]")
	require.NoError(t, err)
	two := node.(*Array).Elements[1]
	assert.Equal(t, Span{Offset: 6, Length: 3, Line: 2, Column: 3}, two.Span())
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.syntax")
	defer teardown()
	//
	cases := []struct {
		text    string
		line    int
		column  int
		snippet string
	}{
		{"", 1, 1, ""},
		{"[1, 2", 1, 6, ""},
		{"[1 2]", 1, 4, "2"},
		{"[1,]", 1, 4, "]"},
		{"1 2", 1, 3, "2"},
		{"*", 1, 1, "*"},
		{"'open", 1, 1, "'open"},
		{"[1,\n  #]", 2, 3, "#"},
		{"x : 3", 1, 5, "3"},
		{"_ @ 1", 1, 1, "_"},
		{"Foo(", 1, 5, ""},
		{"12ab", 1, 3, "a"},
		{"-x", 1, 1, "-"},
	}
	for _, c := range cases {
		t.Run(c.text, func(t *testing.T) {
			_, err := Parse(c.text)
			require.Error(t, err)
			var serr *Error
			require.True(t, errors.As(err, &serr), "expected *Error, got %T", err)
			assert.Equal(t, c.line, serr.Line, "line")
			assert.Equal(t, c.column, serr.Column, "column")
			assert.Equal(t, c.snippet, serr.Snippet, "snippet")
			t.Logf("%s", serr.Detail())
		})
	}
}

func TestUnderline(t *testing.T) {
	src := "[2, 2]"
	got := Underline(src, Span{Offset: 4, Length: 1, Line: 1, Column: 5})
	assert.Equal(t, "  [2, 2]\n      ^", got)

	src = "[1,\n  [a, b]]"
	got = Underline(src, Span{Offset: 6, Length: 6, Line: 2, Column: 3})
	assert.Equal(t, "    [a, b]]\n    ^^^^^^", got)
}

func TestLocate(t *testing.T) {
	assert.Equal(t, Span{Offset: 5, Length: 1, Line: 1, Column: 6}, Locate("[1, 2]", 5, 1))
	assert.Equal(t, Span{Offset: 9, Length: 1, Line: 2, Column: 6}, Locate("[1,\n  two]", 9, 1))
}
