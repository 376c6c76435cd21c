package syntax

// Parse parses pattern text into a parse tree. It either consumes the whole
// of text or fails with an *Error; partial input is never accepted.
func Parse(text string) (Node, error) {
	tokens, err := tokenize(text)
	if err != nil {
		tracer().Debugf("lexing pattern %q failed: %v", text, err)
		return nil, err
	}
	p := &parser{src: text, tokens: tokens}
	if p.peek().kind == tEOF {
		return nil, p.errorAt(p.peek(), "empty pattern")
	}
	node, err := p.pattern()
	if err != nil {
		tracer().Debugf("parsing pattern %q failed: %v", text, err)
		return nil, err
	}
	if tok := p.peek(); tok.kind != tEOF {
		return nil, p.errorAt(tok, "unexpected %s after end of pattern", tok.kind)
	}
	return node, nil
}

type parser struct {
	src    string
	tokens []token
	pos    int
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) peekAt(ahead int) token {
	if p.pos+ahead < len(p.tokens) {
		return p.tokens[p.pos+ahead]
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *parser) consume() token {
	tok := p.tokens[p.pos]
	if tok.kind != tEOF {
		p.pos++
	}
	return tok
}

func (p *parser) expect(kind tokKind) (token, error) {
	tok := p.peek()
	if tok.kind != kind {
		return tok, p.errorAt(tok, "expected %s, found %s", kind, tok.kind)
	}
	return p.consume(), nil
}

func (p *parser) errorAt(tok token, format string, args ...any) error {
	return Errorf(p.src, tok.span, format, args...)
}

// pattern := aliased | typed_ident | extractor | primary
func (p *parser) pattern() (Node, error) {
	tok := p.peek()
	switch tok.kind {
	case tIdent:
		switch p.peekAt(1).kind {
		case tAt:
			return p.aliased()
		case tColon:
			return p.typed()
		case tLParen:
			return p.call()
		}
		p.consume()
		return identOrKeyword(tok), nil
	case tConst:
		if p.peekAt(1).kind == tLParen {
			return p.call()
		}
		p.consume()
		return &TypeRef{Pos: tok.span, Name: tok.text}, nil
	case tInt:
		p.consume()
		return &Literal{Pos: tok.span, Kind: IntLit, Value: tok.value}, nil
	case tFloat:
		p.consume()
		return &Literal{Pos: tok.span, Kind: FloatLit, Value: tok.value}, nil
	case tString:
		p.consume()
		return &Literal{Pos: tok.span, Kind: StringLit, Value: tok.value}, nil
	case tSymbol:
		p.consume()
		return &Literal{Pos: tok.span, Kind: SymbolLit, Value: tok.value}, nil
	case tLBracket:
		return p.array()
	case tStar:
		return nil, p.errorAt(tok, "splat is only allowed inside an array or argument list")
	case tEOF:
		return nil, p.errorAt(tok, "unexpected end of pattern")
	}
	return nil, p.errorAt(tok, "unexpected %s", tok.kind)
}

func identOrKeyword(tok token) Node {
	switch tok.text {
	case "_":
		return &Wildcard{Pos: tok.span}
	case "true":
		return &Literal{Pos: tok.span, Kind: BoolLit, Value: true}
	case "false":
		return &Literal{Pos: tok.span, Kind: BoolLit, Value: false}
	case "nil":
		return &Literal{Pos: tok.span, Kind: NilLit, Value: nil}
	}
	return &Ident{Pos: tok.span, Name: tok.text}
}

func isKeyword(name string) bool {
	return name == "true" || name == "false" || name == "nil"
}

// aliased := identifier '@' pattern
func (p *parser) aliased() (Node, error) {
	name := p.consume()
	if name.text == "_" || isKeyword(name.text) {
		return nil, p.errorAt(name, "cannot alias a pattern to %q", name.text)
	}
	p.consume() // '@'
	inner, err := p.pattern()
	if err != nil {
		return nil, err
	}
	return &Alias{Pos: cover(name.span, inner.Span()), Name: name.text, Inner: inner}, nil
}

// typed_ident := identifier ':' TypeName
func (p *parser) typed() (Node, error) {
	name := p.consume()
	if isKeyword(name.text) {
		return nil, p.errorAt(name, "cannot bind keyword %q", name.text)
	}
	p.consume() // ':'
	typ, err := p.expect(tConst)
	if err != nil {
		return nil, err
	}
	return &Typed{Pos: cover(name.span, typ.span), Name: name.text, Type: typ.text}, nil
}

// extractor := (TypeName | identifier) '(' elements ')'
func (p *parser) call() (Node, error) {
	name := p.consume()
	if name.text == "_" || isKeyword(name.text) {
		return nil, p.errorAt(name, "%q cannot name an extractor", name.text)
	}
	p.consume() // '('
	args, closing, err := p.elements(tRParen)
	if err != nil {
		return nil, err
	}
	return &Call{Pos: cover(name.span, closing.span), Name: name.text, Args: args}, nil
}

// array := '[' elements ']'
func (p *parser) array() (Node, error) {
	open := p.consume()
	elems, closing, err := p.elements(tRBracket)
	if err != nil {
		return nil, err
	}
	return &Array{Pos: cover(open.span, closing.span), Elements: elems}, nil
}

// elements := (element (',' element)*)? closing
//
// Splats are accepted at any position; the compiler checks their placement.
func (p *parser) elements(closing tokKind) ([]Node, token, error) {
	var elems []Node
	if p.peek().kind == closing {
		return elems, p.consume(), nil
	}
	for {
		var elem Node
		var err error
		if p.peek().kind == tStar {
			elem, err = p.splat()
		} else {
			elem, err = p.pattern()
		}
		if err != nil {
			return nil, token{}, err
		}
		elems = append(elems, elem)
		switch tok := p.peek(); tok.kind {
		case tComma:
			p.consume()
		case closing:
			return elems, p.consume(), nil
		default:
			return nil, token{}, p.errorAt(tok, "expected ',' or %s, found %s", closing, tok.kind)
		}
	}
}

// splat := '*' identifier?
func (p *parser) splat() (Node, error) {
	star := p.consume()
	if tok := p.peek(); tok.kind == tIdent {
		if isKeyword(tok.text) {
			return nil, p.errorAt(tok, "cannot bind keyword %q", tok.text)
		}
		p.consume()
		name := tok.text
		if name == "_" {
			name = ""
		}
		return &Splat{Pos: cover(star.span, tok.span), Name: name}, nil
	}
	return &Splat{Pos: star.span}, nil
}
