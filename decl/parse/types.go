package parse

import (
	"strings"

	"github.com/viant/csbind/decl"
)

func (p *parser) parseType() (decl.Type, error) {
	pos := p.position()
	tok := p.peek()
	if tok == nil {
		return nil, p.errorf("expected type, found end of input")
	}
	switch {
	case tok.isPunct("*"):
		p.index++
		pointer := &decl.Pointer{Position: pos}
		switch {
		case p.acceptKeyword("mut"):
			pointer.Mutable = true
		case p.acceptKeyword("const"):
		default:
			return nil, p.errorf("expected 'const' or 'mut', found %v", p.found())
		}
		elem, err := p.parseType()
		pointer.Elem = elem
		return pointer, err
	case tok.isPunct("&"):
		p.index++
		reference := &decl.Reference{Position: pos}
		if lifetime := p.peek(); lifetime != nil && lifetime.code == lifetimeToken {
			p.index++
			reference.Lifetime = strings.TrimPrefix(lifetime.text, "'")
		}
		reference.Mutable = p.acceptKeyword("mut")
		elem, err := p.parseType()
		reference.Elem = elem
		return reference, err
	case tok.isPunct("["):
		return p.parseArray()
	case tok.isPunct("("):
		return p.parseTuple()
	case tok.isPunct("!"):
		p.index++
		return &decl.Never{Position: pos}, nil
	case tok.isPunct("<"), tok.isPunct("::"):
		return p.parsePath()
	case tok.code != identifierToken:
		return nil, p.errorf("expected type, found %v", p.found())
	}

	switch tok.text {
	case "_":
		p.index++
		return &decl.Infer{Position: pos}, nil
	case "dyn":
		p.index++
		bounds, err := p.parseBounds()
		return &decl.TraitObject{Position: pos, Bounds: bounds}, err
	case "impl":
		p.index++
		bounds, err := p.parseBounds()
		return &decl.ImplTrait{Position: pos, Bounds: bounds}, err
	case "fn", "unsafe", "extern", "for":
		return p.parseBareFn()
	}
	if p.peekAt(1).isPunct("!") {
		return p.parseMacro()
	}
	return p.parsePath()
}

func (p *parser) parseArray() (decl.Type, error) {
	pos := p.position()
	p.index++
	elem, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if p.acceptPunct("]") {
		return &decl.Slice{Position: pos, Elem: elem}, nil
	}
	if err = p.expectPunct(";"); err != nil {
		return nil, err
	}
	start := p.index
	if err = p.skipUntil("]"); err != nil {
		return nil, err
	}
	length := joinTokens(p.tokens[start:p.index])
	p.index++
	return &decl.Array{Position: pos, Elem: elem, Len: length}, nil
}

// parseTuple parses unit, parenthesised and tuple types
func (p *parser) parseTuple() (decl.Type, error) {
	pos := p.position()
	p.index++
	tuple := &decl.Tuple{Position: pos}
	trailingComma := false
	for !p.acceptPunct(")") {
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		tuple.Elems = append(tuple.Elems, elem)
		trailingComma = p.acceptPunct(",")
		if !trailingComma && !p.peek().isPunct(")") {
			return nil, p.errorf("expected ',' or ')', found %v", p.found())
		}
	}
	if len(tuple.Elems) == 1 && !trailingComma {
		return &decl.Paren{Position: pos, Elem: tuple.Elems[0]}, nil
	}
	return tuple, nil
}

func (p *parser) parseBareFn() (decl.Type, error) {
	fn := &decl.BareFn{Position: p.position()}
	if p.acceptKeyword("for") {
		if _, err := p.parseGenerics(); err != nil {
			return nil, err
		}
	}
	p.acceptKeyword("unsafe")
	if p.acceptKeyword("extern") {
		fn.ABI = "C"
		if abi := p.peek(); abi != nil && abi.code == stringToken {
			p.index++
			fn.ABI = literalText(abi)
		}
	}
	if !p.acceptKeyword("fn") {
		return nil, p.errorf("expected 'fn', found %v", p.found())
	}
	if err := p.expectPunct("("); err != nil {
		return nil, err
	}
	for !p.acceptPunct(")") {
		if tok := p.peek(); tok != nil && tok.code == identifierToken && p.peekAt(1).isPunct(":") {
			p.index += 2
		}
		if p.acceptPunct(".") {
			p.acceptPunct(".")
			p.acceptPunct(".")
			continue
		}
		param, err := p.parseType()
		if err != nil {
			return nil, err
		}
		fn.Params = append(fn.Params, param)
		if !p.acceptPunct(",") && !p.peek().isPunct(")") {
			return nil, p.errorf("expected ',' or ')', found %v", p.found())
		}
	}
	if p.acceptPunct("->") {
		result, err := p.parseType()
		if err != nil {
			return nil, err
		}
		fn.Result = result
	}
	return fn, nil
}

// parseBounds collects trait bounds text up to the enclosing delimiter
func (p *parser) parseBounds() (string, error) {
	start := p.index
	depth := 0
	for tok := p.peek(); tok != nil; tok = p.peek() {
		switch {
		case tok.isPunct("<"):
			depth++
		case tok.isPunct(">"):
			if depth == 0 {
				return joinTokens(p.tokens[start:p.index]), nil
			}
			depth--
		case depth == 0 && (tok.isPunct(",") || tok.isPunct(";") || tok.isPunct("=") || tok.isPunct("{")):
			return joinTokens(p.tokens[start:p.index]), nil
		case tok.isPunct("(") || tok.isPunct("["):
			if _, err := p.group(tok.text, closingOf(tok.text)); err != nil {
				return "", err
			}
			continue
		case isClosing(tok):
			return joinTokens(p.tokens[start:p.index]), nil
		}
		p.index++
	}
	return joinTokens(p.tokens[start:p.index]), nil
}

func (p *parser) parseMacro() (decl.Type, error) {
	pos := p.position()
	name := p.next().text
	p.index++
	tok := p.peek()
	if tok == nil || !isOpening(tok) {
		return nil, p.errorf("expected macro delimiter, found %v", p.found())
	}
	tokens, err := p.group(tok.text, closingOf(tok.text))
	if err != nil {
		return nil, err
	}
	return &decl.Macro{Position: pos, Name: name, Tokens: joinTokens(tokens)}, nil
}

// parsePath parses [::]a::b::Name<Args>; a qualified self <T as Trait>:: prefix is skipped
func (p *parser) parsePath() (decl.Type, error) {
	path := &decl.Path{Position: p.position()}
	if p.acceptPunct("<") {
		if err := p.skipAngled(); err != nil {
			return nil, err
		}
		if err := p.expectPunct(">"); err != nil {
			return nil, err
		}
		if err := p.expectPunct("::"); err != nil {
			return nil, err
		}
	} else {
		p.acceptPunct("::")
	}
	for {
		name, err := p.expectIdentifier()
		if err != nil {
			return nil, err
		}
		segment := &decl.Segment{Name: name.text}
		path.Segments = append(path.Segments, segment)
		if p.peek().isPunct("::") && p.peekAt(1).isPunct("<") {
			p.index++
		}
		switch {
		case p.peek().isPunct("<"):
			if segment.Args, err = p.parseGenericArgs(); err != nil {
				return nil, err
			}
		case p.peek().isPunct("(") && isFnTrait(segment.Name):
			if err = p.skipFnSugar(); err != nil {
				return nil, err
			}
		}
		if !p.acceptPunct("::") {
			return path, nil
		}
	}
}

func isFnTrait(name string) bool {
	return name == "Fn" || name == "FnMut" || name == "FnOnce"
}

// skipFnSugar skips Fn(A) -> B parenthesised arguments
func (p *parser) skipFnSugar() error {
	if _, err := p.group("(", ")"); err != nil {
		return err
	}
	if p.acceptPunct("->") {
		_, err := p.parseType()
		return err
	}
	return nil
}

func (p *parser) parseGenericArgs() ([]*decl.GenericArg, error) {
	p.index++
	var result []*decl.GenericArg
	for !p.acceptPunct(">") {
		tok := p.peek()
		switch {
		case tok == nil:
			return nil, p.errorf("expected '>', found end of input")
		case tok.code == lifetimeToken:
			p.index++
			result = append(result, &decl.GenericArg{Lifetime: strings.TrimPrefix(tok.text, "'")})
		case tok.code == numberToken || tok.isPunct("-"):
			start := p.index
			if err := p.skipAngled(); err != nil {
				return nil, err
			}
			result = append(result, &decl.GenericArg{Const: joinTokens(p.tokens[start:p.index])})
		case tok.isPunct("{"):
			tokens, err := p.group("{", "}")
			if err != nil {
				return nil, err
			}
			result = append(result, &decl.GenericArg{Const: "{" + joinTokens(tokens) + "}"})
		case tok.code == identifierToken && (p.peekAt(1).isPunct("=") || p.peekAt(1).isPunct(":")):
			// associated type binding or constraint
			if err := p.skipAngled(); err != nil {
				return nil, err
			}
		default:
			arg, err := p.parseType()
			if err != nil {
				return nil, err
			}
			result = append(result, &decl.GenericArg{Type: arg})
		}
		if !p.acceptPunct(",") && !p.peek().isPunct(">") {
			return nil, p.errorf("expected ',' or '>', found %v", p.found())
		}
	}
	return result, nil
}
