// Package parse reads the item level declaration surface of a Rust module into a decl.File.
//
// Function bodies, const and static initialisers, impl and trait blocks and macro invocations are
// skipped as balanced token groups; expressions are never interpreted.
package parse

import (
	"strconv"
	"strings"

	"github.com/viant/csbind/decl"
	"github.com/viant/csbind/shared"
)

type parser struct {
	tokens []*token
	index  int
	end    shared.Position
}

// Parse parses Rust source
func Parse(source []byte) (*decl.File, error) {
	tokens, err := tokenize(source)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens, end: newLines(source).position(len(source))}
	items, err := p.parseItems(false)
	if err != nil {
		return nil, err
	}
	return &decl.File{Items: items}, nil
}

// ParseString parses Rust source text
func ParseString(source string) (*decl.File, error) {
	return Parse([]byte(source))
}

func (p *parser) peek() *token {
	return p.peekAt(0)
}

func (p *parser) peekAt(delta int) *token {
	if index := p.index + delta; index < len(p.tokens) {
		return p.tokens[index]
	}
	return nil
}

func (p *parser) next() *token {
	ret := p.peek()
	if ret != nil {
		p.index++
	}
	return ret
}

func (p *parser) atEnd() bool {
	return p.index >= len(p.tokens)
}

func (p *parser) position() shared.Position {
	if tok := p.peek(); tok != nil {
		return tok.pos
	}
	return p.end
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return newError(p.position(), nil, format, args...)
}

func (p *parser) found() string {
	if tok := p.peek(); tok != nil {
		return "'" + tok.text + "'"
	}
	return "end of input"
}

func (p *parser) acceptPunct(text string) bool {
	if p.peek().isPunct(text) {
		p.index++
		return true
	}
	return false
}

func (p *parser) acceptKeyword(text string) bool {
	if p.peek().isKeyword(text) {
		p.index++
		return true
	}
	return false
}

func (p *parser) expectPunct(text string) error {
	if !p.acceptPunct(text) {
		return p.errorf("expected '%v', found %v", text, p.found())
	}
	return nil
}

func (p *parser) expectIdentifier() (*token, error) {
	tok := p.peek()
	if tok == nil || tok.code != identifierToken {
		return nil, p.errorf("expected identifier, found %v", p.found())
	}
	p.index++
	return tok, nil
}

// parseItems parses items until end of input or, within a module body, the closing brace
func (p *parser) parseItems(inBlock bool) ([]decl.Item, error) {
	var result []decl.Item
	for {
		if p.atEnd() {
			if inBlock {
				return nil, p.errorf("expected '}', found end of input")
			}
			return result, nil
		}
		if inBlock && p.acceptPunct("}") {
			return result, nil
		}
		item, err := p.parseItem()
		if err != nil {
			return nil, err
		}
		if item != nil {
			result = append(result, item)
		}
	}
}

func (p *parser) parseItem() (decl.Item, error) {
	pos := p.position()
	attrs, err := p.parseAttributes()
	if err != nil {
		return nil, err
	}
	if p.atEnd() || p.peek().isPunct("}") {
		if len(attrs) > 0 {
			return nil, p.errorf("expected item after attributes, found %v", p.found())
		}
		return nil, nil
	}
	if p.acceptPunct(";") {
		return nil, nil
	}
	if err = p.skipVisibility(); err != nil {
		return nil, err
	}
	node := decl.Node{Position: pos, Attrs: attrs}
	if len(attrs) == 0 {
		node.Position = p.position()
	}

	tok := p.peek()
	if tok == nil || tok.code != identifierToken {
		return nil, p.errorf("expected item, found %v", p.found())
	}
	switch tok.text {
	case "fn", "async", "unsafe", "extern", "const", "default":
		if p.isFunction() {
			return p.parseFunction(node)
		}
		next := p.peekAt(1)
		switch {
		case tok.text == "const":
			return p.skipItem(node, "const", true)
		case tok.text == "extern" && next.isKeyword("crate"):
			p.next()
			return p.skipItem(node, "extern crate", true)
		case tok.text == "extern":
			return p.skipItem(node, "extern block", false)
		case next.isKeyword("impl") && (tok.text == "unsafe" || tok.text == "default"):
			p.next()
			return p.skipItem(node, "impl", false)
		case tok.text == "unsafe" && (next.isKeyword("trait") || next.isKeyword("auto")):
			p.next()
			return p.skipItem(node, "trait", false)
		}
	case "enum":
		return p.parseEnum(node)
	case "struct":
		return p.parseStruct(node)
	case "type":
		return p.parseTypeAlias(node)
	case "mod":
		return p.parseModule(node)
	case "use":
		return p.skipItem(node, "use", true)
	case "static":
		return p.skipItem(node, "static", true)
	case "impl":
		return p.skipItem(node, "impl", false)
	case "trait", "auto":
		return p.skipItem(node, "trait", false)
	case "union":
		return p.skipItem(node, "union", false)
	case "macro_rules":
		return p.skipItem(node, "macro", false)
	}
	if p.peekAt(1).isPunct("!") || p.peekAt(1).isPunct("::") {
		return p.skipMacro(node)
	}
	return nil, p.errorf("expected item, found %v", p.found())
}

// isFunction looks ahead over function qualifiers
func (p *parser) isFunction() bool {
	for i := 0; ; i++ {
		tok := p.peekAt(i)
		switch {
		case tok == nil:
			return false
		case tok.isKeyword("fn"):
			return true
		case tok.isKeyword("const"), tok.isKeyword("async"), tok.isKeyword("unsafe"), tok.isKeyword("default"):
		case tok.isKeyword("extern"):
			if p.peekAt(i+1) != nil && p.peekAt(i+1).code == stringToken {
				i++
			}
		default:
			return false
		}
	}
}

// parseAttributes parses outer attributes and doc comments, inner attributes are dropped
func (p *parser) parseAttributes() (decl.Attributes, error) {
	var result decl.Attributes
	for {
		tok := p.peek()
		switch {
		case tok == nil:
			return result, nil
		case tok.code == docCommentToken:
			p.index++
			result = append(result, decl.NewDoc(strings.TrimSuffix(tok.text[3:], "\r"), tok.pos))
		case tok.isPunct("#"):
			attr, err := p.parseAttribute()
			if err != nil {
				return nil, err
			}
			if attr != nil {
				result = append(result, attr)
			}
		default:
			return result, nil
		}
	}
}

func (p *parser) parseAttribute() (*decl.Attribute, error) {
	hash := p.next()
	inner := p.acceptPunct("!")
	if err := p.expectPunct("["); err != nil {
		return nil, err
	}
	start := p.index
	name, err := p.parseAttributePath()
	if err != nil {
		return nil, err
	}
	attr := &decl.Attribute{Position: hash.pos, Name: name}
	switch {
	case p.peek().isPunct("("):
		group, err := p.group("(", ")")
		if err != nil {
			return nil, err
		}
		attr.Args = splitArgs(group)
	case p.acceptPunct("="):
		value := p.peek()
		if value == nil {
			return nil, p.errorf("expected attribute value, found end of input")
		}
		if err = p.skipUntil("]"); err != nil {
			return nil, err
		}
		attr.Value, attr.HasValue = literalText(value), true
	}
	if !p.peek().isPunct("]") {
		p.index = start
		if err = p.skipUntil("]"); err != nil {
			return nil, err
		}
	}
	if err = p.expectPunct("]"); err != nil {
		return nil, err
	}
	if inner {
		return nil, nil
	}
	return attr, nil
}

func (p *parser) parseAttributePath() (string, error) {
	p.acceptPunct("::")
	tok, err := p.expectIdentifier()
	if err != nil {
		return "", err
	}
	name := tok.text
	for p.peek().isPunct("::") {
		p.index++
		if tok, err = p.expectIdentifier(); err != nil {
			return "", err
		}
		name += "::" + tok.text
	}
	return name, nil
}

// literalText returns unquoted string literal or raw token text
func literalText(tok *token) string {
	if tok.code != stringToken {
		return tok.text
	}
	if value, err := strconv.Unquote(tok.text); err == nil {
		return value
	}
	return strings.Trim(tok.text, `"`)
}

// splitArgs splits group tokens on top level commas
func splitArgs(tokens []*token) []string {
	var result []string
	depth := 0
	var current []*token
	flush := func() {
		if len(current) > 0 {
			result = append(result, joinTokens(current))
		}
		current = nil
	}
	for _, tok := range tokens {
		switch {
		case tok.isPunct("(") || tok.isPunct("[") || tok.isPunct("{"):
			depth++
		case tok.isPunct(")") || tok.isPunct("]") || tok.isPunct("}"):
			depth--
		case tok.isPunct(",") && depth == 0:
			flush()
			continue
		}
		current = append(current, tok)
	}
	flush()
	return result
}

// joinTokens renders tokens, adjacent tokens in source are joined without space
func joinTokens(tokens []*token) string {
	sb := strings.Builder{}
	for i, tok := range tokens {
		if i > 0 && tokens[i-1].offset+len(tokens[i-1].text) < tok.offset {
			sb.WriteByte(' ')
		}
		sb.WriteString(tok.text)
	}
	return sb.String()
}

func (p *parser) skipVisibility() error {
	if !p.acceptKeyword("pub") {
		return nil
	}
	if p.peek().isPunct("(") {
		switch next := p.peekAt(1); {
		case next.isKeyword("crate"), next.isKeyword("super"), next.isKeyword("self"), next.isKeyword("in"):
			_, err := p.group("(", ")")
			return err
		}
	}
	return nil
}

// group consumes balanced group opened at current token, returns enclosed tokens
func (p *parser) group(open, close string) ([]*token, error) {
	if err := p.expectPunct(open); err != nil {
		return nil, err
	}
	start := p.index
	depth := 1
	for tok := p.next(); tok != nil; tok = p.next() {
		switch {
		case isOpening(tok):
			depth++
		case isClosing(tok):
			depth--
			if depth == 0 {
				if !tok.isPunct(close) {
					return nil, newError(tok.pos, nil, "expected '%v', found '%v'", close, tok.text)
				}
				return p.tokens[start : p.index-1], nil
			}
		}
	}
	return nil, p.errorf("expected '%v', found end of input", close)
}

func isOpening(tok *token) bool {
	return tok.isPunct("(") || tok.isPunct("[") || tok.isPunct("{")
}

func isClosing(tok *token) bool {
	return tok.isPunct(")") || tok.isPunct("]") || tok.isPunct("}")
}

// skipUntil advances to the top level punctuation without consuming it
func (p *parser) skipUntil(stops ...string) error {
	for tok := p.peek(); tok != nil; tok = p.peek() {
		for _, stop := range stops {
			if tok.isPunct(stop) {
				return nil
			}
		}
		switch {
		case isOpening(tok):
			if _, err := p.group(tok.text, closingOf(tok.text)); err != nil {
				return err
			}
			continue
		case isClosing(tok):
			return p.errorf("unexpected '%v'", tok.text)
		}
		p.index++
	}
	return p.errorf("expected '%v', found end of input", strings.Join(stops, "' or '"))
}

func closingOf(open string) string {
	switch open {
	case "(":
		return ")"
	case "[":
		return "]"
	}
	return "}"
}

// skipItem skips an item the engine ignores; untilSemicolon items end with ';', others with a brace block
func (p *parser) skipItem(node decl.Node, kind string, untilSemicolon bool) (decl.Item, error) {
	p.next()
	switch kind {
	case "macro":
		p.acceptPunct("!")
	case "static":
		p.acceptKeyword("mut")
	}
	name := ""
	if kind == "use" {
		start := p.index
		if err := p.skipUntil(";"); err != nil {
			return nil, err
		}
		name = joinTokens(p.tokens[start:p.index])
	} else if tok := p.peek(); tok != nil && tok.code == identifierToken {
		name = tok.text
	}
	if untilSemicolon {
		if err := p.skipUntil(";"); err != nil {
			return nil, err
		}
		p.index++
		return &decl.Other{Node: node, Kind: kind, Name: name}, nil
	}
	if err := p.skipUntil("{", ";"); err != nil {
		return nil, err
	}
	if !p.acceptPunct(";") {
		if _, err := p.group("{", "}"); err != nil {
			return nil, err
		}
	}
	return &decl.Other{Node: node, Kind: kind, Name: name}, nil
}

// skipMacro skips item position macro invocation: path!(..); path![..]; path!{..}
func (p *parser) skipMacro(node decl.Node) (decl.Item, error) {
	start := p.index
	for !p.atEnd() && !p.peek().isPunct("!") {
		p.index++
	}
	name := joinTokens(p.tokens[start:p.index])
	if err := p.expectPunct("!"); err != nil {
		return nil, err
	}
	tok := p.peek()
	if tok == nil || !isOpening(tok) {
		return nil, p.errorf("expected macro delimiter, found %v", p.found())
	}
	if _, err := p.group(tok.text, closingOf(tok.text)); err != nil {
		return nil, err
	}
	if tok.text != "{" {
		if err := p.expectPunct(";"); err != nil {
			return nil, err
		}
	}
	return &decl.Other{Node: node, Kind: "macro", Name: name}, nil
}

func (p *parser) parseFunction(node decl.Node) (decl.Item, error) {
	fn := &decl.Function{Node: node}
	for !p.acceptKeyword("fn") {
		tok := p.next()
		if tok.isKeyword("extern") {
			fn.Extern = true
			if abi := p.peek(); abi != nil && abi.code == stringToken {
				p.index++
				fn.ABI = literalText(abi)
			}
		}
	}
	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	fn.Name = name.text
	if _, err = p.parseGenerics(); err != nil {
		return nil, err
	}
	if fn.Params, err = p.parseParams(); err != nil {
		return nil, err
	}
	if p.acceptPunct("->") {
		if fn.Result, err = p.parseType(); err != nil {
			return nil, err
		}
	}
	if err = p.skipWhere(); err != nil {
		return nil, err
	}
	if p.acceptPunct(";") {
		return fn, nil
	}
	if _, err = p.group("{", "}"); err != nil {
		return nil, err
	}
	return fn, nil
}

func (p *parser) parseParams() ([]*decl.Param, error) {
	if err := p.expectPunct("("); err != nil {
		return nil, err
	}
	var result []*decl.Param
	for !p.acceptPunct(")") {
		if _, err := p.parseAttributes(); err != nil {
			return nil, err
		}
		param, err := p.parseParam()
		if err != nil {
			return nil, err
		}
		result = append(result, param)
		if !p.acceptPunct(",") && !p.peek().isPunct(")") {
			return nil, p.errorf("expected ',' or ')', found %v", p.found())
		}
	}
	return result, nil
}

func (p *parser) parseParam() (*decl.Param, error) {
	param := &decl.Param{Position: p.position()}
	start := p.index
	if err := p.skipUntil(":", ",", ")"); err != nil {
		return nil, err
	}
	pattern := p.tokens[start:p.index]
	param.Pattern = joinTokens(pattern)
	for _, tok := range pattern {
		if tok.isKeyword("self") {
			param.Receiver = true
		}
	}
	if !p.acceptPunct(":") {
		if !param.Receiver {
			return nil, p.errorf("expected ':', found %v", p.found())
		}
		return param, nil
	}
	switch {
	case len(pattern) == 1 && pattern[0].code == identifierToken:
		param.Name = pattern[0].text
	case len(pattern) == 2 && pattern[0].isKeyword("mut") && pattern[1].code == identifierToken:
		param.Name = pattern[1].text
	}
	if param.Name == "_" {
		param.Name = ""
	}
	var err error
	param.Type, err = p.parseType()
	return param, err
}

// parseGenerics parses optional generic parameter list, bounds and defaults are skipped
func (p *parser) parseGenerics() ([]*decl.GenericParam, error) {
	if !p.acceptPunct("<") {
		return nil, nil
	}
	var result []*decl.GenericParam
	for !p.acceptPunct(">") {
		tok := p.next()
		switch {
		case tok == nil:
			return nil, p.errorf("expected '>', found end of input")
		case tok.code == lifetimeToken:
			result = append(result, &decl.GenericParam{Kind: decl.LifetimeParam, Name: strings.TrimPrefix(tok.text, "'")})
		case tok.isKeyword("const"):
			name, err := p.expectIdentifier()
			if err != nil {
				return nil, err
			}
			result = append(result, &decl.GenericParam{Kind: decl.ConstParam, Name: name.text})
		case tok.code == identifierToken:
			result = append(result, &decl.GenericParam{Kind: decl.TypeParam, Name: tok.text})
		default:
			return nil, newError(tok.pos, nil, "expected generic parameter, found '%v'", tok.text)
		}
		if err := p.skipAngled(); err != nil {
			return nil, err
		}
		p.acceptPunct(",")
	}
	return result, nil
}

// skipAngled skips bounds and defaults up to the top level ',' or '>'
func (p *parser) skipAngled() error {
	depth := 0
	for tok := p.peek(); tok != nil; tok = p.peek() {
		switch {
		case tok.isPunct("<"):
			depth++
		case tok.isPunct(">"):
			if depth == 0 {
				return nil
			}
			depth--
		case tok.isPunct(",") && depth == 0:
			return nil
		case isOpening(tok):
			if _, err := p.group(tok.text, closingOf(tok.text)); err != nil {
				return err
			}
			continue
		case isClosing(tok):
			return p.errorf("unexpected '%v'", tok.text)
		}
		p.index++
	}
	return p.errorf("expected '>', found end of input")
}

func (p *parser) skipWhere() error {
	if !p.acceptKeyword("where") {
		return nil
	}
	return p.skipUntil("{", ";")
}

func (p *parser) parseEnum(node decl.Node) (decl.Item, error) {
	p.next()
	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	enum := &decl.Enum{Node: node, Name: name.text}
	if enum.Generics, err = p.parseGenerics(); err != nil {
		return nil, err
	}
	if err = p.skipWhere(); err != nil {
		return nil, err
	}
	if err = p.expectPunct("{"); err != nil {
		return nil, err
	}
	for !p.acceptPunct("}") {
		variant, err := p.parseVariant()
		if err != nil {
			return nil, err
		}
		enum.Variants = append(enum.Variants, variant)
		if !p.acceptPunct(",") && !p.peek().isPunct("}") {
			return nil, p.errorf("expected ',' or '}', found %v", p.found())
		}
	}
	return enum, nil
}

func (p *parser) parseVariant() (*decl.Variant, error) {
	pos := p.position()
	attrs, err := p.parseAttributes()
	if err != nil {
		return nil, err
	}
	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	variant := &decl.Variant{Node: decl.Node{Position: pos, Attrs: attrs}, Name: name.text}
	switch {
	case p.peek().isPunct("("):
		variant.Fields, err = p.parseTupleFields()
	case p.peek().isPunct("{"):
		variant.Fields, err = p.parseNamedFields()
	}
	if err != nil {
		return nil, err
	}
	if p.acceptPunct("=") {
		discriminant := &decl.Discriminant{Position: p.position()}
		start := p.index
		if err = p.skipUntil(",", "}"); err != nil {
			return nil, err
		}
		expr := p.tokens[start:p.index]
		if len(expr) == 0 {
			return nil, p.errorf("expected discriminant, found %v", p.found())
		}
		discriminant.Text = joinTokens(expr)
		if discriminant.Literal = isIntegerLiteral(expr); discriminant.Literal && len(expr) == 2 {
			discriminant.Text = "-" + expr[1].text
		}
		variant.Discriminant = discriminant
	}
	return variant, nil
}

// isIntegerLiteral returns true for [-]integer tokens
func isIntegerLiteral(expr []*token) bool {
	switch len(expr) {
	case 1:
	case 2:
		if !expr[0].isPunct("-") {
			return false
		}
	default:
		return false
	}
	number := expr[len(expr)-1]
	if number.code != numberToken || strings.Contains(number.text, ".") {
		return false
	}
	text := strings.ToLower(number.text)
	if strings.HasPrefix(text, "0x") {
		return true
	}
	return !strings.ContainsAny(text, "ef")
}

func (p *parser) parseStruct(node decl.Node) (decl.Item, error) {
	p.next()
	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	aStruct := &decl.Struct{Node: node, Name: name.text}
	if aStruct.Generics, err = p.parseGenerics(); err != nil {
		return nil, err
	}
	switch {
	case p.peek().isPunct("("):
		aStruct.Tuple = true
		if aStruct.Fields, err = p.parseTupleFields(); err != nil {
			return nil, err
		}
		if err = p.skipWhere(); err != nil {
			return nil, err
		}
		return aStruct, p.expectPunct(";")
	case p.acceptPunct(";"):
		return aStruct, nil
	}
	if err = p.skipWhere(); err != nil {
		return nil, err
	}
	if p.acceptPunct(";") {
		return aStruct, nil
	}
	aStruct.Fields, err = p.parseNamedFields()
	return aStruct, err
}

func (p *parser) parseNamedFields() ([]*decl.Field, error) {
	if err := p.expectPunct("{"); err != nil {
		return nil, err
	}
	var result []*decl.Field
	for !p.acceptPunct("}") {
		pos := p.position()
		attrs, err := p.parseAttributes()
		if err != nil {
			return nil, err
		}
		if err = p.skipVisibility(); err != nil {
			return nil, err
		}
		name, err := p.expectIdentifier()
		if err != nil {
			return nil, err
		}
		if err = p.expectPunct(":"); err != nil {
			return nil, err
		}
		fieldType, err := p.parseType()
		if err != nil {
			return nil, err
		}
		result = append(result, &decl.Field{Node: decl.Node{Position: pos, Attrs: attrs}, Name: name.text, Type: fieldType})
		if !p.acceptPunct(",") && !p.peek().isPunct("}") {
			return nil, p.errorf("expected ',' or '}', found %v", p.found())
		}
	}
	return result, nil
}

func (p *parser) parseTupleFields() ([]*decl.Field, error) {
	if err := p.expectPunct("("); err != nil {
		return nil, err
	}
	var result []*decl.Field
	for !p.acceptPunct(")") {
		pos := p.position()
		attrs, err := p.parseAttributes()
		if err != nil {
			return nil, err
		}
		if err = p.skipVisibility(); err != nil {
			return nil, err
		}
		fieldType, err := p.parseType()
		if err != nil {
			return nil, err
		}
		result = append(result, &decl.Field{Node: decl.Node{Position: pos, Attrs: attrs}, Type: fieldType})
		if !p.acceptPunct(",") && !p.peek().isPunct(")") {
			return nil, p.errorf("expected ',' or ')', found %v", p.found())
		}
	}
	return result, nil
}

func (p *parser) parseTypeAlias(node decl.Node) (decl.Item, error) {
	p.next()
	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	alias := &decl.TypeAlias{Node: node, Name: name.text}
	if alias.Generics, err = p.parseGenerics(); err != nil {
		return nil, err
	}
	if !p.acceptPunct("=") {
		if err = p.skipUntil(";"); err != nil {
			return nil, err
		}
		p.index++
		return &decl.Other{Node: node, Kind: "type", Name: name.text}, nil
	}
	if alias.Type, err = p.parseType(); err != nil {
		return nil, err
	}
	return alias, p.expectPunct(";")
}

func (p *parser) parseModule(node decl.Node) (decl.Item, error) {
	p.next()
	name, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	module := &decl.Module{Node: node, Name: name.text}
	if p.acceptPunct(";") {
		return module, nil
	}
	if err = p.expectPunct("{"); err != nil {
		return nil, err
	}
	module.Inline = true
	module.Items, err = p.parseItems(true)
	return module, err
}
