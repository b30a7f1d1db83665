package parse

import (
	"unicode/utf8"

	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	whitespaceToken = iota
	docCommentToken
	lineCommentToken
	blockCommentToken
	rawStringToken
	stringToken
	charToken
	lifetimeToken
	identifierToken
	numberToken
	punctToken
)

var whitespaceMatcher = parsly.NewToken(whitespaceToken, "Whitespace", matcher.NewWhiteSpace())
var docCommentMatcher = parsly.NewToken(docCommentToken, "DocComment", &docCommentMatch{})
var lineCommentMatcher = parsly.NewToken(lineCommentToken, "LineComment", &lineCommentMatch{})
var blockCommentMatcher = parsly.NewToken(blockCommentToken, "BlockComment", matcher.NewSeqBlock("/*", "*/"))
var rawStringMatcher = parsly.NewToken(rawStringToken, "RawString", &rawStringMatch{})
var stringMatcher = parsly.NewToken(stringToken, "String", matcher.NewBlock('"', '"', '\\'))
var charMatcher = parsly.NewToken(charToken, "Char", &charMatch{})
var lifetimeMatcher = parsly.NewToken(lifetimeToken, "Lifetime", &lifetimeMatch{})
var identifierMatcher = parsly.NewToken(identifierToken, "Identifier", &identifierMatch{})
var numberMatcher = parsly.NewToken(numberToken, "Number", &numberMatch{})
var punctMatcher = parsly.NewToken(punctToken, "Punctuation", &punctMatch{})

// lexicon lists matchers in priority order
var lexicon = []*parsly.Token{
	docCommentMatcher,
	lineCommentMatcher,
	blockCommentMatcher,
	rawStringMatcher,
	stringMatcher,
	charMatcher,
	lifetimeMatcher,
	identifierMatcher,
	numberMatcher,
	punctMatcher,
}

// docCommentMatch matches outer doc comment: `///` but not `////`
type docCommentMatch struct{}

func (d *docCommentMatch) Match(cursor *parsly.Cursor) int {
	input, pos := cursor.Input, cursor.Pos
	if pos+3 > cursor.InputSize || input[pos] != '/' || input[pos+1] != '/' || input[pos+2] != '/' {
		return 0
	}
	if pos+3 < cursor.InputSize && input[pos+3] == '/' {
		return 0
	}
	return lineLength(cursor)
}

type lineCommentMatch struct{}

func (l *lineCommentMatch) Match(cursor *parsly.Cursor) int {
	input, pos := cursor.Input, cursor.Pos
	if pos+2 > cursor.InputSize || input[pos] != '/' || input[pos+1] != '/' {
		return 0
	}
	return lineLength(cursor)
}

func lineLength(cursor *parsly.Cursor) int {
	pos := cursor.Pos
	for pos < cursor.InputSize && cursor.Input[pos] != '\n' {
		pos++
	}
	end := pos
	if end > cursor.Pos && cursor.Input[end-1] == '\r' {
		end--
	}
	return end - cursor.Pos
}

// rawStringMatch matches r"..", r#".."#, br".."
type rawStringMatch struct{}

func (r *rawStringMatch) Match(cursor *parsly.Cursor) int {
	input, pos := cursor.Input, cursor.Pos
	if pos < cursor.InputSize && input[pos] == 'b' {
		pos++
	}
	if pos >= cursor.InputSize || input[pos] != 'r' {
		return 0
	}
	pos++
	hashes := 0
	for pos < cursor.InputSize && input[pos] == '#' {
		hashes++
		pos++
	}
	if pos >= cursor.InputSize || input[pos] != '"' {
		return 0
	}
	pos++
	for pos < cursor.InputSize {
		if input[pos] == '"' {
			count := 0
			for pos+1+count < cursor.InputSize && count < hashes && input[pos+1+count] == '#' {
				count++
			}
			if count == hashes {
				return pos + 1 + hashes - cursor.Pos
			}
		}
		pos++
	}
	return 0
}

// charMatch matches character literal: 'a', '\n', '\u{1F600}'
type charMatch struct{}

func (c *charMatch) Match(cursor *parsly.Cursor) int {
	input, pos := cursor.Input, cursor.Pos
	if pos+2 >= cursor.InputSize || input[pos] != '\'' {
		return 0
	}
	pos++
	if input[pos] == '\\' {
		for end := pos + 1; end < cursor.InputSize && end-pos < 12; end++ {
			if input[end] == '\'' && end > pos+1 {
				return end + 1 - cursor.Pos
			}
		}
		return 0
	}
	_, width := utf8.DecodeRune(input[pos:cursor.InputSize])
	pos += width
	if pos < cursor.InputSize && input[pos] == '\'' {
		return pos + 1 - cursor.Pos
	}
	return 0
}

// lifetimeMatch matches 'ident
type lifetimeMatch struct{}

func (l *lifetimeMatch) Match(cursor *parsly.Cursor) int {
	if cursor.Pos+1 >= cursor.InputSize || cursor.Input[cursor.Pos] != '\'' {
		return 0
	}
	size := identifierLength(cursor.Input[:cursor.InputSize], cursor.Pos+1)
	if size == 0 {
		return 0
	}
	return size + 1
}

type identifierMatch struct{}

func (i *identifierMatch) Match(cursor *parsly.Cursor) int {
	return identifierLength(cursor.Input[:cursor.InputSize], cursor.Pos)
}

func identifierLength(input []byte, pos int) int {
	if pos >= len(input) || !isIdentifierStart(input[pos]) {
		return 0
	}
	end := pos + 1
	for end < len(input) && isIdentifierPart(input[end]) {
		end++
	}
	return end - pos
}

func isIdentifierStart(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_' || b >= utf8.RuneSelf
}

func isIdentifierPart(b byte) bool {
	return isIdentifierStart(b) || isDigit(b)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// numberMatch matches integer and float literals including suffixes: 0x1F, 1_000u32, 1.5e3f64
type numberMatch struct{}

func (n *numberMatch) Match(cursor *parsly.Cursor) int {
	input, pos := cursor.Input, cursor.Pos
	if pos >= cursor.InputSize || !isDigit(input[pos]) {
		return 0
	}
	end := pos + 1
	for end < cursor.InputSize {
		b := input[end]
		switch {
		case isIdentifierPart(b):
		case b == '.' && end+1 < cursor.InputSize && isDigit(input[end+1]):
		default:
			return end - pos
		}
		end++
	}
	return end - pos
}

var multiCharPunct = []string{"::", "->", "=>"}

const singleCharPunct = "!#$%&*+,-./:;<=>?@[]^{|}~()"

// punctMatch matches punctuation; angle brackets are always single so nested generics close one by one
type punctMatch struct{}

func (p *punctMatch) Match(cursor *parsly.Cursor) int {
	input, pos := cursor.Input, cursor.Pos
	if pos >= cursor.InputSize {
		return 0
	}
	for _, candidate := range multiCharPunct {
		if pos+len(candidate) <= cursor.InputSize && string(input[pos:pos+len(candidate)]) == candidate {
			return len(candidate)
		}
	}
	for i := 0; i < len(singleCharPunct); i++ {
		if singleCharPunct[i] == input[pos] {
			return 1
		}
	}
	return 0
}
