package parse

import (
	"sort"

	"github.com/viant/csbind/shared"
	"github.com/viant/parsly"
)

type token struct {
	code   int
	text   string
	offset int
	pos    shared.Position
}

func (t *token) is(code int, text string) bool {
	return t != nil && t.code == code && t.text == text
}

func (t *token) isPunct(text string) bool {
	return t.is(punctToken, text)
}

func (t *token) isKeyword(text string) bool {
	return t.is(identifierToken, text)
}

// lines maps byte offsets to 1-based line and column
type lines []int

func newLines(source []byte) lines {
	result := lines{0}
	for i, b := range source {
		if b == '\n' {
			result = append(result, i+1)
		}
	}
	return result
}

func (l lines) position(offset int) shared.Position {
	index := sort.SearchInts(l, offset+1) - 1
	if index < 0 {
		index = 0
	}
	return shared.Position{Line: index + 1, Column: offset - l[index] + 1}
}

// tokenize splits source into tokens, comments other than outer doc comments are dropped
func tokenize(source []byte) ([]*token, error) {
	positions := newLines(source)
	cursor := parsly.NewCursor("", source, 0)
	var result []*token
	for cursor.Pos < cursor.InputSize {
		matched := cursor.MatchAfterOptional(whitespaceMatcher, lexicon...)
		switch matched.Code {
		case parsly.EOF:
			return result, nil
		case parsly.Invalid:
			offset := cursor.Pos
			for offset < len(source) && (source[offset] == ' ' || source[offset] == '\t' || source[offset] == '\r' || source[offset] == '\n') {
				offset++
			}
			if offset >= len(source) {
				return result, nil
			}
			return nil, newError(positions.position(offset), cursor.NewError(lexicon...), "unexpected character %q", source[offset])
		case lineCommentToken, blockCommentToken:
			continue
		}
		result = append(result, &token{
			code:   matched.Code,
			text:   matched.Text(cursor),
			offset: matched.Offset,
			pos:    positions.position(matched.Offset),
		})
	}
	return result, nil
}
