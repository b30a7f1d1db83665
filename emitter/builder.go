package emitter

import (
	"strings"
)

const indentUnit = "    "

// Builder accumulates generated source with indentation
type Builder struct {
	sb     strings.Builder
	indent int
	inLine bool
}

// NewBuilder creates a builder
func NewBuilder() *Builder {
	return &Builder{}
}

// Indent increases indentation level
func (b *Builder) Indent() {
	b.indent++
}

// Dedent decreases indentation level
func (b *Builder) Dedent() {
	if b.indent > 0 {
		b.indent--
	}
}

// Level returns current indentation level
func (b *Builder) Level() int {
	return b.indent
}

// WriteLine writes indented line terminated with a new line
func (b *Builder) WriteLine(line string) {
	b.WriteString(line)
	b.NewLine()
}

// WriteString writes text, indentation is applied at the beginning of a line
func (b *Builder) WriteString(text string) {
	if !b.inLine {
		for i := 0; i < b.indent; i++ {
			b.sb.WriteString(indentUnit)
		}
		b.inLine = true
	}
	b.sb.WriteString(text)
}

// NewLine terminates current line; an empty line is written without indentation
func (b *Builder) NewLine() {
	b.sb.WriteByte('\n')
	b.inLine = false
}

// OpenBlock writes header line, an opening brace and indents
func (b *Builder) OpenBlock(header string) {
	b.WriteLine(header)
	b.WriteLine("{")
	b.Indent()
}

// CloseBlock dedents and writes a closing brace
func (b *Builder) CloseBlock() {
	b.Dedent()
	b.WriteLine("}")
}

// String returns accumulated source
func (b *Builder) String() string {
	return b.sb.String()
}
