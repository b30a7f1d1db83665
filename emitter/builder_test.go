package emitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilder_String(t *testing.T) {
	var testCases = []struct {
		description string
		build       func(b *Builder)
		expect      string
	}{
		{
			description: "nested blocks",
			build: func(b *Builder) {
				b.OpenBlock("namespace foo")
				b.OpenBlock("internal static class bar")
				b.WriteLine("/// <returns>void</returns>")
				b.CloseBlock()
				b.CloseBlock()
			},
			expect: "namespace foo\n{\n    internal static class bar\n    {\n        /// <returns>void</returns>\n    }\n}\n",
		},
		{
			description: "fragments share one indentation",
			build: func(b *Builder) {
				b.Indent()
				b.WriteString("Foo(")
				b.WriteString("byte a")
				b.WriteString(");")
				b.NewLine()
			},
			expect: "    Foo(byte a);\n",
		},
		{
			description: "blank line is not indented",
			build: func(b *Builder) {
				b.Indent()
				b.WriteLine("a")
				b.NewLine()
				b.WriteLine("b")
			},
			expect: "    a\n\n    b\n",
		},
		{
			description: "dedent below zero",
			build: func(b *Builder) {
				b.Dedent()
				b.WriteLine("x")
			},
			expect: "x\n",
		},
	}

	for _, testCase := range testCases {
		builder := NewBuilder()
		testCase.build(builder)
		assert.Equal(t, testCase.expect, builder.String(), testCase.description)
	}
}
