// Package doc extracts Rust doc comments and renders them as C# XML documentation.
package doc

import (
	"strings"

	"github.com/viant/csbind/decl"
	"github.com/viant/csbind/emitter"
)

// Extract returns trimmed doc lines attached to a declaration
func Extract(attrs decl.Attributes) []string {
	var result []string
	for _, attr := range attrs.ByName(decl.DocAttribute) {
		if !attr.HasValue {
			continue
		}
		for _, line := range strings.Split(attr.Value, "\n") {
			result = append(result, strings.TrimSpace(line))
		}
	}
	return result
}

// WriteSummary writes <summary> block, nothing is written for undocumented declarations
func WriteSummary(builder *emitter.Builder, lines []string) {
	if len(lines) == 0 {
		return
	}
	builder.WriteLine("/// <summary>")
	for _, line := range lines {
		WriteLine(builder, line)
	}
	builder.WriteLine("/// </summary>")
}

// WriteParam writes <param> line
func WriteParam(builder *emitter.Builder, name, remark string) {
	WriteLine(builder, `<param name="`+name+`">`+remark+`</param>`)
}

// WriteReturns writes <returns> line
func WriteReturns(builder *emitter.Builder, remark string) {
	WriteLine(builder, "<returns>"+remark+"</returns>")
}

// WriteRemarks writes <remarks> line
func WriteRemarks(builder *emitter.Builder, remark string) {
	WriteLine(builder, "<remarks>"+remark+"</remarks>")
}

// WriteLine writes single documentation comment line
func WriteLine(builder *emitter.Builder, text string) {
	if text == "" {
		builder.WriteLine("///")
		return
	}
	builder.WriteLine("/// " + text)
}
