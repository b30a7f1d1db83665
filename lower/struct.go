package lower

import (
	"strings"

	"github.com/viant/csbind/decl"
	"github.com/viant/csbind/doc"
	"github.com/viant/csbind/naming"
	"github.com/viant/csbind/resolver"
	"github.com/viant/csbind/shared"
)

const (
	kindStruct      = "struct"
	structLayoutTag = "[StructLayout(LayoutKind.Sequential, CharSet = CharSet.Unicode)]"
)

type structField struct {
	name string
	typ  *resolver.TypeName
}

func (p *pass) lowerStruct(aStruct *decl.Struct) (*outcome, error) {
	if !aStruct.Attrs.HasRepr(reprC) {
		return skipped(kindStruct, aStruct.Name, "missing repr(C)"), nil
	}
	typeParams := decl.TypeParams(aStruct.Generics)
	generics := map[string]bool{}
	for _, name := range typeParams {
		generics[name] = true
	}

	builder := p.builder
	doc.WriteSummary(builder, doc.Extract(aStruct.Attrs))
	builder.WriteLine(structLayoutTag)
	header := "public struct " + aStruct.Name
	if len(typeParams) > 0 {
		header += "<" + strings.Join(typeParams, ", ") + ">"
	}
	builder.OpenBlock(header)

	fields := make([]*structField, 0, len(aStruct.Fields))
	for _, field := range aStruct.Fields {
		if field.Name == "" {
			return nil, shared.NewUnsupportedError("tuple struct", field.Position, "tuple struct fields are not supported: %v", aStruct.Name)
		}
		fieldType, err := p.fieldType(field, generics)
		if err != nil {
			return nil, err
		}
		doc.WriteSummary(builder, doc.Extract(field.Attrs))
		doc.WriteRemarks(builder, fieldType.Native)
		name := naming.Member(field.Name)
		if p.config.Version >= resolver.InitVersion {
			builder.WriteLine("public " + fieldType.String() + " " + name + " { get; init; }")
		} else {
			builder.WriteLine("public readonly " + fieldType.String() + " " + name + ";")
		}
		fields = append(fields, &structField{name: name, typ: fieldType})
	}
	builder.NewLine()
	p.writeConstructor(aStruct.Name, fields)
	builder.CloseBlock()
	builder.NewLine()
	p.register(aStruct.Name)
	return &outcome{kind: kindStruct, name: aStruct.Name, native: aStruct.Name}, nil
}

// fieldType keeps a bare reference to a struct type parameter verbatim
func (p *pass) fieldType(field *decl.Field, generics map[string]bool) (*resolver.TypeName, error) {
	if path, ok := field.Type.(*decl.Path); ok {
		if ident, ok := path.Ident(); ok && generics[ident] {
			return resolver.NewTypeName(ident, ident), nil
		}
	}
	return p.resolver.Resolve(field.Type)
}

func (p *pass) writeConstructor(name string, fields []*structField) {
	builder := p.builder
	params := make([]string, 0, len(fields))
	for _, field := range fields {
		params = append(params, field.typ.String()+" "+naming.Decapitalize(field.name))
	}
	builder.OpenBlock("public " + name + "(" + strings.Join(params, ", ") + ")")
	for _, field := range fields {
		builder.WriteLine(field.name + " = " + naming.Decapitalize(field.name) + ";")
	}
	builder.CloseBlock()
}
