package lower

import (
	"strconv"
	"strings"

	"github.com/viant/csbind/decl"
	"github.com/viant/csbind/doc"
	"github.com/viant/csbind/resolver"
	"github.com/viant/csbind/shared"
)

const (
	kindEnum = "enum"
	reprC    = "C"
)

func (p *pass) lowerEnum(enum *decl.Enum) (*outcome, error) {
	width, err := p.enumWidth(enum)
	if err != nil {
		return nil, err
	}
	if width == nil {
		return skipped(kindEnum, enum.Name, "missing repr width"), nil
	}
	builder := p.builder
	doc.WriteSummary(builder, doc.Extract(enum.Attrs))
	builder.OpenBlock("public enum " + enum.Name + " : " + width.Managed)
	for _, variant := range enum.Variants {
		if len(variant.Fields) > 0 {
			return nil, shared.NewUnsupportedError("enum variant fields", variant.Position, "enum with values with fields is not supported: %v::%v", enum.Name, variant.Name)
		}
		doc.WriteSummary(builder, doc.Extract(variant.Attrs))
		line := variant.Name
		if variant.Discriminant != nil {
			value, err := discriminantValue(variant.Discriminant)
			if err != nil {
				return nil, err
			}
			line += " = " + value
		}
		builder.WriteLine(line + ",")
	}
	builder.CloseBlock()
	builder.NewLine()
	p.register(enum.Name)
	return &outcome{kind: kindEnum, name: enum.Name, native: enum.Name}, nil
}

// enumWidth returns enum underlying type, nil if enum does not declare width
func (p *pass) enumWidth(enum *decl.Enum) (*resolver.TypeName, error) {
	var width *resolver.TypeName
	hasC := false
	for _, attr := range enum.Attrs.ByName(decl.ReprAttribute) {
		for _, arg := range attr.Args {
			switch {
			case arg == reprC:
				hasC = true
			case resolver.IsEnumBase(arg):
				typeName, _, err := resolver.Primitive(arg, p.config.Version, attr.Position)
				if err != nil {
					return nil, err
				}
				width = typeName
			case resolver.IsIntegerWidth(arg):
				return nil, shared.NewUnsupportedError("enum representation", attr.Position, "repr(%v) has no matching C# enum base type, use repr(u*) or repr(i*) up to 64 bits", arg)
			}
		}
	}
	if width == nil && hasC {
		return nil, shared.NewUnsupportedError("enum representation", enum.Position, "the size of a repr(C) enum is not specifically defined, use repr(u*) to define an actual size")
	}
	return width, nil
}

// discriminantValue returns base 10 digits of an integer literal
func discriminantValue(discriminant *decl.Discriminant) (string, error) {
	if !discriminant.Literal {
		return "", shared.NewUnsupportedError("discriminant", discriminant.Position, "only integer literal discriminants are supported: %v", discriminant.Text)
	}
	text := strings.ReplaceAll(strings.TrimSpace(discriminant.Text), "_", "")
	sign := ""
	if strings.HasPrefix(text, "-") {
		sign = "-"
		text = strings.TrimSpace(text[1:])
	}
	base := 10
	if len(text) > 2 && text[0] == '0' {
		switch text[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 10 {
			text = text[2:]
		}
	}
	if index := strings.IndexAny(text, "ui"); index != -1 {
		text = text[:index]
	}
	value, err := strconv.ParseUint(text, base, 64)
	if err != nil {
		return "", shared.NewUnsupportedError("discriminant", discriminant.Position, "invalid integer discriminant: %v", discriminant.Text)
	}
	if value == 0 {
		sign = ""
	}
	return sign + strconv.FormatUint(value, 10), nil
}
