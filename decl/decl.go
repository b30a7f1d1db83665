// Package decl defines the declaration tree consumed by the lowering engine.
//
// The tree models the top-level item surface of a Rust module: functions, enums, structs,
// type aliases and nested modules. Item and Type are closed variant sets, every variant is declared
// in this package.
package decl

import (
	"strings"

	"github.com/viant/csbind/shared"
)

type (
	//File represents parsed source module
	File struct {
		Items []Item
	}

	//Item represents top level declaration
	Item interface {
		Pos() shared.Position
		item()
	}

	//Node carries declaration position and attributes
	Node struct {
		Position shared.Position
		Attrs    Attributes
	}

	//Function represents fn item
	Function struct {
		Node
		Name   string
		Extern bool
		ABI    string
		Params []*Param
		Result Type //nil for default unit result
	}

	//Param represents function input
	Param struct {
		Position shared.Position
		Receiver bool
		Name     string //identifier pattern, empty for any other pattern
		Pattern  string //raw pattern text
		Type     Type
	}

	//Enum represents enum item
	Enum struct {
		Node
		Name     string
		Generics []*GenericParam
		Variants []*Variant
	}

	//Variant represents enum variant
	Variant struct {
		Node
		Name         string
		Fields       []*Field
		Discriminant *Discriminant
	}

	//Discriminant represents explicit variant value
	Discriminant struct {
		Position shared.Position
		Text     string
		Literal  bool //true for (optionally negated) integer literal
	}

	//Struct represents struct item
	Struct struct {
		Node
		Name     string
		Generics []*GenericParam
		Fields   []*Field
		Tuple    bool
	}

	//Field represents struct or variant field
	Field struct {
		Node
		Name string //empty for tuple fields
		Type Type
	}

	//TypeAlias represents type item
	TypeAlias struct {
		Node
		Name     string
		Generics []*GenericParam
		Type     Type
	}

	//Module represents mod item
	Module struct {
		Node
		Name  string
		Items []Item
		//Inline is false for `mod name;` declarations
		Inline bool
	}

	//Other represents any item the engine ignores (use, const, static, impl, trait ...)
	Other struct {
		Node
		Kind string
		Name string
	}

	//GenericParam represents declared generic parameter
	GenericParam struct {
		Kind GenericKind
		Name string
	}

	//GenericKind represents generic parameter kind
	GenericKind int
)

const (
	TypeParam GenericKind = iota
	LifetimeParam
	ConstParam
)

func (n *Node) Pos() shared.Position { return n.Position }

func (*Function) item()  {}
func (*Enum) item()      {}
func (*Struct) item()    {}
func (*TypeAlias) item() {}
func (*Module) item()    {}
func (*Other) item()     {}

// IsExternC returns true for `extern "C"` functions
func (f *Function) IsExternC() bool {
	return f.Extern && f.ABI == "C"
}

// TypeParams returns declared type parameter names in declaration order
func TypeParams(params []*GenericParam) []string {
	var result []string
	for _, param := range params {
		if param.Kind == TypeParam {
			result = append(result, param.Name)
		}
	}
	return result
}

// Walk visits items depth first, descending into inline modules
func Walk(items []Item, visit func(item Item) error) error {
	for _, item := range items {
		if err := visit(item); err != nil {
			return err
		}
		if module, ok := item.(*Module); ok {
			if err := Walk(module.Items, visit); err != nil {
				return err
			}
		}
	}
	return nil
}

// Names returns declared item names, used by diagnostics
func (f *File) Names() []string {
	var result []string
	_ = Walk(f.Items, func(item Item) error {
		switch actual := item.(type) {
		case *Function:
			result = append(result, actual.Name)
		case *Enum:
			result = append(result, actual.Name)
		case *Struct:
			result = append(result, actual.Name)
		case *TypeAlias:
			result = append(result, actual.Name)
		}
		return nil
	})
	return result
}

func (g *GenericParam) String() string {
	switch g.Kind {
	case LifetimeParam:
		return "'" + strings.TrimPrefix(g.Name, "'")
	case ConstParam:
		return "const " + g.Name
	}
	return g.Name
}
