package decl

import "github.com/viant/csbind/shared"

const (
	DocAttribute  = "doc"
	ReprAttribute = "repr"
)

type (
	//Attribute represents outer attribute, doc comments are normalised to doc = "..." attributes
	Attribute struct {
		Position shared.Position
		Name     string
		Args     []string //list form: repr(C, u8)
		Value    string   //name value form: doc = "text"
		HasValue bool
	}

	//Attributes represents attribute list
	Attributes []*Attribute
)

// NewDoc creates doc attribute
func NewDoc(text string, pos shared.Position) *Attribute {
	return &Attribute{Name: DocAttribute, Value: text, HasValue: true, Position: pos}
}

// NewRepr creates repr attribute
func NewRepr(pos shared.Position, args ...string) *Attribute {
	return &Attribute{Name: ReprAttribute, Args: args, Position: pos}
}

// ByName returns attributes with matching name
func (a Attributes) ByName(name string) Attributes {
	var result Attributes
	for _, attr := range a {
		if attr.Name == name {
			result = append(result, attr)
		}
	}
	return result
}

// Repr returns arguments of all repr attributes in declaration order
func (a Attributes) Repr() []string {
	var result []string
	for _, attr := range a.ByName(ReprAttribute) {
		result = append(result, attr.Args...)
	}
	return result
}

// HasRepr returns true if any repr attribute lists the marker
func (a Attributes) HasRepr(marker string) bool {
	for _, arg := range a.Repr() {
		if arg == marker {
			return true
		}
	}
	return false
}
