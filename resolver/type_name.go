package resolver

import "strings"

// TypeName represents resolved C# type with the native name used for documentation remarks
type TypeName struct {
	Managed  string
	Native   string
	Generics []*TypeName
}

// NewTypeName creates type name
func NewTypeName(managed, native string) *TypeName {
	return &TypeName{Managed: managed, Native: native}
}

// String renders C# type, generic arguments are rendered recursively
func (t *TypeName) String() string {
	if len(t.Generics) == 0 {
		return t.Managed
	}
	sb := strings.Builder{}
	sb.WriteString(t.Managed)
	sb.WriteString(GenericSuffix(t.Generics))
	return sb.String()
}

// GenericSuffix renders <A, B> suffix
func GenericSuffix(generics []*TypeName) string {
	if len(generics) == 0 {
		return ""
	}
	args := make([]string, 0, len(generics))
	for _, generic := range generics {
		args = append(args, generic.String())
	}
	return "<" + strings.Join(args, ", ") + ">"
}
