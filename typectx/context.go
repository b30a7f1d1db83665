package typectx

import (
	"strings"
)

// Context represents C# scope the generated declarations are emitted into
type Context struct {
	Namespace string `yaml:"namespace,omitempty"`
	TypeName  string `yaml:"typeName,omitempty"`
}

// ValidationIssue captures context consistency problems.
type ValidationIssue struct {
	Field   string
	Message string
}

func (v ValidationIssue) String() string {
	return v.Field + ": " + v.Message
}

// Normalize trims context fields, nil is returned for nil input
func Normalize(input *Context) *Context {
	if input == nil {
		return nil
	}
	return &Context{
		Namespace: strings.Trim(strings.TrimSpace(input.Namespace), "."),
		TypeName:  strings.TrimSpace(input.TypeName),
	}
}

// Validate checks that namespace is a dotted identifier and type name a plain identifier
func Validate(ctx *Context) []ValidationIssue {
	ctx = Normalize(ctx)
	if ctx == nil {
		return nil
	}
	var result []ValidationIssue
	if ctx.Namespace != "" {
		for _, segment := range strings.Split(ctx.Namespace, ".") {
			if !IsIdentifier(segment) {
				result = append(result, ValidationIssue{
					Field:   "Namespace",
					Message: "invalid namespace segment '" + segment + "'",
				})
				break
			}
		}
	}
	if ctx.TypeName != "" && !IsIdentifier(ctx.TypeName) {
		result = append(result, ValidationIssue{
			Field:   "TypeName",
			Message: "type name must be a plain identifier",
		})
	}
	return result
}

// IsIdentifier returns true for ASCII C# identifier
func IsIdentifier(value string) bool {
	if value == "" {
		return false
	}
	for i := 0; i < len(value); i++ {
		b := value[i]
		switch {
		case b == '_', b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z':
		case i > 0 && b >= '0' && b <= '9':
		default:
			return false
		}
	}
	return true
}
