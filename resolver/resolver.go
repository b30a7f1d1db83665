// Package resolver maps Rust type expressions to C# type names.
package resolver

import (
	"github.com/viant/csbind/decl"
	"github.com/viant/csbind/registry"
	"github.com/viant/csbind/shared"
	"github.com/viant/csbind/typectx"
)

var unsupported = map[string]string{
	"array":         "using rust arrays from ffi is not supported",
	"slice":         "using rust slices from ffi is not supported",
	"tuple":         "using rust tuples from ffi is not supported",
	"bare function": "using bare functions from ffi is not supported",
	"trait object":  "using rust traits from ffi is not supported",
	"impl trait":    "using rust impl traits from ffi is not supported",
	"infer":         "using type infers is not supported, a binding can not be generated without a known type",
	"macro":         "using rust macros from ffi is not supported",
	"never":         "using rust never type from ffi is not supported",
	"parenthesis":   "using rust parenthesis from ffi is not supported",
	"group":         "using type group from ffi is not supported",
	"verbatim":      "using rust verbatim from ffi is not supported",
}

// Resolver resolves types against a registry from the perspective of an emission context
type Resolver struct {
	Registry *registry.Registry
	Context  typectx.Context
	Version  uint8
	//OutType names a generic wrapper rebound as out parameter, empty disables it
	OutType string
}

// New creates a resolver
func New(reg *registry.Registry, ctx typectx.Context, version uint8, outType string) *Resolver {
	return &Resolver{Registry: reg, Context: ctx, Version: version, OutType: outType}
}

// Resolve resolves type expression
func (r *Resolver) Resolve(aType decl.Type) (*TypeName, error) {
	switch actual := aType.(type) {
	case *decl.Path:
		return r.ResolvePath(actual)
	case *decl.Pointer:
		elem, err := r.Resolve(actual.Elem)
		if err != nil {
			return nil, err
		}
		return NewTypeName("IntPtr", elem.Native+"*"), nil
	case *decl.Reference:
		elem, err := r.Resolve(actual.Elem)
		if err != nil {
			return nil, err
		}
		return NewTypeName("ref "+elem.String(), elem.Native+"&"), nil
	case nil:
		return nil, shared.NewUnsupportedError("type", shared.Position{}, "missing type")
	}
	message, ok := unsupported[aType.Kind()]
	if !ok {
		message = "using " + aType.Kind() + " from ffi is not supported"
	}
	return nil, shared.NewUnsupportedError(aType.Kind(), aType.Pos(), "%s", message)
}

// ResolvePath resolves named type, the last path segment identifies the type
func (r *Resolver) ResolvePath(path *decl.Path) (*TypeName, error) {
	segment := path.Last()
	if segment == nil {
		return nil, shared.NewUnsupportedError("path", path.Pos(), "types without a path are not supported")
	}
	if primitive, ok, err := Primitive(segment.Name, r.Version, path.Pos()); ok || err != nil {
		return primitive, err
	}
	if r.OutType != "" && segment.Name == r.OutType {
		return r.outParameter(path, segment)
	}
	identity, err := r.Identity(segment.Name, path.Pos())
	if err != nil {
		return nil, err
	}
	ret := NewTypeName(Qualify(identity, r.Context), segment.Name)
	if ret.Generics, err = r.ResolveArgs(segment); err != nil {
		return nil, err
	}
	return ret, nil
}

// ResolveArgs resolves segment type arguments
func (r *Resolver) ResolveArgs(segment *decl.Segment) ([]*TypeName, error) {
	var result []*TypeName
	for _, arg := range segment.TypeArgs() {
		generic, err := r.Resolve(arg)
		if err != nil {
			return nil, err
		}
		result = append(result, generic)
	}
	return result, nil
}

// Identity returns registered identity for native name
func (r *Resolver) Identity(name string, pos shared.Position) (registry.Identity, error) {
	if r.Registry == nil {
		return registry.Identity{}, shared.NewUnknownTypeError(name, pos)
	}
	identity, ok := r.Registry.Lookup(name)
	if !ok {
		return registry.Identity{}, shared.NewUnknownTypeError(name, pos)
	}
	return identity, nil
}

func (r *Resolver) outParameter(path *decl.Path, segment *decl.Segment) (*TypeName, error) {
	args := segment.TypeArgs()
	if len(args) != 1 {
		return nil, shared.NewUnsupportedError("out type", path.Pos(), "out type %v requires exactly one angle bracketed type argument", segment.Name)
	}
	inner, err := r.Resolve(args[0])
	if err != nil {
		return nil, err
	}
	return NewTypeName("out "+inner.String(), segment.Name), nil
}

// Qualify returns the shortest name that refers to identity from within ctx
func Qualify(identity registry.Identity, ctx typectx.Context) string {
	switch {
	case identity.Namespace == ctx.Namespace && (identity.EnclosingType == ctx.TypeName || identity.EnclosingType == ""):
		return identity.Name
	case identity.Namespace == ctx.Namespace:
		return identity.EnclosingType + "." + identity.Name
	case identity.EnclosingType == "":
		if identity.Namespace == "" {
			return identity.Name
		}
		return identity.Namespace + "." + identity.Name
	case identity.Namespace == "":
		return identity.EnclosingType + "." + identity.Name
	}
	return identity.Namespace + "." + identity.EnclosingType + "." + identity.Name
}
