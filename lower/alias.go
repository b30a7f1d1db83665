package lower

import (
	"github.com/viant/csbind/decl"
	"github.com/viant/csbind/registry"
	"github.com/viant/csbind/resolver"
)

const kindAlias = "type alias"

// lowerAlias registers alias under the identity of the aliased type; nothing is emitted
func (p *pass) lowerAlias(alias *decl.TypeAlias) (*outcome, error) {
	path, ok := alias.Type.(*decl.Path)
	if !ok || path.Last() == nil {
		return skipped(kindAlias, alias.Name, "aliased type is not a named type"), nil
	}
	segment := path.Last()
	base, ok := p.registry.Lookup(segment.Name)
	if !ok {
		return skipped(kindAlias, alias.Name, "aliased type "+segment.Name+" is not registered"), nil
	}
	generics, err := p.resolver.ResolveArgs(segment)
	if err != nil {
		return nil, err
	}
	p.registry.Register(alias.Name, registry.Identity{
		Namespace:     base.Namespace,
		EnclosingType: base.EnclosingType,
		Name:          base.Name + resolver.GenericSuffix(generics),
	})
	return &outcome{kind: kindAlias, name: alias.Name, native: alias.Name}, nil
}
