// Package registry tracks where lowered Rust types live on the C# side.
//
// A Registry is created by the caller and shared by reference across lowering passes, so a type
// lowered by one pass can be referenced by a later one. It has no internal locking; passes sharing
// one registry have to be serialised by the caller.
package registry

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type (
	//Identity represents C# location of a lowered type, empty Namespace or EnclosingType means absent
	Identity struct {
		Namespace     string `yaml:"namespace,omitempty"`
		EnclosingType string `yaml:"enclosingType,omitempty"`
		Name          string `yaml:"name"`
	}

	//Entry represents registered native name with its identity
	Entry struct {
		Native   string `yaml:"native"`
		Identity `yaml:",inline"`
	}

	//Registry maps native type name to C# identity
	Registry struct {
		types map[string]*Identity
		order []string
	}
)

// New creates an empty registry
func New() *Registry {
	return &Registry{types: map[string]*Identity{}}
}

// Register associates native name with identity, a later registration replaces the earlier one
func (r *Registry) Register(native string, identity Identity) {
	if _, ok := r.types[native]; !ok {
		r.order = append(r.order, native)
	}
	r.types[native] = &identity
}

// Lookup returns identity registered for native name
func (r *Registry) Lookup(native string) (Identity, bool) {
	identity, ok := r.types[native]
	if !ok {
		return Identity{}, false
	}
	return *identity, true
}

// Has returns true if native name was registered
func (r *Registry) Has(native string) bool {
	_, ok := r.types[native]
	return ok
}

// Len returns number of registered types
func (r *Registry) Len() int {
	return len(r.types)
}

// Names returns registered native names in first registration order
func (r *Registry) Names() []string {
	return append([]string{}, r.order...)
}

// Entries returns registry snapshot in first registration order
func (r *Registry) Entries() []*Entry {
	result := make([]*Entry, 0, len(r.order))
	for _, native := range r.order {
		result = append(result, &Entry{Native: native, Identity: *r.types[native]})
	}
	return result
}

// Restore registers snapshot entries
func (r *Registry) Restore(entries []*Entry) error {
	for i, entry := range entries {
		if entry == nil || entry.Native == "" || entry.Name == "" {
			return fmt.Errorf("invalid registry entry at %d", i)
		}
		r.Register(entry.Native, entry.Identity)
	}
	return nil
}

// MarshalYAML encodes registry as a list of entries
func (r *Registry) MarshalYAML() (interface{}, error) {
	return r.Entries(), nil
}

// UnmarshalYAML decodes list of entries
func (r *Registry) UnmarshalYAML(node *yaml.Node) error {
	var entries []*Entry
	if err := node.Decode(&entries); err != nil {
		return err
	}
	if r.types == nil {
		r.types = map[string]*Identity{}
	}
	return r.Restore(entries)
}

// Qualified returns fully qualified C# name
func (i Identity) Qualified() string {
	ret := i.Name
	if i.EnclosingType != "" {
		ret = i.EnclosingType + "." + ret
	}
	if i.Namespace != "" {
		ret = i.Namespace + "." + ret
	}
	return ret
}

func (i Identity) String() string {
	return i.Qualified()
}
