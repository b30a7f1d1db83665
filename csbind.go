// Package csbind generates C# interop declarations from the ffi surface of Rust source.
//
// A Builder parses the source once; Build lowers it into C# text. Builders sharing a registry
// (WithRegistry) see each other's types, so a type lowered by one Build call can be referenced by a
// later one, even when it was emitted into a different namespace or enclosing type.
package csbind

import (
	"fmt"
	"strings"

	"github.com/viant/csbind/decl"
	"github.com/viant/csbind/decl/parse"
	"github.com/viant/csbind/logger"
	"github.com/viant/csbind/lower"
	"github.com/viant/csbind/registry"
	"github.com/viant/csbind/typectx"
)

// DefaultVersion is the C# language version targeted when none is set
const DefaultVersion uint8 = 8

type (
	//Builder generates C# bindings for a single source
	Builder struct {
		file     *decl.File
		config   *lower.Config
		registry *registry.Registry
		logger   *logger.Adapter
		source   string
	}

	//Option represents builder option
	Option func(b *Builder)
)

// WithVersion sets targeted C# language version
func WithVersion(version uint8) Option {
	return func(b *Builder) {
		b.config.Version = version
	}
}

// WithOutType sets generic wrapper name rebound as out parameter
func WithOutType(name string) Option {
	return func(b *Builder) {
		b.config.OutType = name
	}
}

// WithBanner sets banner emitted as leading line comments
func WithBanner(banner string) Option {
	return func(b *Builder) {
		b.config.Banner = banner
	}
}

// WithUsings replaces default usings
func WithUsings(usings ...string) Option {
	return func(b *Builder) {
		b.config.Usings = usings
	}
}

// WithRegistry shares type registry with other builders
func WithRegistry(reg *registry.Registry) Option {
	return func(b *Builder) {
		b.registry = reg
	}
}

// WithLogger sets pass logger
func WithLogger(aLogger *logger.Adapter) Option {
	return func(b *Builder) {
		b.logger = aLogger
	}
}

// WithSource sets source name reported by the logger
func WithSource(name string) Option {
	return func(b *Builder) {
		b.source = name
	}
}

// WithNamespace sets namespace
func WithNamespace(namespace string) Option {
	return func(b *Builder) {
		b.config.Namespace = namespace
	}
}

// WithType sets enclosing static class
func WithType(name string) Option {
	return func(b *Builder) {
		b.config.TypeName = name
	}
}

// New parses source and creates a builder
func New(source string, dllName string, options ...Option) (*Builder, error) {
	file, err := parse.ParseString(source)
	if err != nil {
		return nil, err
	}
	return NewWithFile(file, dllName, options...), nil
}

// NewWithFile creates a builder for already parsed declarations
func NewWithFile(file *decl.File, dllName string, options ...Option) *Builder {
	ret := &Builder{
		file: file,
		config: &lower.Config{
			DllName: dllName,
			Usings:  lower.DefaultUsings,
			Version: DefaultVersion,
		},
	}
	for _, option := range options {
		option(ret)
	}
	if ret.registry == nil {
		ret.registry = registry.New()
	}
	return ret
}

// SetNamespace sets namespace wrapping the output
func (b *Builder) SetNamespace(namespace string) {
	b.config.Namespace = namespace
}

// SetType sets static class wrapping the output
func (b *Builder) SetType(name string) {
	b.config.TypeName = name
}

// Registry returns registry used by the builder
func (b *Builder) Registry() *registry.Registry {
	return b.registry
}

// Build lowers the source, returns the whole C# text or the first error
func (b *Builder) Build() (string, error) {
	if issues := typectx.Validate(&b.config.Context); len(issues) > 0 {
		messages := make([]string, 0, len(issues))
		for _, issue := range issues {
			messages = append(messages, issue.String())
		}
		return "", fmt.Errorf("invalid emission context: %v", strings.Join(messages, ", "))
	}
	options := []lower.Option{lower.WithSource(b.source)}
	if b.logger != nil {
		options = append(options, lower.WithLogger(b.logger))
	}
	return lower.New(b.config.Clone(), b.registry, options...).Lower(b.file)
}
