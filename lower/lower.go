// Package lower lowers a Rust declaration tree into C# interop source.
package lower

import (
	"strings"
	"time"

	"github.com/viant/csbind/decl"
	"github.com/viant/csbind/emitter"
	"github.com/viant/csbind/logger"
	"github.com/viant/csbind/registry"
	"github.com/viant/csbind/resolver"
	"github.com/viant/csbind/typectx"
)

type (
	//Lowerer runs lowering passes against a shared registry
	Lowerer struct {
		config   *Config
		registry *registry.Registry
		logger   *logger.Adapter
		source   string
	}

	//Option represents lowerer option
	Option func(l *Lowerer)

	pass struct {
		*Lowerer
		context  typectx.Context
		resolver *resolver.Resolver
		builder  *emitter.Builder
	}

	//outcome of lowering single declaration
	outcome struct {
		kind   string
		name   string
		skip   string //reason, empty when lowered
		native string //registered native name
	}
)

// WithLogger sets logger
func WithLogger(aLogger *logger.Adapter) Option {
	return func(l *Lowerer) {
		l.logger = aLogger
	}
}

// WithSource sets source name used by diagnostics
func WithSource(source string) Option {
	return func(l *Lowerer) {
		l.source = source
	}
}

// New creates lowerer, a nil registry is replaced with a private one
func New(config *Config, reg *registry.Registry, options ...Option) *Lowerer {
	if config == nil {
		config = &Config{}
	}
	if reg == nil {
		reg = registry.New()
	}
	ret := &Lowerer{config: config, registry: reg}
	for _, option := range options {
		option(ret)
	}
	if ret.logger == nil {
		ret.logger = logger.Default()
	}
	return ret
}

// Registry returns registry shared by passes
func (l *Lowerer) Registry() *registry.Registry {
	return l.registry
}

// Lower runs a pass over the file; the pass produces the whole source or the first error
func (l *Lowerer) Lower(file *decl.File) (output string, err error) {
	start := time.Now()
	defer func() {
		end := time.Now()
		l.logger.PassTime(l.source, &start, &end, err)
	}()
	ctx := typectx.Normalize(&l.config.Context)
	p := &pass{
		Lowerer:  l,
		context:  *ctx,
		resolver: resolver.New(l.registry, *ctx, l.config.Version, l.config.OutType),
		builder:  emitter.NewBuilder(),
	}
	p.writeHeader()
	if file != nil {
		if err = p.lowerItems(file.Items); err != nil {
			return "", err
		}
	}
	p.writeFooter()
	return p.builder.String(), nil
}

func (p *pass) writeHeader() {
	if banner := p.config.Banner; banner != "" {
		for _, line := range strings.Split(strings.TrimRight(banner, "\n"), "\n") {
			p.builder.WriteLine(strings.TrimRight("// "+line, " "))
		}
	}
	for _, using := range p.config.Usings {
		p.builder.WriteLine("using " + using + ";")
	}
	p.builder.NewLine()
	if p.context.Namespace != "" {
		p.builder.OpenBlock("namespace " + p.context.Namespace)
	}
	if p.context.TypeName != "" {
		p.builder.OpenBlock("internal static class " + p.context.TypeName)
	}
}

func (p *pass) writeFooter() {
	if p.context.TypeName != "" {
		p.builder.CloseBlock()
	}
	if p.context.Namespace != "" {
		p.builder.CloseBlock()
	}
}

func (p *pass) lowerItems(items []decl.Item) error {
	for _, item := range items {
		result, err := p.lowerItem(item)
		if err != nil {
			return err
		}
		p.report(result)
	}
	return nil
}

// lowerItem classifies a declaration and dispatches it to its emitter
func (p *pass) lowerItem(item decl.Item) (*outcome, error) {
	switch actual := item.(type) {
	case *decl.Function:
		return p.lowerFunction(actual)
	case *decl.Enum:
		return p.lowerEnum(actual)
	case *decl.Struct:
		return p.lowerStruct(actual)
	case *decl.TypeAlias:
		return p.lowerAlias(actual)
	case *decl.Module:
		return nil, p.lowerItems(actual.Items)
	case *decl.Other:
		return &outcome{kind: actual.Kind, name: actual.Name, skip: "not part of the interop surface"}, nil
	}
	return nil, nil
}

func (p *pass) report(result *outcome) {
	if result == nil {
		return
	}
	if result.skip != "" {
		p.logger.DeclarationSkipped(result.kind, result.name, result.skip)
		return
	}
	p.logger.DeclarationLowered(result.kind, result.name)
	if result.native != "" {
		if identity, ok := p.registry.Lookup(result.native); ok {
			p.logger.TypeRegistered(result.native, identity.Qualified())
		}
	}
}

// register records type lowered in the current scope
func (p *pass) register(native string) {
	p.registry.Register(native, registry.Identity{
		Namespace:     p.context.Namespace,
		EnclosingType: p.context.TypeName,
		Name:          native,
	})
}

func skipped(kind, name, reason string) *outcome {
	return &outcome{kind: kind, name: name, skip: reason}
}
