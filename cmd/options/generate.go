package options

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/viant/afs"
	"github.com/viant/afs/url"
)

const csExt = ".cs"

// Generate defines gen command flags, flags override config file values
type Generate struct {
	ConfigURL   string        `short:"c" long:"config" description:"YAML or JSON config URL"`
	Sources     []string      `short:"s" long:"src" description:"rust source URL, lowered in the given order"`
	Dest        []string      `short:"d" long:"dest" description:"destination file URL per source, or a single destination folder; stdout when empty"`
	DllName     string        `short:"l" long:"lib" description:"native library name used by DllImport"`
	Namespace   string        `short:"n" long:"ns" description:"C# namespace"`
	TypeName    string        `short:"t" long:"type" description:"C# static class wrapping declarations"`
	Version     int           `short:"v" long:"langver" description:"targeted C# language version (default: 8)"`
	OutType     string        `short:"o" long:"out" description:"generic wrapper type rebound as out parameter"`
	Usings      []string      `short:"u" long:"using" description:"using directive"`
	Banner      string        `short:"b" long:"banner" description:"banner emitted as leading comment"`
	RegistryURL string        `short:"r" long:"registry" description:"type registry URL loaded before and saved after the run"`
	SlowPass    time.Duration `long:"slow" description:"report passes slower than the threshold"`
}

// Config builds run config: file values first, then flags
func (g *Generate) Config(ctx context.Context, fs afs.Service) (*Config, error) {
	cfg := &Config{}
	if g.ConfigURL != "" {
		var err error
		if cfg, err = NewConfigFromURL(ctx, fs, ensureAbsPath(g.ConfigURL)); err != nil {
			return nil, err
		}
	}
	g.merge(cfg)
	if err := g.assignInputs(cfg); err != nil {
		return nil, err
	}
	cfg.Init()
	return cfg, cfg.Validate()
}

func (g *Generate) merge(cfg *Config) {
	if g.DllName != "" {
		cfg.DllName = g.DllName
	}
	if g.Namespace != "" {
		cfg.Namespace = g.Namespace
	}
	if g.TypeName != "" {
		cfg.TypeName = g.TypeName
	}
	if g.Version != 0 {
		cfg.Version = g.Version
	}
	if g.OutType != "" {
		cfg.OutType = g.OutType
	}
	if len(g.Usings) > 0 {
		cfg.Usings = g.Usings
	}
	if g.Banner != "" {
		cfg.Banner = g.Banner
	}
	if g.RegistryURL != "" {
		cfg.RegistryURL = ensureAbsPath(g.RegistryURL)
	}
}

// assignInputs replaces config inputs with flag sources
func (g *Generate) assignInputs(cfg *Config) error {
	if len(g.Sources) == 0 {
		if len(g.Dest) > 0 {
			return errors.New("dest requires src")
		}
		return nil
	}
	var inputs []*Input
	for i, source := range g.Sources {
		input := &Input{Source: ensureAbsPath(source)}
		switch {
		case len(g.Dest) == 0:
		case len(g.Dest) == len(g.Sources) && !isFolder(g.Dest[i]):
			input.Dest = ensureAbsPath(g.Dest[i])
		case len(g.Dest) == 1 && (isFolder(g.Dest[0]) || len(g.Sources) > 1):
			input.Dest = url.Join(ensureAbsPath(g.Dest[0]), stem(source)+csExt)
		default:
			return errors.Errorf("expected one dest per src or a single dest folder, got %v dest for %v src", len(g.Dest), len(g.Sources))
		}
		inputs = append(inputs, input)
	}
	cfg.Inputs = inputs
	return nil
}

func isFolder(location string) bool {
	return strings.HasSuffix(location, "/") || !strings.HasSuffix(location, csExt)
}
