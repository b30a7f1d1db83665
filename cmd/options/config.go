package options

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/viant/csbind/lower"
	"github.com/viant/csbind/typectx"
	"github.com/viant/toolbox"
	"gopkg.in/yaml.v3"
)

const defaultVersion = 8

type (
	//Config defines generation settings shared by all inputs of a run
	Config struct {
		URL         string
		DllName     string
		Namespace   string
		TypeName    string
		Version     int
		OutType     string
		Usings      []string
		Banner      string
		RegistryURL string
		Inputs      []*Input
	}

	//Input defines single source lowered by one pass
	Input struct {
		Source string
		Dest   string
		//Namespace and TypeName override run level scope
		Namespace string
		TypeName  string
	}
)

// Init applies defaults
func (c *Config) Init() {
	if c.Version == 0 {
		c.Version = defaultVersion
	}
	if len(c.Usings) == 0 {
		c.Usings = lower.DefaultUsings
	}
}

// Validate validates config
func (c *Config) Validate() error {
	if len(c.Inputs) == 0 {
		return errors.New("no sources were specified")
	}
	if c.Version < 0 || c.Version > 255 {
		return errors.Errorf("invalid C# language version: %v", c.Version)
	}
	for _, input := range c.Inputs {
		if input.Source == "" {
			return errors.New("input source was empty")
		}
		ctx := c.Context(input)
		if issues := typectx.Validate(&ctx); len(issues) > 0 {
			return errors.Errorf("invalid scope of %v: %v", input.Source, issues[0])
		}
	}
	return nil
}

// Context returns emission scope of the input
func (c *Config) Context(input *Input) typectx.Context {
	ret := typectx.Context{Namespace: c.Namespace, TypeName: c.TypeName}
	if input.Namespace != "" {
		ret.Namespace = input.Namespace
	}
	if input.TypeName != "" {
		ret.TypeName = input.TypeName
	}
	return ret
}

// LowerConfig returns pass config of the input
func (c *Config) LowerConfig(input *Input) *lower.Config {
	return &lower.Config{
		Context: c.Context(input),
		DllName: c.DllName,
		Usings:  append([]string{}, c.Usings...),
		Banner:  c.Banner,
		Version: uint8(c.Version),
		OutType: c.OutType,
	}
}

// NewConfigFromURL loads YAML or JSON config
func NewConfigFromURL(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to download config: %v", URL)
	}
	aMap := map[string]interface{}{}
	if strings.HasSuffix(URL, ".yaml") || strings.HasSuffix(URL, ".yml") {
		if err = yaml.Unmarshal(data, &aMap); err != nil {
			return nil, errors.Wrapf(err, "failed to parse config: %v", URL)
		}
	} else if err = json.Unmarshal(data, &aMap); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config: %v", URL)
	}
	cfg := &Config{}
	if err = toolbox.DefaultConverter.AssignConverted(cfg, aMap); err != nil {
		return nil, errors.Wrapf(err, "failed to convert config: %v", URL)
	}
	cfg.URL = URL
	cfg.normalizeURLs(baseDir(URL))
	return cfg, nil
}

// normalizeURLs resolves relative locations against config location
func (c *Config) normalizeURLs(baseURL string) {
	c.RegistryURL = expandRelative(c.RegistryURL, baseURL)
	for _, input := range c.Inputs {
		input.Source = expandRelative(input.Source, baseURL)
		input.Dest = expandRelative(input.Dest, baseURL)
	}
}

func baseDir(URL string) string {
	parent, _ := url.Split(URL, file.Scheme)
	return parent
}
