package lower

import (
	"github.com/viant/csbind/typectx"
)

// DefaultUsings are emitted when configuration does not define usings
var DefaultUsings = []string{"System", "System.Runtime.InteropServices"}

// Config represents lowering pass settings
type Config struct {
	typectx.Context `yaml:",inline"`
	//DllName is bound into every DllImport of a pass
	DllName string `yaml:"dllName"`
	Usings  []string `yaml:"usings"`
	//Banner is emitted as line comments, empty banner is omitted
	Banner string `yaml:"banner,omitempty"`
	//Version is the targeted C# language version
	Version uint8 `yaml:"version"`
	//OutType names generic wrapper rebound as out parameter
	OutType string `yaml:"outType,omitempty"`
}

// Clone returns config copy
func (c *Config) Clone() *Config {
	ret := *c
	ret.Usings = append([]string{}, c.Usings...)
	return &ret
}
