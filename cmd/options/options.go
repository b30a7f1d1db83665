package options

const (
	generateCommand = "gen"
	registryCommand = "registry"
)

type Options struct {
	Generate *Generate `command:"gen" description:"generate C# interop declarations from rust source"`
	Registry *Registry `command:"registry" description:"print registered types"`
	Version  bool      `short:"V" long:"version" description:"show version"`
	LogLevel string    `long:"log" description:"log level" choice:"DEBUG" choice:"INFO" choice:"WARN" choice:"ERROR"`
	Gops     bool      `long:"gops" description:"start gops diagnostics agent"`
	command  string
}

// NewOptions creates options with the command selected by the first command argument
func NewOptions(args []string) *Options {
	ret := &Options{}
	for _, arg := range args {
		switch arg {
		case generateCommand:
			ret.Generate = &Generate{}
		case registryCommand:
			ret.Registry = &Registry{}
		default:
			continue
		}
		ret.command = arg
		return ret
	}
	return ret
}

// Command returns selected command name
func (o *Options) Command() string {
	return o.command
}

// IsGenerate returns true when gen command was selected
func (o *Options) IsGenerate() bool {
	return o.command == generateCommand && o.Generate != nil
}

// IsRegistry returns true when registry command was selected
func (o *Options) IsRegistry() bool {
	return o.command == registryCommand && o.Registry != nil
}

// Init initialises selected command
func (o *Options) Init() error {
	if o.IsRegistry() {
		return o.Registry.Init()
	}
	return nil
}
