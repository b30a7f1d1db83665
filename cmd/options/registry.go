package options

import "github.com/pkg/errors"

// Registry defines registry command flags
type Registry struct {
	RegistryURL string `short:"r" long:"registry" description:"type registry URL"`
}

// Init validates flags
func (r *Registry) Init() error {
	if r.RegistryURL == "" {
		return errors.New("registry URL was empty")
	}
	r.RegistryURL = ensureAbsPath(r.RegistryURL)
	return nil
}
