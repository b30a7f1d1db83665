package command

import (
	"bytes"
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/viant/afs/file"
	"github.com/viant/csbind/registry"
	"gopkg.in/yaml.v3"
)

// LoadRegistry loads registry snapshot, a missing snapshot yields an empty registry
func (s *Service) LoadRegistry(ctx context.Context, URL string) (*registry.Registry, error) {
	ret := registry.New()
	if URL == "" {
		return ret, nil
	}
	exists, err := s.fs.Exists(ctx, URL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check registry: %v", URL)
	}
	if !exists {
		return ret, nil
	}
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to download registry: %v", URL)
	}
	if err = yaml.Unmarshal(data, ret); err != nil {
		return nil, errors.Wrapf(err, "failed to decode registry: %v", URL)
	}
	s.logger.Debugc(ctx, "registry loaded", "url", URL, "types", ret.Len())
	return ret, nil
}

// SaveRegistry uploads registry snapshot
func (s *Service) SaveRegistry(ctx context.Context, URL string, reg *registry.Registry) error {
	data, err := yaml.Marshal(reg)
	if err != nil {
		return errors.Wrap(err, "failed to encode registry")
	}
	if err = s.fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return errors.Wrapf(err, "failed to upload registry: %v", URL)
	}
	s.logger.Debugc(ctx, "registry saved", "url", URL, "types", reg.Len())
	return nil
}

// PrintRegistry writes registered types, one per line
func (s *Service) PrintRegistry(ctx context.Context, URL string) error {
	reg, err := s.LoadRegistry(ctx, URL)
	if err != nil {
		return err
	}
	for _, entry := range reg.Entries() {
		if _, err = fmt.Fprintf(s.stdout, "%v -> %v\n", entry.Native, entry.Qualified()); err != nil {
			return err
		}
	}
	return nil
}
