package command

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/viant/afs/file"
	"github.com/viant/csbind/cmd/options"
	"github.com/viant/csbind/decl/parse"
	"github.com/viant/csbind/logger"
	"github.com/viant/csbind/lower"
	"github.com/viant/csbind/registry"
)

// Generate lowers config inputs in order against one registry, so later inputs can use types of earlier ones
func (s *Service) Generate(ctx context.Context, cfg *options.Config, slowPass time.Duration) error {
	reg, err := s.LoadRegistry(ctx, cfg.RegistryURL)
	if err != nil {
		return err
	}
	adapter := s.newHooks(ctx, slowPass)
	for _, input := range cfg.Inputs {
		if err = s.generate(ctx, cfg, input, reg, adapter); err != nil {
			return err
		}
	}
	if cfg.RegistryURL != "" {
		return s.SaveRegistry(ctx, cfg.RegistryURL, reg)
	}
	return nil
}

func (s *Service) generate(ctx context.Context, cfg *options.Config, input *options.Input, reg *registry.Registry, adapter *logger.Adapter) (err error) {
	onDone := s.counter("pass", "Lowering pass").Begin(time.Now())
	defer func() {
		onDone(time.Now(), err)
	}()
	source, err := s.fs.DownloadWithURL(ctx, input.Source)
	if err != nil {
		return errors.Wrapf(err, "failed to download source: %v", input.Source)
	}
	aFile, err := parse.Parse(source)
	if err != nil {
		return errors.Wrapf(err, "failed to parse %v", input.Source)
	}
	lowerer := lower.New(cfg.LowerConfig(input), reg, lower.WithLogger(adapter), lower.WithSource(input.Source))
	output, err := lowerer.Lower(aFile)
	if err != nil {
		return errors.Wrapf(err, "failed to lower %v", input.Source)
	}
	if input.Dest == "" {
		_, err = io.WriteString(s.stdout, output)
		return err
	}
	if err = s.fs.Upload(ctx, input.Dest, file.DefaultFileOsMode, bytes.NewReader([]byte(output))); err != nil {
		return errors.Wrapf(err, "failed to upload %v", input.Dest)
	}
	s.logger.Infoc(ctx, "generated", "source", input.Source, "dest", input.Dest)
	return nil
}
