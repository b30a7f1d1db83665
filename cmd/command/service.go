package command

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/viant/afs"
	"github.com/viant/csbind/cmd/options"
	"github.com/viant/csbind/logger"
	"github.com/viant/csbind/shared/logging"
	"github.com/viant/gmetric"
	gprovider "github.com/viant/gmetric/provider"
)

const metricPackage = "csbind"

type Service struct {
	fs      afs.Service
	metrics *gmetric.Service
	logger  logging.Logger
	stdout  io.Writer
}

// Exec runs the selected command
func (s *Service) Exec(ctx context.Context, opts *options.Options) error {
	ctx = logging.WithRunID(ctx, uuid.New().String())
	switch {
	case opts.IsGenerate():
		cfg, err := opts.Generate.Config(ctx, s.fs)
		if err != nil {
			return err
		}
		return s.Generate(ctx, cfg, opts.Generate.SlowPass)
	case opts.IsRegistry():
		return s.PrintRegistry(ctx, opts.Registry.RegistryURL)
	}
	return nil
}

// Metrics returns service metrics
func (s *Service) Metrics() *gmetric.Service {
	return s.metrics
}

func (s *Service) counter(name, title string) *logger.CounterAdapter {
	metricName := metricPackage + "." + name
	operation := s.metrics.LookupOperation(metricName)
	if operation == nil {
		operation = s.metrics.MultiOperationCounter(metricPackage, metricName, title, time.Millisecond, time.Minute, 2, gprovider.NewBasic())
	}
	return logger.NewCounter(operation)
}

type Option func(s *Service)

// WithStdout sets writer receiving generated code without dest and registry listings
func WithStdout(writer io.Writer) Option {
	return func(s *Service) {
		s.stdout = writer
	}
}

// WithLogger sets structured logger
func WithLogger(aLogger logging.Logger) Option {
	return func(s *Service) {
		s.logger = aLogger
	}
}

// WithFs sets file system service
func WithFs(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

func New(opts ...Option) *Service {
	ret := &Service{
		fs:      afs.New(),
		metrics: gmetric.New(),
		stdout:  os.Stdout,
	}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.logger == nil {
		ret.logger = logging.New(logging.INFO, os.Stderr)
	}
	return ret
}
