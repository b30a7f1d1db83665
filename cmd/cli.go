package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/viant/csbind/cmd/command"
	cenv "github.com/viant/csbind/cmd/env"
	"github.com/viant/csbind/cmd/options"
	"github.com/viant/csbind/shared/logging"
	"github.com/xyproto/env/v2"
)

// LogLevelEnv defines log level when --log flag was not set
const LogLevelEnv = "CSBIND_LOG_LEVEL"

func New(version string, args []string) error {
	return Run(context.Background(), version, args, os.Stdout, os.Stderr)
}

// Run parses args and executes selected command
func Run(ctx context.Context, version string, args []string, stdout, stderr io.Writer) error {
	opts, err := buildOptions(args)
	if err != nil || opts == nil {
		return err
	}
	if opts.Version {
		info := fmt.Sprintf("csbind: version: %v, go: %v", version, cenv.GoVersion)
		if !cenv.BuildTime.IsZero() {
			info += ", built: " + cenv.BuildTime.UTC().Format(time.RFC3339)
		}
		_, err = fmt.Fprintln(stdout, info)
		return err
	}
	if opts.Command() == "" {
		return fmt.Errorf("expected command: gen or registry")
	}
	if err = opts.Init(); err != nil {
		return err
	}
	level := opts.LogLevel
	if level == "" {
		level = env.Str(LogLevelEnv, logging.INFO)
	}
	srv := command.New(command.WithStdout(stdout), command.WithLogger(logging.New(level, stderr)))
	return srv.Exec(ctx, opts)
}

func buildOptions(args []string) (*options.Options, error) {
	opts := options.NewOptions(args)
	parser := flags.NewParser(opts, flags.Default)
	parser.SubcommandsOptional = true
	if _, err := parser.ParseArgs(args); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return nil, nil
		}
		return nil, err
	}
	return opts, nil
}
