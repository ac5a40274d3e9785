// Command synkey forwards a keyboard from one machine to another.
//
//	synkey client | ssh host synkey host
//
// The client captures the local keyboard and writes key events to stdout;
// the host reads them from stdin and types them on its own desktop.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/TKMAX777/synkey/config"
	"github.com/TKMAX777/synkey/logging"
)

var log = logging.For("main")

var errUsage = errors.New("usage: synkey client|host [flags]")

type options struct {
	mode       string
	configPath string
	cfg        *config.Config
}

func parseArgs(args []string, stderr io.Writer) (*options, error) {
	flags := pflag.NewFlagSet("synkey", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.StringP("config", "c", "", "TOML configuration file, reloaded when it changes")
	logLevel := flags.String("log-level", "", "trace, debug, info, warn or error")
	backend := flags.String("backend", "", "keyboard backend: auto, x11 or uinput")
	pipe := flags.String("pipe", "", `named pipe instead of stdin/stdout (Windows), e.g. \\.\pipe\synkey`)
	flags.Usage = func() {
		fmt.Fprintln(stderr, errUsage)
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return nil, errUsage
	}
	mode := flags.Arg(0)
	switch mode {
	case "client", "host":
	case "server":
		mode = "host"
	default:
		flags.Usage()
		return nil, errors.Wrapf(errUsage, "unknown mode %q", mode)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, err
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *backend != "" {
		cfg.Keyboard.Backend = *backend
	}
	if *pipe != "" {
		cfg.Transport.Pipe = *pipe
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &options{mode: mode, configPath: *configPath, cfg: cfg}, nil
}

func main() {
	opts, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := logging.Setup(logging.Config{Level: opts.cfg.Log.Level, Format: opts.cfg.Log.Format}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch opts.mode {
	case "client":
		err = startClient(ctx, opts.cfg, opts.configPath, os.Stdout)
	case "host":
		err = startServer(ctx, opts.cfg, opts.configPath, os.Stdin)
	}
	if err != nil {
		log.WithError(err).Error(opts.mode + " failed")
		stop()
		os.Exit(1)
	}
}
