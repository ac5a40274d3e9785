//go:build !linux && !windows

package main

import (
	"context"
	"io"
	"runtime"

	"github.com/pkg/errors"

	"github.com/TKMAX777/synkey/config"
)

var errUnsupported = errors.Errorf("synkey does not run on %s", runtime.GOOS)

func startClient(context.Context, *config.Config, string, io.Writer) error { return errUnsupported }

func startServer(context.Context, *config.Config, string, io.Reader) error { return errUnsupported }
