package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/graphbridge/internal/cli"
	errs "github.com/matzehuels/graphbridge/pkg/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func run(ctx context.Context) error {
	// The level is raised or lowered from --verbose and the config file
	// before any command runs.
	c := cli.New(os.Stderr, cli.LogInfo)
	return c.RootCommand().ExecuteContext(ctx)
}

// exitCode distinguishes bad invocations from bad input documents.
func exitCode(err error) int {
	switch errs.GetCode(err) {
	case errs.ErrCodeInvalidInput, errs.ErrCodeInvalidFormat:
		return 2
	case errs.ErrCodeParse, errs.ErrCodeMalformed, errs.ErrCodeInvalidColor, errs.ErrCodeFileNotFound:
		return 3
	}
	return 1
}
