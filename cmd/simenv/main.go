package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/simenv/internal/cli"
	"github.com/arthur-debert/simenv/pkg/logging"
	"github.com/arthur-debert/simenv/pkg/ui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx)
	stop()
	os.Exit(code)
}

func run(ctx context.Context) int {
	defer func() { _ = logging.Close() }()

	rootCmd := cli.NewRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	fmt.Fprintln(os.Stderr, ui.RenderError(err, ui.DetectFormat(os.Stderr)))
	return 1
}
