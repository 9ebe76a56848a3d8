// Command micromuu is the rancher client of the micromuu service.
//
// Usage:
//
//	micromuu [global flags] <command> [flags]
//	micromuu shell
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/and161185/micromuu/internal/client/app"
	"github.com/and161185/micromuu/internal/errs"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	cmd := app.Command()
	cmd.Reader, cmd.Writer, cmd.ErrWriter = in, out, errOut
	err := cmd.Run(ctx, args)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errs.ErrNotAllowed):
		// the screen already printed where to go instead
		return 2
	default:
		_, _ = fmt.Fprintln(errOut, app.Describe(err))
		return 1
	}
}
