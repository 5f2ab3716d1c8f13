// Command steiner solves Steiner tree instances in SteinLib STP format.
//
// Usage:
//
//	steiner solve instance.stp [--timeout 30s] [--reduce=false] [--decompose=false]
//	steiner info instance.stp
//	steiner generate --kind grid --rows 8 --cols 8 --terminals 6 --seed 1 > grid.stp
//
// Settings come from --config (YAML), STEINER_* environment variables and
// flags, in increasing priority. Logs go to stderr; --trace prints
// OpenTelemetry spans there as well.
//
// Exit status is 1 on errors and 2 when a solve ran out of time without a
// fallback.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/lvsteiner/steiner"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "steiner:", err)
		if errors.Is(err, steiner.ErrTimeout) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
