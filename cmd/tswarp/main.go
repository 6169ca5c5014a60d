// SPDX-License-Identifier: MIT

// Command tswarp is the command-line front end of the tswarp toolkit.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/tswarp/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.NewRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
