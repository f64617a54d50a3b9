package main

import (
	"context"
	"os"

	"github.com/mossy2100/galaxon-core/internal/cli"
	"github.com/mossy2100/galaxon-core/shutdown"
)

func main() {
	ctx, stop := shutdown.SetupHandler(context.Background())

	err := cli.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}
