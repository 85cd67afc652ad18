// Package main is the entry point for the recruitctl CLI
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/talentbridge/recruitment-client/internal/cli"
)

// version is set at build time via ldflags
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	code := cli.Execute(ctx, cli.Options{Version: version}, os.Args[1:])
	stop()
	os.Exit(code)
}
