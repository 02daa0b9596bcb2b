// Command dbx is a small Dropbox client built on the dropbox-go SDK.
//
// Usage:
//
//	dbx whoami
//	dbx ls /Photos --recursive
//	dbx put ./report.pdf /Reports/report.pdf
//	dbx watch /Inbox
//
// The access token is read from DROPBOX_TOKEN or the configuration file
// (see --config).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
