// wsrcon - an interactive WebRcon remote-console client.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"wsrcon/cmd"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cmd.Execute(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "wsrcon: %v\n", err)
		cancel()
		os.Exit(1)
	}
}
