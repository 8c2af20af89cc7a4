// SPDX-License-Identifier: MIT
// Package: netgen/cmd/netgen

// Command netgen generates NETGEN network-flow problems in DIMACS format.
//
//	netgen 13502460 1 512 10 10 2000 5 500 1000 3 3 20 80 50 2000
//	netgen < problems.txt > problems.dmx
//	netgen --yaml problems.yaml --workers 4 -o problems.dmx
//	netgen verify --regenerate problems.dmx
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := NewRootCommand(IOStreams{In: os.Stdin, Out: os.Stdout, ErrOut: os.Stderr})
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "netgen: %v\n", err)
		stop()
		os.Exit(1)
	}
}
