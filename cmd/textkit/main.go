// Command textkit exposes the wildcard, tokenize, similarity and pathkey packages on the command
// line, together with a small command console and a wildcard grep.
package main

import (
	"context"
	"errors"
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
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}

		os.Exit(1)
	}
}
