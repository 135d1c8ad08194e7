// Command digest summarizes English text, extracts keywords, and finds
// topics.
//
//	digest summarize -p 3 article.txt
//	digest naive -p 3 < article.txt
//	digest keywords --top 15 --format json a.txt b.txt
//	digest topics --topics 4 --words 5 corpus/*.txt
//
// Settings come from flags, DIGEST_* environment variables, a .env file,
// and an optional --config file, in that order of precedence.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
