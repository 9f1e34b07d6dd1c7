// quickpick is a full-screen terminal menu: arrow keys move the highlight,
// Enter confirms the highlighted choice, Escape exits.
package main

import (
	"context"
	"fmt"
	"os"

	"quickpick/internal/menu"
	"quickpick/internal/trace"
	"quickpick/internal/ui"
)

func main() {
	ctx := context.Background()

	// Session tracing is opt-in via OTEL_EXPORTER_OTLP_ENDPOINT; session is
	// nil (and all recording is a no-op) when the endpoint is unset.
	session, err := trace.Start(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "quickpick: tracing setup: %v\n", err)
		os.Exit(1)
	}

	if err := ui.Run(ctx, menu.Default(), session); err != nil {
		_ = session.End(ctx)
		fmt.Fprintf(os.Stderr, "quickpick: %v\n", err)
		os.Exit(1)
	}

	if err := session.End(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "quickpick: tracing shutdown: %v\n", err)
	}
}
