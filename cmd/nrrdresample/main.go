// Command nrrdresample resamples raw N-dimensional arrays and inspects the
// reconstruction kernels of the algo-nrrd engine.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newApp().root.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}
