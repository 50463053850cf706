package httpapi

import (
	"context"
)

// serverBaseCtx is canceled when the process begins shutting down so that
// in-flight generation stops trying between samples. Background until set.
var serverBaseCtx = context.Background()

// SetBaseContext installs the process shutdown context used by handlers.
func SetBaseContext(ctx context.Context) {
	if ctx == nil {
		serverBaseCtx = context.Background()
		return
	}
	serverBaseCtx = ctx
}

// joinContexts derives a context done when either the request context or the
// shutdown context is done. Callers must invoke cancel to free the goroutine.
func joinContexts(req, base context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		select {
		case <-req.Done():
			cancel()
		case <-base.Done():
			cancel()
		}
	}()
	return ctx, cancel
}
