// Package server implements the preview server.
//
// Routes:
//
//	GET /                       index of the source directory
//	GET /docs/{name}            a rendered description
//	GET /metrics                Prometheus metrics
//	GET /_htmlbuilder/reload    live reload websocket (watch mode)
//	GET /_htmlbuilder/reload.js live reload client (watch mode)
//
// Usage:
//
//	srv := server.New(cfg)
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer stop()
//	if err := srv.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
package server
