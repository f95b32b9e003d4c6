// Package server exposes the arrangement pipeline over HTTP.
//
// # Endpoints
//
//	POST /v1/measure   {"scene": {...}, "options": {...}} -> {"width": w, "height": h}
//	POST /v1/arrange   {"scene": {...}, "options": {...}} -> layout frames
//	GET  /healthz
//	GET  /version
//
// The arrange response is encoded in options.format (json by default) and
// carries the arrangement ID in the X-Arrangement-ID header.
//
// Errors are returned as {"code": "...", "message": "..."} with a status
// derived from the error code: INVALID_* codes map to 400, NOT_FOUND and
// FILE_NOT_FOUND to 404, and everything else to 500.
//
// # Usage
//
//	srv := server.New(server.Config{
//	    Addr:   ":8080",
//	    Runner: pipeline.NewRunner(logger),
//	    Logger: logger,
//	})
//	if err := srv.ListenAndServe(ctx); err != nil {
//	    log.Fatal(err)
//	}
package server
