// Package main implements the entry point for the Wingman API server,
// a multi-tenant backend for pilots' aircraft and flight logbooks.
package main

import (
	"context"
	"log"
)

// main initializes configuration, logging, the database connection and the
// service graph, then runs the HTTP server until it is signalled to stop.
func main() {
	app, err := newApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.cleanup()

	if err := app.run(context.Background()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
