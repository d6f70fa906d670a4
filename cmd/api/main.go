package main

import (
	"context"
	"log"

	"crmgate/internal/app/bootstrap"
)

// API process entrypoint.
// Data flow:
// 1) Load config.
// 2) Build app wiring (gateway + modules + server).
// 3) Start HTTP server.

// @title crmgate API
// @version 1.0
// @description HTTP facade in front of a third-party CRM REST API.
func main() {
	app, err := bootstrap.BuildAPI()
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("server: %v", err)
	}
}
