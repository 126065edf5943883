package service

import "context"

// Service is a long-lived infrastructure subsystem: audio output, replay journal,
// score table, spectator stream
//
// Lifecycle:
//  1. Construction with its configuration
//  2. Start(ctx) - open resources, launch goroutines; ctx ends background work
//  3. [game runs]
//  4. Stop() - flush and release, must be idempotent
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must start before this one
	Dependencies() []string

	Start(ctx context.Context) error

	Stop() error
}
