// Package database provides the document-store abstraction for Chronicle.
//
// The Database interface wraps SurrealDB with three query methods:
//   - Query: returns multiple results (SELECT queries returning lists)
//   - QueryOne: returns a single result (SELECT by id or LIMIT 1)
//   - Execute: no return value (CREATE/UPDATE/DELETE mutations)
//
// There is deliberately no cross-statement transaction support here.
// The one multi-entity mutation in the system, campaign cascade delete,
// is an explicit multi-step orchestration in the service layer with its
// own partial-failure reporting; every other operation touches a single
// record or a single scoped set.
//
// # Error Handling
//
// Standard errors are defined for common failure cases and checked with
// errors.Is():
//
//	if errors.Is(err, database.ErrNotFound) {
//	    // record does not exist
//	}
package database

import (
	"context"
	"errors"
)

// Standard errors for database operations.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate indicates a unique constraint violation (e.g., duplicate username).
	ErrDuplicate = errors.New("duplicate record")

	// ErrConnection indicates a failure to connect to or communicate with the database.
	ErrConnection = errors.New("database connection error")

	// ErrQuery indicates a query execution failure.
	ErrQuery = errors.New("query error")
)

// Database defines the interface for document-store operations
type Database interface {
	// Connection management
	Connect(ctx context.Context) error
	Close() error
	Ping(ctx context.Context) error

	// Query executes a query and returns results
	Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error)

	// QueryOne executes a query and returns a single result
	QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error)

	// Execute runs a query without returning results (for mutations)
	Execute(ctx context.Context, query string, vars map[string]interface{}) error
}

// Config holds database configuration
type Config struct {
	Host      string
	Port      string
	User      string
	Password  string
	Namespace string
	Database  string
}
