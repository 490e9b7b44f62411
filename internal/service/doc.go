// Package service contains the business logic of the campaign tracker.
//
// Every operation takes the authenticated Actor explicitly and scopes all
// reads and writes to that actor's account. Resources owned by another
// account are indistinguishable from resources that do not exist.
//
// Services depend on narrow repository interfaces defined in this package
// so tests can substitute in-memory fakes.
package service
