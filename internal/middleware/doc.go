// Package middleware provides HTTP middleware for the Chronicle API.
//
// # Available Middleware
//
//   - Auth: access token validation and actor resolution
//   - RequestID: unique request identifier per request
//   - Logger: structured request logging
//   - Recovery: panic recovery
//   - CORS: cross-origin request handling
//
// # Authentication
//
// The auth middleware resolves the acting account from the access token
// and rereads its premium status on every request:
//
//	protected := middleware.Chain(mux, middleware.Auth(authService))
//
// After authentication, handlers can access the actor:
//
//	actor, ok := middleware.GetActor(r.Context())
package middleware
