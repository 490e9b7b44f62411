// Package handler provides HTTP request handlers for the Chronicle API.
//
// Each handler struct wraps one service and translates between HTTP and
// the service's typed requests and errors. Handlers perform no business
// logic; validation and ownership rules live in the service layer, and the
// per-handler handleError switch only maps sentinel errors onto RFC 9457
// Problem Details responses.
//
// # Response Envelopes
//
// Entity endpoints return their resource under a named key ({campaign},
// {campaigns}, {quest}, ...) using the ToAPI projections, which never
// expose the owner.
package handler
