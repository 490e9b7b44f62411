// Package model defines the domain entities of the Chronicle campaign
// tracker, their client-facing API projections, field-length constraints,
// and the RFC 9457 problem-details error types shared across layers.
//
// Every child entity (Quest, Location) stores a denormalized copy of its
// campaign's owner so that repositories can scope reads and writes to the
// authenticated owner with a single predicate.
package model
