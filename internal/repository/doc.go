// Package repository implements the data access layer for Chronicle.
//
// Each repository struct covers one entity and talks to SurrealDB through
// the database.Database interface using parameterised SurrealQL.
//
// # Ownership scoping
//
// Methods that act on records belonging to an account take the owner id as
// an explicit parameter and bake it into the query predicate
// (`WHERE id = ... AND owner = ...`). Unauthorized access therefore
// surfaces as an empty result rather than a separate authorization branch;
// callers cannot forget the check because there is no unscoped variant.
//
// # Query patterns
//
//   - Parameterised queries with $variable syntax
//   - type::record() for safe record-id handling
//   - time::now() for store-assigned timestamps
//   - DELETE ... RETURN BEFORE to learn whether a scoped delete matched
package repository
