// Package domain defines the core business types for the spamguard service.
//
// Types in this package are pure value objects with no behavior beyond
// validation, no database dependencies, and no HTTP concerns. They are the
// shared language between handlers, services, and repositories.
//
// Rules for this package:
//   - No imports from other internal/ packages
//   - No *sql.DB, no http.Request, no context.Context in struct fields
//   - Validation methods are allowed (they're pure functions on the type)
//   - Constants and sentinel errors belong here
package domain
