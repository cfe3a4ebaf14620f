// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the ordering system. It
// implements workflows that don't naturally belong to a single aggregate
// root.
//
// The package includes:
//   - CartDecomposer: A domain service for splitting a mixed cart into
//     per-restaurant order drafts
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
