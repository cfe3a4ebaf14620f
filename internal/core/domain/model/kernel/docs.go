// Package kernel provides core domain primitives for the ordering system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - GeoPoint: a WGS84 coordinate value object with haversine distance
//   - Round2: the money/distance rounding rule shared across the model
//
// These primitives are immutable and thread-safe, making them suitable for
// concurrent use.
package kernel
