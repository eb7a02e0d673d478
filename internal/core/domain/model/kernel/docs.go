// Package kernel provides core domain primitives shared across the
// orchestration engine. It implements fundamental building blocks following
// Domain-Driven Design principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Pincode: A value object for six-digit postal codes with zone derivation
//   - PincodeRange: An inclusive pincode interval used for partner serviceability
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
