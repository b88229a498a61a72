// Package services provides domain services for the order management system.
// It implements business operations that don't naturally belong to a single
// aggregate root.
//
// The package includes:
//   - PasswordHasher: A domain service for one-way salted password hashing and verification
//
// Domain services keep cryptographic and cross-aggregate concerns out of the
// aggregates themselves, following Domain-Driven Design principles.
package services
