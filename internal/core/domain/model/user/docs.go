// Package user provides the User aggregate for authentication and order ownership.
//
// A user carries a unique case-sensitive username and a one-way salted password
// hash. The aggregate never sees plaintext passwords; hashing and verification
// live in the domain services layer.
package user
