// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/schedule). This root
// package holds sentinel errors, validation types, and the Action interface
// shared across all entities.
package domain
