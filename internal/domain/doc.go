// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/robot). This root package
// holds the sentinel errors and the validation error type that every layer
// checks with errors.Is / errors.As.
package domain
