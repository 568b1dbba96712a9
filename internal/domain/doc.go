// Package domain contains shared domain types used across entity sub-packages.
// Entity types live in sub-packages (domain/board). This root package holds
// sentinel errors, validation types, and the Action contract used by the
// optimistic update protocol.
package domain
