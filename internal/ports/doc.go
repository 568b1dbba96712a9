// Package ports holds the interfaces that connect the board's layers.
//
// Inbound: [BoardService] is what the HTTP handlers drive. Outbound:
// [Confirmer] is how the optimistic dispatcher reaches the sync backend, and
// [HealthChecker] lets a transport take part in readiness probes.
package ports
