// Package mutation implements the Anti-Corruption Layer translators for the
// sync API's mutation resources.
package mutation

// RequestDTO matches the sync API's MutationRequest schema.
type RequestDTO struct {
	ID        string `json:"id"`
	Operation string `json:"operation"`
	EntityID  string `json:"entity_id"`
	Actor     string `json:"actor,omitempty"`
	Payload   any    `json:"payload,omitempty"`
	IssuedAt  string `json:"issued_at"`
}

// ResponseDTO matches the sync API's MutationResponse schema. Status is
// "accepted" or "rejected"; Reason explains a rejection.
type ResponseDTO struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// Response status values.
const (
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)
