package models

import "time"

// RemoveRequestStatus tracks the lifecycle of a remove-word request.
// A request leaves pending exactly once and never comes back.
type RemoveRequestStatus string

const (
	RemoveRequestPending  RemoveRequestStatus = "pending"
	RemoveRequestExecuted RemoveRequestStatus = "executed"
	RemoveRequestFailed   RemoveRequestStatus = "failed"
)

// RemoveRequestView is the serializable projection of a remove-word request.
// Votes is the ordered serialization of the underlying voter set.
type RemoveRequestView struct {
	ID            string              `json:"id"`
	TargetStudent string              `json:"targetStudent"`
	Word          string              `json:"word"`
	RequestedBy   string              `json:"requestedBy"`
	Votes         []string            `json:"votes"`
	Status        RemoveRequestStatus `json:"status"`
	CreatedAt     time.Time           `json:"createdAt"`
	ExecutedAt    *time.Time          `json:"executedAt"`
}
