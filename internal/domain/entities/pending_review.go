package entities

import "time"

// PendingStatus is the review state of an extracted candidate.
type PendingStatus string

const (
	PendingStatusPending  PendingStatus = "pending"
	PendingStatusApproved PendingStatus = "approved"
	PendingStatusRejected PendingStatus = "rejected"
)

func (s PendingStatus) IsValid() bool {
	switch s {
	case PendingStatusPending, PendingStatusApproved, PendingStatusRejected:
		return true
	}
	return false
}

// PendingReviewRecord is a persisted candidate waiting for human approval.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (status-index): status
//
// Records only move out of pending through approve/reject; workflow code never deletes them.
type PendingReviewRecord struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Brand         string        `json:"brand"`
	Description   string        `json:"description"`
	SuggestedUnit UnitType      `json:"suggested_unit"`
	SpecDetails   string        `json:"spec_details,omitempty"`
	Category      string        `json:"category,omitempty"`
	Status        PendingStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
