// Package domain holds DTOs for pipeline http and service contracts
package domain

// SessionInput triggers analysis of one session
type SessionInput struct {
	SessionID string `json:"session_id" validate:"required,max=128" example:"9f1c2d3e"`
}

// SessionOutput summarizes one session processing run
type SessionOutput struct {
	Success        bool   `json:"success" example:"true"`
	SessionID      string `json:"session_id" example:"9f1c2d3e"`
	TotalMessages  int    `json:"total_messages" example:"12"`
	UserMessages   int    `json:"user_messages" example:"6"`
	ProcessedCount int    `json:"processed_count" example:"6"`
	Error          string `json:"error,omitempty"`
}

// PendingInput triggers a ledger drain
type PendingInput struct {
	Limit int `json:"limit,omitempty" validate:"omitempty,min=1,max=500" example:"100"`
}

// PendingOutput summarizes one ledger drain run
type PendingOutput struct {
	Success        bool   `json:"success" example:"true"`
	TotalPending   int64  `json:"total_pending" example:"37"`
	Retrieved      int    `json:"retrieved" example:"37"`
	ProcessedCount int    `json:"processed_count" example:"31"`
	Error          string `json:"error,omitempty"`
}
