// Package domain holds DTOs for ingest http and service contracts
package domain

import "time"

// AppendInput accepts one inbound transcript message
// SessionID is optional and minted server side when omitted
type AppendInput struct {
	UserID    int64  `json:"user_id,omitempty" validate:"omitempty,min=1" example:"1"`
	SessionID string `json:"session_id,omitempty" validate:"omitempty,max=128" example:"9f1c2d3e"`
	Content   string `json:"content" validate:"required,max=65536" example:"hello there"`
}

// MessageRow is one stored transcript message
type MessageRow struct {
	ID             int64     `json:"id" example:"42"`
	UserID         int64     `json:"user_id" example:"1"`
	SessionID      string    `json:"session_id" example:"9f1c2d3e"`
	Content        string    `json:"content" example:"hello there"`
	SequenceNumber int       `json:"sequence_number" example:"3"`
	CreatedAt      time.Time `json:"created_at"`
}
