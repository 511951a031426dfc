// Package domain defines core types and interfaces for the analysis pipeline
package domain

// SessionResult summarizes one session processing run
type SessionResult struct {
	Success        bool
	SessionID      string
	TotalMessages  int
	UserMessages   int
	ProcessedCount int
	Error          string
}

// PendingResult summarizes one ledger drain run
type PendingResult struct {
	Success        bool
	TotalPending   int64
	Retrieved      int
	ProcessedCount int
	Error          string
}
