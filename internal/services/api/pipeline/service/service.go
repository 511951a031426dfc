// Package service contains pipeline API workflows
package service

import (
	"context"

	"chatlens/internal/services/api/pipeline/domain"
	pipedom "chatlens/internal/services/pipeline/domain"
)

// Service defines the pipeline API service contract
type Service interface {
	domain.ServicePort
}

// Svc adapts the runner port to the API surface
type Svc struct {
	runner pipedom.RunnerPort
}

// New constructs a pipeline API service
func New(runner pipedom.RunnerPort) *Svc {
	if runner == nil {
		panic("pipeline.Service requires a runner port")
	}
	return &Svc{runner: runner}
}

// ProcessSession analyzes every user message in one session.
// Partial per-message faults come back as success=false in the payload,
// only a fetch fault surfaces as a transport error
func (s *Svc) ProcessSession(ctx context.Context, in domain.SessionInput) (domain.SessionOutput, error) {
	res, err := s.runner.ProcessSession(ctx, in.SessionID)
	if err != nil {
		return domain.SessionOutput{}, err
	}
	return domain.SessionOutput{
		Success:        res.Success,
		SessionID:      res.SessionID,
		TotalMessages:  res.TotalMessages,
		UserMessages:   res.UserMessages,
		ProcessedCount: res.ProcessedCount,
		Error:          res.Error,
	}, nil
}

// ProcessPending drains the pending ledger across sessions
func (s *Svc) ProcessPending(ctx context.Context, in domain.PendingInput) (domain.PendingOutput, error) {
	res, err := s.runner.ProcessPending(ctx, in.Limit)
	if err != nil {
		return domain.PendingOutput{}, err
	}
	return domain.PendingOutput{
		Success:        res.Success,
		TotalPending:   res.TotalPending,
		Retrieved:      res.Retrieved,
		ProcessedCount: res.ProcessedCount,
		Error:          res.Error,
	}, nil
}
