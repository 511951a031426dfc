// Package service contains transcript message workflows
package service

import (
	"context"

	"github.com/google/uuid"

	perr "chatlens/internal/platform/errors"

	"chatlens/internal/modkit/repokit"
	"chatlens/internal/services/messages/domain"
	"chatlens/internal/services/messages/repo"
)

// Service defines the messages service contract
type Service interface {
	domain.WriterPort
	domain.ReaderPort
	domain.MaintainerPort
}

// Svc implements the messages service
type Svc struct {
	Repo   repo.Storage
	binder repokit.Binder[repo.Storage]
	db     repokit.TxRunner
}

// New constructs a messages service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Storage]) *Svc {
	if db == nil {
		panic("messages.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("messages.Service requires a non nil Storage binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// Append stores one message and enqueues it for analysis.
// Sequence assignment, insert, and ledger enqueue share one transaction
func (s *Svc) Append(ctx context.Context, in domain.AppendInput) (domain.RawMessage, error) {
	if in.Content == "" {
		return domain.RawMessage{}, perr.InvalidArgf("content is required")
	}
	if in.SessionID == "" {
		in.SessionID = uuid.NewString()
	}
	if in.UserID <= 0 {
		in.UserID = 1
	}

	var out domain.RawMessage
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		seq, err := r.NextSequence(ctx, in.SessionID)
		if err != nil {
			return err
		}
		m, err := r.Insert(ctx, in, seq)
		if err != nil {
			return err
		}
		if err := r.Enqueue(ctx, m.ID); err != nil {
			return err
		}
		out = m
		return nil
	})
	if err != nil {
		return domain.RawMessage{}, err
	}
	return out, nil
}

// BySession returns a session's messages in sequence order
func (s *Svc) BySession(ctx context.Context, sessionID string) ([]domain.RawMessage, error) {
	if sessionID == "" {
		return nil, perr.InvalidArgf("session_id is required")
	}
	return s.Repo.ListBySession(ctx, sessionID)
}

// Pending returns consumable ledger entries oldest-first
func (s *Svc) Pending(ctx context.Context, limit int) ([]domain.PendingMessage, error) {
	if limit <= 0 {
		limit = 100
	}
	return s.Repo.ListPending(ctx, limit)
}

// SeedPending backfills ledger entries for unanalyzed messages
func (s *Svc) SeedPending(ctx context.Context) (int64, error) {
	return s.Repo.SeedPending(ctx)
}

// PurgeProcessed deletes consumed ledger rows
func (s *Svc) PurgeProcessed(ctx context.Context) (int64, error) {
	return s.Repo.PurgeProcessed(ctx)
}
