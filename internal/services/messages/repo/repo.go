// Package repo provides repository implementations for transcript messages
package repo

import (
	"context"

	"chatlens/internal/modkit/repokit"
	"chatlens/internal/services/messages/domain"
)

type binder struct{}

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the messages repository
type Storage interface {
	NextSequence(ctx context.Context, sessionID string) (int, error)
	Insert(ctx context.Context, in domain.AppendInput, seq int) (domain.RawMessage, error)
	Enqueue(ctx context.Context, messageID int64) error
	ListBySession(ctx context.Context, sessionID string) ([]domain.RawMessage, error)
	ListPending(ctx context.Context, limit int) ([]domain.PendingMessage, error)
	CountPending(ctx context.Context) (int64, error)
	MarkProcessed(ctx context.Context, messageID int64) error
	SeedPending(ctx context.Context) (int64, error)
	PurgeProcessed(ctx context.Context) (int64, error)
}

type pg struct{ q repokit.Queryer }

// NextSequence returns the next sequence number for a session.
// Callers must hold a transaction spanning this and the Insert
func (s *pg) NextSequence(ctx context.Context, sessionID string) (int, error) {
	const q = `
		SELECT COALESCE(MAX(sequence_number), 0) + 1
		FROM messages
		WHERE session_id = $1
	`
	var seq int
	if err := s.q.QueryRow(ctx, q, sessionID).Scan(&seq); err != nil {
		return 0, err
	}
	return seq, nil
}

// Insert stores one message and returns the persisted row
func (s *pg) Insert(ctx context.Context, in domain.AppendInput, seq int) (domain.RawMessage, error) {
	const q = `
		INSERT INTO messages (user_id, session_id, content, sequence_number)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	out := domain.RawMessage{
		UserID:         in.UserID,
		SessionID:      in.SessionID,
		Content:        in.Content,
		SequenceNumber: seq,
	}
	if err := s.q.QueryRow(ctx, q, in.UserID, in.SessionID, in.Content, seq).Scan(&out.ID, &out.CreatedAt); err != nil {
		return domain.RawMessage{}, err
	}
	return out, nil
}

// Enqueue records a message in the pending ledger
func (s *pg) Enqueue(ctx context.Context, messageID int64) error {
	const q = `
		INSERT INTO pending_messages (message_id)
		VALUES ($1)
		ON CONFLICT (message_id) DO NOTHING
	`
	_, err := s.q.Exec(ctx, q, messageID)
	return err
}

// ListBySession returns a session's messages in sequence order
func (s *pg) ListBySession(ctx context.Context, sessionID string) ([]domain.RawMessage, error) {
	const q = `
		SELECT id, user_id, session_id, content, sequence_number, created_at
		FROM messages
		WHERE session_id = $1
		ORDER BY sequence_number ASC
	`
	rows, err := s.q.Query(ctx, q, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.RawMessage
	for rows.Next() {
		var m domain.RawMessage
		if err := rows.Scan(&m.ID, &m.UserID, &m.SessionID, &m.Content, &m.SequenceNumber, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// ListPending returns consumable ledger entries oldest-first
func (s *pg) ListPending(ctx context.Context, limit int) ([]domain.PendingMessage, error) {
	const q = `
		SELECT m.id, m.user_id, m.session_id, m.content, m.sequence_number, m.created_at, p.enqueued_at
		FROM pending_messages p
		JOIN messages m ON m.id = p.message_id
		WHERE NOT p.processed
		ORDER BY p.enqueued_at ASC, m.id ASC
		LIMIT $1
	`
	rows, err := s.q.Query(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.PendingMessage
	for rows.Next() {
		var p domain.PendingMessage
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.SessionID, &p.Content, &p.SequenceNumber, &p.CreatedAt, &p.EnqueuedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// CountPending reports how many ledger entries remain consumable
func (s *pg) CountPending(ctx context.Context) (int64, error) {
	const q = `SELECT COUNT(*) FROM pending_messages WHERE NOT processed`
	var n int64
	if err := s.q.QueryRow(ctx, q).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// MarkProcessed flips a ledger entry to consumed
func (s *pg) MarkProcessed(ctx context.Context, messageID int64) error {
	const q = `
		UPDATE pending_messages
		SET processed = TRUE
		WHERE message_id = $1
	`
	_, err := s.q.Exec(ctx, q, messageID)
	return err
}

// SeedPending backfills ledger entries for messages that have neither
// a ledger row nor an analysis record. Returns the number enqueued
func (s *pg) SeedPending(ctx context.Context) (int64, error) {
	const q = `
		INSERT INTO pending_messages (message_id)
		SELECT m.id
		FROM messages m
		WHERE NOT EXISTS (SELECT 1 FROM pending_messages p WHERE p.message_id = m.id)
			AND NOT EXISTS (
				SELECT 1 FROM message_analytics a
				WHERE a.session_id = m.session_id AND a.sequence_number = m.sequence_number
			)
	`
	tag, err := s.q.Exec(ctx, q)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// PurgeProcessed deletes consumed ledger rows
func (s *pg) PurgeProcessed(ctx context.Context) (int64, error) {
	const q = `DELETE FROM pending_messages WHERE processed`
	tag, err := s.q.Exec(ctx, q)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
