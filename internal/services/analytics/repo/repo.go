// Package repo provides repository implementations for message analytics
package repo

import (
	"context"
	"encoding/json"

	"chatlens/internal/modkit/repokit"
	"chatlens/internal/services/analytics/domain"
)

type binder struct{}

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the analytics repository
type Storage interface {
	Insert(ctx context.Context, rec domain.Record) (bool, error)
	Latest(ctx context.Context, limit int) ([]domain.Record, error)
	SentimentDistribution(ctx context.Context) ([]domain.SentimentBucket, error)
	KeywordFrequency(ctx context.Context, limit int) ([]domain.KeywordCount, error)
	Totals(ctx context.Context) (domain.Totals, error)
}

type pg struct{ q repokit.Queryer }

// Insert stores one analyzed message.
// The (session_id, sequence_number) unique index makes replays a no-op
func (s *pg) Insert(ctx context.Context, rec domain.Record) (bool, error) {
	const q = `
		INSERT INTO message_analytics (
			user_id, session_id, message, role, sequence_number, message_length,
			sentiment_score, sentiment_label, emotion_label, toxicity_flag, keywords
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (session_id, sequence_number) DO NOTHING
	`
	kw := rec.Keywords
	if kw == nil {
		kw = []string{}
	}
	kwJSON, err := json.Marshal(kw)
	if err != nil {
		return false, err
	}
	tag, err := s.q.Exec(ctx, q,
		rec.UserID, rec.SessionID, rec.Message, rec.Role, rec.SequenceNumber, rec.MessageLength,
		rec.SentimentScore, rec.SentimentLabel, rec.EmotionLabel, rec.ToxicityFlag, kwJSON,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Latest returns the most recent records, newest first
func (s *pg) Latest(ctx context.Context, limit int) ([]domain.Record, error) {
	const q = `
		SELECT id, user_id, session_id, message, role, sequence_number, message_length,
			sentiment_score, sentiment_label, emotion_label, toxicity_flag, keywords, created_at
		FROM message_analytics
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`
	rows, err := s.q.Query(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Record
	for rows.Next() {
		var r domain.Record
		var kw []byte
		if err := rows.Scan(
			&r.ID, &r.UserID, &r.SessionID, &r.Message, &r.Role, &r.SequenceNumber, &r.MessageLength,
			&r.SentimentScore, &r.SentimentLabel, &r.EmotionLabel, &r.ToxicityFlag, &kw, &r.CreatedAt,
		); err != nil {
			return nil, err
		}
		if len(kw) > 0 {
			if err := json.Unmarshal(kw, &r.Keywords); err != nil {
				return nil, err
			}
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// SentimentDistribution aggregates counts and average scores per label
func (s *pg) SentimentDistribution(ctx context.Context) ([]domain.SentimentBucket, error) {
	const q = `
		SELECT sentiment_label, COUNT(*), AVG(sentiment_score)
		FROM message_analytics
		GROUP BY sentiment_label
		ORDER BY COUNT(*) DESC
	`
	rows, err := s.q.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.SentimentBucket
	for rows.Next() {
		var b domain.SentimentBucket
		if err := rows.Scan(&b.Label, &b.Count, &b.AvgScore); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// KeywordFrequency unnests the keywords jsonb and counts occurrences
func (s *pg) KeywordFrequency(ctx context.Context, limit int) ([]domain.KeywordCount, error) {
	const q = `
		SELECT kw, COUNT(*) AS n
		FROM message_analytics, jsonb_array_elements_text(keywords) AS kw
		GROUP BY kw
		ORDER BY n DESC, kw ASC
		LIMIT $1
	`
	rows, err := s.q.Query(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.KeywordCount
	for rows.Next() {
		var k domain.KeywordCount
		if err := rows.Scan(&k.Keyword, &k.Count); err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, rows.Err()
}

// Totals returns table-wide counts
func (s *pg) Totals(ctx context.Context) (domain.Totals, error) {
	const q = `
		SELECT COUNT(*), COUNT(DISTINCT session_id), COUNT(DISTINCT user_id)
		FROM message_analytics
	`
	var t domain.Totals
	if err := s.q.QueryRow(ctx, q).Scan(&t.Messages, &t.Sessions, &t.Users); err != nil {
		return domain.Totals{}, err
	}
	return t, nil
}
