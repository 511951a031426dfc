// Package service contains analytics workflows
package service

import (
	"context"

	"chatlens/internal/modkit/repokit"
	"chatlens/internal/services/analytics/domain"
	"chatlens/internal/services/analytics/repo"
)

// displayLimit caps how much message text the read surface returns
const displayLimit = 100

// Service defines the analytics service contract
type Service interface {
	domain.RecorderPort
	domain.ReaderPort
}

// Svc implements the analytics service
type Svc struct {
	Repo   repo.Storage
	binder repokit.Binder[repo.Storage]
	db     repokit.TxRunner
}

// New constructs an analytics service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Storage]) *Svc {
	if db == nil {
		panic("analytics.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("analytics.Service requires a non nil Storage binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// Record inserts one analyzed message
func (s *Svc) Record(ctx context.Context, rec domain.Record) (bool, error) {
	return s.Repo.Insert(ctx, rec)
}

// Latest returns the most recent records with display truncation
func (s *Svc) Latest(ctx context.Context, limit int) ([]domain.Record, error) {
	if limit <= 0 || limit > 50 {
		limit = 50
	}
	rows, err := s.Repo.Latest(ctx, limit)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Message = truncate(rows[i].Message, displayLimit)
	}
	return rows, nil
}

// SentimentDistribution aggregates counts and average scores per label
func (s *Svc) SentimentDistribution(ctx context.Context) ([]domain.SentimentBucket, error) {
	return s.Repo.SentimentDistribution(ctx)
}

// KeywordFrequency returns the most frequent keywords
func (s *Svc) KeywordFrequency(ctx context.Context, limit int) ([]domain.KeywordCount, error) {
	if limit <= 0 || limit > 20 {
		limit = 20
	}
	return s.Repo.KeywordFrequency(ctx, limit)
}

// Summary returns table-wide totals
func (s *Svc) Summary(ctx context.Context) (domain.Totals, error) {
	return s.Repo.Totals(ctx)
}

// truncate keeps at most n runes so multibyte text never splits mid-character
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
