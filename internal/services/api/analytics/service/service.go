// Package service contains analytics API workflows
package service

import (
	"context"

	andom "chatlens/internal/services/analytics/domain"
	"chatlens/internal/services/api/analytics/domain"
)

// Service defines the analytics API service contract
type Service interface {
	domain.ServicePort
}

// Svc adapts the analytics reader port to the API surface
type Svc struct {
	reader andom.ReaderPort
}

// New constructs an analytics API service
func New(reader andom.ReaderPort) *Svc {
	if reader == nil {
		panic("analytics.Service requires a reader port")
	}
	return &Svc{reader: reader}
}

// Latest returns the most recent analyzed messages, newest first
func (s *Svc) Latest(ctx context.Context, limit int) ([]domain.LatestRow, error) {
	recs, err := s.reader.Latest(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]domain.LatestRow, 0, len(recs))
	for _, r := range recs {
		out = append(out, latestRow(r))
	}
	return out, nil
}

// Sentiment aggregates counts and average scores per label
func (s *Svc) Sentiment(ctx context.Context) ([]domain.SentimentBucket, error) {
	buckets, err := s.reader.SentimentDistribution(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.SentimentBucket, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, domain.SentimentBucket{Label: b.Label, Count: b.Count, AvgScore: b.AvgScore})
	}
	return out, nil
}

// Keywords returns the most frequent keywords
func (s *Svc) Keywords(ctx context.Context, limit int) ([]domain.KeywordRow, error) {
	counts, err := s.reader.KeywordFrequency(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]domain.KeywordRow, 0, len(counts))
	for _, k := range counts {
		out = append(out, domain.KeywordRow{Keyword: k.Keyword, Count: k.Count})
	}
	return out, nil
}

// Totals returns table-wide totals
func (s *Svc) Totals(ctx context.Context) (domain.TotalsRow, error) {
	t, err := s.reader.Summary(ctx)
	if err != nil {
		return domain.TotalsRow{}, err
	}
	return domain.TotalsRow{Messages: t.Messages, Sessions: t.Sessions, Users: t.Users}, nil
}

// Overview bundles every read into one payload
func (s *Svc) Overview(ctx context.Context) (domain.Overview, error) {
	latest, err := s.Latest(ctx, 0)
	if err != nil {
		return domain.Overview{}, err
	}
	sentiment, err := s.Sentiment(ctx)
	if err != nil {
		return domain.Overview{}, err
	}
	keywords, err := s.Keywords(ctx, 0)
	if err != nil {
		return domain.Overview{}, err
	}
	totals, err := s.Totals(ctx)
	if err != nil {
		return domain.Overview{}, err
	}
	return domain.Overview{
		Latest:    latest,
		Sentiment: sentiment,
		Keywords:  keywords,
		Totals:    totals,
	}, nil
}

func latestRow(r andom.Record) domain.LatestRow {
	return domain.LatestRow{
		ID:             r.ID,
		UserID:         r.UserID,
		SessionID:      r.SessionID,
		Message:        r.Message,
		Role:           r.Role,
		SequenceNumber: r.SequenceNumber,
		MessageLength:  r.MessageLength,
		SentimentScore: r.SentimentScore,
		SentimentLabel: r.SentimentLabel,
		EmotionLabel:   r.EmotionLabel,
		ToxicityFlag:   r.ToxicityFlag,
		Keywords:       r.Keywords,
		CreatedAt:      r.CreatedAt,
	}
}
