// Package service contains ingest API workflows
package service

import (
	"context"

	"chatlens/internal/services/api/ingest/domain"
	msgdom "chatlens/internal/services/messages/domain"
)

// Service defines the ingest service contract
type Service interface {
	domain.ServicePort
}

// Svc adapts the messages ports to the API surface
type Svc struct {
	writer msgdom.WriterPort
	reader msgdom.ReaderPort
}

// New constructs an ingest service
func New(writer msgdom.WriterPort, reader msgdom.ReaderPort) *Svc {
	if writer == nil || reader == nil {
		panic("ingest.Service requires messages ports")
	}
	return &Svc{writer: writer, reader: reader}
}

// Append stores one message and enqueues it for analysis
func (s *Svc) Append(ctx context.Context, in domain.AppendInput) (domain.MessageRow, error) {
	m, err := s.writer.Append(ctx, msgdom.AppendInput{
		UserID:    in.UserID,
		SessionID: in.SessionID,
		Content:   in.Content,
	})
	if err != nil {
		return domain.MessageRow{}, err
	}
	return row(m), nil
}

// BySession returns a session's messages in sequence order
func (s *Svc) BySession(ctx context.Context, sessionID string) ([]domain.MessageRow, error) {
	msgs, err := s.reader.BySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.MessageRow, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, row(m))
	}
	return out, nil
}

func row(m msgdom.RawMessage) domain.MessageRow {
	return domain.MessageRow{
		ID:             m.ID,
		UserID:         m.UserID,
		SessionID:      m.SessionID,
		Content:        m.Content,
		SequenceNumber: m.SequenceNumber,
		CreatedAt:      m.CreatedAt,
	}
}
