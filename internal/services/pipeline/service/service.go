// Package service contains the message analysis pipeline
package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"chatlens/internal/core/analyze"
	"chatlens/internal/core/parse"
	"chatlens/internal/modkit/repokit"
	"chatlens/internal/modkit/scope"
	"chatlens/internal/platform/logger"
	"chatlens/internal/platform/store"

	andom "chatlens/internal/services/analytics/domain"
	anrepo "chatlens/internal/services/analytics/repo"
	msgrepo "chatlens/internal/services/messages/repo"
	"chatlens/internal/services/pipeline/domain"
)

// Service implements domain.RunnerPort
type Service struct {
	db       repokit.TxRunner
	messages repokit.Binder[msgrepo.Storage]
	records  repokit.Binder[anrepo.Storage]
	analyzer *analyze.Analyzer
	log      logger.Logger
}

// New constructs a pipeline service
func New(
	db repokit.TxRunner,
	messages repokit.Binder[msgrepo.Storage],
	records repokit.Binder[anrepo.Storage],
	analyzer *analyze.Analyzer,
	log logger.Logger,
) *Service {
	if db == nil {
		panic("pipeline.Service requires a non nil TxRunner")
	}
	if messages == nil || records == nil {
		panic("pipeline.Service requires non nil repo binders")
	}
	if analyzer == nil {
		panic("pipeline.Service requires a non nil Analyzer")
	}
	return &Service{
		db:       db,
		messages: messages,
		records:  records,
		analyzer: analyzer,
		log:      log,
	}
}

// ProcessSession analyzes every user message in one session.
// Each message commits in its own transaction so one bad row
// cannot hold the rest of the session hostage
func (s *Service) ProcessSession(ctx context.Context, sessionID string) (domain.SessionResult, error) {
	res := domain.SessionResult{Success: true, SessionID: sessionID}

	trigger, _ := scope.Get(ctx, "trigger")
	s.log.Info().
		Str("session_id", sessionID).
		Str("trigger", trigger).
		Msg("processing session")

	msgs, err := s.messages.Bind(s.db).ListBySession(ctx, sessionID)
	if err != nil {
		res.Success = false
		res.Error = err.Error()
		return res, err
	}
	res.TotalMessages = len(msgs)

	var faults []string
	for _, m := range msgs {
		parsed := parse.Parse(m.Content)
		if parsed.Role != parse.RoleUser {
			continue
		}
		text := parse.Clean(parsed.Text)
		if text == "" {
			continue
		}
		res.UserMessages++

		outcome := s.analyzer.Message(ctx, text)
		inserted, err := s.recordMessage(ctx, m.ID, record(m.UserID, sessionID, m.SequenceNumber, text, outcome))
		if err != nil {
			s.log.Error().Err(err).
				Str("session_id", sessionID).
				Int("sequence_number", m.SequenceNumber).
				Msg("record write failed")
			faults = append(faults, err.Error())
			continue
		}
		if inserted {
			res.ProcessedCount++
		}
	}

	if len(faults) > 0 {
		res.Success = false
		res.Error = strings.Join(faults, "; ")
	}
	return res, nil
}

// ProcessPending drains the pending ledger across sessions.
// Entries whose payload yields no analyzable user text are still
// marked consumed so they are not retried forever
func (s *Service) ProcessPending(ctx context.Context, limit int) (domain.PendingResult, error) {
	res := domain.PendingResult{Success: true}
	if limit <= 0 {
		limit = 100
	}

	trigger, _ := scope.Get(ctx, "trigger")

	reader := s.messages.Bind(s.db)
	total, err := reader.CountPending(ctx)
	if err != nil {
		res.Success = false
		res.Error = err.Error()
		return res, err
	}
	res.TotalPending = total

	pend, err := reader.ListPending(ctx, limit)
	if err != nil {
		res.Success = false
		res.Error = err.Error()
		return res, err
	}
	res.Retrieved = len(pend)

	s.log.Info().
		Int64("pending", total).
		Int("retrieved", len(pend)).
		Str("trigger", trigger).
		Msg("draining pending ledger")

	var faults []string
	for _, p := range pend {
		parsed := parse.Parse(p.Content)
		text := parse.Clean(parsed.Text)

		if parsed.Role != parse.RoleUser || text == "" {
			if err := s.consumeOnly(ctx, p.SessionID, p.ID); err != nil {
				faults = append(faults, err.Error())
			}
			continue
		}

		outcome := s.analyzer.Message(ctx, text)
		inserted, err := s.recordMessage(ctx, p.ID, record(p.UserID, p.SessionID, p.SequenceNumber, text, outcome))
		if err != nil {
			s.log.Error().Err(err).
				Str("session_id", p.SessionID).
				Int("sequence_number", p.SequenceNumber).
				Msg("record write failed")
			faults = append(faults, err.Error())
			continue
		}
		if inserted {
			res.ProcessedCount++
		}
	}

	if len(faults) > 0 {
		res.Success = false
		res.Error = strings.Join(faults, "; ")
	}
	return res, nil
}

// recordMessage inserts the analytics row and flips the ledger entry
// in one transaction. A duplicate insert still consumes the ledger entry
func (s *Service) recordMessage(ctx context.Context, messageID int64, rec andom.Record) (bool, error) {
	var inserted bool
	err := store.RunInSession(ctx, s.db, rec.SessionID, func(ctx context.Context, q store.RowQuerier) error {
		var err error
		inserted, err = s.records.Bind(q).Insert(ctx, rec)
		if err != nil {
			return err
		}
		return s.messages.Bind(q).MarkProcessed(ctx, messageID)
	})
	if err != nil {
		return false, err
	}
	return inserted, nil
}

// consumeOnly marks a ledger entry processed without writing analytics
func (s *Service) consumeOnly(ctx context.Context, sessionID string, messageID int64) error {
	return store.RunInSession(ctx, s.db, sessionID, func(ctx context.Context, q store.RowQuerier) error {
		return s.messages.Bind(q).MarkProcessed(ctx, messageID)
	})
}

func record(userID int64, sessionID string, seq int, text string, out analyze.Outcome) andom.Record {
	if userID <= 0 {
		userID = 1
	}
	return andom.Record{
		UserID:         userID,
		SessionID:      sessionID,
		Message:        text,
		Role:           string(parse.RoleUser),
		SequenceNumber: seq,
		MessageLength:  utf8.RuneCountInString(text),
		SentimentScore: out.SentimentScore,
		SentimentLabel: out.SentimentLabel,
		EmotionLabel:   out.EmotionLabel,
		Keywords:       out.Keywords,
	}
}
