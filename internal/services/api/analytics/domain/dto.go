// Package domain holds DTOs for analytics http and service contracts
package domain

import "time"

// LatestRow is one analyzed message shaped for display
// Message text is truncated server side
type LatestRow struct {
	ID             int64     `json:"id" example:"42"`
	UserID         int64     `json:"user_id" example:"1"`
	SessionID      string    `json:"session_id" example:"9f1c2d3e"`
	Message        string    `json:"message" example:"hello there"`
	Role           string    `json:"role" example:"user"`
	SequenceNumber int       `json:"sequence_number" example:"3"`
	MessageLength  int       `json:"message_length" example:"11"`
	SentimentScore float64   `json:"sentiment_score" example:"0.8"`
	SentimentLabel string    `json:"sentiment_label" example:"positive"`
	EmotionLabel   string    `json:"emotion_label" example:"joy"`
	ToxicityFlag   bool      `json:"toxicity_flag" example:"false"`
	Keywords       []string  `json:"keywords"`
	CreatedAt      time.Time `json:"created_at"`
}

// SentimentBucket aggregates one sentiment label
type SentimentBucket struct {
	Label    string  `json:"label" example:"positive"`
	Count    int64   `json:"count" example:"120"`
	AvgScore float64 `json:"avg_score" example:"0.54"`
}

// KeywordRow is one keyword with its occurrence count
type KeywordRow struct {
	Keyword string `json:"keyword" example:"billing"`
	Count   int64  `json:"count" example:"17"`
}

// TotalsRow summarizes the analytics table
type TotalsRow struct {
	Messages int64 `json:"total_messages" example:"240"`
	Sessions int64 `json:"total_sessions" example:"31"`
	Users    int64 `json:"total_users" example:"12"`
}

// Overview bundles every read into one payload
type Overview struct {
	Latest    []LatestRow       `json:"latest_messages"`
	Sentiment []SentimentBucket `json:"sentiment_distribution"`
	Keywords  []KeywordRow      `json:"keyword_frequency"`
	Totals    TotalsRow         `json:"totals"`
}
