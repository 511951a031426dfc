// Package domain defines core types and interfaces for message analytics
package domain

import "time"

// Record is one analyzed message row
type Record struct {
	ID             int64
	UserID         int64
	SessionID      string
	Message        string
	Role           string
	SequenceNumber int
	MessageLength  int
	SentimentScore float64
	SentimentLabel string
	EmotionLabel   string
	ToxicityFlag   bool
	Keywords       []string
	CreatedAt      time.Time
}

// SentimentBucket aggregates one sentiment label
type SentimentBucket struct {
	Label    string
	Count    int64
	AvgScore float64
}

// KeywordCount is one keyword with its occurrence count
type KeywordCount struct {
	Keyword string
	Count   int64
}

// Totals summarizes the analytics table
type Totals struct {
	Messages int64
	Sessions int64
	Users    int64
}
