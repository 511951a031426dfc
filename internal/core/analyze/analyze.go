// Package analyze validates model output into bounded analytics outcomes
package analyze

import (
	"strings"
)

// Sentiment labels
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// EmotionNeutral is the fallback emotion label
const EmotionNeutral = "neutral"

// MaxKeywords caps stored keywords per message so storage stays bounded
const MaxKeywords = 10

// fixed thresholds for deriving a sentiment label from a score
const (
	positiveThreshold = 0.15
	negativeThreshold = -0.15
)

// emotions is the recognized emotion label set
var emotions = map[string]struct{}{
	"joy":      {},
	"sadness":  {},
	"anger":    {},
	"fear":     {},
	"surprise": {},
	"disgust":  {},
	"neutral":  {},
}

// Raw is the loosely structured payload a model call produces.
// Pointer score distinguishes absent from zero
type Raw struct {
	SentimentScore *float64 `json:"sentiment_score"`
	SentimentLabel string   `json:"sentiment_label"`
	EmotionLabel   string   `json:"emotion_label"`
	Keywords       []string `json:"keywords"`
}

// Outcome is a validated analysis result safe to persist
type Outcome struct {
	SentimentScore float64
	SentimentLabel string
	EmotionLabel   string
	Keywords       []string
}

// Neutral returns the fallback outcome used when analysis fails
func Neutral() Outcome {
	return Outcome{
		SentimentScore: 0,
		SentimentLabel: SentimentNeutral,
		EmotionLabel:   EmotionNeutral,
		Keywords:       []string{},
	}
}

// LabelFor derives a sentiment label from a score using the fixed thresholds
func LabelFor(score float64) string {
	switch {
	case score > positiveThreshold:
		return SentimentPositive
	case score < negativeThreshold:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

// Validate clamps and normalizes a raw model payload into an Outcome.
// Every field is bounded; garbage in still yields a usable result
func Validate(in Raw) Outcome {
	out := Outcome{Keywords: []string{}}

	// score: absent defaults to 0, out of range clamps
	if in.SentimentScore != nil {
		out.SentimentScore = clamp(*in.SentimentScore, -1, 1)
	}

	// label: accept only the known set, otherwise derive from the clamped score
	label := strings.ToLower(strings.TrimSpace(in.SentimentLabel))
	switch label {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		out.SentimentLabel = label
	default:
		out.SentimentLabel = LabelFor(out.SentimentScore)
	}

	// emotion: unrecognized maps to neutral
	emotion := strings.ToLower(strings.TrimSpace(in.EmotionLabel))
	if _, ok := emotions[emotion]; !ok {
		emotion = EmotionNeutral
	}
	out.EmotionLabel = emotion

	// keywords: trimmed, non-empty, capped
	for _, k := range in.Keywords {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		out.Keywords = append(out.Keywords, k)
		if len(out.Keywords) == MaxKeywords {
			break
		}
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
