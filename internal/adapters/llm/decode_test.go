package llm

import (
	"testing"
)

func TestDecodeModelJSON_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		wantErr bool
		score   float64
		label   string
	}{
		{
			name:  "clean json",
			in:    `{"sentiment_score":0.7,"sentiment_label":"positive","emotion_label":"joy","keywords":["a"]}`,
			score: 0.7,
			label: "positive",
		},
		{
			name:  "surrounding whitespace",
			in:    "\n  {\"sentiment_score\":-0.3,\"sentiment_label\":\"negative\",\"emotion_label\":\"anger\",\"keywords\":[]}  \n",
			score: -0.3,
			label: "negative",
		},
		{
			name:  "markdown fenced",
			in:    "```json\n{\"sentiment_score\":0.1,\"sentiment_label\":\"neutral\",\"emotion_label\":\"neutral\",\"keywords\":[]}\n```",
			score: 0.1,
			label: "neutral",
		},
		{
			name:  "prose around the object",
			in:    `Here is the analysis: {"sentiment_score":0.9,"sentiment_label":"positive","emotion_label":"joy","keywords":["great"]} hope that helps`,
			score: 0.9,
			label: "positive",
		},
		{
			name:    "empty output",
			in:      "",
			wantErr: true,
		},
		{
			name:    "no object at all",
			in:      "sorry, I cannot do that",
			wantErr: true,
		},
		{
			name:    "broken json inside braces",
			in:      `{"sentiment_score": oops}`,
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out analysisResult
			err := decodeModelJSON(tc.in, &out)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", out)
				}
				return
			}
			if err != nil {
				t.Fatalf("decodeModelJSON error: %v", err)
			}
			if out.SentimentScore != tc.score || out.SentimentLabel != tc.label {
				t.Fatalf("decoded %+v, want score=%v label=%q", out, tc.score, tc.label)
			}
		})
	}
}

func TestGenerateSchema_StrictObject(t *testing.T) {
	t.Parallel()

	schema := generateSchema[analysisResult]()

	if schema[typeKey] != "object" {
		t.Fatalf("schema type = %v, want object", schema[typeKey])
	}
	if ap, ok := schema[additionalPropertiesKey].(bool); !ok || ap {
		t.Fatalf("additionalProperties = %v, want false", schema[additionalPropertiesKey])
	}

	props, ok := schema[propertiesKey].(map[string]interface{})
	if !ok {
		t.Fatalf("schema has no properties map")
	}
	for _, want := range []string{"sentiment_score", "sentiment_label", "emotion_label", "keywords"} {
		if _, ok := props[want]; !ok {
			t.Fatalf("schema missing property %q", want)
		}
	}

	req, ok := schema[requiredKey].([]string)
	if !ok {
		t.Fatalf("schema required is %T, want []string", schema[requiredKey])
	}
	if len(req) != len(props) {
		t.Fatalf("required has %d entries, want %d", len(req), len(props))
	}
}
