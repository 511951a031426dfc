// Package parse extracts normalized role and text pairs from raw transcript payloads
// Pipeline order for text cleanup
// 1 UTF-8 repair drop invalid bytes
// 2 Unicode NFC normalization
// 3 Remove zero-width and format chars
// 4 Collapse whitespace to single spaces and trim
package parse

import (
	"encoding/json"
	"regexp"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Role classifies who produced a transcript message
type Role string

// Recognized roles
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// RoleFrom maps an arbitrary role string onto the recognized set.
// Unknown values map to system so they never reach the analyzer
func RoleFrom(s string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleUser:
		return RoleUser
	case RoleAssistant:
		return RoleAssistant
	case RoleSystem:
		return RoleSystem
	default:
		return RoleSystem
	}
}

// Message is the canonical extraction from one raw payload
type Message struct {
	Role Role
	Text string
}

// envelope mirrors the event wrapper the voice transport emits,
// eg {type:"conversation_item_added", item:{role, content:[...]}}
type envelope struct {
	Type string `json:"type"`
	Item *item  `json:"item"`
}

type item struct {
	Role    string            `json:"role"`
	Content []json.RawMessage `json:"content"`
}

// fragment covers the object-shaped content entries some transports produce
type fragment struct {
	Text       string `json:"text"`
	Transcript string `json:"transcript"`
}

// reprPattern matches the stringified event form found in older transcripts,
// eg {type='conversation_item_added' item=ChatMessage(role='assistant', content=[' hi '], ...)}
var reprPattern = regexp.MustCompile(`(?s)role='(\w+)'.*?content=\[(.*?)\]`)

// Parse extracts a best-effort Message from raw content. It never fails;
// structural mismatches fall back to treating the whole input as plain user text
func Parse(content string) Message {
	if m, ok := parseEnvelope(content); ok {
		return m
	}
	if m, ok := parseRepr(content); ok {
		return m
	}
	return Message{Role: RoleUser, Text: Clean(content)}
}

// parseEnvelope attempts the JSON event wrapper shape
func parseEnvelope(content string) (Message, bool) {
	var env envelope
	if err := json.Unmarshal([]byte(content), &env); err != nil {
		return Message{}, false
	}
	it := env.Item
	if it == nil {
		// some callers store the bare item without the event wrapper
		if err := json.Unmarshal([]byte(content), &it); err != nil || it == nil {
			return Message{}, false
		}
	}
	if it.Role == "" {
		return Message{}, false
	}

	var b strings.Builder
	for _, rawFrag := range it.Content {
		var s string
		if err := json.Unmarshal(rawFrag, &s); err == nil {
			b.WriteString(s)
			continue
		}
		var f fragment
		if err := json.Unmarshal(rawFrag, &f); err == nil {
			if f.Text != "" {
				b.WriteString(f.Text)
			} else {
				b.WriteString(f.Transcript)
			}
		}
	}
	return Message{Role: RoleFrom(it.Role), Text: Clean(b.String())}, true
}

// parseRepr attempts the stringified event form via regex extraction
func parseRepr(content string) (Message, bool) {
	m := reprPattern.FindStringSubmatch(content)
	if m == nil {
		return Message{}, false
	}
	text := strings.TrimSpace(m[2])
	text = strings.Trim(text, `'"`)
	text = strings.ReplaceAll(text, `\n`, " ")
	return Message{Role: RoleFrom(m[1]), Text: Clean(text)}, true
}

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		// order matters and mirrors the documented pipeline
		return transform.Chain(
			norm.NFC,
			runes.Remove(runes.In(unicode.Cf)), // strip format chars ZWJ ZWNJ FEFF etc
		)
	},
}

// Clean repairs encoding, strips invisible format characters and
// collapses whitespace runs to single spaces, trimming the ends
func Clean(s string) string {
	if s == "" {
		return ""
	}

	// 1 repair UTF-8 drop invalid bytes
	s = strings.ToValidUTF8(s, "")

	// 2-3 transform via pooled chain then reset and return it
	tr := chainPool.Get().(transform.Transformer)
	ns, _, _ := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)

	// 4 collapse whitespace and trim
	return strings.Join(strings.Fields(ns), " ")
}
