package content

import (
	"embed"
	"encoding/json"
	"fmt"
)

// ItemType identifies a drillable collection.
type ItemType string

const (
	TypeVocab   ItemType = "vocab"
	TypeGrammar ItemType = "grammar"
	TypeFix     ItemType = "fix"
)

// Entry is one learnable item. Which fields are populated depends on the
// collection: vocab entries carry korean/english, grammar entries carry
// pattern/meaning, fix entries carry incorrect/correct. The scheduling core
// treats entries as opaque and only the drill screens and the mistake
// projection read individual fields.
type Entry struct {
	Korean    string `json:"korean,omitempty"`
	English   string `json:"english,omitempty"`
	Notes     string `json:"notes,omitempty"`
	Example   string `json:"example,omitempty"`
	Pattern   string `json:"pattern,omitempty"`
	Meaning   string `json:"meaning,omitempty"`
	Incorrect string `json:"incorrect,omitempty"`
	Correct   string `json:"correct,omitempty"`
	Given     string `json:"given,omitempty"`
}

// Source supplies the category->entries mapping for a collection type.
type Source interface {
	Get(typ ItemType) (map[string][]Entry, error)
}

//go:embed data/*.json
var dataFS embed.FS

// EmbeddedSource serves the collections bundled with the binary.
type EmbeddedSource struct {
	cache map[ItemType]map[string][]Entry
}

// NewEmbeddedSource creates a source over the bundled data files.
func NewEmbeddedSource() *EmbeddedSource {
	return &EmbeddedSource{cache: make(map[ItemType]map[string][]Entry)}
}

// Get loads, validates, and caches the collection for typ.
func (s *EmbeddedSource) Get(typ ItemType) (map[string][]Entry, error) {
	if data, ok := s.cache[typ]; ok {
		return data, nil
	}

	raw, err := dataFS.ReadFile(fmt.Sprintf("data/%s.json", typ))
	if err != nil {
		return nil, fmt.Errorf("unknown collection %q: %w", typ, err)
	}

	var data map[string][]Entry
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse collection %q: %w", typ, err)
	}

	if err := Validate(typ, data); err != nil {
		return nil, err
	}

	s.cache[typ] = data
	return data, nil
}
