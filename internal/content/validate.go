package content

import "fmt"

// ValidationError reports a malformed entry in a collection. Raised eagerly
// when a pool is built, before any session starts.
type ValidationError struct {
	Type     ItemType
	Category string
	Index    int
	Field    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s collection: entry %d in %q missing %s", e.Type, e.Index, e.Category, e.Field)
}

// Validate checks that every entry in the collection carries the fields its
// type requires. The first missing field aborts the check.
func Validate(typ ItemType, data map[string][]Entry) error {
	for cat, entries := range data {
		for i, e := range entries {
			if field := missingField(typ, e); field != "" {
				return &ValidationError{Type: typ, Category: cat, Index: i, Field: field}
			}
		}
	}
	return nil
}

func missingField(typ ItemType, e Entry) string {
	switch typ {
	case TypeVocab:
		if e.Korean == "" {
			return "korean"
		}
		if e.English == "" {
			return "english"
		}
	case TypeGrammar:
		if e.Pattern == "" {
			return "pattern"
		}
		if e.Meaning == "" {
			return "meaning"
		}
	case TypeFix:
		if e.Incorrect == "" {
			return "incorrect"
		}
		if e.Correct == "" {
			return "correct"
		}
	}
	return ""
}
