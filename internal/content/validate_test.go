package content

import (
	"errors"
	"testing"
)

func TestValidate_Vocab(t *testing.T) {
	tests := []struct {
		name      string
		entry     Entry
		wantField string
	}{
		{"complete", Entry{Korean: "밥", English: "rice"}, ""},
		{"missing korean", Entry{English: "rice"}, "korean"},
		{"missing english", Entry{Korean: "밥"}, "english"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(TypeVocab, map[string][]Entry{"food": {tt.entry}})
			checkValidation(t, err, tt.wantField)
		})
	}
}

func TestValidate_Grammar(t *testing.T) {
	tests := []struct {
		name      string
		entry     Entry
		wantField string
	}{
		{"complete", Entry{Pattern: "-(으)면", Meaning: "if/when"}, ""},
		{"missing pattern", Entry{Meaning: "if/when"}, "pattern"},
		{"missing meaning", Entry{Pattern: "-(으)면"}, "meaning"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(TypeGrammar, map[string][]Entry{"endings": {tt.entry}})
			checkValidation(t, err, tt.wantField)
		})
	}
}

func TestValidate_Fix(t *testing.T) {
	tests := []struct {
		name      string
		entry     Entry
		wantField string
	}{
		{"complete", Entry{Incorrect: "저는 밥이 먹어요", Correct: "저는 밥을 먹어요"}, ""},
		{"missing incorrect", Entry{Correct: "저는 밥을 먹어요"}, "incorrect"},
		{"missing correct", Entry{Incorrect: "저는 밥이 먹어요"}, "correct"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(TypeFix, map[string][]Entry{"particles": {tt.entry}})
			checkValidation(t, err, tt.wantField)
		})
	}
}

func checkValidation(t *testing.T, err error, wantField string) {
	t.Helper()
	if wantField == "" {
		if err != nil {
			t.Fatalf("Validate: %v", err)
		}
		return
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	if verr.Field != wantField {
		t.Errorf("missing field = %q, want %q", verr.Field, wantField)
	}
}

func TestValidate_ReportsPosition(t *testing.T) {
	data := map[string][]Entry{
		"food": {
			{Korean: "밥", English: "rice"},
			{Korean: "물"},
		},
	}
	err := Validate(TypeVocab, data)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	if verr.Category != "food" || verr.Index != 1 {
		t.Errorf("position = %s[%d], want food[1]", verr.Category, verr.Index)
	}
}

func TestEmbeddedSource_AllCollectionsValid(t *testing.T) {
	src := NewEmbeddedSource()
	for _, typ := range []ItemType{TypeVocab, TypeGrammar, TypeFix} {
		data, err := src.Get(typ)
		if err != nil {
			t.Fatalf("Get(%s): %v", typ, err)
		}
		if len(data) == 0 {
			t.Errorf("collection %s is empty", typ)
		}
	}
}

func TestEmbeddedSource_UnknownCollection(t *testing.T) {
	src := NewEmbeddedSource()
	if _, err := src.Get(ItemType("nope")); err == nil {
		t.Fatal("expected error for unknown collection")
	}
}
