package drill

import "github.com/baeum-app/baeum/internal/content"

// Mistake is a pool item the learner got wrong, tagged with its drill kind
// so the summary can project it uniformly.
type Mistake struct {
	Item Item
}

// Display is the uniform two-line projection of a mistake.
type Display struct {
	Primary   string
	Secondary string
}

// Display resolves the per-kind entry fields once, at summary time.
func (m Mistake) Display() Display {
	e := m.Item.Entry
	switch m.Item.Type {
	case content.TypeVocab:
		return Display{Primary: e.Korean, Secondary: e.English}
	case content.TypeGrammar:
		return Display{Primary: e.Pattern, Secondary: e.Meaning}
	case content.TypeFix:
		return Display{Primary: e.Incorrect, Secondary: e.Correct}
	}
	return Display{
		Primary:   firstNonEmpty(e.Korean, e.Pattern, e.Incorrect, e.Given),
		Secondary: firstNonEmpty(e.English, e.Meaning, e.Correct),
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
