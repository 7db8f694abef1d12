package drill

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/samber/lo"

	"github.com/baeum-app/baeum/internal/content"
)

// Item is one reviewable entry in a session pool. The ID is deterministic
// across runs ("{type}:{category}:{index}") so the schedule mapping stays
// meaningful as content grows.
type Item struct {
	ID       string
	Type     content.ItemType
	Category string
	Entry    content.Entry
}

// BuildPool flattens one category (or every category, when category is
// empty) of a collection into an ordered pool. Content is validated eagerly;
// a malformed entry fails the whole build before any session starts.
func BuildPool(src content.Source, typ content.ItemType, category string) ([]Item, error) {
	data, err := src.Get(typ)
	if err != nil {
		return nil, err
	}
	if err := content.Validate(typ, data); err != nil {
		return nil, err
	}

	cats := []string{category}
	if category == "" {
		cats = lo.Keys(data)
		sort.Strings(cats)
	}

	var pool []Item
	for _, cat := range cats {
		entries, ok := data[cat]
		if !ok {
			continue
		}
		for i, entry := range entries {
			pool = append(pool, Item{
				ID:       fmt.Sprintf("%s:%s:%d", typ, cat, i),
				Type:     typ,
				Category: cat,
				Entry:    entry,
			})
		}
	}
	return pool, nil
}

// DueSelector is the slice of the SRS engine the prioritizer needs.
type DueSelector interface {
	DueCards(ids []string) []string
}

// Prioritize selects up to limit items for a session: the due subset first
// (shuffled), topped up with shuffled not-yet-due items. Due items always
// win over new ones; ordering within each class is random per invocation.
func Prioritize(pool []Item, limit int, sel DueSelector, rng *rand.Rand) []Item {
	if limit <= 0 || len(pool) == 0 {
		return nil
	}

	ids := lo.Map(pool, func(it Item, _ int) string { return it.ID })
	dueSet := lo.SliceToMap(sel.DueCards(ids), func(id string) (string, struct{}) {
		return id, struct{}{}
	})

	due := lo.Filter(pool, func(it Item, _ int) bool {
		_, ok := dueSet[it.ID]
		return ok
	})
	shuffle(due, rng)
	if len(due) > limit {
		due = due[:limit]
	}

	session := due
	if len(session) < limit {
		rest := lo.Filter(pool, func(it Item, _ int) bool {
			_, ok := dueSet[it.ID]
			return !ok
		})
		shuffle(rest, rng)
		need := limit - len(session)
		if need > len(rest) {
			need = len(rest)
		}
		session = append(session, rest[:need]...)
	}
	return session
}

// shuffle is a uniform Fisher-Yates over the given source.
func shuffle(items []Item, rng *rand.Rand) {
	rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}
