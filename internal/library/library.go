// Package library manages user collections of saved items. State is
// session-local; the seeded collections mirror a fresh profile.
package library

import (
	"strings"

	"flowpilot/internal/model"
	"flowpilot/internal/store"
)

// ValidationError carries a message meant for the user, not the log.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

type CollectionDraft struct {
	Name        string
	Description string
	Icon        model.IconKind
	Color       [2]string
}

type Model struct {
	collections []model.Collection
}

func NewModel() *Model {
	return &Model{collections: SeedCollections()}
}

// SeedCollections returns the three starter collections of a fresh profile.
func SeedCollections() []model.Collection {
	return []model.Collection{
		{
			ID:          "1",
			Name:        "My Inspiration",
			Description: "Quotes and ideas that motivate me",
			Color:       [2]string{"#6D9886", "#A8C5B8"},
			Icon:        model.IconStar,
			CreatedAt:   "Just created",
		},
		{
			ID:          "2",
			Name:        "Learning Journey",
			Description: "Books and articles to read",
			Color:       [2]string{"#FF6B35", "#FF8A65"},
			Icon:        model.IconBook,
			CreatedAt:   "Just created",
		},
		{
			ID:          "3",
			Name:        "Mindfulness",
			Description: "Wellness tips and practices",
			Color:       [2]string{"#A8C5B8", "#9B7EBD"},
			Icon:        model.IconHeart,
			CreatedAt:   "Just created",
		},
	}
}

func (m *Model) Collections() []model.Collection {
	return append([]model.Collection(nil), m.collections...)
}

// AddCollection validates the draft and appends a new collection. A blank name
// leaves the model untouched.
func (m *Model) AddCollection(draft CollectionDraft) (model.Collection, error) {
	name := strings.TrimSpace(draft.Name)
	if name == "" {
		return model.Collection{}, &ValidationError{Message: "Please enter a collection name"}
	}
	icon := draft.Icon
	if icon == "" {
		icon = model.IconStar
	}
	color := draft.Color
	if color[0] == "" {
		color = [2]string{"#6D9886", "#A8C5B8"}
	}
	c := model.Collection{
		ID:          store.MustNewID("col"),
		Name:        name,
		Description: strings.TrimSpace(draft.Description),
		Color:       color,
		Icon:        icon,
		CreatedAt:   "Just created",
	}
	m.collections = append(m.collections, c)
	return c, nil
}

// SaveItem appends an item to the named collection and bumps its count.
func (m *Model) SaveItem(collectionID string, item model.SavedItem) bool {
	for i := range m.collections {
		if m.collections[i].ID == collectionID {
			if item.ID == "" {
				item.ID = store.MustNewID("item")
			}
			m.collections[i].Items = append(m.collections[i].Items, item)
			m.collections[i].ItemCount = len(m.collections[i].Items)
			return true
		}
	}
	return false
}

// Search matches saved items by title, content or author, case-insensitive.
// A blank or whitespace query means "not searching" and returns nothing.
func (m *Model) Search(query string) []model.SavedItem {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []model.SavedItem
	for _, c := range m.collections {
		for _, it := range c.Items {
			if strings.Contains(strings.ToLower(it.Title), q) ||
				strings.Contains(strings.ToLower(it.Content), q) ||
				strings.Contains(strings.ToLower(it.Author), q) {
				out = append(out, it)
			}
		}
	}
	return out
}

// IconChoices lists the icons offered by the create-collection form.
func IconChoices() []model.IconKind {
	return []model.IconKind{
		model.IconStar, model.IconBook, model.IconHeart,
		model.IconSparkles, model.IconTarget, model.IconQuote,
	}
}

// ColorChoices lists the gradient pairs offered by the create-collection form.
func ColorChoices() [][2]string {
	return [][2]string{
		{"#6D9886", "#A8C5B8"},
		{"#FF6B35", "#FF8A65"},
		{"#A8C5B8", "#9B7EBD"},
		{"#45B7D1", "#85C1E9"},
		{"#F7DC6F", "#FFEAA7"},
	}
}
