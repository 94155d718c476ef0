package store

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCategory always exists and absorbs uncategorised entries.
const DefaultCategory = "default"

// CurrentVersion is written into every saved document.
const CurrentVersion = 1

// Entry is a single calendar event.
type Entry struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Category string    `json:"category"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Notes    string    `json:"notes,omitempty"`
}

// Category groups entries and carries their colour.
type Category struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Preferences are the persisted user toggles.
type Preferences struct {
	ShortcutsEnabled  bool `json:"shortcutsEnabled"`
	AnimationsEnabled bool `json:"animationsEnabled"`
}

// Data is the whole persisted document; it is also the export/import format.
type Data struct {
	Version     int         `json:"version"`
	Entries     []Entry     `json:"entries"`
	Categories  []Category  `json:"categories"`
	Preferences Preferences `json:"preferences"`
}

// NewData returns an empty document holding only the default category.
func NewData() Data {
	return Data{
		Version:    CurrentVersion,
		Entries:    []Entry{},
		Categories: []Category{{Name: DefaultCategory, Color: "#64748B"}},
		Preferences: Preferences{
			ShortcutsEnabled:  true,
			AnimationsEnabled: true,
		},
	}
}

// Normalize fills ids, ensures the default category and fixes dangling
// category references. It mutates d in place.
func (d *Data) Normalize() {
	if d.Version == 0 {
		d.Version = CurrentVersion
	}
	if d.Entries == nil {
		d.Entries = []Entry{}
	}

	known := make(map[string]bool, len(d.Categories)+1)
	hasDefault := false
	cats := make([]Category, 0, len(d.Categories)+1)
	for _, c := range d.Categories {
		if c.Name == "" || known[c.Name] {
			continue
		}
		known[c.Name] = true
		if c.Name == DefaultCategory {
			hasDefault = true
		}
		cats = append(cats, c)
	}
	if !hasDefault {
		cats = append([]Category{{Name: DefaultCategory, Color: "#64748B"}}, cats...)
		known[DefaultCategory] = true
	}
	d.Categories = cats

	for i := range d.Entries {
		if d.Entries[i].ID == "" {
			d.Entries[i].ID = uuid.NewString()
		}
		if !known[d.Entries[i].Category] {
			d.Entries[i].Category = DefaultCategory
		}
	}
}

func (d Data) clone() Data {
	out := d
	out.Entries = append([]Entry(nil), d.Entries...)
	out.Categories = append([]Category(nil), d.Categories...)
	return out
}
