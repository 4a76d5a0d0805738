package item

import (
	"strings"

	"github.com/google/uuid"
)

// Kind identifies what a drag carries. Drop zones compare against it before
// accepting a drop.
type Kind string

const (
	// Card is the kind carried by every to-do item drag.
	Card Kind = "TODO_CARD"
)

// Item is a single to-do entry.
type Item struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// New creates an item with a fresh id. It returns false when text is blank.
func New(text string) (Item, bool) {
	if Blank(text) {
		return Item{}, false
	}
	return Item{ID: uuid.NewString(), Text: text}, true
}

// Blank reports whether text is empty or whitespace only.
func Blank(text string) bool {
	return strings.TrimSpace(text) == ""
}

func (i Item) Kind() Kind {
	return Card
}

// ShortID is the first eight characters of the id, enough to type on a
// command line.
func (i Item) ShortID() string {
	if len(i.ID) <= 8 {
		return i.ID
	}
	return i.ID[:8]
}

func (i Item) String() string {
	return i.Text
}

// Index returns the position of id within items, or -1.
func Index(items []Item, id string) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// Without returns a copy of items with every element matching id removed.
func Without(items []Item, id string) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}

// Copy returns a new slice holding the same items.
func Copy(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
