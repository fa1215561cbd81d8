// Package dialog collects the values a template needs from the user: the
// insert-template menu and the small property dialogs behind each entry.
package dialog

import (
	"errors"
	"fmt"

	"github.com/chriscorrea/snip/internal/templates"
)

// ErrDismissed is returned when the user closes a dialog without confirming
var ErrDismissed = errors.New("dialog dismissed")

// Author holds the fields of the license dialog
type Author struct {
	Name string
	Mail string
}

// MenuEntry is one selectable item of the insert-template menu
type MenuEntry struct {
	Kind templates.Kind
	Sub  templates.SubKind
}

// Label returns the text shown for the entry
func (e MenuEntry) Label() string {
	if !templates.HasVariants(e.Kind) {
		return e.Kind.Label()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Label(), e.Sub.Label())
}

// Dialog is the user-facing side of an insertion
type Dialog interface {
	// Menu lets the user pick one of entries
	Menu(entries []MenuEntry) (MenuEntry, error)
	// AskName asks for the name used to derive class name, id and label
	AskName(title, def string) (string, error)
	// AskAuthor asks for the license author name and mail
	AskAuthor(def Author) (Author, error)
	// AskSubKind asks which variant of kind to insert
	AskSubKind(kind templates.Kind, def templates.SubKind) (templates.SubKind, error)
}

// MenuEntries returns the insert-template menu, one entry per template
func MenuEntries() []MenuEntry {
	var entries []MenuEntry
	for _, kind := range templates.Kinds {
		for _, sub := range templates.SubKinds(kind) {
			entries = append(entries, MenuEntry{Kind: kind, Sub: sub})
		}
	}
	return entries
}
