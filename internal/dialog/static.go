package dialog

import (
	"strings"

	"github.com/chriscorrea/snip/internal/templates"
)

// Static is a Dialog that answers from pre-filled values. A value that is
// not filled in is asked through Fallback, or taken from the dialog default
// when there is no Fallback.
type Static struct {
	Entry     MenuEntry
	Name      string
	Author    Author
	Sub       templates.SubKind
	Dismissed bool

	Fallback Dialog
}

// Menu returns the configured entry
func (s *Static) Menu(entries []MenuEntry) (MenuEntry, error) {
	if s.Dismissed {
		return MenuEntry{}, ErrDismissed
	}
	if s.Entry.Kind != "" {
		return s.Entry, nil
	}
	if s.Fallback != nil {
		return s.Fallback.Menu(entries)
	}
	if len(entries) == 0 {
		return MenuEntry{}, ErrDismissed
	}
	return entries[0], nil
}

// AskName returns the configured name
func (s *Static) AskName(title, def string) (string, error) {
	if s.Dismissed {
		return "", ErrDismissed
	}
	if name := strings.TrimSpace(s.Name); name != "" {
		return name, nil
	}
	if s.Fallback != nil {
		return s.Fallback.AskName(title, def)
	}
	return def, nil
}

// AskAuthor returns the configured author. When only one field is set the
// other is asked through Fallback, with the configured one as default.
func (s *Static) AskAuthor(def Author) (Author, error) {
	if s.Dismissed {
		return Author{}, ErrDismissed
	}
	author := def
	if s.Author.Name != "" {
		author.Name = s.Author.Name
	}
	if s.Author.Mail != "" {
		author.Mail = s.Author.Mail
	}
	if s.Fallback != nil && (s.Author.Name == "" || s.Author.Mail == "") {
		return s.Fallback.AskAuthor(author)
	}
	return author, nil
}

// AskSubKind returns the configured sub-kind
func (s *Static) AskSubKind(kind templates.Kind, def templates.SubKind) (templates.SubKind, error) {
	if s.Dismissed {
		return "", ErrDismissed
	}
	if s.Sub != "" {
		return templates.ParseSubKind(kind, string(s.Sub))
	}
	if s.Fallback != nil {
		return s.Fallback.AskSubKind(kind, def)
	}
	return templates.ParseSubKind(kind, string(def))
}
