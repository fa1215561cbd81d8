package insert

import (
	"errors"
	"fmt"

	"github.com/chriscorrea/snip/internal/buffer"
	"github.com/chriscorrea/snip/internal/dialog"
	"github.com/chriscorrea/snip/internal/templates"
)

// Session runs one command end to end: availability check, dialog,
// insertion and save.
type Session struct {
	Workspace *buffer.Workspace
	Dialog    dialog.Dialog
	Inserter  *Inserter

	// Author is the default shown in the license dialog
	Author dialog.Author
	// Backup keeps a .bak copy of the buffer file before saving
	Backup bool
}

// Result is the outcome of a session
type Result struct {
	Status  Status
	Request Request
	Path    string
	Reason  string
}

// Run executes the command described by r. An empty r.Kind opens the
// insert-template menu first. Empty fields of r are asked for through the
// dialog, with the field values as defaults.
func (s *Session) Run(r Request) (Result, error) {
	if !s.Workspace.Available() {
		if _, err := s.Workspace.Active(); err != nil {
			return Result{Status: Cancelled, Request: r}, fmt.Errorf("failed to open active buffer: %w", err)
		}
		return Result{Status: Cancelled, Request: r, Reason: "no active text buffer"}, nil
	}
	f, _ := s.Workspace.Active()

	r, err := s.complete(r)
	if errors.Is(err, dialog.ErrDismissed) {
		return Result{Status: Cancelled, Request: r, Path: f.Path(), Reason: "dialog dismissed"}, nil
	}
	if err != nil {
		return Result{Status: Cancelled, Request: r, Path: f.Path()}, err
	}

	status, err := s.insert(f, r)
	if err != nil || status != Finished {
		return Result{Status: Cancelled, Request: r, Path: f.Path()}, err
	}

	save := f.Save
	if s.Backup {
		save = f.SaveWithBackup
	}
	if err := save(); err != nil {
		return Result{Status: Cancelled, Request: r, Path: f.Path()}, err
	}

	return Result{Status: Finished, Request: r, Path: f.Path()}, nil
}

// complete fills the request through the dialog
func (s *Session) complete(r Request) (Request, error) {
	if r.Kind == "" {
		entry, err := s.Dialog.Menu(dialog.MenuEntries())
		if err != nil {
			return r, err
		}
		r.Kind = entry.Kind
		r.Sub = entry.Sub
	} else if templates.HasVariants(r.Kind) {
		sub, err := s.Dialog.AskSubKind(r.Kind, r.Sub)
		if err != nil {
			return r, err
		}
		r.Sub = sub
	} else if _, err := templates.ParseKind(string(r.Kind)); err != nil {
		return r, err
	}

	if r.Kind == templates.KindLicense {
		def := s.Author
		if r.AuthorName != "" {
			def.Name = r.AuthorName
		}
		if r.AuthorMail != "" {
			def.Mail = r.AuthorMail
		}
		author, err := s.Dialog.AskAuthor(def)
		if err != nil {
			return r, err
		}
		r.AuthorName = author.Name
		r.AuthorMail = author.Mail
		return r, nil
	}

	name, err := s.Dialog.AskName(r.Kind.Label(), r.Name)
	if err != nil {
		return r, err
	}
	r.Name = name
	return r, nil
}

// insert runs the insert operation for the kind of r
func (s *Session) insert(buf buffer.Buffer, r Request) (Status, error) {
	switch r.Kind {
	case templates.KindLicense:
		return s.Inserter.InsertLicense(buf, r.AuthorName, r.AuthorMail)
	case templates.KindPanel:
		return s.Inserter.InsertPanel(buf, r.Name)
	case templates.KindMenu:
		return s.Inserter.InsertMenu(buf, r.Name, r.Sub)
	case templates.KindOperator:
		return s.Inserter.InsertOperator(buf, r.Name, r.Sub)
	}
	return Cancelled, fmt.Errorf("%w %q", templates.ErrUnknownKind, r.Kind)
}
