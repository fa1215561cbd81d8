// Package insert turns a template request into text and writes it into the
// active buffer at the cursor.
package insert

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/chriscorrea/snip/internal/buffer"
	"github.com/chriscorrea/snip/internal/names"
	"github.com/chriscorrea/snip/internal/template"
	"github.com/chriscorrea/snip/internal/templates"
)

// registration id prefixes
const (
	MenuIDPrefix     = "view3d."
	OperatorIDPrefix = "my_operator."
)

// Status is reported back to the caller of a command
type Status int

const (
	Finished Status = iota
	Cancelled
)

func (s Status) String() string {
	switch s {
	case Finished:
		return "FINISHED"
	case Cancelled:
		return "CANCELLED"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Request describes one insertion
type Request struct {
	Kind       templates.Kind
	Sub        templates.SubKind
	Name       string
	AuthorName string
	AuthorMail string
}

// Key returns the template key selected by the request
func (r Request) Key() templates.Key {
	sub := r.Sub
	if sub == "" {
		sub = templates.DefaultSubKind(r.Kind)
	}
	return templates.Key{Kind: r.Kind, Sub: sub}
}

// Substitutions builds the token map for the request
func Substitutions(r Request) template.Substitutions {
	if r.Kind == templates.KindLicense {
		return template.Substitutions{
			{Token: template.TokenYourName, Value: r.AuthorName},
			{Token: template.TokenYourMail, Value: r.AuthorMail},
		}
	}

	id := names.LowerCaseUnderscores(r.Name)
	switch r.Kind {
	case templates.KindMenu:
		id = MenuIDPrefix + id
	case templates.KindOperator:
		id = OperatorIDPrefix + id
	}

	return template.Substitutions{
		{Token: template.TokenClassName, Value: names.ValidVariableName(r.Name)},
		{Token: template.TokenIDName, Value: id},
		{Token: template.TokenLabel, Value: names.CapitalizedWords(r.Name)},
	}
}

// Inserter renders templates from a table and inserts them into buffers
type Inserter struct {
	table  *templates.Table
	logger *slog.Logger
}

// New creates an Inserter over table; a nil table means the built-in one
func New(table *templates.Table) *Inserter {
	if table == nil {
		table = templates.Builtin()
	}
	return &Inserter{table: table}
}

// WithLogger sets the logger for the inserter
func (in *Inserter) WithLogger(logger *slog.Logger) *Inserter {
	in.logger = logger
	return in
}

// Render selects the template for r and applies its substitutions
func (in *Inserter) Render(r Request) (string, error) {
	key := r.Key()
	text, err := in.table.Text(key.Kind, key.Sub)
	if err != nil {
		return "", err
	}

	subs := Substitutions(r)
	if missing := template.Unresolved(text, subs); len(missing) > 0 {
		in.debug("Template keeps unresolved tokens", "template", key.String(), "tokens", missing)
	}

	return template.Apply(text, subs), nil
}

// Insert renders r and writes it into buf at the cursor. A non-empty
// current line gets a line break first and the text always starts at
// column 0. A nil buf is a no-op reported as Cancelled.
func (in *Inserter) Insert(buf buffer.Buffer, r Request) (Status, error) {
	if buf == nil {
		in.debug("No active buffer, nothing inserted", "template", r.Key().String())
		return Cancelled, nil
	}

	text, err := in.Render(r)
	if err != nil {
		return Cancelled, err
	}

	if strings.TrimSpace(buf.CurrentLine()) != "" {
		buf.Insert("\n")
	}
	buf.SetColumn(0)
	buf.Insert(text)

	in.debug("Template inserted", "template", r.Key().String(), "bytes", len(text))
	return Finished, nil
}

// InsertLicense inserts the license header for the given author
func (in *Inserter) InsertLicense(buf buffer.Buffer, authorName, authorMail string) (Status, error) {
	return in.Insert(buf, Request{Kind: templates.KindLicense, AuthorName: authorName, AuthorMail: authorMail})
}

// InsertPanel inserts a panel class named after name
func (in *Inserter) InsertPanel(buf buffer.Buffer, name string) (Status, error) {
	return in.Insert(buf, Request{Kind: templates.KindPanel, Name: name})
}

// InsertMenu inserts a normal or pie menu class
func (in *Inserter) InsertMenu(buf buffer.Buffer, name string, sub templates.SubKind) (Status, error) {
	return in.Insert(buf, Request{Kind: templates.KindMenu, Sub: sub, Name: name})
}

// InsertOperator inserts a normal, modal or modal-draw operator class
func (in *Inserter) InsertOperator(buf buffer.Buffer, name string, sub templates.SubKind) (Status, error) {
	return in.Insert(buf, Request{Kind: templates.KindOperator, Sub: sub, Name: name})
}

func (in *Inserter) debug(msg string, args ...any) {
	if in.logger != nil {
		in.logger.Debug(msg, args...)
	}
}
