// Package templates holds the read-only table of boilerplate texts, keyed by
// template kind and sub-kind.
//
// Built-in texts are embedded from builtin/. A table built with
// WithOverrides is a copy; the built-in table is never modified.
package templates

import (
	"embed"
	"fmt"
	"sort"
	"sync"
)

//go:embed builtin/*.py
var builtinFS embed.FS

// file names of the embedded texts per key
var builtinFiles = map[Key]string{
	{Kind: KindLicense, Sub: SubNormal}:     "license.py",
	{Kind: KindPanel, Sub: SubNormal}:       "panel.py",
	{Kind: KindMenu, Sub: SubNormal}:        "menu.py",
	{Kind: KindMenu, Sub: SubPie}:           "menu_pie.py",
	{Kind: KindOperator, Sub: SubNormal}:    "operator.py",
	{Kind: KindOperator, Sub: SubModal}:     "operator_modal.py",
	{Kind: KindOperator, Sub: SubModalDraw}: "operator_modal_draw.py",
}

// Source tells where a template text came from
type Source string

const (
	SourceBuiltin Source = "builtin"
	SourceUser    Source = "user"
)

// Template is one entry of the table
type Template struct {
	Key    Key
	Text   string
	Source Source
}

// Table maps keys to template texts
type Table struct {
	entries map[Key]Template
}

var builtin = sync.OnceValue(loadBuiltin)

// Builtin returns the process-wide table of embedded templates
func Builtin() *Table {
	return builtin()
}

func loadBuiltin() *Table {
	t := &Table{entries: make(map[Key]Template, len(builtinFiles))}
	for key, file := range builtinFiles {
		data, err := builtinFS.ReadFile("builtin/" + file)
		if err != nil {
			// the files are compiled in, a missing one is a build defect
			panic(fmt.Sprintf("missing builtin template %s: %v", file, err))
		}
		t.entries[key] = Template{Key: key, Text: string(data), Source: SourceBuiltin}
	}
	return t
}

// Lookup returns the template for kind and sub-kind. An empty sub-kind
// selects the default for kind.
func (t *Table) Lookup(kind Kind, sub SubKind) (Template, error) {
	if sub == "" {
		sub = DefaultSubKind(kind)
	}
	tmpl, ok := t.entries[Key{Kind: kind, Sub: sub}]
	if !ok {
		return Template{}, fmt.Errorf("%w: %s", ErrUnknownKind, Key{Kind: kind, Sub: sub})
	}
	return tmpl, nil
}

// Text returns only the template text for kind and sub-kind
func (t *Table) Text(kind Kind, sub SubKind) (string, error) {
	tmpl, err := t.Lookup(kind, sub)
	if err != nil {
		return "", err
	}
	return tmpl.Text, nil
}

// All returns every template sorted by kind menu order, then sub-kind order
func (t *Table) All() []Template {
	all := make([]Template, 0, len(t.entries))
	for _, tmpl := range t.entries {
		all = append(all, tmpl)
	}
	sort.Slice(all, func(i, j int) bool {
		return keyRank(all[i].Key) < keyRank(all[j].Key)
	})
	return all
}

// Len returns the number of templates in the table
func (t *Table) Len() int {
	return len(t.entries)
}

// WithOverrides returns a copy of t where texts from overrides replace the
// matching entries. overrides is keyed by kind then sub-kind name; only
// keys that exist in t are accepted.
func (t *Table) WithOverrides(overrides map[string]map[string]string) (*Table, error) {
	out := &Table{entries: make(map[Key]Template, len(t.entries))}
	for key, tmpl := range t.entries {
		out.entries[key] = tmpl
	}

	for kindName, subs := range overrides {
		kind, err := ParseKind(kindName)
		if err != nil {
			return nil, fmt.Errorf("template override: %w", err)
		}
		for subName, text := range subs {
			sub, err := ParseSubKind(kind, subName)
			if err != nil {
				return nil, fmt.Errorf("template override: %w", err)
			}
			key := Key{Kind: kind, Sub: sub}
			if _, ok := out.entries[key]; !ok {
				return nil, fmt.Errorf("template override: %w: %s", ErrUnknownKind, key)
			}
			out.entries[key] = Template{Key: key, Text: text, Source: SourceUser}
		}
	}

	return out, nil
}

func keyRank(key Key) int {
	rank := len(Kinds) * 10
	for i, kind := range Kinds {
		if kind == key.Kind {
			rank = i * 10
			break
		}
	}
	for i, sub := range subKinds[key.Kind] {
		if sub == key.Sub {
			return rank + i
		}
	}
	return rank + 9
}
