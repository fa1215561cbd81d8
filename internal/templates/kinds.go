package templates

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned when a kind or sub-kind is not in the table
var ErrUnknownKind = errors.New("unknown template kind")

// Kind selects a family of templates
type Kind string

const (
	KindLicense  Kind = "license"
	KindPanel    Kind = "panel"
	KindMenu     Kind = "menu"
	KindOperator Kind = "operator"
)

// SubKind selects one template within a Kind
type SubKind string

const (
	SubNormal    SubKind = "normal"
	SubPie       SubKind = "pie"
	SubModal     SubKind = "modal"
	SubModalDraw SubKind = "modal-draw"
)

// Kinds lists all kinds in menu order
var Kinds = []Kind{KindPanel, KindMenu, KindOperator, KindLicense}

// subKinds lists the sub-kinds per kind, the first entry is the default
var subKinds = map[Kind][]SubKind{
	KindLicense:  {SubNormal},
	KindPanel:    {SubNormal},
	KindMenu:     {SubNormal, SubPie},
	KindOperator: {SubNormal, SubModal, SubModalDraw},
}

// labels shown in menus
var kindLabels = map[Kind]string{
	KindLicense:  "License",
	KindPanel:    "Panel",
	KindMenu:     "Menu",
	KindOperator: "Operator",
}

var subKindLabels = map[SubKind]string{
	SubNormal:    "Normal",
	SubPie:       "Pie",
	SubModal:     "Modal",
	SubModalDraw: "Modal Draw",
}

// Key identifies exactly one template text
type Key struct {
	Kind Kind
	Sub  SubKind
}

func (k Key) String() string {
	if k.Sub == "" || k.Sub == SubNormal {
		return string(k.Kind)
	}
	return string(k.Kind) + "/" + string(k.Sub)
}

// Label returns the menu label for the kind
func (k Kind) Label() string {
	if label, ok := kindLabels[k]; ok {
		return label
	}
	return string(k)
}

// Label returns the menu label for the sub-kind
func (s SubKind) Label() string {
	if label, ok := subKindLabels[s]; ok {
		return label
	}
	return string(s)
}

// SubKinds returns the sub-kinds available for kind, nil if kind is unknown
func SubKinds(kind Kind) []SubKind {
	subs := subKinds[kind]
	if subs == nil {
		return nil
	}
	return append([]SubKind(nil), subs...)
}

// HasVariants reports whether the user must pick a sub-kind for kind
func HasVariants(kind Kind) bool {
	return len(subKinds[kind]) > 1
}

// DefaultSubKind returns the sub-kind used when none is given
func DefaultSubKind(kind Kind) SubKind {
	if subs := subKinds[kind]; len(subs) > 0 {
		return subs[0]
	}
	return SubNormal
}

// ParseKind parses a kind name case-insensitively
func ParseKind(s string) (Kind, error) {
	kind := Kind(normalize(s))
	if _, ok := subKinds[kind]; !ok {
		return "", fmt.Errorf("%w %q (available: %s)", ErrUnknownKind, s, joinKinds(Kinds))
	}
	return kind, nil
}

// ParseSubKind parses a sub-kind for kind. Empty input selects the default.
// Underscores and hyphens are interchangeable, so MODAL_DRAW is accepted.
func ParseSubKind(kind Kind, s string) (SubKind, error) {
	subs, ok := subKinds[kind]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownKind, kind)
	}
	if strings.TrimSpace(s) == "" {
		return subs[0], nil
	}

	sub := SubKind(normalize(s))
	for _, candidate := range subs {
		if candidate == sub {
			return sub, nil
		}
	}
	return "", fmt.Errorf("%w %q for %s (available: %s)", ErrUnknownKind, s, kind, joinSubKinds(subs))
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, "_", "-")
}

func joinKinds(kinds []Kind) string {
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = string(k)
	}
	return strings.Join(parts, ", ")
}

func joinSubKinds(subs []SubKind) string {
	parts := make([]string, len(subs))
	for i, s := range subs {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}
