package templates

import (
	"strings"
	"testing"

	"github.com/chriscorrea/snip/internal/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinHasEveryKey(t *testing.T) {
	table := Builtin()

	for _, kind := range Kinds {
		for _, sub := range SubKinds(kind) {
			tmpl, err := table.Lookup(kind, sub)
			require.NoError(t, err, "%s/%s", kind, sub)
			assert.NotEmpty(t, tmpl.Text)
			assert.Equal(t, SourceBuiltin, tmpl.Source)
		}
	}
	assert.Equal(t, len(builtinFiles), table.Len())
}

func TestBuiltinTokens(t *testing.T) {
	table := Builtin()

	license, err := table.Text(KindLicense, "")
	require.NoError(t, err)
	assert.True(t, template.HasToken(license, template.TokenYourName))
	assert.True(t, template.HasToken(license, template.TokenYourMail))
	assert.False(t, template.HasToken(license, template.TokenClassName))
	assert.True(t, strings.HasPrefix(license, "'''\nCopyright (C) 2015 YOUR_NAME\n"))

	for _, key := range []Key{
		{Kind: KindPanel, Sub: SubNormal},
		{Kind: KindMenu, Sub: SubNormal},
		{Kind: KindMenu, Sub: SubPie},
		{Kind: KindOperator, Sub: SubNormal},
		{Kind: KindOperator, Sub: SubModal},
		{Kind: KindOperator, Sub: SubModalDraw},
	} {
		text, err := table.Text(key.Kind, key.Sub)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(text, "class CLASS_NAME("), key.String())
		assert.Contains(t, text, `bl_idname = "ID_NAME"`, key.String())
		assert.Contains(t, text, `bl_label = "LABEL"`, key.String())
	}
}

func TestBuiltinTextsDiffer(t *testing.T) {
	table := Builtin()

	pie, err := table.Text(KindMenu, SubPie)
	require.NoError(t, err)
	assert.Contains(t, pie, "menu_pie()")

	modalDraw, err := table.Text(KindOperator, SubModalDraw)
	require.NoError(t, err)
	assert.Contains(t, modalDraw, "draw_handler_add")

	modal, err := table.Text(KindOperator, SubModal)
	require.NoError(t, err)
	assert.Contains(t, modal, "modal_handler_add")
	assert.NotContains(t, modal, "draw_handler_add")
}

func TestLookupDefaultsSubKind(t *testing.T) {
	tmpl, err := Builtin().Lookup(KindOperator, "")
	require.NoError(t, err)
	assert.Equal(t, Key{Kind: KindOperator, Sub: SubNormal}, tmpl.Key)
}

func TestLookupUnknown(t *testing.T) {
	_, err := Builtin().Lookup(KindPanel, SubPie)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownKind)

	_, err = Builtin().Lookup(Kind("gizmo"), "")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestAllOrder(t *testing.T) {
	var keys []string
	for _, tmpl := range Builtin().All() {
		keys = append(keys, tmpl.Key.String())
	}
	assert.Equal(t, []string{
		"panel",
		"menu",
		"menu/pie",
		"operator",
		"operator/modal",
		"operator/modal-draw",
		"license",
	}, keys)
}

func TestWithOverrides(t *testing.T) {
	base := Builtin()

	table, err := base.WithOverrides(map[string]map[string]string{
		"menu": {"PIE": "class CLASS_NAME: pass\n"},
	})
	require.NoError(t, err)

	tmpl, err := table.Lookup(KindMenu, SubPie)
	require.NoError(t, err)
	assert.Equal(t, "class CLASS_NAME: pass\n", tmpl.Text)
	assert.Equal(t, SourceUser, tmpl.Source)

	// the built-in table is untouched
	original, err := base.Lookup(KindMenu, SubPie)
	require.NoError(t, err)
	assert.Equal(t, SourceBuiltin, original.Source)
	assert.Contains(t, original.Text, "menu_pie()")
}

func TestWithOverridesRejectsUnknownKeys(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]map[string]string
	}{
		{name: "unknown kind", overrides: map[string]map[string]string{"gizmo": {"normal": "x"}}},
		{name: "unknown sub-kind", overrides: map[string]map[string]string{"panel": {"pie": "x"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Builtin().WithOverrides(tt.overrides)
			assert.ErrorIs(t, err, ErrUnknownKind)
		})
	}
}

func TestParseKind(t *testing.T) {
	kind, err := ParseKind("  Operator ")
	require.NoError(t, err)
	assert.Equal(t, KindOperator, kind)

	_, err = ParseKind("widget")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestParseSubKind(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		input    string
		expected SubKind
		wantErr  bool
	}{
		{name: "empty selects default", kind: KindMenu, input: "", expected: SubNormal},
		{name: "pie", kind: KindMenu, input: "pie", expected: SubPie},
		{name: "upper case with underscore", kind: KindOperator, input: "MODAL_DRAW", expected: SubModalDraw},
		{name: "hyphenated", kind: KindOperator, input: "modal-draw", expected: SubModalDraw},
		{name: "not valid for kind", kind: KindMenu, input: "modal", wantErr: true},
		{name: "unknown kind", kind: Kind("gizmo"), input: "normal", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub, err := ParseSubKind(tt.kind, tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownKind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, sub)
		})
	}
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Modal Draw", SubModalDraw.Label())
	assert.Equal(t, "Operator", KindOperator.Label())
	assert.Equal(t, "custom", SubKind("custom").Label())
	assert.True(t, HasVariants(KindOperator))
	assert.False(t, HasVariants(KindPanel))
}
