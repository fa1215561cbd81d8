package names

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func TestWords(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "camel case", input: "myCoolThing", expected: []string{"my", "Cool", "Thing"}},
		{name: "pascal case", input: "MyCoolThing", expected: []string{"My", "Cool", "Thing"}},
		{name: "spaces", input: "my cool thing", expected: []string{"my", "cool", "thing"}},
		{name: "mixed separators", input: "my-cool_thing.now", expected: []string{"my", "cool", "thing", "now"}},
		{name: "acronym then word", input: "HTTPServer", expected: []string{"HTTP", "Server"}},
		{name: "trailing acronym", input: "exportFBX", expected: []string{"export", "FBX"}},
		{name: "digits", input: "view3dTool", expected: []string{"view", "3", "d", "Tool"}},
		{name: "surrounding junk", input: "  !!hello  world?? ", expected: []string{"hello", "world"}},
		{name: "unicode letters", input: "größeRegler", expected: []string{"größe", "Regler"}},
		{name: "empty", input: "", expected: []string{}},
		{name: "symbols only", input: "#$%", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Words(tt.input))
		})
	}
}

func TestValidVariableName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "already valid", input: "MyPanel", expected: "MyPanel"},
		{name: "spaces become underscores", input: "my cool thing", expected: "my_cool_thing"},
		{name: "runs collapse", input: "a - b", expected: "a_b"},
		{name: "user underscores kept", input: "_private_name", expected: "_private_name"},
		{name: "leading digit prefixed", input: "123", expected: "_123"},
		{name: "leading digit with text", input: "3d view", expected: "_3d_view"},
		{name: "trailing symbols dropped", input: "Panel!!", expected: "Panel"},
		{name: "non ascii dropped", input: "café panel", expected: "caf_panel"},
		{name: "empty falls back", input: "", expected: DefaultVariableName},
		{name: "whitespace falls back", input: "   ", expected: DefaultVariableName},
		{name: "symbols fall back", input: "?!*", expected: DefaultVariableName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidVariableName(tt.input))
		})
	}
}

func TestValidVariableNameIsAlwaysIdentifier(t *testing.T) {
	inputs := []string{
		"", "123", "0", "hello world", "a.b.c", "--", "__", "9lives", "x y z 1 2 3",
		"Ünïcödé", "tab\tseparated", "new\nline", "emoji 🎉 name", "CLASS_NAME", "$$$money",
	}

	// every printable ASCII character on its own and with a prefix
	for r := rune(0x20); r < 0x7f; r++ {
		inputs = append(inputs, string(r), string(r)+"name", "name"+string(r))
	}

	for _, input := range inputs {
		got := ValidVariableName(input)
		assert.Regexp(t, identifierPattern, got, "input %q", input)
	}
}

func TestLowerCaseUnderscores(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "pascal case", input: "MyCoolThing", expected: "my_cool_thing"},
		{name: "spaces", input: "my cool thing", expected: "my_cool_thing"},
		{name: "camel case", input: "myCoolThing", expected: "my_cool_thing"},
		{name: "acronym", input: "HTTPServer", expected: "http_server"},
		{name: "digits split", input: "Panel2", expected: "panel_2"},
		{name: "existing underscores", input: "already_snake_case", expected: "already_snake_case"},
		{name: "non ascii stripped", input: "größe", expected: "gre"},
		{name: "empty", input: "", expected: DefaultIdentifier},
		{name: "non ascii only", input: "日本", expected: DefaultIdentifier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LowerCaseUnderscores(tt.input))
		})
	}
}

func TestCapitalizedWords(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "camel case", input: "myCoolThing", expected: "My Cool Thing"},
		{name: "snake case", input: "my_cool_thing", expected: "My Cool Thing"},
		{name: "spaces collapse", input: "  my   cool thing ", expected: "My Cool Thing"},
		{name: "acronym lowered", input: "HTTPServer", expected: "Http Server"},
		{name: "digits", input: "Panel2", expected: "Panel 2"},
		{name: "empty", input: "", expected: DefaultLabel},
		{name: "symbols", input: "...", expected: DefaultLabel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CapitalizedWords(tt.input))
		})
	}
}

func TestFallbacksAgree(t *testing.T) {
	assert.Equal(t, DefaultIdentifier, LowerCaseUnderscores(DefaultVariableName))
	assert.Equal(t, DefaultLabel, CapitalizedWords(DefaultVariableName))
}
