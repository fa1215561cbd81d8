package verbose

import (
	"bytes"
	"strings"
	"testing"

	"github.com/chriscorrea/snip/internal/insert"
	"github.com/chriscorrea/snip/internal/templates"
)

func plainOutput(buf *bytes.Buffer) *OutputConfig {
	outputCfg := DefaultOutputConfig(buf)
	outputCfg.EnableColors = false
	return outputCfg
}

func TestPrintInsertion(t *testing.T) {
	result := insert.Result{
		Status:  insert.Finished,
		Request: insert.Request{Kind: templates.KindOperator, Sub: templates.SubModal, Name: "GrabThing"},
		Path:    "/tmp/addon.py",
	}

	t.Run("WithoutColors", func(t *testing.T) {
		var buf bytes.Buffer
		PrintInsertion(result, plainOutput(&buf))

		output := buf.String()
		if strings.Contains(output, "\x1b[") {
			t.Errorf("Expected output without color codes, got: %s", output)
		}

		expectedStrings := []string{
			"Template:", "operator/modal",
			"Status:", "FINISHED",
			"Buffer:", "/tmp/addon.py",
			"CLASS_NAME:", "GrabThing",
			"ID_NAME:", "my_operator.grab_thing",
			"LABEL:", "Grab Thing",
		}
		for _, expected := range expectedStrings {
			if !strings.Contains(output, expected) {
				t.Errorf("Expected output to contain %q, got: %s", expected, output)
			}
		}
	})

	t.Run("LicenseShowsAuthor", func(t *testing.T) {
		var buf bytes.Buffer
		license := insert.Result{
			Status:  insert.Finished,
			Request: insert.Request{Kind: templates.KindLicense, AuthorName: "Ada", AuthorMail: "ada@example.com"},
		}
		PrintInsertion(license, plainOutput(&buf))

		output := buf.String()
		for _, expected := range []string{"YOUR_NAME:", "Ada", "YOUR_MAIL:", "ada@example.com"} {
			if !strings.Contains(output, expected) {
				t.Errorf("Expected output to contain %q, got: %s", expected, output)
			}
		}
		if strings.Contains(output, "Buffer:") {
			t.Errorf("Expected no buffer row without a path, got: %s", output)
		}
	})
}

func TestPrintStatus(t *testing.T) {
	tests := []struct {
		name     string
		result   insert.Result
		expected string
	}{
		{
			name: "finished with path",
			result: insert.Result{
				Status:  insert.Finished,
				Request: insert.Request{Kind: templates.KindPanel},
				Path:    "addon.py",
			},
			expected: "FINISHED panel -> addon.py\n",
		},
		{
			name:     "cancelled with reason",
			result:   insert.Result{Status: insert.Cancelled, Reason: "no active text buffer"},
			expected: "CANCELLED (no active text buffer)\n",
		},
		{
			name:     "cancelled without reason",
			result:   insert.Result{Status: insert.Cancelled},
			expected: "CANCELLED\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			PrintStatus(tt.result, plainOutput(&buf))
			if buf.String() != tt.expected {
				t.Errorf("PrintStatus() = %q; want %q", buf.String(), tt.expected)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate() = %q; want %q", got, "short")
	}
	if got := truncate(strings.Repeat("x", 20), 10); got != "xxxxxxx..." {
		t.Errorf("truncate() = %q; want %q", got, "xxxxxxx...")
	}
}
