package verbose

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/chriscorrea/snip/internal/insert"

	"github.com/fatih/color"
)

// OutputConfig contains parameters for verbose output formatting
type OutputConfig struct {
	Writer       io.Writer
	KeyColor     *color.Color
	ValueColor   *color.Color
	DoneColor    *color.Color
	CancelColor  *color.Color
	EnableColors bool
}

// DefaultOutputConfig returns a default configuration for verbose output
func DefaultOutputConfig(writer io.Writer) *OutputConfig {
	return &OutputConfig{
		Writer:       writer,
		KeyColor:     color.New(color.FgCyan, color.Bold),
		ValueColor:   color.New(color.FgMagenta),
		DoneColor:    color.New(color.FgGreen, color.Bold),
		CancelColor:  color.New(color.FgYellow, color.Bold),
		EnableColors: true,
	}
}

// PrintStatus prints the command status line, with the reason for a cancellation
func PrintStatus(result insert.Result, outputCfg *OutputConfig) {
	if outputCfg == nil {
		outputCfg = DefaultOutputConfig(os.Stderr)
	}

	statusColor := outputCfg.DoneColor
	if result.Status != insert.Finished {
		statusColor = outputCfg.CancelColor
	}
	sprint := statusColor.SprintFunc()
	if !outputCfg.EnableColors {
		sprint = fmt.Sprint
	}

	switch {
	case result.Reason != "":
		fmt.Fprintf(outputCfg.Writer, "%s (%s)\n", sprint(result.Status.String()), result.Reason)
	case result.Status == insert.Finished && result.Path != "":
		fmt.Fprintf(outputCfg.Writer, "%s %s -> %s\n", sprint(result.Status.String()), result.Request.Key(), result.Path)
	default:
		fmt.Fprintf(outputCfg.Writer, "%s\n", sprint(result.Status.String()))
	}
}

// PrintInsertion displays the template and substituted values in a formatted table
func PrintInsertion(result insert.Result, outputCfg *OutputConfig) {
	if outputCfg == nil {
		outputCfg = DefaultOutputConfig(os.Stderr)
	}

	w := tabwriter.NewWriter(outputCfg.Writer, 0, 0, 3, ' ', 0)

	type param struct {
		Key   string
		Value string
	}

	params := []param{
		{Key: "Template", Value: result.Request.Key().String()},
		{Key: "Status", Value: result.Status.String()},
	}
	if result.Path != "" {
		params = append(params, param{Key: "Buffer", Value: result.Path})
	}
	for _, sub := range insert.Substitutions(result.Request) {
		params = append(params, param{Key: sub.Token, Value: truncate(sub.Value, 48)})
	}

	// rows of two pairs each
	for i := 0; i < len(params); i += 2 {
		p1 := params[i]
		if (i + 1) < len(params) {
			p2 := params[i+1]
			printRow(w, outputCfg, p1.Key, p1.Value, p2.Key, p2.Value)
		} else {
			printRow(w, outputCfg, p1.Key, p1.Value, "", "")
		}
	}

	fmt.Fprintf(w, "\n")
	w.Flush()
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

// printRow prints a multi-column row for one or two key-value pairs
// and handles color formatting and alignment via tabwriter
func printRow(w io.Writer, outputCfg *OutputConfig, key1, value1, key2, value2 string) {
	keySprint := outputCfg.KeyColor.SprintFunc()
	valueSprint := outputCfg.ValueColor.SprintFunc()

	if !outputCfg.EnableColors {
		keySprint = fmt.Sprint
		valueSprint = fmt.Sprint
	}

	if key2 != "" {
		fmt.Fprintf(w, "%s:\t%s\t%s:\t%s\n",
			keySprint(key1),
			valueSprint(value1),
			keySprint(key2),
			valueSprint(value2),
		)
	} else {
		fmt.Fprintf(w, "%s:\t%s\n",
			keySprint(key1),
			valueSprint(value1),
		)
	}
}
