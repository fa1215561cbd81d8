package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/chriscorrea/snip/internal/templates"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// OutputStyle contains color configuration for list output
type OutputStyle struct {
	Writer       io.Writer
	KeyColor     *color.Color
	ValueColor   *color.Color
	HeaderColor  *color.Color
	GroupColor   *color.Color
	AliasColor   *color.Color
	EnableColors bool
}

// NewOutputStyle creates new output style configuration
func NewOutputStyle(writer io.Writer) *OutputStyle {
	return &OutputStyle{
		Writer:       writer,
		KeyColor:     color.New(color.FgCyan, color.Bold),
		ValueColor:   color.New(color.FgMagenta),
		HeaderColor:  color.New(color.FgYellow, color.Bold, color.Underline),
		GroupColor:   color.New(color.FgGreen, color.Bold),
		AliasColor:   color.New(color.FgBlue),
		EnableColors: !color.NoColor,
	}
}

// createListCommand creates the list subcommand
func createListCommand(state *rootCmdState) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available templates",
		Long: `List every template kind and variant, with the command that inserts it
and whether the text is built in or comes from your templates.toml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if state.manager == nil {
				return fmt.Errorf("config manager not initialized")
			}

			table, err := templates.Builtin().WithOverrides(state.manager.Config().TemplateOverrides())
			if err != nil {
				return fmt.Errorf("invalid user templates: %w", err)
			}

			displayTemplates(table, NewOutputStyle(cmd.OutOrStdout()))
			return nil
		},
	}
}

// displayTemplates prints one row per template, grouped by kind
func displayTemplates(table *templates.Table, style *OutputStyle) {
	w := tabwriter.NewWriter(style.Writer, 0, 0, 3, ' ', 0)

	groupSprint := style.GroupColor.SprintFunc()
	keySprint := style.KeyColor.SprintFunc()
	valueSprint := style.ValueColor.SprintFunc()
	aliasSprint := style.AliasColor.SprintFunc()
	if !style.EnableColors {
		groupSprint = fmt.Sprint
		keySprint = fmt.Sprint
		valueSprint = fmt.Sprint
		aliasSprint = fmt.Sprint
	}

	var current templates.Kind
	for _, tmpl := range table.All() {
		if tmpl.Key.Kind != current {
			if current != "" {
				fmt.Fprintf(w, "\n")
			}
			current = tmpl.Key.Kind
			fmt.Fprintf(w, "%s\n", groupSprint(fmt.Sprintf("▶ %s", current.Label())))
		}

		usage := "snip " + string(tmpl.Key.Kind)
		if templates.HasVariants(tmpl.Key.Kind) {
			usage += " --kind " + string(tmpl.Key.Sub)
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			keySprint(tmpl.Key.Sub.Label()),
			valueSprint(usage),
			aliasSprint(string(tmpl.Source)),
			firstCodeLine(tmpl.Text),
		)
	}

	fmt.Fprintf(w, "\n")
	w.Flush()
}

// firstCodeLine returns the first line of text that is not blank or a comment
func firstCodeLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if runes := []rune(line); len(runes) > 40 {
			return string(runes[:37]) + "..."
		}
		return line
	}
	return ""
}
