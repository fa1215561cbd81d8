package cmd

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/chriscorrea/snip/internal/config"

	"github.com/spf13/cobra"
)

// ConfigDisplayInfo holds information for displaying config item
type ConfigDisplayInfo struct {
	Key         string
	Value       string
	Description string
	Target      string // the canonical path an alias points to
}

// createConfigCommand creates the config subcommand with its children
func createConfigCommand(state *rootCmdState) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage snip configuration",
		Long: `Manage snip configuration settings. This command provides subcommands
to view and modify configuration values.

Examples:
  snip config                        # Show current configuration status
  snip config list                   # Show values by alias
  snip config describe key           # Explain one key
  snip config set key=value          # Set a configuration value

      snip config set name="Ada Lovelace"
      snip config set author.mail=ada@example.com
      snip config set file=~/addons/tools.py
  `,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if state.manager == nil {
				return fmt.Errorf("config manager not initialized")
			}
			cfg := state.manager.Config()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "Configuration loaded successfully")
			if used := state.manager.Viper().ConfigFileUsed(); used != "" {
				fmt.Fprintf(out, "Config file: %s\n", used)
			}
			fmt.Fprintf(out, "Author: %s\n", displayValue(formatAuthor(cfg.Author)))
			fmt.Fprintf(out, "Script file: %s\n", displayValue(cfg.Editor.File))
			fmt.Fprintf(out, "Cursor: %s\n", displayValue(cfg.Editor.Cursor))

			userTemplates := 0
			for _, subs := range cfg.Templates {
				userTemplates += len(subs)
			}
			fmt.Fprintf(out, "User templates: %d\n", userTemplates)

			return nil
		},
	}

	configCmd.AddCommand(createConfigListCommand(state))
	configCmd.AddCommand(createSetCommand(state))
	configCmd.AddCommand(createDescribeCommand(state))
	return configCmd
}

// createConfigListCommand creates the config list subcommand
func createConfigListCommand(state *rootCmdState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List configuration values",
		Long: `List configuration values.

By default, shows the short aliases accepted by "snip config set". Use
--canonical to see the full dotted configuration paths.

Examples:
  snip config list              # Show aliases view (default)
  snip config list --canonical  # Show canonical configuration paths`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if state.manager == nil {
				return fmt.Errorf("config manager not initialized")
			}
			schema := config.DefaultConfigSchema()
			style := NewOutputStyle(cmd.OutOrStdout())

			if showCanonical, _ := cmd.Flags().GetBool("canonical"); showCanonical {
				displayCanonicalView(state, schema, style)
				return nil
			}
			displayAliasesView(state, schema, style)
			return nil
		},
	}

	cmd.Flags().Bool("aliases", false, "Show aliases view (default behavior)")
	cmd.Flags().Bool("canonical", false, "Show canonical configuration paths")
	cmd.MarkFlagsMutuallyExclusive("aliases", "canonical")
	return cmd
}

// displayAliasesView shows the aliases grouped by the section they point into
func displayAliasesView(state *rootCmdState, schema *config.ConfigSchema, style *OutputStyle) {
	w := tabwriter.NewWriter(style.Writer, 0, 0, 3, ' ', 0)

	groups := map[string][]ConfigDisplayInfo{}
	for _, alias := range schema.ListAliases() {
		canonicalPath := schema.Aliases[alias]
		fieldInfo, err := schema.GetFieldInfo(canonicalPath)
		if err != nil {
			continue
		}

		group := configGroup(canonicalPath)
		groups[group] = append(groups[group], ConfigDisplayInfo{
			Key:         alias,
			Value:       getConfigValue(state, canonicalPath),
			Description: fieldInfo.Description,
			Target:      canonicalPath,
		})
	}

	for _, groupName := range configGroupOrder {
		items := groups[groupName]
		if len(items) == 0 {
			continue
		}

		printSectionHeader(w, style, groupName)
		for _, item := range items {
			printConfigRow(w, style, item.Key, item.Value, item.Description)
		}
		fmt.Fprintf(w, "\n")
	}

	w.Flush()
}

// displayCanonicalView shows the complete config structure
func displayCanonicalView(state *rootCmdState, schema *config.ConfigSchema, style *OutputStyle) {
	w := tabwriter.NewWriter(style.Writer, 0, 0, 3, ' ', 0)

	groups := map[string][]ConfigDisplayInfo{}
	keys := schema.ListCanonicalKeys()
	sort.Strings(keys)
	for _, key := range keys {
		group := configGroup(key)
		groups[group] = append(groups[group], ConfigDisplayInfo{
			Key:   key,
			Value: getConfigValue(state, key),
		})
	}

	for _, groupName := range configGroupOrder {
		items := groups[groupName]
		if len(items) == 0 {
			continue
		}

		printCanonicalSectionHeader(w, style, groupName)
		for _, item := range items {
			printCanonicalConfigRow(w, style, item.Key, item.Value)
		}
		fmt.Fprintf(w, "\n")
	}

	w.Flush()
}

var configGroupOrder = []string{"Author", "Editor", "Output"}

// configGroup maps a canonical path to its display group
func configGroup(canonicalPath string) string {
	switch {
	case strings.HasPrefix(canonicalPath, "author."):
		return "Author"
	case strings.HasPrefix(canonicalPath, "editor."):
		return "Editor"
	default:
		return "Output"
	}
}

// printSectionHeader prints a section header for grouped config items
func printSectionHeader(w *tabwriter.Writer, style *OutputStyle, groupName string) {
	groupSprint := style.GroupColor.SprintFunc()
	keySprint := style.KeyColor.SprintFunc()
	valueSprint := style.ValueColor.SprintFunc()

	if !style.EnableColors {
		groupSprint = fmt.Sprint
		keySprint = fmt.Sprint
		valueSprint = fmt.Sprint
	}

	fmt.Fprintf(w, "%s\n", groupSprint(fmt.Sprintf("▶ %s", groupName)))
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		keySprint("Key"),
		valueSprint("Value"),
		"Description") // plain text due to formatting/spacing issue
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		keySprint(strings.Repeat("-", 10)),
		valueSprint(strings.Repeat("-", 20)),
		strings.Repeat("-", 40))
}

// printConfigRow prints a single configuration row
func printConfigRow(w *tabwriter.Writer, style *OutputStyle, key, value, description string) {
	keySprint := style.KeyColor.SprintFunc()
	valueSprint := style.ValueColor.SprintFunc()

	if !style.EnableColors {
		keySprint = fmt.Sprint
		valueSprint = fmt.Sprint
	}

	if len(description) > 50 {
		description = description[:47] + "..."
	}
	if len(value) > 25 {
		value = value[:22] + "..."
	}

	fmt.Fprintf(w, "%s\t%s\t%s\n",
		keySprint(key),
		valueSprint(value),
		description)
}

// printCanonicalSectionHeader prints a section header for canonical view (no description column)
func printCanonicalSectionHeader(w *tabwriter.Writer, style *OutputStyle, groupName string) {
	groupSprint := style.GroupColor.SprintFunc()
	if !style.EnableColors {
		groupSprint = fmt.Sprint
	}

	fmt.Fprintf(w, "%s\n", groupSprint(fmt.Sprintf("▶ %s", groupName)))
	fmt.Fprintf(w, "%s\t%s\n",
		groupSprint("Key"),
		groupSprint("Value"))
	fmt.Fprintf(w, "%s\t%s\n",
		groupSprint(strings.Repeat("-", 20)),
		groupSprint(strings.Repeat("-", 40)))
}

// printCanonicalConfigRow prints a single configuration row for canonical view
func printCanonicalConfigRow(w *tabwriter.Writer, style *OutputStyle, key, value string) {
	keySprint := style.KeyColor.SprintFunc()
	valueSprint := style.ValueColor.SprintFunc()

	if !style.EnableColors {
		keySprint = fmt.Sprint
		valueSprint = fmt.Sprint
	}

	fmt.Fprintf(w, "%s\t%s\n",
		keySprint(key),
		valueSprint(value))
}

// getConfigValue retrieves the current value for a configuration key using Viper
func getConfigValue(state *rootCmdState, canonicalPath string) string {
	value := state.manager.Viper().Get(canonicalPath)
	if value == nil {
		return "<not set>"
	}

	result := fmt.Sprintf("%v", value)
	if len(result) > 40 {
		return result[:37] + "..."
	}
	return displayValue(result)
}

func displayValue(value string) string {
	if value == "" {
		return "<not set>"
	}
	return value
}

func formatAuthor(author config.Author) string {
	switch {
	case author.Name != "" && author.Mail != "":
		return fmt.Sprintf("%s <%s>", author.Name, author.Mail)
	case author.Mail != "":
		return "<" + author.Mail + ">"
	default:
		return author.Name
	}
}
