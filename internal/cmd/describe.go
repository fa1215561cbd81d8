package cmd

import (
	"fmt"
	"sort"

	"github.com/chriscorrea/snip/internal/config"

	"github.com/spf13/cobra"
)

// createDescribeCommand creates the config describe subcommand
func createDescribeCommand(state *rootCmdState) *cobra.Command {
	schema := config.DefaultConfigSchema()

	return &cobra.Command{
		Use:   "describe <key>",
		Short: "Show detailed information about a configuration key",
		Long: `Show detailed information about a configuration key including its type,
description, and value.

The key can be either a full canonical path or a convenience alias.

Examples:
  snip config describe mail
  snip config describe editor.cursor`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: append(schema.ListCanonicalKeys(), schema.ListAliases()...),
		RunE: func(cmd *cobra.Command, args []string) error {
			if state.manager == nil {
				return fmt.Errorf("config manager not initialized")
			}
			key := args[0]

			canonicalKey, err := schema.ResolveKey(key)
			if err != nil {
				return err
			}

			fieldInfo, err := schema.GetFieldInfo(canonicalKey)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Configuration Key: %s\n", canonicalKey)
			if key != canonicalKey {
				fmt.Fprintf(out, "Alias: %s\n", key)
			}
			fmt.Fprintf(out, "Type: %s\n", fieldInfo.Type.String())
			fmt.Fprintf(out, "Description: %s\n", fieldInfo.Description)
			fmt.Fprintf(out, "Default: %v\n", displayValue(fmt.Sprint(fieldInfo.Default)))
			fmt.Fprintf(out, "Current Value: %v\n", getConfigValue(state, canonicalKey))

			if fieldInfo.Validation != nil {
				fmt.Fprintf(out, "\nValidation: Custom validation rules apply\n")
			}

			// related aliases for the canonical path
			var relatedAliases []string
			for alias, canonical := range schema.Aliases {
				if canonical == canonicalKey && alias != key {
					relatedAliases = append(relatedAliases, alias)
				}
			}
			sort.Strings(relatedAliases)
			if len(relatedAliases) > 0 {
				fmt.Fprintf(out, "\nAliases: %v\n", relatedAliases)
			}

			return nil
		},
	}
}
