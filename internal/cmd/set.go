package cmd

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/chriscorrea/snip/internal/config"

	"github.com/spf13/cobra"
)

// createSetCommand creates the config set subcommand
func createSetCommand(state *rootCmdState) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key>=<value>",
		Short: "Set a configuration value",
		Long: `Set a configuration value in the config file.

The key should be in dot notation format (e.g., author.name),
but convenient aliases are also supported:
  name, author   → author.name
  mail, email    → author.mail
  file           → editor.file
  cursor, at     → editor.cursor

Examples:
  snip config set author.name="Ada Lovelace"
  snip config set mail=ada@example.com
  snip config set file=~/addons/tools.py
  snip config set cursor=12:0
  snip config set editor.backup=true`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if state.manager == nil {
				return fmt.Errorf("config manager not initialized")
			}

			argument := args[0]
			parts := strings.SplitN(argument, "=", 2)
			if len(parts) != 2 {
				return fmt.Errorf("invalid format: expected key=value, got %q", argument)
			}

			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])

			if key == "" {
				return fmt.Errorf("key cannot be empty")
			}

			schema := config.DefaultConfigSchema()

			canonicalKey, err := schema.ResolveKey(key)
			if err != nil {
				return err
			}

			fieldInfo, err := schema.GetFieldInfo(canonicalKey)
			if err != nil {
				return err
			}

			convertedValue, err := convertValueToType(value, fieldInfo.Type)
			if err != nil {
				return fmt.Errorf("failed to convert value %q for key %q: %w", value, canonicalKey, err)
			}

			if err := schema.ValidateValue(canonicalKey, convertedValue); err != nil {
				return fmt.Errorf("validation failed for key %q: %w", canonicalKey, err)
			}

			state.manager.Viper().Set(canonicalKey, convertedValue)

			if err := state.manager.Save(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			// show both alias and canonical key if different
			if key != canonicalKey {
				fmt.Fprintf(cmd.OutOrStdout(), "Configuration updated: %s (%s) = %v\n", key, canonicalKey, convertedValue)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Configuration updated: %s = %v\n", canonicalKey, convertedValue)
			}

			return nil
		},
	}
}

// convertValueToType converts a string value to the specified type
func convertValueToType(value string, targetType reflect.Type) (interface{}, error) {
	// try to unquote the value if it appears to be quoted
	if len(value) >= 2 && (value[0] == '"' || value[0] == '\'' || value[0] == '`') {
		if unquoted, err := strconv.Unquote(value); err == nil {
			value = unquoted
		}
		// if unquoting fails, use the original value
	}

	switch targetType.Kind() {
	case reflect.String:
		return value, nil

	case reflect.Bool:
		return strconv.ParseBool(strings.ToLower(value))

	case reflect.Int:
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, err
		}
		return int(intVal), nil

	default:
		return nil, fmt.Errorf("unsupported type: %s", targetType.String())
	}
}
