package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/chriscorrea/snip/internal/config"
	"github.com/chriscorrea/snip/internal/dialog"
	"github.com/chriscorrea/snip/internal/insert"
	"github.com/chriscorrea/snip/internal/logger"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// current version (hardcoded for now, could be replaced with build flags)
const version = "0.1.0"

const defaultConfigPath = "~/.snip/config.toml"

// rootCmdState holds the config manager and logger for one command tree
type rootCmdState struct {
	manager *config.Manager
	logger  *slog.Logger
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return home, nil
	}

	return filepath.Join(home, path[1:]), nil
}

// terminalInput returns stdin of cmd when it is an interactive terminal
func terminalInput(cmd *cobra.Command) (*os.File, bool) {
	f, ok := cmd.InOrStdin().(*os.File)
	if !ok {
		return nil, false
	}
	return f, isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// promptOutput returns the file prompts are drawn on
func promptOutput(cmd *cobra.Command) *os.File {
	if f, ok := cmd.ErrOrStderr().(*os.File); ok {
		return f
	}
	return os.Stderr
}

// showCustomHelp lists the template commands before the housekeeping ones
func showCustomHelp(cmd *cobra.Command) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s\n\n", cmd.Long)
	fmt.Fprintf(out, "Usage:\n  %s [flags]\n  %s [command] [args...]\n\n", cmd.Use, cmd.Use)

	fmt.Fprintln(out, "Insert Commands:")
	for _, subCmd := range cmd.Commands() {
		if !subCmd.Hidden && subCmd.GroupID == insertGroup {
			fmt.Fprintf(out, "  %-12s %s\n", subCmd.Name(), subCmd.Short)
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Other Commands:")
	for _, subCmd := range cmd.Commands() {
		if !subCmd.Hidden && subCmd.GroupID != insertGroup && subCmd.IsAvailableCommand() {
			fmt.Fprintf(out, "  %-12s %s\n", subCmd.Name(), subCmd.Short)
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Flags:")
	// print flags manually to get proper output formatting
	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		if flag.Hidden {
			return
		}
		flagStr := fmt.Sprintf("      --%s", flag.Name)
		if flag.Shorthand != "" {
			flagStr = fmt.Sprintf("  -%s, --%s", flag.Shorthand, flag.Name)
		}

		// add type information for non-boolflags
		if flag.Value.Type() != "bool" {
			flagStr += fmt.Sprintf(" %s", flag.Value.Type())
		}

		fmt.Fprintf(out, "%-30s %s", flagStr, flag.Usage)
		if flag.DefValue != "" && flag.DefValue != "false" && flag.DefValue != "[]" {
			fmt.Fprintf(out, " (default %s)", flag.DefValue)
		}
		fmt.Fprintln(out)
	})

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run \"snip\" in a terminal without arguments to pick a template from the menu")
	fmt.Fprintln(out, "Use \"snip [command] --help\" for more information about a command")
}

// newRootCmd builds the complete command tree
func newRootCmd() *cobra.Command {
	state := &rootCmdState{}

	rootCmd := &cobra.Command{
		Use:     "snip",
		Version: version,
		Short:   "Insert add-on boilerplate into a script",
		Long: `Snip inserts boilerplate for 3D add-on scripts (license headers, panels, menus
and operators) at the cursor of a script file, naming the generated class,
identifier and label from a single name.`,
		SilenceUsage: true, // Don't show usage after errors
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// get the debug flag value and create logger
			debug, err := cmd.Flags().GetBool("debug")
			if err != nil {
				return fmt.Errorf("failed to get debug flag: %w", err)
			}
			state.logger = logger.NewWithWriter(cmd.ErrOrStderr(), debug)

			state.manager = config.NewManager().
				WithLogger(state.logger).
				WithNotice(cmd.ErrOrStderr())

			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			if configPath == "" {
				configPath = defaultConfigPath
			}
			configPath, err = expandHomePath(configPath)
			if err != nil {
				return fmt.Errorf("failed to expand home path: %w", err)
			}

			// bind all persistent flags to their corresponding Viper keys
			viper := state.manager.Viper()
			flagBindings := map[string]string{
				"file":    "editor.file",
				"at":      "editor.cursor",
				"backup":  "editor.backup",
				"verbose": "verbose",
				"debug":   "debug",
			}
			for flagName, viperKey := range flagBindings {
				if err := viper.BindPFlag(viperKey, cmd.Flags().Lookup(flagName)); err != nil {
					return fmt.Errorf("failed to bind flag %s: %w", flagName, err)
				}
			}

			if err := state.manager.Load(configPath); err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// the menu needs a terminal; scripts get the help text
			if _, ok := terminalInput(cmd); !ok {
				showCustomHelp(cmd)
				return nil
			}
			return runInsert(cmd, state, insert.Request{}, &dialog.Static{})
		},
	}

	rootCmd.PersistentFlags().String("config", "", "Path to the config file")
	rootCmd.PersistentFlags().StringP("file", "f", "", `Script file to insert into ("-" reads stdin and writes stdout)`)
	rootCmd.PersistentFlags().String("at", "", "Cursor position in the script (line:column, line or end)")
	rootCmd.PersistentFlags().Bool("backup", false, "Keep a .bak copy of the script before writing")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Display a summary table after inserting")
	rootCmd.PersistentFlags().BoolP("debug", "D", false, "Enable detailed debug logging")

	rootCmd.AddGroup(&cobra.Group{ID: insertGroup, Title: "Insert Commands:"})

	rootCmd.AddCommand(createLicenseCommand(state))
	rootCmd.AddCommand(createPanelCommand(state))
	rootCmd.AddCommand(createMenuCommand(state))
	rootCmd.AddCommand(createOperatorCommand(state))
	rootCmd.AddCommand(createRenderCommand(state))
	rootCmd.AddCommand(createListCommand(state))
	rootCmd.AddCommand(createConfigCommand(state))
	rootCmd.AddCommand(createInitCommand(state))
	rootCmd.AddCommand(createVersionCommand())
	rootCmd.AddCommand(createManCommand())

	return rootCmd
}

// Execute builds the command tree and runs it; this is called by main.main()
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// createVersionCommand creates the version subcommand
func createVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display the current version of snip.",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), "snip version ", version, "\n")
			return nil
		},
	}
}
