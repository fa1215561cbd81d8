package cmd

import (
	"fmt"
	"strings"

	"github.com/chriscorrea/snip/internal/config"
	"github.com/chriscorrea/snip/internal/dialog"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// initAsk asks the init prompts; tests replace it
var initAsk dialog.AskFunc = survey.AskOne

// createInitCommand creates the init subcommand
func createInitCommand(state *rootCmdState) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize snip config through an interactive process",
		Long: `Initialize your snip configuration:
• Set the author name and mail used in license headers
• Choose the script file snip inserts into by default
• Decide whether a .bak copy is kept before each write

Your configuration will be saved to ~/.snip/config.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if state.manager == nil {
				return fmt.Errorf("config manager not initialized")
			}
			return runInit(cmd, state)
		},
	}
}

func runInit(cmd *cobra.Command, state *rootCmdState) error {
	cyan := color.New(color.FgCyan).SprintFunc()
	magenta := color.New(color.FgMagenta).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	errOut := cmd.ErrOrStderr()
	fmt.Fprintf(errOut, "\n%s\n", cyan("✂️  Welcome to snip"))
	fmt.Fprintf(errOut, "\n%s\n", "A few questions and your templates are ready to go.")

	var opts []survey.AskOpt
	if in, ok := terminalInput(cmd); ok {
		out := promptOutput(cmd)
		opts = append(opts, survey.WithStdio(in, out, out))
	}

	cfg := state.manager.Config()
	schema := config.DefaultConfigSchema()
	viper := state.manager.Viper()

	var name string
	namePrompt := &survey.Input{
		Message: fmt.Sprintf("%s Author name for license headers:", cyan("👤")),
		Default: cfg.Author.Name,
	}
	if err := initAsk(namePrompt, &name, opts...); err != nil {
		return fmt.Errorf("survey error: %w", err)
	}

	var mail string
	mailPrompt := &survey.Input{
		Message: fmt.Sprintf("%s Author mail:", cyan("📧")),
		Default: cfg.Author.Mail,
	}
	mailOpts := append(opts, survey.WithValidator(func(ans interface{}) error {
		return schema.ValidateValue("author.mail", strings.TrimSpace(fmt.Sprint(ans)))
	}))
	if err := initAsk(mailPrompt, &mail, mailOpts...); err != nil {
		return fmt.Errorf("survey error: %w", err)
	}

	var file string
	filePrompt := &survey.Input{
		Message: fmt.Sprintf("%s Default script file (optional):", cyan("📄")),
		Default: cfg.Editor.File,
		Help:    "Used when --file is not given; leave empty to always pass --file",
	}
	if err := initAsk(filePrompt, &file, opts...); err != nil {
		return fmt.Errorf("survey error: %w", err)
	}

	var backup bool
	backupPrompt := &survey.Confirm{
		Message: fmt.Sprintf("%s Keep a .bak copy before writing to a script?", cyan("🗂️")),
		Default: cfg.Editor.Backup,
	}
	if err := initAsk(backupPrompt, &backup, opts...); err != nil {
		return fmt.Errorf("survey error: %w", err)
	}

	viper.Set("author.name", strings.TrimSpace(name))
	viper.Set("author.mail", strings.TrimSpace(mail))
	viper.Set("editor.file", strings.TrimSpace(file))
	viper.Set("editor.backup", backup)

	fmt.Fprintf(errOut, "\n%s Saving your configuration...\n", yellow("💾"))
	if err := state.manager.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	configPath := viper.ConfigFileUsed()
	if configPath == "" {
		configPath = defaultConfigPath
	}

	fmt.Fprintf(errOut, "\n%s All set! Your configuration has been saved to %s\n",
		green("🎉"), magenta(configPath))
	fmt.Fprintf(errOut, "\n%s Try: %s\n",
		cyan("💡"), magenta("snip operator -f addon.py \"Grab Thing\""))
	fmt.Fprintf(errOut, "\n%s For more options, run: %s\n\n",
		cyan("📖"), magenta("snip --help"))

	return nil
}
