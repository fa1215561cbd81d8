package cmd

import (
	"fmt"
	"strings"

	"github.com/chriscorrea/snip/internal/buffer"
	"github.com/chriscorrea/snip/internal/dialog"
	"github.com/chriscorrea/snip/internal/insert"
	"github.com/chriscorrea/snip/internal/templates"
	"github.com/chriscorrea/snip/internal/verbose"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const insertGroup = "insert"

// createLicenseCommand creates the license subcommand
func createLicenseCommand(state *rootCmdState) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "license",
		GroupID: insertGroup,
		Short:   "Insert a GPL license header",
		Long: `Insert a GPL license header with your name and mail at the cursor.

Name and mail default to author.name and author.mail from the configuration.
In a terminal the values are confirmed in a short dialog.

Examples:
  snip license -f addon.py
  snip license -f addon.py --name "Ada Lovelace" --mail ada@example.com`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			mail, _ := cmd.Flags().GetString("mail")

			req := insert.Request{Kind: templates.KindLicense}
			return runInsert(cmd, state, req, &dialog.Static{
				Author: dialog.Author{Name: name, Mail: mail},
			})
		},
	}

	cmd.Flags().String("name", "", "Author name")
	cmd.Flags().String("mail", "", "Author mail")
	return cmd
}

// createPanelCommand creates the panel subcommand
func createPanelCommand(state *rootCmdState) *cobra.Command {
	return createNamedInsertCommand(state, templates.KindPanel, `Insert a panel class at the cursor.

The name sets the class name, the identifier and the label of the panel.

Examples:
  snip panel -f addon.py "Object Tools"
  snip panel -f addon.py --at 12:0 ObjectTools`)
}

// createMenuCommand creates the menu subcommand
func createMenuCommand(state *rootCmdState) *cobra.Command {
	return createNamedInsertCommand(state, templates.KindMenu, `Insert a menu class at the cursor.

The menu identifier gets the "`+insert.MenuIDPrefix+`" prefix. Use --kind pie for a pie menu.

Examples:
  snip menu -f addon.py "Quick Tools"
  snip menu -f addon.py --kind pie "Quick Tools"`)
}

// createOperatorCommand creates the operator subcommand
func createOperatorCommand(state *rootCmdState) *cobra.Command {
	return createNamedInsertCommand(state, templates.KindOperator, `Insert an operator class at the cursor.

The operator identifier gets the "`+insert.OperatorIDPrefix+`" prefix. Use --kind modal for
a modal operator or --kind modal-draw for a modal operator that draws in the viewport.

Examples:
  snip operator -f addon.py "Grab Thing"
  snip operator -f addon.py --kind modal-draw "Draw Line"`)
}

// createNamedInsertCommand builds the commands whose template takes a name
func createNamedInsertCommand(state *rootCmdState, kind templates.Kind, long string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     string(kind) + " [name...]",
		GroupID: insertGroup,
		Short:   fmt.Sprintf("Insert a %s class", strings.ToLower(kind.Label())),
		Long:    long,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			static := &dialog.Static{Name: strings.Join(args, " ")}
			if cmd.Flags().Changed("kind") {
				sub, _ := cmd.Flags().GetString("kind")
				static.Sub = templates.SubKind(sub)
			}
			return runInsert(cmd, state, insert.Request{Kind: kind}, static)
		},
	}

	if templates.HasVariants(kind) {
		var names []string
		for _, sub := range templates.SubKinds(kind) {
			names = append(names, string(sub))
		}
		cmd.Flags().String("kind", string(templates.DefaultSubKind(kind)),
			fmt.Sprintf("Variant of the %s (%s)", strings.ToLower(kind.Label()), strings.Join(names, ", ")))
		_ = cmd.RegisterFlagCompletionFunc("kind", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return names, cobra.ShellCompDirectiveNoFileComp
		})
	}

	return cmd
}

// runInsert resolves the active buffer and runs one insert session. Values
// missing from static are asked interactively when stdin is a terminal.
func runInsert(cmd *cobra.Command, state *rootCmdState, req insert.Request, static *dialog.Static) error {
	if state.manager == nil {
		return fmt.Errorf("config manager not initialized")
	}
	cfg := state.manager.Config()

	table, err := templates.Builtin().WithOverrides(cfg.TemplateOverrides())
	if err != nil {
		return fmt.Errorf("invalid user templates: %w", err)
	}

	cursor, err := buffer.ParseCursor(cfg.Editor.Cursor)
	if err != nil {
		return err
	}

	path, err := expandHomePath(cfg.Editor.File)
	if err != nil {
		return fmt.Errorf("failed to expand home path: %w", err)
	}

	if in, ok := terminalInput(cmd); ok {
		out := promptOutput(cmd)
		static.Fallback = dialog.NewSurvey(in, out, out)
	}

	session := &insert.Session{
		Workspace: buffer.NewWorkspace(path, cursor).
			WithLogger(state.logger).
			WithStdio(cmd.InOrStdin(), cmd.OutOrStdout()),
		Dialog:    static,
		Inserter:  insert.New(table).WithLogger(state.logger),
		Author:    dialog.Author{Name: cfg.Author.Name, Mail: cfg.Author.Mail},
		Backup:    cfg.Editor.Backup,
	}

	result, err := session.Run(req)
	if err != nil {
		return err
	}

	state.logger.Info("Command completed",
		"status", result.Status.String(),
		"template", result.Request.Key().String(),
		"path", result.Path,
	)

	outputCfg := verbose.DefaultOutputConfig(cmd.ErrOrStderr())
	outputCfg.EnableColors = !color.NoColor
	verbose.PrintStatus(result, outputCfg)
	if cfg.Verbose && result.Status == insert.Finished {
		verbose.PrintInsertion(result, outputCfg)
	}

	return nil
}
