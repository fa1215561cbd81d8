package cmd

import (
	"fmt"
	"strings"

	"github.com/chriscorrea/snip/internal/insert"
	"github.com/chriscorrea/snip/internal/templates"

	"github.com/spf13/cobra"
)

// createRenderCommand creates the render subcommand
func createRenderCommand(state *rootCmdState) *cobra.Command {
	var kindNames []string
	for _, kind := range templates.Kinds {
		kindNames = append(kindNames, string(kind))
	}

	cmd := &cobra.Command{
		Use:   "render <kind> [name...]",
		Short: "Print a filled-in template without touching any file",
		Long: `Print the template for a kind with all placeholders substituted.

Nothing is inserted and no script file is needed, so the output can be
piped or pasted anywhere.

Examples:
  snip render panel "Object Tools"
  snip render operator --kind modal "Grab Thing"
  snip render license --name "Ada Lovelace" --mail ada@example.com`,
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: kindNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			if state.manager == nil {
				return fmt.Errorf("config manager not initialized")
			}
			cfg := state.manager.Config()

			kind, err := templates.ParseKind(args[0])
			if err != nil {
				return err
			}
			subName, _ := cmd.Flags().GetString("kind")
			sub, err := templates.ParseSubKind(kind, subName)
			if err != nil {
				return err
			}

			req := insert.Request{
				Kind:       kind,
				Sub:        sub,
				Name:       strings.Join(args[1:], " "),
				AuthorName: cfg.Author.Name,
				AuthorMail: cfg.Author.Mail,
			}
			if name, _ := cmd.Flags().GetString("name"); name != "" {
				req.AuthorName = name
			}
			if mail, _ := cmd.Flags().GetString("mail"); mail != "" {
				req.AuthorMail = mail
			}

			table, err := templates.Builtin().WithOverrides(cfg.TemplateOverrides())
			if err != nil {
				return fmt.Errorf("invalid user templates: %w", err)
			}

			text, err := insert.New(table).WithLogger(state.logger).Render(req)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().String("kind", "", "Template variant (normal, pie, modal, modal-draw)")
	cmd.Flags().String("name", "", "Author name for the license")
	cmd.Flags().String("mail", "", "Author mail for the license")
	return cmd
}
