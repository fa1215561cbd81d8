package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// createManCommand creates the hidden man page generator
func createManCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:    "man",
		Short:  "Generate man pages for snip",
		Long:   `This command generates the man pages for the snip CLI.`,
		Hidden: true, // hide this from the public help output
		Args:   cobra.NoArgs,
		// no configuration needed to write the pages
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			header := &doc.GenManHeader{
				Title:   "SNIP",
				Section: "1", // executable programs and shell commands
				Source:  "Snip CLI",
			}

			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create man directory: %w", err)
			}

			if err := doc.GenManTree(cmd.Root(), header, dir); err != nil {
				return fmt.Errorf("failed to generate man pages: %w", err)
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "Man pages successfully generated in %s\n", dir)
			return nil
		},
	}

	cmd.Flags().String("dir", "./man", "Directory the pages are written to")
	return cmd
}
