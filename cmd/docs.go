package cmd

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

//go:embed resources/README.md
var readme embed.FS

// docsCmd renders the bundled guide on the terminal, or writes the
// generated command reference as a Markdown tree.
func docsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Print the pcrmix guide",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cmd.Flags().GetString("markdown")
			if err != nil {
				return err
			}
			if dir != "" {
				if err = os.MkdirAll(dir, 0755); err != nil {
					return errors.Wrapf(err, "creating %s", dir)
				}
				return doc.GenMarkdownTree(RootCmd(), dir)
			}

			content, err := fs.ReadFile(readme, "resources/README.md")
			if err != nil {
				return errors.Wrap(err, "reading bundled docs")
			}

			renderer, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(120),
			)
			if err != nil {
				return errors.Wrap(err, "creating docs renderer")
			}

			rendered, err := renderer.Render(string(content))
			if err != nil {
				return errors.Wrap(err, "rendering docs")
			}

			fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return nil
		},
	}

	cmd.Flags().String("markdown", "", "write the command reference as Markdown files into this directory")

	return cmd
}
