package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v2"

	"github.com/genolab/pcrmix/config"
)

// configCmd groups config-file maintenance: writing a starter file and
// printing the effective settings.
func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the pcrmix config file",
	}

	cmd.AddCommand(configInitCmd(), configViewCmd())

	return cmd
}

func configInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter .pcrmix.yaml with the builtin defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}
			if path == "" {
				if path, err = config.DefaultPath(); err != nil {
					return err
				}
			}

			force, err := cmd.Flags().GetBool("force")
			if err != nil {
				return err
			}

			if err := config.Write(path, force); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().Bool("force", false, "overwrite an existing config file")

	return cmd
}

func configViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Print the effective configuration as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			out, err := yaml.Marshal(cfg)
			if err != nil {
				return errors.Wrap(err, "marshalling config")
			}

			if cfg.File != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", cfg.File)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
