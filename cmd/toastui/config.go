package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vango-dev/toastui/internal/config"
	"github.com/vango-dev/toastui/internal/errors"
)

func configCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage " + config.ConfigFileName,
	}
	cmd.AddCommand(configInitCmd(g), configCheckCmd(g))
	return cmd
}

func configInitCmd(g *globals) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default " + config.ConfigFileName,
		RunE: func(cmd *cobra.Command, args []string) error {
			if config.Exists(g.dir) && !force {
				return errors.Newf(errors.CategoryCLI, "%s already exists in %s", config.ConfigFileName, g.dir).
					WithSuggestion("Pass --force to overwrite it")
			}

			path := filepath.Join(g.dir, config.ConfigFileName)
			if err := config.New().SaveTo(path); err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Wrote %s", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	return cmd
}

func configCheckCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate " + config.ConfigFileName,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(g.dir)
			if err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "%s is valid", cfg.Path())
			return nil
		},
	}
}
