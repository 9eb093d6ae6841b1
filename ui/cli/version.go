// Copyright (c) 2026 Examlist Team
// Examlist - exam schedule toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toeirei/examlist/buildvars"
	"github.com/toeirei/examlist/internal/config"
	"github.com/toeirei/examlist/internal/i18n"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		// No store needed.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "examlist %s\n", buildvars.VersionOrDefault("dev"))
		},
	}
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or write the configuration",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd)
		},
	}

	var system bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.WriteConfigFile(&appConfig, system); err != nil {
				return fmt.Errorf("could not write config: %w", err)
			}
			path, _ := config.GetConfigPath(system)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), i18n.T("config.written", path))
			return nil
		},
	}
	initCmd.Flags().BoolVar(&system, "system", false, "Write the system-wide config instead of the user config")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "database.type: %s\n", appConfig.Database.Type)
			_, _ = fmt.Fprintf(w, "database.dsn: %s\n", appConfig.Database.Dsn)
			_, _ = fmt.Fprintf(w, "language: %s\n", appConfig.Language)
			_, _ = fmt.Fprintf(w, "log.level: %s\n", appConfig.Log.Level)
			_, _ = fmt.Fprintf(w, "schedule.file: %s\n", appConfig.Schedule.File)
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}
