// Copyright (c) 2026 Examlist Team
// Examlist - exam schedule toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the root command, loads configuration and opens the exam
// store before any subcommand runs.

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toeirei/examlist/buildvars"
	"github.com/toeirei/examlist/internal/config"
	"github.com/toeirei/examlist/internal/db"
	"github.com/toeirei/examlist/internal/i18n"
	"github.com/toeirei/examlist/internal/logging"
)

var (
	cfgFile   string
	verbose   bool
	appConfig config.Config
	store     *db.Store
)

// getConfigPathFromCli returns the --config value when it was set.
func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	f := cmd.Flags().Lookup("config")
	if f == nil || !f.Changed {
		return nil, nil
	}
	path := f.Value.String()
	if path == "" {
		return nil, errors.New("--config requires a path")
	}
	return &path, nil
}

func loadConfig(cmd *cobra.Command) error {
	configPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	defaults := config.Defaults()
	appConfig, err = config.LoadConfig[config.Config](cmd, defaults, configPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// Empty values in a config file fall back to the defaults.
	if appConfig.Database.Type == "" {
		appConfig.Database.Type = defaults["database.type"].(string)
	}
	if appConfig.Database.Dsn == "" {
		appConfig.Database.Dsn = defaults["database.dsn"].(string)
	}
	if appConfig.Language == "" {
		appConfig.Language = defaults["language"].(string)
	}

	logging.SetLevel(appConfig.Log.Level)
	if verbose {
		logging.SetLevel("debug")
		db.SetDebug(true)
	}
	i18n.Init(appConfig.Language)
	return nil
}

// setupDefaultServices loads configuration and opens the exam store.
func setupDefaultServices(cmd *cobra.Command, args []string) error {
	if err := loadConfig(cmd); err != nil {
		return err
	}
	if store != nil {
		return nil
	}
	s, err := db.New(appConfig.Database.Type, appConfig.Database.Dsn)
	if err != nil {
		return errors.New(i18n.T("config.error_init_db", err))
	}
	store = s
	logging.Debugf("opened %s store at %s", appConfig.Database.Type, appConfig.Database.Dsn)
	return nil
}

func closeStore() {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logging.Warnf("closing store: %v", err)
	}
	store = nil
}

// Execute runs the CLI entrypoint. The main package should call this function
// and handle process exit.
func Execute() error {
	defer closeStore()
	return NewRootCmd().Execute()
}

func applyDefaultFlags(cmd *cobra.Command) {
	// NewRootCmd may run more than once in tests; pflag panics on duplicates.
	if cmd.PersistentFlags().Lookup("database.type") == nil {
		cmd.PersistentFlags().String("database.type", "sqlite", "Database type (sqlite, postgres, mysql)")
	}
	if cmd.PersistentFlags().Lookup("database.dsn") == nil {
		cmd.PersistentFlags().String("database.dsn", "./examlist.db", "Database connection string")
	}
	if cmd.PersistentFlags().Lookup("language") == nil {
		cmd.PersistentFlags().String("language", "en", `Output language ("en", "de")`)
	}
	if cmd.PersistentFlags().Lookup("log.level") == nil {
		cmd.PersistentFlags().String("log.level", "info", "Log level (debug, info, warn, error)")
	}
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "examlist",
		Short: "Examlist keeps an ordered schedule of exams.",
		Long: `Examlist stores exams in a database and always presents them in
calendar order. Exams can be added, filtered, shifted, removed per course,
and imported from or exported to YAML files (optionally zstd-compressed).`,
		Version:       buildvars.VersionOrDefault("dev"),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupDefaultServices(cmd, args)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			closeStore()
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	applyDefaultFlags(cmd)

	cmd.AddCommand(
		newAddCmd(),
		newListCmd(),
		newUpcomingCmd(),
		newRemoveCmd(),
		newShiftCmd(),
		newLinkCmd(),
		newImportCmd(),
		newExportCmd(),
		newMatamCmd(),
		newVersionCmd(),
		newConfigCmd(),
	)
	return cmd
}
