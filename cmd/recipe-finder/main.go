// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the recipe-finder CLI.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/recipe-finder/internal/secrets"
	"github.com/pdiddy/recipe-finder/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	// logger is configured from --verbose before any subcommand runs.
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	// loadedSecrets holds keys loaded from .secrets/ at startup.
	loadedSecrets secrets.Secrets
)

// rootCmd is the base command for the recipe-finder CLI.
var rootCmd = &cobra.Command{
	Use:   "recipe-finder",
	Short: "Search recipes by ingredient and keep a list of favorites",
	Long: `recipe-finder searches TheMealDB for recipes that use a given ingredient,
narrows the results with category, cuisine, cooking-time and diet filters,
shows full recipe details, and keeps a local list of favorite recipes.

Filters are applied locally to the search results; changing them never
queries the remote service again.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = newLogger(viper.GetBool("verbose"))

		s, err := secrets.Load(secrets.DefaultDir, logger)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			logger.Debug("loaded secrets", "keys", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./recipe-finder.yaml or ~/.config/recipe-finder/recipe-finder.yaml)")
	pf.String("storage", string(types.StorageFile), "favorites storage backend: file, sqlite, or memory")
	pf.String("data-dir", types.DefaultDataDir, "directory holding the favorites store")
	pf.String("base-url", types.DefaultBaseURL, "recipe API root, without the key segment")
	pf.Duration("timeout", types.DefaultTimeout, "HTTP request timeout")
	pf.BoolP("verbose", "v", false, "log debug output to stderr")

	_ = viper.BindPFlag("favorites.backend", pf.Lookup("storage"))
	_ = viper.BindPFlag("favorites.data_dir", pf.Lookup("data-dir"))
	_ = viper.BindPFlag("source.base_url", pf.Lookup("base-url"))
	_ = viper.BindPFlag("source.timeout", pf.Lookup("timeout"))
	_ = viper.BindPFlag("verbose", pf.Lookup("verbose"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("recipe-finder")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "recipe-finder"))
		}
	}

	viper.SetDefault("source.user_agent", types.DefaultUserAgent)

	viper.SetEnvPrefix("RECIPE_FINDER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig resolves the runtime configuration from defaults, config
// file, environment, and flags. The API key falls back to
// .secrets/mealdb-api-key and then to the public test key.
func loadConfig() (types.Config, error) {
	cfg := types.DefaultConfig()
	cfg.Source.APIKey = ""
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing configuration: %w", err)
	}
	if cfg.Source.APIKey == "" {
		cfg.Source.APIKey = loadedSecrets.Get(secrets.MealDBAPIKey, types.DefaultAPIKey)
	}

	switch cfg.Favorites.Backend {
	case types.StorageFile, types.StorageSQLite, types.StorageMemory:
	default:
		return cfg, fmt.Errorf("unknown storage backend %q: use file, sqlite, or memory: %w",
			cfg.Favorites.Backend, types.ErrInvalidInput)
	}
	return cfg, nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
