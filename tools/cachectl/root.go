package main

import (
	"flight-parser/internal"
	"flight-parser/repositories"
	"fmt"
	"log/slog"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/spf13/cobra"
)

var (
	config      internal.Config
	backendFlag string
	pathFlag    string
	noColour    bool
	log         *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "cachectl",
	Short:         "Inspect and maintain the keychain cache",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()
		if _, err := env.UnmarshalFromEnviron(&config); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
		if backendFlag == "" {
			backendFlag = config.KeychainCacheBackend
		}
		if pathFlag == "" {
			pathFlag = config.KeychainCachePath
		}
		if backendFlag != internal.BackendJSON && backendFlag != internal.BackendBadger {
			return fmt.Errorf("unknown backend %q, expected %s or %s", backendFlag, internal.BackendJSON, internal.BackendBadger)
		}
		log = logs.GetLoggerFromString(config.LogLevel)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&backendFlag, "backend", "", "cache backend: json or badger (default KEYCHAIN_CACHE_BACKEND)")
	rootCmd.PersistentFlags().StringVar(&pathFlag, "path", "", "cache file or directory (default KEYCHAIN_CACHE_PATH)")
	rootCmd.PersistentFlags().BoolVar(&noColour, "no-color", false, "disable colored output")
	rootCmd.AddCommand(listCmd, purgeCmd, tokenCmd)
}

// withCache opens the selected backend for the duration of fn.
func withCache(fn func(cache keychainCache) error) error {
	if backendFlag == internal.BackendJSON {
		return fn(repositories.NewKeychainFileCache(pathFlag, log))
	}
	db, err := badger.Open(badger.DefaultOptions(pathFlag).WithLogger(nil))
	if err != nil {
		return fmt.Errorf("error while opening Badger: %w", err)
	}
	defer db.Close()
	return fn(repositories.NewKeychainBadgerCache(db, log))
}
