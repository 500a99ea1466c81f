package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Remove every cached keychain entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCache(func(cache keychainCache) error {
			if err := cache.Purge(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Purged %s cache at %s\n", backendFlag, pathFlag)
			return nil
		})
	},
}
