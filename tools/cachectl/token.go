package main

import (
	"errors"
	"flight-parser/auth"
	"fmt"

	"github.com/spf13/cobra"
)

var tokenSubject string

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Print a bearer token for POST /parse signed with AUTH_SECRET",
	RunE: func(cmd *cobra.Command, args []string) error {
		tokens := auth.NewTokenIssuer(config.AuthSecret, config.AuthTokenDuration)
		if !tokens.Enabled() {
			return errors.New("AUTH_SECRET is not set, the server accepts requests without a token")
		}
		token, err := tokens.Generate(tokenSubject)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "cachectl", "subject stored in the token")
}
