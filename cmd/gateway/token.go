package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"github.com/noah-isme/kmq-gateway/internal/middleware"
	"github.com/noah-isme/kmq-gateway/internal/service"
	"github.com/noah-isme/kmq-gateway/pkg/config"
	"github.com/noah-isme/kmq-gateway/pkg/gdocs"
)

func newTokenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage API bearer tokens and the document service authorization",
	}
	cmd.AddCommand(newTokenIssueCommand(), newGoogleAuthCommand())
	return cmd
}

func newTokenIssueCommand() *cobra.Command {
	var (
		subject string
		scope   string
		ttl     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Sign a bearer token for the HTTP API",
		Example: "  kmq-gateway token issue --subject reporting --scope \"" +
			middleware.ScopeRecordsRead + " " + middleware.ScopeDocumentsRead + "\"",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if subject == "" {
				return fmt.Errorf("--subject is required")
			}
			if ttl <= 0 {
				ttl = cfg.JWT.Expiration
			}
			tokens := service.NewTokenService(service.TokenConfig{
				Secret: cfg.JWT.Secret,
				Issuer: cfg.JWT.Issuer,
				TTL:    ttl,
			})
			signed, expiresAt, err := tokens.Issue(subject, scope)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), signed)
			cmd.PrintErrf("expires %s\n", expiresAt.Format(time.RFC3339))
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "token subject")
	cmd.Flags().StringVar(&scope, "scope", middleware.ScopeRecordsRead, "space separated scopes")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (defaults to JWT_EXPIRATION)")
	return cmd
}

func newGoogleAuthCommand() *cobra.Command {
	var code string
	cmd := &cobra.Command{
		Use:   "google-auth",
		Short: "Authorize the spreadsheet and form tools",
		Long: `Without --code, prints the consent URL. Open it, approve access and
rerun with the code shown to store the token at GOOGLE_TOKEN_PATH.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			conf, err := gdocs.LoadConfig(cfg.Documents.CredentialsPath)
			if err != nil {
				return err
			}
			if code == "" {
				fmt.Fprintln(cmd.OutOrStdout(), conf.AuthCodeURL("state-token", oauth2.AccessTypeOffline))
				return nil
			}
			if _, err := gdocs.Exchange(cmd.Context(), conf, code, cfg.Documents.TokenPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "token saved to %s\n", cfg.Documents.TokenPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&code, "code", "", "authorization code from the consent page")
	return cmd
}
