package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/noah-isme/kmq-gateway/internal/repository"
	"github.com/noah-isme/kmq-gateway/internal/service"
	"github.com/noah-isme/kmq-gateway/pkg/cache"
)

func newCacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect the reference data cache",
	}
	cmd.AddCommand(newCachePurgeCommand())
	return cmd
}

func newCachePurgeCommand() *cobra.Command {
	var pattern string
	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete cached sites and measure catalog entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logr, err := loadConfigAndLogger()
			if err != nil {
				return err
			}
			defer func() { _ = logr.Sync() }()

			client, err := cache.NewRedis(cmd.Context(), cfg.Redis)
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			repo := repository.NewCacheRepository(client, cfg.Cache.Namespace)
			svc := service.NewCacheService(repo, nil, cfg.Cache.CatalogTTL, logr, true)
			removed, err := svc.Invalidate(cmd.Context(), pattern)
			if err != nil {
				return fmt.Errorf("purge cache: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d keys\n", removed)
			return nil
		},
	}
	cmd.Flags().StringVar(&pattern, "pattern", "*", "key pattern within the cache namespace")
	return cmd
}
