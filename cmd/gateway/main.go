package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "github.com/noah-isme/kmq-gateway/api/swagger"
)

// Build information, set with -ldflags.
var (
	version = "0.1.0"
	commit  = "unknown"
)

// @title KMQ Gateway API
// @version 0.1.0
// @description Read-only query and reporting gateway over childcare center records.
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "kmq-gateway",
		Short:         "Query and reporting gateway for childcare center records",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(
		newServeCommand(),
		newMCPCommand(),
		newDecodeCommand(),
		newTokenCommand(),
		newCacheCommand(),
		newVersionCommand(),
	)
	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "kmq-gateway %s (%s)\n", version, commit)
		},
	}
}
