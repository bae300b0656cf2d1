package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aduwothevillian/GameVault/internal/factory"
	"github.com/aduwothevillian/GameVault/internal/model"
)

var (
	app    *factory.App
	caller model.Identity
	output string
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var asFlag string

	rootCmd := &cobra.Command{
		Use:   "vaultadmin",
		Short: "Admin console for the GameVault registry",
		Long: `vaultadmin operates the GameVault permissioned registry directly
against its storage backend.

Every invocation runs one operation as the identity given by --as.
Configure the backend with GAMEVAULT_STORAGE (memory or redis),
GAMEVAULT_REDIS_URL, and GAMEVAULT_OWNER. The memory backend does not
persist between invocations; use redis for real operation.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := factory.ConfigFromEnv()
			if err != nil {
				return err
			}
			cfg.Logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelWarn,
			}))

			app, err = factory.New(cfg)
			if err != nil {
				return err
			}

			caller = model.Identity(asFlag)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&asFlag, "as", os.Getenv("GAMEVAULT_IDENTITY"), "Caller identity (env: GAMEVAULT_IDENTITY)")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "text", "Output format: text, json")

	// Add subcommands
	rootCmd.AddCommand(newSystemCmd())
	rootCmd.AddCommand(newContractCmd())
	rootCmd.AddCommand(newGameCmd())
	rootCmd.AddCommand(newPlayerCmd())
	rootCmd.AddCommand(newVerifyCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
