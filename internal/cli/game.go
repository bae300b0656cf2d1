package cli

import (
	"github.com/spf13/cobra"

	"github.com/aduwothevillian/GameVault/internal/model"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game registry commands",
	}

	cmd.AddCommand(newGameRegisterCmd())
	cmd.AddCommand(newGameDeactivateCmd())
	cmd.AddCommand(newGameGetCmd())

	return cmd
}

func newGameRegisterCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "register <id>",
		Short: "Register a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.System.RegisterGame(cmd.Context(), caller, model.GameID(args[0]), name); err != nil {
				return err
			}
			NewOutput(output).PrintMessage("game registered: " + args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newGameDeactivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deactivate <id>",
		Short: "Deactivate a game (developer or authorized caller)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.System.DeactivateGame(cmd.Context(), caller, model.GameID(args[0])); err != nil {
				return err
			}
			NewOutput(output).PrintMessage("game deactivated: " + args[0])
			return nil
		},
	}
}

func newGameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show game details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			game, err := app.System.GameDetails(cmd.Context(), model.GameID(args[0]))
			if err != nil {
				return err
			}
			NewOutput(output).Print(game)
			return nil
		},
	}
}
