package cli

import (
	"github.com/spf13/cobra"

	"github.com/aduwothevillian/GameVault/internal/model"
)

func newSystemCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "system",
		Short: "System lifecycle commands",
	}

	cmd.AddCommand(newSystemInitCmd())
	cmd.AddCommand(newSystemStatusCmd())
	cmd.AddCommand(newSystemPauseCmd())
	cmd.AddCommand(newSystemUnpauseCmd())
	cmd.AddCommand(newSystemTransferOwnerCmd())
	cmd.AddCommand(newSystemAddAdminCmd())
	cmd.AddCommand(newSystemRemoveAdminCmd())

	return cmd
}

func newSystemInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the registry (owner only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.System.Initialize(cmd.Context(), caller); err != nil {
				return err
			}
			NewOutput(output).PrintMessage("system initialized")
			return nil
		},
	}
}

func newSystemStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show system status",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := app.System.SystemStatus(cmd.Context())
			if err != nil {
				return err
			}
			NewOutput(output).Print(status)
			return nil
		},
	}
}

func newSystemPauseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pause",
		Short: "Pause the registry (authorized callers)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.System.Pause(cmd.Context(), caller); err != nil {
				return err
			}
			NewOutput(output).PrintMessage("system paused")
			return nil
		},
	}
}

func newSystemUnpauseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unpause",
		Short: "Resume a paused registry (owner only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.System.Unpause(cmd.Context(), caller); err != nil {
				return err
			}
			NewOutput(output).PrintMessage("system resumed")
			return nil
		},
	}
}

func newSystemTransferOwnerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transfer-owner <identity>",
		Short: "Transfer ownership to a new identity (owner only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.System.TransferOwnership(cmd.Context(), caller, model.Identity(args[0])); err != nil {
				return err
			}
			NewOutput(output).PrintMessage("ownership transferred to " + args[0])
			return nil
		},
	}
}

func newSystemAddAdminCmd() *cobra.Command {
	var role string

	cmd := &cobra.Command{
		Use:   "add-admin <identity>",
		Short: "Enroll a system admin (owner only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.System.AddAdmin(cmd.Context(), caller, model.Identity(args[0]), role); err != nil {
				return err
			}
			NewOutput(output).PrintMessage("admin added: " + args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "moderator", "Role label for the admin entry")

	return cmd
}

func newSystemRemoveAdminCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-admin <identity>",
		Short: "Deactivate a system admin (owner only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.System.RemoveAdmin(cmd.Context(), caller, model.Identity(args[0])); err != nil {
				return err
			}
			NewOutput(output).PrintMessage("admin removed: " + args[0])
			return nil
		},
	}
}
