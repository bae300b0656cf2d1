package cli

import (
	"github.com/spf13/cobra"

	"github.com/aduwothevillian/GameVault/internal/model"
)

func newContractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contract",
		Short: "Contract registry commands",
	}

	cmd.AddCommand(newContractRegisterCmd())
	cmd.AddCommand(newContractUpdateCmd())
	cmd.AddCommand(newContractDisableCmd())
	cmd.AddCommand(newContractGetCmd())

	return cmd
}

func newContractRegisterCmd() *cobra.Command {
	var address, version string

	cmd := &cobra.Command{
		Use:   "register <name>",
		Short: "Register or refresh a contract entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := model.ContractName(args[0])
			if err := app.System.RegisterContract(cmd.Context(), caller, name, address, version); err != nil {
				return err
			}
			NewOutput(output).PrintMessage("contract registered: " + args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "Contract address (required)")
	cmd.Flags().StringVar(&version, "version", "", "Contract version (required)")
	_ = cmd.MarkFlagRequired("address")
	_ = cmd.MarkFlagRequired("version")

	return cmd
}

func newContractUpdateCmd() *cobra.Command {
	var address, version string

	cmd := &cobra.Command{
		Use:   "update <name>",
		Short: "Update an existing contract entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := model.ContractName(args[0])
			if err := app.System.UpdateContract(cmd.Context(), caller, name, address, version); err != nil {
				return err
			}
			NewOutput(output).PrintMessage("contract updated: " + args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "Contract address (required)")
	cmd.Flags().StringVar(&version, "version", "", "Contract version (required)")
	_ = cmd.MarkFlagRequired("address")
	_ = cmd.MarkFlagRequired("version")

	return cmd
}

func newContractDisableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disable <name>",
		Short: "Disable a contract entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.System.DisableContract(cmd.Context(), caller, model.ContractName(args[0])); err != nil {
				return err
			}
			NewOutput(output).PrintMessage("contract disabled: " + args[0])
			return nil
		},
	}
}

func newContractGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Resolve a contract address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := app.System.ContractAddress(cmd.Context(), model.ContractName(args[0]))
			if err != nil {
				return err
			}
			NewOutput(output).PrintMessage(addr)
			return nil
		},
	}
}
