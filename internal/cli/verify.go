package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aduwothevillian/GameVault/internal/model"
	"github.com/aduwothevillian/GameVault/internal/services/verification"
)

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Identity verification commands",
	}

	cmd.AddCommand(newVerifyRequestCmd())
	cmd.AddCommand(newVerifySubmitCmd())
	cmd.AddCommand(newVerifyStatusCmd())

	return cmd
}

func newVerifyRequestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "request <kind>",
		Short: "Issue a verification challenge (kinds: email, phone, kyc)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := model.VerificationKind(args[0])

			// The plaintext code would normally travel out of band; the
			// console prints it so the operator can relay it.
			code := app.Verification.GenerateCode()
			if err := app.Verification.Request(cmd.Context(), caller, kind, verification.DigestCode(code)); err != nil {
				return err
			}

			NewOutput(output).PrintMessage(fmt.Sprintf("challenge issued, code: %s", code))
			return nil
		},
	}
}

func newVerifySubmitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "submit <kind> <code>",
		Short: "Submit a verification code",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := model.VerificationKind(args[0])
			if err := app.Verification.Verify(cmd.Context(), caller, kind, verification.DigestCode(args[1])); err != nil {
				return err
			}
			NewOutput(output).PrintMessage("identity verified: " + args[0])
			return nil
		},
	}
}

func newVerifyStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <identity> <kind>",
		Short: "Show the verification challenge for an identity and kind",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, ok, err := app.Verification.Status(cmd.Context(), model.Identity(args[0]), model.VerificationKind(args[1]))
			if err != nil {
				return err
			}
			if !ok {
				NewOutput(output).PrintMessage("no challenge")
				return nil
			}
			NewOutput(output).Print(code)
			return nil
		},
	}
}
