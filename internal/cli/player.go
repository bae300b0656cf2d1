package cli

import (
	"crypto/sha256"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aduwothevillian/GameVault/internal/model"
	"github.com/aduwothevillian/GameVault/internal/services/player"
)

// hashAttr commits a plaintext attribute (email, phone) to its stored form
func hashAttr(s string) model.IdentityHash {
	if s == "" {
		return model.IdentityHash{}
	}
	return model.IdentityHash(sha256.Sum256([]byte(s)))
}

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player registry commands",
	}

	cmd.AddCommand(newPlayerRegisterCmd())
	cmd.AddCommand(newPlayerShowCmd())
	cmd.AddCommand(newPlayerUpdateCmd())
	cmd.AddCommand(newPlayerSuspendCmd())
	cmd.AddCommand(newPlayerUnsuspendCmd())
	cmd.AddCommand(newPlayerLockCmd())
	cmd.AddCommand(newPlayerGrantAdminCmd())
	cmd.AddCommand(newPlayerStatsCmd())

	return cmd
}

func newPlayerRegisterCmd() *cobra.Command {
	var displayName, email, phone, bio, avatar string

	cmd := &cobra.Command{
		Use:   "register <username>",
		Short: "Register a player profile for the calling identity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := app.Player.Register(cmd.Context(), caller, player.RegisterParams{
				Username:    args[0],
				DisplayName: displayName,
				EmailHash:   hashAttr(email),
				PhoneHash:   hashAttr(phone),
				Bio:         bio,
				Avatar:      avatar,
			})
			if err != nil {
				return err
			}
			NewOutput(output).Print(profile)
			return nil
		},
	}

	cmd.Flags().StringVar(&displayName, "name", "", "Display name (required)")
	cmd.Flags().StringVar(&email, "email", "", "Email to commit as a hash")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number to commit as a hash")
	cmd.Flags().StringVar(&bio, "bio", "", "Profile bio")
	cmd.Flags().StringVar(&avatar, "avatar", "", "Avatar reference")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newPlayerShowCmd() *cobra.Command {
	var byUsername bool

	cmd := &cobra.Command{
		Use:   "show <identity-or-username>",
		Short: "Show a player profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var profile *model.Profile
			var err error
			if byUsername {
				profile, err = app.Player.GetByUsername(cmd.Context(), args[0])
			} else {
				profile, err = app.Player.Get(cmd.Context(), model.Identity(args[0]))
			}
			if err != nil {
				return err
			}
			NewOutput(output).Print(profile)
			return nil
		},
	}

	cmd.Flags().BoolVar(&byUsername, "username", false, "Look up by username instead of identity")

	return cmd
}

func newPlayerUpdateCmd() *cobra.Command {
	var displayName, bio, avatar string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update the calling identity's own profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := app.Player.UpdateProfile(cmd.Context(), caller, displayName, bio, avatar)
			if err != nil {
				return err
			}
			NewOutput(output).Print(profile)
			return nil
		},
	}

	cmd.Flags().StringVar(&displayName, "name", "", "Display name (required)")
	cmd.Flags().StringVar(&bio, "bio", "", "Profile bio")
	cmd.Flags().StringVar(&avatar, "avatar", "", "Avatar reference")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newPlayerSuspendCmd() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "suspend <identity>",
		Short: "Suspend a player (admin permission required)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Player.Suspend(cmd.Context(), caller, model.Identity(args[0]), reason); err != nil {
				return err
			}
			NewOutput(output).PrintMessage("player suspended: " + args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "Reason recorded in the audit log (required)")
	_ = cmd.MarkFlagRequired("reason")

	return cmd
}

func newPlayerUnsuspendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unsuspend <identity>",
		Short: "Lift a player's suspension (admin permission required)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Player.Unsuspend(cmd.Context(), caller, model.Identity(args[0])); err != nil {
				return err
			}
			NewOutput(output).PrintMessage("player unsuspended: " + args[0])
			return nil
		},
	}
}

func newPlayerLockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lock <identity>",
		Short: "Toggle a player's profile lock (admin permission required)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			locked, err := app.Player.ToggleProfileLock(cmd.Context(), caller, model.Identity(args[0]))
			if err != nil {
				return err
			}
			if locked {
				NewOutput(output).PrintMessage("profile locked: " + args[0])
			} else {
				NewOutput(output).PrintMessage("profile unlocked: " + args[0])
			}
			return nil
		},
	}
}

func newPlayerGrantAdminCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grant-admin <identity>",
		Short: "Grant a player the admin permission (owner only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Player.GrantAdmin(cmd.Context(), caller, model.Identity(args[0])); err != nil {
				return err
			}
			NewOutput(output).PrintMessage("admin granted: " + args[0])
			return nil
		},
	}
}

func newPlayerStatsCmd() *cobra.Command {
	var kind string
	var delta uint64

	cmd := &cobra.Command{
		Use:   "stats <identity>",
		Short: "Show a player's stats, or increment one with --kind",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := model.Identity(args[0])

			if kind != "" {
				if err := app.Player.UpdateStats(cmd.Context(), caller, target, model.StatKind(kind), delta); err != nil {
					return err
				}
				NewOutput(output).PrintMessage("stat " + kind + " += " + strconv.FormatUint(delta, 10))
				return nil
			}

			stats, err := app.Player.GetStats(cmd.Context(), target)
			if err != nil {
				return err
			}
			NewOutput(output).Print(stats)
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "Stat kind to increment")
	cmd.Flags().Uint64Var(&delta, "delta", 1, "Increment amount")

	return cmd
}
