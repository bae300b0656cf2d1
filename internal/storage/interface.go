package storage

import (
	"context"

	"github.com/aduwothevillian/GameVault/internal/model"
)

// Storage defines the interface for data persistence.
//
// Writes are whole-record: callers read, apply field changes, and save the
// merged record back. Records are never physically deleted; deactivation is
// a flag flip on the record itself.
type Storage interface {
	// System state (singleton record)
	SaveSystemState(ctx context.Context, state *model.SystemState) error
	GetSystemState(ctx context.Context) (*model.SystemState, error)

	// Contract registry
	SaveContract(ctx context.Context, contract *model.Contract) error
	GetContract(ctx context.Context, name model.ContractName) (*model.Contract, error)

	// Game registry
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)

	// System admin registry
	SaveAdminEntry(ctx context.Context, entry *model.AdminEntry) error
	GetAdminEntry(ctx context.Context, id model.Identity) (*model.AdminEntry, error)

	// Player profiles. SaveProfile also maintains the username index.
	SaveProfile(ctx context.Context, profile *model.Profile) error
	GetProfile(ctx context.Context, id model.Identity) (*model.Profile, error)
	GetProfileByUsername(ctx context.Context, username string) (*model.Profile, error)

	// Player permissions
	SavePermissions(ctx context.Context, perms *model.Permissions) error
	GetPermissions(ctx context.Context, id model.Identity) (*model.Permissions, error)

	// Player stats
	SaveStats(ctx context.Context, stats *model.Stats) error
	GetStats(ctx context.Context, id model.Identity) (*model.Stats, error)

	// Verification challenges, keyed by (identity, kind)
	SaveVerificationCode(ctx context.Context, code *model.VerificationCode) error
	GetVerificationCode(ctx context.Context, id model.Identity, kind model.VerificationKind) (*model.VerificationCode, error)

	// Audit log
	SaveAdminAction(ctx context.Context, action *model.AdminAction) error
	GetAdminAction(ctx context.Context, id model.AdminActionID) (*model.AdminAction, error)
	// NextAdminActionID allocates the next monotonic audit log id, starting at 1
	NextAdminActionID(ctx context.Context) (model.AdminActionID, error)

	// Player counter
	IncrementPlayerCount(ctx context.Context) (uint64, error)
	PlayerCount(ctx context.Context) (uint64, error)
}
