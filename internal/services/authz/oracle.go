package authz

import (
	"context"
	"errors"

	"github.com/aduwothevillian/GameVault/internal/model"
	"github.com/aduwothevillian/GameVault/internal/storage"
)

// Oracle answers authorization questions from the permission registries.
// It holds no mutable state and caches nothing: every predicate re-reads,
// so permission changes take effect on the very next call.
type Oracle struct {
	storage storage.Storage
	owner   model.Identity // bootstrap owner, used until ownership is recorded
}

// New creates an Oracle with the configured bootstrap owner identity
func New(store storage.Storage, owner model.Identity) *Oracle {
	return &Oracle{
		storage: store,
		owner:   owner,
	}
}

// Owner returns the current owner identity: the recorded owner once the
// system is initialized, the configured bootstrap owner before that.
func (o *Oracle) Owner(ctx context.Context) (model.Identity, error) {
	state, err := o.storage.GetSystemState(ctx)
	if err != nil {
		if errors.Is(err, model.ErrNotInitialized) {
			return o.owner, nil
		}
		return "", err
	}
	return state.Owner, nil
}

// IsOwner reports whether caller is the current owner
func (o *Oracle) IsOwner(ctx context.Context, caller model.Identity) (bool, error) {
	if caller == "" {
		return false, nil
	}
	owner, err := o.Owner(ctx)
	if err != nil {
		return false, err
	}
	return caller == owner, nil
}

// IsAdmin reports whether caller has an active system admin registry entry
func (o *Oracle) IsAdmin(ctx context.Context, caller model.Identity) (bool, error) {
	if caller == "" {
		return false, nil
	}
	entry, err := o.storage.GetAdminEntry(ctx, caller)
	if err != nil {
		if errors.Is(err, model.ErrAdminNotFound) {
			return false, nil
		}
		return false, err
	}
	return entry.Active, nil
}

// IsAuthorized reports whether caller is the owner or an active admin
func (o *Oracle) IsAuthorized(ctx context.Context, caller model.Identity) (bool, error) {
	isOwner, err := o.IsOwner(ctx, caller)
	if err != nil {
		return false, err
	}
	if isOwner {
		return true, nil
	}
	return o.IsAdmin(ctx, caller)
}

// IsSystemActive reports whether the system is initialized and not paused
func (o *Oracle) IsSystemActive(ctx context.Context) (bool, error) {
	state, err := o.storage.GetSystemState(ctx)
	if err != nil {
		if errors.Is(err, model.ErrNotInitialized) {
			return false, nil
		}
		return false, err
	}
	return state.Active(), nil
}
