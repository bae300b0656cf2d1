package system

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/aduwothevillian/GameVault/internal/dependencies/clock"
	"github.com/aduwothevillian/GameVault/internal/events"
	"github.com/aduwothevillian/GameVault/internal/model"
	"github.com/aduwothevillian/GameVault/internal/services/authz"
	"github.com/aduwothevillian/GameVault/internal/storage"
)

const (
	// MaxGameIDLength bounds registered game ids
	MaxGameIDLength = 64
	// MaxGameNameLength bounds registered game display names
	MaxGameNameLength = 100
)

// Service manages the system lifecycle, the contract registry, and the
// game registry. Mutations validate every precondition before the first
// write; the mutex keeps check-then-set sequences race-free.
type Service struct {
	storage storage.Storage
	authz   *authz.Oracle
	clock   clock.Clock
	events  events.Sink
	logger  *slog.Logger

	mu sync.Mutex
}

// New creates a new system Service
func New(store storage.Storage, oracle *authz.Oracle, clk clock.Clock, sink events.Sink, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		authz:   oracle,
		clock:   clk,
		events:  sink,
		logger:  logger,
	}
}

// Status is a read-only snapshot of the system lifecycle state
type Status struct {
	Initialized    bool
	Paused         bool
	Owner          model.Identity
	TotalContracts uint64
	TotalGames     uint64
	TotalPlayers   uint64
}

// Initialize transitions the system from Uninitialized to Initialized(active).
// Owner only; fails if already initialized.
func (s *Service) Initialize(ctx context.Context, caller model.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	isOwner, err := s.authz.IsOwner(ctx, caller)
	if err != nil {
		return err
	}
	if !isOwner {
		return model.ErrNotAuthorized
	}

	if _, err := s.storage.GetSystemState(ctx); err == nil {
		return model.ErrAlreadyInitialized
	} else if !errors.Is(err, model.ErrNotInitialized) {
		return err
	}

	now := s.clock.Now()
	state := &model.SystemState{
		Initialized:   true,
		Owner:         caller,
		InitializedAt: now,
		UpdatedAt:     now,
	}
	if err := s.storage.SaveSystemState(ctx, state); err != nil {
		return err
	}

	s.events.Emit(events.New(events.EventSystemInitialized, caller, string(caller), now, nil))
	return nil
}

// TransferOwnership hands the owner role to a new identity. Owner only.
func (s *Service) TransferOwnership(ctx context.Context, caller, newOwner model.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	isOwner, err := s.authz.IsOwner(ctx, caller)
	if err != nil {
		return err
	}
	if !isOwner {
		return model.ErrNotAuthorized
	}
	if newOwner == "" {
		return model.ErrInvalidParameter
	}

	state, err := s.storage.GetSystemState(ctx)
	if err != nil {
		return err
	}

	now := s.clock.Now()
	state.Owner = newOwner
	state.UpdatedAt = now
	if err := s.storage.SaveSystemState(ctx, state); err != nil {
		return err
	}

	s.events.Emit(events.New(events.EventOwnershipTransferred, caller, string(newOwner), now, nil))
	return nil
}

// Pause halts the system. Any authorized caller may pause; resuming is
// owner-only, a deliberate safety asymmetry.
func (s *Service) Pause(ctx context.Context, caller model.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	authorized, err := s.authz.IsAuthorized(ctx, caller)
	if err != nil {
		return err
	}
	if !authorized {
		return model.ErrNotAuthorized
	}

	state, err := s.storage.GetSystemState(ctx)
	if err != nil {
		return err
	}
	if state.Paused {
		return model.ErrSystemPaused
	}

	now := s.clock.Now()
	state.Paused = true
	state.UpdatedAt = now
	if err := s.storage.SaveSystemState(ctx, state); err != nil {
		return err
	}

	s.events.Emit(events.New(events.EventSystemPaused, caller, "", now, nil))
	return nil
}

// Unpause resumes a paused system. Owner only.
func (s *Service) Unpause(ctx context.Context, caller model.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	isOwner, err := s.authz.IsOwner(ctx, caller)
	if err != nil {
		return err
	}
	if !isOwner {
		return model.ErrNotAuthorized
	}

	state, err := s.storage.GetSystemState(ctx)
	if err != nil {
		return err
	}
	if !state.Paused {
		return model.ErrInvalidParameter
	}

	now := s.clock.Now()
	state.Paused = false
	state.UpdatedAt = now
	if err := s.storage.SaveSystemState(ctx, state); err != nil {
		return err
	}

	s.events.Emit(events.New(events.EventSystemUnpaused, caller, "", now, nil))
	return nil
}

// AddAdmin enrolls an identity in the system admin registry. Owner only.
// Re-adding an inactive entry reactivates it; an active duplicate fails.
func (s *Service) AddAdmin(ctx context.Context, caller, id model.Identity, role string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	isOwner, err := s.authz.IsOwner(ctx, caller)
	if err != nil {
		return err
	}
	if !isOwner {
		return model.ErrNotAuthorized
	}
	if id == "" || role == "" {
		return model.ErrInvalidParameter
	}

	existing, err := s.storage.GetAdminEntry(ctx, id)
	if err == nil && existing.Active {
		return model.ErrAlreadyExists
	} else if err != nil && !errors.Is(err, model.ErrAdminNotFound) {
		return err
	}

	now := s.clock.Now()
	entry := &model.AdminEntry{
		Identity:  id,
		Role:      role,
		GrantedBy: caller,
		GrantedAt: now,
		Active:    true,
	}
	if err := s.storage.SaveAdminEntry(ctx, entry); err != nil {
		return err
	}

	s.events.Emit(events.New(events.EventAdminAdded, caller, string(id), now, map[string]any{"role": role}))
	return nil
}

// RemoveAdmin deactivates a system admin registry entry. Owner only.
// The entry is retained for auditability.
func (s *Service) RemoveAdmin(ctx context.Context, caller, id model.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	isOwner, err := s.authz.IsOwner(ctx, caller)
	if err != nil {
		return err
	}
	if !isOwner {
		return model.ErrNotAuthorized
	}

	entry, err := s.storage.GetAdminEntry(ctx, id)
	if err != nil {
		return err
	}

	now := s.clock.Now()
	entry.Active = false
	if err := s.storage.SaveAdminEntry(ctx, entry); err != nil {
		return err
	}

	s.events.Emit(events.New(events.EventAdminRemoved, caller, string(id), now, nil))
	return nil
}

// RegisterContract adds or refreshes a contract registry entry. Requires an
// authorized caller and an initialized system. The global contract counter
// bumps only on first registration of a name.
func (s *Service) RegisterContract(ctx context.Context, caller model.Identity, name model.ContractName, address, version string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	authorized, err := s.authz.IsAuthorized(ctx, caller)
	if err != nil {
		return err
	}
	if !authorized {
		return model.ErrNotAuthorized
	}
	if name == "" || address == "" || version == "" {
		return model.ErrInvalidParameter
	}

	state, err := s.storage.GetSystemState(ctx)
	if err != nil {
		return err
	}

	now := s.clock.Now()
	existing, err := s.storage.GetContract(ctx, name)
	switch {
	case err == nil:
		// Re-registration updates in place without bumping the counter
		existing.Address = address
		existing.Version = version
		existing.UpdatedAt = now
		if err := s.storage.SaveContract(ctx, existing); err != nil {
			return err
		}
	case errors.Is(err, model.ErrContractNotFound):
		contract := &model.Contract{
			Name:         name,
			Address:      address,
			Version:      version,
			Enabled:      true,
			RegisteredAt: now,
			UpdatedAt:    now,
		}
		if err := s.storage.SaveContract(ctx, contract); err != nil {
			return err
		}
		state.TotalContracts++
		state.UpdatedAt = now
		if err := s.storage.SaveSystemState(ctx, state); err != nil {
			return err
		}
	default:
		return err
	}

	s.events.Emit(events.New(events.EventContractRegistered, caller, string(name), now, map[string]any{
		"address": address,
		"version": version,
	}))
	return nil
}

// UpdateContract replaces a contract's address and version. Requires an
// authorized caller, an initialized system, and a prior registration.
func (s *Service) UpdateContract(ctx context.Context, caller model.Identity, name model.ContractName, address, version string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	authorized, err := s.authz.IsAuthorized(ctx, caller)
	if err != nil {
		return err
	}
	if !authorized {
		return model.ErrNotAuthorized
	}
	if name == "" || address == "" || version == "" {
		return model.ErrInvalidParameter
	}

	if _, err := s.storage.GetSystemState(ctx); err != nil {
		return err
	}

	contract, err := s.storage.GetContract(ctx, name)
	if err != nil {
		return err
	}

	now := s.clock.Now()
	contract.Address = address
	contract.Version = version
	contract.UpdatedAt = now
	if err := s.storage.SaveContract(ctx, contract); err != nil {
		return err
	}

	s.events.Emit(events.New(events.EventContractUpdated, caller, string(name), now, map[string]any{
		"address": address,
		"version": version,
	}))
	return nil
}

// DisableContract flips a contract's enabled flag off, retaining the entry.
// Disabled contracts are indistinguishable from absent ones to consumers.
func (s *Service) DisableContract(ctx context.Context, caller model.Identity, name model.ContractName) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	authorized, err := s.authz.IsAuthorized(ctx, caller)
	if err != nil {
		return err
	}
	if !authorized {
		return model.ErrNotAuthorized
	}

	contract, err := s.storage.GetContract(ctx, name)
	if err != nil {
		return err
	}

	now := s.clock.Now()
	contract.Enabled = false
	contract.UpdatedAt = now
	if err := s.storage.SaveContract(ctx, contract); err != nil {
		return err
	}

	s.events.Emit(events.New(events.EventContractDisabled, caller, string(name), now, nil))
	return nil
}

// ContractAddress resolves a name to an address. Disabled entries resolve
// the same as absent ones.
func (s *Service) ContractAddress(ctx context.Context, name model.ContractName) (string, error) {
	contract, err := s.storage.GetContract(ctx, name)
	if err != nil {
		return "", err
	}
	if !contract.Enabled {
		return "", model.ErrContractNotFound
	}
	return contract.Address, nil
}

// IsContractAvailable reports whether a contract exists and is enabled
func (s *Service) IsContractAvailable(ctx context.Context, name model.ContractName) (bool, error) {
	contract, err := s.storage.GetContract(ctx, name)
	if err != nil {
		if errors.Is(err, model.ErrContractNotFound) {
			return false, nil
		}
		return false, err
	}
	return contract.Enabled, nil
}

// RegisterGame adds a game registry entry. Games are tenant content, so the
// gate is lighter than for contracts: any caller may register while the
// system is active. The global game counter bumps only on first registration.
func (s *Service) RegisterGame(ctx context.Context, caller model.Identity, id model.GameID, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.storage.GetSystemState(ctx)
	if err != nil {
		return err
	}
	if state.Paused {
		return model.ErrSystemPaused
	}
	if caller == "" {
		return model.ErrNotAuthorized
	}
	if id == "" || len(id) > MaxGameIDLength || name == "" || len(name) > MaxGameNameLength {
		return model.ErrInvalidGame
	}

	now := s.clock.Now()
	existing, err := s.storage.GetGame(ctx, id)
	switch {
	case err == nil:
		// Developer is immutable; only the original registrant may refresh
		if existing.Developer != caller {
			return model.ErrAlreadyExists
		}
		existing.Name = name
		existing.UpdatedAt = now
		if err := s.storage.SaveGame(ctx, existing); err != nil {
			return err
		}
	case errors.Is(err, model.ErrGameNotFound):
		game := &model.Game{
			ID:        id,
			Name:      name,
			Developer: caller,
			Active:    true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.storage.SaveGame(ctx, game); err != nil {
			return err
		}
		state.TotalGames++
		state.UpdatedAt = now
		if err := s.storage.SaveSystemState(ctx, state); err != nil {
			return err
		}
	default:
		return err
	}

	s.events.Emit(events.New(events.EventGameRegistered, caller, string(id), now, map[string]any{"name": name}))
	return nil
}

// DeactivateGame flips a game's active flag off. Only the registering
// developer or an authorized caller may deactivate; the record stays
// queryable.
func (s *Service) DeactivateGame(ctx context.Context, caller model.Identity, id model.GameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	game, err := s.storage.GetGame(ctx, id)
	if err != nil {
		return err
	}

	if game.Developer != caller {
		authorized, err := s.authz.IsAuthorized(ctx, caller)
		if err != nil {
			return err
		}
		if !authorized {
			return model.ErrNotAuthorized
		}
	}

	now := s.clock.Now()
	game.Active = false
	game.UpdatedAt = now
	if err := s.storage.SaveGame(ctx, game); err != nil {
		return err
	}

	s.events.Emit(events.New(events.EventGameDeactivated, caller, string(id), now, nil))
	return nil
}

// IsGameActive reports whether a game exists and is active
func (s *Service) IsGameActive(ctx context.Context, id model.GameID) (bool, error) {
	game, err := s.storage.GetGame(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrGameNotFound) {
			return false, nil
		}
		return false, err
	}
	return game.Active, nil
}

// GameDetails retrieves a game registry entry
func (s *Service) GameDetails(ctx context.Context, id model.GameID) (*model.Game, error) {
	return s.storage.GetGame(ctx, id)
}

// SystemStatus returns a snapshot of the lifecycle state and global counters.
// An uninitialized system yields a zero snapshot, not an error.
func (s *Service) SystemStatus(ctx context.Context) (*Status, error) {
	players, err := s.storage.PlayerCount(ctx)
	if err != nil {
		return nil, err
	}

	state, err := s.storage.GetSystemState(ctx)
	if err != nil {
		if errors.Is(err, model.ErrNotInitialized) {
			return &Status{TotalPlayers: players}, nil
		}
		return nil, err
	}

	return &Status{
		Initialized:    state.Initialized,
		Paused:         state.Paused,
		Owner:          state.Owner,
		TotalContracts: state.TotalContracts,
		TotalGames:     state.TotalGames,
		TotalPlayers:   players,
	}, nil
}
