package player

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/aduwothevillian/GameVault/internal/dependencies/clock"
	"github.com/aduwothevillian/GameVault/internal/events"
	"github.com/aduwothevillian/GameVault/internal/model"
	"github.com/aduwothevillian/GameVault/internal/services/audit"
	"github.com/aduwothevillian/GameVault/internal/services/authz"
	"github.com/aduwothevillian/GameVault/internal/storage"
)

const (
	// MaxUsernameLength bounds usernames (exclusive of zero)
	MaxUsernameLength = 50
	// MaxDisplayNameLength bounds display names (exclusive of zero)
	MaxDisplayNameLength = 100
	// InitialReputation is the score every profile starts with
	InitialReputation = 100
)

// Service owns player profiles, the username index, per-player permissions
// and stats, and the admin mutations against them.
//
// Profile-writing services share one gate so check-then-set sequences stay
// race-free when callers are not externally serialized.
type Service struct {
	storage storage.Storage
	authz   *authz.Oracle
	audit   *audit.Service
	clock   clock.Clock
	events  events.Sink
	logger  *slog.Logger

	gate *sync.Mutex
}

// New creates a new player Service. The gate must be shared with every other
// service that writes player profiles.
func New(store storage.Storage, oracle *authz.Oracle, auditLog *audit.Service, clk clock.Clock, sink events.Sink, logger *slog.Logger, gate *sync.Mutex) *Service {
	return &Service{
		storage: store,
		authz:   oracle,
		audit:   auditLog,
		clock:   clk,
		events:  sink,
		logger:  logger,
		gate:    gate,
	}
}

// RegisterParams carries the caller-supplied profile fields
type RegisterParams struct {
	Username    string
	DisplayName string
	EmailHash   model.IdentityHash
	PhoneHash   model.IdentityHash
	Bio         string
	Avatar      string
}

// Register creates a profile for the caller, claims the username, seeds
// permissions and stats, and bumps the player counter. All preconditions
// are checked before the first write.
func (s *Service) Register(ctx context.Context, caller model.Identity, params RegisterParams) (*model.Profile, error) {
	s.gate.Lock()
	defer s.gate.Unlock()

	if caller == "" {
		return nil, model.ErrInvalidPlayer
	}
	if params.Username == "" || len(params.Username) > MaxUsernameLength {
		return nil, model.ErrInvalidParameter
	}
	if params.DisplayName == "" || len(params.DisplayName) > MaxDisplayNameLength {
		return nil, model.ErrInvalidParameter
	}

	active, err := s.authz.IsSystemActive(ctx)
	if err != nil {
		return nil, err
	}
	if !active {
		return nil, model.ErrNotInitialized
	}

	// One profile per identity
	if _, err := s.storage.GetProfile(ctx, caller); err == nil {
		return nil, model.ErrAlreadyExists
	} else if !errors.Is(err, model.ErrPlayerNotFound) {
		return nil, err
	}

	// Usernames are claimed exactly once, case-sensitive
	if _, err := s.storage.GetProfileByUsername(ctx, params.Username); err == nil {
		return nil, model.ErrUsernameTaken
	} else if !errors.Is(err, model.ErrPlayerNotFound) {
		return nil, err
	}

	now := s.clock.Now()
	profile := &model.Profile{
		Identity:     caller,
		Username:     params.Username,
		DisplayName:  params.DisplayName,
		EmailHash:    params.EmailHash,
		PhoneHash:    params.PhoneHash,
		Bio:          params.Bio,
		AvatarRef:    params.Avatar,
		Status:       model.StatusPending,
		Level:        model.LevelNone,
		Reputation:   InitialReputation,
		RegisteredAt: now,
		LastActiveAt: now,
	}

	perms := &model.Permissions{
		Identity:  caller,
		CanCreate: true,
		CanVote:   true,
	}

	if err := s.storage.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}
	if err := s.storage.SavePermissions(ctx, perms); err != nil {
		return nil, err
	}
	if err := s.storage.SaveStats(ctx, &model.Stats{Identity: caller}); err != nil {
		return nil, err
	}
	if _, err := s.storage.IncrementPlayerCount(ctx); err != nil {
		return nil, err
	}

	s.events.Emit(events.New(events.EventPlayerRegistered, caller, params.Username, now, nil))
	return profile, nil
}

// UpdateProfile lets the caller change their own display name, bio, and
// avatar. Username, identity hashes, and status are immutable here.
func (s *Service) UpdateProfile(ctx context.Context, caller model.Identity, displayName, bio, avatar string) (*model.Profile, error) {
	s.gate.Lock()
	defer s.gate.Unlock()

	if displayName == "" || len(displayName) > MaxDisplayNameLength {
		return nil, model.ErrInvalidParameter
	}

	profile, err := s.storage.GetProfile(ctx, caller)
	if err != nil {
		return nil, err
	}
	if profile.Locked {
		return nil, model.ErrProfileLocked
	}

	now := s.clock.Now()
	profile.DisplayName = displayName
	profile.Bio = bio
	profile.AvatarRef = avatar
	profile.LastActiveAt = now
	if err := s.storage.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}

	s.events.Emit(events.New(events.EventProfileUpdated, caller, profile.Username, now, nil))
	return profile, nil
}

// UpdateActivity stamps the caller's last-active time
func (s *Service) UpdateActivity(ctx context.Context, caller model.Identity) error {
	s.gate.Lock()
	defer s.gate.Unlock()

	profile, err := s.storage.GetProfile(ctx, caller)
	if err != nil {
		return err
	}

	profile.LastActiveAt = s.clock.Now()
	return s.storage.SaveProfile(ctx, profile)
}

// requireAdminFlag checks the caller holds the per-player IsAdmin permission.
// This is a stronger gate than the system-wide authorized notion: the owner
// is refused unless explicitly granted the flag.
func (s *Service) requireAdminFlag(ctx context.Context, caller model.Identity) error {
	perms, err := s.storage.GetPermissions(ctx, caller)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			return model.ErrNotAuthorized
		}
		return err
	}
	if !perms.IsAdmin {
		return model.ErrNotAuthorized
	}
	return nil
}

// Suspend marks a target profile suspended and records an audit entry
func (s *Service) Suspend(ctx context.Context, caller, target model.Identity, reason string) error {
	s.gate.Lock()
	defer s.gate.Unlock()

	if err := s.requireAdminFlag(ctx, caller); err != nil {
		return err
	}
	if caller == target {
		return model.ErrInvalidParameter
	}

	profile, err := s.storage.GetProfile(ctx, target)
	if err != nil {
		return err
	}
	if profile.Status == model.StatusSuspended {
		return model.ErrInvalidParameter
	}

	if _, err := s.audit.Record(ctx, caller, target, model.AdminActionSuspend, reason); err != nil {
		return err
	}

	now := s.clock.Now()
	profile.Status = model.StatusSuspended
	if err := s.storage.SaveProfile(ctx, profile); err != nil {
		return err
	}

	s.events.Emit(events.New(events.EventPlayerSuspended, caller, string(target), now, map[string]any{"reason": reason}))
	return nil
}

// Unsuspend restores a suspended target to Active and records an audit entry.
// Suspension is an overlay: the restored status is Active even for players
// who never verified.
func (s *Service) Unsuspend(ctx context.Context, caller, target model.Identity) error {
	s.gate.Lock()
	defer s.gate.Unlock()

	if err := s.requireAdminFlag(ctx, caller); err != nil {
		return err
	}

	profile, err := s.storage.GetProfile(ctx, target)
	if err != nil {
		return err
	}
	if profile.Status != model.StatusSuspended {
		return model.ErrInvalidParameter
	}

	if _, err := s.audit.Record(ctx, caller, target, model.AdminActionUnsuspend, ""); err != nil {
		return err
	}

	now := s.clock.Now()
	profile.Status = model.StatusActive
	if err := s.storage.SaveProfile(ctx, profile); err != nil {
		return err
	}

	s.events.Emit(events.New(events.EventPlayerUnsuspended, caller, string(target), now, nil))
	return nil
}

// ToggleProfileLock flips a target profile's lock and records an audit entry
func (s *Service) ToggleProfileLock(ctx context.Context, caller, target model.Identity) (bool, error) {
	s.gate.Lock()
	defer s.gate.Unlock()

	if err := s.requireAdminFlag(ctx, caller); err != nil {
		return false, err
	}

	profile, err := s.storage.GetProfile(ctx, target)
	if err != nil {
		return false, err
	}

	actionType := model.AdminActionProfileLock
	eventType := events.EventProfileLocked
	if profile.Locked {
		actionType = model.AdminActionProfileUnlock
		eventType = events.EventProfileUnlocked
	}

	if _, err := s.audit.Record(ctx, caller, target, actionType, ""); err != nil {
		return false, err
	}

	now := s.clock.Now()
	profile.Locked = !profile.Locked
	if err := s.storage.SaveProfile(ctx, profile); err != nil {
		return false, err
	}

	s.events.Emit(events.New(eventType, caller, string(target), now, nil))
	return profile.Locked, nil
}

// GrantAdmin sets a target's IsAdmin and CanModerate flags. Owner only.
// There is no revoke path for these flags.
func (s *Service) GrantAdmin(ctx context.Context, caller, target model.Identity) error {
	s.gate.Lock()
	defer s.gate.Unlock()

	isOwner, err := s.authz.IsOwner(ctx, caller)
	if err != nil {
		return err
	}
	if !isOwner {
		return model.ErrNotAuthorized
	}

	if _, err := s.storage.GetProfile(ctx, target); err != nil {
		return err
	}

	perms, err := s.storage.GetPermissions(ctx, target)
	if err != nil {
		if !errors.Is(err, model.ErrPlayerNotFound) {
			return err
		}
		perms = model.DefaultPermissions(target)
	}

	if _, err := s.audit.Record(ctx, caller, target, model.AdminActionGrantAdmin, ""); err != nil {
		return err
	}

	now := s.clock.Now()
	perms.IsAdmin = true
	perms.CanModerate = true
	if err := s.storage.SavePermissions(ctx, perms); err != nil {
		return err
	}

	s.events.Emit(events.New(events.EventAdminGranted, caller, string(target), now, nil))
	return nil
}

// UpdateStats increments one of a target's counters. Authorized callers
// only; unknown stat kinds fail rather than silently no-op.
func (s *Service) UpdateStats(ctx context.Context, caller, target model.Identity, kind model.StatKind, delta uint64) error {
	s.gate.Lock()
	defer s.gate.Unlock()

	authorized, err := s.authz.IsAuthorized(ctx, caller)
	if err != nil {
		return err
	}
	if !authorized {
		return model.ErrNotAuthorized
	}
	if !kind.Valid() {
		return model.ErrInvalidParameter
	}

	if _, err := s.storage.GetProfile(ctx, target); err != nil {
		return err
	}

	stats, err := s.storage.GetStats(ctx, target)
	if err != nil {
		if !errors.Is(err, model.ErrPlayerNotFound) {
			return err
		}
		stats = &model.Stats{Identity: target}
	}

	if err := stats.Increment(kind, delta); err != nil {
		return err
	}
	if err := s.storage.SaveStats(ctx, stats); err != nil {
		return err
	}

	s.events.Emit(events.New(events.EventStatsUpdated, caller, string(target), s.clock.Now(), map[string]any{
		"kind":  string(kind),
		"delta": delta,
	}))
	return nil
}

// Get retrieves a profile by identity
func (s *Service) Get(ctx context.Context, id model.Identity) (*model.Profile, error) {
	return s.storage.GetProfile(ctx, id)
}

// GetByUsername retrieves a profile by its claimed username
func (s *Service) GetByUsername(ctx context.Context, username string) (*model.Profile, error) {
	return s.storage.GetProfileByUsername(ctx, username)
}

// GetPermissions retrieves a player's permission flags; absent records
// yield the safe baseline rather than an error.
func (s *Service) GetPermissions(ctx context.Context, id model.Identity) (*model.Permissions, error) {
	perms, err := s.storage.GetPermissions(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			return model.DefaultPermissions(id), nil
		}
		return nil, err
	}
	return perms, nil
}

// GetStats retrieves a player's counters; absent records yield zeros
func (s *Service) GetStats(ctx context.Context, id model.Identity) (*model.Stats, error) {
	stats, err := s.storage.GetStats(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			return &model.Stats{Identity: id}, nil
		}
		return nil, err
	}
	return stats, nil
}

// CanAct reports whether a player may perform the given action: the profile
// must be Active and hold the matching permission flag.
func (s *Service) CanAct(ctx context.Context, id model.Identity, action model.PlayerAction) (bool, error) {
	profile, err := s.storage.GetProfile(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			return false, nil
		}
		return false, err
	}
	if profile.Status != model.StatusActive {
		return false, nil
	}

	perms, err := s.GetPermissions(ctx, id)
	if err != nil {
		return false, err
	}

	switch action {
	case model.ActionCreate:
		return perms.CanCreate, nil
	case model.ActionVote:
		return perms.CanVote, nil
	case model.ActionModerate:
		return perms.CanModerate, nil
	default:
		return false, model.ErrInvalidParameter
	}
}

// IsUsernameAvailable reports whether a username is unclaimed
func (s *Service) IsUsernameAvailable(ctx context.Context, username string) (bool, error) {
	_, err := s.storage.GetProfileByUsername(ctx, username)
	if err == nil {
		return false, nil
	}
	if errors.Is(err, model.ErrPlayerNotFound) {
		return true, nil
	}
	return false, err
}

// TotalPlayers returns the number of registered players
func (s *Service) TotalPlayers(ctx context.Context) (uint64, error) {
	return s.storage.PlayerCount(ctx)
}
