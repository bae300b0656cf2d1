package memory

import (
	"context"
	"sync"

	"github.com/aduwothevillian/GameVault/internal/model"
	"github.com/aduwothevillian/GameVault/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	systemState   *model.SystemState
	contracts     map[model.ContractName]*model.Contract
	games         map[model.GameID]*model.Game
	adminEntries  map[model.Identity]*model.AdminEntry
	profiles      map[model.Identity]*model.Profile
	usernameIndex map[string]model.Identity
	permissions   map[model.Identity]*model.Permissions
	stats         map[model.Identity]*model.Stats
	verifications map[verificationKey]*model.VerificationCode
	adminActions  map[model.AdminActionID]*model.AdminAction

	nextAdminActionID model.AdminActionID
	playerCount       uint64
}

type verificationKey struct {
	identity model.Identity
	kind     model.VerificationKind
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		contracts:     make(map[model.ContractName]*model.Contract),
		games:         make(map[model.GameID]*model.Game),
		adminEntries:  make(map[model.Identity]*model.AdminEntry),
		profiles:      make(map[model.Identity]*model.Profile),
		usernameIndex: make(map[string]model.Identity),
		permissions:   make(map[model.Identity]*model.Permissions),
		stats:         make(map[model.Identity]*model.Stats),
		verifications: make(map[verificationKey]*model.VerificationCode),
		adminActions:  make(map[model.AdminActionID]*model.AdminAction),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// System state

func (s *Storage) SaveSystemState(ctx context.Context, state *model.SystemState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *state
	s.systemState = &cp
	return nil
}

func (s *Storage) GetSystemState(ctx context.Context) (*model.SystemState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.systemState == nil {
		return nil, model.ErrNotInitialized
	}
	cp := *s.systemState
	return &cp, nil
}

// Contract registry

func (s *Storage) SaveContract(ctx context.Context, contract *model.Contract) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *contract
	s.contracts[contract.Name] = &cp
	return nil
}

func (s *Storage) GetContract(ctx context.Context, name model.ContractName) (*model.Contract, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	contract, ok := s.contracts[name]
	if !ok {
		return nil, model.ErrContractNotFound
	}
	cp := *contract
	return &cp, nil
}

// Game registry

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *game
	s.games[game.ID] = &cp
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	cp := *game
	return &cp, nil
}

// System admin registry

func (s *Storage) SaveAdminEntry(ctx context.Context, entry *model.AdminEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *entry
	s.adminEntries[entry.Identity] = &cp
	return nil
}

func (s *Storage) GetAdminEntry(ctx context.Context, id model.Identity) (*model.AdminEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.adminEntries[id]
	if !ok {
		return nil, model.ErrAdminNotFound
	}
	cp := *entry
	return &cp, nil
}

// Player profiles

func (s *Storage) SaveProfile(ctx context.Context, profile *model.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *profile
	s.profiles[profile.Identity] = &cp
	s.usernameIndex[profile.Username] = profile.Identity
	return nil
}

func (s *Storage) GetProfile(ctx context.Context, id model.Identity) (*model.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	profile, ok := s.profiles[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	cp := *profile
	return &cp, nil
}

func (s *Storage) GetProfileByUsername(ctx context.Context, username string) (*model.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.usernameIndex[username]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	profile, ok := s.profiles[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	cp := *profile
	return &cp, nil
}

// Player permissions

func (s *Storage) SavePermissions(ctx context.Context, perms *model.Permissions) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *perms
	s.permissions[perms.Identity] = &cp
	return nil
}

func (s *Storage) GetPermissions(ctx context.Context, id model.Identity) (*model.Permissions, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	perms, ok := s.permissions[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	cp := *perms
	return &cp, nil
}

// Player stats

func (s *Storage) SaveStats(ctx context.Context, stats *model.Stats) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *stats
	s.stats[stats.Identity] = &cp
	return nil
}

func (s *Storage) GetStats(ctx context.Context, id model.Identity) (*model.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats, ok := s.stats[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	cp := *stats
	return &cp, nil
}

// Verification challenges

func (s *Storage) SaveVerificationCode(ctx context.Context, code *model.VerificationCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := verificationKey{identity: code.Identity, kind: code.Kind}
	cp := *code
	s.verifications[key] = &cp
	return nil
}

func (s *Storage) GetVerificationCode(ctx context.Context, id model.Identity, kind model.VerificationKind) (*model.VerificationCode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	key := verificationKey{identity: id, kind: kind}
	code, ok := s.verifications[key]
	if !ok {
		return nil, model.ErrVerificationNotFound
	}
	cp := *code
	return &cp, nil
}

// Audit log

func (s *Storage) SaveAdminAction(ctx context.Context, action *model.AdminAction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *action
	s.adminActions[action.ID] = &cp
	return nil
}

func (s *Storage) GetAdminAction(ctx context.Context, id model.AdminActionID) (*model.AdminAction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	action, ok := s.adminActions[id]
	if !ok {
		return nil, model.ErrAdminActionNotFound
	}
	cp := *action
	return &cp, nil
}

func (s *Storage) NextAdminActionID(ctx context.Context) (model.AdminActionID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextAdminActionID++
	return s.nextAdminActionID, nil
}

// Player counter

func (s *Storage) IncrementPlayerCount(ctx context.Context) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playerCount++
	return s.playerCount, nil
}

func (s *Storage) PlayerCount(ctx context.Context) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.playerCount, nil
}
