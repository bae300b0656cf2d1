package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aduwothevillian/GameVault/internal/model"
	"github.com/aduwothevillian/GameVault/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) setJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, 0).Err()
}

func (s *Storage) getJSON(ctx context.Context, key string, v any, notFound error) error {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return notFound
		}
		return err
	}
	return json.Unmarshal(data, v)
}

// System state

func (s *Storage) SaveSystemState(ctx context.Context, state *model.SystemState) error {
	return s.setJSON(ctx, systemStateKey(), state)
}

func (s *Storage) GetSystemState(ctx context.Context) (*model.SystemState, error) {
	var state model.SystemState
	if err := s.getJSON(ctx, systemStateKey(), &state, model.ErrNotInitialized); err != nil {
		return nil, err
	}
	return &state, nil
}

// Contract registry

func (s *Storage) SaveContract(ctx context.Context, contract *model.Contract) error {
	return s.setJSON(ctx, contractKey(contract.Name), contract)
}

func (s *Storage) GetContract(ctx context.Context, name model.ContractName) (*model.Contract, error) {
	var contract model.Contract
	if err := s.getJSON(ctx, contractKey(name), &contract, model.ErrContractNotFound); err != nil {
		return nil, err
	}
	return &contract, nil
}

// Game registry

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	return s.setJSON(ctx, gameKey(game.ID), game)
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	var game model.Game
	if err := s.getJSON(ctx, gameKey(id), &game, model.ErrGameNotFound); err != nil {
		return nil, err
	}
	return &game, nil
}

// System admin registry

func (s *Storage) SaveAdminEntry(ctx context.Context, entry *model.AdminEntry) error {
	return s.setJSON(ctx, adminEntryKey(entry.Identity), entry)
}

func (s *Storage) GetAdminEntry(ctx context.Context, id model.Identity) (*model.AdminEntry, error) {
	var entry model.AdminEntry
	if err := s.getJSON(ctx, adminEntryKey(id), &entry, model.ErrAdminNotFound); err != nil {
		return nil, err
	}
	return &entry, nil
}

// Player profiles

func (s *Storage) SaveProfile(ctx context.Context, profile *model.Profile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}

	// Use pipeline for atomic save + username index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, profileKey(profile.Identity), data, 0)
	pipe.Set(ctx, usernameIndexKey(profile.Username), string(profile.Identity), 0)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetProfile(ctx context.Context, id model.Identity) (*model.Profile, error) {
	var profile model.Profile
	if err := s.getJSON(ctx, profileKey(id), &profile, model.ErrPlayerNotFound); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *Storage) GetProfileByUsername(ctx context.Context, username string) (*model.Profile, error) {
	// Look up identity from username index
	idStr, err := s.client.Get(ctx, usernameIndexKey(username)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	return s.GetProfile(ctx, model.Identity(idStr))
}

// Player permissions

func (s *Storage) SavePermissions(ctx context.Context, perms *model.Permissions) error {
	return s.setJSON(ctx, permissionsKey(perms.Identity), perms)
}

func (s *Storage) GetPermissions(ctx context.Context, id model.Identity) (*model.Permissions, error) {
	var perms model.Permissions
	if err := s.getJSON(ctx, permissionsKey(id), &perms, model.ErrPlayerNotFound); err != nil {
		return nil, err
	}
	return &perms, nil
}

// Player stats

func (s *Storage) SaveStats(ctx context.Context, stats *model.Stats) error {
	return s.setJSON(ctx, statsKey(stats.Identity), stats)
}

func (s *Storage) GetStats(ctx context.Context, id model.Identity) (*model.Stats, error) {
	var stats model.Stats
	if err := s.getJSON(ctx, statsKey(id), &stats, model.ErrPlayerNotFound); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Verification challenges

func (s *Storage) SaveVerificationCode(ctx context.Context, code *model.VerificationCode) error {
	return s.setJSON(ctx, verificationKey(code.Identity, code.Kind), code)
}

func (s *Storage) GetVerificationCode(ctx context.Context, id model.Identity, kind model.VerificationKind) (*model.VerificationCode, error) {
	var code model.VerificationCode
	if err := s.getJSON(ctx, verificationKey(id, kind), &code, model.ErrVerificationNotFound); err != nil {
		return nil, err
	}
	return &code, nil
}

// Audit log

func (s *Storage) SaveAdminAction(ctx context.Context, action *model.AdminAction) error {
	return s.setJSON(ctx, adminActionKey(action.ID), action)
}

func (s *Storage) GetAdminAction(ctx context.Context, id model.AdminActionID) (*model.AdminAction, error) {
	var action model.AdminAction
	if err := s.getJSON(ctx, adminActionKey(id), &action, model.ErrAdminActionNotFound); err != nil {
		return nil, err
	}
	return &action, nil
}

func (s *Storage) NextAdminActionID(ctx context.Context) (model.AdminActionID, error) {
	id, err := s.client.Incr(ctx, adminActionCounterKey()).Result()
	if err != nil {
		return 0, err
	}
	return model.AdminActionID(id), nil
}

// Player counter

func (s *Storage) IncrementPlayerCount(ctx context.Context) (uint64, error) {
	count, err := s.client.Incr(ctx, playerCounterKey()).Result()
	if err != nil {
		return 0, err
	}
	return uint64(count), nil
}

func (s *Storage) PlayerCount(ctx context.Context) (uint64, error) {
	count, err := s.client.Get(ctx, playerCounterKey()).Uint64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	return count, nil
}
