package factory

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/aduwothevillian/GameVault/internal/dependencies/clock"
	"github.com/aduwothevillian/GameVault/internal/dependencies/random"
	"github.com/aduwothevillian/GameVault/internal/events"
	"github.com/aduwothevillian/GameVault/internal/model"
	"github.com/aduwothevillian/GameVault/internal/services/audit"
	"github.com/aduwothevillian/GameVault/internal/services/authz"
	"github.com/aduwothevillian/GameVault/internal/services/player"
	"github.com/aduwothevillian/GameVault/internal/services/system"
	"github.com/aduwothevillian/GameVault/internal/services/verification"
	"github.com/aduwothevillian/GameVault/internal/storage"
	"github.com/aduwothevillian/GameVault/internal/storage/memory"
	redisstorage "github.com/aduwothevillian/GameVault/internal/storage/redis"
	"github.com/aduwothevillian/GameVault/internal/testutil"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	Authz        *authz.Oracle
	System       *system.Service
	Player       *player.Service
	Verification *verification.Service
	Audit        *audit.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Owner is the bootstrap owner identity (required)
	Owner model.Identity
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Verification holds configuration for the verification service (optional)
	Verification verification.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// Events receives one event per committed mutation (optional)
	// If nil, events are logged through Logger
	Events events.Sink
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	if cfg.Owner == "" {
		return nil, errors.New("Owner is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = testutil.NopLogger()
	}

	sink := cfg.Events
	if sink == nil {
		sink = events.NewSlogSink(logger)
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	return newWithDependencies(store, clock.New(), random.New(), cfg.Owner, cfg.Verification, sink, logger), nil
}

// newWithDependencies wires the services around explicit dependencies.
// Tests use it to inject mocks.
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	owner model.Identity,
	verifyCfg verification.Config,
	sink events.Sink,
	logger *slog.Logger,
) *App {
	oracle := authz.New(store, owner)
	auditLog := audit.New(store, clk, logger)

	// Player and verification services both write profiles; they share one
	// gate so check-then-set sequences stay atomic across the two.
	gate := &sync.Mutex{}

	return &App{
		Storage:      store,
		Clock:        clk,
		Random:       rnd,
		Authz:        oracle,
		System:       system.New(store, oracle, clk, sink, logger),
		Player:       player.New(store, oracle, auditLog, clk, sink, logger, gate),
		Verification: verification.New(store, clk, rnd, sink, logger, verifyCfg, gate),
		Audit:        auditLog,
	}
}
