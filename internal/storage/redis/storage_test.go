package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/aduwothevillian/GameVault/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// System state tests

func (s *StorageSuite) TestSaveAndGetSystemState() {
	state := &model.SystemState{
		Initialized:   true,
		Owner:         "owner",
		InitializedAt: time.Now().UTC(),
	}

	err := s.storage.SaveSystemState(s.ctx, state)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetSystemState(s.ctx)
	s.Require().NoError(err)
	s.True(retrieved.Initialized)
	s.Equal(model.Identity("owner"), retrieved.Owner)
}

func (s *StorageSuite) TestGetSystemStateNotInitialized() {
	_, err := s.storage.GetSystemState(s.ctx)
	s.ErrorIs(err, model.ErrNotInitialized)
}

// Contract tests

func (s *StorageSuite) TestSaveAndGetContract() {
	contract := &model.Contract{
		Name:    "marketplace",
		Address: "0xabc",
		Version: "1.0.0",
		Enabled: true,
	}

	err := s.storage.SaveContract(s.ctx, contract)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetContract(s.ctx, "marketplace")
	s.Require().NoError(err)
	s.Equal(contract.Address, retrieved.Address)
	s.True(retrieved.Enabled)
}

func (s *StorageSuite) TestGetContractNotFound() {
	_, err := s.storage.GetContract(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrContractNotFound)
}

func (s *StorageSuite) TestRegistryRecordsHaveNoTTL() {
	contract := &model.Contract{Name: "marketplace", Address: "0xabc", Enabled: true}
	_ = s.storage.SaveContract(s.ctx, contract)

	ttl := s.mini.TTL(contractKey(contract.Name))
	s.Equal(time.Duration(0), ttl, "Registry records must not expire")
}

// Game tests

func (s *StorageSuite) TestSaveAndGetGame() {
	game := &model.Game{
		ID:        "game-1",
		Name:      "Chess Arena",
		Developer: "dev-1",
		Active:    true,
	}

	err := s.storage.SaveGame(s.ctx, game)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(game.Name, retrieved.Name)
	s.Equal(model.Identity("dev-1"), retrieved.Developer)
}

func (s *StorageSuite) TestGetGameNotFound() {
	_, err := s.storage.GetGame(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrGameNotFound)
}

// Admin registry tests

func (s *StorageSuite) TestSaveAndGetAdminEntry() {
	entry := &model.AdminEntry{
		Identity:  "admin-1",
		Role:      "moderator",
		GrantedBy: "owner",
		Active:    true,
	}

	err := s.storage.SaveAdminEntry(s.ctx, entry)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetAdminEntry(s.ctx, "admin-1")
	s.Require().NoError(err)
	s.Equal("moderator", retrieved.Role)
	s.True(retrieved.Active)
}

func (s *StorageSuite) TestGetAdminEntryNotFound() {
	_, err := s.storage.GetAdminEntry(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrAdminNotFound)
}

// Profile tests

func (s *StorageSuite) TestSaveAndGetProfile() {
	profile := &model.Profile{
		Identity: "player-1",
		Username: "alice",
		Status:   model.StatusPending,
	}

	err := s.storage.SaveProfile(s.ctx, profile)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetProfile(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal("alice", retrieved.Username)
	s.Equal(model.StatusPending, retrieved.Status)
}

func (s *StorageSuite) TestGetProfileNotFound() {
	_, err := s.storage.GetProfile(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestSaveProfileMaintainsUsernameIndex() {
	profile := &model.Profile{Identity: "player-1", Username: "alice"}
	_ = s.storage.SaveProfile(s.ctx, profile)

	retrieved, err := s.storage.GetProfileByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(model.Identity("player-1"), retrieved.Identity)

	// The index entry maps to the identity
	got, err := s.mini.Get(usernameIndexKey("alice"))
	s.Require().NoError(err)
	s.Equal("player-1", got)
}

func (s *StorageSuite) TestGetProfileByUsernameNotFound() {
	_, err := s.storage.GetProfileByUsername(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// Permissions tests

func (s *StorageSuite) TestSaveAndGetPermissions() {
	perms := &model.Permissions{
		Identity:  "player-1",
		CanCreate: true,
		IsAdmin:   true,
	}

	err := s.storage.SavePermissions(s.ctx, perms)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPermissions(s.ctx, "player-1")
	s.Require().NoError(err)
	s.True(retrieved.CanCreate)
	s.True(retrieved.IsAdmin)
}

func (s *StorageSuite) TestGetPermissionsNotFound() {
	_, err := s.storage.GetPermissions(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// Stats tests

func (s *StorageSuite) TestSaveAndGetStats() {
	stats := &model.Stats{Identity: "player-1", GamesPlayed: 7}

	err := s.storage.SaveStats(s.ctx, stats)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetStats(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(uint64(7), retrieved.GamesPlayed)
}

func (s *StorageSuite) TestGetStatsNotFound() {
	_, err := s.storage.GetStats(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// Verification challenge tests

func (s *StorageSuite) TestSaveAndGetVerificationCode() {
	code := &model.VerificationCode{
		Identity:  "player-1",
		Kind:      model.KindEmail,
		Attempts:  2,
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}

	err := s.storage.SaveVerificationCode(s.ctx, code)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetVerificationCode(s.ctx, "player-1", model.KindEmail)
	s.Require().NoError(err)
	s.Equal(2, retrieved.Attempts)
}

func (s *StorageSuite) TestGetVerificationCodeNotFound() {
	_, err := s.storage.GetVerificationCode(s.ctx, "player-1", model.KindEmail)
	s.ErrorIs(err, model.ErrVerificationNotFound)
}

func (s *StorageSuite) TestVerificationCodesKeyedByKind() {
	email := &model.VerificationCode{Identity: "player-1", Kind: model.KindEmail, Attempts: 1}
	phone := &model.VerificationCode{Identity: "player-1", Kind: model.KindPhone, Attempts: 4}
	_ = s.storage.SaveVerificationCode(s.ctx, email)
	_ = s.storage.SaveVerificationCode(s.ctx, phone)

	retrieved, err := s.storage.GetVerificationCode(s.ctx, "player-1", model.KindPhone)
	s.Require().NoError(err)
	s.Equal(4, retrieved.Attempts)
}

// Audit log tests

func (s *StorageSuite) TestSaveAndGetAdminAction() {
	action := &model.AdminAction{
		ID:     1,
		Admin:  "admin-1",
		Target: "player-1",
		Type:   model.AdminActionSuspend,
		Reason: "abuse",
		Active: true,
	}

	err := s.storage.SaveAdminAction(s.ctx, action)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetAdminAction(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal(model.AdminActionSuspend, retrieved.Type)
}

func (s *StorageSuite) TestGetAdminActionNotFound() {
	_, err := s.storage.GetAdminAction(s.ctx, 99)
	s.ErrorIs(err, model.ErrAdminActionNotFound)
}

func (s *StorageSuite) TestNextAdminActionIDMonotonic() {
	first, err := s.storage.NextAdminActionID(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.AdminActionID(1), first)

	second, err := s.storage.NextAdminActionID(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.AdminActionID(2), second)
}

// Player counter tests

func (s *StorageSuite) TestPlayerCounter() {
	count, err := s.storage.PlayerCount(s.ctx)
	s.Require().NoError(err)
	s.Equal(uint64(0), count)

	n, err := s.storage.IncrementPlayerCount(s.ctx)
	s.Require().NoError(err)
	s.Equal(uint64(1), n)

	count, err = s.storage.PlayerCount(s.ctx)
	s.Require().NoError(err)
	s.Equal(uint64(1), count)
}
