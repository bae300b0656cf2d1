package authz

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/aduwothevillian/GameVault/internal/model"
	"github.com/aduwothevillian/GameVault/internal/storage/memory"
)

type OracleSuite struct {
	suite.Suite
	storage *memory.Storage
	oracle  *Oracle
	ctx     context.Context
}

func TestOracleSuite(t *testing.T) {
	suite.Run(t, new(OracleSuite))
}

func (s *OracleSuite) SetupTest() {
	s.storage = memory.New()
	s.oracle = New(s.storage, "bootstrap-owner")
	s.ctx = context.Background()
}

func (s *OracleSuite) initialize(owner model.Identity) {
	err := s.storage.SaveSystemState(s.ctx, &model.SystemState{
		Initialized:   true,
		Owner:         owner,
		InitializedAt: time.Now(),
	})
	s.Require().NoError(err)
}

func (s *OracleSuite) TestOwnerBeforeInitialization() {
	owner, err := s.oracle.Owner(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.Identity("bootstrap-owner"), owner)
}

func (s *OracleSuite) TestOwnerAfterInitialization() {
	s.initialize("recorded-owner")

	owner, err := s.oracle.Owner(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.Identity("recorded-owner"), owner)
}

func (s *OracleSuite) TestIsOwner() {
	s.initialize("recorded-owner")

	isOwner, err := s.oracle.IsOwner(s.ctx, "recorded-owner")
	s.Require().NoError(err)
	s.True(isOwner)

	isOwner, err = s.oracle.IsOwner(s.ctx, "someone-else")
	s.Require().NoError(err)
	s.False(isOwner)
}

func (s *OracleSuite) TestIsOwnerEmptyCaller() {
	isOwner, err := s.oracle.IsOwner(s.ctx, "")
	s.Require().NoError(err)
	s.False(isOwner)
}

func (s *OracleSuite) TestBootstrapOwnerSupersededByTransfer() {
	s.initialize("new-owner")

	isOwner, err := s.oracle.IsOwner(s.ctx, "bootstrap-owner")
	s.Require().NoError(err)
	s.False(isOwner, "Bootstrap identity loses ownership once recorded")
}

func (s *OracleSuite) TestIsAdminActiveEntry() {
	_ = s.storage.SaveAdminEntry(s.ctx, &model.AdminEntry{
		Identity: "admin-1",
		Role:     "moderator",
		Active:   true,
	})

	isAdmin, err := s.oracle.IsAdmin(s.ctx, "admin-1")
	s.Require().NoError(err)
	s.True(isAdmin)
}

func (s *OracleSuite) TestIsAdminInactiveEntry() {
	_ = s.storage.SaveAdminEntry(s.ctx, &model.AdminEntry{
		Identity: "admin-1",
		Role:     "moderator",
		Active:   false,
	})

	isAdmin, err := s.oracle.IsAdmin(s.ctx, "admin-1")
	s.Require().NoError(err)
	s.False(isAdmin)
}

func (s *OracleSuite) TestIsAdminNoEntry() {
	isAdmin, err := s.oracle.IsAdmin(s.ctx, "nonexistent")
	s.Require().NoError(err)
	s.False(isAdmin)
}

func (s *OracleSuite) TestIsAuthorized() {
	s.initialize("recorded-owner")
	_ = s.storage.SaveAdminEntry(s.ctx, &model.AdminEntry{
		Identity: "admin-1",
		Active:   true,
	})

	authorized, err := s.oracle.IsAuthorized(s.ctx, "recorded-owner")
	s.Require().NoError(err)
	s.True(authorized)

	authorized, err = s.oracle.IsAuthorized(s.ctx, "admin-1")
	s.Require().NoError(err)
	s.True(authorized)

	authorized, err = s.oracle.IsAuthorized(s.ctx, "random-player")
	s.Require().NoError(err)
	s.False(authorized)
}

func (s *OracleSuite) TestAdminChangeVisibleImmediately() {
	entry := &model.AdminEntry{Identity: "admin-1", Active: true}
	_ = s.storage.SaveAdminEntry(s.ctx, entry)

	isAdmin, _ := s.oracle.IsAdmin(s.ctx, "admin-1")
	s.True(isAdmin)

	entry.Active = false
	_ = s.storage.SaveAdminEntry(s.ctx, entry)

	isAdmin, err := s.oracle.IsAdmin(s.ctx, "admin-1")
	s.Require().NoError(err)
	s.False(isAdmin, "Oracle must not cache admin status")
}

func (s *OracleSuite) TestIsSystemActive() {
	active, err := s.oracle.IsSystemActive(s.ctx)
	s.Require().NoError(err)
	s.False(active, "Uninitialized system is not active")

	s.initialize("owner")
	active, err = s.oracle.IsSystemActive(s.ctx)
	s.Require().NoError(err)
	s.True(active)

	state, _ := s.storage.GetSystemState(s.ctx)
	state.Paused = true
	_ = s.storage.SaveSystemState(s.ctx, state)

	active, err = s.oracle.IsSystemActive(s.ctx)
	s.Require().NoError(err)
	s.False(active, "Paused system is not active")
}
