package audit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/aduwothevillian/GameVault/internal/dependencies/mocks"
	"github.com/aduwothevillian/GameVault/internal/model"
	"github.com/aduwothevillian/GameVault/internal/storage/memory"
	"github.com/aduwothevillian/GameVault/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
	clock   *mocks.MockClock
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(memory.New(), s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestRecordAndFetch() {
	action, err := s.service.Record(s.ctx, "admin-1", "player-1", model.AdminActionSuspend, "abuse")
	s.Require().NoError(err)
	s.Equal(model.AdminActionID(1), action.ID)
	s.Equal(model.AdminActionSuspend, action.Type)
	s.Equal("abuse", action.Reason)
	s.Equal(s.clock.CurrentTime, action.At)
	s.True(action.Active)

	fetched, err := s.service.Action(s.ctx, action.ID)
	s.Require().NoError(err)
	s.Equal(action.Admin, fetched.Admin)
	s.Equal(action.Target, fetched.Target)
}

func (s *ServiceSuite) TestIDsAreMonotonic() {
	first, err := s.service.Record(s.ctx, "admin-1", "player-1", model.AdminActionSuspend, "")
	s.Require().NoError(err)
	second, err := s.service.Record(s.ctx, "admin-1", "player-2", model.AdminActionProfileLock, "")
	s.Require().NoError(err)

	s.Equal(model.AdminActionID(1), first.ID)
	s.Equal(model.AdminActionID(2), second.ID)
}

func (s *ServiceSuite) TestEntriesSurviveIndependently() {
	a1, _ := s.service.Record(s.ctx, "admin-1", "player-1", model.AdminActionSuspend, "first")
	a2, _ := s.service.Record(s.ctx, "admin-1", "player-1", model.AdminActionUnsuspend, "second")

	fetched, err := s.service.Action(s.ctx, a1.ID)
	s.Require().NoError(err)
	s.Equal("first", fetched.Reason)

	fetched, err = s.service.Action(s.ctx, a2.ID)
	s.Require().NoError(err)
	s.Equal("second", fetched.Reason)
}

func (s *ServiceSuite) TestActionNotFound() {
	_, err := s.service.Action(s.ctx, 42)
	s.ErrorIs(err, model.ErrAdminActionNotFound)
}
