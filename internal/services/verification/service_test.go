package verification

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/aduwothevillian/GameVault/internal/dependencies/mocks"
	"github.com/aduwothevillian/GameVault/internal/events"
	"github.com/aduwothevillian/GameVault/internal/model"
	"github.com/aduwothevillian/GameVault/internal/storage/memory"
	"github.com/aduwothevillian/GameVault/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	random  *mocks.MockRandom
	capture *events.Capture
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = &mocks.MockRandom{StringValue: "123456"}
	s.capture = events.NewCapture()
	s.service = New(s.storage, s.clock, s.random, s.capture, testutil.NopLogger(), DefaultConfig(), &sync.Mutex{})
	s.ctx = context.Background()
}

func (s *ServiceSuite) seedProfile(id model.Identity) {
	err := s.storage.SaveProfile(s.ctx, &model.Profile{
		Identity:     id,
		Username:     "u-" + string(id),
		DisplayName:  "Player",
		Status:       model.StatusPending,
		Level:        model.LevelNone,
		RegisteredAt: s.clock.CurrentTime,
	})
	s.Require().NoError(err)
}

func (s *ServiceSuite) request(id model.Identity, kind model.VerificationKind, code string) {
	s.Require().NoError(s.service.Request(s.ctx, id, kind, DigestCode(code)))
}

// Request tests

func (s *ServiceSuite) TestRequest() {
	s.seedProfile("player-1")

	s.request("player-1", model.KindEmail, "123456")

	code, ok, err := s.service.Status(s.ctx, "player-1", model.KindEmail)
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(0, code.Attempts)
	s.False(code.Verified)
	s.Equal(s.clock.CurrentTime.Add(DefaultConfig().Window), code.ExpiresAt)
}

func (s *ServiceSuite) TestRequestUnknownKind() {
	s.seedProfile("player-1")

	err := s.service.Request(s.ctx, "player-1", "passport", DigestCode("123456"))
	s.ErrorIs(err, model.ErrInvalidParameter)
}

func (s *ServiceSuite) TestRequestWithoutProfile() {
	err := s.service.Request(s.ctx, "nonexistent", model.KindEmail, DigestCode("123456"))
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestReRequestResetsAttempts() {
	s.seedProfile("player-1")
	s.request("player-1", model.KindEmail, "123456")

	// Burn some attempts
	_ = s.service.Verify(s.ctx, "player-1", model.KindEmail, DigestCode("wrong"))
	_ = s.service.Verify(s.ctx, "player-1", model.KindEmail, DigestCode("wrong"))

	s.request("player-1", model.KindEmail, "654321")

	code, ok, _ := s.service.Status(s.ctx, "player-1", model.KindEmail)
	s.True(ok)
	s.Equal(0, code.Attempts)

	// The fresh code now verifies
	err := s.service.Verify(s.ctx, "player-1", model.KindEmail, DigestCode("654321"))
	s.Require().NoError(err)
}

// Verify tests

func (s *ServiceSuite) TestVerifySuccess() {
	s.seedProfile("player-1")
	s.request("player-1", model.KindEmail, "123456")

	err := s.service.Verify(s.ctx, "player-1", model.KindEmail, DigestCode("123456"))
	s.Require().NoError(err)

	profile, _ := s.storage.GetProfile(s.ctx, "player-1")
	s.Equal(model.LevelEmail, profile.Level)
	s.Equal(model.StatusActive, profile.Status, "First verification activates a pending profile")
	s.False(profile.KYCVerified)

	code, ok, _ := s.service.Status(s.ctx, "player-1", model.KindEmail)
	s.True(ok)
	s.True(code.Verified)

	s.Equal(events.EventIdentityVerified, s.capture.Last().Type)
}

func (s *ServiceSuite) TestVerifyNoChallenge() {
	s.seedProfile("player-1")

	err := s.service.Verify(s.ctx, "player-1", model.KindEmail, DigestCode("123456"))
	s.ErrorIs(err, model.ErrInvalidVerificationCode)
}

func (s *ServiceSuite) TestVerifyWrongCode() {
	s.seedProfile("player-1")
	s.request("player-1", model.KindEmail, "123456")

	err := s.service.Verify(s.ctx, "player-1", model.KindEmail, DigestCode("000000"))
	s.ErrorIs(err, model.ErrInvalidVerificationCode)

	// The failed attempt is persisted
	code, _, _ := s.service.Status(s.ctx, "player-1", model.KindEmail)
	s.Equal(1, code.Attempts)

	// Profile is untouched
	profile, _ := s.storage.GetProfile(s.ctx, "player-1")
	s.Equal(model.StatusPending, profile.Status)
	s.Equal(model.LevelNone, profile.Level)
}

func (s *ServiceSuite) TestAttemptsCapBlocksEvenCorrectCode() {
	s.seedProfile("player-1")
	s.request("player-1", model.KindEmail, "123456")

	for i := 0; i < DefaultConfig().MaxAttempts; i++ {
		err := s.service.Verify(s.ctx, "player-1", model.KindEmail, DigestCode("wrong"))
		s.ErrorIs(err, model.ErrInvalidVerificationCode)
	}

	// The cap is checked before the digest comparison
	err := s.service.Verify(s.ctx, "player-1", model.KindEmail, DigestCode("123456"))
	s.ErrorIs(err, model.ErrAttemptsExceeded)
}

func (s *ServiceSuite) TestVerifyExpired() {
	s.seedProfile("player-1")
	s.request("player-1", model.KindEmail, "123456")

	s.clock.Advance(DefaultConfig().Window)

	err := s.service.Verify(s.ctx, "player-1", model.KindEmail, DigestCode("123456"))
	s.ErrorIs(err, model.ErrVerificationExpired)
}

func (s *ServiceSuite) TestVerifyJustBeforeExpiry() {
	s.seedProfile("player-1")
	s.request("player-1", model.KindEmail, "123456")

	s.clock.Advance(DefaultConfig().Window - time.Second)

	err := s.service.Verify(s.ctx, "player-1", model.KindEmail, DigestCode("123456"))
	s.Require().NoError(err)
}

func (s *ServiceSuite) TestVerifyUnknownKind() {
	s.seedProfile("player-1")

	err := s.service.Verify(s.ctx, "player-1", "passport", DigestCode("123456"))
	s.ErrorIs(err, model.ErrInvalidParameter)
}

func (s *ServiceSuite) TestLevelIsMonotonic() {
	s.seedProfile("player-1")

	s.request("player-1", model.KindKYC, "123456")
	s.Require().NoError(s.service.Verify(s.ctx, "player-1", model.KindKYC, DigestCode("123456")))

	profile, _ := s.storage.GetProfile(s.ctx, "player-1")
	s.Equal(model.LevelKYC, profile.Level)
	s.True(profile.KYCVerified)

	// A later email verification must not lower the level
	s.request("player-1", model.KindEmail, "654321")
	s.Require().NoError(s.service.Verify(s.ctx, "player-1", model.KindEmail, DigestCode("654321")))

	profile, _ = s.storage.GetProfile(s.ctx, "player-1")
	s.Equal(model.LevelKYC, profile.Level)
	s.True(profile.KYCVerified)
}

func (s *ServiceSuite) TestPhoneVerifyActivatesPending() {
	s.seedProfile("player-1")
	s.request("player-1", model.KindPhone, "123456")

	err := s.service.Verify(s.ctx, "player-1", model.KindPhone, DigestCode("123456"))
	s.Require().NoError(err)

	profile, _ := s.storage.GetProfile(s.ctx, "player-1")
	s.Equal(model.StatusActive, profile.Status)
	s.Equal(model.LevelPhone, profile.Level)
}

func (s *ServiceSuite) TestVerifyDoesNotResurrectSuspended() {
	s.seedProfile("player-1")
	profile, _ := s.storage.GetProfile(s.ctx, "player-1")
	profile.Status = model.StatusSuspended
	_ = s.storage.SaveProfile(s.ctx, profile)

	s.request("player-1", model.KindEmail, "123456")
	err := s.service.Verify(s.ctx, "player-1", model.KindEmail, DigestCode("123456"))
	s.Require().NoError(err)

	profile, _ = s.storage.GetProfile(s.ctx, "player-1")
	s.Equal(model.StatusSuspended, profile.Status, "Verification only promotes from Pending")
	s.Equal(model.LevelEmail, profile.Level)
}

// Status and code helpers

func (s *ServiceSuite) TestStatusAbsent() {
	code, ok, err := s.service.Status(s.ctx, "player-1", model.KindEmail)
	s.Require().NoError(err)
	s.False(ok)
	s.Nil(code)
}

func (s *ServiceSuite) TestGenerateCode() {
	s.Equal("123456", s.service.GenerateCode())

	// Without a fixed value the mock builds from the alphabet
	s.random.StringValue = ""
	code := s.service.GenerateCode()
	s.Len(code, DefaultConfig().CodeLength)
	for _, c := range code {
		s.Contains(CodeAlphabet, string(c))
	}
}

func (s *ServiceSuite) TestDigestCodeDeterministic() {
	s.Equal(DigestCode("123456"), DigestCode("123456"))
	s.NotEqual(DigestCode("123456"), DigestCode("123457"))
}
