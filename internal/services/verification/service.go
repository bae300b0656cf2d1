package verification

import (
	"context"
	"crypto/sha256"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/aduwothevillian/GameVault/internal/dependencies/clock"
	"github.com/aduwothevillian/GameVault/internal/dependencies/random"
	"github.com/aduwothevillian/GameVault/internal/events"
	"github.com/aduwothevillian/GameVault/internal/model"
	"github.com/aduwothevillian/GameVault/internal/storage"
)

// CodeAlphabet is the characters used in generated verification codes
const CodeAlphabet = "0123456789"

// Config holds configuration for the verification service
type Config struct {
	// Window is how long a challenge stays valid after issuance
	Window time.Duration
	// MaxAttempts caps submissions per challenge; the cap is checked before
	// the digest comparison, so an exhausted challenge rejects even the
	// correct code
	MaxAttempts int
	// CodeLength is the length of generated plaintext codes
	CodeLength int
}

// DefaultConfig returns default verification configuration
func DefaultConfig() Config {
	return Config{
		Window:      24 * time.Hour,
		MaxAttempts: 5,
		CodeLength:  6,
	}
}

// Service runs the per-(identity, kind) verification state machine:
// Absent -> Requested -> Verified or expired.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	events  events.Sink
	logger  *slog.Logger
	cfg     Config

	gate *sync.Mutex
}

// New creates a new verification Service. The gate must be the same mutex
// the player service uses, since successful verification writes profiles.
func New(store storage.Storage, clk clock.Clock, rnd random.Random, sink events.Sink, logger *slog.Logger, cfg Config, gate *sync.Mutex) *Service {
	if cfg.Window == 0 {
		cfg.Window = DefaultConfig().Window
	}
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = DefaultConfig().MaxAttempts
	}
	if cfg.CodeLength == 0 {
		cfg.CodeLength = DefaultConfig().CodeLength
	}
	return &Service{
		storage: store,
		clock:   clk,
		random:  rnd,
		events:  sink,
		logger:  logger,
		cfg:     cfg,
		gate:    gate,
	}
}

// Request issues a challenge for (caller, kind). An existing challenge for
// the same pair is overwritten and its attempt count reset; no cooldown.
func (s *Service) Request(ctx context.Context, caller model.Identity, kind model.VerificationKind, digest model.CodeDigest) error {
	s.gate.Lock()
	defer s.gate.Unlock()

	if !kind.Valid() {
		return model.ErrInvalidParameter
	}

	if _, err := s.storage.GetProfile(ctx, caller); err != nil {
		return err
	}

	now := s.clock.Now()
	code := &model.VerificationCode{
		Identity:  caller,
		Kind:      kind,
		Digest:    digest,
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.Window),
	}
	if err := s.storage.SaveVerificationCode(ctx, code); err != nil {
		return err
	}

	s.events.Emit(events.New(events.EventVerificationRequested, caller, string(kind), now, nil))
	return nil
}

// Verify checks a submitted digest against the stored challenge. Check
// order: challenge exists, not expired, attempts under the cap, digests
// match. Success escalates the profile's verification level (monotonic),
// flags KYC, and promotes a Pending profile to Active.
func (s *Service) Verify(ctx context.Context, caller model.Identity, kind model.VerificationKind, digest model.CodeDigest) error {
	s.gate.Lock()
	defer s.gate.Unlock()

	if !kind.Valid() {
		return model.ErrInvalidParameter
	}

	code, err := s.storage.GetVerificationCode(ctx, caller, kind)
	if err != nil {
		if errors.Is(err, model.ErrVerificationNotFound) {
			return model.ErrInvalidVerificationCode
		}
		return err
	}

	now := s.clock.Now()
	if code.Expired(now) {
		return model.ErrVerificationExpired
	}
	if code.Attempts >= s.cfg.MaxAttempts {
		return model.ErrAttemptsExceeded
	}

	code.Attempts++
	if digest != code.Digest {
		// Failed attempts are persisted so the cap holds across calls
		if err := s.storage.SaveVerificationCode(ctx, code); err != nil {
			return err
		}
		return model.ErrInvalidVerificationCode
	}

	profile, err := s.storage.GetProfile(ctx, caller)
	if err != nil {
		return err
	}

	code.Verified = true
	if err := s.storage.SaveVerificationCode(ctx, code); err != nil {
		return err
	}

	if rank := kind.Level(); rank > profile.Level {
		profile.Level = rank
	}
	if kind == model.KindKYC {
		profile.KYCVerified = true
	}
	// First successful verification of any kind activates the profile
	if profile.Status == model.StatusPending {
		profile.Status = model.StatusActive
	}
	profile.LastActiveAt = now
	if err := s.storage.SaveProfile(ctx, profile); err != nil {
		return err
	}

	s.events.Emit(events.New(events.EventIdentityVerified, caller, string(kind), now, map[string]any{
		"level": profile.Level.String(),
	}))
	return nil
}

// Status returns the stored challenge for (id, kind), or ok=false if none
// exists. Absence is a valid empty answer, not an error.
func (s *Service) Status(ctx context.Context, id model.Identity, kind model.VerificationKind) (*model.VerificationCode, bool, error) {
	code, err := s.storage.GetVerificationCode(ctx, id, kind)
	if err != nil {
		if errors.Is(err, model.ErrVerificationNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return code, true, nil
}

// GenerateCode produces a random plaintext code of the configured length
func (s *Service) GenerateCode() string {
	return s.random.String(s.cfg.CodeLength, CodeAlphabet)
}

// DigestCode hashes a plaintext code into the digest form stored on
// challenges
func DigestCode(code string) model.CodeDigest {
	return model.CodeDigest(sha256.Sum256([]byte(code)))
}
