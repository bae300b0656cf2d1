package events

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aduwothevillian/GameVault/internal/model"
)

// Type identifies the kind of state transition an event describes
type Type string

const (
	// System events
	EventSystemInitialized    Type = "system_initialized"
	EventOwnershipTransferred Type = "ownership_transferred"
	EventSystemPaused         Type = "system_paused"
	EventSystemUnpaused       Type = "system_unpaused"
	EventAdminAdded           Type = "admin_added"
	EventAdminRemoved         Type = "admin_removed"

	// Registry events
	EventContractRegistered Type = "contract_registered"
	EventContractUpdated    Type = "contract_updated"
	EventContractDisabled   Type = "contract_disabled"
	EventGameRegistered     Type = "game_registered"
	EventGameDeactivated    Type = "game_deactivated"

	// Player events
	EventPlayerRegistered  Type = "player_registered"
	EventProfileUpdated    Type = "profile_updated"
	EventPlayerSuspended   Type = "player_suspended"
	EventPlayerUnsuspended Type = "player_unsuspended"
	EventProfileLocked     Type = "profile_locked"
	EventProfileUnlocked   Type = "profile_unlocked"
	EventAdminGranted      Type = "admin_granted"
	EventStatsUpdated      Type = "stats_updated"

	// Verification events
	EventVerificationRequested Type = "verification_requested"
	EventIdentityVerified      Type = "identity_verified"
)

// Event describes one committed state transition
type Event struct {
	ID      string
	Type    Type
	Actor   model.Identity // caller that performed the operation
	Subject string         // key of the entity affected
	At      time.Time
	Fields  map[string]any // type-specific data
}

// New builds an event with a fresh id
func New(t Type, actor model.Identity, subject string, at time.Time, fields map[string]any) Event {
	return Event{
		ID:      uuid.NewString(),
		Type:    t,
		Actor:   actor,
		Subject: subject,
		At:      at,
		Fields:  fields,
	}
}

// Sink receives events for committed state transitions
type Sink interface {
	Emit(Event)
}

// SlogSink logs events as structured records
type SlogSink struct {
	logger *slog.Logger
}

// NewSlogSink creates a sink that writes events to the given logger
func NewSlogSink(logger *slog.Logger) *SlogSink {
	return &SlogSink{logger: logger}
}

// Emit logs the event
func (s *SlogSink) Emit(e Event) {
	attrs := []any{
		slog.String("event_id", e.ID),
		slog.String("type", string(e.Type)),
		slog.String("actor", string(e.Actor)),
		slog.String("subject", e.Subject),
		slog.Time("at", e.At),
	}
	for k, v := range e.Fields {
		attrs = append(attrs, slog.Any(k, v))
	}
	s.logger.Info("event", attrs...)
}
