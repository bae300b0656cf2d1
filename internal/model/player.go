package model

import "time"

// PlayerStatus represents the lifecycle state of a player profile
type PlayerStatus string

const (
	StatusPending   PlayerStatus = "pending"   // Registered, no verification yet
	StatusActive    PlayerStatus = "active"    // At least one successful verification
	StatusSuspended PlayerStatus = "suspended" // Suspended by an admin
)

// VerificationLevel is the highest identity-proof rank a player has passed.
// Levels only ever go up.
type VerificationLevel int

const (
	LevelNone VerificationLevel = iota
	LevelEmail
	LevelPhone
	LevelKYC
)

// String returns a human-readable name for the level
func (l VerificationLevel) String() string {
	switch l {
	case LevelEmail:
		return "email"
	case LevelPhone:
		return "phone"
	case LevelKYC:
		return "kyc"
	default:
		return "none"
	}
}

// Profile is a player's identity record
type Profile struct {
	Identity    Identity
	Username    string // unique across all profiles, never released
	DisplayName string
	EmailHash   IdentityHash
	PhoneHash   IdentityHash
	Bio         string
	AvatarRef   string

	Status      PlayerStatus
	Level       VerificationLevel
	Reputation  int64
	Locked      bool // admin-locked profiles reject self-service edits
	KYCVerified bool

	RegisteredAt time.Time
	LastActiveAt time.Time
}

// PlayerAction is a capability a caller can query via CanAct
type PlayerAction string

const (
	ActionCreate   PlayerAction = "create"
	ActionVote     PlayerAction = "vote"
	ActionModerate PlayerAction = "moderate"
)

// Permissions holds a player's capability flags
type Permissions struct {
	Identity    Identity
	CanCreate   bool
	CanVote     bool
	CanModerate bool
	IsAdmin     bool
}

// DefaultPermissions is the safe baseline used when no record exists
func DefaultPermissions(id Identity) *Permissions {
	return &Permissions{Identity: id}
}

// StatKind selects which player counter to increment
type StatKind string

const (
	StatGamesPlayed        StatKind = "games_played"
	StatGamesWon           StatKind = "games_won"
	StatTournamentsEntered StatKind = "tournaments_entered"
	StatTournamentsWon     StatKind = "tournaments_won"
	StatAssetsOwned        StatKind = "assets_owned"
	StatVotesCast          StatKind = "votes_cast"
)

// Valid reports whether k is a known stat kind
func (k StatKind) Valid() bool {
	switch k {
	case StatGamesPlayed, StatGamesWon, StatTournamentsEntered,
		StatTournamentsWon, StatAssetsOwned, StatVotesCast:
		return true
	}
	return false
}

// Stats holds a player's monotonic activity counters.
// Created lazily on first increment; counters never decrease.
type Stats struct {
	Identity           Identity
	GamesPlayed        uint64
	GamesWon           uint64
	TournamentsEntered uint64
	TournamentsWon     uint64
	AssetsOwned        uint64
	VotesCast          uint64
}

// Increment adds n to the counter selected by kind.
// Unknown kinds fail rather than silently no-op.
func (s *Stats) Increment(kind StatKind, n uint64) error {
	switch kind {
	case StatGamesPlayed:
		s.GamesPlayed += n
	case StatGamesWon:
		s.GamesWon += n
	case StatTournamentsEntered:
		s.TournamentsEntered += n
	case StatTournamentsWon:
		s.TournamentsWon += n
	case StatAssetsOwned:
		s.AssetsOwned += n
	case StatVotesCast:
		s.VotesCast += n
	default:
		return ErrInvalidParameter
	}
	return nil
}
