package model

import "time"

// SystemState is the singleton lifecycle record for the whole registry
type SystemState struct {
	Initialized bool
	Paused      bool
	Owner       Identity

	// Global counters, bumped on first registration of a key only
	TotalContracts uint64
	TotalGames     uint64

	InitializedAt time.Time
	UpdatedAt     time.Time
}

// Active returns true if the system is initialized and not paused
func (s *SystemState) Active() bool {
	return s != nil && s.Initialized && !s.Paused
}

// ContractName identifies a registered sub-system
type ContractName string

// Contract is a registry entry for a platform sub-system
type Contract struct {
	Name    ContractName
	Address string
	Version string
	Enabled bool

	RegisteredAt time.Time
	UpdatedAt    time.Time
}

// GameID uniquely identifies a registered application
type GameID string

// Game is a registry entry for a tenant application
type Game struct {
	ID        GameID
	Name      string
	Developer Identity // set at registration, immutable
	Active    bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
