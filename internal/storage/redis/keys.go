package redis

import (
	"fmt"

	"github.com/aduwothevillian/GameVault/internal/model"
)

// Key prefix for all registry data
const keyPrefix = "gamevault"

// Key generation functions for each entity type

// systemStateKey returns the Redis key for the singleton SystemState
func systemStateKey() string {
	return fmt.Sprintf("%s:system", keyPrefix)
}

// contractKey returns the Redis key for a Contract
func contractKey(name model.ContractName) string {
	return fmt.Sprintf("%s:contract:%s", keyPrefix, name)
}

// gameKey returns the Redis key for a Game
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// adminEntryKey returns the Redis key for an AdminEntry
func adminEntryKey(id model.Identity) string {
	return fmt.Sprintf("%s:admin:%s", keyPrefix, id)
}

// profileKey returns the Redis key for a Profile
func profileKey(id model.Identity) string {
	return fmt.Sprintf("%s:profile:%s", keyPrefix, id)
}

// usernameIndexKey returns the Redis key for the username -> identity index
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}

// permissionsKey returns the Redis key for a player's Permissions
func permissionsKey(id model.Identity) string {
	return fmt.Sprintf("%s:permissions:%s", keyPrefix, id)
}

// statsKey returns the Redis key for a player's Stats
func statsKey(id model.Identity) string {
	return fmt.Sprintf("%s:stats:%s", keyPrefix, id)
}

// verificationKey returns the Redis key for a (identity, kind) challenge
func verificationKey(id model.Identity, kind model.VerificationKind) string {
	return fmt.Sprintf("%s:verification:%s:%s", keyPrefix, id, kind)
}

// adminActionKey returns the Redis key for an AdminAction
func adminActionKey(id model.AdminActionID) string {
	return fmt.Sprintf("%s:admin_action:%d", keyPrefix, id)
}

// adminActionCounterKey returns the Redis key for the audit log id counter
func adminActionCounterKey() string {
	return fmt.Sprintf("%s:ctr:admin_action", keyPrefix)
}

// playerCounterKey returns the Redis key for the registered player counter
func playerCounterKey() string {
	return fmt.Sprintf("%s:ctr:players", keyPrefix)
}
