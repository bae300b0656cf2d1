package model

import "time"

// AdminEntry is a system admin registry record. Presence with Active=true
// grants admin privileges; removal flips Active, the entry is retained.
type AdminEntry struct {
	Identity  Identity
	Role      string
	GrantedBy Identity
	GrantedAt time.Time
	Active    bool
}

// AdminActionType classifies an administrative intervention
type AdminActionType string

const (
	AdminActionSuspend       AdminActionType = "suspend"
	AdminActionUnsuspend     AdminActionType = "unsuspend"
	AdminActionProfileLock   AdminActionType = "profile_lock"
	AdminActionProfileUnlock AdminActionType = "profile_unlock"
	AdminActionGrantAdmin    AdminActionType = "grant_admin"
)

// AdminActionID is a monotonically increasing audit log key, starting at 1.
// IDs are never reused.
type AdminActionID uint64

// AdminAction is one append-only audit log record
type AdminAction struct {
	ID     AdminActionID
	Admin  Identity
	Target Identity
	Type   AdminActionType
	Reason string
	At     time.Time
	Active bool
}
