package model

import "time"

// VerificationKind is an identity-proof category
type VerificationKind string

const (
	KindEmail VerificationKind = "email"
	KindPhone VerificationKind = "phone"
	KindKYC   VerificationKind = "kyc"
)

// Valid reports whether k is a known verification kind
func (k VerificationKind) Valid() bool {
	switch k {
	case KindEmail, KindPhone, KindKYC:
		return true
	}
	return false
}

// Level returns the trust rank a successful verification of this kind confers
func (k VerificationKind) Level() VerificationLevel {
	switch k {
	case KindEmail:
		return LevelEmail
	case KindPhone:
		return LevelPhone
	case KindKYC:
		return LevelKYC
	default:
		return LevelNone
	}
}

// CodeDigest is the hash of a verification code. The plaintext code travels
// out of band; only digests are stored and compared.
type CodeDigest [32]byte

// VerificationCode is a time-bounded challenge for one (identity, kind) pair.
// At most one live challenge exists per pair; re-requesting overwrites.
type VerificationCode struct {
	Identity Identity
	Kind     VerificationKind
	Digest   CodeDigest

	Attempts int
	Verified bool

	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the challenge is past its expiry at the given time
func (v *VerificationCode) Expired(now time.Time) bool {
	return !now.Before(v.ExpiresAt)
}
