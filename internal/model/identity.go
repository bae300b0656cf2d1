package model

// Identity is the authenticated principal that originated an operation,
// supplied by the execution environment.
type Identity string

// IdentityHash is an opaque 32-byte commitment to an off-system attribute
// (email address, phone number). The registry never sees the plaintext.
type IdentityHash [32]byte

// IsZero reports whether the hash is all zero bytes (i.e. not provided).
func (h IdentityHash) IsZero() bool {
	return h == IdentityHash{}
}
