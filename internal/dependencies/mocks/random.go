package mocks

import (
	"github.com/aduwothevillian/GameVault/internal/dependencies/random"
)

// MockRandom is a mock implementation of Random returning fixed values
type MockRandom struct {
	// IntnValue is returned by every Intn call
	IntnValue int
	// StringValue, if set, is returned by every String call
	StringValue string
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// Intn returns the fixed IntnValue
func (r *MockRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.IntnValue % n
}

// String returns StringValue if set, else a string built from the fixed index
func (r *MockRandom) String(length int, alphabet string) string {
	if r.StringValue != "" {
		return r.StringValue
	}
	if length <= 0 || len(alphabet) == 0 {
		return ""
	}
	result := make([]byte, length)
	for i := 0; i < length; i++ {
		result[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(result)
}
