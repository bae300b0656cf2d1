package factory

import (
	"time"

	"github.com/aduwothevillian/GameVault/internal/dependencies/mocks"
	"github.com/aduwothevillian/GameVault/internal/events"
	"github.com/aduwothevillian/GameVault/internal/model"
	"github.com/aduwothevillian/GameVault/internal/services/verification"
	"github.com/aduwothevillian/GameVault/internal/storage/memory"
	"github.com/aduwothevillian/GameVault/internal/testutil"
)

// TestOwner is the bootstrap owner identity used by NewTestApp
const TestOwner = model.Identity("owner")

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
	Events     *events.Capture
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := &mocks.MockRandom{}
	capture := events.NewCapture()

	app := newWithDependencies(store, mockClock, mockRandom, TestOwner,
		verification.DefaultConfig(), capture, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
		Events:     capture,
	}
}
